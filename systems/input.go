package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE the movement and camera systems.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				break
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge analog sticks into the directional actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := stickDirections(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
			cfg.Input.AnalogDeadzone,
		)
		mergeDirectional(input, stick)
	}
}

// stickDirections turns a stick position into held directions. Axes within
// the deadzone count as released; down is positive vertical.
func stickDirections(horizontal, vertical, deadzone float64) directionalInput {
	return directionalInput{
		West:  horizontal < -deadzone,
		East:  horizontal > deadzone,
		North: vertical < -deadzone,
		South: vertical > deadzone,
	}
}

func mergeDirectional(input *components.InputData, d directionalInput) {
	input.Current[cfg.ActionMoveWest] = input.Current[cfg.ActionMoveWest] || d.West
	input.Current[cfg.ActionMoveEast] = input.Current[cfg.ActionMoveEast] || d.East
	input.Current[cfg.ActionMoveNorth] = input.Current[cfg.ActionMoveNorth] || d.North
	input.Current[cfg.ActionMoveSouth] = input.Current[cfg.ActionMoveSouth] || d.South
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// directionalInput is the four movement actions held this frame.
type directionalInput struct {
	West, East, North, South bool
}

func (d directionalInput) any() bool {
	return d.West || d.East || d.North || d.South
}

func readDirectional(input *components.InputData) directionalInput {
	return directionalInput{
		West:  input.Current[cfg.ActionMoveWest],
		East:  input.Current[cfg.ActionMoveEast],
		North: input.Current[cfg.ActionMoveNorth],
		South: input.Current[cfg.ActionMoveSouth],
	}
}
