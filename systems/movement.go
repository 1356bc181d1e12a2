package systems

import (
	"math"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DeltaTime is the fixed time step of one update, in seconds.
func DeltaTime() float64 {
	return 1 / float64(ebiten.TPS())
}

// MovementVector sums the held directions and normalizes the result, so
// diagonals move as fast as straight lines. North is up the screen (-Y).
// The zero vector is returned when nothing is held or opposites cancel.
func MovementVector(d directionalInput) dmath.Vec2 {
	var x, y float64
	if d.West {
		x -= 1
	}
	if d.East {
		x += 1
	}
	if d.North {
		y -= 1
	}
	if d.South {
		y += 1
	}

	length := math.Hypot(x, y)
	if length == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: x / length, Y: y / length}
}

// ResolveFacing applies the held directions in the order West, East, North,
// South; the last one held wins. With nothing held the facing is kept.
func ResolveFacing(current animations.Direction, d directionalInput) animations.Direction {
	facing := current
	if d.West {
		facing = animations.West
	}
	if d.East {
		facing = animations.East
	}
	if d.North {
		facing = animations.North
	}
	if d.South {
		facing = animations.South
	}
	return facing
}

// Translate moves a transform by dir*speed*dt. Depth is left untouched.
func Translate(t *components.TransformData, dir dmath.Vec2, speed, dt float64) {
	t.Position.X += dir.X * speed * dt
	t.Position.Y += dir.Y * speed * dt
}

// UpdatePlayerMovement turns and moves every player from the held directions.
func UpdatePlayerMovement(e *ecs.ECS) {
	movePlayers(e, DeltaTime())
}

func movePlayers(e *ecs.ECS, dt float64) {
	input := getOrCreateInput(e)
	held := readDirectional(input)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		sprite := components.Sprite.Get(entry)

		if anim.RequestDirection(ResolveFacing(anim.Direction, held)) {
			sprite.Index = anim.First
		}

		if !held.any() {
			return
		}

		player := components.Player.Get(entry)
		transform := components.Transform.Get(entry)
		dir := MovementVector(held)
		dx := dir.X * player.Speed * dt
		dy := dir.Y * player.Speed * dt

		if entry.HasComponent(components.Object) {
			dx, dy = resolveSolids(components.Object.Get(entry).Object, dx, dy)
		}

		transform.Position.X += dx
		transform.Position.Y += dy
	})
}

// resolveSolids clamps a move against solid objects one axis at a time so
// the player slides along walls, and moves obj by the allowed amount.
func resolveSolids(obj *resolv.Object, dx, dy float64) (float64, float64) {
	if obj == nil {
		return dx, dy
	}
	dx = clampMove(obj, dx, 0)
	obj.X += dx
	dy = clampMove(obj, 0, dy)
	obj.Y += dy
	obj.Update()

	return dx, dy
}

// clampMove shortens a single-axis move so obj stops at the nearest solid
// it would overlap.
func clampMove(obj *resolv.Object, dx, dy float64) float64 {
	move := dx + dy
	if obj.Space == nil || move == 0 {
		return move
	}
	// Check finds the far edge as X+W+dx-1, which misses the next cell for
	// fractional moves, so look one unit further along the moving axis
	check := obj.Check(reach(dx), reach(dy), tags.ResolvSolid)
	if check == nil {
		return move
	}

	// Check works on whole cells, so neighbours that share a cell are filtered here
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAt(obj, solid, dx, dy) {
			continue
		}
		contact := check.ContactWithObject(solid)
		if c := contact.X() + contact.Y(); math.Abs(c) < math.Abs(move) {
			move = c
		}
	}
	return move
}

func reach(d float64) float64 {
	if d == 0 {
		return 0
	}
	return d + math.Copysign(1, d)
}

func overlapsAt(obj, other *resolv.Object, dx, dy float64) bool {
	return obj.X+dx < other.X+other.W && obj.X+obj.W+dx > other.X &&
		obj.Y+dy < other.Y+other.H && obj.Y+obj.H+dy > other.Y
}

// syncObject places the collision box at the feet of a bottom-center anchored transform.
func syncObject(obj *resolv.Object, t *components.TransformData) {
	obj.X = t.Position.X - obj.W/2
	obj.Y = t.Position.Y - obj.H
	obj.Update()
}
