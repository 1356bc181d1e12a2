package systems

import (
	"math"
	"testing"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
)

func TestMovementVectorIsUnitOrZero(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		d := directionalInput{
			West:  mask&1 != 0,
			East:  mask&2 != 0,
			North: mask&4 != 0,
			South: mask&8 != 0,
		}
		v := MovementVector(d)
		length := math.Hypot(v.X, v.Y)

		cancels := (d.West == d.East) && (d.North == d.South)
		if cancels {
			if v.X != 0 || v.Y != 0 {
				t.Fatalf("%+v: expected zero vector, got %v", d, v)
			}
			continue
		}
		if math.Abs(length-1) > 1e-12 {
			t.Fatalf("%+v: expected unit vector, got %v (length %v)", d, v, length)
		}
	}
}

func TestMovementVectorAxes(t *testing.T) {
	cases := []struct {
		name string
		in   directionalInput
		x, y float64
	}{
		{"west", directionalInput{West: true}, -1, 0},
		{"east", directionalInput{East: true}, 1, 0},
		{"north is up the screen", directionalInput{North: true}, 0, -1},
		{"south", directionalInput{South: true}, 0, 1},
		{"north east", directionalInput{North: true, East: true}, math.Sqrt2 / 2, -math.Sqrt2 / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := MovementVector(c.in)
			if math.Abs(v.X-c.x) > 1e-12 || math.Abs(v.Y-c.y) > 1e-12 {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.x, c.y, v.X, v.Y)
			}
		})
	}
}

func TestResolveFacing(t *testing.T) {
	cases := []struct {
		name    string
		current animations.Direction
		in      directionalInput
		want    animations.Direction
	}{
		{"nothing held keeps facing", animations.East, directionalInput{}, animations.East},
		{"single", animations.South, directionalInput{West: true}, animations.West},
		{"east after west", animations.South, directionalInput{West: true, East: true}, animations.East},
		{"north after east", animations.South, directionalInput{East: true, North: true}, animations.North},
		{"south wins", animations.North, directionalInput{West: true, North: true, South: true}, animations.South},
		{"all held", animations.West, directionalInput{West: true, East: true, North: true, South: true}, animations.South},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ResolveFacing(c.current, c.in); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestMovePlayersKeepsDepth(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(e, 100, 100)
	transform := components.Transform.Get(player)
	transform.Depth = 2.000000001
	before := math.Float64bits(transform.Depth)

	hold(e, cfg.ActionMoveNorth, cfg.ActionMoveEast)
	for i := 0; i < 30; i++ {
		movePlayers(e, 1.0/60)
	}

	if got := math.Float64bits(transform.Depth); got != before {
		t.Fatalf("depth changed from %v to %v", math.Float64frombits(before), transform.Depth)
	}
	if transform.Position.X <= 100 || transform.Position.Y >= 100 {
		t.Fatalf("expected to move north east, at %v", transform.Position)
	}
}

func TestMovePlayersMovesAtSpeed(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(e, 100, 100)

	hold(e, cfg.ActionMoveWest)
	movePlayers(e, 0.5)

	transform := components.Transform.Get(player)
	want := 100 - cfg.Player.Speed*0.5
	if math.Abs(transform.Position.X-want) > 1e-9 || transform.Position.Y != 100 {
		t.Fatalf("expected (%v, 100), got %v", want, transform.Position)
	}
}

func TestDirectionChangeResetsSpriteIndex(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(e, 100, 100)
	anim := components.Animation.Get(player)
	sprite := components.Sprite.Get(player)

	// walk south a few frames into the block
	anim.Tick(0.25, cfg.Animation.FrameDuration)
	sprite.Index = anim.Frame()
	if sprite.Index == animations.South.FirstIndex() {
		t.Fatalf("expected to be past the first south frame")
	}

	hold(e, cfg.ActionMoveEast)
	movePlayers(e, 0)

	if anim.Direction != animations.East {
		t.Fatalf("expected to face east, got %s", anim.Direction)
	}
	if sprite.Index != animations.East.FirstIndex() {
		t.Fatalf("expected sprite index %d, got %d", animations.East.FirstIndex(), sprite.Index)
	}

	// holding the same direction leaves the frame alone
	sprite.Index = animations.East.FirstIndex() + 2
	movePlayers(e, 0)
	if sprite.Index != animations.East.FirstIndex()+2 {
		t.Fatalf("same direction reset the frame to %d", sprite.Index)
	}
}

func TestMovePlayersStopsAtWalls(t *testing.T) {
	e := newTestECS(t)
	factory.CreateSpace(e, 200, 200, 16, 16)
	factory.CreateWall(e, assets.Rect{X: 100, Y: 0, Width: 16, Height: 200})

	// collision box spans x 60..80
	player := newTestPlayer(e, 70, 100)
	transform := components.Transform.Get(player)
	obj := components.Object.Get(player).Object

	hold(e, cfg.ActionMoveEast)
	movePlayers(e, 30/cfg.Player.Speed)

	if math.Abs(transform.Position.X-90) > 1e-9 {
		t.Fatalf("expected to stop against the wall at x 90, got %v", transform.Position.X)
	}
	if math.Abs(obj.X+obj.W-100) > 1e-9 {
		t.Fatalf("expected collision box to touch the wall, right edge at %v", obj.X+obj.W)
	}

	// pressing into the wall while walking south slides along it
	hold(e, cfg.ActionMoveEast, cfg.ActionMoveSouth)
	movePlayers(e, 30/cfg.Player.Speed)

	if math.Abs(transform.Position.X-90) > 1e-9 {
		t.Fatalf("expected x to stay at 90, got %v", transform.Position.X)
	}
	if transform.Position.Y <= 100 {
		t.Fatalf("expected to slide south, y is %v", transform.Position.Y)
	}
}

func TestResolveSolidsFractionalMoves(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		dx    float64
		wantX float64
	}{
		{"edge lands just past a cell boundary", 1226.3215, 2.1333, 1228},
		{"stops short of the wall", 1226, 1.5, 1227.5},
		{"already touching", 1228, 0.75, 1228},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			space := resolv.NewSpace(1280, 960, 16, 16)
			wall := resolv.NewObject(1248, 32, 32, 896, tags.ResolvSolid)
			box := resolv.NewObject(c.x, 448, 20, 12, tags.ResolvPlayer)
			space.Add(wall, box)

			dx, _ := resolveSolids(box, c.dx, 0)

			if math.Abs(box.X-c.wantX) > 1e-9 {
				t.Fatalf("expected box at x %v, got %v (moved %v)", c.wantX, box.X, dx)
			}
			if box.X+box.W > wall.X+1e-9 {
				t.Fatalf("box right edge %v is inside the wall at %v", box.X+box.W, wall.X)
			}
		})
	}
}
