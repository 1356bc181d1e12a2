package animations

import "testing"

var allDirections = []Direction{South, West, East, North}

func TestDirectionBlocksPartitionSheet(t *testing.T) {
	seen := make(map[int]Direction)
	for _, d := range allDirections {
		if d.LastIndex() != d.FirstIndex()+3 {
			t.Fatalf("%s: last %d is not first %d + 3", d, d.LastIndex(), d.FirstIndex())
		}
		for i := d.FirstIndex(); i <= d.LastIndex(); i++ {
			if other, ok := seen[i]; ok {
				t.Fatalf("frame %d claimed by both %s and %s", i, other, d)
			}
			seen[i] = d
		}
	}
	for i := 0; i < 16; i++ {
		if _, ok := seen[i]; !ok {
			t.Fatalf("frame %d not covered by any direction", i)
		}
	}
	if len(seen) != 16 {
		t.Fatalf("expected 16 frames, got %d", len(seen))
	}
}

func TestDirectionFirstIndex(t *testing.T) {
	cases := []struct {
		dir   Direction
		first int
	}{
		{South, 0},
		{West, 4},
		{East, 8},
		{North, 12},
	}
	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			if got := c.dir.FirstIndex(); got != c.first {
				t.Fatalf("expected %d, got %d", c.first, got)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range allDirections {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("up"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}

func TestRequestSameDirectionDoesNothing(t *testing.T) {
	for _, d := range allDirections {
		t.Run(d.String(), func(t *testing.T) {
			a := NewAnimation(d)
			a.Tick(0.25, 0.1) // move off the first pose
			before := *a

			if a.RequestDirection(d) {
				t.Fatalf("expected false for unchanged direction")
			}
			if *a != before {
				t.Fatalf("state mutated: before %+v after %+v", before, *a)
			}
		})
	}
}

func TestRequestNewDirectionResetsFrame(t *testing.T) {
	for _, from := range allDirections {
		for _, to := range allDirections {
			if from == to {
				continue
			}
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				a := NewAnimation(from)
				a.Tick(0.2, 0.1)

				if !a.RequestDirection(to) {
					t.Fatalf("expected true for a direction change")
				}
				if a.Direction != to {
					t.Fatalf("direction = %s, want %s", a.Direction, to)
				}
				if a.Frame() != to.FirstIndex() {
					t.Fatalf("frame = %d, want %d", a.Frame(), to.FirstIndex())
				}
				if a.First != to.FirstIndex() || a.Last != to.LastIndex() {
					t.Fatalf("block = [%d,%d], want [%d,%d]", a.First, a.Last, to.FirstIndex(), to.LastIndex())
				}
			})
		}
	}
}

func TestTickAdvancesOneFramePerDuration(t *testing.T) {
	const frameDuration = 0.25

	a := NewAnimation(East)
	prev := a.Frame()
	for _, want := range []int{9, 10, 11, 8, 9} {
		// two half steps sum to exactly one frame duration
		a.Tick(0.125, frameDuration)
		if a.Frame() != prev {
			t.Fatalf("frame advanced after half a duration: %d", a.Frame())
		}
		a.Tick(0.125, frameDuration)
		if a.Frame() != want {
			t.Fatalf("frame = %d, want %d", a.Frame(), want)
		}
		prev = want
	}
}

func TestTickReferenceCadence(t *testing.T) {
	a := NewAnimation(South)
	a.Tick(0.05, 0.1)
	if a.Frame() != 0 {
		t.Fatalf("advanced early: %d", a.Frame())
	}
	a.Tick(0.05, 0.1)
	if a.Frame() != 1 {
		t.Fatalf("expected frame 1 after 0.1s, got %d", a.Frame())
	}
}

func TestTickCarriesLeftoverTime(t *testing.T) {
	a := NewAnimation(North)

	// a long frame catches up on every elapsed duration
	a.Tick(0.75, 0.25)
	if a.Frame() != 15 {
		t.Fatalf("frame = %d, want 15", a.Frame())
	}

	a.Tick(0.375, 0.25)
	if a.Frame() != 12 {
		t.Fatalf("frame = %d, want wrap to 12", a.Frame())
	}
	if a.elapsed != 0.125 {
		t.Fatalf("leftover = %v, want 0.125", a.elapsed)
	}
}

func TestTickStaysInsideBlock(t *testing.T) {
	for _, d := range allDirections {
		a := NewAnimation(d)
		for i := 0; i < 100; i++ {
			a.Tick(0.0625, 0.125)
			if a.Frame() < a.First || a.Frame() > a.Last {
				t.Fatalf("%s: frame %d escaped [%d,%d]", d, a.Frame(), a.First, a.Last)
			}
		}
	}
}

func TestTickIgnoresNonPositiveDuration(t *testing.T) {
	a := NewAnimation(West)
	a.Tick(1, 0)
	a.Tick(1, -1)
	if a.Frame() != West.FirstIndex() {
		t.Fatalf("frame moved with a non-positive duration: %d", a.Frame())
	}
}
