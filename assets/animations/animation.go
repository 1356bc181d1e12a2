package animations

// Animation walks the 4-frame block of the direction a character faces.
// The frame advances on a fixed cadence and snaps back to the block's first
// pose whenever the facing changes.
type Animation struct {
	First     int
	Last      int
	Direction Direction
	frame     int
	elapsed   float64 // seconds since the last frame advance
}

// NewAnimation starts an animation on the first pose of dir.
func NewAnimation(dir Direction) *Animation {
	return &Animation{
		First:     dir.FirstIndex(),
		Last:      dir.LastIndex(),
		Direction: dir,
		frame:     dir.FirstIndex(),
	}
}

// RequestDirection turns the animation toward dir. It reports whether the
// facing changed; when it did, Frame is back on the new block's first pose
// and the caller must show that frame.
func (a *Animation) RequestDirection(dir Direction) bool {
	if a.Direction == dir {
		return false
	}

	a.Direction = dir
	a.First = dir.FirstIndex()
	a.Last = dir.LastIndex()
	a.frame = a.First
	return true
}

// Tick accumulates dt seconds and advances one frame per frameDuration,
// wrapping from Last to First. Leftover time carries into the next tick.
func (a *Animation) Tick(dt, frameDuration float64) {
	if frameDuration <= 0 {
		return
	}

	a.elapsed += dt
	for a.elapsed >= frameDuration {
		a.elapsed -= frameDuration
		if a.frame == a.Last {
			a.frame = a.First
		} else {
			a.frame++
		}
	}
}

// Frame is the sheet index that should be displayed.
func (a *Animation) Frame() int {
	return a.frame
}
