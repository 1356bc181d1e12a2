package animations

// Direction is the way a character faces. Each direction owns one row of a
// 4x4 walking sheet.
type Direction int

const (
	South Direction = iota
	West
	East
	North
)

// FramesPerDirection is the number of poses in each direction's block.
const FramesPerDirection = 4

var directionNames = [...]string{
	South: "south",
	West:  "west",
	East:  "east",
	North: "north",
}

func (d Direction) String() string {
	if d < South || d > North {
		return "unknown"
	}
	return directionNames[d]
}

// FirstIndex is the sheet index of the direction's first pose.
func (d Direction) FirstIndex() int {
	return int(d) * FramesPerDirection
}

// LastIndex is the sheet index of the direction's last pose.
func (d Direction) LastIndex() int {
	return d.FirstIndex() + FramesPerDirection - 1
}

// ParseDirection maps a stored name back to a Direction.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), true
		}
	}
	return South, false
}
