package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in world space. Depth orders drawing and
// is never changed by movement.
type TransformData struct {
	Position math.Vec2
	Depth    float64
}

var Transform = donburi.NewComponentType[TransformData]()
