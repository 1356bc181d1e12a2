package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every animated sprite on the fixed cadence.
// Characters keep cycling their current block while standing still.
func UpdateAnimations(e *ecs.ECS) {
	animate(e, DeltaTime())
}

func animate(e *ecs.ECS, dt float64) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		anim.Tick(dt, cfg.Animation.FrameDuration)

		if entry.HasComponent(components.Sprite) {
			components.Sprite.Get(entry).Index = anim.Frame()
		}
	})
}
