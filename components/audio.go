package components

import "github.com/yohamta/donburi"

// AudioData queues cries to play on the next audio update (singleton component)
type AudioData struct {
	PendingCries []int
}

var Audio = donburi.NewComponentType[AudioData]()
