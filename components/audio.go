package components

import "github.com/yohamta/donburi"

// AudioData queues synthesizer invocations for the audio system to drain.
// Every pop enqueues exactly once, muted or not.
type AudioData struct {
	PendingPops int
}

var Audio = donburi.NewComponentType[AudioData]()
