package systems

import (
	"bytes"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/synth"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - one context for the whole session, created lazily on
// the first pop and reused by every pop after it.
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	popPCM             []byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the audio context and renders the pop buffer
// (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		popPCM = synth.RenderPop(rand.New(rand.NewSource(time.Now().UnixNano())))
	})
}

// UpdateAudio drains the pending pop queue. Runs every frame, muted or not.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.PendingPops == 0 {
		return
	}

	muted := false
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		muted = components.Settings.Get(settingsEntry).Muted
	}

	for i := 0; i < audioData.PendingPops; i++ {
		playPop(muted)
	}
	audioData.PendingPops = 0
}

// playPop builds and starts one pop player. When muted the same graph is
// constructed and played at zero volume, keeping timing identical. Audio is
// an embellishment: every failure here is swallowed and the visual pop has
// already happened.
func playPop(muted bool) {
	initGlobalAudio()
	if globalAudioContext == nil {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(popPCM))
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if muted {
		volume = 0
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayPop queues a synthesizer invocation. Concurrent pops each get their
// own short-lived player against the shared context, so they never
// interfere.
func PlayPop(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingPops++
}

// SetSFXVolume changes the pop volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{})
	}
	return components.Audio.Get(entry)
}
