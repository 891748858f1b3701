// Package synth renders the balloon pop sound as raw PCM. There are no
// audio assets; the whole signal is generated in memory.
package synth

import (
	"math"
	"math/rand"

	cfg "github.com/pmattheis/balloonfield/config"
)

const bytesPerFrame = 4 // 16-bit little-endian stereo

// RenderPop synthesizes one pop into 16-bit LE stereo PCM at the configured
// sample rate. Two layers share one output gain stage: a triangle wave
// sweeping from SweepStartHz down to SweepEndHz under an exponential decay,
// and a shorter low-pass filtered noise burst for the percussive transient.
// The rand source only feeds the noise layer; inject a seeded one for
// deterministic output.
func RenderPop(rng *rand.Rand) []byte {
	rate := float64(cfg.Audio.SampleRate)
	frames := int(rate * cfg.Audio.PopDuration)
	noiseFrames := int(rate * cfg.Audio.NoiseDuration)
	buf := make([]byte, frames*bytesPerFrame)

	phase := 0.0
	lowpass := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / rate
		progress := t / cfg.Audio.PopDuration

		// Tonal body: pitch sweep with exponential amplitude decay.
		freq := cfg.Audio.SweepStartHz * math.Pow(cfg.Audio.SweepEndHz/cfg.Audio.SweepStartHz, progress)
		phase += freq / rate
		body := triangle(phase) * math.Exp(-6*progress) * cfg.Audio.BodyGain

		// Noise transient: faster envelope, confined to the first few ms.
		noise := 0.0
		if i < noiseFrames {
			white := rng.Float64()*2 - 1
			lowpass += (white - lowpass) * 0.28
			noise = lowpass * math.Exp(-9*float64(i)/float64(noiseFrames)) * cfg.Audio.NoiseGain
		}

		writeStereo(buf, i, clamp(body+noise))
	}
	return buf
}

// triangle evaluates a unit triangle wave at the given phase (in cycles).
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4*math.Abs(p-0.5) - 1
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// writeStereo stores a [-1,1] sample as int16 LE on both channels.
func writeStereo(buf []byte, frame int, sample float64) {
	const maxInt16 = 1<<15 - 1
	v := int16(sample * maxInt16)
	off := frame * bytesPerFrame
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v)
	buf[off+3] = byte(v >> 8)
}
