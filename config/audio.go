package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64

	// Pop synthesis. The pop is a triangle wave sweeping down in pitch with
	// an exponential envelope, plus a short filtered noise burst underneath.
	PopDuration   float64 // seconds
	NoiseDuration float64 // seconds, must not exceed PopDuration
	SweepStartHz  float64
	SweepEndHz    float64
	BodyGain      float64 // tonal body level in the mix
	NoiseGain     float64 // noise transient level in the mix
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,

		PopDuration:   0.12,
		NoiseDuration: 0.05,
		SweepStartHz:  240,
		SweepEndHz:    60,
		BodyGain:      0.55,
		NoiseGain:     0.35,
	}
}
