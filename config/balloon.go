package config

// BalloonConfig contains spawn scheduling and motion ranges.
// All durations are in seconds; sizes and amplitudes in pixels.
type BalloonConfig struct {
	// Population policy
	MaxLive    int     // Hard cap on the live set; ticks at the cap are no-ops
	BurstCount int     // Spawned immediately on the disabled->enabled transition
	SpawnEvery float64 // Period of the spawn timer

	// Randomized parameter ranges (drawn once per balloon, immutable after)
	SizeMin, SizeMax     float64 // Body width
	XMin, XMax           float64 // Horizontal home position, fraction of screen width
	HueMax               float64 // Hue drawn uniformly in [0, HueMax)
	AscentMin, AscentMax float64
	SwayMin, SwayMax     float64

	// Body proportions relative to Size
	BodyHeightRatio float64 // Body is taller than wide
	KnotHeight      float64
	StringRatio     float64 // String length relative to Size

	// Animation shaping
	OpacityStart    float64 // Opacity ramps from here to 1.0
	OpacityRampFrac float64 // Fraction of the ascent spent ramping
	PopShrinkTime   float64 // Shrink/fade transition after a pop
}

func init() {
	Balloon = BalloonConfig{
		MaxLive:    35,
		BurstCount: 12,
		SpawnEvery: 1.6,

		SizeMin:   36,
		SizeMax:   72,
		XMin:      0.02,
		XMax:      0.98,
		HueMax:    360,
		AscentMin: 10,
		AscentMax: 20,
		SwayMin:   20,
		SwayMax:   80,

		BodyHeightRatio: 1.25,
		KnotHeight:      7,
		StringRatio:     0.9,

		OpacityStart:    0.95,
		OpacityRampFrac: 0.1,
		PopShrinkTime:   0.18,
	}
}
