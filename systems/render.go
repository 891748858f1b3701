package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBalloons renders every balloon: string first, then the cached
// gradient body so the string sits behind it. Popped balloons shrink and
// fade around their center while the transition plays.
func DrawBalloons(e *ecs.ECS, screen *ebiten.Image) {
	var stringTint color.RGBA
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		stringTint = components.Settings.Get(settingsEntry).Palette().String
	}

	components.Balloon.Each(e.World, func(entry *donburi.Entry) {
		balloon := components.Balloon.Get(entry)
		ascent := components.Ascent.Get(entry)
		sprite := components.Sprite.Get(entry)

		// The gradient body depends only on immutable spawn parameters,
		// so render it once and reuse it for the whole ascent.
		if sprite.Image == nil {
			sprite.Image = renderBody(balloon)
		}

		bodyH := balloon.BodyHeight(cfg.Balloon.BodyHeightRatio)
		imgH := bodyH + cfg.Balloon.KnotHeight
		scale := 1.0
		alpha := ascent.Alpha
		if entry.HasComponent(components.Popping) {
			scale = components.Popping.Get(entry).Scale
			alpha = scale
		}

		// String, drawn behind the body from the knot downward.
		if scale == 1 {
			knotY := float32(ascent.TopY + imgH)
			vector.StrokeLine(screen,
				float32(ascent.X), knotY,
				float32(ascent.X), knotY+float32(balloon.Size*cfg.Balloon.StringRatio),
				1, stringTint, true)
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-balloon.Size/2, -imgH/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(ascent.X, ascent.TopY+imgH/2)
		drawOp.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// renderBody rasterizes the balloon body into an image: an egg-shaped
// ellipse (narrower toward the bottom) filled with a radial gradient
// anchored off-center toward the upper left, plus a darker knot triangle
// at the bottom center.
func renderBody(balloon *components.BalloonData) *ebiten.Image {
	c := cfg.Balloon
	w := int(math.Ceil(balloon.Size))
	bodyH := int(math.Ceil(balloon.BodyHeight(c.BodyHeightRatio)))
	knotH := int(c.KnotHeight)
	h := bodyH + knotH

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	cx := float64(w) / 2
	cy := float64(bodyH) / 2
	rx := float64(w) / 2
	ry := float64(bodyH) / 2

	// Light source sits up and to the left of center.
	fx := cx - 0.35*rx
	fy := cy - 0.4*ry
	maxDist := math.Hypot(rx+0.35*rx, ry+0.4*ry)

	for py := 0; py < bodyH; py++ {
		ny := (float64(py) + 0.5 - cy) / ry
		// Egg profile: pull the sides in below the equator.
		pinch := 1.0
		if ny > 0 {
			pinch = 1 - 0.16*ny
		}
		for px := 0; px < w; px++ {
			nx := (float64(px) + 0.5 - cx) / (rx * pinch)
			if nx*nx+ny*ny > 1 {
				continue
			}
			d := math.Hypot(float64(px)+0.5-fx, float64(py)+0.5-fy) / maxDist
			light := 0.78 - 0.38*d
			sat := 0.55 + 0.3*d
			img.SetRGBA(px, py, hslToRGBA(balloon.Hue, sat, light))
		}
	}

	// Knot: a small triangle in a darker shade, widening downward from the
	// body's bottom tip.
	knot := hslToRGBA(balloon.Hue, 0.6, 0.3)
	for j := 0; j < knotH; j++ {
		half := (float64(j) + 1) / float64(knotH) * c.KnotHeight * 0.55
		for px := int(cx - half); px <= int(cx+half); px++ {
			if px >= 0 && px < w {
				img.SetRGBA(px, bodyH+j, knot)
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}

// hslToRGBA converts hue (degrees), saturation and lightness in [0,1].
func hslToRGBA(hue, sat, light float64) color.RGBA {
	hue = math.Mod(math.Mod(hue, 360)+360, 360) / 360

	if sat == 0 {
		v := uint8(light * 255)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}

	var q float64
	if light < 0.5 {
		q = light * (1 + sat)
	} else {
		q = light + sat - light*sat
	}
	p := 2*light - q

	r := hueToChannel(p, q, hue+1.0/3)
	g := hueToChannel(p, q, hue)
	b := hueToChannel(p, q, hue-1.0/3)
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
