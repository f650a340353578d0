package tinyrender

import (
	"image/color"

	"github.com/gogpu/gputypes"
)

// toNRGBA converts a float color to 8-bit non-premultiplied RGBA,
// clamping each channel to [0, 1].
func toNRGBA(c gputypes.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to a float color.
func FromColor(c color.Color) gputypes.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gputypes.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// lerpColor blends a toward b by t.
func lerpColor(a, b gputypes.Color, t float64) gputypes.Color {
	return gputypes.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v + 0.5
}
