package utils

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

// Colour is a normalised RGBA colour as the GL pipeline consumes it.
type Colour struct {
	R, G, B, A float32
}

var colourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

func ColourValidate(c string) bool {
	return colourPattern.MatchString(c)
}

func ColourParse(s string) Colour {
	var r, g, b, a uint8
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), uint8(c.A*255))
}

func (c Colour) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Scaled multiplies the colour channels by f, clamped to [0, 1].
// Alpha is left alone so a pulse never changes opacity.
func (c Colour) Scaled(f float32) Colour {
	return Colour{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
