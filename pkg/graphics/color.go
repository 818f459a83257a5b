package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB), not premultiplied.
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color for use with image/color consumers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// Hex returns the color as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses #RRGGBB or #AARRGGBB.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return 0, fmt.Errorf("graphics: invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("graphics: invalid color %q: %w", s, err)
	}
	if len(s) == 7 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
