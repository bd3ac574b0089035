// Package color provides the integer color math used by the lighting
// engine: 8-bit RGB values, brightness scaling, HSV conversion and a
// fixed-point sine approximation. Everything here is pure integer
// arithmetic so effect output is deterministic across platforms.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color, one byte per channel, no alpha.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a 6-digit hex color string, with or without a
// leading '#' (e.g. "ff8800" or "#FF8800").
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex formats the color as a 6-digit lowercase hex string without a
// leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Scale applies a brightness percentage to each channel using
// truncating integer division, matching the hardware driver's
// scaling. brightness is expected in [0,100]; 100 is the identity.
func (c RGB) Scale(brightness int) RGB {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 100 {
		brightness = 100
	}
	return RGB{
		R: uint8(int(c.R) * brightness / 100),
		G: uint8(int(c.G) * brightness / 100),
		B: uint8(int(c.B) * brightness / 100),
	}
}

// HSVToRGB converts hue [0,360), saturation [0,100] and value [0,100]
// to RGB using the standard hexagonal model in integer arithmetic.
func HSVToRGB(h, s, v int) RGB {
	h = ((h % 360) + 360) % 360
	if s < 0 {
		s = 0
	} else if s > 100 {
		s = 100
	}
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}

	c := v * s / 100
	x := c * (60 - abs(h%120-60)) / 60
	m := v - c

	var r, g, b int
	switch h / 60 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8((r + m) * 255 / 100),
		G: uint8((g + m) * 255 / 100),
		B: uint8((b + m) * 255 / 100),
	}
}

// Quarter-wave anchor points for the sine approximation. Values are
// true sine at 0°, 30°, 60° and 90°, scaled to 100.
var sineQuarter = [4]int{0, 50, 87, 100}

// Sine returns a fixed-point approximation of sin(deg) scaled to
// [-100,100]. The quarter wave is piecewise linear between 30°
// anchors and extended to the full period by symmetry, so Sine(0)=0,
// Sine(90)=100, Sine(180)=0 and Sine(270)=-100 hold exactly. Maximum
// deviation from true sine is about 2-3%, which is accepted for
// lighting envelopes.
func Sine(deg int) int {
	deg = ((deg % 360) + 360) % 360

	neg := false
	if deg >= 180 {
		deg -= 180
		neg = true
	}
	if deg > 90 {
		deg = 180 - deg
	}

	seg := deg / 30
	if seg > 2 {
		seg = 2
	}
	lo := sineQuarter[seg]
	hi := sineQuarter[seg+1]
	v := lo + (hi-lo)*(deg-seg*30)/30

	if neg {
		return -v
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
