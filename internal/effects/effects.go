// Package effects implements the procedural animation effects for the
// 4-zone backlight. Every effect is a pure function of elapsed time,
// speed and the per-zone base colors; no state is carried between
// frames, so a frame can be recomputed for any point in time.
package effects

import (
	"fmt"
	"strings"
	"time"

	"github.com/smazurov/fourzone/internal/color"
)

// ZoneCount is the number of independently addressable backlight zones.
const ZoneCount = 4

// Zones holds one color per backlight zone.
type Zones [ZoneCount]color.RGB

// Mode identifies a lighting mode. Static means no animation.
type Mode uint32

const (
	Static Mode = iota
	Breathing
	Rainbow
	Wave
	Pulse
	Chase
	Sparkle
	Candle
	Aurora
	Disco
)

var modeNames = map[Mode]string{
	Static:    "static",
	Breathing: "breathing",
	Rainbow:   "rainbow",
	Wave:      "wave",
	Pulse:     "pulse",
	Chase:     "chase",
	Sparkle:   "sparkle",
	Candle:    "candle",
	Aurora:    "aurora",
	Disco:     "disco",
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", uint32(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == want {
			return m, nil
		}
	}
	return Static, fmt.Errorf("unknown animation mode %q", name)
}

// Names returns all mode names in mode order.
func Names() []string {
	names := make([]string, 0, len(modeNames))
	for m := Static; m <= Disco; m++ {
		names = append(names, modeNames[m])
	}
	return names
}

// Func computes one frame of an effect. elapsed is the time since the
// animation started, speed is in [1,10] and zones are the base colors
// before brightness scaling.
type Func func(elapsed time.Duration, speed int, zones Zones) Zones

// Base cycle periods at speed 1. The effective cycle is period/speed.
const (
	breathingPeriod = 2000 * time.Millisecond
	rainbowPeriod   = 3000 * time.Millisecond
	wavePeriod      = 2000 * time.Millisecond
	pulsePeriod     = 1500 * time.Millisecond
	chasePeriod     = 1200 * time.Millisecond
	sparklePeriod   = 3000 * time.Millisecond
	candlePeriod    = 100 * time.Millisecond
	auroraPeriod    = 4000 * time.Millisecond
	discoPeriod     = 300 * time.Millisecond
)

var registry = map[Mode]Func{
	Breathing: breathing,
	Rainbow:   rainbow,
	Wave:      wave,
	Pulse:     pulse,
	Chase:     chase,
	Sparkle:   sparkle,
	Candle:    candle,
	Aurora:    aurora,
	Disco:     disco,
}

// Lookup returns the effect function for a mode. Static and unknown
// modes have no effect function.
func Lookup(m Mode) (Func, bool) {
	fn, ok := registry[m]
	return fn, ok
}

// cycle reduces elapsed time to a position within the effect's cycle,
// returning (position, length) in milliseconds. speed shortens the
// cycle; elapsed may exceed the cycle length indefinitely.
func cycle(elapsed time.Duration, speed int, base time.Duration) (int64, int64) {
	if speed < 1 {
		speed = 1
	}
	length := base.Milliseconds() / int64(speed)
	if length < 1 {
		length = 1
	}
	return elapsed.Milliseconds() % length, length
}

// scaleZones applies a 0-100 intensity to every zone's base color.
func scaleZones(zones Zones, intensity int) Zones {
	var out Zones
	for i, c := range zones {
		out[i] = c.Scale(intensity)
	}
	return out
}

// breathing applies a shared sine intensity envelope to all zones.
func breathing(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, breathingPeriod)
	angle := int(pos * 360 / length)
	intensity := 50 + 50*color.Sine(angle)/100
	return scaleZones(zones, intensity)
}

// pulse is the breathing envelope on a shorter cycle.
func pulse(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, pulsePeriod)
	angle := int(pos * 360 / length)
	intensity := 50 + 50*color.Sine(angle)/100
	return scaleZones(zones, intensity)
}

// rainbow sweeps the full hue circle, each zone offset by 90 degrees.
func rainbow(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, rainbowPeriod)
	base := int(pos * 360 / length)
	var out Zones
	for i := range out {
		out[i] = color.HSVToRGB(base+i*90, 100, 100)
	}
	return out
}

// wave steps each zone through a 4-stop phase cycle, shifted by zone
// index, producing a rolling intensity wave across the keyboard.
func wave(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, wavePeriod)
	step := int(pos * 4 / length)
	var out Zones
	for i, c := range zones {
		angle := ((step + i) % 4) * 90
		intensity := 30 + 70*(100+color.Sine(angle))/200
		out[i] = c.Scale(intensity)
	}
	return out
}

// chase lights exactly one zone at a time at full intensity using
// zone 0's base color; the rest stay dim.
func chase(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, chasePeriod)
	lit := int(pos * ZoneCount / length)
	var out Zones
	for i := range out {
		if i == lit {
			out[i] = zones[0]
		} else {
			out[i] = zones[0].Scale(100 / 6)
		}
	}
	return out
}

// sparkle flashes each zone white for an eighth of the cycle, offset
// per zone, and keeps it dim otherwise.
func sparkle(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, sparklePeriod)
	window := length / 8
	var out Zones
	for i, c := range zones {
		// Zone flash offsets are 800ms apart at speed 1 and shrink
		// with the cycle.
		zoneOffset := int64(i) * 800 * length / sparklePeriod.Milliseconds()
		shifted := ((pos-zoneOffset)%length + length) % length
		if shifted < window {
			out[i] = color.RGB{R: 255, G: 255, B: 255}
		} else {
			out[i] = c.Scale(100 / 8)
		}
	}
	return out
}

// candleWarm is the fixed candlelight palette.
var candleWarm = color.RGB{R: 255, G: 150, B: 50}

// candle flickers a warm palette with a per-zone phase offset.
func candle(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, candlePeriod)
	var out Zones
	for i := range out {
		phase := (pos + int64(i)*length/ZoneCount) % length
		intensity := 60 + int(40*phase/length)
		out[i] = candleWarm.Scale(intensity)
	}
	return out
}

// auroraPalette is the fixed green/blue aurora palette.
var auroraPalette = color.RGB{R: 20, G: 200, B: 180}

// aurora drifts a phase-shifted sine envelope over a fixed palette.
func aurora(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, auroraPeriod)
	var out Zones
	for i := range out {
		angle := int(pos*360/length) + i*90
		intensity := 50 + 50*color.Sine(angle)/100
		out[i] = auroraPalette.Scale(intensity)
	}
	return out
}

// discoColors are the four saturated strobe colors, one per zone.
var discoColors = Zones{
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 255, G: 255, B: 0},
}

// disco strobes fixed saturated colors for the first half of the
// cycle and blanks all zones for the second half.
func disco(elapsed time.Duration, speed int, zones Zones) Zones {
	pos, length := cycle(elapsed, speed, discoPeriod)
	if pos < length/2 {
		return discoColors
	}
	return Zones{}
}
