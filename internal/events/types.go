// Package events provides the in-process event bus the lighting
// engine publishes state changes on. Subscribers (metrics, API event
// streams) react without coupling to the engine.
package events

// Event type constants for kelindar/event.
const (
	TypeModeChanged uint32 = iota + 1
	TypeSpeedChanged
	TypeBrightnessChanged
	TypeZoneColorChanged
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// AllZones marks a color change that applied to every zone at once.
const AllZones = -1

// ModeChangedEvent is published after the animation mode changes.
type ModeChangedEvent struct {
	Mode      string `json:"mode" example:"rainbow" doc:"New animation mode"`
	Active    bool   `json:"active" doc:"Whether an animation is now running"`
	Timestamp string `json:"timestamp" example:"2026-08-31T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for ModeChangedEvent.
func (e ModeChangedEvent) Type() uint32 { return TypeModeChanged }

// SpeedChangedEvent is published after the animation speed changes.
type SpeedChangedEvent struct {
	Speed     int    `json:"speed" example:"5" doc:"New animation speed (1-10)"`
	Timestamp string `json:"timestamp" doc:"Event timestamp"`
}

// Type returns the event type identifier for SpeedChangedEvent.
func (e SpeedChangedEvent) Type() uint32 { return TypeSpeedChanged }

// BrightnessChangedEvent is published after the global brightness changes.
type BrightnessChangedEvent struct {
	Brightness int    `json:"brightness" example:"75" doc:"New brightness percentage"`
	Timestamp  string `json:"timestamp" doc:"Event timestamp"`
}

// Type returns the event type identifier for BrightnessChangedEvent.
func (e BrightnessChangedEvent) Type() uint32 { return TypeBrightnessChanged }

// ZoneColorChangedEvent is published after a zone base color changes.
// Zone is AllZones when all zones were set in one batch.
type ZoneColorChangedEvent struct {
	Zone      int    `json:"zone" example:"0" doc:"Zone index, -1 for all zones"`
	Color     string `json:"color" example:"ff0000" doc:"New base color as hex RGB"`
	Timestamp string `json:"timestamp" doc:"Event timestamp"`
}

// Type returns the event type identifier for ZoneColorChangedEvent.
func (e ZoneColorChangedEvent) Type() uint32 { return TypeZoneColorChanged }
