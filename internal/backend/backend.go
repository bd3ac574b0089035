// Package backend abstracts access to the 4-zone keyboard backlight
// hardware. The real implementation talks to the fourzone platform
// driver through its sysfs attribute group; a memory implementation
// backs tests and machines without the driver.
package backend

import (
	"github.com/smazurov/fourzone/internal/effects"
)

// Backend reads and writes the four zone colors. Errors are opaque
// transport failures; callers do not retry automatically.
type Backend interface {
	// ReadZoneColors returns the colors currently shown by the
	// hardware, one per zone.
	ReadZoneColors() (effects.Zones, error)

	// WriteZoneColors pushes all four zone colors to the hardware in
	// one batch. The call is effectively synchronous: when it returns
	// the hardware has accepted the colors.
	WriteZoneColors(effects.Zones) error
}
