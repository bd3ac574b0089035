package backend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smazurov/fourzone/internal/color"
	"github.com/smazurov/fourzone/internal/effects"
)

// DefaultSysfsPath is the attribute group registered by the fourzone
// platform driver.
const DefaultSysfsPath = "/sys/devices/platform/omen-rgb-keyboard/rgb_zones"

// sysfs implements Backend over the driver's zone00..zone03
// attributes. Writes are 6-digit hex colors; reads come back as
// "red: %d, green: %d, blue: %d" lines.
type sysfs struct {
	path string
}

// newSysfs creates a sysfs backend rooted at path.
func newSysfs(path string) *sysfs {
	return &sysfs{path: path}
}

// zoneAttr returns the attribute path for a zone. The driver names
// zones with a two-digit hex suffix.
func (s *sysfs) zoneAttr(zone int) string {
	return filepath.Join(s.path, fmt.Sprintf("zone%02X", zone))
}

// ReadZoneColors reads all four zone attributes.
func (s *sysfs) ReadZoneColors() (effects.Zones, error) {
	var zones effects.Zones
	for i := range zones {
		data, err := os.ReadFile(s.zoneAttr(i))
		if err != nil {
			return effects.Zones{}, fmt.Errorf("failed to read zone %d: %w", i, err)
		}
		var r, g, b int
		if _, err := fmt.Sscanf(string(data), "red: %d, green: %d, blue: %d", &r, &g, &b); err != nil {
			return effects.Zones{}, fmt.Errorf("failed to parse zone %d state %q: %w", i, string(data), err)
		}
		if r < 0 || g < 0 || b < 0 {
			return effects.Zones{}, fmt.Errorf("zone %d reported no color", i)
		}
		zones[i] = color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	}
	return zones, nil
}

// WriteZoneColors writes all four zone attributes.
func (s *sysfs) WriteZoneColors(zones effects.Zones) error {
	for i, c := range zones {
		if err := os.WriteFile(s.zoneAttr(i), []byte(c.Hex()), 0o644); err != nil {
			return fmt.Errorf("failed to write zone %d: %w", i, err)
		}
	}
	return nil
}
