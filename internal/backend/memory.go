package backend

import (
	"sync"

	"github.com/smazurov/fourzone/internal/effects"
)

// Memory implements Backend in memory. It stands in for the hardware
// in tests, the preview command and on machines without the driver.
type Memory struct {
	mu     sync.Mutex
	zones  effects.Zones
	writes int

	// FailWrites makes WriteZoneColors return this error, simulating
	// a transport failure.
	FailWrites error
}

// NewMemory creates a memory backend with all zones off.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadZoneColors returns the last written colors.
func (m *Memory) ReadZoneColors() (effects.Zones, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.zones, nil
}

// WriteZoneColors records the colors.
func (m *Memory) WriteZoneColors(zones effects.Zones) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.zones = zones
	m.writes++
	return nil
}

// Writes returns how many batches have been written.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
