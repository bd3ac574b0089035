package backend

import (
	"os"

	"github.com/smazurov/fourzone/internal/logging"
)

// New probes for the fourzone platform driver and returns a sysfs
// backend when it is present. Without the driver it falls back to a
// memory backend so the daemon still runs (useful for development).
func New(sysfsPath string, logger logging.Logger) Backend {
	if sysfsPath == "" {
		sysfsPath = DefaultSysfsPath
	}

	if _, err := os.Stat(sysfsPath); err == nil {
		if logger != nil {
			logger.Info("Using fourzone sysfs backend", "path", sysfsPath)
		}
		return newSysfs(sysfsPath)
	}

	if logger != nil {
		logger.Warn("fourzone driver not found, using memory backend", "path", sysfsPath)
	}
	return NewMemory()
}
