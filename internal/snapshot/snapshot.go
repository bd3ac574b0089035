// Package snapshot persists the lighting state so a restart resumes
// the previous colors, brightness and animation without a visible
// relighting glitch.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/smazurov/fourzone/internal/color"
	"github.com/smazurov/fourzone/internal/effects"
)

// ErrNotFound is returned by Store.Load when no snapshot has been
// written yet. Callers treat it as "use defaults".
var ErrNotFound = errors.New("no saved lighting state")

// Snapshot is the persisted lighting state record.
type Snapshot struct {
	Mode       effects.Mode
	Speed      int
	Brightness int
	Colors     effects.Zones
}

// recordSize is the fixed on-disk record length: mode u32, speed i32,
// brightness i32, then blue/green/red bytes for each zone. The BGR
// byte order matches the packed color struct the firmware uses.
const recordSize = 12 + 3*effects.ZoneCount

// Marshal encodes the snapshot into the fixed 24-byte little-endian
// record.
func Marshal(s Snapshot) []byte {
	buf := make([]byte, recordSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(s.Mode))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(s.Speed)))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(s.Brightness)))
	for i, c := range s.Colors {
		off := 12 + i*3
		buf[off] = c.B
		buf[off+1] = c.G
		buf[off+2] = c.R
	}
	return buf
}

// Unmarshal decodes a snapshot record, rejecting records of the wrong
// length or with out-of-range fields.
func Unmarshal(data []byte) (Snapshot, error) {
	if len(data) != recordSize {
		return Snapshot{}, fmt.Errorf("invalid state record: %d bytes, want %d", len(data), recordSize)
	}

	s := Snapshot{
		Mode:       effects.Mode(binary.LittleEndian.Uint32(data[0:4])),
		Speed:      int(int32(binary.LittleEndian.Uint32(data[4:8]))),
		Brightness: int(int32(binary.LittleEndian.Uint32(data[8:12]))),
	}
	for i := range s.Colors {
		off := 12 + i*3
		s.Colors[i] = color.RGB{B: data[off], G: data[off+1], R: data[off+2]}
	}

	if !s.Mode.Valid() {
		return Snapshot{}, fmt.Errorf("invalid state record: unknown mode %d", uint32(s.Mode))
	}
	if s.Speed < 1 || s.Speed > 10 {
		return Snapshot{}, fmt.Errorf("invalid state record: speed %d out of range", s.Speed)
	}
	if s.Brightness < 0 || s.Brightness > 100 {
		return Snapshot{}, fmt.Errorf("invalid state record: brightness %d out of range", s.Brightness)
	}
	return s, nil
}

// Store persists snapshots. Save is best-effort from the engine's
// perspective; Load returns ErrNotFound on first run.
type Store interface {
	Save(Snapshot) error
	Load() (Snapshot, error)
}
