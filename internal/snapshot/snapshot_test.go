package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smazurov/fourzone/internal/effects"
)

var testSnap = Snapshot{
	Mode:       effects.Rainbow,
	Speed:      7,
	Brightness: 85,
	Colors: effects.Zones{
		{R: 255, G: 1, B: 2},
		{R: 3, G: 255, B: 4},
		{R: 5, G: 6, B: 255},
		{R: 250, G: 251, B: 252},
	},
}

func TestMarshalRoundTrip(t *testing.T) {
	got, err := Unmarshal(Marshal(testSnap))
	if err != nil {
		t.Fatalf("Unmarshal(Marshal()) returned error: %v", err)
	}
	if got != testSnap {
		t.Errorf("round trip = %+v, want %+v", got, testSnap)
	}
}

func TestMarshalLayout(t *testing.T) {
	data := Marshal(testSnap)
	if len(data) != 24 {
		t.Fatalf("Marshal() = %d bytes, want 24", len(data))
	}
	// mode tag, little-endian
	if data[0] != byte(effects.Rainbow) || data[1] != 0 {
		t.Errorf("mode bytes = %v", data[0:4])
	}
	// zone 0 stored blue, green, red
	if data[12] != 2 || data[13] != 1 || data[14] != 255 {
		t.Errorf("zone 0 bytes = %v, want BGR order", data[12:15])
	}
}

func TestUnmarshalRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{name: "truncated", mutate: func(b []byte) []byte { return b[:10] }},
		{name: "oversized", mutate: func(b []byte) []byte { return append(b, 0) }},
		{name: "empty", mutate: func(b []byte) []byte { return nil }},
		{name: "unknown mode", mutate: func(b []byte) []byte {
			b[0] = 200
			return b
		}},
		{name: "speed zero", mutate: func(b []byte) []byte {
			b[4] = 0
			return b
		}},
		{name: "speed too high", mutate: func(b []byte) []byte {
			b[4] = 11
			return b
		}},
		{name: "brightness over 100", mutate: func(b []byte) []byte {
			b[8] = 101
			return b
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(Marshal(testSnap))
			if _, err := Unmarshal(data); err == nil {
				t.Error("Unmarshal() accepted a bad record")
			}
		})
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "state.bin")
	store := NewFileStore(path)

	// First load finds nothing
	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on fresh store = %v, want ErrNotFound", err)
	}

	if err := store.Save(testSnap); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got != testSnap {
		t.Errorf("Load() = %+v, want %+v", got, testSnap)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Load() on corrupt file = %v, want decode error", err)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on fresh store = %v, want ErrNotFound", err)
	}

	if err := store.Save(testSnap); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got != testSnap {
		t.Errorf("Load() = %+v, want %+v", got, testSnap)
	}
}
