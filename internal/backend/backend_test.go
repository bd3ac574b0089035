package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/smazurov/fourzone/internal/effects"
)

// writeZoneAttrs populates a fake sysfs attribute group the way the
// driver formats zone reads.
func writeZoneAttrs(t *testing.T, dir string, zones effects.Zones) {
	t.Helper()
	for i, c := range zones {
		name := filepath.Join(dir, fmt.Sprintf("zone%02X", i))
		content := fmt.Sprintf("red: %d, green: %d, blue: %d\n", c.R, c.G, c.B)
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSysfsReadZoneColors(t *testing.T) {
	dir := t.TempDir()
	want := effects.Zones{
		{R: 255, G: 10, B: 20},
		{R: 1, G: 2, B: 3},
		{},
		{R: 100, G: 200, B: 50},
	}
	writeZoneAttrs(t, dir, want)

	got, err := newSysfs(dir).ReadZoneColors()
	if err != nil {
		t.Fatalf("ReadZoneColors() returned error: %v", err)
	}
	if got != want {
		t.Errorf("ReadZoneColors() = %v, want %v", got, want)
	}
}

func TestSysfsReadMissingZone(t *testing.T) {
	dir := t.TempDir()
	writeZoneAttrs(t, dir, effects.Zones{})
	if err := os.Remove(filepath.Join(dir, "zone02")); err != nil {
		t.Fatal(err)
	}

	if _, err := newSysfs(dir).ReadZoneColors(); err == nil {
		t.Error("ReadZoneColors() with missing attribute should fail")
	}
}

func TestSysfsReadGarbage(t *testing.T) {
	dir := t.TempDir()
	writeZoneAttrs(t, dir, effects.Zones{})
	if err := os.WriteFile(filepath.Join(dir, "zone00"), []byte("nonsense"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := newSysfs(dir).ReadZoneColors(); err == nil {
		t.Error("ReadZoneColors() with unparsable attribute should fail")
	}
}

func TestSysfsWriteZoneColors(t *testing.T) {
	dir := t.TempDir()
	writeZoneAttrs(t, dir, effects.Zones{})

	zones := effects.Zones{
		{R: 255, G: 136},
		{B: 255},
		{R: 1, G: 2, B: 3},
		{},
	}
	if err := newSysfs(dir).WriteZoneColors(zones); err != nil {
		t.Fatalf("WriteZoneColors() returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "zone00"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ff8800" {
		t.Errorf("zone00 = %q, want %q", data, "ff8800")
	}

	data, err = os.ReadFile(filepath.Join(dir, "zone01"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0000ff" {
		t.Errorf("zone01 = %q, want %q", data, "0000ff")
	}
}

func TestMemoryBackend(t *testing.T) {
	m := NewMemory()

	zones := effects.Zones{{R: 1}, {G: 2}, {B: 3}, {}}
	if err := m.WriteZoneColors(zones); err != nil {
		t.Fatalf("WriteZoneColors() returned error: %v", err)
	}

	got, err := m.ReadZoneColors()
	if err != nil {
		t.Fatalf("ReadZoneColors() returned error: %v", err)
	}
	if got != zones {
		t.Errorf("ReadZoneColors() = %v, want %v", got, zones)
	}
	if m.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", m.Writes())
	}
}

func TestMemoryBackendFailWrites(t *testing.T) {
	m := NewMemory()
	m.FailWrites = errors.New("bus stuck")

	if err := m.WriteZoneColors(effects.Zones{{R: 1}}); err == nil {
		t.Fatal("WriteZoneColors() should fail")
	}
	got, _ := m.ReadZoneColors()
	if got != (effects.Zones{}) {
		t.Errorf("failed write mutated state: %v", got)
	}
}

func TestFactoryFallsBackToMemory(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "missing"), nil)
	if _, ok := b.(*Memory); !ok {
		t.Errorf("New() without driver = %T, want *Memory", b)
	}
}

func TestFactoryPicksSysfs(t *testing.T) {
	dir := t.TempDir()
	b := New(dir, nil)
	if _, ok := b.(*sysfs); !ok {
		t.Errorf("New() with driver path = %T, want *sysfs", b)
	}
}
