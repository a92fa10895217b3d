package emu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// blarggROM resolves the cpu_instrs ROM relative to the module root, or an
// explicit override via BLARGG_ROM.
func blarggROM(t *testing.T) string {
	t.Helper()
	if p := os.Getenv("BLARGG_ROM"); p != "" {
		return p
	}
	return filepath.Join("..", "..", "rom_tests", "blarggs-test-roms", "cpu_instrs", "cpu_instrs.gb")
}

// TestBlargg_SerialBanner drives the real cpu_instrs ROM until it announces
// itself over the serial channel. Skipped when the ROM is not on disk.
func TestBlargg_SerialBanner(t *testing.T) {
	path := blarggROM(t)
	if _, err := os.Stat(path); err != nil {
		t.Skipf("blargg ROM missing: %s", path)
	}

	m := New(Config{})
	if err := m.LoadROMFromFile(path); err != nil {
		t.Fatalf("load ROM: %v", err)
	}

	const maxSteps = 10_000_000
	for i := 0; i < maxSteps; i++ {
		m.Step()
		if strings.HasPrefix(string(m.Serial()), "cpu_instrs") {
			return
		}
	}
	t.Fatalf("no serial banner after %d steps; got %q", maxSteps, string(m.Serial()))
}
