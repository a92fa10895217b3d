package cart

import (
	"fmt"
	"os"
	"strings"
)

const headerSize = 0x150

// Cartridge is the parsed, immutable view of a ROM image. External RAM is
// allocated lazily by whoever needs it; with no MBC in the core nothing does.
type Cartridge struct {
	ROM []byte
	RAM []byte

	Title   string
	Kind    MBCKind
	ROMSize int
	// RAMSize is only meaningful when HasRAMSize is true; header code 0x01
	// has no documented size.
	RAMSize    int
	HasRAMSize bool
}

// Load reads a ROM image from disk and parses its header.
func Load(path string) (*Cartridge, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rom: %w", err)
	}
	return Parse(rom)
}

// Parse builds a Cartridge from a raw image. The image must be large enough
// to contain the full header (through 0x14F).
func Parse(rom []byte) (*Cartridge, error) {
	if len(rom) < headerSize {
		return nil, fmt.Errorf("rom image too small for header: %d bytes, need %d", len(rom), headerSize)
	}
	c := &Cartridge{
		ROM:     rom,
		Title:   strings.TrimRight(string(rom[0x134:0x13E]), "\x00"),
		Kind:    KindFromCode(rom[0x147]),
		ROMSize: 1 << (15 + rom[0x148]),
	}
	c.RAMSize, c.HasRAMSize = decodeRAMSize(rom[0x149])
	return c, nil
}

func decodeRAMSize(code byte) (size int, ok bool) {
	switch code {
	case 0x00:
		return 0, true
	case 0x02:
		return 8 * 1024, true
	case 0x03:
		return 32 * 1024, true
	case 0x04:
		return 128 * 1024, true
	case 0x05:
		return 64 * 1024, true
	default:
		return 0, false
	}
}

// HeaderChecksumOK verifies the header checksum at 0x14D (Pan Docs algorithm).
// Commercial carts always pass; some homebrew does not, so callers only log.
func HeaderChecksumOK(rom []byte) bool {
	if len(rom) < headerSize {
		return false
	}
	var sum byte
	for addr := 0x134; addr <= 0x14C; addr++ {
		sum = sum - rom[addr] - 1
	}
	return sum == rom[0x14D]
}
