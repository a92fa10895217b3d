package ppu

// OAM is one object-attribute record: four bytes describing a sprite.
type OAM struct {
	Y         byte
	X         byte
	TileIndex byte
	Flags     byte
}

// ParseOAM unpacks a little-endian 4-byte record: byte 0 is Y, byte 1 X,
// byte 2 the tile index, byte 3 the attribute flags.
func ParseOAM(v uint32) OAM {
	return OAM{
		Y:         byte(v),
		X:         byte(v >> 8),
		TileIndex: byte(v >> 16),
		Flags:     byte(v >> 24),
	}
}

// Priority reports the BG-over-OBJ bit: when set, opaque background pixels
// win over this sprite.
func (o OAM) Priority() bool { return o.Flags&0x80 != 0 }

func (o OAM) FlipY() bool { return o.Flags&0x40 != 0 }

func (o OAM) FlipX() bool { return o.Flags&0x20 != 0 }

// DMGPalette selects OBP1 over OBP0 when true.
func (o OAM) DMGPalette() bool { return o.Flags&0x10 != 0 }

// VRAMBank is the CGB tile-bank bit; always zero on DMG carts.
func (o OAM) VRAMBank() byte { return o.Flags >> 3 & 1 }

// CGBPalette is the CGB palette number in bits 2-0.
func (o OAM) CGBPalette() byte { return o.Flags & 0x07 }
