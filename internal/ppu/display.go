package ppu

import "github.com/k-cross/they/internal/bus"

// Pixel is a DMG shade already widened to its RGB value.
type Pixel uint32

const (
	White    Pixel = 0xFFFFFF
	Grey     Pixel = 0x808080
	DarkGrey Pixel = 0x696969
	Black    Pixel = 0x000000
)

// decodePixel maps one bit from each bitplane onto a shade. The high
// bitplane carries the upper bit of the 2-bit color code.
func decodePixel(hb, lb byte) Pixel {
	switch {
	case hb == 0 && lb == 0:
		return White
	case hb == 0:
		return Grey
	case lb == 0:
		return DarkGrey
	default:
		return Black
	}
}

// code recovers the 2-bit color number from a shade, for palette lookups.
func (p Pixel) code() byte {
	switch p {
	case White:
		return 0
	case Grey:
		return 1
	case DarkGrey:
		return 2
	default:
		return 3
	}
}

// Tile is an 8x8 block of decoded pixels.
type Tile struct {
	Pixels [8][8]Pixel
}

const (
	tilesPerBlock = 128
	tileBytes     = 16

	vramTileData = 0x8000
	tileMap0     = 0x9800
	tileMap1     = 0x9C00
	oamBase      = 0xFE00
)

// Display is the CPU-facing model of the graphics hardware: the decoded tile
// set, the two background maps, the viewport origin, and the sprite table.
// It holds no timing state; every Load* method re-reads bus memory.
type Display struct {
	Tiles    [384]Tile
	TileMaps [2][32][32]byte

	// viewport origin (SCX/SCY)
	SCX, SCY byte

	Sprites [40]OAM

	// cached palette registers
	BGP  byte
	OBP0 byte
	OBP1 byte
}

func NewDisplay() *Display { return &Display{} }

// LoadTiles decodes one 2 KiB block of tile data from VRAM. Block 0 covers
// 0x8000-0x87FF, block 1 0x8800-0x8FFF, block 2 0x9000-0x97FF; any other
// value decodes all three. Each tile row is two bytes, low bitplane first.
func (d *Display) LoadTiles(b *bus.Bus, block int) {
	switch block {
	case 0, 1, 2:
		d.loadTileRange(b, block)
	default:
		for blk := 0; blk < 3; blk++ {
			d.loadTileRange(b, blk)
		}
	}
}

func (d *Display) loadTileRange(b *bus.Bus, block int) {
	base := uint16(vramTileData + block*tilesPerBlock*tileBytes)
	for i := 0; i < tilesPerBlock; i++ {
		tile := &d.Tiles[block*tilesPerBlock+i]
		addr := base + uint16(i*tileBytes)
		for row := 0; row < 8; row++ {
			lb := b.Read(addr + uint16(row*2))
			hb := b.Read(addr + uint16(row*2) + 1)
			for col := 0; col < 8; col++ {
				bit := byte(7 - col)
				tile.Pixels[row][col] = decodePixel(hb>>bit&1, lb>>bit&1)
			}
		}
	}
}

// LoadTileMap copies both 32x32 background maps out of VRAM.
func (d *Display) LoadTileMap(b *bus.Bus) {
	for m, base := range [2]uint16{tileMap0, tileMap1} {
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				d.TileMaps[m][y][x] = b.Read(base + uint16(y*32+x))
			}
		}
	}
}

// LoadSprites parses all 40 OAM records.
func (d *Display) LoadSprites(b *bus.Bus) {
	for i := range d.Sprites {
		base := uint16(oamBase + i*4)
		raw := uint32(b.Read(base)) |
			uint32(b.Read(base+1))<<8 |
			uint32(b.Read(base+2))<<16 |
			uint32(b.Read(base+3))<<24
		d.Sprites[i] = ParseOAM(raw)
	}
}

// LoadScroll refreshes the viewport origin and palette caches.
func (d *Display) LoadScroll(b *bus.Bus) {
	d.SCX = b.Read(bus.SCX)
	d.SCY = b.Read(bus.SCY)
	d.BGP = b.Read(bus.BGP)
	d.OBP0 = b.Read(bus.OBP0)
	d.OBP1 = b.Read(bus.OBP1)
}

// Refresh re-reads everything the compose step consumes.
func (d *Display) Refresh(b *bus.Bus) {
	d.LoadTiles(b, -1)
	d.LoadTileMap(b)
	d.LoadSprites(b)
	d.LoadScroll(b)
}
