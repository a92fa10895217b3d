package ppu

// Screen dimensions of the DMG LCD.
const (
	ScreenW = 160
	ScreenH = 144
)

var shades = [4]Pixel{White, Grey, DarkGrey, Black}

// palette runs a 2-bit color code through a DMG palette register.
func palette(reg, code byte) Pixel {
	return shades[reg>>(code*2)&0x03]
}

// bgTile resolves a background map entry to a decoded tile, honoring the
// LCDC.4 addressing mode: unsigned from 0x8000, or signed around 0x9000.
func (d *Display) bgTile(idx byte, unsignedMode bool) *Tile {
	if unsignedMode || idx >= 128 {
		return &d.Tiles[idx]
	}
	return &d.Tiles[256+int(idx)]
}

// Compose renders the visible 160x144 viewport into an RGBA buffer
// (4 bytes per pixel, row-major). lcdc is the cached control register; the
// background and sprite layers draw only when their enable bits are set.
func (d *Display) Compose(fb []byte, lcdc byte) {
	if len(fb) < ScreenW*ScreenH*4 {
		return
	}
	ctl := LCDC(lcdc)

	for y := 0; y < ScreenH; y++ {
		for x := 0; x < ScreenW; x++ {
			px := White
			if ctl&LCDCBGWindowEnable != 0 {
				px = d.bgPixel(x, y, ctl)
			}
			putPixel(fb, x, y, px)
		}
	}

	if ctl&LCDCObjEnable != 0 {
		d.composeSprites(fb)
	}
}

func (d *Display) bgPixel(x, y int, ctl LCDC) Pixel {
	bx := (x + int(d.SCX)) & 0xFF
	by := (y + int(d.SCY)) & 0xFF
	mapSel := 0
	if ctl&LCDCBGTileMapArea != 0 {
		mapSel = 1
	}
	idx := d.TileMaps[mapSel][by/8][bx/8]
	tile := d.bgTile(idx, ctl&LCDCTileDataArea != 0)
	return palette(d.BGP, tile.Pixels[by%8][bx%8].code())
}

// composeSprites draws the 8x8 sprite layer. Color 0 is transparent; the
// priority bit lets opaque background pixels win.
func (d *Display) composeSprites(fb []byte) {
	for i := len(d.Sprites) - 1; i >= 0; i-- {
		s := d.Sprites[i]
		sx := int(s.X) - 8
		sy := int(s.Y) - 16
		if sx <= -8 || sx >= ScreenW || sy <= -8 || sy >= ScreenH {
			continue
		}
		tile := &d.Tiles[s.TileIndex]
		pal := d.OBP0
		if s.DMGPalette() {
			pal = d.OBP1
		}
		for row := 0; row < 8; row++ {
			y := sy + row
			if y < 0 || y >= ScreenH {
				continue
			}
			tr := row
			if s.FlipY() {
				tr = 7 - row
			}
			for col := 0; col < 8; col++ {
				x := sx + col
				if x < 0 || x >= ScreenW {
					continue
				}
				tc := col
				if s.FlipX() {
					tc = 7 - col
				}
				code := tile.Pixels[tr][tc].code()
				if code == 0 {
					continue
				}
				if s.Priority() && readPixel(fb, x, y) != White {
					continue
				}
				putPixel(fb, x, y, palette(pal, code))
			}
		}
	}
}

func putPixel(fb []byte, x, y int, p Pixel) {
	i := (y*ScreenW + x) * 4
	fb[i+0] = byte(p >> 16)
	fb[i+1] = byte(p >> 8)
	fb[i+2] = byte(p)
	fb[i+3] = 0xFF
}

func readPixel(fb []byte, x, y int) Pixel {
	i := (y*ScreenW + x) * 4
	return Pixel(fb[i+0])<<16 | Pixel(fb[i+1])<<8 | Pixel(fb[i+2])
}
