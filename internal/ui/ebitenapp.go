package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/k-cross/they/internal/bus"
	"github.com/k-cross/they/internal/emu"
	"github.com/k-cross/they/internal/ppu"
)

// App is the windowed front-end: it pumps machine frames, uploads the
// framebuffer, and reflects the keyboard into the joypad register.
type App struct {
	cfg Config
	m   *emu.Machine
	tex *ebiten.Image
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	title := cfg.Title
	if m.Cart != nil && m.Cart.Title != "" {
		title = cfg.Title + " - [" + m.Cart.Title + "]"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(ppu.ScreenW*cfg.Scale, ppu.ScreenH*cfg.Scale)
	return &App{cfg: cfg, m: m}
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	a.updateJoypad()
	a.m.StepFrame()
	return nil
}

// updateJoypad recomputes the JOYP matrix value at 0xFF00. Lines are
// active-low; bits 5-4 keep whatever selection the game last wrote.
func (a *App) updateJoypad() {
	sel := a.m.Bus.Read(bus.JOYP) & 0x30
	v := 0xC0 | sel | 0x0F
	if sel&0x10 == 0 { // d-pad selected
		if ebiten.IsKeyPressed(ebiten.KeyRight) {
			v &^= 0x01
		}
		if ebiten.IsKeyPressed(ebiten.KeyLeft) {
			v &^= 0x02
		}
		if ebiten.IsKeyPressed(ebiten.KeyUp) {
			v &^= 0x04
		}
		if ebiten.IsKeyPressed(ebiten.KeyDown) {
			v &^= 0x08
		}
	}
	if sel&0x20 == 0 { // buttons selected
		if ebiten.IsKeyPressed(ebiten.KeyZ) {
			v &^= 0x01
		}
		if ebiten.IsKeyPressed(ebiten.KeyX) {
			v &^= 0x02
		}
		if ebiten.IsKeyPressed(ebiten.KeyBackspace) {
			v &^= 0x04
		}
		if ebiten.IsKeyPressed(ebiten.KeyEnter) {
			v &^= 0x08
		}
	}
	a.m.Bus.Write(bus.JOYP, v)
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(ppu.ScreenW, ppu.ScreenH)
	}
	a.tex.WritePixels(a.m.Framebuffer())
	screen.DrawImage(a.tex, nil)
}

func (a *App) Layout(outW, outH int) (int, int) { return ppu.ScreenW, ppu.ScreenH }
