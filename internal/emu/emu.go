package emu

import (
	"fmt"
	"log"

	"github.com/k-cross/they/internal/apu"
	"github.com/k-cross/they/internal/bus"
	"github.com/k-cross/they/internal/cart"
	"github.com/k-cross/they/internal/cpu"
	"github.com/k-cross/they/internal/ppu"
)

// Machine wires the hardware together: a cartridge image copied onto a flat
// bus, the CPU that owns it, and the display/sound data models layered over
// bus memory. Bringup order matters: the bus initializes the hardware
// registers, the CPU takes its post-boot defaults, and the PPU decodes
// whatever the bus holds.
type Machine struct {
	cfg Config

	Bus     *bus.Bus
	CPU     *cpu.CPU
	Cart    *cart.Cartridge
	Display *ppu.Display
	Sound   *apu.Voices

	fb      []byte // RGBA, 160x144*4
	romPath string
}

func New(cfg Config) *Machine {
	cfg.Defaults()
	b := bus.New()
	return &Machine{
		cfg:     cfg,
		Bus:     b,
		CPU:     cpu.New(b),
		Display: ppu.NewDisplay(),
		Sound:   apu.New(),
		fb:      make([]byte, ppu.ScreenW*ppu.ScreenH*4),
	}
}

// LoadCartridge parses a ROM image and copies its fixed banks onto the bus.
// Bank 0 lands at 0x0000-0x3FFF; a 32 KiB image also fills 0x4000-0x7FFF,
// which is all the banking a cart without an MBC ever needs.
func (m *Machine) LoadCartridge(rom []byte) error {
	c, err := cart.Parse(rom)
	if err != nil {
		return fmt.Errorf("load cartridge: %w", err)
	}
	m.Cart = c
	m.Bus.LoadROM(rom)
	return nil
}

// LoadROMFromFile reads a ROM from disk and loads it.
func (m *Machine) LoadROMFromFile(path string) error {
	c, err := cart.Load(path)
	if err != nil {
		return err
	}
	m.Cart = c
	m.Bus.LoadROM(c.ROM)
	m.romPath = path
	return nil
}

// ROMPath returns the path of the currently loaded ROM, if file-loaded.
func (m *Machine) ROMPath() string { return m.romPath }

// Step executes one CPU instruction and returns its machine-cycle cost.
func (m *Machine) Step() int {
	if m.cfg.Trace {
		pc := m.CPU.PC
		op := m.Bus.Read(pc)
		cyc := m.CPU.Step()
		log.Printf("PC=%04X OP=%02X cyc=%d A=%02X F=%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X SP=%04X",
			pc, op, cyc, m.CPU.A, m.CPU.F, m.CPU.B, m.CPU.C, m.CPU.D, m.CPU.E, m.CPU.H, m.CPU.L, m.CPU.SP)
		return cyc
	}
	return m.CPU.Step()
}

// Run drives the CPU until stop is closed. Cancellation is only observed at
// instruction boundaries; a step never blocks.
func (m *Machine) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
			m.Step()
		}
	}
}

// StepFrame runs one frame's worth of machine cycles, then refreshes the
// display model and framebuffer from bus memory.
func (m *Machine) StepFrame() {
	for cycles := 0; cycles < m.cfg.CyclesPerFrame; {
		cycles += m.Step()
	}
	m.Display.Refresh(m.Bus)
	m.Display.Compose(m.fb, m.Bus.Read(bus.LCDC))
}

// Framebuffer returns the composed RGBA frame, 160x144, 4 bytes per pixel.
func (m *Machine) Framebuffer() []byte { return m.fb }

// Serial returns the bytes written to the serial data register so far.
func (m *Machine) Serial() []byte { return m.Bus.Serial() }
