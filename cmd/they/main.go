package main

import (
	"flag"
	"log"

	"github.com/k-cross/they/internal/cart"
	"github.com/k-cross/they/internal/emu"
	"github.com/k-cross/they/internal/ui"
)

// defaultROM is the development fallback when no ROM path is given.
const defaultROM = "rom_tests/blarggs-test-roms/cpu_instrs/cpu_instrs.gb"

func main() {
	scale := flag.Int("scale", 3, "window scale")
	title := flag.String("title", "they", "window title")
	trace := flag.Bool("trace", false, "CPU trace log")
	flag.Parse()

	romPath := flag.Arg(0)
	if romPath == "" {
		romPath = defaultROM
		log.Printf("no ROM given, defaulting to %s", romPath)
	}

	m := emu.New(emu.Config{Trace: *trace})
	if err := m.LoadROMFromFile(romPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}
	log.Printf("ROM: %q type=%s rom=%dB ram=%dB", m.Cart.Title, m.Cart.Kind, m.Cart.ROMSize, m.Cart.RAMSize)
	if !cart.HeaderChecksumOK(m.Cart.ROM) {
		log.Printf("header checksum mismatch (homebrew?)")
	}

	app := ui.NewApp(ui.Config{Title: *title, Scale: *scale}, m)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
