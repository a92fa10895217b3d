package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/k-cross/they/internal/emu"
)

func main() {
	steps := flag.Int("steps", 50_000_000, "max CPU steps to run")
	until := flag.String("until", "Passed", "stop when serial output contains this substring (case-insensitive); empty to disable")
	trace := flag.Bool("trace", false, "print executed instructions")
	flag.Parse()

	romPath := flag.Arg(0)
	if romPath == "" {
		log.Fatal("usage: cpurunner [flags] <rom.gb>")
	}

	m := emu.New(emu.Config{Trace: *trace})
	if err := m.LoadROMFromFile(romPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}
	log.Printf("ROM: %q type=%s", m.Cart.Title, m.Cart.Kind)

	// Stream serial bytes to stdout as the test ROM reports.
	m.Bus.SetSerialWriter(os.Stdout)

	start := time.Now()
	var cycles int
	for i := 0; i < *steps; i++ {
		cycles += m.Step()
		if *until != "" && strings.Contains(strings.ToLower(string(m.Serial())), strings.ToLower(*until)) {
			fmt.Printf("\nDetected %q in serial output.\n", *until)
			fmt.Printf("Done: steps=%d cycles=%d elapsed=%s\n", i+1, cycles, time.Since(start).Truncate(time.Millisecond))
			return
		}
	}
	fmt.Printf("\nDone: steps=%d cycles=%d elapsed=%s\n", *steps, cycles, time.Since(start).Truncate(time.Millisecond))
	os.Exit(2)
}
