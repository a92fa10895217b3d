package emu

// Config contains settings that affect emulation behavior.
type Config struct {
	Trace          bool // log every executed instruction
	CyclesPerFrame int  // M-cycles per StepFrame; 0 means the DMG frame rate
}

// One LCD frame is 70224 T-states, or 17556 machine cycles.
const frameCycles = 17556

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.CyclesPerFrame <= 0 {
		c.CyclesPerFrame = frameCycles
	}
}
