package apu

import "github.com/k-cross/they/internal/bus"

// The sound hardware is modeled as data only: four voices, each a fixed set
// of register addresses in the NRxx block. Waveform synthesis is a front-end
// concern and does not live in the core.

// Voice is the register quintet of one sound channel. Channels that lack a
// sweep (or another register) point that slot at zero.
type Voice struct {
	Sweep     uint16
	Length    uint16
	Volume    uint16
	Frequency uint16
	Control   uint16
}

// Voices holds the DMG's four sound channels.
type Voices struct {
	PulseA Voice
	PulseB Voice
	Wave   Voice
	Noise  Voice
}

// New lays out the four voices over the NRxx register block.
func New() *Voices {
	return &Voices{
		PulseA: Voice{Sweep: bus.NR10, Length: bus.NR11, Volume: bus.NR12, Frequency: bus.NR13, Control: bus.NR14},
		PulseB: Voice{Length: bus.NR21, Volume: bus.NR22, Frequency: bus.NR23, Control: bus.NR24},
		Wave:   Voice{Sweep: bus.NR30, Length: bus.NR31, Volume: bus.NR32, Frequency: bus.NR33, Control: bus.NR34},
		Noise:  Voice{Length: bus.NR41, Volume: bus.NR42, Frequency: bus.NR43, Control: bus.NR44},
	}
}

// Read returns the five raw register values of a voice; unsized slots read
// as zero so callers need no channel-specific casing.
func (v Voice) Read(b *bus.Bus) (sweep, length, volume, freq, control byte) {
	get := func(addr uint16) byte {
		if addr == 0 {
			return 0
		}
		return b.Read(addr)
	}
	return get(v.Sweep), get(v.Length), get(v.Volume), get(v.Frequency), get(v.Control)
}

// Enabled reports the channel trigger bit of the voice's control register.
func (v Voice) Enabled(b *bus.Bus) bool {
	if v.Control == 0 {
		return false
	}
	return b.Read(v.Control)&0x80 != 0
}
