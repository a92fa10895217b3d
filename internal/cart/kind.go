package cart

// MBCKind classifies the cartridge-type byte at 0x147. The core performs no
// bank switching; the classification exists for logging and for callers that
// want to refuse unsupported mappers.
type MBCKind byte

const (
	ROM                  MBCKind = 0x00
	MBC1                 MBCKind = 0x01
	MBC1RAM              MBCKind = 0x02
	MBC1RAMBattery       MBCKind = 0x03
	MBC2                 MBCKind = 0x05
	MBC2Battery          MBCKind = 0x06
	ROMRAM               MBCKind = 0x08
	ROMRAMBattery        MBCKind = 0x09
	MMM01                MBCKind = 0x0B
	MMM01RAM             MBCKind = 0x0C
	MMM01RAMBattery      MBCKind = 0x0D
	MBC3TimerBattery     MBCKind = 0x0F
	MBC3TimerRAMBattery  MBCKind = 0x10
	MBC3                 MBCKind = 0x11
	MBC3RAM              MBCKind = 0x12
	MBC3RAMBattery       MBCKind = 0x13
	MBC5                 MBCKind = 0x19
	MBC5RAM              MBCKind = 0x1A
	MBC5RAMBattery       MBCKind = 0x1B
	MBC5Rumble           MBCKind = 0x1C
	MBC5RumbleRAM        MBCKind = 0x1D
	MBC5RumbleRAMBattery MBCKind = 0x1E
	MBC6                 MBCKind = 0x20
	MBC7                 MBCKind = 0x22
	PocketCamera         MBCKind = 0xFC
	BandaiTAMA5          MBCKind = 0xFD
	HuC3                 MBCKind = 0xFE
	HuC1RAMBattery       MBCKind = 0xFF
	// NA marks a type byte with no known mapping.
	NA MBCKind = 0xAA
)

var kindNames = map[MBCKind]string{
	ROM:                  "ROM ONLY",
	MBC1:                 "MBC1",
	MBC1RAM:              "MBC1+RAM",
	MBC1RAMBattery:       "MBC1+RAM+BATTERY",
	MBC2:                 "MBC2",
	MBC2Battery:          "MBC2+BATTERY",
	ROMRAM:               "ROM+RAM",
	ROMRAMBattery:        "ROM+RAM+BATTERY",
	MMM01:                "MMM01",
	MMM01RAM:             "MMM01+RAM",
	MMM01RAMBattery:      "MMM01+RAM+BATTERY",
	MBC3TimerBattery:     "MBC3+TIMER+BATTERY",
	MBC3TimerRAMBattery:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:                 "MBC3",
	MBC3RAM:              "MBC3+RAM",
	MBC3RAMBattery:       "MBC3+RAM+BATTERY",
	MBC5:                 "MBC5",
	MBC5RAM:              "MBC5+RAM",
	MBC5RAMBattery:       "MBC5+RAM+BATTERY",
	MBC5Rumble:           "MBC5+RUMBLE",
	MBC5RumbleRAM:        "MBC5+RUMBLE+RAM",
	MBC5RumbleRAMBattery: "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:                 "MBC6",
	MBC7:                 "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	PocketCamera:         "POCKET CAMERA",
	BandaiTAMA5:          "BANDAI TAMA5",
	HuC3:                 "HuC3",
	HuC1RAMBattery:       "HuC1+RAM+BATTERY",
	NA:                   "UNKNOWN",
}

// KindFromCode maps a raw 0x147 byte onto an MBCKind, falling back to NA.
func KindFromCode(code byte) MBCKind {
	k := MBCKind(code)
	if _, ok := kindNames[k]; ok && k != NA {
		return k
	}
	return NA
}

func (k MBCKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}
