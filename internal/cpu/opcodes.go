package cpu

import "log"

// execute dispatches one base-page opcode and returns its M-cycle cost.
// Branchy opcodes return the taken/not-taken cost themselves.
func (c *CPU) execute(op byte) int {
	switch op {
	case 0x00: // NOP
		return 1

	case 0x01: // LD BC,n16
		c.setBC(c.fetch16())
		return 3
	case 0x11: // LD DE,n16
		c.setDE(c.fetch16())
		return 3
	case 0x21: // LD HL,n16
		c.setHL(c.fetch16())
		return 3
	case 0x31: // LD SP,n16
		c.SP = c.fetch16()
		return 3

	case 0x02: // LD (BC),A
		c.write8(c.getBC(), c.A)
		return 2
	case 0x12: // LD (DE),A
		c.write8(c.getDE(), c.A)
		return 2
	case 0x0A: // LD A,(BC)
		c.A = c.read8(c.getBC())
		return 2
	case 0x1A: // LD A,(DE)
		c.A = c.read8(c.getDE())
		return 2

	case 0x22: // LD (HL+),A
		hl := c.getHL()
		c.write8(hl, c.A)
		c.setHL(hl + 1)
		return 2
	case 0x32: // LD (HL-),A
		hl := c.getHL()
		c.write8(hl, c.A)
		c.setHL(hl - 1)
		return 2
	case 0x2A: // LD A,(HL+)
		hl := c.getHL()
		c.A = c.read8(hl)
		c.setHL(hl + 1)
		return 2
	case 0x3A: // LD A,(HL-)
		hl := c.getHL()
		c.A = c.read8(hl)
		c.setHL(hl - 1)
		return 2

	// LD r8,n8
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E:
		dst := (op >> 3) & 7
		c.setReg8(dst, c.fetch8())
		if dst == 6 {
			return 3
		}
		return 2

	case 0x76: // HALT
		c.halted = true
		return 1

	// LD r8,r8 (with (HL) source or destination)
	case 0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
		0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F,
		0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57,
		0x58, 0x59, 0x5A, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F,
		0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67,
		0x68, 0x69, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F,
		0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x77,
		0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x7F:
		dst := (op >> 3) & 7
		src := op & 7
		c.setReg8(dst, c.reg8(src))
		if dst == 6 || src == 6 {
			return 2
		}
		return 1

	// INC/DEC r16 — no flags
	case 0x03:
		c.setBC(c.getBC() + 1)
		return 2
	case 0x13:
		c.setDE(c.getDE() + 1)
		return 2
	case 0x23:
		c.setHL(c.getHL() + 1)
		return 2
	case 0x33:
		c.SP++
		return 2
	case 0x0B:
		c.setBC(c.getBC() - 1)
		return 2
	case 0x1B:
		c.setDE(c.getDE() - 1)
		return 2
	case 0x2B:
		c.setHL(c.getHL() - 1)
		return 2
	case 0x3B:
		c.SP--
		return 2

	// INC r8 — C preserved
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		dst := (op >> 3) & 7
		old := c.reg8(dst)
		v := old + 1
		c.setReg8(dst, v)
		c.setZNHC(v == 0, false, old&0x0F == 0x0F, c.flag(flagC))
		if dst == 6 {
			return 3
		}
		return 1

	// DEC r8 — C preserved
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		dst := (op >> 3) & 7
		old := c.reg8(dst)
		v := old - 1
		c.setReg8(dst, v)
		c.setZNHC(v == 0, true, old&0x0F == 0x00, c.flag(flagC))
		if dst == 6 {
			return 3
		}
		return 1

	// Accumulator rotates: Z is always cleared, unlike the CB forms.
	case 0x07: // RLCA
		carry := c.A >> 7
		c.A = c.A<<1 | carry
		c.setZNHC(false, false, false, carry == 1)
		return 1
	case 0x0F: // RRCA
		carry := c.A & 1
		c.A = c.A>>1 | carry<<7
		c.setZNHC(false, false, false, carry == 1)
		return 1
	case 0x17: // RLA
		carry := c.A >> 7
		cin := byte(0)
		if c.flag(flagC) {
			cin = 1
		}
		c.A = c.A<<1 | cin
		c.setZNHC(false, false, false, carry == 1)
		return 1
	case 0x1F: // RRA
		carry := c.A & 1
		cin := byte(0)
		if c.flag(flagC) {
			cin = 1
		}
		c.A = c.A>>1 | cin<<7
		c.setZNHC(false, false, false, carry == 1)
		return 1

	case 0x08: // LD (a16),SP
		c.bus.WriteWord(c.fetch16(), c.SP)
		return 5

	case 0x09: // ADD HL,BC
		c.addHL(c.getBC())
		return 2
	case 0x19: // ADD HL,DE
		c.addHL(c.getDE())
		return 2
	case 0x29: // ADD HL,HL
		c.addHL(c.getHL())
		return 2
	case 0x39: // ADD HL,SP
		c.addHL(c.SP)
		return 2

	case 0x18: // JR e8
		off := int8(c.fetch8())
		c.PC += uint16(off)
		return 3
	case 0x20: // JR NZ,e8
		return c.jrIf(!c.flag(flagZ))
	case 0x28: // JR Z,e8
		return c.jrIf(c.flag(flagZ))
	case 0x30: // JR NC,e8
		return c.jrIf(!c.flag(flagC))
	case 0x38: // JR C,e8
		return c.jrIf(c.flag(flagC))

	case 0x10: // STOP — second byte of the encoding is skipped
		c.fetch8()
		c.stopped = true
		return 4

	case 0x27: // DAA
		a := c.A
		carry := c.flag(flagC)
		if !c.flag(flagN) {
			if carry || a > 0x99 {
				a += 0x60
				carry = true
			}
			if c.flag(flagH) || a&0x0F > 0x09 {
				a += 0x06
			}
		} else {
			if carry {
				a -= 0x60
			}
			if c.flag(flagH) {
				a -= 0x06
			}
		}
		c.A = a
		c.setZNHC(a == 0, c.flag(flagN), false, carry)
		return 1

	case 0x2F: // CPL
		c.A = ^c.A
		c.setZNHC(c.flag(flagZ), true, true, c.flag(flagC))
		return 1
	case 0x37: // SCF
		c.setZNHC(c.flag(flagZ), false, false, true)
		return 1
	case 0x3F: // CCF
		c.setZNHC(c.flag(flagZ), false, false, !c.flag(flagC))
		return 1

	// ALU A,r8: the operation lives in bits 5-3, the operand in bits 2-0.
	case 0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
		0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x8D, 0x8E, 0x8F,
		0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97,
		0x98, 0x99, 0x9A, 0x9B, 0x9C, 0x9D, 0x9E, 0x9F,
		0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7,
		0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF,
		0xB0, 0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7,
		0xB8, 0xB9, 0xBA, 0xBB, 0xBC, 0xBD, 0xBE, 0xBF:
		src := op & 7
		c.alu((op>>3)&7, c.reg8(src))
		if src == 6 {
			return 2
		}
		return 1

	// ALU A,n8
	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE:
		c.alu((op>>3)&7, c.fetch8())
		return 2

	case 0xC9: // RET
		c.PC = c.pop16()
		return 4
	case 0xD9: // RETI — IME comes back without the EI delay
		c.PC = c.pop16()
		c.IME = true
		return 4
	case 0xC0: // RET NZ
		return c.retIf(!c.flag(flagZ))
	case 0xC8: // RET Z
		return c.retIf(c.flag(flagZ))
	case 0xD0: // RET NC
		return c.retIf(!c.flag(flagC))
	case 0xD8: // RET C
		return c.retIf(c.flag(flagC))

	case 0xC1: // POP BC
		c.setBC(c.pop16())
		return 3
	case 0xD1: // POP DE
		c.setDE(c.pop16())
		return 3
	case 0xE1: // POP HL
		c.setHL(c.pop16())
		return 3
	case 0xF1: // POP AF — setAF masks the flag low nibble
		c.setAF(c.pop16())
		return 3

	case 0xC5: // PUSH BC
		c.push16(c.getBC())
		return 4
	case 0xD5: // PUSH DE
		c.push16(c.getDE())
		return 4
	case 0xE5: // PUSH HL
		c.push16(c.getHL())
		return 4
	case 0xF5: // PUSH AF
		c.push16(c.getAF())
		return 4

	case 0xC3: // JP a16
		c.PC = c.fetch16()
		return 4
	case 0xE9: // JP HL
		c.PC = c.getHL()
		return 1
	case 0xC2: // JP NZ,a16
		return c.jpIf(!c.flag(flagZ))
	case 0xCA: // JP Z,a16
		return c.jpIf(c.flag(flagZ))
	case 0xD2: // JP NC,a16
		return c.jpIf(!c.flag(flagC))
	case 0xDA: // JP C,a16
		return c.jpIf(c.flag(flagC))

	case 0xCD: // CALL a16
		addr := c.fetch16()
		c.push16(c.PC)
		c.PC = addr
		return 6
	case 0xC4: // CALL NZ,a16
		return c.callIf(!c.flag(flagZ))
	case 0xCC: // CALL Z,a16
		return c.callIf(c.flag(flagZ))
	case 0xD4: // CALL NC,a16
		return c.callIf(!c.flag(flagC))
	case 0xDC: // CALL C,a16
		return c.callIf(c.flag(flagC))

	// RST — vector is encoded in bits 5-3
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		c.push16(c.PC)
		c.PC = uint16(op & 0x38)
		return 4

	case 0xE0: // LDH (a8),A
		c.write8(0xFF00|uint16(c.fetch8()), c.A)
		return 3
	case 0xF0: // LDH A,(a8)
		c.A = c.read8(0xFF00 | uint16(c.fetch8()))
		return 3
	case 0xE2: // LD (C),A
		c.write8(0xFF00|uint16(c.C), c.A)
		return 2
	case 0xF2: // LD A,(C)
		c.A = c.read8(0xFF00 | uint16(c.C))
		return 2
	case 0xEA: // LD (a16),A
		c.write8(c.fetch16(), c.A)
		return 4
	case 0xFA: // LD A,(a16)
		c.A = c.read8(c.fetch16())
		return 4

	case 0xE8: // ADD SP,e8
		c.SP = c.spOffset(c.fetch8())
		return 4
	case 0xF8: // LD HL,SP+e8
		c.setHL(c.spOffset(c.fetch8()))
		return 3
	case 0xF9: // LD SP,HL
		c.SP = c.getHL()
		return 2

	case 0xF3: // DI
		c.diPending = true
		return 1
	case 0xFB: // EI
		c.eiPending = true
		return 1

	case 0xCB:
		return c.executeCB(c.fetch8())

	default:
		// 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB-0xED, 0xF4, 0xFC, 0xFD freeze
		// real silicon; logging and moving on keeps the serial report alive.
		log.Printf("cpu: undefined opcode 0x%02X at 0x%04X", op, c.PC-1)
		return 1
	}
}

// alu applies the 8-way arithmetic block (ADD/ADC/SUB/SBC/AND/XOR/OR/CP)
// selected by bits 5-3 of the opcode.
func (c *CPU) alu(sel, v byte) {
	switch sel {
	case 0: // ADD
		c.A = c.add8(c.A, v, false)
	case 1: // ADC
		c.A = c.add8(c.A, v, c.flag(flagC))
	case 2: // SUB
		c.A = c.sub8(c.A, v, false)
	case 3: // SBC
		c.A = c.sub8(c.A, v, c.flag(flagC))
	case 4: // AND
		c.A &= v
		c.setZNHC(c.A == 0, false, true, false)
	case 5: // XOR
		c.A ^= v
		c.setZNHC(c.A == 0, false, false, false)
	case 6: // OR
		c.A |= v
		c.setZNHC(c.A == 0, false, false, false)
	case 7: // CP
		c.sub8(c.A, v, false)
	}
}

func (c *CPU) jrIf(cond bool) int {
	off := int8(c.fetch8())
	if !cond {
		return 2
	}
	c.PC += uint16(off)
	return 3
}

func (c *CPU) jpIf(cond bool) int {
	addr := c.fetch16()
	if !cond {
		return 3
	}
	c.PC = addr
	return 4
}

func (c *CPU) callIf(cond bool) int {
	addr := c.fetch16()
	if !cond {
		return 3
	}
	c.push16(c.PC)
	c.PC = addr
	return 6
}

func (c *CPU) retIf(cond bool) int {
	if !cond {
		return 2
	}
	c.PC = c.pop16()
	return 5
}
