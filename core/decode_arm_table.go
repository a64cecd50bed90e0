package core

// armDispatch is a 4096-entry table of instruction-class handlers, indexed
// by the 12 bits that fully determine an ARM instruction's class: bits
// 27-20 (the high byte of the opcode field) in the top 8 bits of the
// index, and bits 7-4 (the low nibble, which distinguishes multiply/swap/
// halfword-transfer/BX from the data processing space) in the low 4.
//
// Grounded on gopsx/emulator/cpu.go's opcode-to-handler array built once
// at package init and indexed by a few decoded bits; generalized from
// MIPS's flat 6-bit primary opcode to the two-part 12-bit index the
// ARM instruction set needs, classified the same way GBATEK's decode
// table documents it.
var armDispatch [4096]func(*Cpu, uint32)

func init() {
	for idx := 0; idx < 4096; idx++ {
		armDispatch[idx] = classifyArm(uint16(idx))
	}
}

func classifyArm(idx uint16) func(*Cpu, uint32) {
	top8 := byte(idx >> 4)
	bottom4 := byte(idx & 0xf)

	bit := func(n uint) bool { return top8&(1<<n) != 0 }

	switch {
	case top8 == 0x12 && bottom4 == 0x1:
		return execBranchExchange

	case top8&0xf0 == 0xf0:
		return execSoftwareInterrupt

	case top8>>5 == 0b101:
		return execBranch

	case top8>>5 == 0b100:
		return execBlockDataTransfer

	case top8>>6 == 0b01:
		// Single Data Transfer, or Undefined when bit25 (register-shift
		// offset form) and bit4 (shift-by-register) are both set.
		if bit(5) && bottom4&0x1 != 0 {
			return execUndefined
		}
		return execSingleDataTransfer

	case top8>>5 == 0b000:
		switch {
		case bottom4 == 0x9:
			switch {
			case top8>>2 == 0:
				return execMultiply
			case top8>>3 == 0b00001:
				return execMultiplyLong
			case top8>>3 == 0b00010 && top8&0x3 == 0:
				return execSingleDataSwap
			default:
				return execUndefined
			}

		case bottom4&0x9 == 0x9:
			// 1SH1 with (S,H) != (0,0): Halfword/Signed Data Transfer.
			return execHalfwordDataTransfer

		case top8>>3&0x3 == 0b10 && !bit(0):
			// Bits 24-23 = 10, S clear: PSR transfer (MRS/MSR register form).
			return execPsrTransfer

		default:
			return execDataProcessing
		}

	case top8>>5 == 0b001:
		if top8>>3&0x3 == 0b10 && !bit(0) {
			// Immediate-operand MSR.
			return execPsrTransfer
		}
		return execDataProcessing

	default:
		return execUndefined
	}
}

// executeArm runs the already condition-checked instruction word instr.
func (c *Cpu) executeArm(instr uint32) {
	idx := uint16((instr>>16)&0xff0) | uint16((instr>>4)&0xf)
	armDispatch[idx](c, instr)
}
