package core

// thumbDispatch is a 256-entry table indexed by the top byte of the
// instruction (bits 15-8), which is enough to fully identify every THUMB
// format; each handler re-examines whichever lower bits it still needs
// (the ALU/Hi-register opcode nibble, the register list, the immediate).
//
// Grounded on the same table-of-function-pointers approach armDispatch
// uses, sized down from 4096 to 256 entries since THUMB's fixed 16-bit
// encoding needs far fewer classification bits than ARM's.
var thumbDispatch [256]func(*Cpu, uint16)

func init() {
	for idx := 0; idx < 256; idx++ {
		thumbDispatch[idx] = classifyThumb(byte(idx))
	}
}

func classifyThumb(top8 byte) func(*Cpu, uint16) {
	switch {
	case top8>>5 == 0b000 && top8>>3 != 0b00011:
		return execThumbMoveShifted
	case top8>>3 == 0b00011:
		return execThumbAddSub
	case top8>>5 == 0b001:
		return execThumbImmediate
	case top8>>2 == 0b010000:
		return execThumbAluOp
	case top8>>2 == 0b010001:
		return execThumbHiRegBx
	case top8>>3 == 0b01001:
		return execThumbPcRelativeLoad
	case top8>>4 == 0b0101 && top8&0x2 == 0:
		return execThumbLoadStoreReg
	case top8>>4 == 0b0101 && top8&0x2 != 0:
		return execThumbLoadStoreSignExt
	case top8>>5 == 0b011:
		return execThumbLoadStoreImm
	case top8>>4 == 0b1000:
		return execThumbLoadStoreHalfword
	case top8>>4 == 0b1001:
		return execThumbSpRelative
	case top8>>4 == 0b1010:
		return execThumbLoadAddress
	case top8 == 0b10110000:
		return execThumbAddSp
	case top8>>4 == 0b1011 && (top8&0xe == 0x4 || top8&0xe == 0xc):
		return execThumbPushPop
	case top8>>4 == 0b1100:
		return execThumbMultipleTransfer
	case top8 == 0b11011111:
		return execThumbSwi
	case top8>>4 == 0b1101:
		return execThumbConditionalBranch
	case top8>>3 == 0b11100:
		return execThumbUnconditionalBranch
	case top8>>4 == 0b1111:
		return execThumbLongBranchLink
	default:
		return execThumbUndefined
	}
}

func (c *Cpu) executeThumb(instr uint16) {
	thumbDispatch[instr>>8](c, instr)
}

func execThumbUndefined(c *Cpu, instr uint16) {
	execUndefined(c, uint32(instr))
}
