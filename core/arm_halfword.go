package core

// execHalfwordDataTransfer implements LDRH/STRH/LDRSB/LDRSH with register
// or immediate offset, selected by bit22, and pre/post-indexing and
// writeback exactly as the single data transfer form uses them.
func execHalfwordDataTransfer(c *Cpu, instr uint32) {
	rn := (instr >> 16) & 0xf
	rd := (instr >> 12) & 0xf
	pre := instr&(1<<24) != 0
	up := instr&(1<<23) != 0
	immForm := instr&(1<<22) != 0
	writeback := instr&(1<<21) != 0
	load := instr&(1<<20) != 0
	sBit := instr&(1<<6) != 0
	hBit := instr&(1<<5) != 0

	var offset uint32
	if immForm {
		offset = ((instr >> 4) & 0xf0) | (instr & 0xf)
	} else {
		offset = c.Regs.Get(instr & 0xf)
	}

	base := c.Regs.Get(rn)
	var addr uint32
	if up {
		addr = base + offset
	} else {
		addr = base - offset
	}

	effective := base
	if pre {
		effective = addr
	}

	if load {
		var val uint32
		switch {
		case !sBit && hBit:
			val = uint32(c.Bus.ReadHalfRotate(effective))
		case sBit && !hBit:
			val = uint32(int32(int8(c.Bus.ReadByte(effective))))
		case sBit && hBit:
			val = c.Bus.ReadHalfSigned(effective)
		default:
			val = uint32(c.Bus.ReadHalfRotate(effective))
		}
		c.Regs.Set(rd, val)
	} else {
		c.Bus.WriteHalf(effective&^1, uint16(c.Regs.Get(rd)))
	}

	if !pre || writeback {
		c.Regs.Set(rn, addr)
	}
}
