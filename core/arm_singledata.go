package core

// execSingleDataTransfer implements LDR/STR/LDRB/STRB with immediate or
// shifted-register offset, pre/post indexing and writeback (spec's
// addressing-mode table matches the ARM architecture reference's).
func execSingleDataTransfer(c *Cpu, instr uint32) {
	rn := (instr >> 16) & 0xf
	rd := (instr >> 12) & 0xf
	immForm := instr&(1<<25) == 0
	pre := instr&(1<<24) != 0
	up := instr&(1<<23) != 0
	byteAccess := instr&(1<<22) != 0
	writeback := instr&(1<<21) != 0
	load := instr&(1<<20) != 0

	var offset uint32
	if immForm {
		offset = instr & 0xfff
	} else {
		rm := instr & 0xf
		shiftType := ShiftType((instr >> 5) & 0x3)
		amount := (instr >> 7) & 0x1f
		offset, _ = Shift(shiftType, c.Regs.Get(rm), amount, c.Regs.Cpsr.C(), true)
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
		if byteAccess {
			val = uint32(c.Bus.ReadByte(effective))
		} else {
			val = c.Bus.ReadWord(effective)
		}
		c.Regs.Set(rd, val)
		if rd == 15 {
			c.flushTo(val)
		}
	} else {
		storeVal := c.Regs.Get(rd)
		if rd == 15 {
			storeVal = c.Regs.Get(15) + 4
		}
		if byteAccess {
			c.Bus.WriteByte(effective, byte(storeVal))
		} else {
			c.Bus.WriteWord(effective&^3, storeVal)
		}
	}

	// LDR with writeback into the same register keeps the loaded value;
	// a post-indexed transfer always writes back regardless of the W bit.
	if (!pre || writeback) && !(load && rd == rn) {
		c.Regs.Set(rn, addr)
	}
}
