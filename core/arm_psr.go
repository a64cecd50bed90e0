package core

// execPsrTransfer implements MRS (bit21 clear) and MSR (bit21 set),
// register or immediate operand, current or saved PSR selected by bit22.
func execPsrTransfer(c *Cpu, instr uint32) {
	useSpsr := instr&(1<<22) != 0
	toPsr := instr&(1<<21) != 0

	if !toPsr {
		rd := (instr >> 12) & 0xf
		if useSpsr {
			c.Regs.Set(rd, uint32(c.Regs.Spsr()))
		} else {
			c.Regs.Set(rd, uint32(c.Regs.Cpsr))
		}
		return
	}

	var operand uint32
	if instr&(1<<25) != 0 {
		imm := instr & 0xff
		rot := (instr >> 8) & 0xf
		operand = ror32(imm, uint(rot*2))
	} else {
		rm := instr & 0xf
		operand = c.Regs.Get(rm)
	}

	// The field mask (bits 19-16) selects which PSR bytes this MSR writes.
	// User mode may only ever touch the flags byte; control bits below bit
	// 24 are only writable from a privileged mode.
	var mask uint32
	if instr&(1<<19) != 0 {
		mask |= 0xff000000
	}
	if instr&(1<<16) != 0 && c.Regs.Cpsr.Mode() != ModeUSR {
		mask |= 0x000000ff
	}

	if useSpsr {
		cur := uint32(c.Regs.Spsr())
		c.Regs.SetSpsr(Psr((cur &^ mask) | (operand & mask)))
		return
	}

	newVal := Psr((uint32(c.Regs.Cpsr) &^ mask) | (operand & mask))
	if mask&0xff != 0 && newVal.Mode() != c.Regs.Cpsr.Mode() {
		c.Regs.SwitchMode(newVal.Mode())
		newVal.SetMode(c.Regs.Cpsr.Mode())
	}
	c.Regs.Cpsr = newVal
}
