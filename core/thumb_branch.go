package core

// execThumbConditionalBranch implements Bcc (format 16): an 8-bit signed
// word-pair offset taken only when the condition passes.
func execThumbConditionalBranch(c *Cpu, instr uint16) {
	cond := uint32((instr >> 8) & 0xf)
	if !ConditionPasses(cond, c.Regs.Cpsr.NZCV()) {
		return
	}
	offset := signExtend(uint32(instr&0xff), 8) << 1
	c.flushTo(c.Regs.Get(15) + offset)
}

// execThumbSwi implements the THUMB software interrupt trap, entering
// ARM-state supervisor mode exactly as the ARM-encoding SWI does.
func execThumbSwi(c *Cpu, instr uint16) {
	returnAddr := c.Regs.Get(15) - 2

	oldCpsr := c.Regs.Cpsr
	c.Regs.SwitchMode(ModeSVC)
	c.Regs.SetSpsr(oldCpsr)
	c.Regs.Set(14, returnAddr)
	c.Regs.Cpsr.SetThumb(false)
	c.Regs.Cpsr.SetIrqDisable(true)

	c.flushTo(0x00000008)
}

// execThumbUnconditionalBranch implements B (format 18): an 11-bit signed
// word-pair offset, always taken.
func execThumbUnconditionalBranch(c *Cpu, instr uint16) {
	offset := signExtend(uint32(instr&0x7ff), 11) << 1
	c.flushTo(c.Regs.Get(15) + offset)
}

// execThumbLongBranchLink implements BL's two-halfword sequence (format
// 19). The first half (H=0) stashes the high 11 bits, shifted into place,
// into LR; the second half (H=1) computes the target from LR plus the low
// 11 bits and sets LR to the return address with bit0 set (the
// interworking-return marker BX relies on).
func execThumbLongBranchLink(c *Cpu, instr uint16) {
	high := instr&(1<<11) != 0
	offset := uint32(instr & 0x7ff)

	if !high {
		c.Regs.Set(14, c.Regs.Get(15)+(signExtend(offset, 11)<<12))
		return
	}

	next := c.Regs.Get(15) - 2
	target := c.Regs.Get(14) + offset<<1
	c.Regs.Set(14, next|1)
	c.flushTo(target)
}
