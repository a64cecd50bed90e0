package core

// execBranch implements B/BL: a PC-relative jump by a sign-extended
// 24-bit word offset, shifted left 2. Link (bit24) saves the return
// address in R14.
func execBranch(c *Cpu, instr uint32) {
	link := instr&(1<<24) != 0
	offset := signExtend(instr&0xffffff, 24) << 2

	if link {
		c.Regs.Set(14, c.Regs.Get(15)-4)
	}

	c.flushTo(c.Regs.Get(15) + offset)
}

// execBranchExchange implements BX: jump to Rm's address with bit0
// selecting THUMB state, switching instruction sets mid-stream.
func execBranchExchange(c *Cpu, instr uint32) {
	rm := instr & 0xf
	target := c.Regs.Get(rm)
	c.Regs.Cpsr.SetThumb(target&1 != 0)
	c.flushTo(target)
}
