package core

// execSoftwareInterrupt implements SWI: enter supervisor mode at the SWI
// vector, saving the return address and CPSR exactly as IRQ entry does
// but with a 4-byte (not +4-extra) return offset since SWI is always
// executed to completion before the trap is taken.
func execSoftwareInterrupt(c *Cpu, instr uint32) {
	returnAddr := c.Regs.Get(15) - 4

	oldCpsr := c.Regs.Cpsr
	c.Regs.SwitchMode(ModeSVC)
	c.Regs.SetSpsr(oldCpsr)
	c.Regs.Set(14, returnAddr)
	c.Regs.Cpsr.SetThumb(false)
	c.Regs.Cpsr.SetIrqDisable(true)

	c.flushTo(0x00000008)
}

// execUndefined implements the undefined-instruction trap: supervisor-like
// entry at the undefined vector, used by the decode table for bit
// patterns the ARM7TDMI does not itself define.
func execUndefined(c *Cpu, instr uint32) {
	returnAddr := c.Regs.Get(15) - 4

	oldCpsr := c.Regs.Cpsr
	c.Regs.SwitchMode(ModeUND)
	c.Regs.SetSpsr(oldCpsr)
	c.Regs.Set(14, returnAddr)
	c.Regs.Cpsr.SetThumb(false)
	c.Regs.Cpsr.SetIrqDisable(true)

	c.flushTo(0x00000004)
}
