package core

// execSingleDataSwap implements SWP/SWPB: an atomic-on-real-hardware
// read-modify-write of a byte or word at [Rn], returning the old value in
// Rd. This core executes the CPU single-threaded, so the read and write
// are simply sequential.
func execSingleDataSwap(c *Cpu, instr uint32) {
	rn := (instr >> 16) & 0xf
	rd := (instr >> 12) & 0xf
	rm := instr & 0xf
	byteSwap := instr&(1<<22) != 0

	addr := c.Regs.Get(rn)
	if byteSwap {
		old := c.Bus.ReadByte(addr)
		c.Bus.WriteByte(addr, byte(c.Regs.Get(rm)))
		c.Regs.Set(rd, uint32(old))
	} else {
		old := c.Bus.ReadWord(addr)
		c.Bus.WriteWord(addr, c.Regs.Get(rm))
		c.Regs.Set(rd, old)
	}
}
