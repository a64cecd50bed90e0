package core

// execMultiply implements MUL/MLA: Rd = Rm*Rs (+ Rn if accumulate).
// Rd and Rm must not be R15; an encoding that uses R15 for either is taken
// as an undefined instruction rather than silently producing a wrong
// result.
func execMultiply(c *Cpu, instr uint32) {
	rd := (instr >> 16) & 0xf
	rn := (instr >> 12) & 0xf
	rs := (instr >> 8) & 0xf
	rm := instr & 0xf
	accumulate := instr&(1<<21) != 0
	s := instr&(1<<20) != 0

	if rd == 15 || rm == 15 {
		execUndefined(c, instr)
		return
	}

	result := c.Regs.Get(rm) * c.Regs.Get(rs)
	if accumulate {
		result += c.Regs.Get(rn)
	}
	c.Regs.Set(rd, result)

	if s {
		c.Regs.Cpsr.SetNZ(result)
	}
}

// execMultiplyLong implements the 64-bit UMULL/UMLAL/SMULL/SMLAL forms,
// splitting the 64-bit product across RdHi:RdLo.
func execMultiplyLong(c *Cpu, instr uint32) {
	rdHi := (instr >> 16) & 0xf
	rdLo := (instr >> 12) & 0xf
	rs := (instr >> 8) & 0xf
	rm := instr & 0xf
	signed := instr&(1<<22) != 0
	accumulate := instr&(1<<21) != 0
	s := instr&(1<<20) != 0

	var product uint64
	if signed {
		product = uint64(int64(int32(c.Regs.Get(rm))) * int64(int32(c.Regs.Get(rs))))
	} else {
		product = uint64(c.Regs.Get(rm)) * uint64(c.Regs.Get(rs))
	}

	if accumulate {
		hi := uint64(c.Regs.Get(rdHi))
		lo := uint64(c.Regs.Get(rdLo))
		product += hi<<32 | lo
	}

	c.Regs.Set(rdLo, uint32(product))
	c.Regs.Set(rdHi, uint32(product>>32))

	if s {
		c.Regs.Cpsr.SetN(product&0x8000000000000000 != 0)
		c.Regs.Cpsr.SetZ(product == 0)
	}
}
