package core

import "math/bits"

// execThumbPcRelativeLoad implements LDR Rd, [PC, #imm8*4] (format 6). PC
// is word-aligned before the offset is added, since R15 may still hold an
// odd-looking value relative to the instruction stream.
func execThumbPcRelativeLoad(c *Cpu, instr uint16) {
	rd := uint32((instr >> 8) & 0x7)
	imm := uint32(instr&0xff) * 4
	base := c.Regs.Get(15) &^ 3
	c.Regs.Set(rd, c.Bus.ReadWord(base+imm))
}

// execThumbLoadStoreReg implements LDR/STR/LDRB/STRB with a register
// offset (format 7).
func execThumbLoadStoreReg(c *Cpu, instr uint16) {
	load := instr&(1<<11) != 0
	byteAccess := instr&(1<<10) != 0
	ro := uint32((instr >> 6) & 0x7)
	rb := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)

	addr := c.Regs.Get(rb) + c.Regs.Get(ro)
	if load {
		if byteAccess {
			c.Regs.Set(rd, uint32(c.Bus.ReadByte(addr)))
		} else {
			c.Regs.Set(rd, c.Bus.ReadWord(addr))
		}
	} else {
		if byteAccess {
			c.Bus.WriteByte(addr, byte(c.Regs.Get(rd)))
		} else {
			c.Bus.WriteWord(addr, c.Regs.Get(rd))
		}
	}
}

// execThumbLoadStoreSignExt implements LDRH/LDSB/LDSH/STRH with a
// register offset (format 8).
func execThumbLoadStoreSignExt(c *Cpu, instr uint16) {
	hFlag := instr&(1<<11) != 0
	signFlag := instr&(1<<10) != 0
	ro := uint32((instr >> 6) & 0x7)
	rb := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)

	addr := c.Regs.Get(rb) + c.Regs.Get(ro)

	switch {
	case !signFlag && !hFlag: // STRH
		c.Bus.WriteHalf(addr&^1, uint16(c.Regs.Get(rd)))
	case !signFlag && hFlag: // LDRH
		c.Regs.Set(rd, c.Bus.ReadHalfRotate(addr))
	case signFlag && !hFlag: // LDSB
		c.Regs.Set(rd, uint32(int32(int8(c.Bus.ReadByte(addr)))))
	case signFlag && hFlag: // LDSH
		c.Regs.Set(rd, c.Bus.ReadHalfSigned(addr))
	}
}

// execThumbLoadStoreImm implements LDR/STR/LDRB/STRB with a 5-bit
// immediate offset, scaled by 4 for word access (format 9).
func execThumbLoadStoreImm(c *Cpu, instr uint16) {
	byteAccess := instr&(1<<12) != 0
	load := instr&(1<<11) != 0
	imm := uint32((instr >> 6) & 0x1f)
	rb := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)

	if !byteAccess {
		imm *= 4
	}
	addr := c.Regs.Get(rb) + imm

	if load {
		if byteAccess {
			c.Regs.Set(rd, uint32(c.Bus.ReadByte(addr)))
		} else {
			c.Regs.Set(rd, c.Bus.ReadWord(addr))
		}
	} else {
		if byteAccess {
			c.Bus.WriteByte(addr, byte(c.Regs.Get(rd)))
		} else {
			c.Bus.WriteWord(addr, c.Regs.Get(rd))
		}
	}
}

// execThumbLoadStoreHalfword implements LDRH/STRH with a 5-bit halfword
// immediate offset (format 10).
func execThumbLoadStoreHalfword(c *Cpu, instr uint16) {
	load := instr&(1<<11) != 0
	imm := uint32((instr>>6)&0x1f) * 2
	rb := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)

	addr := c.Regs.Get(rb) + imm
	if load {
		c.Regs.Set(rd, c.Bus.ReadHalfRotate(addr))
	} else {
		c.Bus.WriteHalf(addr&^1, uint16(c.Regs.Get(rd)))
	}
}

// execThumbSpRelative implements LDR/STR Rd, [SP, #imm8*4] (format 11).
func execThumbSpRelative(c *Cpu, instr uint16) {
	load := instr&(1<<11) != 0
	rd := uint32((instr >> 8) & 0x7)
	imm := uint32(instr&0xff) * 4

	addr := c.Regs.Get(13) + imm
	if load {
		c.Regs.Set(rd, c.Bus.ReadWord(addr))
	} else {
		c.Bus.WriteWord(addr, c.Regs.Get(rd))
	}
}

// execThumbLoadAddress implements ADD Rd, PC/SP, #imm8*4 (format 12).
func execThumbLoadAddress(c *Cpu, instr uint16) {
	usesSp := instr&(1<<11) != 0
	rd := uint32((instr >> 8) & 0x7)
	imm := uint32(instr&0xff) * 4

	var base uint32
	if usesSp {
		base = c.Regs.Get(13)
	} else {
		base = c.Regs.Get(15) &^ 3
	}
	c.Regs.Set(rd, base+imm)
}

// execThumbAddSp implements ADD/SUB SP, #imm7*4 (format 13).
func execThumbAddSp(c *Cpu, instr uint16) {
	negative := instr&(1<<7) != 0
	imm := uint32(instr&0x7f) * 4
	if negative {
		c.Regs.Set(13, c.Regs.Get(13)-imm)
	} else {
		c.Regs.Set(13, c.Regs.Get(13)+imm)
	}
}

// execThumbPushPop implements PUSH/POP {rlist, LR/PC} (format 14).
func execThumbPushPop(c *Cpu, instr uint16) {
	pop := instr&(1<<11) != 0
	storeExtra := instr&(1<<8) != 0
	rlist := instr & 0xff

	if pop {
		sp := c.Regs.Get(13)
		for i := 0; i < 8; i++ {
			if rlist&(1<<uint(i)) != 0 {
				c.Regs.Set(uint32(i), c.Bus.ReadWord(sp))
				sp += 4
			}
		}
		if storeExtra {
			pc := c.Bus.ReadWord(sp)
			sp += 4
			c.flushTo(pc)
		}
		c.Regs.Set(13, sp)
		return
	}

	count := bits.OnesCount16(rlist)
	if storeExtra {
		count++
	}
	sp := c.Regs.Get(13) - uint32(count)*4
	addr := sp
	for i := 0; i < 8; i++ {
		if rlist&(1<<uint(i)) != 0 {
			c.Bus.WriteWord(addr, c.Regs.Get(uint32(i)))
			addr += 4
		}
	}
	if storeExtra {
		c.Bus.WriteWord(addr, c.Regs.Get(14))
	}
	c.Regs.Set(13, sp)
}

// execThumbMultipleTransfer implements LDMIA/STMIA Rb!, {rlist} (format 15).
func execThumbMultipleTransfer(c *Cpu, instr uint16) {
	load := instr&(1<<11) != 0
	rb := uint32((instr >> 8) & 0x7)
	rlist := instr & 0xff

	addr := c.Regs.Get(rb)
	for i := 0; i < 8; i++ {
		if rlist&(1<<uint(i)) != 0 {
			if load {
				c.Regs.Set(uint32(i), c.Bus.ReadWord(addr))
			} else {
				c.Bus.WriteWord(addr, c.Regs.Get(uint32(i)))
			}
			addr += 4
		}
	}
	c.Regs.Set(rb, addr)
}
