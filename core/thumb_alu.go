package core

// execThumbMoveShifted implements LSL/LSR/ASR Rd, Rs, #offset5 (format 1).
func execThumbMoveShifted(c *Cpu, instr uint16) {
	op := (instr >> 11) & 0x3
	offset := uint32((instr >> 6) & 0x1f)
	rs := (instr >> 3) & 0x7
	rd := instr & 0x7

	var shiftType ShiftType
	switch op {
	case 0:
		shiftType = ShiftLSL
	case 1:
		shiftType = ShiftLSR
	case 2:
		shiftType = ShiftASR
	}

	val, carry := Shift(shiftType, c.Regs.Get(uint32(rs)), offset, c.Regs.Cpsr.C(), true)
	c.Regs.Set(uint32(rd), val)
	c.Regs.Cpsr.SetNZ(val)
	c.Regs.Cpsr.SetC(carry)
}

// execThumbAddSub implements ADD/SUB Rd, Rs, Rn/#imm3 (format 2).
func execThumbAddSub(c *Cpu, instr uint16) {
	immediate := instr&(1<<10) != 0
	subtract := instr&(1<<9) != 0
	rnOrImm := uint32((instr >> 6) & 0x7)
	rs := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)

	var operand uint32
	if immediate {
		operand = rnOrImm
	} else {
		operand = c.Regs.Get(rnOrImm)
	}

	var res aluResult
	if subtract {
		res = sub(c.Regs.Get(rs), operand)
	} else {
		res = add(c.Regs.Get(rs), operand)
	}
	c.Regs.Set(rd, res.Value)
	c.Regs.Cpsr.SetN(res.N)
	c.Regs.Cpsr.SetZ(res.Z)
	c.Regs.Cpsr.SetC(res.C)
	c.Regs.Cpsr.SetV(res.V)
}

// execThumbImmediate implements MOV/CMP/ADD/SUB Rd, #imm8 (format 3).
func execThumbImmediate(c *Cpu, instr uint16) {
	op := (instr >> 11) & 0x3
	rd := uint32((instr >> 8) & 0x7)
	imm := uint32(instr & 0xff)

	switch op {
	case 0: // MOV
		c.Regs.Set(rd, imm)
		c.Regs.Cpsr.SetNZ(imm)
	case 1: // CMP
		res := sub(c.Regs.Get(rd), imm)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 2: // ADD
		res := add(c.Regs.Get(rd), imm)
		c.Regs.Set(rd, res.Value)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 3: // SUB
		res := sub(c.Regs.Get(rd), imm)
		c.Regs.Set(rd, res.Value)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	}
}

// execThumbAluOp implements the sixteen two-register ALU operations
// (format 4), mirroring the ARM data processing opcodes' flag behavior.
func execThumbAluOp(c *Cpu, instr uint16) {
	op := (instr >> 6) & 0xf
	rs := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)

	dst := c.Regs.Get(rd)
	src := c.Regs.Get(rs)

	switch op {
	case 0x0: // AND
		res := dst & src
		c.Regs.Set(rd, res)
		c.Regs.Cpsr.SetNZ(res)
	case 0x1: // EOR
		res := dst ^ src
		c.Regs.Set(rd, res)
		c.Regs.Cpsr.SetNZ(res)
	case 0x2: // LSL
		val, carry := Shift(ShiftLSL, dst, src&0xff, c.Regs.Cpsr.C(), false)
		c.Regs.Set(rd, val)
		c.Regs.Cpsr.SetNZ(val)
		c.Regs.Cpsr.SetC(carry)
	case 0x3: // LSR
		val, carry := Shift(ShiftLSR, dst, src&0xff, c.Regs.Cpsr.C(), false)
		c.Regs.Set(rd, val)
		c.Regs.Cpsr.SetNZ(val)
		c.Regs.Cpsr.SetC(carry)
	case 0x4: // ASR
		val, carry := Shift(ShiftASR, dst, src&0xff, c.Regs.Cpsr.C(), false)
		c.Regs.Set(rd, val)
		c.Regs.Cpsr.SetNZ(val)
		c.Regs.Cpsr.SetC(carry)
	case 0x5: // ADC
		res := adc(dst, src, c.Regs.Cpsr.C())
		c.Regs.Set(rd, res.Value)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 0x6: // SBC
		res := sbc(dst, src, c.Regs.Cpsr.C())
		c.Regs.Set(rd, res.Value)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 0x7: // ROR
		val, carry := Shift(ShiftROR, dst, src&0xff, c.Regs.Cpsr.C(), false)
		c.Regs.Set(rd, val)
		c.Regs.Cpsr.SetNZ(val)
		c.Regs.Cpsr.SetC(carry)
	case 0x8: // TST
		c.Regs.Cpsr.SetNZ(dst & src)
	case 0x9: // NEG
		res := sub(0, src)
		c.Regs.Set(rd, res.Value)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 0xa: // CMP
		res := sub(dst, src)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 0xb: // CMN
		res := add(dst, src)
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 0xc: // ORR
		res := dst | src
		c.Regs.Set(rd, res)
		c.Regs.Cpsr.SetNZ(res)
	case 0xd: // MUL
		res := dst * src
		c.Regs.Set(rd, res)
		c.Regs.Cpsr.SetNZ(res)
	case 0xe: // BIC
		res := dst &^ src
		c.Regs.Set(rd, res)
		c.Regs.Cpsr.SetNZ(res)
	case 0xf: // MVN
		res := ^src
		c.Regs.Set(rd, res)
		c.Regs.Cpsr.SetNZ(res)
	}
}

// execThumbHiRegBx implements ADD/CMP/MOV on any register (including
// R8-R15 via the H1/H2 extension bits) and BX (format 5).
func execThumbHiRegBx(c *Cpu, instr uint16) {
	op := (instr >> 8) & 0x3
	h1 := instr&(1<<7) != 0
	h2 := instr&(1<<6) != 0
	rs := uint32((instr >> 3) & 0x7)
	rd := uint32(instr & 0x7)
	if h2 {
		rs += 8
	}
	if h1 {
		rd += 8
	}

	switch op {
	case 0: // ADD
		res := c.Regs.Get(rd) + c.Regs.Get(rs)
		c.Regs.Set(rd, res)
		if rd == 15 {
			c.flushTo(res)
		}
	case 1: // CMP
		res := sub(c.Regs.Get(rd), c.Regs.Get(rs))
		c.Regs.Cpsr.SetN(res.N)
		c.Regs.Cpsr.SetZ(res.Z)
		c.Regs.Cpsr.SetC(res.C)
		c.Regs.Cpsr.SetV(res.V)
	case 2: // MOV
		val := c.Regs.Get(rs)
		c.Regs.Set(rd, val)
		if rd == 15 {
			c.flushTo(val)
		}
	case 3: // BX
		target := c.Regs.Get(rs)
		c.Regs.Cpsr.SetThumb(target&1 != 0)
		c.flushTo(target)
	}
}
