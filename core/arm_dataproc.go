package core

// operand2 decodes the second operand of a data processing instruction,
// returning its value and the shifter carry-out that feeds the S-bit's C
// flag for logical opcodes.
func (c *Cpu) operand2(instr uint32) (val uint32, shiftCarry bool) {
	if instr&(1<<25) != 0 {
		imm := instr & 0xff
		rot := (instr >> 8) & 0xf
		if rot == 0 {
			return imm, c.Regs.Cpsr.C()
		}
		return Shift(ShiftROR, imm, rot*2, c.Regs.Cpsr.C(), false)
	}

	rm := instr & 0xf
	shiftType := ShiftType((instr >> 5) & 0x3)

	var rmVal uint32
	var amount uint32
	immediate := true

	if instr&(1<<4) != 0 {
		// Shift amount taken from a register's low byte. When R15 is used
		// as an operand in this form, the pipeline's extra register-fetch
		// stage means it reads 12 bytes ahead rather than the usual 8.
		rs := (instr >> 8) & 0xf
		amount = c.Regs.Get(rs) & 0xff
		immediate = false
		if rm == 15 {
			rmVal = c.Regs.Get(15) + 4
		} else {
			rmVal = c.Regs.Get(rm)
		}
		if amount == 0 {
			return rmVal, c.Regs.Cpsr.C()
		}
	} else {
		amount = (instr >> 7) & 0x1f
		rmVal = c.Regs.Get(rm)
	}

	return Shift(shiftType, rmVal, amount, c.Regs.Cpsr.C(), immediate)
}

// execDataProcessing implements the sixteen data processing opcodes
// (AND..MVN). Operand2 shift/rotate is decoded by operand2; the opcode
// selects between logical ops (which may update C from the shifter) and
// arithmetic ops (which compute C/V from 33-bit addition, per the alu
// helpers).
func execDataProcessing(c *Cpu, instr uint32) {
	opcode := (instr >> 21) & 0xf
	s := instr&(1<<20) != 0
	rn := (instr >> 16) & 0xf
	rd := (instr >> 12) & 0xf

	op2, shiftCarry := c.operand2(instr)
	rnVal := c.Regs.Get(rn)

	var res aluResult
	writesResult := true

	switch opcode {
	case 0x0: // AND
		res = logicalResult(rnVal&op2, shiftCarry)
	case 0x1: // EOR
		res = logicalResult(rnVal^op2, shiftCarry)
	case 0x2: // SUB
		res = sub(rnVal, op2)
	case 0x3: // RSB
		res = sub(op2, rnVal)
	case 0x4: // ADD
		res = add(rnVal, op2)
	case 0x5: // ADC
		res = adc(rnVal, op2, c.Regs.Cpsr.C())
	case 0x6: // SBC
		res = sbc(rnVal, op2, c.Regs.Cpsr.C())
	case 0x7: // RSC
		res = sbc(op2, rnVal, c.Regs.Cpsr.C())
	case 0x8: // TST
		res = logicalResult(rnVal&op2, shiftCarry)
		writesResult = false
	case 0x9: // TEQ
		res = logicalResult(rnVal^op2, shiftCarry)
		writesResult = false
	case 0xa: // CMP
		res = sub(rnVal, op2)
		writesResult = false
	case 0xb: // CMN
		res = add(rnVal, op2)
		writesResult = false
	case 0xc: // ORR
		res = logicalResult(rnVal|op2, shiftCarry)
	case 0xd: // MOV
		res = logicalResult(op2, shiftCarry)
	case 0xe: // BIC
		res = logicalResult(rnVal&^op2, shiftCarry)
	case 0xf: // MVN
		res = logicalResult(^op2, shiftCarry)
	}

	if s {
		if rd == 15 {
			// Writing CPSR flags via a PC-destination S-bit instruction in
			// a privileged mode restores the whole CPSR from SPSR instead.
			if hasSpsr(c.Regs.Cpsr.Mode()) {
				restored := c.Regs.Spsr()
				c.Regs.SwitchMode(restored.Mode())
				c.Regs.Cpsr = restored
			}
		} else {
			c.Regs.Cpsr.SetN(res.N)
			c.Regs.Cpsr.SetZ(res.Z)
			c.Regs.Cpsr.SetC(res.C)
			if opcode != 0x0 && opcode != 0x1 && opcode != 0x8 && opcode != 0x9 &&
				opcode != 0xc && opcode != 0xd && opcode != 0xe && opcode != 0xf {
				c.Regs.Cpsr.SetV(res.V)
			}
		}
	}

	if writesResult {
		c.Regs.Set(rd, res.Value)
		if rd == 15 {
			c.flushTo(res.Value)
		}
	}
}
