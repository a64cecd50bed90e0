package core

// Cpu is the ARM7TDMI instruction execution core: register file, 2-entry
// fetch queue, and the fetch/decode/execute step function. It holds only
// the narrow cpuBus collaborator interface, not a full machine reference,
// so it can be driven and tested against a fake bus.
//
// Grounded on gopsx/emulator/cpu.go's Cpu struct (Regs + Bus + step
// function driving a MIPS five-stage pipeline); this reworks that into
// the ARM7TDMI's 2-entry prefetch model and adds mode-aware IRQ entry,
// which the PSX's MIPS core has no equivalent of.
type Cpu struct {
	Regs     *Registers
	Pipeline *Pipeline
	Bus      cpuBus
	Irq      *Interrupts
	Halt     *HaltLine

	carry bool // not read or written; logical ops take the shifter carry-out from operand2's return value
}

func NewCpu(regs *Registers, bus cpuBus, irq *Interrupts, halt *HaltLine) *Cpu {
	return &Cpu{
		Regs:     regs,
		Pipeline: &Pipeline{},
		Bus:      bus,
		Irq:      irq,
		Halt:     halt,
	}
}

// instrSize is 4 in ARM state, 2 in THUMB state.
func (c *Cpu) instrSize() uint32 {
	if c.Regs.Cpsr.Thumb() {
		return 2
	}
	return 4
}

// fetch reads the next instruction word at R15 and pushes it onto the
// prefetch queue, then advances R15 by one instruction slot. Because R15
// always holds the address of the next not-yet-fetched instruction, it
// reads as execute_address+8 in ARM state and execute_address+4 in THUMB
// state from inside an executing instruction, matching the real
// processor's pipeline-visible PC.
func (c *Cpu) fetch() {
	pc := c.Regs.R[15]
	if c.Regs.Cpsr.Thumb() {
		c.Pipeline.Push(uint32(c.Bus.ReadHalf(pc)))
		c.Regs.R[15] = pc + 2
	} else {
		c.Pipeline.Push(c.Bus.ReadWord(pc))
		c.Regs.R[15] = pc + 4
	}
}

// flushTo redirects the instruction stream to addr: the low alignment
// bits are forced to match the current instruction set, the pipeline is
// discarded, and R15 is set so the next two fetch() calls reprime it.
// Every write to R15 by an executed instruction must go through here.
func (c *Cpu) flushTo(addr uint32) {
	if c.Regs.Cpsr.Thumb() {
		addr &^= 1
	} else {
		addr &^= 3
	}
	c.Regs.R[15] = addr
	c.Pipeline.Flush()
}

// Step advances the CPU by one instruction slot: services a pending IRQ,
// wakes from halt, primes the pipeline, or executes the instruction at
// the front of the queue.
func (c *Cpu) Step() {
	if c.Halt.Halted {
		if c.Irq.Pending() {
			c.Halt.Halted = false
		} else {
			return
		}
	}

	if c.Irq.Asserted() {
		c.enterIRQ()
		return
	}

	if c.Pipeline.Len() < 2 {
		c.fetch()
		return
	}

	instr := c.Pipeline.Pop()

	if c.Regs.Cpsr.Thumb() {
		c.executeThumb(uint16(instr))
	} else {
		if ConditionPasses(instr>>28, c.Regs.Cpsr.NZCV()) {
			c.executeArm(instr)
		}
	}

	c.fetch()
}

// enterIRQ implements IRQ exception entry: the return address (the
// address of the instruction that would otherwise execute next, plus 4)
// is saved to LR_irq, CPSR is saved to SPSR_irq, mode switches to IRQ
// with IRQ disabled and ARM state forced, and execution resumes at the
// IRQ vector.
func (c *Cpu) enterIRQ() {
	nextInstrAddr := c.Regs.R[15] - 2*c.instrSize()
	returnAddr := nextInstrAddr + 4

	oldCpsr := c.Regs.Cpsr
	c.Regs.SwitchMode(ModeIRQ)
	c.Regs.SetSpsr(oldCpsr)
	c.Regs.Set(14, returnAddr)
	c.Regs.Cpsr.SetThumb(false)
	c.Regs.Cpsr.SetIrqDisable(true)

	c.flushTo(0x00000018)
}

// returnFromException implements the common SUBS PC, LR, #n exception
// return idiom: CPSR is restored from SPSR and PC is set from LR-n, with
// the pipeline flushed to match whatever instruction set SPSR restores.
func (c *Cpu) returnFromException(lr uint32, adjust uint32) {
	restored := c.Regs.Spsr()
	c.Regs.SwitchMode(restored.Mode())
	c.Regs.Cpsr = restored
	c.flushTo(lr - adjust)
}
