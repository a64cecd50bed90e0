package core

import (
	"io"
	"log"
)

// Machine wires every component together into a runnable system: the
// scheduler drives PPU and timer timing, the bus dispatches memory
// traffic, and Cpu executes instructions against it.
//
// Grounded on gopsx/emulator/cpu.go's top-level construction pattern
// (one struct owning Bus, Cpu, and peripherals, built in dependency
// order); generalized here to the GBA's larger peripheral set and to the
// construct-then-wire Bus/Mmio cycle the two structs' mutual need for
// each other forces (Dma needs the bus; the bus needs Mmio, which needs Dma).
type Machine struct {
	Scheduler *Scheduler
	Bus       *Bus
	Irq       *Interrupts
	Dma       *Dma
	Timers    *Timers
	Keypad    *Keypad
	Ppu       *Ppu
	Mmio      *Mmio
	Cpu       *Cpu
	Debugger  *Debugger
	Halt      *HaltLine

	// Logger defaults to log.Default(). No component of the core writes to
	// it: unmapped I/O writes are dropped and a prohibited DMA source
	// control is clamped without any message.
	Logger *log.Logger

	// cyclesPerStep approximates the cost of one CPU step. Per-instruction
	// timing (distinct S/N-cycle costs per addressing mode and wait state)
	// is out of scope; every step charges a flat cost to the scheduler and
	// timers instead.
	cyclesPerStep uint64
}

// NewMachine constructs a fully wired Machine from a loaded BIOS and
// cartridge.
func NewMachine(bios *Bios, cart *Cartridge) *Machine {
	sched := NewScheduler()
	irq := NewInterrupts()
	halt := &HaltLine{}

	bus := NewBus(bios, cart, nil)
	dma := NewDma(bus, irq, sched)
	timers := NewTimers(irq, dma)
	keypad := NewKeypad()
	ppu := NewPpu(sched, irq, dma)
	mmio := NewMmio(irq, dma, timers, keypad, ppu, halt)
	bus.Mmio = mmio

	regs := NewRegisters()
	cpu := NewCpu(regs, bus, irq, halt)

	return &Machine{
		Scheduler:     sched,
		Bus:           bus,
		Irq:           irq,
		Dma:           dma,
		Timers:        timers,
		Keypad:        keypad,
		Ppu:           ppu,
		Mmio:          mmio,
		Cpu:           cpu,
		Debugger:      NewDebugger(),
		Halt:          halt,
		Logger:        log.Default(),
		cyclesPerStep: 1,
	}
}

// Step advances the whole machine by one CPU instruction slot and its
// associated scheduler/timer cycles.
func (m *Machine) Step() {
	m.Cpu.Step()
	m.Scheduler.Tick(m.cyclesPerStep)
	m.Timers.Advance(m.cyclesPerStep)
}

// RunUntil steps the machine until the scheduler's cycle counter reaches
// or passes targetCycle. A breakpoint at the about-to-execute instruction
// address stops early, leaving the machine paused at that instruction.
func (m *Machine) RunUntil(targetCycle uint64) {
	for m.Scheduler.Cycles < targetCycle {
		// R15 runs ahead of the queued instructions by one slot per entry.
		next := m.Cpu.Regs.Get(15) - uint32(m.Cpu.Pipeline.Len())*m.Cpu.instrSize()
		if m.Debugger.HasBreakpoint(next) {
			return
		}
		m.Step()
	}
}

// RaiseInterrupt sets the IF bit for source, as a peripheral or a host
// frontend (e.g. the keypad, a link cable stub) would.
func (m *Machine) RaiseInterrupt(source Interrupt) {
	m.Irq.Raise(source)
}

// LoadSRAM replaces the cartridge's persisted save data with the
// contents of r.
func (m *Machine) LoadSRAM(r io.Reader) error {
	return m.Bus.Cartridge.LoadSramImage(r)
}

// DumpSRAM returns a copy of the cartridge's current save data.
func (m *Machine) DumpSRAM() []byte {
	return m.Bus.Cartridge.DumpSram()
}
