package core

// bank indexes the shared R13/R14 (and SPSR) storage for each mode that
// has its own bank. USR and SYS share bank 0.
type bank int

const (
	bankUSR bank = iota
	bankFIQ
	bankIRQ
	bankSVC
	bankABT
	bankUND
	numBanks
)

func bankOf(m Mode) bank {
	switch m {
	case ModeFIQ:
		return bankFIQ
	case ModeIRQ:
		return bankIRQ
	case ModeSVC:
		return bankSVC
	case ModeABT:
		return bankABT
	case ModeUND:
		return bankUND
	default: // ModeUSR, ModeSYS
		return bankUSR
	}
}

func hasSpsr(m Mode) bool {
	return m != ModeUSR && m != ModeSYS
}

// Registers is the ARM7TDMI's active register file plus the banked
// shadow copies the architecture requires: R13/R14 banked per privileged
// mode, R8-R12 additionally banked for FIQ, one SPSR per privileged mode.
//
// Grounded on gopsx/emulator/cpu.go's flat Regs[32] array and R0-pinning
// SetReg; generalized here with the register banking a mode switch
// requires, since the PSX's MIPS core gopsx models has no register
// banks at all.
type Registers struct {
	R    [16]uint32
	Cpsr Psr

	bankR13R14 [numBanks][2]uint32
	bankSpsr   [numBanks]Psr

	fiqR8_12    [5]uint32
	nonFiqR8_12 [5]uint32
}

// NewRegisters returns the power-on register state: SYS mode, ARM state,
// R13 banks preloaded per the BIOS's stack setup, PC at the cartridge
// entry point.
func NewRegisters() *Registers {
	r := &Registers{}
	r.Cpsr.SetMode(ModeSYS)
	r.bankR13R14[bankUSR][0] = 0x03007f00
	r.bankR13R14[bankIRQ][0] = 0x03007fa0
	r.bankR13R14[bankSVC][0] = 0x03007fe0
	r.R[13] = r.bankR13R14[bankUSR][0]
	r.R[15] = 0x08000000
	return r
}

func (r *Registers) Get(i uint32) uint32 { return r.R[i] }

// Set writes register i. Writing R15 is handled by the caller (it must
// flush the pipeline); Set itself just stores the
// value, matching gopsx/emulator/cpu.go's SetReg which likewise leaves
// special-casing of index 0 to the caller's architecture (there, pinning
// R0 to zero; here, nothing is pinned since ARM has no such register).
func (r *Registers) Set(i uint32, val uint32) { r.R[i] = val }

// Spsr returns the SPSR for the current mode. Undefined (returns 0) for
// USR/SYS.
func (r *Registers) Spsr() Psr {
	if !hasSpsr(r.Cpsr.Mode()) {
		return 0
	}
	return r.bankSpsr[bankOf(r.Cpsr.Mode())]
}

func (r *Registers) SetSpsr(val Psr) {
	if !hasSpsr(r.Cpsr.Mode()) {
		return
	}
	r.bankSpsr[bankOf(r.Cpsr.Mode())] = val
}

// SwitchMode saves the outgoing mode's banked registers, switches to the
// new mode, and loads its banked registers in.
func (r *Registers) SwitchMode(newMode Mode) {
	old := r.Cpsr.Mode()
	if old == newMode {
		return
	}

	// Step 1: FIQ has its own R8-R12 bank.
	if old == ModeFIQ && newMode != ModeFIQ {
		copy(r.fiqR8_12[:], r.R[8:13])
		copy(r.R[8:13], r.nonFiqR8_12[:])
	} else if old != ModeFIQ && newMode == ModeFIQ {
		copy(r.nonFiqR8_12[:], r.R[8:13])
		copy(r.R[8:13], r.fiqR8_12[:])
	}

	// Step 2: save current R13/R14 and SPSR into old's bank.
	r.bankR13R14[bankOf(old)][0] = r.R[13]
	r.bankR13R14[bankOf(old)][1] = r.R[14]
	if hasSpsr(old) {
		r.bankSpsr[bankOf(old)] = r.Spsr()
	}

	// Step 3: load R13/R14 and SPSR from new's bank.
	r.R[13] = r.bankR13R14[bankOf(newMode)][0]
	r.R[14] = r.bankR13R14[bankOf(newMode)][1]

	// Step 4.
	r.Cpsr.SetMode(newMode)
}
