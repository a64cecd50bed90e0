package core

// Mode is the 5-bit CPSR mode field.
type Mode uint32

const (
	ModeUSR Mode = 0x10
	ModeFIQ Mode = 0x11
	ModeIRQ Mode = 0x12
	ModeSVC Mode = 0x13
	ModeABT Mode = 0x17
	ModeUND Mode = 0x1b
	ModeSYS Mode = 0x1f
)

// validMode reports whether m is one of the seven architectural modes.
func validMode(m Mode) bool {
	switch m {
	case ModeUSR, ModeFIQ, ModeIRQ, ModeSVC, ModeABT, ModeUND, ModeSYS:
		return true
	default:
		return false
	}
}

// Psr is a packed 32-bit CPSR/SPSR value with explicit accessors for every
// field, defined abstractly via getter/setter methods rather than relying
// on in-memory bit layout matching a C struct bitfield.
//
// Grounded on gopsx/emulator/status.go's StatusRegister, which wraps a
// uint32 in the same way for the PSX's SR/Cause registers; this adds the
// N/Z/C/V/I/F/T/mode field set the ARM architecture actually defines.
type Psr uint32

const (
	psrN    = 31
	psrZ    = 30
	psrC    = 29
	psrV    = 28
	psrI    = 7
	psrF    = 6
	psrT    = 5
	modeMask = 0x1f
)

func (p Psr) N() bool { return boolBit(uint32(p), psrN) }
func (p Psr) Z() bool { return boolBit(uint32(p), psrZ) }
func (p Psr) C() bool { return boolBit(uint32(p), psrC) }
func (p Psr) V() bool { return boolBit(uint32(p), psrV) }
func (p Psr) IrqDisable() bool  { return boolBit(uint32(p), psrI) }
func (p Psr) FiqDisable() bool  { return boolBit(uint32(p), psrF) }
func (p Psr) Thumb() bool       { return boolBit(uint32(p), psrT) }
func (p Psr) Mode() Mode        { return Mode(uint32(p) & modeMask) }

func setBit(p *Psr, bit uint, val bool) {
	if val {
		*p |= 1 << bit
	} else {
		*p &^= 1 << bit
	}
}

func (p *Psr) SetN(v bool) { setBit(p, psrN, v) }
func (p *Psr) SetZ(v bool) { setBit(p, psrZ, v) }
func (p *Psr) SetC(v bool) { setBit(p, psrC, v) }
func (p *Psr) SetV(v bool) { setBit(p, psrV, v) }
func (p *Psr) SetIrqDisable(v bool) { setBit(p, psrI, v) }
func (p *Psr) SetFiqDisable(v bool) { setBit(p, psrF, v) }
func (p *Psr) SetThumb(v bool)      { setBit(p, psrT, v) }

// SetNZ sets N and Z from a result value, the common "flags follow the
// result" case.
func (p *Psr) SetNZ(result uint32) {
	p.SetN(result&0x80000000 != 0)
	p.SetZ(result == 0)
}

// SetMode forces the mode field to new, or to ModeSYS if new is not one of
// the seven architectural modes. Invalid mode bits written to CPSR never
// panic.
func (p *Psr) SetMode(new Mode) {
	if !validMode(new) {
		new = ModeSYS
	}
	*p = Psr(uint32(*p)&^modeMask) | Psr(uint32(new))
}

// NZCV packs the four condition flags into the top nibble, matching the
// condition LUT's index convention.
func (p Psr) NZCV() uint32 {
	return (uint32(p) >> 28) & 0xf
}
