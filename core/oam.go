package core

// OamSize is the size of OAM (object attribute memory): 128 sprite
// entries of 8 bytes each.
const OamSize = 1 * 1024

// Oam holds sprite attribute entries. Unlike palette RAM and VRAM, a
// byte-width write to OAM is a hardware no-op rather than a mirrored
// write.
type Oam struct {
	ram *RAM
}

func NewOam() *Oam {
	return &Oam{ram: NewRAM(OamSize, 0)}
}

func (o *Oam) Load8(addr uint32) byte    { return o.ram.Load8(addr) }
func (o *Oam) Load16(addr uint32) uint16 { return o.ram.Load16(addr) }
func (o *Oam) Load32(addr uint32) uint32 { return o.ram.Load32(addr) }

// Store8 is a no-op: OAM cannot be written at byte granularity.
func (o *Oam) Store8(addr uint32, val byte) {}

func (o *Oam) Store16(addr uint32, val uint16) { o.ram.Store16(addr, val) }
func (o *Oam) Store32(addr uint32, val uint32) { o.ram.Store32(addr, val) }
