package core

const (
	cyclesPerLine = 1232
	hblankStart   = 960
	visibleLines  = 160
	totalLines    = 228
	FrameWidth    = 240
	FrameHeight   = 160
)

// Frame is the 240x160 BGR555 pixel buffer the PPU stub exposes to a
// FrameSink collaborator. This core never writes real pixel data into
// it: pixel composition is out of scope, so Frame stays whatever the
// caller last set it to.
type Frame [FrameWidth * FrameHeight]uint16

// Ppu is a register-and-timing stub: it owns DISPCNT/DISPSTAT/VCOUNT and
// drives the scheduler-timed HBlank/VBlank transitions that DMA and the
// interrupt controller react to, without implementing scanline
// rendering.
//
// Grounded on gopsx/emulator/timer.go's scheduler-driven Sync(th,
// irqState) shape: like a PSX timer synchronized to the GPU's dot clock,
// the PPU stub here is itself the scheduler-driven clock source other
// components (DMA, timers selecting the GPU dot clock) key off of.
type Ppu struct {
	dispcnt  uint16
	dispstat uint16
	vcount   uint16

	frame Frame

	sched *Scheduler
	irq   *Interrupts
	dma   *Dma
}

func NewPpu(sched *Scheduler, irq *Interrupts, dma *Dma) *Ppu {
	p := &Ppu{sched: sched, irq: irq, dma: dma}
	p.sched.Schedule(hblankStart, p.onHBlankStart)
	return p
}

func (p *Ppu) Frame() *Frame { return &p.frame }

func (p *Ppu) DispCnt() uint16     { return p.dispcnt }
func (p *Ppu) SetDispCnt(v uint16) { p.dispcnt = v }

func (p *Ppu) VCount() uint16 { return p.vcount }

// DispStat returns DISPSTAT: bit 0 VBlank flag, bit 1 HBlank flag, bit 2
// VCount-match flag, bits 3-5 IRQ enables, bits 8-15 the VCount compare
// target.
func (p *Ppu) DispStat() uint16 {
	return p.dispstat
}

func (p *Ppu) SetDispStat(v uint16) {
	// bits 0-2 are read-only status flags; only the IRQ enables and the
	// VCount compare target (bits 3-15) are writable.
	p.dispstat = (p.dispstat & 0x0007) | (v &^ 0x0007)
}

func (p *Ppu) vcountTarget() uint16 {
	return p.dispstat >> 8
}

// onHBlankStart fires at cycle 960 of the current line: it
// sets the HBlank flag, raises INT_HBLANK if enabled, triggers
// HBlank-timed DMA, and schedules the matching line-end event.
func (p *Ppu) onHBlankStart() {
	p.dispstat |= 1 << 1
	if p.dispstat&(1<<4) != 0 {
		p.irq.Raise(INT_HBLANK)
	}
	p.dma.TriggerHBlank()

	p.sched.Schedule(cyclesPerLine-hblankStart, p.onLineEnd)
}

// onLineEnd fires at the end of the current line: it clears HBlank,
// advances VCOUNT (wrapping at totalLines), sets/clears VBlank at lines
// 160/0, evaluates the VCount-match flag, and schedules the next line's
// HBlank event.
func (p *Ppu) onLineEnd() {
	p.dispstat &^= 1 << 1

	p.vcount++
	if int(p.vcount) >= totalLines {
		p.vcount = 0
	}

	switch p.vcount {
	case visibleLines:
		p.dispstat |= 1
		if p.dispstat&(1<<3) != 0 {
			p.irq.Raise(INT_VBLANK)
		}
		p.dma.TriggerVBlank()
	case 0:
		p.dispstat &^= 1
	}

	if p.vcount == p.vcountTarget() {
		p.dispstat |= 1 << 2
		if p.dispstat&(1<<5) != 0 {
			p.irq.Raise(INT_VCOUNT)
		}
	} else {
		p.dispstat &^= 1 << 2
	}

	p.sched.Schedule(hblankStart, p.onHBlankStart)
}
