package core

// FifoTarget identifies which sound FIFO a Special-timing trigger drains
// into.
type FifoTarget int

const (
	Fifo0 FifoTarget = 0
	Fifo1 FifoTarget = 1
)

// Dma is the four-channel DMA engine.
//
// Grounded on gopsx/emulator/dma.go's Dma (IRQ enable/flag bookkeeping)
// and channel.go's per-channel Control()/SetControl(); the PSX has 7
// fixed-purpose ports with one shared IRQ register, while the GBA has 4
// general-purpose channels each with its own enable/IRQ/start-timing bits
// in its own CNT_H, so the shared IrqEn/ChannelIrqFlags split of the
// teacher collapses into per-channel state here.
type Dma struct {
	channels [4]*DmaChannel
	bus      dmaBus
	irq      *Interrupts
	sched    *Scheduler
}

func NewDma(bus dmaBus, irq *Interrupts, sched *Scheduler) *Dma {
	d := &Dma{bus: bus, irq: irq, sched: sched}
	for i := range d.channels {
		d.channels[i] = newDmaChannel(i)
	}
	return d
}

func (d *Dma) Channel(i int) *DmaChannel { return d.channels[i] }

// WriteSad/WriteDad/WriteLength/WriteControl are the MMIO entry points a
// register-width-aware caller (mmio.go) uses for the 0xB0+12*ch block.

func (d *Dma) WriteSad(ch int, val uint32)    { d.channels[ch].SetSad(val) }
func (d *Dma) WriteDad(ch int, val uint32)    { d.channels[ch].SetDad(val) }
func (d *Dma) WriteLength(ch int, val uint32) { d.channels[ch].SetLength(val) }

// WriteControl writes CNT_H, latching SAD/DAD into the internal
// source/destination registers on the enable 0->1 edge and triggering an
// Immediate-timing transfer right away.
func (d *Dma) WriteControl(chIdx int, val uint32) {
	ch := d.channels[chIdx]
	wasEnabled := ch.enable
	ch.setControlFields(val)
	ch.enable = boolBit(val, 15)

	if !wasEnabled && ch.enable {
		ch.internalSrc = ch.srcAddr
		ch.internalDst = ch.dstAddr
		if ch.startTiming == START_IMMEDIATE {
			d.run(ch)
		}
	}
}

// TriggerHBlank runs every enabled channel armed for HBlank timing.
func (d *Dma) TriggerHBlank() {
	for _, ch := range d.channels {
		if ch.enable && ch.startTiming == START_HBLANK {
			d.run(ch)
		}
	}
}

// TriggerVBlank runs every enabled channel armed for VBlank timing.
func (d *Dma) TriggerVBlank() {
	for _, ch := range d.channels {
		if ch.enable && ch.startTiming == START_VBLANK {
			d.run(ch)
		}
	}
}

// TriggerFifo runs the channel feeding the given sound FIFO
// (channel fifoIdx+1) if it is enabled and armed for Special timing.
func (d *Dma) TriggerFifo(target FifoTarget) {
	chIdx := int(target) + 1
	ch := d.channels[chIdx]
	if ch.enable && ch.startTiming == START_SPECIAL {
		d.run(ch)
	}
}

// run executes the transfer-trigger procedure: copy length units from src
// to dst honoring each address control mode, then handle repeat/disable.
func (d *Dma) run(ch *DmaChannel) {
	wordSize := ch.transfer.size()
	length := ch.Length()
	dstControl := ch.dstControl

	// Step 3: Special timing on the sound FIFO channels (1 and 2) forces
	// a fixed 4-word, word-sized, fixed-destination transfer regardless
	// of the programmed length/type/destination control.
	if ch.startTiming == START_SPECIAL && (ch.index == 1 || ch.index == 2) {
		length = 4
		wordSize = 4
		dstControl = ADDR_FIXED
	}

	deltaSrc := ch.srcControl.delta(wordSize)
	deltaDst := dstControl.delta(wordSize)

	for i := uint32(0); i < length; i++ {
		if wordSize == 4 {
			d.bus.WriteWord(ch.internalDst, d.bus.ReadWord(ch.internalSrc))
		} else {
			d.bus.WriteHalf(ch.internalDst, d.bus.ReadHalf(ch.internalSrc))
		}
		ch.internalSrc = uint32(int64(ch.internalSrc) + int64(deltaSrc))
		ch.internalDst = uint32(int64(ch.internalDst) + int64(deltaDst))
	}

	d.sched.Tick(uint64(length) * 2)

	if dstControl == ADDR_INCREMENT_RELOAD {
		ch.internalDst = ch.dstAddr
	}

	if ch.repeat && ch.startTiming != START_IMMEDIATE {
		// stays enabled, awaiting the next trigger
	} else {
		ch.enable = false
	}

	if ch.irqOnEnd {
		d.irq.Raise(Interrupt(int(INT_DMA0) + ch.index))
	}
}
