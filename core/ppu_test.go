package core

import "testing"

func TestPpuHblankAndVblankTiming(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	sched := NewScheduler()
	dma := NewDma(&fakeDmaBus{}, irq, sched)
	ppu := NewPpu(sched, irq, dma)

	sched.Tick(hblankStart - 1)
	assert(ppu.DispStat()&(1<<1) == 0)

	sched.Tick(1)
	assert(ppu.DispStat()&(1<<1) != 0) // HBlank flag set at cycle 960

	sched.Tick(cyclesPerLine - hblankStart)
	assert(ppu.DispStat()&(1<<1) == 0) // cleared at line end
	assert(ppu.VCount() == 1)
}

func TestPpuVblankAtLine160(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	sched := NewScheduler()
	dma := NewDma(&fakeDmaBus{}, irq, sched)
	ppu := NewPpu(sched, irq, dma)

	sched.Tick(uint64(cyclesPerLine) * 160)
	assert(ppu.VCount() == 160)
	assert(ppu.DispStat()&1 != 0)
}

func TestPpuVcountMatchRaisesIrq(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	sched := NewScheduler()
	dma := NewDma(&fakeDmaBus{}, irq, sched)
	ppu := NewPpu(sched, irq, dma)

	ppu.SetDispStat((5 << 8) | (1 << 5)) // vcount target 5, irq enable
	sched.Tick(uint64(cyclesPerLine) * 5)

	assert(ppu.VCount() == 5)
	assert(irq.IF&(1<<INT_VCOUNT) != 0)
}
