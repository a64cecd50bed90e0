package core

import "testing"

func TestTimerOverflowAndReload(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	sched := NewScheduler()
	dma := NewDma(&fakeDmaBus{}, irq, sched)
	ts := NewTimers(irq, dma)

	t0 := ts.Timer(0)
	t0.SetReload(0xfffe)
	t0.SetControl(1 << 7) // enable, prescaler /1

	ts.Advance(1)
	assert(t0.Counter() == 0xffff)

	ts.Advance(1)
	assert(t0.Counter() == 0xfffe) // overflowed and reloaded
	assert(irq.IF == 0)            // irqEnable not set
}

func TestTimerCascade(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	sched := NewScheduler()
	dma := NewDma(&fakeDmaBus{}, irq, sched)
	ts := NewTimers(irq, dma)

	t0 := ts.Timer(0)
	t0.SetReload(0xffff)
	t0.SetControl(1 << 7)

	t1 := ts.Timer(1)
	t1.SetReload(0)
	t1.SetControl((1 << 7) | (1 << 2)) // enable, cascade

	ts.Advance(1) // t0 overflows
	assert(t1.Counter() == 1)
}

func TestTimerIrqOnOverflow(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	sched := NewScheduler()
	dma := NewDma(&fakeDmaBus{}, irq, sched)
	ts := NewTimers(irq, dma)

	t0 := ts.Timer(0)
	t0.SetReload(0xffff)
	t0.SetControl((1 << 7) | (1 << 6)) // enable, irq enable

	ts.Advance(1)
	assert(irq.IF&(1<<INT_TIMER0) != 0)
}
