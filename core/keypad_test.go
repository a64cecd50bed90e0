package core

import "testing"

func TestKeypadActiveLowState(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	k := NewKeypad()
	assert(k.KeyInput() == 0x3ff)

	k.SetButtonState(ButtonA, true)
	assert(k.KeyInput()&1 == 0)

	k.SetButtonState(ButtonA, false)
	assert(k.KeyInput()&1 != 0)
}

func TestKeypadIrqOrCondition(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	k := NewKeypad()
	k.SetKeyCnt((1 << 14) | 0x1) // irq enable, OR, select button A
	k.SetButtonState(ButtonA, true)
	k.Poll(irq)
	assert(irq.IF&(1<<INT_KEYPAD) != 0)
}

func TestKeypadIrqAndConditionRequiresAllSelected(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewInterrupts()
	k := NewKeypad()
	k.SetKeyCnt((1 << 14) | (1 << 15) | 0x3) // irq enable, AND, select A+B
	k.SetButtonState(ButtonA, true)
	k.Poll(irq)
	assert(irq.IF == 0)

	k.SetButtonState(ButtonB, true)
	k.Poll(irq)
	assert(irq.IF&(1<<INT_KEYPAD) != 0)
}
