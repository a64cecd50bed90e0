package core

import "testing"

func TestShiftLSL(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	val, carry := Shift(ShiftLSL, 0x1, 0, true, true)
	assert(val == 0x1 && carry)

	val, carry = Shift(ShiftLSL, 0x80000000, 1, false, false)
	assert(val == 0 && carry)

	val, carry = Shift(ShiftLSL, 1, 32, false, false)
	assert(val == 0 && carry)

	val, carry = Shift(ShiftLSL, 1, 33, false, false)
	assert(val == 0 && !carry)
}

func TestShiftLSRImmediateZeroIsLsr32(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	val, carry := Shift(ShiftLSR, 0x80000000, 0, false, true)
	assert(val == 0 && carry)

	val, carry = Shift(ShiftLSR, 0x1, 0, true, true)
	assert(val == 0 && !carry)
}

func TestShiftLSRRegisterZeroIsNoop(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	val, carry := Shift(ShiftLSR, 0x1234, 0, true, false)
	assert(val == 0x1234 && carry)
}

func TestShiftASRImmediateZeroIsAsr32(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	val, carry := Shift(ShiftASR, 0x80000000, 0, false, true)
	assert(val == 0xffffffff && carry)

	val, carry = Shift(ShiftASR, 0x7fffffff, 0, false, true)
	assert(val == 0 && !carry)
}

func TestShiftRorRrx(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	val, carry := Shift(ShiftROR, 0x2, 0, true, true)
	assert(val == 0x80000001 && !carry)

	val, carry = Shift(ShiftROR, 0x3, 0, false, true)
	assert(val == 0x1 && carry)
}

func TestShiftRorByMultipleOf32(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	val, carry := Shift(ShiftROR, 0x80000001, 32, false, false)
	assert(val == 0x80000001 && carry)

	val, carry = Shift(ShiftROR, 0x12345678, 4, false, false)
	assert(val == 0x81234567 && carry)
}
