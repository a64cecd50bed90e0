package core

import "testing"

func newTestBus() *Bus {
	cart := &Cartridge{Rom: make([]byte, minRomSize), Sram: make([]byte, defaultSramSize)}
	return NewBus(&Bios{Data: make([]byte, BiosSize)}, cart, nil)
}

func TestBusIwramRoundTrip(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	b := newTestBus()
	b.WriteWord(0x03000100, 0xdeadbeef)
	assert(b.ReadWord(0x03000100) == 0xdeadbeef)

	b.WriteByte(0x03000200, 0x7f)
	assert(b.ReadByte(0x03000200) == 0x7f)
}

func TestBusIwramMirrors(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	b := newTestBus()
	b.WriteWord(0x03000000, 0x11223344)
	assert(b.ReadWord(0x03008000) == 0x11223344)
}

func TestReadHalfRotateOnOddAddress(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	b := newTestBus()
	b.WriteHalf(0x03000100, 0x1234)
	assert(b.ReadHalfRotate(0x03000100) == 0x1234)
	assert(b.ReadHalfRotate(0x03000101) == 0x3412)
}

func TestReadHalfSignedOnOddAddress(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	b := newTestBus()
	b.WriteHalf(0x03000100, 0xff80)
	// odd address: only the high byte (0xff) is read and sign-extended.
	assert(b.ReadHalfSigned(0x03000101) == 0xffffffff)
	// even address: the full halfword sign-extends from bit 15.
	assert(b.ReadHalfSigned(0x03000100) == 0xffffff80)
}

func TestReadWordMisalignedRotates(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	b := newTestBus()
	b.WriteWord(0x03000100, 0x12345678)
	assert(b.ReadWord(0x03000101) == ror32(0x12345678, 8))
}
