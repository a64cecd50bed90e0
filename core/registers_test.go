package core

import "testing"

func TestModeSwitchBanksR13R14(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	r := NewRegisters()
	r.SwitchMode(ModeSYS)
	r.Set(13, 0xaaaaaaaa)
	r.Set(14, 0xbbbbbbbb)

	r.SwitchMode(ModeIRQ)
	assert(r.Get(13) != 0xaaaaaaaa)
	r.Set(13, 0xcccccccc)

	r.SwitchMode(ModeSYS)
	assert(r.Get(13) == 0xaaaaaaaa)
	assert(r.Get(14) == 0xbbbbbbbb)

	r.SwitchMode(ModeIRQ)
	assert(r.Get(13) == 0xcccccccc)
}

func TestModeSwitchBanksFiqR8to12(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	r := NewRegisters()
	r.SwitchMode(ModeSYS)
	r.Set(8, 0x1111)

	r.SwitchMode(ModeFIQ)
	assert(r.Get(8) != 0x1111)
	r.Set(8, 0x2222)

	r.SwitchMode(ModeSYS)
	assert(r.Get(8) == 0x1111)

	r.SwitchMode(ModeFIQ)
	assert(r.Get(8) == 0x2222)
}

func TestSpsrUndefinedInUsrSys(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	r := NewRegisters()
	r.SwitchMode(ModeUSR)
	r.SetSpsr(0xdeadbeef)
	assert(r.Spsr() == 0)
}

func TestSpsrRoundTripsThroughModeSwitch(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	r := NewRegisters()
	r.SwitchMode(ModeSVC)
	r.SetSpsr(0x12345678)
	r.SwitchMode(ModeIRQ)
	r.SetSpsr(0x87654321)

	r.SwitchMode(ModeSVC)
	assert(r.Spsr() == 0x12345678)
	r.SwitchMode(ModeIRQ)
	assert(r.Spsr() == 0x87654321)
}

func TestInvalidCpsrModeClampsToSys(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	var p Psr
	p.SetMode(Mode(0x00))
	assert(p.Mode() == ModeSYS)
}
