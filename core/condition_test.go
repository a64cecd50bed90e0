package core

import "testing"

func TestConditionEq(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	// EQ: Z set
	assert(ConditionPasses(0x0, 0x4))
	assert(!ConditionPasses(0x0, 0x0))
}

func TestConditionGeLtGtLe(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	// N==V, Z clear: GT true, LE false
	nzcv := uint32(0x0) // N=0 V=0 Z=0 C=0
	assert(ConditionPasses(0xc, nzcv))  // GT
	assert(!ConditionPasses(0xd, nzcv)) // LE
	assert(ConditionPasses(0xa, nzcv))  // GE
	assert(!ConditionPasses(0xb, nzcv)) // LT

	// N=1 V=0: N!=V
	nzcv = 0x8
	assert(ConditionPasses(0xb, nzcv))  // LT
	assert(!ConditionPasses(0xa, nzcv)) // GE
}

func TestConditionAlwaysAndReserved(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	for nzcv := uint32(0); nzcv < 16; nzcv++ {
		assert(ConditionPasses(0xe, nzcv))
		assert(!ConditionPasses(0xf, nzcv))
	}
}

func TestConditionHiLs(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	// C set, Z clear: HI true
	assert(ConditionPasses(0x8, 0x2))
	// C set, Z set: HI false (LS true)
	assert(!ConditionPasses(0x8, 0x6))
	assert(ConditionPasses(0x9, 0x6))
}
