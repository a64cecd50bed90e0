package core

// conditionTable is a 16-entry lookup, one 16-bit mask per condition code,
// with bit i of the mask set when that condition passes under NZCV nibble
// i, built once so evaluation is a table lookup instead of a chain of
// if/else on individual flags. Condition 0b1111 (NV) is reserved and
// never taken.
//
// Grounded on gopsx/emulator/cpu.go's per-opcode branch-condition switch,
// generalized from a handful of MIPS branch comparisons into the full
// 16-way ARM condition set via a precomputed table instead of a runtime
// switch.
var conditionTable [16]uint16

func init() {
	for nzcv := 0; nzcv < 16; nzcv++ {
		n := nzcv&0x8 != 0
		z := nzcv&0x4 != 0
		c := nzcv&0x2 != 0
		v := nzcv&0x1 != 0

		set := func(cond int, pass bool) {
			if pass {
				conditionTable[cond] |= 1 << uint(nzcv)
			}
		}

		set(0x0, z)            // EQ
		set(0x1, !z)           // NE
		set(0x2, c)            // CS/HS
		set(0x3, !c)           // CC/LO
		set(0x4, n)            // MI
		set(0x5, !n)           // PL
		set(0x6, v)            // VS
		set(0x7, !v)           // VC
		set(0x8, c && !z)      // HI
		set(0x9, !c || z)      // LS
		set(0xa, n == v)       // GE
		set(0xb, n != v)       // LT
		set(0xc, !z && n == v) // GT
		set(0xd, z || n != v)  // LE
		set(0xe, true)         // AL
		set(0xf, false)        // reserved
	}
}

// ConditionPasses reports whether the 4-bit condition code cond is
// satisfied by the given NZCV nibble packing).
func ConditionPasses(cond uint32, nzcv uint32) bool {
	return conditionTable[cond&0xf]&(1<<(nzcv&0xf)) != 0
}
