package core

import "math/bits"

// execBlockDataTransfer implements LDM/STM: the register list (bits 15-0)
// is walked from R0 to R15 (ascending address order, spec's "Block Data
// Transfer" note), with the four P/U/S/W addressing-mode bits selecting
// the GBA's conventional stack push/pop forms among others.
func execBlockDataTransfer(c *Cpu, instr uint32) {
	rn := (instr >> 16) & 0xf
	pre := instr&(1<<24) != 0
	up := instr&(1<<23) != 0
	psrForce := instr&(1<<22) != 0
	writeback := instr&(1<<21) != 0
	load := instr&(1<<20) != 0
	regList := uint16(instr & 0xffff)

	count := bits.OnesCount16(regList)
	base := c.Regs.Get(rn)

	var start uint32
	if up {
		start = base
	} else {
		start = base - uint32(count)*4
	}
	if !up {
		pre = !pre
	}

	addr := start
	if pre {
		addr += 4
	}

	// When S is set, a store, or a load whose list does not include R15,
	// uses the user mode register bank instead of the current mode's bank.
	useUserBank := psrForce && (regList&(1<<15) == 0 || !load)
	origMode := c.Regs.Cpsr.Mode()
	if useUserBank && origMode != ModeUSR {
		c.Regs.SwitchMode(ModeUSR)
	}

	for i := 0; i < 16; i++ {
		if regList&(1<<uint(i)) == 0 {
			continue
		}
		if load {
			c.Regs.Set(uint32(i), c.Bus.ReadWord(addr))
		} else {
			c.Bus.WriteWord(addr, c.Regs.Get(uint32(i)))
		}
		addr += 4
	}

	if useUserBank && origMode != ModeUSR {
		c.Regs.SwitchMode(origMode)
	}

	if writeback {
		if up {
			c.Regs.Set(rn, base+uint32(count)*4)
		} else {
			c.Regs.Set(rn, base-uint32(count)*4)
		}
	}

	if load && regList&(1<<15) != 0 {
		if psrForce {
			if hasSpsr(c.Regs.Cpsr.Mode()) {
				restored := c.Regs.Spsr()
				c.Regs.SwitchMode(restored.Mode())
				c.Regs.Cpsr = restored
			}
		}
		c.flushTo(c.Regs.Get(15))
	}
}
