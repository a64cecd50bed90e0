package core

// Pipeline models the ARM7TDMI's three-stage fetch/decode/execute
// pipeline as a 2-entry FIFO of prefetched instruction words.
// R15 always reads 8 bytes ahead of the executing instruction in ARM
// state, 4 ahead in THUMB state, because it points at the not-yet-fetched
// third instruction.
//
// Grounded on gopsx/emulator/cache.go's ICacheLine (a small fixed-size
// instruction buffer with an explicit invalidate operation); this is a
// true FIFO queue rather than a tagged cache line since the pipeline must
// hold always-exactly-2 prefetched entries rather than behave as a
// tag/valid-bit cache.
type Pipeline struct {
	entries [2]uint32
	count   int
}

func (p *Pipeline) Len() int { return p.count }

// Push enqueues a freshly fetched instruction word/halfword.
func (p *Pipeline) Push(val uint32) {
	if p.count >= 2 {
		panicFmt("pipeline: push on a full pipeline")
	}
	p.entries[p.count] = val
	p.count++
}

// Pop dequeues the front (oldest) entry, the one about to execute.
func (p *Pipeline) Pop() uint32 {
	if p.count == 0 {
		panicFmt("pipeline: pop on an empty pipeline")
	}
	v := p.entries[0]
	p.entries[0] = p.entries[1]
	p.count--
	return v
}

// Flush clears the pipeline. Called whenever R15 is written, since any
// write to R15 invalidates whatever was already prefetched.
func (p *Pipeline) Flush() {
	p.count = 0
}
