package core

import "container/heap"

// EventCallback is invoked when a scheduled event's due cycle has been
// reached. It may schedule further events on the same Scheduler.
type EventCallback func()

// event is one entry of the scheduler's priority queue: a callback due at a
// given cycle, ordered by due cycle and, on ties, by insertion order (FIFO).
//
// This generalizes the per-peripheral lazy-sync bookkeeping of
// gopsx/emulator/time.go's TimeHandler/TimeSheet into an explicit callback
// queue, since an arbitrary mix of PPU line, timer overflow, and DMA
// trigger events needs scheduling rather than a fixed, enumerable set of
// peripherals.
type event struct {
	due      uint64
	seq      uint64
	callback EventCallback
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) {
	*q = append(*q, x.(*event))
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Scheduler orders future events by a monotonic cycle counter. The CPU
// advances it by each instruction's cycle cost; due events fire
// synchronously, in (due_cycle, insertion_order) order, in the calling
// goroutine.
type Scheduler struct {
	Cycles uint64
	queue  eventQueue
	nextSeq uint64
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.queue)
	return s
}

// Schedule inserts an event at Cycles+cyclesFromNow.
func (s *Scheduler) Schedule(cyclesFromNow uint64, callback EventCallback) {
	e := &event{
		due:      s.Cycles + cyclesFromNow,
		seq:      s.nextSeq,
		callback: callback,
	}
	s.nextSeq++
	heap.Push(&s.queue, e)
}

// Tick advances the current cycle by n and fires every event whose due
// cycle has been reached, in order. While a callback runs, Cycles reads as
// that event's due cycle, so an event it schedules is placed relative to
// the event itself; such an event fires in the same Tick call if its due
// cycle is within the advanced range. Cycles a callback adds through a
// nested Tick carry over into the final count.
func (s *Scheduler) Tick(n uint64) {
	s.Cycles += n
	for len(s.queue) > 0 && s.queue[0].due <= s.Cycles {
		e := heap.Pop(&s.queue).(*event)
		end := s.Cycles
		s.Cycles = e.due
		e.callback()
		s.Cycles = end + (s.Cycles - e.due)
	}
}

// NextDue returns the due cycle of the earliest pending event and whether
// one exists. Used to fast-forward while the CPU is halted.
func (s *Scheduler) NextDue() (uint64, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}
