package core

import "testing"

func TestSchedulerFiresInDueOrder(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	var order []int
	s := NewScheduler()
	s.Schedule(30, func() { order = append(order, 3) })
	s.Schedule(10, func() { order = append(order, 1) })
	s.Schedule(20, func() { order = append(order, 2) })

	s.Tick(30)
	assert(len(order) == 3)
	assert(order[0] == 1 && order[1] == 2 && order[2] == 3)
}

func TestSchedulerTiesBreakByInsertionOrder(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	var order []int
	s := NewScheduler()
	s.Schedule(10, func() { order = append(order, 1) })
	s.Schedule(10, func() { order = append(order, 2) })

	s.Tick(10)
	assert(order[0] == 1 && order[1] == 2)
}

func TestSchedulerCallbackCanScheduleMore(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	count := 0
	s := NewScheduler()
	var reschedule func()
	reschedule = func() {
		count++
		if count < 3 {
			s.Schedule(1, reschedule)
		}
	}
	s.Schedule(1, reschedule)
	s.Tick(5)
	assert(count == 3)
}

func TestSchedulerNextDue(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	s := NewScheduler()
	_, ok := s.NextDue()
	assert(!ok)

	s.Schedule(42, func() {})
	due, ok := s.NextDue()
	assert(ok && due == 42)
}
