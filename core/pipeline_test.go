package core

import "testing"

func TestPipelinePushPopOrder(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	p := &Pipeline{}
	assert(p.Len() == 0)
	p.Push(0x11)
	p.Push(0x22)
	assert(p.Len() == 2)
	assert(p.Pop() == 0x11)
	assert(p.Len() == 1)
	assert(p.Pop() == 0x22)
	assert(p.Len() == 0)
}

func TestPipelinePushOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overflow")
		}
	}()
	p := &Pipeline{}
	p.Push(1)
	p.Push(2)
	p.Push(3)
}

func TestPipelinePopUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on underflow")
		}
	}()
	p := &Pipeline{}
	p.Pop()
}

func TestPipelineFlush(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	p := &Pipeline{}
	p.Push(1)
	p.Push(2)
	p.Flush()
	assert(p.Len() == 0)
}
