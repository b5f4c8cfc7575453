package core

import (
	"testing"
)

func TestStackLIFO(t *testing.T) {
	s := NewStack()
	if !s.Empty() {
		t.Fatal("new stack should be empty")
	}

	p1 := Packet{{Doc: "one"}}
	p2 := Packet{{Doc: "two"}}
	s.Push(p1)
	s.Push(p2)

	if s.Depth() != 2 {
		t.Fatalf("depth == %d", s.Depth())
	}
	if top := s.Peek(); top[0].Doc != "two" {
		t.Fatalf("peeked %s", top[0].Doc)
	}
	if got := s.Pop(); got[0].Doc != "two" {
		t.Fatalf("popped %s", got[0].Doc)
	}
	if got := s.Pop(); got[0].Doc != "one" {
		t.Fatalf("popped %s", got[0].Doc)
	}
	if !s.Empty() {
		t.Fatal("stack should be empty")
	}
	if s.Pop() != nil || s.Peek() != nil {
		t.Fatal("an empty stack should pop and peek nil")
	}
}

func TestStackPushEmpty(t *testing.T) {
	s := NewStack()
	s.Push(nil)
	s.Push(Packet{})
	if !s.Empty() {
		t.Fatal("empty packets shouldn't be pushed")
	}
}
