package core

// Stack is a strict LIFO sequence of Packets.  There is no random
// access and no search below the top.
type Stack struct {
	packets []Packet
}

// NewStack makes an empty Stack.
func NewStack() *Stack {
	return &Stack{
		packets: make([]Packet, 0, 8),
	}
}

// Push puts the packet on top.  Pushing an empty (or nil) packet is a
// no-op.
func (s *Stack) Push(p Packet) {
	if len(p) == 0 {
		return
	}
	s.packets = append(s.packets, p)
}

// Pop removes and returns the top packet, or nil if the Stack is
// empty.
func (s *Stack) Pop() Packet {
	if len(s.packets) == 0 {
		return nil
	}
	p := s.packets[len(s.packets)-1]
	s.packets = s.packets[:len(s.packets)-1]
	return p
}

// Peek returns the top packet without removing it, or nil if the
// Stack is empty.
func (s *Stack) Peek() Packet {
	if len(s.packets) == 0 {
		return nil
	}
	return s.packets[len(s.packets)-1]
}

// Empty reports whether the Stack has no packets.
func (s *Stack) Empty() bool {
	return len(s.packets) == 0
}

// Depth returns the number of stacked packets.  Just for diagnostics.
func (s *Stack) Depth() int {
	return len(s.packets)
}
