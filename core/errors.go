package core

// These errors are user (lexicon) errors, not internal errors.  All
// of them abort the current parse only; independent parses never
// share an Env or a Stack, so nothing here can corrupt a later parse.

import (
	"errors"
	"strconv"
)

// UnboundSlot occurs when an expression reads a never-declared slot.
//
// Fatal for the current parse: a read of an undeclared name signals a
// defect in the lexicon, not a recoverable condition.
type UnboundSlot struct {
	Slot string
}

func (e *UnboundSlot) Error() string {
	return `slot "` + e.Slot + `" was never declared`
}

// MalformedRequest occurs when lexicon data for a word lacks every
// recognized clause kind or otherwise fails the expected shape.
// Fatal at load time for that word.
type MalformedRequest struct {
	// Word is the lexicon entry being compiled.
	Word string

	// Index is the position of the bad request within the word's
	// packet.
	Index int

	// Reason says what was wrong.
	Reason string
}

func (e *MalformedRequest) Error() string {
	return `malformed request ` + strconv.Itoa(e.Index) +
		` for word "` + e.Word + `": ` + e.Reason
}

// Limited occurs when a single parse fires more requests than its
// Control allows.  A well-formed lexicon never gets near the limit;
// hitting it means a packet keeps retriggering.
var Limited = errors.New("cascade limit exceeded")
