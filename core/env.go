package core

import (
	"github.com/rsklar/caspar/cd"
)

// ControlSlots are the fixed slots that every Env declares on
// creation.  All other slots are ad-hoc: declared the first time a
// Request assigns to a previously-unseen name, and shared across the
// whole parse.
var ControlSlots = []string{
	"currentWord",
	"partOfSpeech",
	"cdForm",
	"subject",
	"predicates",
	"concept",
	"remainingWords",
}

// Env is the variable environment for one parse: a mapping from slot
// name to a cd.Form.
//
// An Env is exclusively owned by one in-progress parse.  Nothing here
// is safe for concurrent use, and nothing needs to be.
type Env struct {
	slots map[string]cd.Form
}

// NewEnv makes a fresh Env with all ControlSlots declared (and
// empty).
func NewEnv() *Env {
	env := &Env{
		slots: make(map[string]cd.Form, 2*len(ControlSlots)),
	}
	for _, slot := range ControlSlots {
		env.slots[slot] = nil
	}
	return env
}

// Get returns the slot's value and whether the slot has been
// declared.  A declared slot can still hold nothing.
func (env *Env) Get(slot string) (cd.Form, bool) {
	v, have := env.slots[slot]
	return v, have
}

// Set writes the slot, declaring it if new.
func (env *Env) Set(slot string, v cd.Form) {
	env.slots[slot] = v
}

// Declared reports whether the slot has ever been declared.
func (env *Env) Declared(slot string) bool {
	_, have := env.slots[slot]
	return have
}

// Resolve implements cd.Binding.  An undeclared or empty slot reports
// false, which the instantiator treats as an absent filler.
func (env *Env) Resolve(name string) (cd.Form, bool) {
	v, have := env.slots[name]
	if !have || v == nil {
		return nil, false
	}
	return v, true
}

// Eval evaluates the expression against the Env's current state.
// Evaluation is pure: the only writes to an Env happen through Set.
func (env *Env) Eval(e Expr) (cd.Form, error) {
	if e == nil {
		return nil, nil
	}
	return e.Eval(env)
}
