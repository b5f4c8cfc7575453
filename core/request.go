package core

// Assign is one (slot, expression) pair in a Request.  Assignments
// are applied strictly in order: each expression is evaluated against
// the Env state after all earlier assignments in the same Request.
type Assign struct {
	Slot string
	Expr Expr
}

// Request is a guarded action: an optional test, ordered assignments,
// and packets to enqueue when the Request fires.
//
// Requests are immutable data, sourced from a Lexicon or from the
// Next packets of previously fired Requests.  The engine never
// modifies one.
type Request struct {
	// Doc is an opaque documentation string.
	Doc string

	// Test guards the Request.  A nil Test always triggers.
	Test Expr

	// Assigns are applied, in order, when the Request fires.
	Assigns []Assign

	// Next holds the packets to push at the current word's
	// boundary if this Request fired.
	Next []Packet
}

// Triggered reports whether the Request's test is absent or satisfied
// against the Env's current state.
func (r *Request) Triggered(env *Env) (bool, error) {
	if r.Test == nil {
		return true, nil
	}
	v, err := r.Test.Eval(env)
	if err != nil {
		return false, err
	}
	return Truthy(v), nil
}

// Fire applies the Request's assignments to the Env, in order.
func (r *Request) Fire(env *Env) error {
	for _, a := range r.Assigns {
		v, err := env.Eval(a.Expr)
		if err != nil {
			return err
		}
		env.Set(a.Slot, v)
	}
	return nil
}

// Packet is an ordered sequence of Requests competing for the top of
// the Stack.  Order defines first-match-wins priority.
type Packet []*Request
