package cd

import (
	"strings"
)

// Binding resolves variable names during instantiation.
//
// Resolve should report false for a name that has no value.  A
// resolved value may itself contain Vars; Instantiate keeps resolving.
type Binding interface {
	Resolve(name string) (Form, bool)
}

// CyclicBinding occurs when variable-reference resolution does not
// terminate.  Chain holds the offending slot names in resolution
// order, ending with the repeated name.
type CyclicBinding struct {
	Chain []string
}

func (e *CyclicBinding) Error() string {
	return "cyclic binding: " + strings.Join(e.Chain, " -> ")
}

// Instantiate resolves a template against the given Binding into a
// concrete result tree.
//
// Atoms and Numbers pass through.  A Var resolves through the Binding
// and the resolved value is instantiated in turn (multi-level
// resolution); an unresolvable Var yields an absent form.  A Frame
// instantiates each filler in order and drops any role whose filler
// comes out absent; a Frame with all roles dropped still yields its
// bare header.  A List instantiates its elements independently and
// keeps the survivors.
//
// The result is a fresh tree: no part of it aliases a value stored in
// the Binding, so later mutation of a slot cannot change an
// already-returned result.
func Instantiate(f Form, b Binding) (Form, error) {
	return inst(f, b, nil)
}

func inst(f Form, b Binding, chain []string) (Form, error) {
	switch v := f.(type) {
	case nil:
		return nil, nil
	case Atom:
		return v, nil
	case Number:
		return v, nil
	case Var:
		name := string(v)
		for _, seen := range chain {
			if seen == name {
				return nil, &CyclicBinding{Chain: append(append([]string{}, chain...), name)}
			}
		}
		val, have := b.Resolve(name)
		if !have || val == nil {
			return nil, nil
		}
		return inst(val, b, append(chain, name))
	case Frame:
		roles := make([]Role, 0, len(v.Roles))
		for _, r := range v.Roles {
			filler, err := inst(r.Filler, b, chain)
			if err != nil {
				return nil, err
			}
			if filler == nil {
				continue
			}
			roles = append(roles, Role{Name: r.Name, Filler: filler})
		}
		return Frame{Header: v.Header, Roles: roles}, nil
	case List:
		acc := make(List, 0, len(v))
		for _, x := range v {
			y, err := inst(x, b, chain)
			if err != nil {
				return nil, err
			}
			if y != nil {
				acc = append(acc, y)
			}
		}
		if len(acc) == 0 {
			return nil, nil
		}
		return acc, nil
	}
	return nil, &UnknownFormType{f}
}

// UnknownFormType is an error that includes the thing that's causing
// the trouble.
type UnknownFormType struct {
	Form Form
}

func (e *UnknownFormType) Error() string {
	return "unknown form type"
}
