package cd

import (
	"strconv"
	"strings"
)

// Form is a conceptual-dependency form.  A Form is either a template
// (possibly containing Vars) or a concrete result tree (no Vars).
//
// The concrete syntax is parenthesized:
//
//	(ptrans (actor (person (name (jack)))) (to (store)))
//
// Atoms print bare, Vars print with a leading '?', and a Frame with
// no roles prints as just its header: "(store)".
type Form interface {
	// String renders the form in the standard parenthesized
	// syntax.  This rendering is the de facto wire format.
	String() string

	// Copy makes a deep copy of the Form.
	Copy() Form

	form()
}

// Atom is a symbol or constant leaf.
type Atom string

// Number is a numeric leaf.  Lexicon templates rarely need these, but
// the expression language does.
type Number float64

// Var is a named reference into an environment.  A Var is resolved
// only during instantiation; see Instantiate.
type Var string

// Role is one (role, filler) pair in a Frame.  A nil Filler is
// allowed in a template; instantiation drops the role.
type Role struct {
	Name   string
	Filler Form
}

// Frame is a header symbol plus an ordered sequence of roles.  Role
// order is preserved through instantiation and printing.
type Frame struct {
	Header string
	Roles  []Role
}

// List is an ordered sequence of independent Forms: a compound
// concept.  A compound result represents several simultaneous result
// trees (one action may entail two sub-events).
type List []Form

func (a Atom) form()   {}
func (n Number) form() {}
func (v Var) form()    {}
func (f Frame) form()  {}
func (l List) form()   {}

func (a Atom) String() string {
	return string(a)
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (v Var) String() string {
	return "?" + string(v)
}

func (f Frame) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(f.Header)
	for _, r := range f.Roles {
		b.WriteString(" (")
		b.WriteString(r.Name)
		if r.Filler != nil {
			b.WriteByte(' ')
			b.WriteString(r.Filler.String())
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

func (l List) String() string {
	acc := make([]string, len(l))
	for i, x := range l {
		acc[i] = x.String()
	}
	return strings.Join(acc, " ")
}

func (a Atom) Copy() Form {
	return a
}

func (n Number) Copy() Form {
	return n
}

func (v Var) Copy() Form {
	return v
}

func (f Frame) Copy() Form {
	roles := make([]Role, len(f.Roles))
	for i, r := range f.Roles {
		roles[i] = Role{Name: r.Name}
		if r.Filler != nil {
			roles[i].Filler = r.Filler.Copy()
		}
	}
	return Frame{Header: f.Header, Roles: roles}
}

func (l List) Copy() Form {
	acc := make(List, len(l))
	for i, x := range l {
		if x != nil {
			acc[i] = x.Copy()
		}
	}
	return acc
}

// Equal reports structural equality of two Forms.
func Equal(a, b Form) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Atom:
		y, is := b.(Atom)
		return is && x == y
	case Number:
		y, is := b.(Number)
		return is && x == y
	case Var:
		y, is := b.(Var)
		return is && x == y
	case Frame:
		y, is := b.(Frame)
		if !is || x.Header != y.Header || len(x.Roles) != len(y.Roles) {
			return false
		}
		for i, r := range x.Roles {
			if r.Name != y.Roles[i].Name || !Equal(r.Filler, y.Roles[i].Filler) {
				return false
			}
		}
		return true
	case List:
		y, is := b.(List)
		if !is || len(x) != len(y) {
			return false
		}
		for i, e := range x {
			if !Equal(e, y[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// IsVariable reports whether the string names a variable reference.
//
// All variable references start with a '?'.
func IsVariable(s string) bool {
	return strings.HasPrefix(s, "?")
}
