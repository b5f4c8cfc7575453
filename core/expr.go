package core

import (
	"errors"

	"github.com/rsklar/caspar/cd"
)

// Expr is the closed expression representation carried by Requests.
//
// Requests describe their tests and assignments as data, interpreted
// here against an Env.  The representation is deliberately small: a
// literal, a slot read, equality, boolean combination, and numeric
// addition cover every pattern a lexicon actually uses.  There is no
// way to run host code from a lexicon.
//
// Truth is represented in-band: a test is satisfied when it evaluates
// to a non-absent Form (see Truthy).  Eq, And, and Not yield the atom
// "t" or nothing.
type Expr interface {
	Eval(env *Env) (cd.Form, error)
}

// True is the canonical satisfied-test value.
var True = cd.Atom("t")

// Truthy reports whether a Form counts as a satisfied test.
func Truthy(f cd.Form) bool {
	return f != nil
}

// Lit evaluates to its Form.
//
// The Form may be a template with embedded Vars; evaluation does not
// instantiate them.  That is how an assignment stores a
// variable-laden template (say, into the "concept" slot) for the
// instantiator to resolve after the last word.
type Lit struct {
	Form cd.Form
}

func (e *Lit) Eval(env *Env) (cd.Form, error) {
	if e.Form == nil {
		return nil, nil
	}
	return e.Form.Copy(), nil
}

// Slot evaluates to the named slot's current value.
//
// Reading a never-declared slot is an UnboundSlot error: it signals a
// lexicon defect, and the parse aborts.  A declared slot holding
// nothing evaluates to an absent Form.
type Slot struct {
	Name string
}

func (e *Slot) Eval(env *Env) (cd.Form, error) {
	v, have := env.Get(e.Name)
	if !have {
		return nil, &UnboundSlot{Slot: e.Name}
	}
	if v == nil {
		return nil, nil
	}
	return v.Copy(), nil
}

// Eq evaluates to True when its operands are structurally equal.
type Eq struct {
	A Expr
	B Expr
}

func (e *Eq) Eval(env *Env) (cd.Form, error) {
	a, err := e.A.Eval(env)
	if err != nil {
		return nil, err
	}
	b, err := e.B.Eval(env)
	if err != nil {
		return nil, err
	}
	if cd.Equal(a, b) {
		return True, nil
	}
	return nil, nil
}

// And evaluates to True when every conjunct is Truthy.  An empty And
// is True.
type And struct {
	Exprs []Expr
}

func (e *And) Eval(env *Env) (cd.Form, error) {
	for _, x := range e.Exprs {
		v, err := x.Eval(env)
		if err != nil {
			return nil, err
		}
		if !Truthy(v) {
			return nil, nil
		}
	}
	return True, nil
}

// Not inverts Truthy-ness.
type Not struct {
	X Expr
}

func (e *Not) Eval(env *Env) (cd.Form, error) {
	v, err := e.X.Eval(env)
	if err != nil {
		return nil, err
	}
	if Truthy(v) {
		return nil, nil
	}
	return True, nil
}

// Add evaluates to the numeric sum of its operands.
type Add struct {
	A Expr
	B Expr
}

func (e *Add) Eval(env *Env) (cd.Form, error) {
	a, err := e.A.Eval(env)
	if err != nil {
		return nil, err
	}
	b, err := e.B.Eval(env)
	if err != nil {
		return nil, err
	}
	x, is := a.(cd.Number)
	if !is {
		return nil, errors.New("add: left operand is not a number")
	}
	y, is := b.(cd.Number)
	if !is {
		return nil, errors.New("add: right operand is not a number")
	}
	return x + y, nil
}

// ParseExpr reads an expression from its textual syntax.
//
// "?slot" reads a slot now; "(eq A B)", "(and A ...)", "(not A)", and
// "(add A B)" are the operators; "(quote F)" forces a literal; any
// other atom or parenthesized form is a literal template, with any
// embedded "?vars" left for instantiation.
func ParseExpr(src string) (Expr, error) {
	sx, err := cd.ReadSexp(src)
	if err != nil {
		return nil, err
	}
	return CompileExpr(sx)
}

// CompileExpr compiles a raw s-expression (see cd.ReadSexp) into an
// Expr.
func CompileExpr(f cd.Form) (Expr, error) {
	switch v := f.(type) {
	case nil:
		return nil, errors.New("empty expression")
	case cd.Atom, cd.Number:
		return &Lit{Form: v}, nil
	case cd.Var:
		return &Slot{Name: string(v)}, nil
	case cd.List:
		if len(v) == 0 {
			return nil, errors.New("empty expression")
		}
		head, is := v[0].(cd.Atom)
		if !is {
			return &Lit{Form: cd.FromSexp(v)}, nil
		}
		switch string(head) {
		case "eq":
			args, err := compileArgs(v[1:], 2)
			if err != nil {
				return nil, errors.New("eq: " + err.Error())
			}
			return &Eq{A: args[0], B: args[1]}, nil
		case "and":
			args, err := compileArgs(v[1:], -1)
			if err != nil {
				return nil, errors.New("and: " + err.Error())
			}
			return &And{Exprs: args}, nil
		case "not":
			args, err := compileArgs(v[1:], 1)
			if err != nil {
				return nil, errors.New("not: " + err.Error())
			}
			return &Not{X: args[0]}, nil
		case "add":
			args, err := compileArgs(v[1:], 2)
			if err != nil {
				return nil, errors.New("add: " + err.Error())
			}
			return &Add{A: args[0], B: args[1]}, nil
		case "quote":
			if len(v) != 2 {
				return nil, errors.New("quote: want exactly one argument")
			}
			return &Lit{Form: cd.FromSexp(v[1])}, nil
		default:
			return &Lit{Form: cd.FromSexp(v)}, nil
		}
	}
	return nil, errors.New("unknown expression form")
}

func compileArgs(xs []cd.Form, want int) ([]Expr, error) {
	if 0 <= want && len(xs) != want {
		return nil, errors.New("wrong number of arguments")
	}
	acc := make([]Expr, len(xs))
	for i, x := range xs {
		e, err := CompileExpr(x)
		if err != nil {
			return nil, err
		}
		acc[i] = e
	}
	return acc, nil
}
