package cd

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a Form from the standard parenthesized syntax.
//
// Parenthesized lists whose tail elements all look like roles (a
// sublist of one or two elements headed by a symbol) are read as
// Frames; other lists are read as compound Lists.  '?name' reads as a
// Var.  Parse and Form.String are inverse for well-formed input.
func Parse(s string) (Form, error) {
	sx, err := ReadSexp(s)
	if err != nil {
		return nil, err
	}
	return FromSexp(sx), nil
}

// ReadSexp reads a raw s-expression: only Atoms, Numbers, Vars, and
// Lists.  No Frame recognition is applied; see FromSexp.
//
// The expression language wants this raw shape so that operator
// applications like "(eq ?a b)" are not mistaken for Frames.
func ReadSexp(s string) (Form, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	form, rest, err := read(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.New("trailing input after form: " + strings.Join(rest, " "))
	}
	return form, nil
}

// FromSexp recognizes Frames in a raw s-expression.
//
// A List headed by a symbol whose remaining elements are all
// one-or-two-element symbol-headed Lists becomes a Frame with those
// elements as roles.  Everything else is rewritten recursively.
func FromSexp(f Form) Form {
	l, is := f.(List)
	if !is {
		return f
	}
	if len(l) == 0 {
		return nil
	}
	if head, is := l[0].(Atom); is {
		if roles, ok := rolesOf(l[1:]); ok {
			return Frame{Header: string(head), Roles: roles}
		}
	}
	acc := make(List, 0, len(l))
	for _, x := range l {
		if y := FromSexp(x); y != nil {
			acc = append(acc, y)
		}
	}
	return acc
}

func rolesOf(xs []Form) ([]Role, bool) {
	roles := make([]Role, 0, len(xs))
	for _, x := range xs {
		sub, is := x.(List)
		if !is || len(sub) == 0 || 2 < len(sub) {
			return nil, false
		}
		name, is := sub[0].(Atom)
		if !is {
			return nil, false
		}
		r := Role{Name: string(name)}
		if len(sub) == 2 {
			r.Filler = FromSexp(sub[1])
		}
		roles = append(roles, r)
	}
	return roles, true
}

func tokenize(s string) ([]string, error) {
	toks := make([]string, 0, 16)
	i := 0
	rs := []rune(s)
	for i < len(rs) {
		switch {
		case unicode.IsSpace(rs[i]):
			i++
		case rs[i] == '(' || rs[i] == ')':
			toks = append(toks, string(rs[i]))
			i++
		case rs[i] == ';':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
		default:
			j := i
			for j < len(rs) && !unicode.IsSpace(rs[j]) && rs[j] != '(' && rs[j] != ')' && rs[j] != ';' {
				j++
			}
			toks = append(toks, string(rs[i:j]))
			i = j
		}
	}
	if len(toks) == 0 {
		return nil, errors.New("empty input")
	}
	return toks, nil
}

func read(toks []string) (Form, []string, error) {
	if len(toks) == 0 {
		return nil, nil, errors.New("unexpected end of input")
	}
	tok := toks[0]
	toks = toks[1:]
	switch tok {
	case "(":
		acc := make(List, 0, 4)
		for {
			if len(toks) == 0 {
				return nil, nil, errors.New("unbalanced parentheses")
			}
			if toks[0] == ")" {
				return acc, toks[1:], nil
			}
			x, rest, err := read(toks)
			if err != nil {
				return nil, nil, err
			}
			acc = append(acc, x)
			toks = rest
		}
	case ")":
		return nil, nil, errors.New("unexpected ')'")
	default:
		return atom(tok), toks, nil
	}
}

func atom(tok string) Form {
	if IsVariable(tok) {
		return Var(tok[1:])
	}
	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return Number(n)
	}
	return Atom(tok)
}
