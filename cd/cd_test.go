package cd

import (
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for _, src := range []string{
		"jack",
		"?subject",
		"(store)",
		"(person (name (jack)))",
		"(ptrans (actor (person (name (jack)))) (object (person (name (jack)))) (to (store)))",
		"(a (b) (c))",
	} {
		f, err := Parse(src)
		if err != nil {
			t.Fatal(err)
		}
		if got := f.String(); got != src {
			t.Fatalf("round trip of %s gave %s", src, got)
		}
	}
}

func TestParseShapes(t *testing.T) {
	f, err := Parse("(person (name (jack)))")
	if err != nil {
		t.Fatal(err)
	}
	frame, is := f.(Frame)
	if !is {
		t.Fatalf("wanted a Frame, got %#v", f)
	}
	if frame.Header != "person" || len(frame.Roles) != 1 || frame.Roles[0].Name != "name" {
		t.Fatalf("bad frame %#v", frame)
	}

	f, err = Parse("(actor ?subject)")
	if err != nil {
		t.Fatal(err)
	}
	frame, is = f.(Frame)
	if !is {
		t.Fatalf("wanted a Frame, got %#v", f)
	}
	if v, is := frame.Roles[0].Filler.(Var); !is || v != "subject" {
		t.Fatalf("bad filler %#v", frame.Roles[0].Filler)
	}

	// A compound: two independent frames.
	f, err = Parse("((propel (actor (hand))) (ingest (object (food))))")
	if err != nil {
		t.Fatal(err)
	}
	l, is := f.(List)
	if !is || len(l) != 2 {
		t.Fatalf("wanted a two-element List, got %#v", f)
	}
	for _, x := range l {
		if _, is := x.(Frame); !is {
			t.Fatalf("compound element isn't a Frame: %#v", x)
		}
	}

	// Not role-shaped, so not a Frame.
	f, err = Parse("(eq ?a b)")
	if err != nil {
		t.Fatal(err)
	}
	if _, is := f.(List); !is {
		t.Fatalf("wanted a List, got %#v", f)
	}

	if _, err = Parse("(unbalanced (parens)"); err == nil {
		t.Fatal("expected a parse error")
	}
	if _, err = Parse(""); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParseNumbers(t *testing.T) {
	f, err := Parse("42")
	if err != nil {
		t.Fatal(err)
	}
	if n, is := f.(Number); !is || n != 42 {
		t.Fatalf("wanted Number 42, got %#v", f)
	}
	if got := f.String(); got != "42" {
		t.Fatalf("got %s", got)
	}
}

func TestEqual(t *testing.T) {
	a, err := Parse("(person (name (jack)))")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("(person (name (jack)))")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatal("wanted Equal")
	}
	c, err := Parse("(person (name (jill)))")
	if err != nil {
		t.Fatal(err)
	}
	if Equal(a, c) {
		t.Fatal("wanted not Equal")
	}
	if Equal(a, nil) || !Equal(nil, nil) {
		t.Fatal("nil comparisons went wrong")
	}
}

func TestCopyIsDeep(t *testing.T) {
	orig, err := Parse("(ptrans (actor (person (name (jack)))))")
	if err != nil {
		t.Fatal(err)
	}
	dup := orig.Copy()
	frame := dup.(Frame)
	frame.Roles[0] = Role{Name: "actor", Filler: Atom("other")}
	if !Equal(orig, Dwim(t, "(ptrans (actor (person (name (jack)))))")) {
		t.Fatalf("copy aliased the original: %s", orig)
	}
}

// Dwim parses or fails the test.
func Dwim(t *testing.T, src string) Form {
	t.Helper()
	f, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	return f
}
