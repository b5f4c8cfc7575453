package cd

import (
	"testing"
)

// mapBinding is the simplest possible Binding.
type mapBinding map[string]Form

func (b mapBinding) Resolve(name string) (Form, bool) {
	f, have := b[name]
	if !have || f == nil {
		return nil, false
	}
	return f, true
}

func TestInstantiateNullRolePruning(t *testing.T) {
	template := Dwim(t, "(ptrans (actor ?v1) (object ?v1) (to ?v2) (from ?v3))")
	b := mapBinding{
		"v1": Atom("jack"),
		"v2": Dwim(t, "(store)"),
		// v3 deliberately unset
	}
	got, err := Instantiate(template, b)
	if err != nil {
		t.Fatal(err)
	}
	want := "(ptrans (actor jack) (object jack) (to (store)))"
	if got.String() != want {
		t.Fatalf("got %s, wanted %s", got, want)
	}
}

func TestInstantiateAllRolesDropped(t *testing.T) {
	got, err := Instantiate(Dwim(t, "(ptrans (to ?gone))"), mapBinding{})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "(ptrans)" {
		t.Fatalf("got %s", got)
	}
}

func TestInstantiateMultiLevel(t *testing.T) {
	b := mapBinding{
		"concept": Dwim(t, "(atrans (actor ?who))"),
		"who":     Var("person"),
		"person":  Dwim(t, "(person (name (jill)))"),
	}
	got, err := Instantiate(Var("concept"), b)
	if err != nil {
		t.Fatal(err)
	}
	want := "(atrans (actor (person (name (jill)))))"
	if got.String() != want {
		t.Fatalf("got %s, wanted %s", got, want)
	}
}

func TestInstantiateCompound(t *testing.T) {
	template := Dwim(t, "((propel (actor ?hand)) (ingest (object ?food)) ?entailed)")
	b := mapBinding{
		"hand": Dwim(t, "(hand)"),
		"food": Dwim(t, "(food)"),
		// entailed deliberately unset: the element vanishes
	}
	got, err := Instantiate(template, b)
	if err != nil {
		t.Fatal(err)
	}
	want := "(propel (actor (hand))) (ingest (object (food)))"
	if got.String() != want {
		t.Fatalf("got %s, wanted %s", got, want)
	}
}

func TestInstantiateCycle(t *testing.T) {
	b := mapBinding{
		"a": Var("b"),
		"b": Var("a"),
	}
	_, err := Instantiate(Var("a"), b)
	if err == nil {
		t.Fatal("expected a CyclicBinding")
	}
	cyclic, is := err.(*CyclicBinding)
	if !is {
		t.Fatalf("wanted a CyclicBinding, got %#v", err)
	}
	if len(cyclic.Chain) != 3 || cyclic.Chain[0] != "a" || cyclic.Chain[2] != "a" {
		t.Fatalf("bad chain %v", cyclic.Chain)
	}

	// Self-reference through a frame filler also cycles.
	b = mapBinding{
		"x": Dwim(t, "(loop (again ?x))"),
	}
	if _, err = Instantiate(Var("x"), b); err == nil {
		t.Fatal("expected a CyclicBinding")
	}
}

func TestInstantiateNoAliasing(t *testing.T) {
	stored := Dwim(t, "(person (name (jack)))").(Frame)
	b := mapBinding{"subject": stored}
	got, err := Instantiate(Dwim(t, "(ptrans (actor ?subject))"), b)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the stored value must not change the result.
	stored.Roles[0] = Role{Name: "name", Filler: Atom("changed")}

	want := "(ptrans (actor (person (name (jack)))))"
	if got.String() != want {
		t.Fatalf("result aliases the binding: %s", got)
	}
}
