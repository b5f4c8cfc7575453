package core

import (
	"testing"

	"github.com/rsklar/caspar/cd"
)

func TestEnvControlSlots(t *testing.T) {
	env := NewEnv()
	for _, slot := range ControlSlots {
		v, have := env.Get(slot)
		if !have {
			t.Fatalf("control slot %s not declared", slot)
		}
		if v != nil {
			t.Fatalf("control slot %s not empty", slot)
		}
	}
}

func TestEnvDeclareOnWrite(t *testing.T) {
	env := NewEnv()
	if env.Declared("toLoc") {
		t.Fatal("toLoc shouldn't be declared yet")
	}
	env.Set("toLoc", cd.Atom("store"))
	if !env.Declared("toLoc") {
		t.Fatal("toLoc should be declared")
	}
	v, _ := env.Get("toLoc")
	if !cd.Equal(v, cd.Atom("store")) {
		t.Fatalf("got %v", v)
	}
}

func TestEnvUnboundSlot(t *testing.T) {
	env := NewEnv()
	_, err := env.Eval(&Slot{Name: "neverDeclared"})
	if err == nil {
		t.Fatal("expected an UnboundSlot")
	}
	unbound, is := err.(*UnboundSlot)
	if !is {
		t.Fatalf("wanted an UnboundSlot, got %#v", err)
	}
	if unbound.Slot != "neverDeclared" {
		t.Fatalf("bad slot %s", unbound.Slot)
	}
}

func TestEnvResolve(t *testing.T) {
	env := NewEnv()
	if _, have := env.Resolve("concept"); have {
		t.Fatal("an empty slot shouldn't resolve")
	}
	if _, have := env.Resolve("nope"); have {
		t.Fatal("an undeclared slot shouldn't resolve")
	}
	env.Set("concept", cd.Atom("x"))
	if v, have := env.Resolve("concept"); !have || !cd.Equal(v, cd.Atom("x")) {
		t.Fatalf("got %v, %v", v, have)
	}
}
