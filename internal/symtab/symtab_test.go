package symtab

import (
	"testing"

	"github.com/astir-lang/astir/internal/ir"
)

func decl(t *testing.T, name string) ir.Node {
	t.Helper()
	v, err := ir.NewVariable(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDefineAndResolve(t *testing.T) {
	table := NewTable()
	want := decl(t, "x")
	if _, err := table.Define("x", want); err != nil {
		t.Fatal(err)
	}

	sym, ok := table.Resolve("x")
	if !ok {
		t.Fatal("x not resolved")
	}
	if sym.Name != "x" || sym.Decl != want {
		t.Errorf("resolved %q -> %v", sym.Name, sym.Decl)
	}

	if _, ok := table.Resolve("y"); ok {
		t.Error("undefined name resolved")
	}
}

func TestEmptyNameRejected(t *testing.T) {
	table := NewTable()
	if _, err := table.Define("", decl(t, "x")); err == nil {
		t.Error("empty name accepted")
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	table := NewTable()
	outer := decl(t, "x")
	table.Define("x", outer)

	table.Push()
	inner := decl(t, "x")
	table.Define("x", inner)

	if sym, _ := table.Resolve("x"); sym.Decl != inner {
		t.Error("inner scope does not shadow outer")
	}

	table.Pop()
	if sym, _ := table.Resolve("x"); sym.Decl != outer {
		t.Error("outer binding not restored after pop")
	}
}

func TestLookupFallsThroughToParent(t *testing.T) {
	table := NewTable()
	table.Define("x", decl(t, "x"))
	table.Push()
	table.Push()

	if _, ok := table.Resolve("x"); !ok {
		t.Error("global binding invisible from nested scope")
	}
}

func TestRedefinitionReplaces(t *testing.T) {
	table := NewTable()
	table.Define("x", decl(t, "x"))
	second := decl(t, "x")
	table.Define("x", second)

	if sym, _ := table.Resolve("x"); sym.Decl != second {
		t.Error("redefinition did not replace the earlier symbol")
	}
}

func TestPopOfGlobalScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("pop of global scope did not panic")
		}
	}()
	NewTable().Pop()
}
