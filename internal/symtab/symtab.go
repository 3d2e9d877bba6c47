// Package symtab is the symbol-table collaborator for astir front ends.
// The rendering core never consults it: Variable nodes reference bindings
// by plain name, and a front end resolves those names here before (or
// while) emitting variable nodes. Unresolved references are a front-end
// condition, not a rendering error.
package symtab

import (
	"fmt"

	"github.com/astir-lang/astir/internal/ir"
)

// Symbol binds a name to the node that declared it.
type Symbol struct {
	Name string
	Decl ir.Node
}

// Scope is one lexical naming level. Lookups fall through to the parent.
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates a scope nested in parent; parent may be nil for the
// outermost scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, symbols: make(map[string]*Symbol)}
}

// Define records a declaration in this scope. Redefinition replaces the
// earlier symbol; shadowing across scopes is the normal case and needs no
// special handling.
func (s *Scope) Define(name string, decl ir.Node) (*Symbol, error) {
	if name == "" {
		return nil, fmt.Errorf("define: empty symbol name")
	}
	sym := &Symbol{Name: name, Decl: decl}
	s.symbols[name] = sym
	return sym, nil
}

// Resolve looks a name up through this scope and its ancestors.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Table tracks the current scope while a front end walks declarations.
type Table struct {
	current *Scope
}

// NewTable creates a table with one global scope.
func NewTable() *Table {
	return &Table{current: NewScope(nil)}
}

// Push enters a new nested scope.
func (t *Table) Push() {
	t.current = NewScope(t.current)
}

// Pop leaves the current scope. Popping the global scope is a programming
// error and panics.
func (t *Table) Pop() {
	if t.current.parent == nil {
		panic("symtab: pop of global scope")
	}
	t.current = t.current.parent
}

// Define records a declaration in the current scope.
func (t *Table) Define(name string, decl ir.Node) (*Symbol, error) {
	return t.current.Define(name, decl)
}

// Resolve looks a name up from the current scope outwards.
func (t *Table) Resolve(name string) (*Symbol, bool) {
	return t.current.Resolve(name)
}
