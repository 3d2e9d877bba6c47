package ir

import "fmt"

// Block is an ordered sequence of statements forming a lexical scope. It
// is owned exclusively by the construct that introduces it (function body,
// branch arm, loop body) and lives exactly as long as its owner. Empty
// blocks are legal; backends whose target forbids an empty body render an
// explicit no-op statement.
type Block struct {
	base
	Name  string // optional, diagnostics only
	Nodes []Stmt
}

// NewBlock creates a block holding the given statements in order.
func NewBlock(stmts ...Stmt) *Block {
	return &Block{Nodes: stmts}
}

// Append adds statements to the end of the block, preserving order.
func (b *Block) Append(stmts ...Stmt) {
	b.Nodes = append(b.Nodes, stmts...)
}

func (b *Block) Kind() Kind { return KindBlock }
func (b *Block) DiagName() string {
	if b.Name != "" {
		return fmt.Sprintf("Block %q", b.Name)
	}
	return "Block"
}

// Module is a named top-level sequence of statements, the usual root of a
// rendered tree.
type Module struct {
	base
	Name string
	Body []Stmt
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Append adds top-level statements to the module in order.
func (m *Module) Append(stmts ...Stmt) {
	m.Body = append(m.Body, stmts...)
}

func (m *Module) Kind() Kind { return KindModule }
func (m *Module) DiagName() string {
	return fmt.Sprintf("Module %q", m.Name)
}
