package treefile

import (
	"fmt"

	"github.com/astir-lang/astir/internal/ir"
	"github.com/astir-lang/astir/internal/symtab"
)

// resolve checks every Variable reference in the module against the
// bindings visible at its position. Unresolved names are reported as
// warnings, never as errors: name resolution is a front-end convention
// and a partially bound tree still renders.
func resolve(mod *ir.Module) []string {
	r := &resolver{table: symtab.NewTable()}
	for _, stmt := range mod.Body {
		r.stmt(stmt)
	}
	return r.warnings
}

type resolver struct {
	table    *symtab.Table
	warnings []string
}

func (r *resolver) warn(name string) {
	r.warnings = append(r.warnings, fmt.Sprintf("unresolved reference %q", name))
}

func (r *resolver) stmt(s ir.Stmt) {
	switch node := s.(type) {
	case *ir.ImportStmt:
		r.declareAliases(node, node.Names)
	case *ir.ImportExpr:
		r.declareAliases(node, node.Names)
	case *ir.ImportFromStmt:
		r.declareAliases(node, node.Names)
	case *ir.ImportFromExpr:
		r.declareAliases(node, node.Names)
	case *ir.Function:
		r.table.Define(node.Prototype.Name, node)
		r.table.Push()
		for _, arg := range node.Prototype.Args.Args {
			r.table.Define(arg.Name, arg)
		}
		r.block(node.Body)
		r.table.Pop()
	case *ir.FunctionCall:
		r.expr(node)
	case *ir.FunctionReturn:
		if node.Value != nil {
			r.expr(node.Value)
		}
	case *ir.VariableAssignment:
		r.expr(node.Value)
		r.table.Define(node.Name, node)
	case *ir.VariableDeclaration:
		if node.Value != nil {
			r.expr(node.Value)
		}
		r.table.Define(node.Name, node)
	case *ir.IfStmt:
		r.expr(node.Cond)
		r.scopedBlock(node.Then)
		if node.Else != nil {
			r.scopedBlock(node.Else)
		}
	case *ir.WhileStmt:
		r.expr(node.Cond)
		r.scopedBlock(node.Body)
	case *ir.ForRangeLoopStmt:
		r.expr(node.Start)
		r.expr(node.End)
		if node.Step != nil {
			r.expr(node.Step)
		}
		r.table.Push()
		r.table.Define(node.Variable, node)
		r.block(node.Body)
		r.table.Pop()
	}
}

func (r *resolver) expr(e ir.Expr) {
	switch node := e.(type) {
	case *ir.Variable:
		if _, ok := r.table.Resolve(node.Name); !ok {
			r.warn(node.Name)
		}
	case *ir.BinaryOp:
		r.expr(node.LHS)
		r.expr(node.RHS)
	case *ir.UnaryOp:
		r.expr(node.Operand)
	case *ir.FunctionCall:
		for _, arg := range node.Args {
			r.expr(arg)
		}
	case *ir.LambdaExpr:
		r.table.Push()
		for _, arg := range node.Params.Args {
			r.table.Define(arg.Name, arg)
		}
		r.expr(node.Body)
		r.table.Pop()
	case *ir.IfExpr:
		r.expr(node.Cond)
		r.expr(node.Then)
		r.expr(node.Else)
	case *ir.WhileExpr:
		r.expr(node.Cond)
		r.scopedBlock(node.Body)
	case *ir.InlineVariableDeclaration:
		if node.Value != nil {
			r.expr(node.Value)
		}
		r.table.Define(node.Name, node)
	}
}

func (r *resolver) block(b *ir.Block) {
	for _, stmt := range b.Nodes {
		r.stmt(stmt)
	}
}

func (r *resolver) scopedBlock(b *ir.Block) {
	r.table.Push()
	r.block(b)
	r.table.Pop()
}

func (r *resolver) declareAliases(decl ir.Node, names []*ir.AliasExpr) {
	for _, alias := range names {
		name := alias.Name
		if alias.AsName != "" {
			name = alias.AsName
		}
		r.table.Define(name, decl)
	}
}
