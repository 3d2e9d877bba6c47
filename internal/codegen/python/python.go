// Package python implements the reference astir backend: a complete
// handler set rendering IR trees as Python source. Indentation depth is
// threaded through the engine Context, so one Transpiler value may serve
// concurrent renders.
//
// Coverage is every IR kind except WhileExpr: Python has no value-yielding
// while loop, and the kind is deliberately left unregistered so that
// rendering one reports the engine's unimplemented-construct error.
package python

import (
	"fmt"
	"strings"

	"github.com/astir-lang/astir/internal/codegen"
	"github.com/astir-lang/astir/internal/ir"
)

// DefaultIndent is the indentation unit used unless WithIndent overrides
// it.
const DefaultIndent = "    "

// Transpiler renders IR trees as Python source text.
type Transpiler struct {
	emitter *codegen.Emitter
	indent  string
}

// Option configures a Transpiler at construction. Configuration is fixed
// afterwards.
type Option func(*Transpiler)

// WithIndent sets the indentation unit.
func WithIndent(unit string) Option {
	return func(t *Transpiler) { t.indent = unit }
}

// New creates a Python transpiler with every handler registered.
func New(opts ...Option) *Transpiler {
	t := &Transpiler{indent: DefaultIndent}
	for _, opt := range opts {
		opt(t)
	}
	t.emitter = codegen.NewEmitter()
	t.register()
	return t
}

// Render renders the tree rooted at root. On error no partial text is
// returned.
func (t *Transpiler) Render(root ir.Node) (string, error) {
	return t.emitter.Emit(codegen.Context{Indent: t.indent}, root)
}

// Handles reports whether the backend covers the given kind.
func (t *Transpiler) Handles(kind ir.Kind) bool {
	return t.emitter.Handles(kind)
}

func (t *Transpiler) register() {
	e := t.emitter
	e.Register(ir.KindAliasExpr, emitAliasExpr)
	e.Register(ir.KindArgument, emitArgument)
	e.Register(ir.KindArguments, emitArguments)
	e.Register(ir.KindBinaryOp, emitBinaryOp)
	e.Register(ir.KindBlock, emitBlock)
	e.Register(ir.KindForRangeLoopStmt, emitForRangeLoopStmt)
	e.Register(ir.KindFunction, emitFunction)
	e.Register(ir.KindFunctionCall, emitFunctionCall)
	e.Register(ir.KindFunctionPrototype, emitFunctionPrototype)
	e.Register(ir.KindFunctionReturn, emitFunctionReturn)
	e.Register(ir.KindIfExpr, emitIfExpr)
	e.Register(ir.KindIfStmt, emitIfStmt)
	e.Register(ir.KindImportExpr, emitImportExpr)
	e.Register(ir.KindImportFromExpr, emitImportFromExpr)
	e.Register(ir.KindImportFromStmt, emitImportFromStmt)
	e.Register(ir.KindImportStmt, emitImportStmt)
	e.Register(ir.KindInlineVariableDeclaration, emitInlineVariableDeclaration)
	e.Register(ir.KindLambdaExpr, emitLambdaExpr)
	e.Register(ir.KindLiteral, emitLiteral)
	e.Register(ir.KindModule, emitModule)
	e.Register(ir.KindTypeRef, emitTypeRef)
	e.Register(ir.KindUnaryOp, emitUnaryOp)
	e.Register(ir.KindVariable, emitVariable)
	e.Register(ir.KindVariableAssignment, emitVariableAssignment)
	e.Register(ir.KindVariableDeclaration, emitVariableDeclaration)
	e.Register(ir.KindWhileStmt, emitWhileStmt)
	// KindWhileExpr intentionally unregistered: no Python surface syntax.
}

// emitModule renders top-level statements at the current depth, one per
// line.
func emitModule(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	mod := n.(*ir.Module)
	lines := make([]string, 0, len(mod.Body))
	for _, stmt := range mod.Body {
		text, err := e.Emit(ctx, stmt)
		if err != nil {
			return "", err
		}
		lines = append(lines, ctx.Margin()+text)
	}
	return strings.Join(lines, "\n"), nil
}

// emitBlock renders each statement one level deeper than the owner, one
// per line. An empty block renders a single pass line: Python forbids a
// structurally empty body.
func emitBlock(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	block := n.(*ir.Block)
	inner := ctx.Nested()
	if len(block.Nodes) == 0 {
		return inner.Margin() + "pass", nil
	}
	lines := make([]string, 0, len(block.Nodes))
	for _, stmt := range block.Nodes {
		text, err := e.Emit(inner, stmt)
		if err != nil {
			return "", err
		}
		lines = append(lines, inner.Margin()+text)
	}
	return strings.Join(lines, "\n"), nil
}

func emitAliasExpr(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	alias := n.(*ir.AliasExpr)
	if alias.AsName != "" {
		return fmt.Sprintf("%s as %s", alias.Name, alias.AsName), nil
	}
	return alias.Name, nil
}

func emitArgument(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	arg := n.(*ir.Argument)
	typ, err := e.Emit(ctx, arg.Type)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", arg.Name, typ), nil
}

func emitArguments(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	args := n.(*ir.Arguments)
	parts := make([]string, 0, len(args.Args))
	for _, arg := range args.Args {
		text, err := e.Emit(ctx, arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", "), nil
}

// emitFunctionPrototype renders the def header line, omitting the return
// annotation entirely when the prototype has none.
func emitFunctionPrototype(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	proto := n.(*ir.FunctionPrototype)
	args, err := e.Emit(ctx, proto.Args)
	if err != nil {
		return "", err
	}
	returns := ""
	if proto.ReturnType != nil {
		ret, err := e.Emit(ctx, proto.ReturnType)
		if err != nil {
			return "", err
		}
		returns = " -> " + ret
	}
	return fmt.Sprintf("def %s(%s)%s:", proto.Name, args, returns), nil
}

func emitFunction(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	fn := n.(*ir.Function)
	header, err := e.Emit(ctx, fn.Prototype)
	if err != nil {
		return "", err
	}
	body, err := e.Emit(ctx, fn.Body)
	if err != nil {
		return "", err
	}
	return header + "\n" + body, nil
}

func emitFunctionCall(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	call := n.(*ir.FunctionCall)
	parts := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		text, err := e.Emit(ctx, arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return fmt.Sprintf("%s(%s)", call.Callee, strings.Join(parts, ", ")), nil
}

func emitFunctionReturn(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	ret := n.(*ir.FunctionReturn)
	if ret.Value == nil {
		return "return", nil
	}
	value, err := e.Emit(ctx, ret.Value)
	if err != nil {
		return "", err
	}
	return "return " + value, nil
}

// emitLambdaExpr renders parameter names without annotations: Python
// lambdas do not accept them.
func emitLambdaExpr(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	lambda := n.(*ir.LambdaExpr)
	body, err := e.Emit(ctx, lambda.Body)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(lambda.Params.Args))
	for _, arg := range lambda.Params.Args {
		names = append(names, arg.Name)
	}
	if len(names) == 0 {
		return fmt.Sprintf("lambda: %s", body), nil
	}
	return fmt.Sprintf("lambda %s: %s", strings.Join(names, ", "), body), nil
}

func emitVariable(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	return n.(*ir.Variable).Name, nil
}

func emitVariableAssignment(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	assign := n.(*ir.VariableAssignment)
	value, err := e.Emit(ctx, assign.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %s", assign.Name, value), nil
}

func emitVariableDeclaration(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	decl := n.(*ir.VariableDeclaration)
	typ, err := e.Emit(ctx, decl.Type)
	if err != nil {
		return "", err
	}
	if decl.Value == nil {
		return fmt.Sprintf("%s: %s", decl.Name, typ), nil
	}
	value, err := e.Emit(ctx, decl.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s = %s", decl.Name, typ, value), nil
}

// emitInlineVariableDeclaration renders the expression form as a named
// assignment expression; without an initializer only the name remains.
// The type annotation is dropped: Python has no annotated walrus.
func emitInlineVariableDeclaration(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	decl := n.(*ir.InlineVariableDeclaration)
	if decl.Value == nil {
		return decl.Name, nil
	}
	value, err := e.Emit(ctx, decl.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s := %s)", decl.Name, value), nil
}

// emitBinaryOp parenthesizes unconditionally. Rendering is then stable
// under any precedence convention without a precedence table.
func emitBinaryOp(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	op := n.(*ir.BinaryOp)
	lhs, err := e.Emit(ctx, op.LHS)
	if err != nil {
		return "", err
	}
	rhs, err := e.Emit(ctx, op.RHS)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", lhs, op.Op, rhs), nil
}

func emitUnaryOp(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	op := n.(*ir.UnaryOp)
	operand, err := e.Emit(ctx, op.Operand)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s%s)", op.Op, operand), nil
}

func emitIfStmt(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	stmt := n.(*ir.IfStmt)
	cond, err := e.Emit(ctx, stmt.Cond)
	if err != nil {
		return "", err
	}
	then, err := e.Emit(ctx, stmt.Then)
	if err != nil {
		return "", err
	}
	out := fmt.Sprintf("if %s:\n%s", cond, then)
	if stmt.Else != nil {
		elseBody, err := e.Emit(ctx, stmt.Else)
		if err != nil {
			return "", err
		}
		out += fmt.Sprintf("\n%selse:\n%s", ctx.Margin(), elseBody)
	}
	return out, nil
}

func emitIfExpr(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	expr := n.(*ir.IfExpr)
	cond, err := e.Emit(ctx, expr.Cond)
	if err != nil {
		return "", err
	}
	then, err := e.Emit(ctx, expr.Then)
	if err != nil {
		return "", err
	}
	elseExpr, err := e.Emit(ctx, expr.Else)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s if %s else %s)", then, cond, elseExpr), nil
}

func emitWhileStmt(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	stmt := n.(*ir.WhileStmt)
	cond, err := e.Emit(ctx, stmt.Cond)
	if err != nil {
		return "", err
	}
	body, err := e.Emit(ctx, stmt.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("while %s:\n%s", cond, body), nil
}

func emitForRangeLoopStmt(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	loop := n.(*ir.ForRangeLoopStmt)
	start, err := e.Emit(ctx, loop.Start)
	if err != nil {
		return "", err
	}
	end, err := e.Emit(ctx, loop.End)
	if err != nil {
		return "", err
	}
	rangeArgs := start + ", " + end
	if loop.Step != nil {
		step, err := e.Emit(ctx, loop.Step)
		if err != nil {
			return "", err
		}
		rangeArgs += ", " + step
	}
	body, err := e.Emit(ctx, loop.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for %s in range(%s):\n%s", loop.Variable, rangeArgs, body), nil
}
