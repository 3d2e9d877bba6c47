// Package ir defines the language-agnostic intermediate representation for
// astir. Front ends (parsers, DSL builders, hand-assembled trees) construct
// one tree through the constructors in this package and hand it to a code
// generation backend; the tree itself carries no target-syntax knowledge.
//
// Every node satisfies the Node interface and reports exactly one Kind out
// of a closed, enumerable set. Expression and statement capability is
// modeled with marker interfaces so that illegal nesting fails to compile
// instead of rendering garbage. Ownership is strictly tree shaped: a node
// is owned by exactly one parent, and cross references (a Variable naming a
// binding) are plain identifiers resolved by a collaborator symbol table,
// never structural edges.
package ir

import (
	"fmt"

	"github.com/astir-lang/astir/internal/position"
)

// Kind identifies the concrete variant of a node. The set is closed for
// the rendering engine: adding a backend never extends it, adding a node
// variant extends it and obligates every backend.
type Kind int

const (
	KindInvalid Kind = iota

	// Containers.
	KindModule
	KindBlock

	// Import constructs.
	KindAliasExpr
	KindImportStmt
	KindImportExpr
	KindImportFromStmt
	KindImportFromExpr

	// Callable constructs.
	KindArgument
	KindArguments
	KindFunctionPrototype
	KindFunction
	KindFunctionCall
	KindFunctionReturn
	KindLambdaExpr

	// Variable constructs.
	KindVariable
	KindVariableAssignment
	KindVariableDeclaration
	KindInlineVariableDeclaration

	// Operators.
	KindBinaryOp
	KindUnaryOp

	// Control flow.
	KindIfStmt
	KindIfExpr
	KindWhileStmt
	KindWhileExpr
	KindForRangeLoopStmt

	// Values and type annotations.
	KindLiteral
	KindTypeRef
)

var kindNames = map[Kind]string{
	KindInvalid:                   "Invalid",
	KindModule:                    "Module",
	KindBlock:                     "Block",
	KindAliasExpr:                 "AliasExpr",
	KindImportStmt:                "ImportStmt",
	KindImportExpr:                "ImportExpr",
	KindImportFromStmt:            "ImportFromStmt",
	KindImportFromExpr:            "ImportFromExpr",
	KindArgument:                  "Argument",
	KindArguments:                 "Arguments",
	KindFunctionPrototype:         "FunctionPrototype",
	KindFunction:                  "Function",
	KindFunctionCall:              "FunctionCall",
	KindFunctionReturn:            "FunctionReturn",
	KindLambdaExpr:                "LambdaExpr",
	KindVariable:                  "Variable",
	KindVariableAssignment:        "VariableAssignment",
	KindVariableDeclaration:       "VariableDeclaration",
	KindInlineVariableDeclaration: "InlineVariableDeclaration",
	KindBinaryOp:                  "BinaryOp",
	KindUnaryOp:                   "UnaryOp",
	KindIfStmt:                    "IfStmt",
	KindIfExpr:                    "IfExpr",
	KindWhileStmt:                 "WhileStmt",
	KindWhileExpr:                 "WhileExpr",
	KindForRangeLoopStmt:          "ForRangeLoopStmt",
	KindLiteral:                   "Literal",
	KindTypeRef:                   "TypeRef",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is the base interface for every tree element.
type Node interface {
	// Kind returns the discriminant identifying the concrete variant.
	Kind() Kind
	// GetSpan returns the source span attached to this node, if any.
	// Spans are carried opaquely; the core never interprets them.
	GetSpan() position.Span
	// DiagName returns a human-readable name for diagnostics.
	DiagName() string
}

// Expr marks nodes that yield a value and may nest inside another
// expression or statement.
type Expr interface {
	Node
	exprNode()
}

// Stmt marks nodes that are only valid as direct members of a Block.
type Stmt interface {
	Node
	stmtNode()
}

// base carries the attributes common to every node.
type base struct {
	span position.Span
}

func (b *base) GetSpan() position.Span  { return b.span }
func (b *base) SetSpan(s position.Span) { b.span = s }

// ConstructError reports a node built with a value outside its declared
// width or with a structurally required child missing. It is raised at
// construction time, never deferred to rendering.
type ConstructError struct {
	Kind   Kind
	Detail string
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("construct %s: %s", e.Kind, e.Detail)
}

func constructErr(k Kind, format string, args ...interface{}) error {
	return &ConstructError{Kind: k, Detail: fmt.Sprintf(format, args...)}
}
