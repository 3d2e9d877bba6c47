package ir

import "fmt"

// OpCode is the operator token of a unary or binary operation. The IR
// does not interpret it; it is emitted verbatim by backends, which keeps
// the operator set open without widening the node taxonomy.
type OpCode string

// Common operator codes. The set is advisory, not closed: front ends may
// use any token their target understands.
const (
	OpAdd OpCode = "+"
	OpSub OpCode = "-"
	OpMul OpCode = "*"
	OpDiv OpCode = "/"
	OpMod OpCode = "%"

	OpEq  OpCode = "=="
	OpNe  OpCode = "!="
	OpLt  OpCode = "<"
	OpLe  OpCode = "<="
	OpGt  OpCode = ">"
	OpGe  OpCode = ">="

	OpAnd OpCode = "and"
	OpOr  OpCode = "or"
	OpNot OpCode = "not "
)

// BinaryOp applies an infix operator to two operand expressions.
type BinaryOp struct {
	base
	Op  OpCode
	LHS Expr
	RHS Expr
}

// NewBinaryOp creates a binary operation; both operands are required.
func NewBinaryOp(op OpCode, lhs, rhs Expr) (*BinaryOp, error) {
	if op == "" {
		return nil, constructErr(KindBinaryOp, "binary operation requires an operator")
	}
	if lhs == nil || rhs == nil {
		return nil, constructErr(KindBinaryOp, "binary %q requires both operands", op)
	}
	return &BinaryOp{Op: op, LHS: lhs, RHS: rhs}, nil
}

func (b *BinaryOp) Kind() Kind { return KindBinaryOp }
func (b *BinaryOp) exprNode()  {}
func (b *BinaryOp) DiagName() string {
	return fmt.Sprintf("BinaryOp %q", b.Op)
}

// UnaryOp applies a prefix operator to one operand expression.
type UnaryOp struct {
	base
	Op      OpCode
	Operand Expr
}

// NewUnaryOp creates a unary operation; the operand is required.
func NewUnaryOp(op OpCode, operand Expr) (*UnaryOp, error) {
	if op == "" {
		return nil, constructErr(KindUnaryOp, "unary operation requires an operator")
	}
	if operand == nil {
		return nil, constructErr(KindUnaryOp, "unary %q requires an operand", op)
	}
	return &UnaryOp{Op: op, Operand: operand}, nil
}

func (u *UnaryOp) Kind() Kind { return KindUnaryOp }
func (u *UnaryOp) exprNode()  {}
func (u *UnaryOp) DiagName() string {
	return fmt.Sprintf("UnaryOp %q", u.Op)
}
