package python

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astir-lang/astir/internal/ir"
)

func render(t *testing.T, node ir.Node) string {
	t.Helper()
	out, err := New().Render(node)
	require.NoError(t, err)
	return out
}

func variable(t *testing.T, name string) *ir.Variable {
	t.Helper()
	v, err := ir.NewVariable(name)
	require.NoError(t, err)
	return v
}

func argument(t *testing.T, name string, typ *ir.TypeRef) *ir.Argument {
	t.Helper()
	arg, err := ir.NewArgument(name, typ)
	require.NoError(t, err)
	return arg
}

func alias(t *testing.T, name, as string) *ir.AliasExpr {
	t.Helper()
	a, err := ir.NewAliasExpr(name, as)
	require.NoError(t, err)
	return a
}

func function(t *testing.T, name string, args *ir.Arguments, returns *ir.TypeRef, body *ir.Block) *ir.Function {
	t.Helper()
	proto, err := ir.NewFunctionPrototype(name, args, returns)
	require.NoError(t, err)
	fn, err := ir.NewFunction(proto, body)
	require.NoError(t, err)
	return fn
}

func int32Lit(t *testing.T, v int64) *ir.Literal {
	t.Helper()
	lit, err := ir.NewLiteralInt32(v)
	require.NoError(t, err)
	return lit
}

func TestFunctionRendering(t *testing.T) {
	sum, err := ir.NewBinaryOp(ir.OpAdd, variable(t, "x"), variable(t, "y"))
	require.NoError(t, err)
	body := ir.NewBlock(ir.NewFunctionReturn(sum))
	args := ir.NewArguments(
		argument(t, "x", ir.Int32Type()),
		argument(t, "y", ir.Int32Type()),
	)
	fn := function(t, "add", args, ir.Int32Type(), body)

	assert.Equal(t, "def add(x: int, y: int) -> int:\n    return (x + y)", render(t, fn))
}

func TestFunctionWithoutReturnTypeOmitsArrow(t *testing.T) {
	fn := function(t, "noop", nil, nil, ir.NewBlock())
	assert.Equal(t, "def noop():\n    pass", render(t, fn))
}

func TestEmptyBlockRendersPass(t *testing.T) {
	fn := function(t, "f", nil, nil, ir.NewBlock())
	out := render(t, fn)
	assert.Equal(t, "def f():\n    pass", out)
	// Determinism: the same tree renders identically again.
	assert.Equal(t, out, render(t, fn))
}

func TestNestedFunctionIndentation(t *testing.T) {
	inner := function(t, "inner", nil, nil, ir.NewBlock())
	outer := function(t, "outer", nil, nil, ir.NewBlock(inner))

	assert.Equal(t, "def outer():\n    def inner():\n        pass", render(t, outer))
}

func TestCustomIndentUnit(t *testing.T) {
	fn := function(t, "f", nil, nil, ir.NewBlock())
	out, err := New(WithIndent("\t")).Render(fn)
	require.NoError(t, err)
	assert.Equal(t, "def f():\n\tpass", out)
}

func TestFunctionReturn(t *testing.T) {
	assert.Equal(t, "return", render(t, ir.NewFunctionReturn(nil)))
	assert.Equal(t, "return x", render(t, ir.NewFunctionReturn(variable(t, "x"))))
}

func TestFunctionCall(t *testing.T) {
	call, err := ir.NewFunctionCall("print", variable(t, "x"), int32Lit(t, 2))
	require.NoError(t, err)
	assert.Equal(t, "print(x, 2)", render(t, call))

	empty, err := ir.NewFunctionCall("flush")
	require.NoError(t, err)
	assert.Equal(t, "flush()", render(t, empty))
}

func TestVariableAssignment(t *testing.T) {
	assign, err := ir.NewVariableAssignment("count", int32Lit(t, 42))
	require.NoError(t, err)
	assert.Equal(t, "count = 42", render(t, assign))
}

func TestVariableDeclaration(t *testing.T) {
	decl, err := ir.NewVariableDeclaration("count", ir.Int32Type(), int32Lit(t, 1))
	require.NoError(t, err)
	assert.Equal(t, "count: int = 1", render(t, decl))

	bare, err := ir.NewVariableDeclaration("count", ir.Int32Type(), nil)
	require.NoError(t, err)
	assert.Equal(t, "count: int", render(t, bare))
}

func TestInlineVariableDeclaration(t *testing.T) {
	decl, err := ir.NewInlineVariableDeclaration("n", ir.Int32Type(), int32Lit(t, 5))
	require.NoError(t, err)
	assert.Equal(t, "(n := 5)", render(t, decl))
}

func TestBinaryOpFullParenthesization(t *testing.T) {
	mul, err := ir.NewBinaryOp(ir.OpMul, variable(t, "b"), variable(t, "c"))
	require.NoError(t, err)
	add, err := ir.NewBinaryOp(ir.OpAdd, variable(t, "a"), mul)
	require.NoError(t, err)
	assert.Equal(t, "(a + (b * c))", render(t, add))
}

func TestUnaryOp(t *testing.T) {
	neg, err := ir.NewUnaryOp(ir.OpSub, variable(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "(-x)", render(t, neg))

	not, err := ir.NewUnaryOp(ir.OpNot, variable(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "(not x)", render(t, not))
}

func TestIfStmt(t *testing.T) {
	cond, err := ir.NewBinaryOp(ir.OpLt, variable(t, "x"), int32Lit(t, 10))
	require.NoError(t, err)
	thenAssign, err := ir.NewVariableAssignment("y", int32Lit(t, 1))
	require.NoError(t, err)
	elseAssign, err := ir.NewVariableAssignment("y", int32Lit(t, 2))
	require.NoError(t, err)

	partial, err := ir.NewIfStmt(cond, ir.NewBlock(thenAssign), nil)
	require.NoError(t, err)
	assert.Equal(t, "if (x < 10):\n    y = 1", render(t, partial))

	full, err := ir.NewIfStmt(cond, ir.NewBlock(thenAssign), ir.NewBlock(elseAssign))
	require.NoError(t, err)
	assert.Equal(t, "if (x < 10):\n    y = 1\nelse:\n    y = 2", render(t, full))
}

func TestIfExpr(t *testing.T) {
	expr, err := ir.NewIfExpr(variable(t, "cond"), variable(t, "a"), variable(t, "b"))
	require.NoError(t, err)
	assert.Equal(t, "(a if cond else b)", render(t, expr))
}

func TestWhileStmt(t *testing.T) {
	loop, err := ir.NewWhileStmt(ir.NewLiteralBoolean(true), ir.NewBlock())
	require.NoError(t, err)
	assert.Equal(t, "while True:\n    pass", render(t, loop))
}

func TestForRangeLoopStmt(t *testing.T) {
	body := ir.NewBlock()
	loop, err := ir.NewForRangeLoopStmt("i", int32Lit(t, 0), int32Lit(t, 10), nil, body)
	require.NoError(t, err)
	assert.Equal(t, "for i in range(0, 10):\n    pass", render(t, loop))

	stepped, err := ir.NewForRangeLoopStmt("i", int32Lit(t, 0), int32Lit(t, 10), int32Lit(t, 2), body)
	require.NoError(t, err)
	assert.Equal(t, "for i in range(0, 10, 2):\n    pass", render(t, stepped))
}

func TestLambdaExpr(t *testing.T) {
	sum, err := ir.NewBinaryOp(ir.OpAdd, variable(t, "x"), variable(t, "y"))
	require.NoError(t, err)
	params := ir.NewArguments(
		argument(t, "x", ir.Int32Type()),
		argument(t, "y", ir.Int32Type()),
	)
	lambda, err := ir.NewLambdaExpr(params, sum)
	require.NoError(t, err)
	// Lambda parameters carry no annotations.
	assert.Equal(t, "lambda x, y: (x + y)", render(t, lambda))

	thunk, err := ir.NewLambdaExpr(nil, int32Lit(t, 1))
	require.NoError(t, err)
	assert.Equal(t, "lambda: 1", render(t, thunk))
}

func TestModuleRendering(t *testing.T) {
	imp, err := ir.NewImportStmt(alias(t, "os", ""))
	require.NoError(t, err)
	fn := function(t, "main", nil, nil, ir.NewBlock())

	mod := ir.NewModule("demo")
	mod.Append(imp, fn)

	assert.Equal(t, "import os\ndef main():\n    pass", render(t, mod))
}

func TestLiteralTokens(t *testing.T) {
	big128, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	require.True(t, ok)
	i128, err := ir.NewLiteralInt128(big128)
	require.NoError(t, err)

	f32, err := ir.NewLiteralFloat32(2.5)
	require.NoError(t, err)
	c64 := ir.NewLiteralComplex64(complex(1, -2))
	char, err := ir.NewLiteralUTF8Char("a")
	require.NoError(t, err)
	str, err := ir.NewLiteralUTF8String("it's\na test")
	require.NoError(t, err)
	date := ir.NewLiteralDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	stamp := ir.NewLiteralTimestamp(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))

	cases := []struct {
		node ir.Node
		want string
	}{
		{ir.NewLiteralBoolean(true), "True"},
		{ir.NewLiteralBoolean(false), "False"},
		{int32Lit(t, 42), "42"},
		{int32Lit(t, -7), "-7"},
		{ir.NewLiteralUInt64(18446744073709551615), "18446744073709551615"},
		{i128, "170141183460469231731687303715884105727"},
		{ir.NewLiteralFloat64(42), "42.0"},
		{f32, "2.5"},
		{c64, "complex(1.0, -2.0)"},
		{char, "'a'"},
		{str, `'it\'s\na test'`},
		{date, "'2024-06-01'"},
		{stamp, "'2024-06-01T12:30:00'"},
		{ir.NewLiteralNone(), "None"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render(t, tc.node))
	}
}

func TestTypeRefWidening(t *testing.T) {
	cases := []struct {
		ref  *ir.TypeRef
		want string
	}{
		{ir.Int8Type(), "int"},
		{ir.Int128Type(), "int"},
		{ir.UInt16Type(), "int"},
		{ir.Float16Type(), "float"},
		{ir.Float64Type(), "float"},
		{ir.Complex32Type(), "complex"},
		{ir.BooleanType(), "bool"},
		{ir.UTF8CharType(), "str"},
		{ir.UTF8StringType(), "str"},
		{ir.DateType(), "datetime.date"},
		{ir.TimeType(), "datetime.time"},
		{ir.DateTimeType(), "datetime.datetime"},
		{ir.TimestampType(), "datetime.datetime"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render(t, tc.ref), "type %s", tc.ref.Type)
	}
}

func TestImportStmt(t *testing.T) {
	imp, err := ir.NewImportStmt(alias(t, "os", ""), alias(t, "sys", ""))
	require.NoError(t, err)
	assert.Equal(t, "import os, sys", render(t, imp))

	renamed, err := ir.NewImportStmt(alias(t, "numpy", "np"))
	require.NoError(t, err)
	assert.Equal(t, "import numpy as np", render(t, renamed))
}

func TestImportFromStmt(t *testing.T) {
	plain, err := ir.NewImportFromStmt("math", 0, alias(t, "sqrt", ""), alias(t, "pi", ""))
	require.NoError(t, err)
	assert.Equal(t, "from math import sqrt, pi", render(t, plain))

	relative, err := ir.NewImportFromStmt("pkg", 1, alias(t, "thing", "renamed"))
	require.NoError(t, err)
	assert.Equal(t, "from .pkg import thing as renamed", render(t, relative))

	dotsOnly, err := ir.NewImportFromStmt("", 2, alias(t, "sibling", ""))
	require.NoError(t, err)
	assert.Equal(t, "from .. import sibling", render(t, dotsOnly))
}

func TestImportExprRewriting(t *testing.T) {
	single, err := ir.NewImportExpr(alias(t, "os", ""))
	require.NoError(t, err)
	assert.Equal(t, "module = __import__('os')", render(t, single))

	double, err := ir.NewImportExpr(alias(t, "os", ""), alias(t, "sys", ""))
	require.NoError(t, err)
	assert.Equal(t,
		"module1, module2 = (__import__('os'), __import__('sys'))",
		render(t, double))
}

func TestImportFromExprRewriting(t *testing.T) {
	single, err := ir.NewImportFromExpr("math", 0, alias(t, "sqrt", ""))
	require.NoError(t, err)
	assert.Equal(t,
		"name = getattr(__import__('math', fromlist=['sqrt']), 'sqrt')",
		render(t, single))

	double, err := ir.NewImportFromExpr("math", 0, alias(t, "sqrt", ""), alias(t, "pi", ""))
	require.NoError(t, err)
	assert.Equal(t,
		"name1, name2 = (getattr(__import__('math', fromlist=['sqrt']), 'sqrt'), "+
			"getattr(__import__('math', fromlist=['pi']), 'pi'))",
		render(t, double))

	relative, err := ir.NewImportFromExpr("pkg", 1, alias(t, "thing", ""))
	require.NoError(t, err)
	assert.Equal(t,
		"name = getattr(__import__('.pkg', fromlist=['thing']), 'thing')",
		render(t, relative))
}

func TestWhileExprIsDeliberatelyUnhandled(t *testing.T) {
	loop, err := ir.NewWhileExpr(ir.NewLiteralBoolean(true), ir.NewBlock())
	require.NoError(t, err)

	tr := New()
	assert.False(t, tr.Handles(ir.KindWhileExpr))

	out, err := tr.Render(loop)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "WhileExpr")
}

func TestRenderFailureDiscardsSiblingOutput(t *testing.T) {
	assign, err := ir.NewVariableAssignment("a", int32Lit(t, 1))
	require.NoError(t, err)
	loop, err := ir.NewWhileExpr(ir.NewLiteralBoolean(true), ir.NewBlock())
	require.NoError(t, err)
	bad, err := ir.NewVariableAssignment("b", loop)
	require.NoError(t, err)

	mod := ir.NewModule("demo")
	mod.Append(assign, bad)

	out, err := New().Render(mod)
	require.Error(t, err)
	// No partial text for the already-rendered sibling.
	assert.Empty(t, out)
}
