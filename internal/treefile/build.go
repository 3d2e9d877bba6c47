package treefile

import (
	"fmt"
	"math/big"
	"time"

	"github.com/astir-lang/astir/internal/ir"
)

func buildStmt(spec *NodeSpec) (ir.Stmt, error) {
	if spec == nil {
		return nil, fmt.Errorf("missing statement")
	}
	switch spec.Kind {
	case "import":
		aliases, err := buildAliases(spec.Names)
		if err != nil {
			return nil, err
		}
		return ir.NewImportStmt(aliases...)
	case "from":
		aliases, err := buildAliases(spec.Names)
		if err != nil {
			return nil, err
		}
		return ir.NewImportFromStmt(spec.Module, spec.Level, aliases...)
	case "import_expr":
		aliases, err := buildAliases(spec.Names)
		if err != nil {
			return nil, err
		}
		return ir.NewImportExpr(aliases...)
	case "from_expr":
		aliases, err := buildAliases(spec.Names)
		if err != nil {
			return nil, err
		}
		return ir.NewImportFromExpr(spec.Module, spec.Level, aliases...)
	case "function":
		return buildFunction(spec)
	case "call":
		return buildCall(spec)
	case "return":
		if spec.Expr == nil {
			return ir.NewFunctionReturn(nil), nil
		}
		value, err := buildExpr(spec.Expr)
		if err != nil {
			return nil, err
		}
		return ir.NewFunctionReturn(value), nil
	case "assign":
		value, err := buildExpr(spec.Expr)
		if err != nil {
			return nil, err
		}
		return ir.NewVariableAssignment(spec.Name, value)
	case "decl":
		return buildDecl(spec)
	case "if":
		return buildIf(spec)
	case "while":
		cond, err := buildExpr(spec.Cond)
		if err != nil {
			return nil, err
		}
		body, err := buildBlock(spec.Body)
		if err != nil {
			return nil, err
		}
		return ir.NewWhileStmt(cond, body)
	case "for_range":
		return buildForRange(spec)
	default:
		return nil, fmt.Errorf("kind %q is not a statement", spec.Kind)
	}
}

func buildExpr(spec *NodeSpec) (ir.Expr, error) {
	if spec == nil {
		return nil, fmt.Errorf("missing expression")
	}
	switch spec.Kind {
	case "var":
		return ir.NewVariable(spec.Name)
	case "literal":
		return buildLiteral(spec)
	case "binary":
		lhs, err := buildExpr(spec.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := buildExpr(spec.RHS)
		if err != nil {
			return nil, err
		}
		return ir.NewBinaryOp(ir.OpCode(spec.Op), lhs, rhs)
	case "unary":
		operand, err := buildExpr(spec.Operand)
		if err != nil {
			return nil, err
		}
		return ir.NewUnaryOp(ir.OpCode(spec.Op), operand)
	case "call":
		return buildCall(spec)
	case "lambda":
		params, err := buildArguments(spec.Args)
		if err != nil {
			return nil, err
		}
		body, err := buildExpr(spec.Expr)
		if err != nil {
			return nil, err
		}
		return ir.NewLambdaExpr(params, body)
	case "if_expr":
		cond, err := buildExpr(spec.Cond)
		if err != nil {
			return nil, err
		}
		then, err := buildExpr(spec.ThenE)
		if err != nil {
			return nil, err
		}
		elseExpr, err := buildExpr(spec.ElseE)
		if err != nil {
			return nil, err
		}
		return ir.NewIfExpr(cond, then, elseExpr)
	case "while_expr":
		cond, err := buildExpr(spec.Cond)
		if err != nil {
			return nil, err
		}
		body, err := buildBlock(spec.Body)
		if err != nil {
			return nil, err
		}
		return ir.NewWhileExpr(cond, body)
	case "inline_decl":
		typ, err := buildTypeRef(spec.Type)
		if err != nil {
			return nil, err
		}
		var value ir.Expr
		if spec.Expr != nil {
			if value, err = buildExpr(spec.Expr); err != nil {
				return nil, err
			}
		}
		return ir.NewInlineVariableDeclaration(spec.Name, typ, value)
	case "import_expr":
		aliases, err := buildAliases(spec.Names)
		if err != nil {
			return nil, err
		}
		return ir.NewImportExpr(aliases...)
	case "from_expr":
		aliases, err := buildAliases(spec.Names)
		if err != nil {
			return nil, err
		}
		return ir.NewImportFromExpr(spec.Module, spec.Level, aliases...)
	default:
		return nil, fmt.Errorf("kind %q is not an expression", spec.Kind)
	}
}

func buildBlock(specs []*NodeSpec) (*ir.Block, error) {
	block := ir.NewBlock()
	for _, spec := range specs {
		stmt, err := buildStmt(spec)
		if err != nil {
			return nil, err
		}
		block.Append(stmt)
	}
	return block, nil
}

func buildAliases(specs []*AliasSpec) ([]*ir.AliasExpr, error) {
	aliases := make([]*ir.AliasExpr, 0, len(specs))
	for _, spec := range specs {
		alias, err := ir.NewAliasExpr(spec.Name, spec.As)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

func buildArguments(specs []*NodeSpec) (*ir.Arguments, error) {
	args := ir.NewArguments()
	for _, spec := range specs {
		typ, err := buildTypeRef(spec.Type)
		if err != nil {
			return nil, err
		}
		arg, err := ir.NewArgument(spec.Name, typ)
		if err != nil {
			return nil, err
		}
		args.Append(arg)
	}
	return args, nil
}

func buildFunction(spec *NodeSpec) (*ir.Function, error) {
	args, err := buildArguments(spec.Args)
	if err != nil {
		return nil, err
	}
	var returns *ir.TypeRef
	if spec.Returns != "" {
		if returns, err = buildTypeRef(spec.Returns); err != nil {
			return nil, err
		}
	}
	proto, err := ir.NewFunctionPrototype(spec.Name, args, returns)
	if err != nil {
		return nil, err
	}
	body, err := buildBlock(spec.Body)
	if err != nil {
		return nil, err
	}
	return ir.NewFunction(proto, body)
}

func buildCall(spec *NodeSpec) (*ir.FunctionCall, error) {
	args := make([]ir.Expr, 0, len(spec.Args))
	for _, argSpec := range spec.Args {
		arg, err := buildExpr(argSpec)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return ir.NewFunctionCall(spec.Callee, args...)
}

func buildDecl(spec *NodeSpec) (*ir.VariableDeclaration, error) {
	typ, err := buildTypeRef(spec.Type)
	if err != nil {
		return nil, err
	}
	var value ir.Expr
	if spec.Expr != nil {
		if value, err = buildExpr(spec.Expr); err != nil {
			return nil, err
		}
	}
	return ir.NewVariableDeclaration(spec.Name, typ, value)
}

func buildIf(spec *NodeSpec) (*ir.IfStmt, error) {
	cond, err := buildExpr(spec.Cond)
	if err != nil {
		return nil, err
	}
	then, err := buildBlock(spec.Then)
	if err != nil {
		return nil, err
	}
	var elseBlock *ir.Block
	if len(spec.Else) > 0 {
		if elseBlock, err = buildBlock(spec.Else); err != nil {
			return nil, err
		}
	}
	return ir.NewIfStmt(cond, then, elseBlock)
}

func buildForRange(spec *NodeSpec) (*ir.ForRangeLoopStmt, error) {
	start, err := buildExpr(spec.Start)
	if err != nil {
		return nil, err
	}
	end, err := buildExpr(spec.End)
	if err != nil {
		return nil, err
	}
	var step ir.Expr
	if spec.Step != nil {
		if step, err = buildExpr(spec.Step); err != nil {
			return nil, err
		}
	}
	body, err := buildBlock(spec.Body)
	if err != nil {
		return nil, err
	}
	return ir.NewForRangeLoopStmt(spec.Var, start, end, step, body)
}

var typeKinds = map[string]ir.TypeKind{
	"bool":      ir.TypeBoolean,
	"boolean":   ir.TypeBoolean,
	"int8":      ir.TypeInt8,
	"int16":     ir.TypeInt16,
	"int32":     ir.TypeInt32,
	"int64":     ir.TypeInt64,
	"int128":    ir.TypeInt128,
	"uint8":     ir.TypeUInt8,
	"uint16":    ir.TypeUInt16,
	"uint32":    ir.TypeUInt32,
	"uint64":    ir.TypeUInt64,
	"uint128":   ir.TypeUInt128,
	"float16":   ir.TypeFloat16,
	"float32":   ir.TypeFloat32,
	"float64":   ir.TypeFloat64,
	"complex32": ir.TypeComplex32,
	"complex64": ir.TypeComplex64,
	"char":      ir.TypeUTF8Char,
	"string":    ir.TypeUTF8String,
	"date":      ir.TypeDate,
	"time":      ir.TypeTime,
	"datetime":  ir.TypeDateTime,
	"timestamp": ir.TypeTimestamp,
	"none":      ir.TypeNone,
}

func buildTypeRef(name string) (*ir.TypeRef, error) {
	kind, ok := typeKinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return ir.NewTypeRef(kind)
}

func buildLiteral(spec *NodeSpec) (*ir.Literal, error) {
	kind, ok := typeKinds[spec.Type]
	if !ok {
		return nil, fmt.Errorf("literal: unknown type %q", spec.Type)
	}
	if kind == ir.TypeNone {
		return ir.NewLiteralNone(), nil
	}
	if spec.Value.IsZero() {
		return nil, fmt.Errorf("literal of type %q requires a value", spec.Type)
	}

	switch kind {
	case ir.TypeBoolean:
		var v bool
		if err := spec.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("boolean literal: %w", err)
		}
		return ir.NewLiteralBoolean(v), nil

	case ir.TypeInt8, ir.TypeInt16, ir.TypeInt32, ir.TypeInt64:
		var v int64
		if err := spec.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s literal: %w", spec.Type, err)
		}
		switch kind {
		case ir.TypeInt8:
			return ir.NewLiteralInt8(v)
		case ir.TypeInt16:
			return ir.NewLiteralInt16(v)
		case ir.TypeInt32:
			return ir.NewLiteralInt32(v)
		default:
			return ir.NewLiteralInt64(v), nil
		}

	case ir.TypeUInt8, ir.TypeUInt16, ir.TypeUInt32, ir.TypeUInt64:
		var v uint64
		if err := spec.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s literal: %w", spec.Type, err)
		}
		switch kind {
		case ir.TypeUInt8:
			return ir.NewLiteralUInt8(v)
		case ir.TypeUInt16:
			return ir.NewLiteralUInt16(v)
		case ir.TypeUInt32:
			return ir.NewLiteralUInt32(v)
		default:
			return ir.NewLiteralUInt64(v), nil
		}

	case ir.TypeInt128, ir.TypeUInt128:
		var raw string
		if err := spec.Value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s literal takes a decimal string: %w", spec.Type, err)
		}
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, fmt.Errorf("%s literal: %q is not a decimal integer", spec.Type, raw)
		}
		if kind == ir.TypeInt128 {
			return ir.NewLiteralInt128(v)
		}
		return ir.NewLiteralUInt128(v)

	case ir.TypeFloat16, ir.TypeFloat32, ir.TypeFloat64:
		var v float64
		if err := spec.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s literal: %w", spec.Type, err)
		}
		switch kind {
		case ir.TypeFloat16:
			return ir.NewLiteralFloat16(v)
		case ir.TypeFloat32:
			return ir.NewLiteralFloat32(v)
		default:
			return ir.NewLiteralFloat64(v), nil
		}

	case ir.TypeComplex32, ir.TypeComplex64:
		var parts [2]float64
		if err := spec.Value.Decode(&parts); err != nil {
			return nil, fmt.Errorf("%s literal takes [real, imag]: %w", spec.Type, err)
		}
		v := complex(parts[0], parts[1])
		if kind == ir.TypeComplex32 {
			return ir.NewLiteralComplex32(v)
		}
		return ir.NewLiteralComplex64(v), nil

	case ir.TypeUTF8Char, ir.TypeUTF8String:
		var v string
		if err := spec.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s literal: %w", spec.Type, err)
		}
		if kind == ir.TypeUTF8Char {
			return ir.NewLiteralUTF8Char(v)
		}
		return ir.NewLiteralUTF8String(v)

	case ir.TypeDate, ir.TypeTime, ir.TypeDateTime, ir.TypeTimestamp:
		var raw string
		if err := spec.Value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s literal: %w", spec.Type, err)
		}
		return buildTemporal(kind, raw)
	}
	return nil, fmt.Errorf("literal: unsupported type %q", spec.Type)
}

var temporalLayouts = map[ir.TypeKind]string{
	ir.TypeDate:      "2006-01-02",
	ir.TypeTime:      "15:04:05",
	ir.TypeDateTime:  "2006-01-02T15:04:05",
	ir.TypeTimestamp: "2006-01-02T15:04:05",
}

func buildTemporal(kind ir.TypeKind, raw string) (*ir.Literal, error) {
	layout := temporalLayouts[kind]
	v, err := time.Parse(layout, raw)
	if err != nil {
		return nil, fmt.Errorf("%s literal %q: want layout %s", kind, raw, layout)
	}
	switch kind {
	case ir.TypeDate:
		return ir.NewLiteralDate(v), nil
	case ir.TypeTime:
		return ir.NewLiteralTime(v), nil
	case ir.TypeDateTime:
		return ir.NewLiteralDateTime(v), nil
	default:
		return ir.NewLiteralTimestamp(v), nil
	}
}
