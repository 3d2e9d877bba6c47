package ir

import "fmt"

// Argument is a single formal parameter: a name and a type annotation.
// Default values are a front-end concern and are not modeled here.
type Argument struct {
	base
	Name string
	Type *TypeRef
}

// NewArgument creates a formal parameter. Both the name and the type
// annotation are required.
func NewArgument(name string, typ *TypeRef) (*Argument, error) {
	if name == "" {
		return nil, constructErr(KindArgument, "argument requires a name")
	}
	if typ == nil {
		return nil, constructErr(KindArgument, "argument %q requires a type", name)
	}
	return &Argument{Name: name, Type: typ}, nil
}

func (a *Argument) Kind() Kind { return KindArgument }
func (a *Argument) DiagName() string {
	return fmt.Sprintf("Argument %q", a.Name)
}

// Arguments is the ordered formal parameter list of a callable. Name
// uniqueness is not checked here; that is a front-end responsibility.
type Arguments struct {
	base
	Args []*Argument
}

// NewArguments creates a parameter list in the given order.
func NewArguments(args ...*Argument) *Arguments {
	return &Arguments{Args: args}
}

// Append adds parameters to the end of the list.
func (a *Arguments) Append(args ...*Argument) {
	a.Args = append(a.Args, args...)
}

func (a *Arguments) Kind() Kind       { return KindArguments }
func (a *Arguments) DiagName() string { return "Arguments" }

// FunctionPrototype is the callable signature: name, parameters and an
// optional return type annotation.
type FunctionPrototype struct {
	base
	Name       string
	Args       *Arguments
	ReturnType *TypeRef // nil when the function declares no return type
}

// NewFunctionPrototype creates a signature. A nil args list is normalized
// to an empty one; the return type may be nil.
func NewFunctionPrototype(name string, args *Arguments, returnType *TypeRef) (*FunctionPrototype, error) {
	if name == "" {
		return nil, constructErr(KindFunctionPrototype, "prototype requires a name")
	}
	if args == nil {
		args = NewArguments()
	}
	return &FunctionPrototype{Name: name, Args: args, ReturnType: returnType}, nil
}

func (p *FunctionPrototype) Kind() Kind { return KindFunctionPrototype }
func (p *FunctionPrototype) DiagName() string {
	return fmt.Sprintf("FunctionPrototype %q", p.Name)
}

// Function is a named callable definition: a prototype plus a body block.
type Function struct {
	base
	Prototype *FunctionPrototype
	Body      *Block
}

// NewFunction creates a function definition. Both the prototype and the
// body are required; an empty body must still be an (empty) Block.
func NewFunction(prototype *FunctionPrototype, body *Block) (*Function, error) {
	if prototype == nil {
		return nil, constructErr(KindFunction, "function requires a prototype")
	}
	if body == nil {
		return nil, constructErr(KindFunction, "function %q requires a body block", prototype.Name)
	}
	return &Function{Prototype: prototype, Body: body}, nil
}

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) stmtNode()  {}
func (f *Function) DiagName() string {
	return fmt.Sprintf("Function %q", f.Prototype.Name)
}

// FunctionCall invokes a callable by name with ordered argument
// expressions. The callee is a weak name reference, not a structural edge
// to a Function node. A call is an expression and may also stand alone as
// a statement.
type FunctionCall struct {
	base
	Callee string
	Args   []Expr
}

// NewFunctionCall creates a call expression.
func NewFunctionCall(callee string, args ...Expr) (*FunctionCall, error) {
	if callee == "" {
		return nil, constructErr(KindFunctionCall, "call requires a callee name")
	}
	for i, arg := range args {
		if arg == nil {
			return nil, constructErr(KindFunctionCall, "call to %q: argument %d is nil", callee, i)
		}
	}
	return &FunctionCall{Callee: callee, Args: args}, nil
}

func (c *FunctionCall) Kind() Kind { return KindFunctionCall }
func (c *FunctionCall) exprNode()  {}
func (c *FunctionCall) stmtNode()  {}
func (c *FunctionCall) DiagName() string {
	return fmt.Sprintf("FunctionCall %q", c.Callee)
}

// FunctionReturn returns an optional value from the enclosing callable.
type FunctionReturn struct {
	base
	Value Expr // nil for a bare return
}

// NewFunctionReturn creates a return statement; value may be nil.
func NewFunctionReturn(value Expr) *FunctionReturn {
	return &FunctionReturn{Value: value}
}

func (r *FunctionReturn) Kind() Kind       { return KindFunctionReturn }
func (r *FunctionReturn) stmtNode()        {}
func (r *FunctionReturn) DiagName() string { return "FunctionReturn" }

// LambdaExpr is an anonymous single-expression callable.
type LambdaExpr struct {
	base
	Params *Arguments
	Body   Expr
}

// NewLambdaExpr creates a lambda. The body expression is required; a nil
// parameter list is normalized to an empty one.
func NewLambdaExpr(params *Arguments, body Expr) (*LambdaExpr, error) {
	if body == nil {
		return nil, constructErr(KindLambdaExpr, "lambda requires a body expression")
	}
	if params == nil {
		params = NewArguments()
	}
	return &LambdaExpr{Params: params, Body: body}, nil
}

func (l *LambdaExpr) Kind() Kind       { return KindLambdaExpr }
func (l *LambdaExpr) exprNode()        {}
func (l *LambdaExpr) DiagName() string { return "LambdaExpr" }
