package ir

import "fmt"

// Variable references a previously declared binding by name. This is a
// weak reference: resolution against an actual declaration is a front-end
// concern (see the symtab package), which keeps the tree free of cycles.
type Variable struct {
	base
	Name string
}

// NewVariable creates a variable reference.
func NewVariable(name string) (*Variable, error) {
	if name == "" {
		return nil, constructErr(KindVariable, "variable requires a name")
	}
	return &Variable{Name: name}, nil
}

func (v *Variable) Kind() Kind { return KindVariable }
func (v *Variable) exprNode()  {}
func (v *Variable) DiagName() string {
	return fmt.Sprintf("Variable %q", v.Name)
}

// VariableAssignment assigns a value expression to a named binding.
type VariableAssignment struct {
	base
	Name  string
	Value Expr
}

// NewVariableAssignment creates an assignment statement.
func NewVariableAssignment(name string, value Expr) (*VariableAssignment, error) {
	if name == "" {
		return nil, constructErr(KindVariableAssignment, "assignment requires a target name")
	}
	if value == nil {
		return nil, constructErr(KindVariableAssignment, "assignment to %q requires a value", name)
	}
	return &VariableAssignment{Name: name, Value: value}, nil
}

func (v *VariableAssignment) Kind() Kind { return KindVariableAssignment }
func (v *VariableAssignment) stmtNode()  {}
func (v *VariableAssignment) DiagName() string {
	return fmt.Sprintf("VariableAssignment %q", v.Name)
}

// VariableDeclaration declares a typed binding with an optional
// initializer, as a statement.
type VariableDeclaration struct {
	base
	Name  string
	Type  *TypeRef
	Value Expr // nil when declared without an initializer
}

// NewVariableDeclaration creates a declaration statement.
func NewVariableDeclaration(name string, typ *TypeRef, value Expr) (*VariableDeclaration, error) {
	if err := checkDeclaration(KindVariableDeclaration, name, typ); err != nil {
		return nil, err
	}
	return &VariableDeclaration{Name: name, Type: typ, Value: value}, nil
}

func (v *VariableDeclaration) Kind() Kind { return KindVariableDeclaration }
func (v *VariableDeclaration) stmtNode()  {}
func (v *VariableDeclaration) DiagName() string {
	return fmt.Sprintf("VariableDeclaration %q", v.Name)
}

// InlineVariableDeclaration is the expression form of a declaration, for
// positions such as loop headers where the declaration yields its value.
type InlineVariableDeclaration struct {
	base
	Name  string
	Type  *TypeRef
	Value Expr
}

// NewInlineVariableDeclaration creates a declaration expression.
func NewInlineVariableDeclaration(name string, typ *TypeRef, value Expr) (*InlineVariableDeclaration, error) {
	if err := checkDeclaration(KindInlineVariableDeclaration, name, typ); err != nil {
		return nil, err
	}
	return &InlineVariableDeclaration{Name: name, Type: typ, Value: value}, nil
}

func (v *InlineVariableDeclaration) Kind() Kind { return KindInlineVariableDeclaration }
func (v *InlineVariableDeclaration) exprNode()  {}
func (v *InlineVariableDeclaration) DiagName() string {
	return fmt.Sprintf("InlineVariableDeclaration %q", v.Name)
}

func checkDeclaration(k Kind, name string, typ *TypeRef) error {
	if name == "" {
		return constructErr(k, "declaration requires a name")
	}
	if typ == nil {
		return constructErr(k, "declaration of %q requires a type", name)
	}
	return nil
}
