package ir

import "fmt"

// AliasExpr is an imported name with an optional rename.
type AliasExpr struct {
	base
	Name   string
	AsName string // empty when the name is not renamed
}

// NewAliasExpr creates an import alias; asName may be empty.
func NewAliasExpr(name, asName string) (*AliasExpr, error) {
	if name == "" {
		return nil, constructErr(KindAliasExpr, "alias requires a name")
	}
	return &AliasExpr{Name: name, AsName: asName}, nil
}

func (a *AliasExpr) Kind() Kind { return KindAliasExpr }
func (a *AliasExpr) exprNode()  {}
func (a *AliasExpr) DiagName() string {
	return fmt.Sprintf("AliasExpr %q", a.Name)
}

// ImportStmt imports modules as a standalone statement. Names render in
// encounter order with no reordering and no deduplication.
type ImportStmt struct {
	base
	Names []*AliasExpr
}

// NewImportStmt creates an import statement over at least one module name.
func NewImportStmt(names ...*AliasExpr) (*ImportStmt, error) {
	if err := checkImportNames(KindImportStmt, names); err != nil {
		return nil, err
	}
	return &ImportStmt{Names: names}, nil
}

func (i *ImportStmt) Kind() Kind       { return KindImportStmt }
func (i *ImportStmt) stmtNode()        {}
func (i *ImportStmt) DiagName() string { return "ImportStmt" }

// ImportExpr is the expression form of a module import, for targets where
// importing yields a value instead of being a keyword statement. It
// shares the structural fields of ImportStmt.
type ImportExpr struct {
	base
	Names []*AliasExpr
}

// NewImportExpr creates an expression-form import over at least one
// module name.
func NewImportExpr(names ...*AliasExpr) (*ImportExpr, error) {
	if err := checkImportNames(KindImportExpr, names); err != nil {
		return nil, err
	}
	return &ImportExpr{Names: names}, nil
}

func (i *ImportExpr) Kind() Kind       { return KindImportExpr }
func (i *ImportExpr) exprNode()        {}
func (i *ImportExpr) stmtNode()        {}
func (i *ImportExpr) DiagName() string { return "ImportExpr" }

// ImportFromStmt imports names out of a module, optionally relative:
// Level counts leading dots, Module may be empty for purely relative
// imports.
type ImportFromStmt struct {
	base
	Module string
	Names  []*AliasExpr
	Level  int
}

// NewImportFromStmt creates a from-import statement. The level must not
// be negative, and a purely relative import (empty module) needs at least
// level 1.
func NewImportFromStmt(module string, level int, names ...*AliasExpr) (*ImportFromStmt, error) {
	if err := checkImportFrom(KindImportFromStmt, module, level, names); err != nil {
		return nil, err
	}
	return &ImportFromStmt{Module: module, Names: names, Level: level}, nil
}

func (i *ImportFromStmt) Kind() Kind { return KindImportFromStmt }
func (i *ImportFromStmt) stmtNode()  {}
func (i *ImportFromStmt) DiagName() string {
	return fmt.Sprintf("ImportFromStmt %q", i.Module)
}

// ImportFromExpr is the expression form of a from-import, sharing the
// structural fields of ImportFromStmt.
type ImportFromExpr struct {
	base
	Module string
	Names  []*AliasExpr
	Level  int
}

// NewImportFromExpr creates an expression-form from-import.
func NewImportFromExpr(module string, level int, names ...*AliasExpr) (*ImportFromExpr, error) {
	if err := checkImportFrom(KindImportFromExpr, module, level, names); err != nil {
		return nil, err
	}
	return &ImportFromExpr{Module: module, Names: names, Level: level}, nil
}

func (i *ImportFromExpr) Kind() Kind { return KindImportFromExpr }
func (i *ImportFromExpr) exprNode()  {}
func (i *ImportFromExpr) stmtNode()  {}
func (i *ImportFromExpr) DiagName() string {
	return fmt.Sprintf("ImportFromExpr %q", i.Module)
}

func checkImportNames(k Kind, names []*AliasExpr) error {
	if len(names) == 0 {
		return constructErr(k, "import requires at least one name")
	}
	for i, name := range names {
		if name == nil {
			return constructErr(k, "import name %d is nil", i)
		}
	}
	return nil
}

func checkImportFrom(k Kind, module string, level int, names []*AliasExpr) error {
	if level < 0 {
		return constructErr(k, "relative level %d must not be negative", level)
	}
	if module == "" && level == 0 {
		return constructErr(k, "from-import requires a module name or a relative level")
	}
	return checkImportNames(k, names)
}
