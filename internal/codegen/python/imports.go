package python

import (
	"fmt"
	"strings"

	"github.com/astir-lang/astir/internal/codegen"
	"github.com/astir-lang/astir/internal/ir"
)

func emitImportStmt(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	imp := n.(*ir.ImportStmt)
	names, err := emitAliases(e, ctx, imp.Names)
	if err != nil {
		return "", err
	}
	return "import " + strings.Join(names, ", "), nil
}

func emitImportFromStmt(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	imp := n.(*ir.ImportFromStmt)
	names, err := emitAliases(e, ctx, imp.Names)
	if err != nil {
		return "", err
	}
	module := relativeModule(imp.Module, imp.Level)
	return fmt.Sprintf("from %s import %s", module, strings.Join(names, ", ")), nil
}

// emitImportExpr rewrites a plain import into runtime module-lookup calls
// assigned to synthetic bindings: one module binds as
//
//	module = __import__('os')
//
// and N modules bind positionally as
//
//	module1, ..., moduleN = (__import__('m1'), ..., __import__('mN'))
//
// The singular form is unparenthesized and the plural right-hand side is a
// tuple; the asymmetry is target-syntax contract, not cosmetics.
func emitImportExpr(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	imp := n.(*ir.ImportExpr)
	lookups := make([]string, 0, len(imp.Names))
	for _, name := range imp.Names {
		lookups = append(lookups, fmt.Sprintf("__import__('%s')", name.Name))
	}
	return syntheticAssignment("module", lookups), nil
}

// emitImportFromExpr rewrites a from-import of N names into N dynamic
// attribute lookups bound to the synthetic names name1..nameN (bare name
// for N=1), with the same singular/plural tuple asymmetry as
// emitImportExpr.
func emitImportFromExpr(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	imp := n.(*ir.ImportFromExpr)
	module := relativeModule(imp.Module, imp.Level)
	lookups := make([]string, 0, len(imp.Names))
	for _, name := range imp.Names {
		lookups = append(lookups, fmt.Sprintf(
			"getattr(__import__('%s', fromlist=['%s']), '%s')", module, name.Name, name.Name))
	}
	return syntheticAssignment("name", lookups), nil
}

func emitAliases(e *codegen.Emitter, ctx codegen.Context, aliases []*ir.AliasExpr) ([]string, error) {
	names := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		text, err := e.Emit(ctx, alias)
		if err != nil {
			return nil, err
		}
		names = append(names, text)
	}
	return names, nil
}

// relativeModule prefixes the module name with one dot per relative
// level; with no module name the dots stand alone.
func relativeModule(module string, level int) string {
	return strings.Repeat(".", level) + module
}

// syntheticAssignment builds the positional binding statement for
// expression-form imports.
func syntheticAssignment(stem string, lookups []string) string {
	if len(lookups) == 1 {
		return fmt.Sprintf("%s = %s", stem, lookups[0])
	}
	targets := make([]string, 0, len(lookups))
	for i := range lookups {
		targets = append(targets, fmt.Sprintf("%s%d", stem, i+1))
	}
	return fmt.Sprintf("%s = (%s)", strings.Join(targets, ", "), strings.Join(lookups, ", "))
}
