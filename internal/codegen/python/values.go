package python

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/astir-lang/astir/internal/codegen"
	"github.com/astir-lang/astir/internal/ir"
)

// emitLiteral renders a literal by its type tag. Values were validated at
// construction, so rendering is pure formatting.
func emitLiteral(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	lit := n.(*ir.Literal)
	switch {
	case lit.Type == ir.TypeBoolean:
		if lit.BoolVal {
			return "True", nil
		}
		return "False", nil
	case lit.Type == ir.TypeNone:
		return "None", nil
	case lit.Type == ir.TypeInt128 || lit.Type == ir.TypeUInt128:
		return lit.BigVal.String(), nil
	case lit.Type.Class().Is(ir.ClassSigned):
		return strconv.FormatInt(lit.IntVal, 10), nil
	case lit.Type.Class().Is(ir.ClassUnsigned):
		return strconv.FormatUint(lit.UintVal, 10), nil
	case lit.Type.Class().Is(ir.ClassFloating):
		return formatFloat(lit.FloatVal), nil
	case lit.Type.Class().Is(ir.ClassComplex):
		return fmt.Sprintf("complex(%s, %s)",
			formatFloat(real(lit.ComplexVal)), formatFloat(imag(lit.ComplexVal))), nil
	case lit.Type.Class().Is(ir.ClassTextual):
		return quote(lit.StrVal), nil
	case lit.Type.Class().Is(ir.ClassTemporal):
		return quote(lit.TimeVal.Format(temporalLayout(lit.Type))), nil
	}
	return "", fmt.Errorf("literal %s: unknown type tag", lit.Type)
}

// emitTypeRef renders the canonical Python type name for the reference's
// classification. Python has no fixed-width numeric types, so every
// integer width widens to int, every floating width to float and every
// complex width to complex; the widening is deliberate backend policy.
func emitTypeRef(e *codegen.Emitter, ctx codegen.Context, n ir.Node) (string, error) {
	ref := n.(*ir.TypeRef)
	class := ref.Type.Class()
	switch {
	case class.Is(ir.ClassBoolean):
		return "bool", nil
	case class.Is(ir.ClassInteger):
		return "int", nil
	case class.Is(ir.ClassFloating):
		return "float", nil
	case class.Is(ir.ClassComplex):
		return "complex", nil
	case class.Is(ir.ClassTextual):
		return "str", nil
	case class.Is(ir.ClassTemporal):
		switch ref.Type {
		case ir.TypeDate:
			return "datetime.date", nil
		case ir.TypeTime:
			return "datetime.time", nil
		default: // DateTime, Timestamp
			return "datetime.datetime", nil
		}
	}
	return "", fmt.Errorf("type reference %s: unknown classification", ref.Type)
}

// formatFloat keeps the shortest round-tripping decimal form and forces a
// trailing .0 onto integral values so the token stays a Python float.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "float('nan')"
	}
	if math.IsInf(v, 1) {
		return "float('inf')"
	}
	if math.IsInf(v, -1) {
		return "float('-inf')"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// temporalLayout maps temporal type tags to their ISO-8601 layout.
func temporalLayout(kind ir.TypeKind) string {
	switch kind {
	case ir.TypeDate:
		return "2006-01-02"
	case ir.TypeTime:
		return "15:04:05"
	default: // DateTime, Timestamp
		return "2006-01-02T15:04:05"
	}
}

// quote renders a Python single-quoted string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}
