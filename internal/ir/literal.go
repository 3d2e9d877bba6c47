package ir

import (
	"fmt"
	"math"
	"math/big"
	"time"
	"unicode/utf8"
)

// maxFloat16 is the largest finite value representable in IEEE 754
// binary16.
const maxFloat16 = 65504.0

var (
	minInt128  = new(big.Int).Lsh(big.NewInt(-1), 127)                                          // -2^127
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))          // 2^127 - 1
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))          // 2^128 - 1
	intBounds  = map[TypeKind][2]int64{
		TypeInt8:  {math.MinInt8, math.MaxInt8},
		TypeInt16: {math.MinInt16, math.MaxInt16},
		TypeInt32: {math.MinInt32, math.MaxInt32},
		TypeInt64: {math.MinInt64, math.MaxInt64},
	}
	uintBounds = map[TypeKind]uint64{
		TypeUInt8:  math.MaxUint8,
		TypeUInt16: math.MaxUint16,
		TypeUInt32: math.MaxUint32,
		TypeUInt64: math.MaxUint64,
	}
)

// Literal is an expression carrying an immutable scalar value and its
// fixed type tag. The value is validated against the declared width at
// construction; rendering never re-checks it. Exactly one of the value
// fields is meaningful, selected by Type.
type Literal struct {
	base
	Type TypeKind

	BoolVal    bool
	IntVal     int64      // signed widths up to 64 bits
	UintVal    uint64     // unsigned widths up to 64 bits
	BigVal     *big.Int   // 128-bit widths, defensively copied
	FloatVal   float64    // floating widths
	ComplexVal complex128 // complex widths
	StrVal     string     // UTF8Char and UTF8String
	TimeVal    time.Time  // temporal kinds
}

func (l *Literal) Kind() Kind { return KindLiteral }
func (l *Literal) exprNode()  {}
func (l *Literal) DiagName() string {
	return fmt.Sprintf("Literal[%s]", l.Type)
}

// NewLiteralBoolean creates a boolean literal.
func NewLiteralBoolean(v bool) *Literal {
	return &Literal{Type: TypeBoolean, BoolVal: v}
}

func newSignedLiteral(kind TypeKind, v int64) (*Literal, error) {
	b := intBounds[kind]
	if v < b[0] || v > b[1] {
		return nil, constructErr(KindLiteral, "%d out of range for %s", v, kind)
	}
	return &Literal{Type: kind, IntVal: v}, nil
}

func newUnsignedLiteral(kind TypeKind, v uint64) (*Literal, error) {
	if v > uintBounds[kind] {
		return nil, constructErr(KindLiteral, "%d out of range for %s", v, kind)
	}
	return &Literal{Type: kind, UintVal: v}, nil
}

// Signed integer literal constructors. The carrier is int64 so that
// out-of-width values are rejected here instead of truncated by a cast at
// the call site.
func NewLiteralInt8(v int64) (*Literal, error)  { return newSignedLiteral(TypeInt8, v) }
func NewLiteralInt16(v int64) (*Literal, error) { return newSignedLiteral(TypeInt16, v) }
func NewLiteralInt32(v int64) (*Literal, error) { return newSignedLiteral(TypeInt32, v) }
func NewLiteralInt64(v int64) *Literal          { return &Literal{Type: TypeInt64, IntVal: v} }

// NewLiteralInt128 creates a 128-bit signed integer literal. The value is
// copied, so later mutation of v does not reach the tree.
func NewLiteralInt128(v *big.Int) (*Literal, error) {
	if v == nil {
		return nil, constructErr(KindLiteral, "Int128 requires a value")
	}
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return nil, constructErr(KindLiteral, "%s out of range for Int128", v)
	}
	return &Literal{Type: TypeInt128, BigVal: new(big.Int).Set(v)}, nil
}

// Unsigned integer literal constructors.
func NewLiteralUInt8(v uint64) (*Literal, error)  { return newUnsignedLiteral(TypeUInt8, v) }
func NewLiteralUInt16(v uint64) (*Literal, error) { return newUnsignedLiteral(TypeUInt16, v) }
func NewLiteralUInt32(v uint64) (*Literal, error) { return newUnsignedLiteral(TypeUInt32, v) }
func NewLiteralUInt64(v uint64) *Literal          { return &Literal{Type: TypeUInt64, UintVal: v} }

// NewLiteralUInt128 creates a 128-bit unsigned integer literal.
func NewLiteralUInt128(v *big.Int) (*Literal, error) {
	if v == nil {
		return nil, constructErr(KindLiteral, "UInt128 requires a value")
	}
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return nil, constructErr(KindLiteral, "%s out of range for UInt128", v)
	}
	return &Literal{Type: TypeUInt128, BigVal: new(big.Int).Set(v)}, nil
}

// NewLiteralFloat16 creates a 16-bit floating point literal. Finite values
// whose magnitude exceeds the binary16 range are rejected; infinities and
// NaN are representable at every width and pass through.
func NewLiteralFloat16(v float64) (*Literal, error) {
	if !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) > maxFloat16 {
		return nil, constructErr(KindLiteral, "%g out of range for Float16", v)
	}
	return &Literal{Type: TypeFloat16, FloatVal: v}, nil
}

// NewLiteralFloat32 creates a 32-bit floating point literal.
func NewLiteralFloat32(v float64) (*Literal, error) {
	if !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
		return nil, constructErr(KindLiteral, "%g out of range for Float32", v)
	}
	return &Literal{Type: TypeFloat32, FloatVal: v}, nil
}

// NewLiteralFloat64 creates a 64-bit floating point literal.
func NewLiteralFloat64(v float64) *Literal {
	return &Literal{Type: TypeFloat64, FloatVal: v}
}

// NewLiteralComplex32 creates a complex literal with 32-bit components.
func NewLiteralComplex32(v complex128) (*Literal, error) {
	for _, part := range [2]float64{real(v), imag(v)} {
		if !math.IsNaN(part) && !math.IsInf(part, 0) && math.Abs(part) > math.MaxFloat32 {
			return nil, constructErr(KindLiteral, "%g out of range for Complex32 component", part)
		}
	}
	return &Literal{Type: TypeComplex32, ComplexVal: v}, nil
}

// NewLiteralComplex64 creates a complex literal with 64-bit components.
func NewLiteralComplex64(v complex128) *Literal {
	return &Literal{Type: TypeComplex64, ComplexVal: v}
}

// NewLiteralUTF8Char creates a single-character literal. The value must be
// exactly one valid UTF-8 encoded rune.
func NewLiteralUTF8Char(v string) (*Literal, error) {
	r, size := utf8.DecodeRuneInString(v)
	if r == utf8.RuneError || size != len(v) {
		return nil, constructErr(KindLiteral, "%q is not a single UTF-8 character", v)
	}
	return &Literal{Type: TypeUTF8Char, StrVal: v}, nil
}

// NewLiteralUTF8String creates a string literal. The value must be valid
// UTF-8.
func NewLiteralUTF8String(v string) (*Literal, error) {
	if !utf8.ValidString(v) {
		return nil, constructErr(KindLiteral, "value is not valid UTF-8")
	}
	return &Literal{Type: TypeUTF8String, StrVal: v}, nil
}

// Temporal literal constructors. The time.Time carrier is already
// range-safe for every temporal kind.
func NewLiteralDate(v time.Time) *Literal      { return &Literal{Type: TypeDate, TimeVal: v} }
func NewLiteralTime(v time.Time) *Literal      { return &Literal{Type: TypeTime, TimeVal: v} }
func NewLiteralDateTime(v time.Time) *Literal  { return &Literal{Type: TypeDateTime, TimeVal: v} }
func NewLiteralTimestamp(v time.Time) *Literal { return &Literal{Type: TypeTimestamp, TimeVal: v} }

// NewLiteralNone creates the absence-of-value literal.
func NewLiteralNone() *Literal {
	return &Literal{Type: TypeNone}
}
