package ir

import "fmt"

// TypeKind tags the data type of a literal or type reference. Together
// with Kind it forms the closed discriminant space of the IR: a Literal's
// variant is (KindLiteral, TypeKind), a type annotation's variant is
// (KindTypeRef, TypeKind).
type TypeKind int

const (
	TypeInvalid TypeKind = iota

	TypeBoolean

	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeInt128

	TypeUInt8
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeUInt128

	TypeFloat16
	TypeFloat32
	TypeFloat64

	TypeComplex32
	TypeComplex64

	TypeUTF8Char
	TypeUTF8String

	TypeDate
	TypeTime
	TypeDateTime
	TypeTimestamp

	// TypeNone is literal-only: it tags the absence-of-value literal and
	// is not constructible as a type reference.
	TypeNone
)

// TypeClass classifies type kinds into the numeric lattice
// Number ⊇ {Integer ⊇ {Signed, Unsigned}, Floating, Complex}, with
// Boolean, Textual and Temporal as siblings outside it. Backends use the
// class to render a whole family of widths with one rule when the target
// has no fixed-width types.
type TypeClass uint16

const (
	ClassNumber TypeClass = 1 << iota
	ClassInteger
	ClassSigned
	ClassUnsigned
	ClassFloating
	ClassComplex
	ClassBoolean
	ClassTextual
	ClassTemporal
	ClassNone
)

// Is reports whether the class contains every flag in want.
func (c TypeClass) Is(want TypeClass) bool { return c&want == want }

type typeInfo struct {
	name  string
	class TypeClass
	bits  int
}

var typeInfos = map[TypeKind]typeInfo{
	TypeBoolean: {"Boolean", ClassBoolean, 1},

	TypeInt8:   {"Int8", ClassNumber | ClassInteger | ClassSigned, 8},
	TypeInt16:  {"Int16", ClassNumber | ClassInteger | ClassSigned, 16},
	TypeInt32:  {"Int32", ClassNumber | ClassInteger | ClassSigned, 32},
	TypeInt64:  {"Int64", ClassNumber | ClassInteger | ClassSigned, 64},
	TypeInt128: {"Int128", ClassNumber | ClassInteger | ClassSigned, 128},

	TypeUInt8:   {"UInt8", ClassNumber | ClassInteger | ClassUnsigned, 8},
	TypeUInt16:  {"UInt16", ClassNumber | ClassInteger | ClassUnsigned, 16},
	TypeUInt32:  {"UInt32", ClassNumber | ClassInteger | ClassUnsigned, 32},
	TypeUInt64:  {"UInt64", ClassNumber | ClassInteger | ClassUnsigned, 64},
	TypeUInt128: {"UInt128", ClassNumber | ClassInteger | ClassUnsigned, 128},

	TypeFloat16: {"Float16", ClassNumber | ClassFloating, 16},
	TypeFloat32: {"Float32", ClassNumber | ClassFloating, 32},
	TypeFloat64: {"Float64", ClassNumber | ClassFloating, 64},

	TypeComplex32: {"Complex32", ClassNumber | ClassComplex, 32},
	TypeComplex64: {"Complex64", ClassNumber | ClassComplex, 64},

	TypeUTF8Char:   {"UTF8Char", ClassTextual, 0},
	TypeUTF8String: {"UTF8String", ClassTextual, 0},

	TypeDate:      {"Date", ClassTemporal, 0},
	TypeTime:      {"Time", ClassTemporal, 0},
	TypeDateTime:  {"DateTime", ClassTemporal, 0},
	TypeTimestamp: {"Timestamp", ClassTemporal, 0},

	TypeNone: {"None", ClassNone, 0},
}

func (k TypeKind) String() string {
	if info, ok := typeInfos[k]; ok {
		return info.name
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// Class returns the classification of this type kind.
func (k TypeKind) Class() TypeClass {
	return typeInfos[k].class
}

// BitWidth returns the fixed bit width of numeric kinds, 0 for textual
// and temporal kinds.
func (k TypeKind) BitWidth() int {
	return typeInfos[k].bits
}

// TypeRef denotes a data type in argument and return annotations. It is a
// node but neither an expression nor a statement.
type TypeRef struct {
	base
	Type TypeKind
}

// NewTypeRef creates a type reference for the given kind. TypeInvalid and
// the literal-only TypeNone are rejected.
func NewTypeRef(kind TypeKind) (*TypeRef, error) {
	if _, ok := typeInfos[kind]; !ok || kind == TypeInvalid || kind == TypeNone {
		return nil, constructErr(KindTypeRef, "%s is not a referencable type", kind)
	}
	return &TypeRef{Type: kind}, nil
}

func mustTypeRef(kind TypeKind) *TypeRef {
	t, err := NewTypeRef(kind)
	if err != nil {
		panic(err)
	}
	return t
}

// Per-variant type reference constructors.
func BooleanType() *TypeRef    { return mustTypeRef(TypeBoolean) }
func Int8Type() *TypeRef       { return mustTypeRef(TypeInt8) }
func Int16Type() *TypeRef      { return mustTypeRef(TypeInt16) }
func Int32Type() *TypeRef      { return mustTypeRef(TypeInt32) }
func Int64Type() *TypeRef      { return mustTypeRef(TypeInt64) }
func Int128Type() *TypeRef     { return mustTypeRef(TypeInt128) }
func UInt8Type() *TypeRef      { return mustTypeRef(TypeUInt8) }
func UInt16Type() *TypeRef     { return mustTypeRef(TypeUInt16) }
func UInt32Type() *TypeRef     { return mustTypeRef(TypeUInt32) }
func UInt64Type() *TypeRef     { return mustTypeRef(TypeUInt64) }
func UInt128Type() *TypeRef    { return mustTypeRef(TypeUInt128) }
func Float16Type() *TypeRef    { return mustTypeRef(TypeFloat16) }
func Float32Type() *TypeRef    { return mustTypeRef(TypeFloat32) }
func Float64Type() *TypeRef    { return mustTypeRef(TypeFloat64) }
func Complex32Type() *TypeRef  { return mustTypeRef(TypeComplex32) }
func Complex64Type() *TypeRef  { return mustTypeRef(TypeComplex64) }
func UTF8CharType() *TypeRef   { return mustTypeRef(TypeUTF8Char) }
func UTF8StringType() *TypeRef { return mustTypeRef(TypeUTF8String) }
func DateType() *TypeRef       { return mustTypeRef(TypeDate) }
func TimeType() *TypeRef       { return mustTypeRef(TypeTime) }
func DateTimeType() *TypeRef   { return mustTypeRef(TypeDateTime) }
func TimestampType() *TypeRef  { return mustTypeRef(TypeTimestamp) }

func (t *TypeRef) Kind() Kind { return KindTypeRef }
func (t *TypeRef) DiagName() string {
	return fmt.Sprintf("TypeRef[%s]", t.Type)
}
