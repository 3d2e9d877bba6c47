package ir

import (
	"math"
	"math/big"
	"testing"
	"time"
)

func TestSignedLiteralRanges(t *testing.T) {
	cases := []struct {
		name    string
		build   func(int64) (*Literal, error)
		min     int64
		max     int64
		tooLow  int64
		tooHigh int64
	}{
		{"Int8", NewLiteralInt8, math.MinInt8, math.MaxInt8, math.MinInt8 - 1, math.MaxInt8 + 1},
		{"Int16", NewLiteralInt16, math.MinInt16, math.MaxInt16, math.MinInt16 - 1, math.MaxInt16 + 1},
		{"Int32", NewLiteralInt32, math.MinInt32, math.MaxInt32, math.MinInt32 - 1, math.MaxInt32 + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range []int64{tc.min, 0, tc.max} {
				lit, err := tc.build(v)
				if err != nil {
					t.Fatalf("in-range %d: %v", v, err)
				}
				if lit.IntVal != v {
					t.Errorf("stored %d, want %d", lit.IntVal, v)
				}
				if lit.Kind() != KindLiteral {
					t.Errorf("kind = %s, want Literal", lit.Kind())
				}
			}
			for _, v := range []int64{tc.tooLow, tc.tooHigh} {
				if _, err := tc.build(v); err == nil {
					t.Errorf("out-of-range %d: construction succeeded", v)
				}
			}
		})
	}
}

func TestUnsignedLiteralRanges(t *testing.T) {
	cases := []struct {
		name    string
		build   func(uint64) (*Literal, error)
		max     uint64
		tooHigh uint64
	}{
		{"UInt8", NewLiteralUInt8, math.MaxUint8, math.MaxUint8 + 1},
		{"UInt16", NewLiteralUInt16, math.MaxUint16, math.MaxUint16 + 1},
		{"UInt32", NewLiteralUInt32, math.MaxUint32, math.MaxUint32 + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range []uint64{0, tc.max} {
				lit, err := tc.build(v)
				if err != nil {
					t.Fatalf("in-range %d: %v", v, err)
				}
				if lit.UintVal != v {
					t.Errorf("stored %d, want %d", lit.UintVal, v)
				}
			}
			if _, err := tc.build(tc.tooHigh); err == nil {
				t.Errorf("out-of-range %d: construction succeeded", tc.tooHigh)
			}
		})
	}
}

func TestInt128LiteralRange(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	for _, v := range []*big.Int{min, big.NewInt(0), max} {
		if _, err := NewLiteralInt128(v); err != nil {
			t.Fatalf("in-range %s: %v", v, err)
		}
	}

	over := new(big.Int).Add(max, big.NewInt(1))
	under := new(big.Int).Sub(min, big.NewInt(1))
	for _, v := range []*big.Int{over, under} {
		if _, err := NewLiteralInt128(v); err == nil {
			t.Errorf("out-of-range %s: construction succeeded", v)
		}
	}
	if _, err := NewLiteralInt128(nil); err == nil {
		t.Error("nil value: construction succeeded")
	}
}

func TestInt128LiteralCopiesValue(t *testing.T) {
	v := big.NewInt(42)
	lit, err := NewLiteralInt128(v)
	if err != nil {
		t.Fatal(err)
	}
	v.SetInt64(7)
	if lit.BigVal.Int64() != 42 {
		t.Errorf("literal observed caller mutation: %s", lit.BigVal)
	}
}

func TestUInt128LiteralRange(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	if _, err := NewLiteralUInt128(max); err != nil {
		t.Fatalf("in-range %s: %v", max, err)
	}
	over := new(big.Int).Add(max, big.NewInt(1))
	if _, err := NewLiteralUInt128(over); err == nil {
		t.Error("out-of-range: construction succeeded")
	}
	if _, err := NewLiteralUInt128(big.NewInt(-1)); err == nil {
		t.Error("negative value: construction succeeded")
	}
}

func TestFloatLiteralRanges(t *testing.T) {
	if _, err := NewLiteralFloat16(65504); err != nil {
		t.Errorf("float16 max: %v", err)
	}
	if _, err := NewLiteralFloat16(65536); err == nil {
		t.Error("float16 overflow: construction succeeded")
	}
	if _, err := NewLiteralFloat32(math.MaxFloat32); err != nil {
		t.Errorf("float32 max: %v", err)
	}
	if _, err := NewLiteralFloat32(math.MaxFloat64); err == nil {
		t.Error("float32 overflow: construction succeeded")
	}
	// Infinities are representable at every width.
	if _, err := NewLiteralFloat16(math.Inf(1)); err != nil {
		t.Errorf("float16 +inf: %v", err)
	}
}

func TestComplex32LiteralRange(t *testing.T) {
	if _, err := NewLiteralComplex32(complex(1, -2)); err != nil {
		t.Fatalf("in-range: %v", err)
	}
	if _, err := NewLiteralComplex32(complex(math.MaxFloat64, 0)); err == nil {
		t.Error("real component overflow: construction succeeded")
	}
	if _, err := NewLiteralComplex32(complex(0, math.MaxFloat64)); err == nil {
		t.Error("imaginary component overflow: construction succeeded")
	}
}

func TestTextualLiterals(t *testing.T) {
	if _, err := NewLiteralUTF8Char("é"); err != nil {
		t.Errorf("single rune: %v", err)
	}
	if _, err := NewLiteralUTF8Char("ab"); err == nil {
		t.Error("two runes: construction succeeded")
	}
	if _, err := NewLiteralUTF8Char(""); err == nil {
		t.Error("empty char: construction succeeded")
	}
	if _, err := NewLiteralUTF8String("hello\nworld"); err != nil {
		t.Errorf("valid string: %v", err)
	}
	if _, err := NewLiteralUTF8String(string([]byte{0xff, 0xfe})); err == nil {
		t.Error("invalid UTF-8: construction succeeded")
	}
}

func TestTemporalLiterals(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	for _, lit := range []*Literal{
		NewLiteralDate(now), NewLiteralTime(now), NewLiteralDateTime(now), NewLiteralTimestamp(now),
	} {
		if !lit.TimeVal.Equal(now) {
			t.Errorf("%s: stored %v, want %v", lit.Type, lit.TimeVal, now)
		}
	}
}

func TestLiteralDiagName(t *testing.T) {
	lit, err := NewLiteralInt32(42)
	if err != nil {
		t.Fatal(err)
	}
	if got := lit.DiagName(); got != "Literal[Int32]" {
		t.Errorf("DiagName = %q", got)
	}
}
