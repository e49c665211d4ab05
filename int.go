package bignum

import (
	"fmt"
	"math"
)

// Int is an arbitrary-precision signed integer composed of a sign tag and a
// Uint magnitude. The sign is zero iff the magnitude is zero, so negative
// zero is not representable and equal values always have identical
// representations.
type Int struct {
	sign int8 // -1, 0 or +1
	abs  Uint
}

// IntFromUint creates a non-negative Int with magnitude u.
func IntFromUint(u Uint) Int {
	if u.IsZero() {
		return Int{}
	}
	return Int{sign: 1, abs: u}
}

// IntFromSign creates an Int from an explicit sign and magnitude. A zero
// magnitude yields the zero value regardless of sign.
func IntFromSign(sign int, abs Uint) Int {
	if abs.IsZero() || sign == 0 {
		return Int{}
	}
	if sign < 0 {
		return Int{sign: -1, abs: abs}
	}
	return Int{sign: 1, abs: abs}
}

func IntFrom64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	m := uint64(v)
	if v < 0 {
		m = ^m + 1 // two's complement negate handles MinInt64
		return Int{sign: -1, abs: UintFrom64(m)}
	}
	return Int{sign: 1, abs: UintFrom64(m)}
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int   { return IntFrom64(int64(v)) }

func IntFromUint64(v uint64) Int { return IntFromUint(UintFrom64(v)) }

// IntFromString parses a base-10 string; see IntFromStringRadix.
func IntFromString(s string) (Int, error) {
	return IntFromStringRadix(s, 10)
}

// IntFromStringRadix parses s in the given radix (2 to 36 inclusive) with
// the same digit rules as UintFromStringRadix, plus an optional single
// leading '-' sign.
func IntFromStringRadix(s string, radix int) (Int, error) {
	digits := s
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
		if len(digits) > 0 && digits[0] == '+' {
			return Int{}, parseErr(s, radix, "doubled sign")
		}
	}
	abs, err := UintFromStringRadix(digits, radix)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Input = s
		}
		return Int{}, err
	}
	if neg {
		return IntFromUint(abs).Neg(), nil
	}
	return IntFromUint(abs), nil
}

// IntFromFloat64 creates an Int from a float64, truncating any fractional
// portion towards zero. NaN and the infinities have no value; ok is false.
func IntFromFloat64(f float64) (out Int, ok bool) {
	if f != f || math.IsInf(f, 0) {
		return Int{}, false
	}
	abs, ok := UintFromFloat64(math.Abs(f))
	if !ok {
		return Int{}, false
	}
	if f < 0 {
		return IntFromUint(abs).Neg(), true
	}
	return IntFromUint(abs), true
}

// IntFromFloat32 creates an Int from a float32; see IntFromFloat64.
func IntFromFloat32(f float32) (out Int, ok bool) {
	return IntFromFloat64(float64(f))
}

// Sign returns -1 for negative values, 0 for zero and +1 for positive
// values.
func (i Int) Sign() int { return int(i.sign) }

func (i Int) IsZero() bool { return i.sign == 0 }

// Abs returns the magnitude of i.
func (i Int) Abs() Uint { return Uint{digits: cloneWords(i.abs.digits)} }

// Neg returns i with the sign flipped. The zero value is its own negation.
func (i Int) Neg() Int {
	return Int{sign: -i.sign, abs: i.abs}
}

func (i Int) Cmp(n Int) int {
	if i.sign != n.sign {
		if i.sign < n.sign {
			return -1
		}
		return 1
	}
	c := i.abs.Cmp(n.abs)
	if i.sign < 0 {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool {
	return i.sign == n.sign && i.abs.Equal(n.abs)
}

func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

func (i Int) Add(n Int) Int {
	switch {
	case i.sign == 0:
		return n
	case n.sign == 0:
		return i
	case i.sign == n.sign:
		return Int{sign: i.sign, abs: i.abs.Add(n.abs)}
	}

	// Opposite signs: subtract the smaller magnitude from the larger; the
	// result takes the sign of the larger.
	switch i.abs.Cmp(n.abs) {
	case 0:
		return Int{}
	case 1:
		return Int{sign: i.sign, abs: i.abs.Sub(n.abs)}
	default:
		return Int{sign: n.sign, abs: n.abs.Sub(i.abs)}
	}
}

func (i Int) Sub(n Int) Int { return i.Add(n.Neg()) }

func (i Int) Mul(n Int) Int {
	if i.sign == 0 || n.sign == 0 {
		return Int{}
	}
	return Int{sign: i.sign * n.sign, abs: i.abs.Mul(n.abs)}
}

// Quo returns the quotient i/by for by != 0, truncated towards zero. If
// by == 0, a run-time panic occurs.
func (i Int) Quo(by Int) Int {
	q, _ := i.QuoRem(by)
	return q
}

// Rem returns the remainder of i/by for by != 0. The remainder takes the
// sign of the dividend. If by == 0, a run-time panic occurs.
func (i Int) Rem(by Int) Int {
	_, r := i.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder of i/by using truncated
// division (like Go's native integers): q = i/by truncated towards zero and
// r = i - by*q. If by == 0, a run-time panic occurs.
func (i Int) QuoRem(by Int) (q, r Int) {
	q, r, ok := i.CheckedQuoRem(by)
	if !ok {
		panic("bignum: division by zero")
	}
	return q, r
}

// CheckedQuoRem is the non-fatal form of QuoRem: ok is false if by is zero.
func (i Int) CheckedQuoRem(by Int) (q, r Int, ok bool) {
	if by.sign == 0 {
		return Int{}, Int{}, false
	}
	uq, ur := i.abs.QuoRem(by.abs)
	return IntFromSign(int(i.sign*by.sign), uq), IntFromSign(int(i.sign), ur), true
}

// Lsh returns i shifted left by n bits; the sign is unchanged.
func (i Int) Lsh(n uint) Int { return Int{sign: i.sign, abs: i.abs.Lsh(n)} }

// Rsh returns i with the magnitude shifted right by n bits.
func (i Int) Rsh(n uint) Int { return IntFromSign(int(i.sign), i.abs.Rsh(n)) }

func (i Int) IsEven() bool { return i.abs.IsEven() }
func (i Int) IsOdd() bool  { return i.abs.IsOdd() }

// AsInt64 converts i to an int64, with ok set to false if the value does
// not fit.
func (i Int) AsInt64() (v int64, ok bool) {
	m, ok := i.abs.AsUint64()
	if !ok {
		return 0, false
	}
	if i.sign < 0 {
		if m > 1<<63 {
			return 0, false
		}
		return -int64(m - 1) - 1, true // avoids overflow for 1<<63
	}
	if m > math.MaxInt64 {
		return 0, false
	}
	return int64(m), true
}

// AsUint64 converts i to a uint64, with ok set to false if the value is
// negative or does not fit.
func (i Int) AsUint64() (v uint64, ok bool) {
	if i.sign < 0 {
		return 0, false
	}
	return i.abs.AsUint64()
}

// AsUint converts i to a magnitude, with ok set to false if i is negative.
func (i Int) AsUint() (v Uint, ok bool) {
	if i.sign < 0 {
		return Uint{}, false
	}
	return i.Abs(), true
}

// Float64 converts i to the nearest float64; ok is false if the magnitude
// rounds beyond the finite range.
func (i Int) Float64() (f float64, ok bool) {
	f, ok = i.abs.Float64()
	if i.sign < 0 {
		f = -f
	}
	return f, ok
}

// Float32 converts i to the nearest float32; see Float64.
func (i Int) Float32() (f float32, ok bool) {
	f, ok = i.abs.Float32()
	if i.sign < 0 {
		f = -f
	}
	return f, ok
}

// Hash returns a digest of i's canonical form; equal values hash equal.
func (i Int) Hash() uint64 {
	h := i.abs.Hash()
	if i.sign < 0 {
		h = ^h
	}
	return h
}

func (i Int) String() string { return i.StringRadix(10) }

// StringRadix renders i in the given radix with a leading '-' for negative
// values; see Uint.StringRadix.
func (i Int) StringRadix(radix int) string {
	if i.sign < 0 {
		return "-" + i.abs.StringRadix(radix)
	}
	return i.abs.StringRadix(radix)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bignum: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
