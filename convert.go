package bignum

import (
	"math"
)

// AsUint64 converts u to a uint64, with ok set to false if the value does
// not fit.
func (u Uint) AsUint64() (v uint64, ok bool) {
	switch len(u.digits) {
	case 0:
		return 0, true
	case 1:
		return uint64(u.digits[0]), true
	case 2:
		return uint64(u.digits[1])<<wordBits | uint64(u.digits[0]), true
	default:
		return 0, false
	}
}

func (u Uint) AsUint32() (v uint32, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxUint32 {
		return 0, false
	}
	return uint32(w), true
}

func (u Uint) AsUint16() (v uint16, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxUint16 {
		return 0, false
	}
	return uint16(w), true
}

func (u Uint) AsUint8() (v uint8, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxUint8 {
		return 0, false
	}
	return uint8(w), true
}

func (u Uint) AsInt64() (v int64, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxInt64 {
		return 0, false
	}
	return int64(w), true
}

func (u Uint) AsInt32() (v int32, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxInt32 {
		return 0, false
	}
	return int32(w), true
}

func (u Uint) AsInt16() (v int16, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxInt16 {
		return 0, false
	}
	return int16(w), true
}

func (u Uint) AsInt8() (v int8, ok bool) {
	w, ok := u.AsUint64()
	if !ok || w > math.MaxInt8 {
		return 0, false
	}
	return int8(w), true
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool { return len(u.digits) <= 2 }

// topBits returns the k most significant bits of u as a uint64, plus a
// sticky bit summarizing every lower-order bit. u must have a bit length of
// at least k.
func (u Uint) topBits(k int) (top uint64, sticky bool) {
	shift := uint(u.BitLen() - k)
	if shift == 0 {
		top, _ = u.AsUint64()
		return top, false
	}
	top, _ = u.Rsh(shift).AsUint64()
	return top, u.TrailingZeros() < shift
}

// roundMantissa rounds the value to mant binary digits using
// round-to-nearest, ties-to-even, returning the mantissa and the base-2
// exponent such that u ~= m * 2**exp.
func (u Uint) roundMantissa(mant int) (m uint64, exp int) {
	n := u.BitLen()
	if n <= mant {
		m, _ = u.AsUint64()
		return m, 0
	}

	top, sticky := u.topBits(mant + 1)
	m = top >> 1
	if top&1 == 1 && (sticky || m&1 == 1) {
		m++ // may spill to 1<<mant; Ldexp still represents it exactly
	}
	return m, n - mant
}

// Float64 converts u to the nearest float64 using round-to-nearest,
// ties-to-even on the exact binary value. ok is false if the rounded value
// exceeds the largest finite float64.
func (u Uint) Float64() (f float64, ok bool) {
	if len(u.digits) == 0 {
		return 0, true
	}
	m, exp := u.roundMantissa(float64MantBits)
	f = math.Ldexp(float64(m), exp)
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float32 converts u to the nearest float32; see Float64.
func (u Uint) Float32() (f float32, ok bool) {
	if len(u.digits) == 0 {
		return 0, true
	}
	m, exp := u.roundMantissa(float32MantBits)
	f = float32(math.Ldexp(float64(m), exp))
	if math.IsInf(float64(f), 0) {
		return 0, false
	}
	return f, true
}

// UintFromFloat64 creates a Uint from a float64, truncating any fractional
// portion towards zero. Negative values above -1 truncate to zero. NaN, the
// infinities and values of -1 or below have no magnitude; ok is false.
func UintFromFloat64(f float64) (out Uint, ok bool) {
	if f != f || math.IsInf(f, 0) {
		return Uint{}, false
	}
	if f < 0 {
		if f > -1 {
			return Uint{}, true
		}
		return Uint{}, false
	}
	if f < 1 {
		return Uint{}, true
	}

	fbits := math.Float64bits(f)
	mant := fbits&(1<<52-1) | 1<<52
	exp := int(fbits>>52&0x7FF) - 1023 - 52

	if exp <= 0 {
		return UintFrom64(mant >> uint(-exp)), true
	}
	return UintFrom64(mant).Lsh(uint(exp)), true
}

// UintFromFloat32 creates a Uint from a float32; see UintFromFloat64.
func UintFromFloat32(f float32) (out Uint, ok bool) {
	return UintFromFloat64(float64(f))
}
