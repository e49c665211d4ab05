package bignum

import (
	"fmt"
	"hash/fnv"
)

// Uint is an arbitrary-precision unsigned integer.
//
// The value is stored as a little-endian sequence of 32-bit digits in
// canonical form: the most significant digit is never zero, and the number
// zero is the empty sequence. Every operation returns a value in canonical
// form, so two equal values always have identical digit sequences no matter
// how they were built.
type Uint struct {
	digits []uint32
}

// UintFromWords creates a Uint from a little-endian sequence of 32-bit
// digits. The slice is copied; leading (most-significant) zero digits are
// trimmed.
func UintFromWords(words []uint32) Uint {
	words = normWords(words)
	if len(words) == 0 {
		return Uint{}
	}
	out := make([]uint32, len(words))
	copy(out, words)
	return Uint{digits: out}
}

func UintFrom64(v uint64) Uint {
	if v == 0 {
		return Uint{}
	}
	if v <= maxWord {
		return Uint{digits: []uint32{uint32(v)}}
	}
	return Uint{digits: []uint32{uint32(v), uint32(v >> wordBits)}}
}

func UintFrom32(v uint32) Uint { return UintFrom64(uint64(v)) }
func UintFrom16(v uint16) Uint { return UintFrom64(uint64(v)) }
func UintFrom8(v uint8) Uint   { return UintFrom64(uint64(v)) }

// UintFromBytesBE creates a Uint from a big-endian base-256 byte sequence.
// Leading zero bytes are accepted and trimmed.
func UintFromBytesBE(b []byte) Uint {
	words := make([]uint32, (len(b)+wordBytes-1)/wordBytes)
	for i := len(b) - 1; i >= 0; i-- {
		pos := len(b) - 1 - i
		words[pos/wordBytes] |= uint32(b[i]) << uint(pos%wordBytes*8)
	}
	return Uint{digits: normWords(words)}
}

// UintFromBytesLE creates a Uint from a little-endian base-256 byte sequence.
// Trailing zero bytes are accepted and trimmed.
func UintFromBytesLE(b []byte) Uint {
	words := make([]uint32, (len(b)+wordBytes-1)/wordBytes)
	for i, bv := range b {
		words[i/wordBytes] |= uint32(bv) << uint(i%wordBytes*8)
	}
	return Uint{digits: normWords(words)}
}

// SetWords replaces u's value with the little-endian digit sequence words,
// reusing u's existing storage if it is large enough. The trim invariant is
// reinstated regardless of the input.
func (u *Uint) SetWords(words []uint32) {
	words = normWords(words)
	if cap(u.digits) >= len(words) {
		u.digits = u.digits[:len(words)]
	} else {
		u.digits = make([]uint32, len(words))
	}
	copy(u.digits, words)
}

func (u Uint) IsZero() bool { return len(u.digits) == 0 }

// Words returns a copy of u's little-endian digit sequence. The result is
// empty for the zero value.
func (u Uint) Words() []uint32 {
	if len(u.digits) == 0 {
		return nil
	}
	out := make([]uint32, len(u.digits))
	copy(out, u.digits)
	return out
}

// BytesBE returns the minimal big-endian base-256 encoding of u. The zero
// value encodes as a single zero byte.
func (u Uint) BytesBE() []byte {
	out := u.BytesLE()
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// BytesLE returns the minimal little-endian base-256 encoding of u. The zero
// value encodes as a single zero byte.
func (u Uint) BytesLE() []byte {
	if len(u.digits) == 0 {
		return []byte{0}
	}
	out := make([]byte, 0, len(u.digits)*wordBytes)
	for _, d := range u.digits {
		out = append(out, byte(d), byte(d>>8), byte(d>>16), byte(d>>24))
	}
	for len(out) > 1 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Hash returns a digest of u's canonical form. Equal values always hash
// equal regardless of how they were constructed.
func (u Uint) Hash() uint64 {
	h := fnv.New64a()
	h.Write(u.BytesLE())
	return h.Sum64()
}

func (u Uint) Cmp(n Uint) int { return cmpWords(u.digits, n.digits) }

func (u Uint) Equal(n Uint) bool {
	if len(u.digits) != len(n.digits) {
		return false
	}
	for i, d := range u.digits {
		if d != n.digits[i] {
			return false
		}
	}
	return true
}

func (u Uint) GreaterThan(n Uint) bool      { return cmpWords(u.digits, n.digits) > 0 }
func (u Uint) GreaterOrEqualTo(n Uint) bool { return cmpWords(u.digits, n.digits) >= 0 }
func (u Uint) LessThan(n Uint) bool         { return cmpWords(u.digits, n.digits) < 0 }
func (u Uint) LessOrEqualTo(n Uint) bool    { return cmpWords(u.digits, n.digits) <= 0 }

func (u Uint) Add(n Uint) Uint {
	return Uint{digits: addWords(u.digits, n.digits)}
}

// Sub returns u - n. If n is greater than u, a run-time panic occurs; see
// CheckedSub for the non-fatal form.
func (u Uint) Sub(n Uint) Uint {
	out, ok := subWords(u.digits, n.digits)
	if !ok {
		panic("bignum: underflow in subtraction")
	}
	return Uint{digits: out}
}

// CheckedSub returns u - n, with ok set to false if the result would be
// negative.
func (u Uint) CheckedSub(n Uint) (out Uint, ok bool) {
	d, ok := subWords(u.digits, n.digits)
	if !ok {
		return Uint{}, false
	}
	return Uint{digits: d}, true
}

func (u Uint) Mul(n Uint) Uint {
	return Uint{digits: mulWords(u.digits, n.digits)}
}

// Quo returns the quotient u/by for by != 0. If by == 0, a run-time panic
// occurs; see CheckedQuoRem for the non-fatal form.
func (u Uint) Quo(by Uint) Uint {
	q, _ := u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by for by != 0. If by == 0, a run-time panic
// occurs; see CheckedQuoRem for the non-fatal form.
func (u Uint) Rem(by Uint) Uint {
	_, r := u.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder of u/by in a single operation,
// satisfying u == by*q + r with 0 <= r < by. If by == 0, a run-time panic
// occurs.
func (u Uint) QuoRem(by Uint) (q, r Uint) {
	q, r, ok := u.CheckedQuoRem(by)
	if !ok {
		panic("bignum: division by zero")
	}
	return q, r
}

// CheckedQuoRem is the non-fatal form of QuoRem: ok is false if by is zero.
func (u Uint) CheckedQuoRem(by Uint) (q, r Uint, ok bool) {
	if len(by.digits) == 0 {
		return Uint{}, Uint{}, false
	}
	qd, rd := quoRemWords(u.digits, by.digits)
	return Uint{digits: qd}, Uint{digits: rd}, true
}

// Scalar forms. Each widens the machine-integer operand to a short digit
// sequence and delegates to the general algorithm.

func (u Uint) Add64(n uint64) Uint { return u.Add(UintFrom64(n)) }

func (u Uint) Sub64(n uint64) Uint { return u.Sub(UintFrom64(n)) }

func (u Uint) CheckedSub64(n uint64) (Uint, bool) { return u.CheckedSub(UintFrom64(n)) }

func (u Uint) Mul64(n uint64) Uint { return u.Mul(UintFrom64(n)) }

func (u Uint) Quo64(by uint64) Uint {
	q, _ := u.QuoRem(UintFrom64(by))
	return q
}

func (u Uint) Rem64(by uint64) Uint {
	_, r := u.QuoRem(UintFrom64(by))
	return r
}

func (u Uint) QuoRem64(by uint64) (q, r Uint) { return u.QuoRem(UintFrom64(by)) }

func (u Uint) String() string { return u.StringRadix(10) }

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalText(bts []byte) (err error) {
	v, err := UintFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bignum: uint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := UintFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
