package bignum

import (
	"math/bits"
)

// And returns the bitwise AND of u and n. Bits beyond the shorter operand
// are implicitly zero, so only the overlapping digit range is visited.
func (u Uint) And(n Uint) Uint {
	a, b := u.digits, n.digits
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a))
	for i, d := range a {
		out[i] = d & b[i]
	}
	return Uint{digits: normWords(out)}
}

// Or returns the bitwise OR of u and n. The tail of the longer operand is
// copied through verbatim.
func (u Uint) Or(n Uint) Uint {
	a, b := u.digits, n.digits
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a))
	for i, d := range b {
		out[i] = a[i] | d
	}
	copy(out[len(b):], a[len(b):])
	return Uint{digits: normWords(out)}
}

// Xor returns the bitwise XOR of u and n. The tail of the longer operand is
// copied through unchanged (XOR with implicit zeros).
func (u Uint) Xor(n Uint) Uint {
	a, b := u.digits, n.digits
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a))
	for i, d := range b {
		out[i] = a[i] ^ d
	}
	copy(out[len(b):], a[len(b):])
	return Uint{digits: normWords(out)}
}

// Lsh returns u shifted left by n bits. The shift splits into a whole-digit
// relocation (n/32) and a bit rotation across adjacent digits (n%32); the
// digit count may grow by one beyond the relocation.
func (u Uint) Lsh(n uint) Uint {
	if len(u.digits) == 0 || n == 0 {
		return Uint{digits: cloneWords(u.digits)}
	}
	words := int(n / wordBits)
	sh := n % wordBits

	out := make([]uint32, len(u.digits)+words+1)
	if sh == 0 {
		copy(out[words:], u.digits)
	} else {
		var carry uint32
		for i, d := range u.digits {
			out[words+i] = d<<sh | carry
			carry = uint32(uint64(d) >> (wordBits - sh))
		}
		out[words+len(u.digits)] = carry
	}
	return Uint{digits: normWords(out)}
}

// Rsh returns u shifted right by n bits, discarding bits shifted past the
// least significant digit.
func (u Uint) Rsh(n uint) Uint {
	if len(u.digits) == 0 || n == 0 {
		return Uint{digits: cloneWords(u.digits)}
	}
	words := int(n / wordBits)
	sh := n % wordBits

	if words >= len(u.digits) {
		return Uint{}
	}
	out := make([]uint32, len(u.digits)-words)
	if sh == 0 {
		copy(out, u.digits[words:])
	} else {
		for i := range out {
			d := u.digits[words+i] >> sh
			if words+i+1 < len(u.digits) {
				d |= uint32(uint64(u.digits[words+i+1]) << (wordBits - sh))
			}
			out[i] = d
		}
	}
	return Uint{digits: normWords(out)}
}

// Bit returns the value of the i'th bit of u.
func (u Uint) Bit(i uint) uint {
	w := int(i / wordBits)
	if w >= len(u.digits) {
		return 0
	}
	return uint(u.digits[w]>>(i%wordBits)) & 1
}

// SetBit returns u with the i'th bit set to b, which must be 0 or 1.
func (u Uint) SetBit(i uint, b uint) Uint {
	if b > 1 {
		panic("bignum: invalid bit value")
	}
	w := int(i / wordBits)
	mask := uint32(1) << (i % wordBits)

	if b == 0 {
		if w >= len(u.digits) {
			return u
		}
		d := cloneWords(u.digits)
		d[w] &^= mask
		return Uint{digits: normWords(d)}
	}

	d := make([]uint32, larger(w+1, len(u.digits)))
	copy(d, u.digits)
	d[w] |= mask
	return Uint{digits: d}
}

func larger(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// BitLen returns the index of the highest set bit plus one, or 0 for the
// zero value.
func (u Uint) BitLen() int {
	if len(u.digits) == 0 {
		return 0
	}
	return (len(u.digits)-1)*wordBits + bits.Len32(u.digits[len(u.digits)-1])
}

// TrailingZeros returns the number of consecutive zero bits starting at the
// least significant bit, or 0 for the zero value.
func (u Uint) TrailingZeros() uint {
	for i, d := range u.digits {
		if d != 0 {
			return uint(i)*wordBits + uint(bits.TrailingZeros32(d))
		}
	}
	return 0
}

// IsEven reports whether u is even. The zero value is even.
func (u Uint) IsEven() bool {
	return len(u.digits) == 0 || u.digits[0]&1 == 0
}

// IsOdd reports whether u is odd.
func (u Uint) IsOdd() bool {
	return len(u.digits) > 0 && u.digits[0]&1 == 1
}
