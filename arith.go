package bignum

import (
	"math/bits"
)

// The kernels in this file operate on raw little-endian digit slices so that
// the algorithms that need each other (division for the radix codec and
// modpow, subtraction for division) can be composed and tested without going
// through the Uint wrapper. All kernels return canonical slices: no trailing
// zero digit, zero == empty.

// normWords trims trailing (most-significant) zero digits.
func normWords(d []uint32) []uint32 {
	i := len(d)
	for i > 0 && d[i-1] == 0 {
		i--
	}
	return d[:i]
}

func cloneWords(d []uint32) []uint32 {
	if len(d) == 0 {
		return nil
	}
	out := make([]uint32, len(d))
	copy(out, d)
	return out
}

// cmpWords compares canonical slices: length decides first, then digits from
// most significant down.
func cmpWords(a, b []uint32) int {
	if len(a) > len(b) {
		return 1
	} else if len(a) < len(b) {
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// addWords adds two canonical slices, propagating the carry through a 64-bit
// accumulator one digit pair at a time.
func addWords(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a), len(a)+1)
	var carry uint64
	for i, bd := range b {
		s := uint64(a[i]) + uint64(bd) + carry
		out[i] = uint32(s)
		carry = s >> wordBits
	}
	for i := len(b); i < len(a); i++ {
		s := uint64(a[i]) + carry
		out[i] = uint32(s)
		carry = s >> wordBits
	}
	if carry != 0 {
		out = append(out, uint32(carry))
	}
	return normWords(out)
}

// subWords computes a - b, reporting ok == false when a < b.
func subWords(a, b []uint32) (out []uint32, ok bool) {
	if cmpWords(a, b) < 0 {
		return nil, false
	}
	out = make([]uint32, len(a))
	var borrow uint64
	for i, bd := range b {
		d := uint64(a[i]) - uint64(bd) - borrow
		out[i] = uint32(d)
		borrow = (d >> wordBits) & 1
	}
	for i := len(b); i < len(a); i++ {
		d := uint64(a[i]) - borrow
		out[i] = uint32(d)
		borrow = (d >> wordBits) & 1
	}
	return normWords(out), true
}

// mulWords is the schoolbook O(n*m) multiply. The output buffer is one digit
// wider than the widest possible product so the inner carry walk can never
// run off the end; each partial product plus the digit already in place plus
// the running carry stays below 1<<64.
func mulWords(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b)+1)
	for i, ad := range a {
		if ad == 0 {
			continue
		}
		av := uint64(ad)
		var carry uint64
		for j, bd := range b {
			t := av*uint64(bd) + uint64(out[i+j]) + carry
			out[i+j] = uint32(t)
			carry = t >> wordBits
		}
		for k := i + len(b); carry != 0; k++ {
			t := uint64(out[k]) + carry
			out[k] = uint32(t)
			carry = t >> wordBits
		}
	}
	return normWords(out)
}

// mulAddWord computes d*m + a in place, growing d by at most one digit.
// Used by the radix codecs to fold one positional digit at a time.
func mulAddWord(d []uint32, m, a uint32) []uint32 {
	carry := uint64(a)
	for i := range d {
		t := uint64(d[i])*uint64(m) + carry
		d[i] = uint32(t)
		carry = t >> wordBits
	}
	if carry != 0 {
		d = append(d, uint32(carry))
	}
	return d
}

// quoRemWord divides by a single digit, returning the remainder digit.
func quoRemWord(u []uint32, v uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<wordBits | uint64(u[i])
		q[i] = uint32(cur / uint64(v))
		rem = cur % uint64(v)
	}
	return normWords(q), uint32(rem)
}

// quoRemWords produces quotient and remainder together. v must be non-zero
// and canonical. Single-digit divisors take the fast path; otherwise this is
// Knuth algorithm D (Hacker's Delight 9-4 divmnu) with the divisor
// normalized so its top digit has the high bit set, trial quotient digits
// estimated from the top two dividend digits and refined, and a final
// add-back when the estimate was one too high.
func quoRemWords(u, v []uint32) (q, r []uint32) {
	if len(v) == 1 {
		qd, rd := quoRemWord(u, v[0])
		if rd == 0 {
			return qd, nil
		}
		return qd, []uint32{rd}
	}
	if cmpWords(u, v) < 0 {
		return nil, cloneWords(u)
	}

	const b = 1 << wordBits

	n := len(v)
	m := len(u)

	s := uint(bits.LeadingZeros32(v[n-1]))

	vn := make([]uint32, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | uint32(uint64(v[i-1])>>(wordBits-s))
	}
	vn[0] = v[0] << s

	un := make([]uint32, m+1)
	un[m] = uint32(uint64(u[m-1]) >> (wordBits - s))
	for i := m - 1; i > 0; i-- {
		un[i] = u[i]<<s | uint32(uint64(u[i-1])>>(wordBits-s))
	}
	un[0] = u[0] << s

	q = make([]uint32, m-n+1)

	for j := m - n; j >= 0; j-- {
		cur := uint64(un[j+n])<<wordBits | uint64(un[j+n-1])
		qhat := cur / uint64(vn[n-1])
		rhat := cur % uint64(vn[n-1])

	again:
		if qhat >= b || qhat*uint64(vn[n-2]) > rhat<<wordBits|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat < b {
				goto again
			}
		}

		// Multiply and subtract. k carries the borrow; t goes negative
		// when the trial digit was too large.
		var k, t int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t = int64(un[i+j]) - k - int64(p&maxWord)
			un[i+j] = uint32(t)
			k = int64(p>>wordBits) - (t >> wordBits)
		}
		t = int64(un[j+n]) - k
		un[j+n] = uint32(t)

		q[j] = uint32(qhat)
		if t < 0 {
			q[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				w := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(w)
				carry = w >> wordBits
			}
			un[j+n] = uint32(uint64(un[j+n]) + carry)
		}
	}

	r = make([]uint32, n)
	for i := 0; i < n-1; i++ {
		r[i] = un[i]>>s | uint32(uint64(un[i+1])<<(wordBits-s))
	}
	r[n-1] = un[n-1] >> s

	return normWords(q), normWords(r)
}
