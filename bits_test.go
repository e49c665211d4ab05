package bignum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUintAndOrXor(t *testing.T) {
	for _, tc := range []struct {
		a, b, and, or, xor Uint
	}{
		{u64(0), u64(0), u64(0), u64(0), u64(0)},
		{u64(0xC), u64(0xA), u64(0x8), u64(0xE), u64(0x6)},
		{us("0xFFFFFFFF 00000000"), u64(0xFFFFFFFF), u64(0), us("0xFFFFFFFF FFFFFFFF"), us("0xFFFFFFFF FFFFFFFF")},
		{us("0xF0F0F0F0 F0F0F0F0"), us("0x0F0F0F0F"), u64(0), us("0xF0F0F0F0 FFFFFFFF"), us("0xF0F0F0F0 FFFFFFFF")},
		{us("0xFFFF 00000000 00000000"), us("0xFFFF 00000000 00000000"), us("0xFFFF 00000000 00000000"), us("0xFFFF 00000000 00000000"), u64(0)},
	} {
		t.Run(fmt.Sprintf("%x,%x", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.and.Equal(tc.a.And(tc.b)), "and: found %x", tc.a.And(tc.b))
			tt.MustAssert(tc.and.Equal(tc.b.And(tc.a)))
			tt.MustAssert(tc.or.Equal(tc.a.Or(tc.b)), "or: found %x", tc.a.Or(tc.b))
			tt.MustAssert(tc.or.Equal(tc.b.Or(tc.a)))
			tt.MustAssert(tc.xor.Equal(tc.a.Xor(tc.b)), "xor: found %x", tc.a.Xor(tc.b))
			tt.MustAssert(tc.xor.Equal(tc.b.Xor(tc.a)))
		})
	}
}

func TestUintXorInvolution(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		a := randomUint(globalRNG, 384)
		b := randomUint(globalRNG, 256)

		tt.MustAssert(a.Xor(b).Xor(a).Equal(b), "a^b^a == b for %s, %s", a, b)
		tt.MustAssert(a.Xor(b).Xor(b).Equal(a), "a^b^b == a for %s, %s", a, b)
	}
}

func TestUintBitwiseRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		b1, b2 := randomBigUint(globalRNG, 320), randomBigUint(globalRNG, 192)
		u1, u2 := uintFromBig(b1), uintFromBig(b2)

		tt.MustAssert(uintFromBig(new(big.Int).And(b1, b2)).Equal(u1.And(u2)))
		tt.MustAssert(uintFromBig(new(big.Int).Or(b1, b2)).Equal(u1.Or(u2)))
		tt.MustAssert(uintFromBig(new(big.Int).Xor(b1, b2)).Equal(u1.Xor(u2)))
	}
}

func TestUintShift(t *testing.T) {
	for _, tc := range []struct {
		v     Uint
		n     uint
		lsh   Uint
		back  Uint
	}{
		{u64(0), 5, u64(0), u64(0)},
		{u64(1), 0, u64(1), u64(1)},
		{u64(1), 1, u64(2), u64(1)},
		{u64(1), 31, u64(0x80000000), u64(1)},
		{u64(1), 32, us("0x1 00000000"), u64(1)},             // exact digit multiple
		{u64(1), 64, us("0x1 00000000 00000000"), u64(1)},    // exact digit multiple
		{u64(0x80000000), 1, us("0x1 00000000"), u64(0x80000000)}, // growth by one digit
		{us("0xDEADBEEF CAFEF00D"), 17, us("0x1BD5B 7DDF95FDE0 1A0000"), us("0xDEADBEEF CAFEF00D")},
	} {
		t.Run(fmt.Sprintf("%x<<%d", tc.v, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)

			shifted := tc.v.Lsh(tc.n)
			tt.MustAssert(tc.lsh.Equal(shifted), "found %x", shifted)
			tt.MustAssert(tc.back.Equal(shifted.Rsh(tc.n)))
		})
	}
}

func TestUintRsh(t *testing.T) {
	for _, tc := range []struct {
		v   Uint
		n   uint
		out Uint
	}{
		{u64(0xFF), 4, u64(0xF)},
		{u64(0xFF), 8, u64(0)},
		{u64(0xFF), 200, u64(0)}, // shift past every digit
		{us("0x1 00000000"), 32, u64(1)},
		{us("0x1 00000000"), 1, u64(0x80000000)},
		{us("0xDEADBEEF CAFEF00D 12345678"), 48, us("0xDEAD BEEFCAFE")},
	} {
		t.Run(fmt.Sprintf("%x>>%d", tc.v, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.out.Equal(tc.v.Rsh(tc.n)), "found %x", tc.v.Rsh(tc.n))
		})
	}
}

// x << n must agree with x * 2**n.
func TestUintShiftMulEquivalence(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		x := randomUint(globalRNG, 256)
		n := uint(globalRNG.Intn(130))

		pow := UintFrom64(1).Lsh(n)
		tt.MustAssert(x.Lsh(n).Equal(x.Mul(pow)), "%s<<%d", x, n)
	}
}

func TestUintShiftRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		b := randomBigUint(globalRNG, 320)
		v := uintFromBig(b)
		n := uint(globalRNG.Intn(200))

		tt.MustAssert(uintFromBig(new(big.Int).Lsh(b, n)).Equal(v.Lsh(n)), "%s<<%d", b, n)
		tt.MustAssert(uintFromBig(new(big.Int).Rsh(b, n)).Equal(v.Rsh(n)), "%s>>%d", b, n)
	}
}

func TestUintBit(t *testing.T) {
	tt := assert.WrapTB(t)

	v := us("0x1 00000000 80000001")
	tt.MustEqual(uint(1), v.Bit(0))
	tt.MustEqual(uint(0), v.Bit(1))
	tt.MustEqual(uint(1), v.Bit(31))
	tt.MustEqual(uint(0), v.Bit(32))
	tt.MustEqual(uint(1), v.Bit(64))
	tt.MustEqual(uint(0), v.Bit(65))
	tt.MustEqual(uint(0), v.Bit(100000))
}

func TestUintSetBit(t *testing.T) {
	for _, tc := range []struct {
		v   Uint
		i   uint
		b   uint
		out Uint
	}{
		{u64(0), 0, 1, u64(1)},
		{u64(0), 1, 1, u64(2)},
		{u64(1), 0, 0, u64(0)},
		{u64(1), 0, 1, u64(1)},
		{u64(0), 64, 1, us("0x1 00000000 00000000")},
		{us("0x1 00000000 00000001"), 64, 0, u64(1)},
		{us("0x1 00000000 00000000"), 64, 0, u64(0)},
		{us("0xFFFFFFFF"), 100000, 0, us("0xFFFFFFFF")},
	} {
		t.Run(fmt.Sprintf("setbit(%s,%d,%d)", tc.v, tc.i, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.out.Equal(tc.v.SetBit(tc.i, tc.b)))
		})
	}
}

func TestUintSetBitInvalid(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil, "expected invalid bit value panic")
	}()
	u64(0).SetBit(0, 2)
}

func TestUintBitLen(t *testing.T) {
	for _, tc := range []struct {
		v   Uint
		len int
	}{
		{u64(0), 0},
		{u64(1), 1},
		{u64(2), 2},
		{u64(0xFFFFFFFF), 32},
		{us("0x1 00000000"), 33},
		{us("0x1 00000000 00000000"), 65},
	} {
		t.Run(fmt.Sprintf("bitlen(%s)=%d", tc.v, tc.len), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.len, tc.v.BitLen())
		})
	}
}

func TestUintParity(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(u64(0).IsEven())
	tt.MustAssert(!u64(0).IsOdd())
	tt.MustAssert(u64(2).IsEven())
	tt.MustAssert(u64(3).IsOdd())
	tt.MustAssert(us("0x1 00000000").IsEven()) // parity lives in the lowest digit
	tt.MustAssert(us("0x1 00000001").IsOdd())
}

func TestUintTrailingZeros(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(uint(0), u64(0).TrailingZeros())
	tt.MustEqual(uint(0), u64(1).TrailingZeros())
	tt.MustEqual(uint(4), u64(16).TrailingZeros())
	tt.MustEqual(uint(32), us("0x1 00000000").TrailingZeros())
	tt.MustEqual(uint(33), us("0x2 00000000").TrailingZeros())
}
