package bignum

// ModPow returns base**exp mod mod, computed by binary square-and-multiply
// over the exponent's bits from most to least significant, reducing modulo
// mod at every step. The result is always < mod; mod may be even or odd.
// A zero modulus is a run-time panic.
func ModPow(base, exp, mod Uint) Uint {
	if len(mod.digits) == 0 {
		panic("bignum: division by zero")
	}
	if mod.Equal(oneUint) {
		return Uint{}
	}

	result := UintFrom64(1)
	base = base.Rem(mod)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = result.Mul(result).Rem(mod)
		if exp.Bit(uint(i)) == 1 {
			result = result.Mul(base).Rem(mod)
		}
	}
	return result
}

// Gcd returns the greatest common divisor of a and b by repeated Euclidean
// remainder. Gcd(x, 0) == Gcd(0, x) == x.
func Gcd(a, b Uint) Uint {
	a = Uint{digits: cloneWords(a.digits)}
	b = Uint{digits: cloneWords(b.digits)}
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a
}

// Lcm returns the least common multiple a*b / Gcd(a, b). The result is zero
// whenever either operand is zero.
func Lcm(a, b Uint) Uint {
	if a.IsZero() || b.IsZero() {
		return Uint{}
	}
	return a.Quo(Gcd(a, b)).Mul(b)
}
