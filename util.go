package bignum

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint(a, b Uint) Uint {
	if a.GreaterThan(b) {
		return a.Sub(b)
	} else if b.GreaterThan(a) {
		return b.Sub(a)
	}
	return zeroUint
}

func LargerUint(a, b Uint) Uint {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerUint(a, b Uint) Uint {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.GreaterThan(b) {
		return a.Sub(b)
	} else if b.GreaterThan(a) {
		return b.Sub(a)
	}
	return zeroInt
}
