package bignum

const (
	wordBits  = 32
	wordBytes = 4

	maxWord = 1<<wordBits - 1

	// Mantissa widths including the implicit leading bit.
	float64MantBits = 53
	float32MantBits = 24

	// Largest power-of-two exponent representable as a finite float. A
	// magnitude whose rounded value reaches 1<<1024 (resp. 1<<128) has no
	// finite float64 (float32) representation.
	float64MaxExp = 1024
	float32MaxExp = 128
)

var (
	zeroUint Uint
	zeroInt  Int

	oneUint = Uint{digits: []uint32{1}}
)
