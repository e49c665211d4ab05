package bignum

// RandSource is the uniform-random-bits capability consumed by the bounded
// generators. It is always supplied by the caller, never process-global, so
// generation is reproducible given a fixed source. math/rand.Rand satisfies
// it directly.
type RandSource interface {
	Uint64() uint64
}

// RandUint generates a uniform random Uint of at most nbits bits from an
// external source. Zero bits yields the zero value.
func RandUint(source RandSource, nbits uint) Uint {
	if nbits == 0 {
		return Uint{}
	}
	words := int((nbits + wordBits - 1) / wordBits)
	d := make([]uint32, words)

	i := 0
	for ; i+2 <= words; i += 2 {
		v := source.Uint64()
		d[i] = uint32(v)
		d[i+1] = uint32(v >> wordBits)
	}
	if i < words {
		d[i] = uint32(source.Uint64())
	}

	if rem := nbits % wordBits; rem != 0 {
		d[words-1] &= 1<<rem - 1
	}
	return Uint{digits: normWords(d)}
}

// RandUintBelow generates a uniform random Uint in [0, bound) by drawing
// candidates of bound's bit length and rejecting any >= bound. A zero bound
// is a run-time panic.
func RandUintBelow(source RandSource, bound Uint) Uint {
	if bound.IsZero() {
		panic("bignum: zero random bound")
	}
	nbits := uint(bound.BitLen())
	for {
		if out := RandUint(source, nbits); out.LessThan(bound) {
			return out
		}
	}
}

// RandUintRange generates a uniform random Uint in [low, high). It is a
// run-time panic unless low < high.
func RandUintRange(source RandSource, low, high Uint) Uint {
	if !low.LessThan(high) {
		panic("bignum: invalid range")
	}
	return low.Add(RandUintBelow(source, high.Sub(low)))
}
