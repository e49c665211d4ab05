package bignum

import (
	"fmt"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ParseError describes a failure to parse a string as a Uint or Int.
type ParseError struct {
	Input string
	Radix int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bignum: cannot parse %q in base %d: %s", e.Input, e.Radix, e.Msg)
}

func parseErr(s string, radix int, msg string) error {
	return &ParseError{Input: s, Radix: radix, Msg: msg}
}

// UintFromString parses a base-10 string; see UintFromStringRadix.
func UintFromString(s string) (Uint, error) {
	return UintFromStringRadix(s, 10)
}

// UintFromStringRadix parses s in the given radix (2 to 36 inclusive).
// Digits are 0-9 and a-z/A-Z up to the radix's digit count, case
// insensitive. A single leading '+' is accepted; '_' is ignored as a digit
// group separator but may only appear between digits. Anything else,
// including a '-' sign or an empty digit sequence, is a ParseError.
func UintFromStringRadix(s string, radix int) (Uint, error) {
	if radix < 2 || radix > 36 {
		return Uint{}, parseErr(s, radix, "unsupported radix")
	}

	digits := s
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return Uint{}, parseErr(s, radix, "no digits")
	}
	if digits[0] == '_' {
		return Uint{}, parseErr(s, radix, "separator before first digit")
	}

	var out []uint32
	seen := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '_' {
			continue
		}
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'z':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			d = uint32(c-'A') + 10
		default:
			return Uint{}, parseErr(s, radix, fmt.Sprintf("invalid character %q", c))
		}
		if d >= uint32(radix) {
			return Uint{}, parseErr(s, radix, fmt.Sprintf("digit %q out of range", c))
		}
		out = mulAddWord(out, uint32(radix), d)
		seen++
	}
	if seen == 0 {
		return Uint{}, parseErr(s, radix, "no digits")
	}
	return Uint{digits: normWords(out)}, nil
}

// StringRadix renders u in the given radix (2 to 36 inclusive) using
// lowercase digits, with no sign or separators; the zero value renders as
// "0". Radix out of range is a run-time panic.
func (u Uint) StringRadix(radix int) string {
	return string(u.appendStringRadix(nil, radix, false))
}

func (u Uint) appendStringRadix(dst []byte, radix int, upper bool) []byte {
	if radix < 2 || radix > 36 {
		panic("bignum: unsupported radix")
	}
	if len(u.digits) == 0 {
		return append(dst, '0')
	}

	start := len(dst)
	rem := cloneWords(u.digits)
	for len(rem) > 0 {
		var d uint32
		rem, d = quoRemWord(rem, uint32(radix))
		c := digitAlphabet[d]
		if upper && c >= 'a' {
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	for l, r := start, len(dst)-1; l < r; l, r = l+1, r-1 {
		dst[l], dst[r] = dst[r], dst[l]
	}
	return dst
}

// RadixBE returns u as a sequence of positional digit values (not
// characters) in the given radix, most significant digit first. The zero
// value yields a single zero digit. ok is false if the radix is outside
// 2 to 256 inclusive.
func (u Uint) RadixBE(radix int) (digits []byte, ok bool) {
	out, ok := u.RadixLE(radix)
	if !ok {
		return nil, false
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out, true
}

// RadixLE is RadixBE with the least significant digit first.
func (u Uint) RadixLE(radix int) (digits []byte, ok bool) {
	if radix < 2 || radix > 256 {
		return nil, false
	}
	if len(u.digits) == 0 {
		return []byte{0}, true
	}
	if radix == 256 {
		return u.BytesLE(), true
	}

	out := make([]byte, 0, u.BitLen())
	rem := cloneWords(u.digits)
	for len(rem) > 0 {
		var d uint32
		rem, d = quoRemWord(rem, uint32(radix))
		out = append(out, byte(d))
	}
	return out, true
}

// UintFromRadixBE builds a Uint from positional digit values, most
// significant first. ok is false if the radix is outside 2 to 256 inclusive
// or any digit is not strictly less than the radix. An empty digit sequence
// is the zero value.
func UintFromRadixBE(digits []byte, radix int) (out Uint, ok bool) {
	if radix < 2 || radix > 256 {
		return Uint{}, false
	}
	var words []uint32
	for _, d := range digits {
		if int(d) >= radix {
			return Uint{}, false
		}
		words = mulAddWord(words, uint32(radix), uint32(d))
	}
	return Uint{digits: normWords(words)}, true
}

// UintFromRadixLE is UintFromRadixBE with the least significant digit first.
func UintFromRadixLE(digits []byte, radix int) (out Uint, ok bool) {
	if radix < 2 || radix > 256 {
		return Uint{}, false
	}
	var words []uint32
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if int(d) >= radix {
			return Uint{}, false
		}
		words = mulAddWord(words, uint32(radix), uint32(d))
	}
	return Uint{digits: normWords(words)}, true
}
