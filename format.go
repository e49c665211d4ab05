package bignum

import (
	"fmt"
)

// Format implements fmt.Formatter. The verbs d, b, o, O, x, X, s and v are
// supported, along with the '#' (base prefix), '+' and ' ' (sign), '0'
// (zero fill), '-' (left align) flags and a minimum width. Fill, width and
// alignment apply to the whole rendered token including sign and prefix.
func (u Uint) Format(s fmt.State, verb rune) {
	formatValue(s, verb, false, u)
}

// Format implements fmt.Formatter; see Uint.Format.
func (i Int) Format(s fmt.State, verb rune) {
	formatValue(s, verb, i.sign < 0, i.abs)
}

func formatValue(s fmt.State, verb rune, neg bool, abs Uint) {
	var radix int
	var upper bool
	var prefix string

	switch verb {
	case 'd', 's', 'v':
		radix = 10
	case 'b':
		radix = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	case 'o':
		radix = 8
		if s.Flag('#') {
			prefix = "0"
		}
	case 'O':
		radix = 8
		prefix = "0o"
	case 'x':
		radix = 16
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		radix = 16
		upper = true
		if s.Flag('#') {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(bignum=%s)", verb, abs.String())
		return
	}

	var sign string
	if neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	digits := abs.appendStringRadix(nil, radix, upper)

	width, hasWidth := s.Width()
	pad := 0
	if hasWidth {
		pad = width - len(sign) - len(prefix) - len(digits)
	}

	switch {
	case pad <= 0:
		writeStrings(s, sign, prefix, string(digits), "")
	case s.Flag('-'):
		writeStrings(s, sign, prefix, string(digits), "")
		writeFill(s, ' ', pad)
	case s.Flag('0'):
		// Zero fill goes between the sign/prefix and the digits so the
		// token is still a valid numeral.
		writeStrings(s, sign, prefix, "", "")
		writeFill(s, '0', pad)
		s.Write(digits)
	default:
		writeFill(s, ' ', pad)
		writeStrings(s, sign, prefix, string(digits), "")
	}
}

func writeStrings(s fmt.State, parts ...string) {
	for _, p := range parts {
		if p != "" {
			s.Write([]byte(p))
		}
	}
}

func writeFill(s fmt.State, c byte, n int) {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	s.Write(buf)
}
