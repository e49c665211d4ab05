/*
Package bignum provides arbitrary-precision unsigned (Uint) and signed (Int)
integer types built on a canonical little-endian digit sequence.

Uint and Int are value types; all operations return new values. The zero
value of either type is ready to use and represents the number 0.

Uint and Int can be created from a variety of sources:

	UintFromWords(words []uint32) Uint
	UintFrom64(v uint64) Uint
	UintFrom32(v uint32) Uint
	UintFrom16(v uint16) Uint
	UintFrom8(v uint8) Uint
	UintFromBytesBE(b []byte) Uint
	UintFromBytesLE(b []byte) Uint
	UintFromString(s string) (Uint, error)
	UintFromStringRadix(s string, radix int) (Uint, error)
	UintFromFloat64(f float64) (out Uint, ok bool)
	UintFromFloat32(f float32) (out Uint, ok bool)

Operations with a recoverable failure mode come in two flavours: a checked
form returning an "ok" bool (CheckedSub, CheckedQuoRem, AsUint64, ...) and an
unchecked form that panics on exactly the inputs the checked form rejects
(Sub, QuoRem, ...).

Uint and Int support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Random generation consumes a caller-supplied RandSource; math/rand.Rand
satisfies it directly.
*/
package bignum
