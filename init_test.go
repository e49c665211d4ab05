package bignum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "bignum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "bignum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bignum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

var u64 = UintFrom64

// us parses a decimal, hex (0x) or binary (0b) string into a Uint,
// tolerating spaces as visual separators. Test-table sugar.
func us(s string) Uint {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 {
		panic(fmt.Errorf("bignum: uint string %q invalid", s))
	}
	return UintFromBytesBE(b.Bytes())
}

// is is the signed analogue of us.
func is(s string) Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("bignum: int string %q invalid", s))
	}
	return intFromBig(b)
}

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(fmt.Errorf("bignum: big.Int string %q invalid", s))
	}
	return v
}

func bigFromUint(u Uint) *big.Int {
	return new(big.Int).SetBytes(u.BytesBE())
}

func uintFromBig(b *big.Int) Uint {
	if b.Sign() < 0 {
		panic(fmt.Errorf("bignum: negative big.Int %s in uint fuzz", b))
	}
	return UintFromBytesBE(b.Bytes())
}

func bigFromInt(i Int) *big.Int {
	b := new(big.Int).SetBytes(i.Abs().BytesBE())
	if i.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

func intFromBig(b *big.Int) Int {
	return IntFromSign(b.Sign(), UintFromBytesBE(new(big.Int).Abs(b).Bytes()))
}

// randomBigUint generates a big.Int of a uniformly chosen bit length up to
// maxBits, so short and cross-digit-boundary values come up as often as
// large ones.
func randomBigUint(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}
	bits := rng.Intn(maxBits + 1)
	if bits == 0 {
		return new(big.Int)
	}
	v := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	v.SetBit(v, bits-1, 1) // pin the chosen bit length
	return v
}

func randomUint(rng *rand.Rand, maxBits int) Uint {
	return uintFromBig(randomBigUint(rng, maxBits))
}
