package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	bignum "github.com/numkit/bignum"
)

// This little tool derives the boundary values used by the float conversion
// tests: the largest magnitude that still rounds to a finite float of the
// requested mantissa/exponent shape, and the first magnitude that does not.
// It exists because getting those constants wrong produces tests that pass
// for the wrong reason, and deriving them by hand twice produced two
// different answers.

const usage = `Float boundary finder

Usage: floatmax <mantbits> <maxexp>

Examples:
	floatmax 24 128    # float32
	floatmax 53 1024   # float64`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	mantBits, err := strconv.Atoi(os.Args[1])
	if err != nil {
		return err
	}
	maxExp, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return err
	}

	// Largest value that rounds to the top finite float: the max float is
	// (2^mant - 1) << (maxexp - mant); everything below the rounding
	// midpoint to 2^maxexp still rounds down to it.
	maxFloat := bignum.UintFrom64(1).Lsh(uint(mantBits)).Sub64(1).Lsh(uint(maxExp - mantBits))
	half := bignum.UintFrom64(1).Lsh(uint(maxExp - mantBits - 1))
	largest := maxFloat.Add(half).Sub64(1)
	first := largest.Add64(1)

	fmt.Printf("max finite:     %s\n", maxFloat)
	fmt.Printf("largest finite-rounding magnitude:\n  dec %s\n  hex %s\n", largest, largest.StringRadix(16))
	fmt.Printf("first overflowing magnitude:\n  dec %s\n  hex %s\n", first, first.StringRadix(16))

	spew.Dump(largest.Words())

	if f, ok := largest.Float64(); ok {
		fmt.Printf("largest as float64: %g\n", f)
	} else {
		fmt.Printf("largest as float64: out of range\n")
	}
	if _, ok := first.Float64(); ok && maxExp >= 1024 {
		return fmt.Errorf("boundary check failed: first overflowing magnitude converted")
	}

	return nil
}
