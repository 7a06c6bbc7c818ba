//
// int.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"errors"
	"math/bits"
)

var (
	// ErrSyntax is returned when a hexadecimal string can't be parsed.
	ErrSyntax = errors.New("mpint: invalid syntax")

	// ErrShortBuffer is returned when a value does not fit into the
	// caller supplied output buffer.
	ErrShortBuffer = errors.New("mpint: short buffer")

	// ErrDivisionByZero is returned, or raised as a panic by the
	// unchecked division operations, when the divisor is zero.
	ErrDivisionByZero = errors.New("mpint: division by zero")

	// ErrNegativeExponent is raised as a panic when a modular
	// exponentiation is called with a negative exponent.
	ErrNegativeExponent = errors.New("mpint: negative exponent")

	// ErrInvalidModulus is returned when a modulus is not positive.
	ErrInvalidModulus = errors.New("mpint: invalid modulus")

	// ErrInvalidBitLength is returned when a random value is
	// requested with a negative bit length.
	ErrInvalidBitLength = errors.New("mpint: invalid bit length")
)

// Int implements an arbitrary-precision signed integer. Int values
// are immutable: all operations return new values and the digit
// storage of an Int can be shared freely between copies. The zero
// value of Int is 0.
type Int struct {
	neg bool
	abs nat
}

var (
	// Zero is the value 0.
	Zero = Int{abs: natZero}

	// One is the value 1.
	One = Int{abs: nat{1}}
)

// makeInt creates a canonical Int from the sign and magnitude.
func makeInt(neg bool, abs nat) Int {
	abs = abs.norm()
	if len(abs) == 1 && abs[0] == 0 {
		return Zero
	}
	return Int{
		neg: neg,
		abs: abs,
	}
}

// mag returns the magnitude of x.
func (x Int) mag() nat {
	if len(x.abs) == 0 {
		return natZero
	}
	return x.abs
}

// NewInt creates a new Int with the value x.
func NewInt(x int64) Int {
	if x < 0 {
		return makeInt(true, natFromUint64(uint64(-x)))
	}
	return makeInt(false, natFromUint64(uint64(x)))
}

// NewUint64 creates a new Int with the value x.
func NewUint64(x uint64) Int {
	return makeInt(false, natFromUint64(x))
}

// Sign returns -1, 0, or +1 if x is negative, zero, or positive.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero tests if x is zero.
func (x Int) IsZero() bool {
	return x.mag().isZero()
}

// IsOdd tests if x is odd.
func (x Int) IsOdd() bool {
	return x.mag()[0]&1 == 1
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return makeInt(false, x.mag())
}

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(!x.neg, x.mag())
}

// Cmp compares x and y and returns -1, 0, or +1 if x is smaller,
// equal, or greater than y. Zero compares equal to zero regardless of
// its stored sign.
func (x Int) Cmp(y Int) int {
	xneg := x.neg && !x.IsZero()
	yneg := y.neg && !y.IsZero()
	if xneg != yneg {
		if xneg {
			return -1
		}
		return 1
	}
	r := cmp(x.mag(), y.mag())
	if xneg {
		return -r
	}
	return r
}

// CmpAbs compares the magnitudes of x and y.
func (x Int) CmpAbs(y Int) int {
	return cmp(x.mag(), y.mag())
}

// Equal tests if x and y have the same value.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// BitLen returns the number of significant bits in |x|. The bit
// length of 0 is 0.
func (x Int) BitLen() int {
	return x.mag().bitLen()
}

// ByteLen returns the number of significant bytes in |x|.
func (x Int) ByteLen() int {
	return (x.BitLen() + 7) / 8
}

// Bit returns the i'th bit of |x|.
func (x Int) Bit(i int) uint {
	if i < 0 {
		panic("mpint: negative bit index")
	}
	return x.mag().bit(uint(i))
}

// NumDigits returns the number of 32-bit digits in the magnitude of
// x.
func (x Int) NumDigits() int {
	return len(x.mag().norm())
}

// IsInt64 tests if x can be represented as int64.
func (x Int) IsInt64() bool {
	abs := x.mag().norm()
	if len(abs) > 2 {
		return false
	}
	v := abs.uint64()
	if x.neg {
		return v <= 1<<63
	}
	return v < 1<<63
}

// Int64 returns the int64 representation of x. If x cannot be
// represented as int64, the result is undefined.
func (x Int) Int64() int64 {
	v := int64(x.mag().uint64())
	if x.neg {
		return -v
	}
	return v
}

// Uint64 returns the low 64 bits of |x|.
func (x Int) Uint64() uint64 {
	return x.mag().uint64()
}

// TrailingZeroBits returns the number of consecutive least
// significant zero bits of |x|.
func (x Int) TrailingZeroBits() uint {
	abs := x.mag()
	for i, d := range abs {
		if d != 0 {
			return uint(i)*32 + uint(bits.TrailingZeros32(d))
		}
	}
	return 0
}
