//
// nat.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/bits"

	"github.com/markkurossi/mpint/pkg/math"
)

// nat holds the magnitude of an Int as little-endian digits. A
// canonical nat has at least one digit and no most significant zero
// digits except for the single digit value zero.
//
// The digits of a nat stored in an Int are shared by all copies of
// the Int and they must never be modified. Algorithms allocate fresh
// nat values for their results and scratch space and only mutate
// those.
type nat []uint32

var natZero = nat{0}

// makeNat allocates a zero-filled nat with n digits.
func makeNat(n int) nat {
	if n < 1 {
		n = 1
	}
	return make(nat, n)
}

// natFromUint64 creates a canonical nat from x.
func natFromUint64(x uint64) nat {
	if x>>math.WordBits == 0 {
		return nat{uint32(x)}
	}
	return nat{uint32(x), uint32(x >> math.WordBits)}
}

// norm strips the most significant zero digits of z.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return natZero
	}
	return z[:i]
}

// isZero tests if z is zero. The test accepts non-canonical values.
func (z nat) isZero() bool {
	for _, d := range z {
		if d != 0 {
			return false
		}
	}
	return true
}

// clone returns a private copy of z.
func (z nat) clone() nat {
	r := makeNat(len(z))
	copy(r, z)
	return r
}

// pad returns z zero-extended to n digits. The result is always a
// private copy.
func (z nat) pad(n int) nat {
	if n < len(z) {
		n = len(z)
	}
	r := makeNat(n)
	copy(r, z)
	return r
}

// uint64 returns the low 64 bits of z.
func (z nat) uint64() uint64 {
	var r uint64
	if len(z) > 1 {
		r = uint64(z[1]) << math.WordBits
	}
	if len(z) > 0 {
		r |= uint64(z[0])
	}
	return r
}

// bitLen returns the number of significant bits in z.
func (z nat) bitLen() int {
	z = z.norm()
	return (len(z)-1)*math.WordBits + bits.Len32(z[len(z)-1])
}

// bit returns the i'th bit of z.
func (z nat) bit(i uint) uint {
	j := i / math.WordBits
	if j >= uint(len(z)) {
		return 0
	}
	return uint(z[j]>>(i%math.WordBits)) & 1
}

// cmp compares x and y ignoring most significant zero digits and
// returns -1, 0, or +1 if x is smaller, equal, or greater than y.
func cmp(x, y nat) int {
	x = x.norm()
	y = y.norm()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addVV sets z = x+y and returns the carry. All slices must have the
// same length.
func addVV(z, x, y []uint32) uint32 {
	var c uint64
	for i := range z {
		c += uint64(x[i]) + uint64(y[i])
		z[i] = uint32(c)
		c >>= math.WordBits
	}
	return uint32(c)
}

// addVW sets z = x+y and returns the carry.
func addVW(z, x []uint32, y uint32) uint32 {
	c := uint64(y)
	for i := range z {
		c += uint64(x[i])
		z[i] = uint32(c)
		c >>= math.WordBits
	}
	return uint32(c)
}

// subVV sets z = x-y and returns the borrow. All slices must have the
// same length.
func subVV(z, x, y []uint32) uint32 {
	var b uint32
	for i := range z {
		d, b1 := bits.Sub32(x[i], y[i], b)
		z[i] = d
		b = b1
	}
	return b
}

// subVW sets z = x-y and returns the borrow.
func subVW(z, x []uint32, y uint32) uint32 {
	b := y
	for i := range z {
		d, b1 := bits.Sub32(x[i], b, 0)
		z[i] = d
		b = b1
	}
	return b
}

// mulAddVWW sets z = x*y+r and returns the carry digit.
func mulAddVWW(z, x []uint32, y, r uint32) uint32 {
	c := uint64(r)
	for i := range z {
		c += uint64(x[i]) * uint64(y)
		z[i] = uint32(c)
		c >>= math.WordBits
	}
	return uint32(c)
}

// addMulVVW sets z += x*y and returns the carry digit. The slices z
// and x must have the same length.
func addMulVVW(z, x []uint32, y uint32) uint32 {
	var c uint64
	for i := range z {
		c += uint64(x[i])*uint64(y) + uint64(z[i])
		z[i] = uint32(c)
		c >>= math.WordBits
	}
	return uint32(c)
}

// shlVU sets z = x<<s for 0 < s < WordBits and returns the bits
// shifted out of the top digit. The slices may alias.
func shlVU(z, x []uint32, s uint) uint32 {
	n := len(x)
	if n == 0 {
		return 0
	}
	ŝ := math.WordBits - s
	c := x[n-1] >> ŝ
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x>>s for 0 < s < WordBits and returns the bits
// shifted out of the bottom digit. The slices may alias.
func shrVU(z, x []uint32, s uint) uint32 {
	n := len(x)
	if n == 0 {
		return 0
	}
	ŝ := math.WordBits - s
	c := x[0] << ŝ
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[n-1] = x[n-1] >> s
	return c
}
