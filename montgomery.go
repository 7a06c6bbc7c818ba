//
// montgomery.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"github.com/markkurossi/mpint/pkg/math"
)

// montgomery holds the precomputed constants for Montgomery
// multiplication modulo an odd modulus m with R = 2^(32*len(m)).
type montgomery struct {
	m   nat
	n   int
	rho uint32
	rr  nat
	one nat
}

// newMontgomery creates the Montgomery context for the odd modulus m.
func newMontgomery(m nat) *montgomery {
	m = m.norm()
	n := len(m)

	// R² mod m
	rr := reduce(Int{abs: lsh(nat{1}, uint(2*n*math.WordBits))}, m)

	one := makeNat(n)
	one[0] = 1

	return &montgomery{
		m:   m,
		n:   n,
		rho: montgomeryRho(m[0]),
		rr:  rr.pad(n),
		one: one,
	}
}

// montgomeryRho computes -m0⁻¹ mod 2^32 for odd m0. The initial
// estimate (3*m0)^2 is correct to 5 bits and every Newton-Raphson
// round doubles the number of correct bits.
func montgomeryRho(m0 uint32) uint32 {
	x := (3 * m0) ^ 2
	for i := 0; i < 3; i++ {
		x *= 2 - m0*x
	}
	return -x
}

// mul returns x*y/R mod m. The operands must be reduced modulo m and
// zero-extended to the modulus digit count. The result has the
// modulus digit count.
func (mont *montgomery) mul(x, y nat) nat {
	n := mont.n
	m := mont.m

	// One digit above the modulus for the accumulated value.
	z := makeNat(n + 1)
	for i := 0; i < n; i++ {
		c := addMulVVW(z[:n], y, x[i])
		t := uint64(z[n]) + uint64(c)
		z[n] = uint32(t)
		top := uint32(t >> math.WordBits)

		u := z[0] * mont.rho
		c = addMulVVW(z[:n], m, u)
		t = uint64(z[n]) + uint64(c)
		z[n] = uint32(t)
		top += uint32(t >> math.WordBits)

		// z[0] is now zero: divide by the radix.
		copy(z, z[1:])
		z[n] = top
	}
	if cmp(z, m) >= 0 {
		ext := m.pad(n + 1)
		subVV(z, z, ext)
	}
	return z[:n]
}

// toMont converts x, reduced modulo m, into Montgomery form.
func (mont *montgomery) toMont(x nat) nat {
	return mont.mul(x.pad(mont.n), mont.rr)
}

// fromMont converts x from Montgomery form.
func (mont *montgomery) fromMont(x nat) nat {
	return mont.mul(x, mont.one)
}

// exp returns x^e mod m. The base x must be reduced modulo m.
func (mont *montgomery) exp(x, e nat) nat {
	xm := mont.toMont(x)
	z := mont.toMont(nat{1})

	for i := e.bitLen() - 1; i >= 0; i-- {
		z = mont.mul(z, z)
		if e.bit(uint(i)) == 1 {
			z = mont.mul(z, xm)
		}
	}
	return mont.fromMont(z).norm()
}
