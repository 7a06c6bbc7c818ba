//
// shift.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"github.com/markkurossi/mpint/pkg/math"
)

// lsh returns x<<s.
func lsh(x nat, s uint) nat {
	x = x.norm()
	if x.isZero() {
		return natZero
	}
	n := int(s / math.WordBits)
	r := s % math.WordBits

	z := makeNat(len(x) + n + 1)
	if r == 0 {
		copy(z[n:], x)
	} else {
		z[n+len(x)] = shlVU(z[n:n+len(x)], x, r)
	}
	return z.norm()
}

// rsh returns x>>s.
func rsh(x nat, s uint) nat {
	x = x.norm()
	n := int(s / math.WordBits)
	if n >= len(x) {
		return natZero
	}
	r := s % math.WordBits

	z := makeNat(len(x) - n)
	if r == 0 {
		copy(z, x[n:])
	} else {
		shrVU(z, x[n:], r)
	}
	return z.norm()
}

// Lsh returns x<<n. The sign of x is preserved.
func (x Int) Lsh(n uint) Int {
	return makeInt(x.neg, lsh(x.mag(), n))
}

// Rsh returns x>>n. The shift operates on the magnitude of x and
// truncates toward zero: for negative x the result is -(|x|>>n) and
// not the floor of x/2^n.
func (x Int) Rsh(n uint) Int {
	return makeInt(x.neg, rsh(x.mag(), n))
}
