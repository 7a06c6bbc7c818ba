//
// mul.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// mulDigit returns x*d.
func mulDigit(x nat, d uint32) nat {
	switch d {
	case 0:
		return natZero
	case 1:
		return x
	case 2:
		return lsh(x, 1)
	}
	z := makeNat(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, d, 0)
	return z.norm()
}

// mul returns x*y using schoolbook multiplication.
func mul(x, y nat) nat {
	x = x.norm()
	y = y.norm()

	// Outer loop over the shorter operand.
	if len(x) > len(y) {
		x, y = y, x
	}
	if x.isZero() {
		return natZero
	}
	if len(x) == 1 {
		return mulDigit(y, x[0])
	}

	n := len(y)
	z := makeNat(len(x) + n)
	for i, d := range x {
		if d == 0 {
			continue
		}
		z[i+n] = addMulVVW(z[i:i+n], y, d)
	}
	return z.norm()
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, mul(x.mag(), y.mag()))
}
