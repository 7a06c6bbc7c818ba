//
// arith.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// add returns x+y.
func add(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	m := len(x)
	n := len(y)

	// One extra digit for the final carry.
	z := makeNat(m + 1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub returns x-y. The magnitude of x must be greater than or equal
// to the magnitude of y.
func sub(x, y nat) nat {
	x = x.norm()
	y = y.norm()
	m := len(x)
	n := len(y)
	if m < n {
		panic("mpint: subtraction underflow")
	}
	z := makeNat(m)
	b := subVV(z[:n], x[:n], y)
	if m > n {
		b = subVW(z[n:], x[n:], b)
	}
	if b != 0 {
		panic("mpint: subtraction underflow")
	}
	return z.norm()
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		return y
	}
	if x.neg != y.neg {
		// x + y == x - (-y)
		return x.Sub(y.Neg())
	}
	return makeInt(x.neg, add(x.mag(), y.mag()))
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		return y.Neg()
	}
	if x.neg != y.neg {
		// x - y == x + (-y)
		return x.Add(y.Neg())
	}
	if cmp(x.mag(), y.mag()) >= 0 {
		return makeInt(x.neg, sub(x.mag(), y.mag()))
	}
	return makeInt(!x.neg, sub(y.mag(), x.mag()))
}
