//
// exp.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// expSquareMultiply returns x^e mod m with left-to-right
// square-and-multiply and a full reduction after every
// multiplication. The base x must be reduced modulo m.
func expSquareMultiply(x, e, m nat) nat {
	z := reduce(One, m)
	for i := e.bitLen() - 1; i >= 0; i-- {
		_, z = divmod(mul(z, z), m)
		if e.bit(uint(i)) == 1 {
			_, z = divmod(mul(z, x), m)
		}
	}
	return z
}

func checkExp(e, m Int) nat {
	if e.Sign() < 0 {
		panic(ErrNegativeExponent)
	}
	mabs := m.mag().norm()
	if mabs.isZero() {
		panic(ErrDivisionByZero)
	}
	return mabs
}

// ExpMod returns x^e mod |m| in the range [0, |m|). Negative bases
// are reduced into the range before exponentiation. Odd moduli use
// Montgomery exponentiation and even moduli square-and-multiply with
// division based reduction. ExpMod panics if e is negative or m is
// zero.
func (x Int) ExpMod(e, m Int) Int {
	mabs := checkExp(e, m)
	base := reduce(x, mabs)
	if mabs[0]&1 == 1 {
		return makeInt(false, newMontgomery(mabs).exp(base, e.mag()))
	}
	return makeInt(false, expSquareMultiply(base, e.mag(), mabs))
}

// ExpModSquare returns x^e mod |m| using square-and-multiply with a
// division based reduction for all moduli. It computes the same
// result as ExpMod and serves as its reference strategy.
func ExpModSquare(x, e, m Int) Int {
	mabs := checkExp(e, m)
	return makeInt(false, expSquareMultiply(reduce(x, mabs), e.mag(), mabs))
}

// Modulus holds a positive modulus and, for odd moduli, its
// precomputed Montgomery constants. A Modulus is immutable and can be
// reused for any number of operations.
type Modulus struct {
	m    nat
	mont *montgomery
}

// NewModulus creates a new modulus context for m. The modulus must
// be positive.
func NewModulus(m Int) (*Modulus, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	mod := &Modulus{
		m: m.mag().norm(),
	}
	if m.IsOdd() {
		mod.mont = newMontgomery(mod.m)
	}
	return mod, nil
}

// Int returns the modulus value.
func (mod *Modulus) Int() Int {
	return makeInt(false, mod.m)
}

// BitLen returns the bit length of the modulus.
func (mod *Modulus) BitLen() int {
	return mod.m.bitLen()
}

// Montgomery tests if the modulus uses Montgomery arithmetic.
func (mod *Modulus) Montgomery() bool {
	return mod.mont != nil
}

// Reduce returns x mod m in the range [0, m).
func (mod *Modulus) Reduce(x Int) Int {
	return makeInt(false, reduce(x, mod.m))
}

// Add returns x+y mod m.
func (mod *Modulus) Add(x, y Int) Int {
	return mod.Reduce(x.Add(y))
}

// Sub returns x-y mod m.
func (mod *Modulus) Sub(x, y Int) Int {
	return mod.Reduce(x.Sub(y))
}

// Mul returns x*y mod m.
func (mod *Modulus) Mul(x, y Int) Int {
	a := reduce(x, mod.m)
	b := reduce(y, mod.m)
	if mod.mont == nil {
		_, r := divmod(mul(a, b), mod.m)
		return makeInt(false, r)
	}
	// (a*R)*b/R == a*b
	am := mod.mont.toMont(a)
	return makeInt(false, mod.mont.mul(am, b.pad(mod.mont.n)))
}

// Exp returns x^e mod m. Exp panics if e is negative.
func (mod *Modulus) Exp(x, e Int) Int {
	if e.Sign() < 0 {
		panic(ErrNegativeExponent)
	}
	base := reduce(x, mod.m)
	if mod.mont == nil {
		return makeInt(false, expSquareMultiply(base, e.mag(), mod.m))
	}
	return makeInt(false, mod.mont.exp(base, e.mag()))
}

// Inverse returns x⁻¹ mod m. The boolean result is false if x and m
// are not coprime.
func (mod *Modulus) Inverse(x Int) (Int, bool) {
	return x.ModInverse(mod.Int())
}
