//
// inverse.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// ModInverse returns x⁻¹ mod |m| in the range [0, |m|). The boolean
// result is false, and the returned value Zero, if x and m are not
// coprime or m is zero.
func (x Int) ModInverse(m Int) (Int, bool) {
	mabs := m.mag().norm()
	if mabs.isZero() {
		return Zero, false
	}
	inv, ok := modInverse(reduce(x, mabs), mabs)
	if !ok {
		return Zero, false
	}
	return makeInt(false, inv), true
}

// modInverse implements the extended Euclidean algorithm on
// magnitudes. The cofactors u1 and v1 are kept non-negative and their
// true signs alternate with each iteration so the algorithm only
// needs additions. The argument a must be reduced modulo m.
func modInverse(a, m nat) (nat, bool) {
	u1, u3 := nat{1}, a
	v1, v3 := natZero, m
	positive := true

	for !v3.isZero() {
		q, t3 := divmod(u3, v3)
		t1 := add(u1, mul(q, v1))

		u1, v1 = v1, t1
		u3, v3 = v3, t3
		positive = !positive
	}
	if cmp(u3, nat{1}) != 0 {
		return nil, false
	}
	if !positive {
		// u1 represents -u1.
		u1 = sub(m, u1)
	}
	_, r := divmod(u1, m)
	return r, true
}
