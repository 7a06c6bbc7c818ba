//
// div.go
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

// divmod returns the quotient u/v and the remainder u%v. The divisor
// v must be non-zero.
func divmod(u, v nat) (q, r nat) {
	u = u.norm()
	v = v.norm()
	if v.isZero() {
		panic(ErrDivisionByZero)
	}
	if cmp(u, v) < 0 {
		return natZero, u
	}
	if len(v) == 1 {
		q, rd := divDigit(u, v[0])
		return q, nat{rd}
	}
	if len(u) <= 2 {
		a := u.uint64()
		b := v.uint64()
		return natFromUint64(a / b), natFromUint64(a % b)
	}
	return divLarge(u, v)
}

// divDigit returns the quotient u/d and the remainder u%d.
func divDigit(u nat, d uint32) (nat, uint32) {
	q := makeNat(len(u))
	var r uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := r<<math.WordBits | uint64(u[i])
		q[i] = uint32(cur / uint64(d))
		r = cur % uint64(d)
	}
	return q.norm(), uint32(r)
}

// divLarge implements normalized long division (Knuth, TAOCP vol 2,
// 4.3.1, algorithm D). The divisor must have at least two digits and
// u must be at least as large as v.
func divLarge(u, v nat) (nat, nat) {
	n := len(v)
	m := len(u) - n

	// Normalize so that the top bit of the divisor is set.
	shift := uint(bits.LeadingZeros32(v[n-1]))
	vn := makeNat(n)
	un := makeNat(len(u) + 1)
	if shift == 0 {
		copy(vn, v)
		copy(un, u)
	} else {
		shlVU(vn, v, shift)
		un[len(u)] = shlVU(un[:len(u)], u, shift)
	}

	vtop := vn[n-1]
	vtop2 := vn[n-2]

	q := makeNat(m + 1)
	qv := makeNat(n + 1)

	for j := m; j >= 0; j-- {
		var qhat uint64
		if un[j+n] == vtop {
			qhat = math.MaxWord
		} else {
			num := uint64(un[j+n])<<math.WordBits | uint64(un[j+n-1])
			qhat = num / uint64(vtop)
		}

		// Correct the estimate with the divisor's top two digits
		// against the remainder's top three digits.
		est := mul3(qhat, vtop, vtop2)
		top := [3]uint32{un[j+n-2], un[j+n-1], un[j+n]}
		for cmp3(est, top) > 0 {
			qhat--
			est = sub3(est, vtop, vtop2)
		}

		// Multiply and subtract from the digit-shifted view of the
		// remainder.
		rv := un[j : j+n+1]
		qv[n] = mulAddVWW(qv[:n], vn, uint32(qhat), 0)
		if subVV(rv, rv, qv) != 0 {
			// The estimate was one too large: add the divisor back.
			c := addVV(rv[:n], rv[:n], vn)
			rv[n] += c
			qhat--
		}
		q[j] = uint32(qhat)
	}

	r := makeNat(n)
	if shift == 0 {
		copy(r, un[:n])
	} else {
		shrVU(r, un[:n], shift)
	}
	return q.norm(), r.norm()
}

// mul3 returns q*(hi:lo) as little-endian three digit value.
func mul3(q uint64, hi, lo uint32) [3]uint32 {
	p := q * uint64(lo)
	d0 := uint32(p)
	p = q*uint64(hi) + p>>math.WordBits
	return [3]uint32{d0, uint32(p), uint32(p >> math.WordBits)}
}

// sub3 returns x-(hi:lo).
func sub3(x [3]uint32, hi, lo uint32) [3]uint32 {
	d0, b := bits.Sub32(x[0], lo, 0)
	d1, b := bits.Sub32(x[1], hi, b)
	d2, _ := bits.Sub32(x[2], 0, b)
	return [3]uint32{d0, d1, d2}
}

// cmp3 compares two little-endian three digit values.
func cmp3(x, y [3]uint32) int {
	for i := 2; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// DivMod returns the quotient x/y and the remainder x%y. The quotient
// is truncated toward zero and the non-zero remainder has the sign of
// the dividend x so that x == y*q + r and |r| < |y|. DivMod panics
// with ErrDivisionByZero if y is zero; use QuoRem for a checked
// variant.
func (x Int) DivMod(y Int) (q, r Int) {
	qa, ra := divmod(x.mag(), y.mag())
	return makeInt(x.neg != y.neg, qa), makeInt(x.neg, ra)
}

// QuoRem is like DivMod but returns ErrDivisionByZero instead of
// panicking if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Zero, Zero, ErrDivisionByZero
	}
	q, r = x.DivMod(y)
	return q, r, nil
}

// Div returns the quotient x/y truncated toward zero.
func (x Int) Div(y Int) Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the remainder x%y. A non-zero result has the sign of
// x.
func (x Int) Mod(y Int) Int {
	_, r := x.DivMod(y)
	return r
}

// reduce returns x mod m in the range [0, |m|).
func reduce(x Int, m nat) nat {
	_, r := divmod(x.mag(), m)
	if x.neg && !r.isZero() {
		return sub(m, r)
	}
	return r
}
