//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/big"
	"testing"

	"github.com/markkurossi/mpint/env"
)

type binaryTest struct {
	a string
	b string
	r string
}

var addTests = []binaryTest{
	{"ff", "1", "100"},
	{"ffffffff", "1", "100000000"},
	{"ffffffffffffffffffffffff", "1", "1000000000000000000000000"},
	{"-ff", "1", "-fe"},
	{"ff", "-ff", "0"},
	{"1", "-100000000", "-ffffffff"},
	{"-1", "-ffffffff", "-100000000"},
	{"0", "-5", "-5"},
	{"-5", "0", "-5"},
}

func TestIntAdd(t *testing.T) {
	for idx, test := range addTests {
		a := MustParse(test.a)
		b := MustParse(test.b)
		r := a.Add(b)
		checkCanonical(t, "Add", r)
		if !r.Equal(MustParse(test.r)) {
			t.Errorf("TestIntAdd-%v: %v+%v=%v, expected %v\n",
				idx, a, b, r, test.r)
		}
	}
}

var subTests = []binaryTest{
	{"100", "ff", "1"},
	{"ff", "100", "-1"},
	{"100000000", "1", "ffffffff"},
	{"1000000000000000000000000", "1", "ffffffffffffffffffffffff"},
	{"-1", "ff", "-100"},
	{"1", "-ff", "100"},
	{"-100", "-ff", "-1"},
	{"123456789abcdef", "123456789abcdef", "0"},
	{"0", "5", "-5"},
	{"0", "-5", "5"},
}

func TestIntSub(t *testing.T) {
	for idx, test := range subTests {
		a := MustParse(test.a)
		b := MustParse(test.b)
		r := a.Sub(b)
		checkCanonical(t, "Sub", r)
		if !r.Equal(MustParse(test.r)) {
			t.Errorf("TestIntSub-%v: %v-%v=%v, expected %v\n",
				idx, a, b, r, test.r)
		}
	}
}

var mulTests = []struct {
	a int64
	b int64
	r string
}{
	{123456789, 987654321, "121932631112635269"},
	{-123456789, 987654321, "-121932631112635269"},
	{-123456789, -987654321, "121932631112635269"},
	{0, 987654321, "0"},
	{-1, 0, "0"},
	{2, 0x7fffffffffffffff, "18446744073709551614"},
	{0xffffffff, 0xffffffff, "18446744065119617025"},
}

func TestIntMul(t *testing.T) {
	for idx, test := range mulTests {
		a := NewInt(test.a)
		b := NewInt(test.b)
		r := a.Mul(b)
		checkCanonical(t, "Mul", r)
		if r.Decimal() != test.r {
			t.Errorf("TestIntMul-%v: %v*%v=%v, expected %v\n",
				idx, test.a, test.b, r.Decimal(), test.r)
		}
		r = b.Mul(a)
		if r.Decimal() != test.r {
			t.Errorf("TestIntMul-%v: %v*%v=%v, expected %v\n",
				idx, test.b, test.a, r.Decimal(), test.r)
		}
	}
}

func TestIntMulDigit(t *testing.T) {
	x := MustParse("fedcba9876543210fedcba9876543210")
	for _, d := range []int64{0, 1, 2, 3, 0xffffffff} {
		r := x.Mul(NewInt(d))
		expected := new(big.Int).Mul(toBig(x), big.NewInt(d))
		if toBig(r).Cmp(expected) != 0 {
			t.Errorf("%v*%v=%v, expected %x", x, d, r, expected)
		}
	}
}

func TestIntRingLaws(t *testing.T) {
	prg := env.NewPRG([]byte("TestIntRingLaws"))
	for i := 0; i < 500; i++ {
		a := randInt(t, prg, 600)
		b := randInt(t, prg, 600)
		c := randInt(t, prg, 300)

		if !a.Add(b).Equal(b.Add(a)) {
			t.Fatalf("%v+%v != %v+%v", a, b, b, a)
		}
		if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
			t.Fatalf("(%v+%v)+%v != %v+(%v+%v)", a, b, c, a, b, c)
		}
		if !a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) {
			t.Fatalf("%v*(%v+%v) != %v*%v+%v*%v", a, b, c, a, b, a, c)
		}
		if !a.Mul(b).Equal(b.Mul(a)) {
			t.Fatalf("%v*%v != %v*%v", a, b, b, a)
		}
		if d := a.Sub(a); !d.IsZero() {
			t.Fatalf("%v-%v=%v", a, a, d)
		}
		if !a.Sub(b).Add(b).Equal(a) {
			t.Fatalf("%v-%v+%v != %v", a, b, b, a)
		}
		checkCanonical(t, "Add", a.Add(b))
		checkCanonical(t, "Sub", a.Sub(b))
		checkCanonical(t, "Mul", a.Mul(c))
	}
}

func TestIntArithBig(t *testing.T) {
	prg := env.NewPRG([]byte("TestIntArithBig"))
	for i := 0; i < 500; i++ {
		a := randInt(t, prg, 1000)
		b := randInt(t, prg, 1000)
		ba := toBig(a)
		bb := toBig(b)

		if r, e := a.Add(b), new(big.Int).Add(ba, bb); toBig(r).Cmp(e) != 0 {
			t.Fatalf("%v+%v=%v, expected %x", a, b, r, e)
		}
		if r, e := a.Sub(b), new(big.Int).Sub(ba, bb); toBig(r).Cmp(e) != 0 {
			t.Fatalf("%v-%v=%v, expected %x", a, b, r, e)
		}
		if r, e := a.Mul(b), new(big.Int).Mul(ba, bb); toBig(r).Cmp(e) != 0 {
			t.Fatalf("%v*%v=%v, expected %x", a, b, r, e)
		}
		if r, e := a.Cmp(b), ba.Cmp(bb); r != e {
			t.Fatalf("cmp(%v,%v)=%v, expected %v", a, b, r, e)
		}
	}
}

func TestIntShift(t *testing.T) {
	prg := env.NewPRG([]byte("TestIntShift"))
	for i := 0; i < 300; i++ {
		v := randInt(t, prg, 500)
		var b [1]byte
		prg.Read(b[:])
		s := uint(b[0])

		// Exact round trip: the shifted in bits are zero.
		l := v.Lsh(s)
		checkCanonical(t, "Lsh", l)
		if r := l.Rsh(s); !r.Equal(v) {
			t.Fatalf("(%v<<%v)>>%v=%v", v, s, s, r)
		}
		e := new(big.Int).Lsh(toBig(v), s)
		if toBig(l).Cmp(e) != 0 {
			t.Fatalf("%v<<%v=%v, expected %x", v, s, l, e)
		}

		// Truncating case: right shift drops the low bits of the
		// magnitude.
		r := v.Rsh(s)
		checkCanonical(t, "Rsh", r)
		e = new(big.Int).Rsh(new(big.Int).Abs(toBig(v)), s)
		if v.Sign() < 0 {
			e.Neg(e)
		}
		if toBig(r).Cmp(e) != 0 {
			t.Fatalf("%v>>%v=%v, expected %x", v, s, r, e)
		}
	}
}

var shiftTests = []struct {
	v string
	s uint
	l string
	r string
}{
	{"1", 0, "1", "1"},
	{"1", 1, "2", "0"},
	{"1", 32, "100000000", "0"},
	{"ff", 4, "ff0", "f"},
	{"-ff", 4, "-ff0", "-f"},
	{"-1", 1, "-2", "0"},
	{"123456789", 36, "123456789000000000", "0"},
	{"deadbeefcafebabe", 31, "6f56df77e57f5d5f00000000", "1bd5b7ddf"},
}

func TestIntShiftVectors(t *testing.T) {
	for idx, test := range shiftTests {
		v := MustParse(test.v)
		if l := v.Lsh(test.s); !l.Equal(MustParse(test.l)) {
			t.Errorf("TestIntShiftVectors-%v: %v<<%v=%v, expected %v",
				idx, v, test.s, l, test.l)
		}
		if r := v.Rsh(test.s); !r.Equal(MustParse(test.r)) {
			t.Errorf("TestIntShiftVectors-%v: %v>>%v=%v, expected %v",
				idx, v, test.s, r, test.r)
		}
	}
}
