//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/markkurossi/mpint/env"
)

var divTests = []struct {
	a string
	b string
	q string
	r string
}{
	// Divisor larger than dividend.
	{"5", "7", "0", "5"},
	{"-5", "7", "0", "-5"},
	// Single digit divisor.
	{"ffffffffffffffffffffffff", "10", "fffffffffffffffffffffff", "f"},
	{"-64", "7", "-e", "-2"},
	{"64", "-7", "-e", "2"},
	{"-64", "-7", "e", "-2"},
	// Two digit dividend.
	{"123456789abcdef0", "100000001", "12345678", "88888878"},
	// Normalized long division.
	{"1000000000000000000000000", "100000001", "ffffffff00000000", "100000000"},
	{
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"800000000000000000000001",
		"fffffffffffffffffffffffe0000000000000000",
		"1ffffffffffffffff",
	},
	{"0", "123456789abcdef", "0", "0"},
}

func TestIntDivVectors(t *testing.T) {
	for idx, test := range divTests {
		a := MustParse(test.a)
		b := MustParse(test.b)
		q, r := a.DivMod(b)
		if !q.Equal(MustParse(test.q)) || !r.Equal(MustParse(test.r)) {
			t.Errorf("TestIntDivVectors-%v: %v/%v=%v,%v, expected %v,%v",
				idx, a, b, q, r, test.q, test.r)
		}
		checkCanonical(t, "quotient", q)
		checkCanonical(t, "remainder", r)
	}
}

func checkDivision(t *testing.T, a, b Int) {
	t.Helper()
	q, r := a.DivMod(b)
	checkCanonical(t, "quotient", q)
	checkCanonical(t, "remainder", r)

	if !b.Mul(q).Add(r).Equal(a) {
		t.Fatalf("%v != %v*%v+%v", a, b, q, r)
	}
	if r.CmpAbs(b) >= 0 {
		t.Fatalf("|%v| >= |%v|", r, b)
	}
	if !r.IsZero() && r.Sign() != a.Sign() {
		t.Fatalf("%v mod %v=%v: sign does not match dividend", a, b, r)
	}
	eq, er := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
	if toBig(q).Cmp(eq) != 0 || toBig(r).Cmp(er) != 0 {
		t.Fatalf("%v/%v=%v,%v, expected %x,%x", a, b, q, r, eq, er)
	}
}

func TestIntDivIdentity(t *testing.T) {
	prg := env.NewPRG([]byte("TestIntDivIdentity"))
	for i := 0; i < 2000; i++ {
		a := randInt(t, prg, 1200)
		b := randInt(t, prg, 600)
		if b.IsZero() {
			continue
		}
		checkDivision(t, a, b)
	}
}

func TestIntDivEdges(t *testing.T) {
	// Divisors whose top digit makes the quotient estimate saturate
	// and dividends that exercise the add back step.
	divisors := []string{
		"ffffffffffffffff",
		"800000000000000000000000",
		"8000000000000001",
		"100000000",
		"100000001",
		"ffffffff00000000ffffffff",
		"ffffffff",
		"1",
	}
	dividends := []string{
		"ffffffffffffffffffffffffffffffffffffffffffffffff",
		"fffffffeffffffff0000000000000000ffffffffffffffff",
		"800000000000000000000000000000000000000000000000",
		"7fffffff800000010000000000000000",
		"ffffffff00000000fffffffffffffffe00000001",
		"100000000000000000000000000000000",
	}
	for _, ds := range divisors {
		for _, as := range dividends {
			a := MustParse(as)
			b := MustParse(ds)
			checkDivision(t, a, b)
			checkDivision(t, a.Neg(), b)
			checkDivision(t, a, b.Neg())
		}
	}
}

func TestIntDivByZero(t *testing.T) {
	_, _, err := NewInt(1).QuoRem(Zero)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("QuoRem: got %v, expected %v", err, ErrDivisionByZero)
	}
	q, r, err := NewInt(-7).QuoRem(NewInt(2))
	if err != nil || q.Int64() != -3 || r.Int64() != -1 {
		t.Errorf("QuoRem(-7,2)=%v,%v,%v", q, r, err)
	}

	defer func() {
		if r := recover(); r != ErrDivisionByZero {
			t.Errorf("Div: got panic %v, expected %v", r, ErrDivisionByZero)
		}
	}()
	NewInt(1).Div(Zero)
}
