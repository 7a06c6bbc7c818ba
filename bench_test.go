//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
	"testing"

	"github.com/markkurossi/mpint/env"
)

func benchOperands(b *testing.B, bits int) (Int, Int, Int) {
	prg := env.NewPRG([]byte(fmt.Sprintf("bench-%d", bits)))
	m, err := Rand(prg, bits)
	if err != nil {
		b.Fatal(err)
	}
	// Full size odd modulus.
	m = m.Add(One.Lsh(uint(bits - 1)))
	if !m.IsOdd() {
		m = m.Add(One)
	}
	x, err := RandBelow(prg, m)
	if err != nil {
		b.Fatal(err)
	}
	e, err := Rand(prg, bits)
	if err != nil {
		b.Fatal(err)
	}
	return x, e, m
}

func benchmarkExpMod(b *testing.B, bits int) {
	x, e, m := benchOperands(b, bits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.ExpMod(e, m)
	}
}

func benchmarkExpModSquare(b *testing.B, bits int) {
	x, e, m := benchOperands(b, bits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExpModSquare(x, e, m)
	}
}

func BenchmarkExpMod512(b *testing.B) {
	benchmarkExpMod(b, 512)
}

func BenchmarkExpMod1024(b *testing.B) {
	benchmarkExpMod(b, 1024)
}

func BenchmarkExpMod2048(b *testing.B) {
	benchmarkExpMod(b, 2048)
}

func BenchmarkExpModSquare512(b *testing.B) {
	benchmarkExpModSquare(b, 512)
}

func BenchmarkExpModSquare1024(b *testing.B) {
	benchmarkExpModSquare(b, 1024)
}

func BenchmarkMul2048(b *testing.B) {
	x, y, _ := benchOperands(b, 2048)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkDivMod4096(b *testing.B) {
	x, y, m := benchOperands(b, 2048)
	u := x.Mul(y)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.DivMod(m)
	}
}
