//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command mpbench compares the modular exponentiation strategies of
// the mpint engine with each other and with math/big.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
)

type operands struct {
	x mpint.Int
	e mpint.Int
	m mpint.Int
}

func main() {
	bits := flag.Int("bits", 2048, "Modulus size in bits")
	rounds := flag.Int("rounds", 10, "Exponentiations per strategy")
	seed := flag.String("seed", "mpbench", "Random seed for the operands")
	even := flag.Bool("even", false, "Use an even modulus")
	flag.Parse()

	log.SetFlags(0)

	if *bits < 2 || *rounds <= 0 {
		log.Fatalf("invalid arguments: bits=%d, rounds=%d", *bits, *rounds)
	}
	ops, err := newOperands(env.NewPRG([]byte(*seed)), *bits, *rounds, *even)
	if err != nil {
		log.Fatal(err)
	}
	timing, err := run(ops)
	if err != nil {
		log.Fatal(err)
	}
	timing.Print(os.Stdout, *bits)
}

// newOperands creates rounds random operand triples with a full
// width modulus of bits bits.
func newOperands(rand io.Reader, bits, rounds int, even bool) (
	[]operands, error) {

	top := mpint.One.Lsh(uint(bits - 1))

	var result []operands
	for i := 0; i < rounds; i++ {
		m, err := mpint.RandBelow(rand, top)
		if err != nil {
			return nil, err
		}
		m = m.Add(top)
		if m.IsOdd() == even {
			m = m.Add(mpint.One)
			if m.BitLen() > bits {
				m = m.Sub(mpint.NewInt(2))
			}
		}
		x, err := mpint.RandBelow(rand, m)
		if err != nil {
			return nil, err
		}
		e, err := mpint.Rand(rand, bits)
		if err != nil {
			return nil, err
		}
		result = append(result, operands{
			x: x,
			e: e,
			m: m,
		})
	}
	return result, nil
}

// run times the exponentiation strategies. The math/big result is
// the reference for the verification column.
func run(ops []operands) (*Timing, error) {
	expected := make([]mpint.Int, len(ops))
	results := make([]mpint.Int, len(ops))
	timing := new(Timing)

	start := time.Now()
	for i, op := range ops {
		r := new(big.Int).Exp(toBig(op.x), toBig(op.e), toBig(op.m))
		expected[i] = mpint.FromBytes(r.Bytes())
	}
	timing.Add("math/big", len(ops), time.Since(start), true)

	strategies := []struct {
		label string
		exp   func(op operands) (mpint.Int, error)
	}{
		{
			label: "ExpMod",
			exp: func(op operands) (mpint.Int, error) {
				return op.x.ExpMod(op.e, op.m), nil
			},
		},
		{
			label: "Modulus.Exp",
			exp: func(op operands) (mpint.Int, error) {
				mod, err := mpint.NewModulus(op.m)
				if err != nil {
					return mpint.Zero, err
				}
				return mod.Exp(op.x, op.e), nil
			},
		},
		{
			label: "ExpModSquare",
			exp: func(op operands) (mpint.Int, error) {
				return mpint.ExpModSquare(op.x, op.e, op.m), nil
			},
		},
	}
	for _, s := range strategies {
		start := time.Now()
		for i, op := range ops {
			r, err := s.exp(op)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.label, err)
			}
			results[i] = r
		}
		d := time.Since(start)

		verified := true
		for i := range ops {
			if !results[i].Equal(expected[i]) {
				verified = false
				break
			}
		}
		timing.Add(s.label, len(ops), d, verified)
	}
	return timing, nil
}

func toBig(x mpint.Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}
