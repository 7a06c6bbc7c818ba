//
// ops_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
)

var opTests = []struct {
	op     string
	args   []string
	result []string
}{
	{"add", []string{"ff", "1"}, []string{"100"}},
	{"sub", []string{"100", "ff"}, []string{"1"}},
	{"sub", []string{"ff", "100"}, []string{"-1"}},
	{"mul", []string{"75bcd15", "3ade68b1"}, []string{"1b13114fbff5385"}},
	{"div", []string{"-7", "2"}, []string{"-3"}},
	{"mod", []string{"-7", "2"}, []string{"-1"}},
	{"divmod", []string{"123456789abcdef0", "100000001"},
		[]string{"12345678", "88888878"}},
	{"exp", []string{"4", "d", "1f1"}, []string{"1bd"}},
	{"exp", []string{"3", "40", "100000000"}, []string{"797ebd01"}},
	{"inv", []string{"11", "c30"}, []string{"ac1"}},
	{"shl", []string{"1", "40"}, []string{"10000000000000000"}},
	{"shr", []string{"deadbeefcafebabe", "1f"}, []string{"1bd5b7ddf"}},
	{"cmp", []string{"-5", "3"}, []string{"-1"}},
	{"bits", []string{"100000000"}, []string{"21"}},
}

func parseArgs(t *testing.T, args []string) []mpint.Int {
	var values []mpint.Int
	for _, arg := range args {
		v, err := mpint.Parse(arg)
		if err != nil {
			t.Fatal(err)
		}
		values = append(values, v)
	}
	return values
}

func TestOps(t *testing.T) {
	cfg := new(env.Config)
	for idx, test := range opTests {
		op, ok := ops[test.op]
		if !ok {
			t.Fatalf("TestOps-%v: unknown op %s", idx, test.op)
		}
		if op.Arity != len(test.args) {
			t.Fatalf("TestOps-%v: arity %v, got %v args",
				idx, op.Arity, len(test.args))
		}
		results, err := op.Eval(cfg, parseArgs(t, test.args))
		if err != nil {
			t.Errorf("TestOps-%v: %s failed: %v", idx, test.op, err)
			continue
		}
		if len(results) != len(test.result) {
			t.Errorf("TestOps-%v: got %v results, expected %v",
				idx, len(results), len(test.result))
			continue
		}
		for i, r := range results {
			if r.String() != test.result[i] {
				t.Errorf("TestOps-%v: %s=%v, expected %v",
					idx, test.op, r, test.result[i])
			}
		}
	}
}

func TestOpErrors(t *testing.T) {
	cfg := new(env.Config)
	_, err := ops["div"].Eval(cfg, parseArgs(t, []string{"1", "0"}))
	if !errors.Is(err, mpint.ErrDivisionByZero) {
		t.Errorf("div by zero: got %v", err)
	}
	_, err = ops["inv"].Eval(cfg, parseArgs(t, []string{"6", "9"}))
	if !errors.Is(err, errNoInverse) {
		t.Errorf("inv 6 mod 9: got %v", err)
	}
	_, err = ops["shl"].Eval(cfg, parseArgs(t, []string{"1", "-1"}))
	if err == nil {
		t.Errorf("negative shift accepted")
	}
	_, err = ops["exp"].Eval(cfg, parseArgs(t, []string{"2", "-1", "7"}))
	if !errors.Is(err, mpint.ErrNegativeExponent) {
		t.Errorf("negative exponent: got %v", err)
	}
}

func TestOpRand(t *testing.T) {
	var prev string
	for i := 0; i < 2; i++ {
		cfg := &env.Config{
			Rand: env.NewPRG([]byte("TestOpRand")),
		}
		results, err := ops["rand"].Eval(cfg, parseArgs(t, []string{"80"}))
		if err != nil {
			t.Fatal(err)
		}
		if results[0].BitLen() > 128 {
			t.Errorf("rand 128: %v has %v bits", results[0], results[0].BitLen())
		}
		if i > 0 && results[0].String() != prev {
			t.Errorf("seeded rand not deterministic: %v != %v",
				results[0], prev)
		}
		prev = results[0].String()
	}
}

func TestExpression(t *testing.T) {
	values := parseArgs(t, []string{"2", "a", "b"})
	expr := expression("exp", values)
	if !strings.HasPrefix(expr, "2") || !strings.HasSuffix(expr, " mod b") ||
		strings.Contains(expr, "^") {
		t.Errorf("unexpected expression: %s", expr)
	}
	if expr := expression("add", values[:2]); expr != "2 + a" {
		t.Errorf("unexpected expression: %s", expr)
	}
}
