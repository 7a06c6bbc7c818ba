//
// ops.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"sort"

	"fortio.org/safecast"
	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
	"github.com/markkurossi/text/superscript"
)

var errNoInverse = errors.New("no modular inverse")

// Op defines a calculator operation.
type Op struct {
	Arity int
	Usage string
	Eval  func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error)
}

var ops = map[string]Op{
	"add": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			return []mpint.Int{args[0].Add(args[1])}, nil
		},
	},
	"sub": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			return []mpint.Int{args[0].Sub(args[1])}, nil
		},
	},
	"mul": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			return []mpint.Int{args[0].Mul(args[1])}, nil
		},
	},
	"div": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			q, _, err := args[0].QuoRem(args[1])
			if err != nil {
				return nil, err
			}
			return []mpint.Int{q}, nil
		},
	},
	"mod": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			_, r, err := args[0].QuoRem(args[1])
			if err != nil {
				return nil, err
			}
			return []mpint.Int{r}, nil
		},
	},
	"divmod": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			q, r, err := args[0].QuoRem(args[1])
			if err != nil {
				return nil, err
			}
			return []mpint.Int{q, r}, nil
		},
	},
	"exp": {
		Arity: 3,
		Usage: "x e m",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			mod, err := mpint.NewModulus(args[2].Abs())
			if err != nil {
				return nil, err
			}
			if args[1].Sign() < 0 {
				return nil, mpint.ErrNegativeExponent
			}
			return []mpint.Int{mod.Exp(args[0], args[1])}, nil
		},
	},
	"inv": {
		Arity: 2,
		Usage: "x m",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			inv, ok := args[0].ModInverse(args[1])
			if !ok {
				return nil, fmt.Errorf("%w: %v mod %v", errNoInverse,
					args[0], args[1])
			}
			return []mpint.Int{inv}, nil
		},
	},
	"shl": {
		Arity: 2,
		Usage: "x n",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			n, err := count(args[1])
			if err != nil {
				return nil, err
			}
			return []mpint.Int{args[0].Lsh(n)}, nil
		},
	},
	"shr": {
		Arity: 2,
		Usage: "x n",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			n, err := count(args[1])
			if err != nil {
				return nil, err
			}
			return []mpint.Int{args[0].Rsh(n)}, nil
		},
	},
	"cmp": {
		Arity: 2,
		Usage: "x y",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			return []mpint.Int{mpint.NewInt(int64(args[0].Cmp(args[1])))}, nil
		},
	},
	"rand": {
		Arity: 1,
		Usage: "bits",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			n, err := count(args[0])
			if err != nil {
				return nil, err
			}
			bits, err := safecast.Conv[int](n)
			if err != nil {
				return nil, err
			}
			r, err := mpint.Rand(cfg.GetRandom(), bits)
			if err != nil {
				return nil, err
			}
			return []mpint.Int{r}, nil
		},
	},
	"bits": {
		Arity: 1,
		Usage: "x",
		Eval: func(cfg *env.Config, args []mpint.Int) ([]mpint.Int, error) {
			return []mpint.Int{mpint.NewInt(int64(args[0].BitLen()))}, nil
		},
	},
}

// count converts the shift or bit count argument to uint.
func count(x mpint.Int) (uint, error) {
	if !x.IsInt64() {
		return 0, fmt.Errorf("count %v out of range", x)
	}
	return safecast.Conv[uint](x.Int64())
}

// opNames returns the sorted operation names.
func opNames() []string {
	var names []string
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expression renders the operation with its arguments.
func expression(name string, args []mpint.Int) string {
	switch name {
	case "add":
		return fmt.Sprintf("%v + %v", args[0], args[1])
	case "sub":
		return fmt.Sprintf("%v - %v", args[0], args[1])
	case "mul":
		return fmt.Sprintf("%v × %v", args[0], args[1])
	case "div":
		return fmt.Sprintf("%v / %v", args[0], args[1])
	case "mod":
		return fmt.Sprintf("%v mod %v", args[0], args[1])
	case "shl":
		return fmt.Sprintf("%v << %v", args[0], args[1].Decimal())
	case "shr":
		return fmt.Sprintf("%v >> %v", args[0], args[1].Decimal())
	case "exp":
		if args[1].IsInt64() && args[1].BitLen() < 31 {
			e, err := safecast.Conv[int](args[1].Int64())
			if err == nil {
				return fmt.Sprintf("%v%s mod %v", args[0], superscript.Itoa(e),
					args[2])
			}
		}
		return fmt.Sprintf("%v^%v mod %v", args[0], args[1], args[2])
	case "inv":
		return fmt.Sprintf("%v⁻¹ mod %v", args[0], args[1])
	default:
		return fmt.Sprintf("%s%v", name, args)
	}
}
