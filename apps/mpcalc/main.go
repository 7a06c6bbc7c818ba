//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command mpcalc evaluates multi-precision integer operations. The
// operands are hexadecimal numbers with an optional sign and 0x
// prefix.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
)

func main() {
	upper := flag.Bool("upper", false, "Print hexadecimal digits in uppercase")
	dec := flag.Bool("dec", false, "Print results in decimal")
	seed := flag.String("seed", "", "Deterministic random seed")
	verbose := flag.Bool("v", false, "Print the evaluated expression")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	op, ok := ops[args[0]]
	if !ok {
		log.Fatalf("unknown operation '%s'", args[0])
	}
	if len(args)-1 != op.Arity {
		log.Fatalf("usage: %s %s", args[0], op.Usage)
	}
	var values []mpint.Int
	for _, arg := range args[1:] {
		v, err := mpint.Parse(arg)
		if err != nil {
			log.Fatal(err)
		}
		values = append(values, v)
	}

	cfg := new(env.Config)
	if len(*seed) > 0 {
		cfg.Rand = env.NewPRG([]byte(*seed))
	}

	results, err := op.Eval(cfg, values)
	if err != nil {
		log.Fatalf("%s: %s", args[0], err)
	}

	var out []string
	for _, r := range results {
		if *dec {
			out = append(out, r.Decimal())
		} else {
			out = append(out, r.Text(*upper))
		}
	}
	if *verbose {
		fmt.Printf("%s = %s\n", expression(args[0], values),
			strings.Join(out, ", "))
	} else {
		fmt.Println(strings.Join(out, " "))
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: mpcalc [options] op [args...]\n\nOperations:\n")
	for _, name := range opNames() {
		fmt.Fprintf(flag.CommandLine.Output(), "  %-7s %s\n",
			name, ops[name].Usage)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nOptions:\n")
	flag.PrintDefaults()
}
