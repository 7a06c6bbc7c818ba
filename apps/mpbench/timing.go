//
// timing.go
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a comparison report.
type Timing struct {
	Samples []*Sample
}

// Sample contains the timing of one exponentiation strategy.
type Sample struct {
	Label    string
	Rounds   int
	Duration time.Duration
	Verified bool
}

// Add adds a timing sample.
func (t *Timing) Add(label string, rounds int, d time.Duration,
	verified bool) *Sample {

	sample := &Sample{
		Label:    label,
		Rounds:   rounds,
		Duration: d,
		Verified: verified,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// PerOp returns the average duration of one operation.
func (s *Sample) PerOp() time.Duration {
	if s.Rounds == 0 {
		return 0
	}
	return s.Duration / time.Duration(s.Rounds)
}

// Print prints the report to out. The relative speeds are computed
// against the first sample.
func (t *Timing) Print(out io.Writer, bits int) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header(fmt.Sprintf("Exp %d", bits)).SetAlign(tabulate.ML)
	tab.Header("Rounds").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("Op").SetAlign(tabulate.MR)
	tab.Header("Rel").SetAlign(tabulate.MR)
	tab.Header("OK").SetAlign(tabulate.ML)

	base := t.Samples[0].PerOp()
	var total time.Duration
	for _, sample := range t.Samples {
		total += sample.Duration

		row := tab.Row()
		row.Column(sample.Label)
		row.Column(fmt.Sprintf("%d", sample.Rounds))
		row.Column(sample.Duration.String())
		row.Column(sample.PerOp().String())
		if base > 0 {
			row.Column(fmt.Sprintf("%.2fx",
				float64(sample.PerOp())/float64(base)))
		} else {
			row.Column("")
		}
		if sample.Verified {
			row.Column("✓")
		} else {
			row.Column("✗").SetFormat(tabulate.FmtBold)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column(total.String()).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}
