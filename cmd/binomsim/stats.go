// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aclements/binomsim/explorer"
	"github.com/aclements/binomsim/series"
)

func statsCmd() *cobra.Command {
	var params explorer.Params

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics and confidence interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), explorer.Compute(params))
			return nil
		},
	}
	addParamFlags(cmd, &params)
	return cmd
}

// writeReport prints the summary of snap in the order an analyst
// reads it: the distribution, the interval, then the z regions.
func writeReport(w io.Writer, snap explorer.Snapshot) {
	cyan := color.New(color.FgCyan)
	dim := color.New(color.Faint)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	p := snap.Params
	st := snap.Statistics
	ci := st.ConfidenceInterval
	r := snap.Region

	_, _ = cyan.Fprintf(w, "B(n=%d, p=%.2f)\n", p.N, p.P)
	_, _ = dim.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-20s %.2f\n", "mean", st.Mean)
	fmt.Fprintf(w, "%-20s %.2f\n", "variance", st.Variance)
	fmt.Fprintf(w, "%-20s %.2f\n", "std dev", st.StdDev)
	fmt.Fprintf(w, "%-20s %.3f\n", "sample proportion", st.SampleProportion)
	if len(snap.Binomial) > 0 {
		lo, hi := snap.Binomial[0].K, snap.Binomial[len(snap.Binomial)-1].K
		fmt.Fprintf(w, "%-20s [%d, %d] (%.4f%% of mass)\n", "plotted k", lo, hi, series.WindowMass(p.N, p.P)*100)
	}
	fmt.Fprintln(w)

	_, _ = cyan.Fprintf(w, "%d%% confidence, sample size %d\n", p.ConfidenceLevel, p.SampleSize)
	_, _ = dim.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-20s ±%.2f%%\n", "margin of error", ci.Margin*100)
	_, _ = green.Fprintf(w, "%-20s [%.2f%%, %.2f%%]\n", "interval", ci.Lower*100, ci.Upper*100)
	fmt.Fprintf(w, "%-20s ±%.3f\n", "z critical", r.ZCritical)
	fmt.Fprintf(w, "%-20s %.4f\n", "standard error", r.StandardError)
	_, _ = green.Fprintf(w, "%-20s %.1f%%\n", "confidence area", r.ConfidenceAreaPercent)
	_, _ = red.Fprintf(w, "%-20s %.1f%%\n", "critical tails", r.TailPercent)
	if d := r.Coverage - r.ConfidenceAreaPercent; d > 0.05 || d < -0.05 {
		_, _ = red.Fprintf(w, "%-20s %.1f%% (z=%.3f)\n", "actual coverage", r.Coverage, r.ZCritical)
	}
}
