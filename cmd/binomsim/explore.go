// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aclements/binomsim/explorer"
)

func exploreCmd() *cobra.Command {
	var params explorer.Params

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Apply parameter changes read from stdin",
		Long: `Explore reads one parameter change per line from stdin, in the form
name=value where name is n, p, sample_size or confidence. After each
change it recomputes only the affected results and prints the updated
statistics. Blank lines and lines starting with # are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			return explore(cmd.InOrStdin(), cmd.OutOrStdout(), params)
		},
	}
	addParamFlags(cmd, &params)
	return cmd
}

func explore(r io.Reader, w io.Writer, params explorer.Params) error {
	logger := slog.Default()
	m := explorer.New(params, explorer.WithLogger(logger))
	printLine(w, m.Snapshot())

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := explorer.ParseChange(line)
		if err != nil {
			logger.Warn("bad change", "line", lineno, "err", err)
			continue
		}
		next := c.Apply(m.Params())
		if err := next.Validate(); err != nil {
			logger.Warn("rejected change", "line", lineno, "change", c, "err", err)
			continue
		}
		groups := m.Set(next)
		logger.Info("applied", "change", c, "recomputed", groups)
		printLine(w, m.Snapshot())
	}
	return scanner.Err()
}

// printLine prints a one-line summary of snap.
func printLine(w io.Writer, snap explorer.Snapshot) {
	p := snap.Params
	st := snap.Statistics
	ci := st.ConfidenceInterval
	_, _ = color.New(color.FgCyan).Fprintf(w, "n=%d p=%.2f sample_size=%d confidence=%d", p.N, p.P, p.SampleSize, p.ConfidenceLevel)
	fmt.Fprintf(w, "  mean=%.2f sd=%.2f ci=[%.4f, %.4f] k=%d points\n",
		st.Mean, st.StdDev, ci.Lower, ci.Upper, len(snap.Binomial))
}
