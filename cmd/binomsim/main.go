// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// binomsim computes the binomial distribution, its normal
// approximation and the confidence interval of the sample proportion
// for a set of experiment parameters, and serves them over HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/aclements/binomsim/explorer"
)

var (
	logLevel string
	noColor  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "binomsim",
		Short:         "Binomial distribution and confidence interval explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(seriesCmd())
	rootCmd.AddCommand(exploreCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}

func setupLogging(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if noColor {
		color.NoColor = true
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    color.NoColor,
	})))
	return nil
}

// addParamFlags binds the experiment parameter flags of cmd to p,
// starting from the default parameters.
func addParamFlags(cmd *cobra.Command, p *explorer.Params) {
	*p = explorer.DefaultParams()
	cmd.Flags().IntVar(&p.N, "n", p.N, "number of trials")
	cmd.Flags().Float64Var(&p.P, "p", p.P, "probability of success in each trial")
	cmd.Flags().IntVar(&p.SampleSize, "sample-size", p.SampleSize, "sample size of the confidence interval")
	cmd.Flags().IntVar(&p.ConfidenceLevel, "confidence", p.ConfidenceLevel, "confidence level in percent")
}
