// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aclements/binomsim/explorer"
)

func seriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Write a plotting series as JSON or CSV",
	}
	cmd.AddCommand(seriesSubCmd("binomial", "Binomial PMF over the ±4σ window", writeBinomial))
	cmd.AddCommand(seriesSubCmd("normal", "Normal approximation density", writeNormal))
	cmd.AddCommand(seriesSubCmd("region", "Standard normal density split into confidence and critical regions", writeRegion))
	return cmd
}

type seriesWriter func(w io.Writer, format string, snap explorer.Snapshot) error

func seriesSubCmd(name, short string, write seriesWriter) *cobra.Command {
	var params explorer.Params
	var format string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "csv" {
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
			if err := params.Validate(); err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, explorer.Compute(params))
		},
	}
	addParamFlags(cmd, &params)
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, csv)")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func writeBinomial(w io.Writer, format string, snap explorer.Snapshot) error {
	if format == "json" {
		return writeJSON(w, snap.Binomial)
	}
	rows := make([][]string, len(snap.Binomial))
	for i, pt := range snap.Binomial {
		rows[i] = []string{strconv.Itoa(pt.K), ftoa(pt.Probability), ftoa(pt.Percentage)}
	}
	return writeCSV(w, []string{"k", "probability", "percentage"}, rows)
}

func writeNormal(w io.Writer, format string, snap explorer.Snapshot) error {
	if format == "json" {
		return writeJSON(w, snap.Normal)
	}
	rows := make([][]string, len(snap.Normal))
	for i, pt := range snap.Normal {
		rows[i] = []string{ftoa(pt.X), ftoa(pt.Density)}
	}
	return writeCSV(w, []string{"x", "density"}, rows)
}

func writeRegion(w io.Writer, format string, snap explorer.Snapshot) error {
	if format == "json" {
		return writeJSON(w, snap.Region)
	}
	rows := make([][]string, len(snap.Region.Points))
	for i, pt := range snap.Region.Points {
		rows[i] = []string{ftoa(pt.Z), ftoa(pt.NormalDensity), ftoa(pt.ConfidenceArea), ftoa(pt.CriticalLeft), ftoa(pt.CriticalRight)}
	}
	return writeCSV(w, []string{"z", "normal_density", "confidence_area", "critical_left", "critical_right"}, rows)
}
