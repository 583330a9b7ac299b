// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

// Command constprobe is the comparison-step consumer of the probe wire
// format. It reads a probe report (line, Arrow IPC, or zstd-compressed
// line encoding, chosen by file suffix) and diffs it against a reference
// table.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bindcheck/constprobe/constprobe"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "constprobe",
		Short:         "Verify generated-binding constant values against a probe report",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompareCmd(), newShowCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "constprobe: %v\n", err)
		os.Exit(1)
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <report> <reference>",
		Short: "Diff a probe report against a reference table",
		Long: "Compare reads a probe report and a reference table and reports every\n" +
			"divergence: changed values, symbols missing from the report, and symbols\n" +
			"missing from the reference. Exit status is 0 only when every symbol matches.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readReportFile(args[0])
			if err != nil {
				return err
			}
			ref, err := constprobe.OpenReference(args[1])
			if err != nil {
				return err
			}

			results := constprobe.Compare(records, ref)
			for _, f := range results.Findings {
				fmt.Fprintln(cmd.ErrOrStderr(), f)
			}
			if !results.Ok() {
				return fmt.Errorf("FAILED: %s", results.Summary())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", results.Summary())
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <report>",
		Short: "Print a report in the line wire format regardless of its encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readReportFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, rec := range records {
				if _, err := fmt.Fprintf(w, "%s%c%s\n", rec.Name, constprobe.Delimiter, rec.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readReportFile loads report records from path, choosing the decoder by
// suffix: .arrow/.ipc for Arrow IPC, .zst for zstd-compressed lines,
// plain lines otherwise. "-" reads lines from stdin.
func readReportFile(path string) ([]constprobe.Record, error) {
	if path == "-" {
		return constprobe.ParseReport(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".arrow"), strings.HasSuffix(path, ".ipc"):
		return constprobe.ReadReportIPC(f)
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening zstd report %s: %w", path, err)
		}
		defer dec.Close()
		return constprobe.ParseReport(dec)
	default:
		return constprobe.ParseReport(f)
	}
}
