// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) reportCommand() *cobra.Command {
	var asJSON, asYAML, asTable bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report the host operating system, architecture and CPU count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.prober.Report(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, r)
			case asYAML:
				return writeYAML(out, r)
			case asTable:
				_, err = io.WriteString(out, renderReportTable(r))
				return err
			default:
				return writeReportText(out, r)
			}
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "output as YAML")
	cmd.Flags().BoolVar(&asTable, "table", false, "output as markdown table")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml", "table")

	return cmd
}

// reportRows lists the report in display order. Absent identifiers are shown
// as "unknown".
func reportRows(r *probe.Report) [][]string {
	return [][]string{
		{"os", orUnknown(r.OS)},
		{"arch", orUnknown(r.Arch)},
		{"cpus", strconv.Itoa(r.CPUs)},
		{"windows", strconv.FormatBool(r.Windows)},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func writeReportText(w io.Writer, r *probe.Report) error {
	for _, row := range reportRows(r) {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

// renderReportTable renders the report as a markdown table.
func renderReportTable(r *probe.Report) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Property", "Value"})
	table.Bulk(reportRows(r))
	table.Render()

	return buf.String()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
