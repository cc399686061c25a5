// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/optlist"
	"github.com/spf13/cobra"
)

// argsResult is the JSON form of a parsed argument list.
type argsResult struct {
	Rest   []string            `json:"rest"`
	Values map[string][]string `json:"values"`
}

func (a *app) argsCommand() *cobra.Command {
	var lists, flagLists []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "args [--list NAME]... [--flags NAME]... -- ARGS...",
		Short: "Split ARGS into list options and remaining arguments",
		Long: `Splits ARGS the way the test scripts read list-valued options.

An option registered with --list takes every following argument up to the
next one starting with "--". An option registered with --flags takes only a
run of single-dash flags. Everything else is printed as the remaining
arguments.`,
		Example: `  buildenv args --list --tests --flags --vm -- --tests a b --vm -x -y --verbose c`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var set optlist.Set
			for _, name := range lists {
				if err := set.Add(optlist.Option{Name: name, Mode: optlist.UntilSeparator}); err != nil {
					return err
				}
			}
			for _, name := range flagLists {
				if err := set.Add(optlist.Option{Name: name, Mode: optlist.FlagsOnly}); err != nil {
					return err
				}
			}

			rest, values := set.Parse(args)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), argsResult{Rest: rest, Values: values})
			}
			return writeArgsText(cmd.OutOrStdout(), rest, values)
		},
	}

	cmd.Flags().StringArrayVar(&lists, "list", nil, "register a list option consuming up to the next \"--\" argument")
	cmd.Flags().StringArrayVar(&flagLists, "flags", nil, "register a list option consuming single-dash flags")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output as JSON")

	return cmd
}

func writeArgsText(w io.Writer, rest []string, values map[string][]string) error {
	dests := make([]string, 0, len(values))
	for dest := range values {
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	for _, dest := range dests {
		if _, err := fmt.Fprintf(w, "%s: %s\n", dest, strings.Join(values[dest], " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "rest: %s\n", strings.Join(rest, " "))
	return err
}
