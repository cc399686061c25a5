// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/config"
	"github.com/spf13/cobra"
)

func (a *app) configCommand() *cobra.Command {
	var schema bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if schema {
				_, err := cmd.OutOrStdout().Write(config.Schema())
				return err
			}
			return writeYAML(cmd.OutOrStdout(), a.cfg)
		},
	}

	cmd.Flags().BoolVar(&schema, "schema", false, "print the JSON schema configuration files are validated against")

	return cmd
}
