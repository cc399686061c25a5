// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) detachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detach -- COMMAND [ARGS...]",
		Short: "Run COMMAND as a daemon, detached from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isDaemon, err := a.deps.Detacher.Detach()
			if err != nil {
				return err
			}
			if !isDaemon {
				a.log.Printf("Detached %s", args[0])
				return nil
			}

			path, err := a.deps.LookPath(args[0])
			if err != nil {
				return err
			}
			if err := a.deps.Execer.Exec(path, args, a.deps.Env.Environ()); err != nil {
				return fmt.Errorf("exec %s: %w", path, err)
			}
			return nil
		},
	}
}
