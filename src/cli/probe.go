// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"github.com/spf13/cobra"
)

func (a *app) osCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "os",
		Short: "Print the host operating system tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, ok := a.prober.HostOS()
			if !ok {
				return fmt.Errorf("%w: operating system", ErrUnrecognisedHost)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}
}

func (a *app) archCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "arch",
		Short: "Print the host architecture tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, ok := a.prober.HostArchitecture()
			if !ok {
				return fmt.Errorf("%w: architecture", ErrUnrecognisedHost)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}
}

func (a *app) cpusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cpus",
		Short: "Print the number of CPUs to use for parallel jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.prober.GuessCPUs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) isWindowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "is-windows",
		Short: "Print true when the host runs Windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(a.prober.IsWindows()))
			return nil
		},
	}
}

func (a *app) buildConfCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build-conf MODE ARCH",
		Short: "Print the configuration directory name, e.g. Debug_ia32",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := probe.BuildConf(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), conf)
			return nil
		},
	}
}

func (a *app) buildRootCommand() *cobra.Command {
	var targetOS, mode, arch string

	cmd := &cobra.Command{
		Use:   "build-root",
		Short: "Print the build output directory",
		Long:  "Prints the build output directory for an operating system, build mode and architecture. Without --mode only the base directory is printed. The operating system and architecture default to the host.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if targetOS == "" {
				tag, ok := a.prober.HostOS()
				if !ok {
					return fmt.Errorf("%w: operating system (use --os)", ErrUnrecognisedHost)
				}
				targetOS = tag
			}
			if arch == "" && mode != "" {
				tag, ok := a.prober.HostArchitecture()
				if !ok {
					return fmt.Errorf("%w: architecture (use --arch)", ErrUnrecognisedHost)
				}
				arch = tag
			}

			root, err := a.prober.BuildRoot(targetOS, mode, arch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetOS, "os", "", "target operating system tag (linux, macos, win32, freebsd)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "build mode (debug or release)")
	cmd.Flags().StringVarP(&arch, "arch", "a", "", "target architecture tag; \""+probe.LegacyArch+"\" selects the host architecture at the checkout top")

	return cmd
}

func (a *app) linesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines FILE",
		Short: "Print the significant lines of FILE, without comments and blank lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := probe.ReadLinesFrom(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func (a *app) testOptionsCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "test-options FILE",
		Short: "Print the options embedded in a test source file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := a.cfg.OptionsPattern()
			if err != nil {
				return err
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if workspace == "" {
				workspace = a.cfg.Tests.Workspace
			}
			if workspace == "" {
				if workspace, err = a.prober.Getwd(); err != nil {
					return err
				}
			}

			options, found, err := probe.ParseTestOptions(pattern, string(source), workspace)
			if err != nil {
				return err
			}
			if !found {
				a.log.Printf("No test options in %s", args[0])
				return nil
			}

			out := cmd.OutOrStdout()
			for _, opt := range options {
				fmt.Fprintln(out, opt)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "directory relative option paths are resolved against (default: tests.workspace or the working directory)")

	return cmd
}

func (a *app) javaHomeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "java-home",
		Short: "Locate the Java installation and print it",
		Long:  "Runs the Java locator when it is installed and prints the Java home it reports. A warning is logged when JAVA_HOME points elsewhere.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := a.prober.ConfigureJava(cmd.Context())
			if err != nil {
				return err
			}
			if home != "" {
				fmt.Fprintln(cmd.OutOrStdout(), home)
			}
			return nil
		},
	}
}
