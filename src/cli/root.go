// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/config"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/daemon"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/logger"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/relaunch"
	"github.com/spf13/cobra"
)

// ErrUnrecognisedHost is returned when a command needs a host identifier that
// could not be guessed.
var ErrUnrecognisedHost = errors.New("cli: host not recognised")

// Dependencies are the collaborators of the command tree. Zero fields are
// filled with the real implementations by [NewRootCommand].
type Dependencies struct {
	// Log receives diagnostics. It is replaced by a JSON logger on stderr when
	// --log-format json is selected.
	Log logger.Logger
	// Env is the process environment.
	Env env.Environment
	// NewProber builds the prober; configuration is applied on top of it.
	NewProber func(log logger.Logger) *probe.Prober
	// Detacher backs the detach command.
	Detacher *daemon.Detacher
	// Execer replaces the process in the detached lineage.
	Execer relaunch.Execer
	// LookPath resolves the detached command.
	LookPath func(file string) (string, error)
}

func (d *Dependencies) fill() {
	if d.Log == nil {
		d.Log = logger.NewCLILogger()
	}
	if d.Env == nil {
		d.Env = env.OS{}
	}
	if d.NewProber == nil {
		e := d.Env
		d.NewProber = func(log logger.Logger) *probe.Prober {
			p := probe.New(log)
			p.Env = e
			return p
		}
	}
	if d.Detacher == nil {
		d.Detacher = daemon.New()
		d.Detacher.Env = d.Env
	}
	if d.Execer == nil {
		d.Execer = relaunch.Default
	}
	if d.LookPath == nil {
		d.LookPath = exec.LookPath
	}
}

// app is the state shared by all commands of one invocation.
type app struct {
	deps       Dependencies
	configFile string
	logFormat  string

	cfg    *config.Config
	log    logger.Logger
	prober *probe.Prober
}

// Execute runs the buildenv command tree with os.Args and returns the first
// error. Results go to stdout, diagnostics to log.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	root := NewRootCommand(version, Dependencies{Log: log})
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}

// NewRootCommand creates the root command and its subcommands.
func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	deps.fill()
	a := &app{deps: deps, log: deps.Log}

	// Use cross-platform executable name extraction for consistent UX
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "Build environment probe for the compiler toolchain",
		Long:          "Reports facts about the host needed by the toolchain build and test scripts: operating system, architecture, CPU count, build output directories, test options and the Java installation.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "path to configuration file (default: $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "diagnostic format: text or json (default: from config)")

	rootCmd.AddCommand(
		a.reportCommand(),
		a.osCommand(),
		a.archCommand(),
		a.cpusCommand(),
		a.isWindowsCommand(),
		a.buildConfCommand(),
		a.buildRootCommand(),
		a.linesCommand(),
		a.testOptionsCommand(),
		a.javaHomeCommand(),
		a.argsCommand(),
		a.detachCommand(),
		a.configCommand(),
	)

	return rootCmd
}

// setup loads the configuration and prepares the logger and prober.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, a.deps.Env)
	if err != nil {
		return err
	}
	a.cfg = cfg

	format := cfg.Log.Format
	if a.logFormat != "" {
		format = a.logFormat
	}
	if format != logger.FormatText {
		if a.log, err = logger.New(format, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	a.prober = a.deps.NewProber(a.log)
	a.prober.Log = a.log
	cfg.Apply(a.prober)
	return nil
}
