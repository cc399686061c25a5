// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the build environment
// prober. It implements a Cobra command tree with one subcommand per query
// (probe, os, arch, cpus, build-root, ...). Results are written to the
// command's output stream so they can be captured by build scripts, while
// diagnostics go to the [logger.Logger].
//
// Configuration is loaded once per invocation from --config or the
// BUILDENV_CONFIG_FILE environment variable and applied to the prober before
// any subcommand runs.
package cli
