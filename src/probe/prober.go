// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"context"
	"os"
	"os/exec"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/logger"
)

// Default locations of the probed files and utilities.
const (
	DefaultCPUInfoPath     = "/proc/cpuinfo"
	DefaultHostInfoPath    = "/usr/bin/hostinfo"
	DefaultJavaLocatorPath = "/usr/libexec/java_home"
	DefaultJavaVersion     = "1.6+"
)

// Platform holds the raw host identifiers the guesses are made from.
type Platform struct {
	// System is the uname system name, e.g. "Linux" or "Darwin".
	System string
	// Machine is the uname machine name, e.g. "x86_64" or "arm64".
	Machine string
}

// Runner runs an external utility and returns its standard output.
// A non-zero exit must be reported as an error implementing ExitCode() int,
// as *exec.ExitError does.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the [Runner] backed by os/exec.
type ExecRunner struct{}

// Output runs name and captures its standard output in a pooled buffer.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = buf
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return gc.Copy(buf), nil
}

// Prober answers questions about the build host. Every field may be
// replaced before use; [New] fills in the real host.
type Prober struct {
	// Env is read for CPU count overrides and JAVA_HOME, and written by
	// [Prober.ConfigureJava].
	Env env.Environment
	// Runner executes hostinfo and java_home.
	Runner Runner
	// Log receives diagnostics.
	Log logger.Logger

	// Platform returns the host identifiers.
	Platform func() (Platform, error)
	// Getwd returns the working directory.
	Getwd func() (string, error)

	CPUInfoPath     string
	HostInfoPath    string
	JavaLocatorPath string
	JavaVersion     string
}

// New returns a Prober for the running host that logs to log.
func New(log logger.Logger) *Prober {
	p := &Prober{
		Env:             env.OS{},
		Runner:          ExecRunner{},
		Log:             log,
		Getwd:           os.Getwd,
		CPUInfoPath:     DefaultCPUInfoPath,
		HostInfoPath:    DefaultHostInfoPath,
		JavaLocatorPath: DefaultJavaLocatorPath,
		JavaVersion:     DefaultJavaVersion,
	}
	p.Platform = func() (Platform, error) { return hostPlatform(p.Env) }
	return p
}

// HostOS guesses the OS tag of the host.
func (p *Prober) HostOS() (string, bool) {
	pl, err := p.Platform()
	if err != nil {
		return "", false
	}
	return GuessOS(pl.System)
}

// HostArchitecture guesses the architecture tag of the host.
func (p *Prober) HostArchitecture() (string, bool) {
	pl, err := p.Platform()
	if err != nil {
		return "", false
	}
	return GuessArchitecture(pl.Machine)
}

// IsWindows reports whether the host OS tag is win32.
func (p *Prober) IsWindows() bool {
	tag, _ := p.HostOS()
	return tag == OSWin32
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
