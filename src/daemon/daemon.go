// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
)

// EnvMarker is set to "1" in the environment of the re-executed process.
const EnvMarker = "BUILDENV_DAEMON"

// ErrUnsupported is returned by [Detacher.Detach] on platforms without
// session support.
var ErrUnsupported = errors.New("daemon: detaching is not supported on this platform")

// Detacher moves the current program into a detached background process.
type Detacher struct {
	// Env is inspected for the marker and forms the child's environment.
	Env env.Environment
	// Executable locates the running binary.
	Executable func() (string, error)
	// Args is the full argument vector of the current process, program name
	// included.
	Args []string
	// Start launches the prepared command without waiting for it.
	Start func(*exec.Cmd) error
}

// New returns a Detacher for the current process.
func New() *Detacher {
	return &Detacher{
		Env:        env.OS{},
		Executable: os.Executable,
		Args:       os.Args,
		Start:      (*exec.Cmd).Start,
	}
}

// Detach reports whether the caller is the detached daemon.
//
// In the launching process it starts a copy of the program in a new session
// with stdio on the null device and returns false; the caller should then
// finish its foreground work and exit. In that copy the marker is present, so
// Detach removes it and returns true. Exactly one of the two returns true.
func (d *Detacher) Detach() (bool, error) {
	if !supported {
		return false, ErrUnsupported
	}

	if v, ok := d.Env.LookupEnv(EnvMarker); ok && v == "1" {
		if err := d.Env.Unsetenv(EnvMarker); err != nil {
			return false, fmt.Errorf("daemon: clearing %s: %w", EnvMarker, err)
		}
		return true, nil
	}

	return false, d.spawn()
}

func (d *Detacher) spawn() error {
	exe, err := d.Executable()
	if err != nil {
		return fmt.Errorf("daemon: locating executable: %w", err)
	}

	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("daemon: opening %s: %w", os.DevNull, err)
	}
	defer null.Close()

	var args []string
	if len(d.Args) > 1 {
		args = d.Args[1:]
	}

	cmd := exec.Command(exe, args...)
	cmd.Env = append(d.Env.Environ(), EnvMarker+"=1")
	cmd.Stdin = null
	cmd.Stdout = null
	cmd.Stderr = null
	setDaemonSysProcAttr(cmd)

	if err := d.Start(cmd); err != nil {
		return fmt.Errorf("daemon: starting %s: %w", exe, err)
	}
	if cmd.Process != nil {
		// Not waited for; the child belongs to its own session now.
		if err := cmd.Process.Release(); err != nil {
			return fmt.Errorf("daemon: releasing %s: %w", exe, err)
		}
	}
	return nil
}
