// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build windows

package relaunch

import (
	"errors"
	"os"
	"os/exec"
)

// Default runs the target as a child with inherited stdio and exits with its
// status, since Windows has no execve(2).
var Default Execer = ExecFunc(spawnAndExit)

func spawnAndExit(argv0 string, argv, envv []string) error {
	cmd := exec.Command(argv0, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = envv

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		os.Exit(0)
	case errors.As(err, &exitErr):
		os.Exit(exitErr.ExitCode())
	}
	return err
}
