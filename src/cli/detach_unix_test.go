// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !windows

package cli_test

import (
	"os/exec"
	"testing"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/daemon"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/relaunch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetacher(h *harness, started *[]*exec.Cmd) *daemon.Detacher {
	return &daemon.Detacher{
		Env:        h.env,
		Executable: func() (string, error) { return "/usr/local/bin/buildenv", nil },
		Args:       []string{"buildenv", "detach", "--", "sleep", "60"},
		Start: func(cmd *exec.Cmd) error {
			*started = append(*started, cmd)
			return nil
		},
	}
}

func TestDetachForeground(t *testing.T) {
	h := newHarness(t)
	var started []*exec.Cmd
	var execed [][]string
	h.deps.Detacher = newTestDetacher(h, &started)
	h.deps.Execer = relaunch.ExecFunc(func(argv0 string, argv, _ []string) error {
		execed = append(execed, append([]string{argv0}, argv...))
		return nil
	})

	require.NoError(t, h.run("detach", "--", "sleep", "60"))

	require.Len(t, started, 1)
	assert.Equal(t, []string{"/usr/local/bin/buildenv", "detach", "--", "sleep", "60"}, started[0].Args)
	assert.Empty(t, execed)
	assert.Contains(t, h.logs.String(), "Detached sleep")
}

func TestDetachDaemonLineage(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.env.Setenv(daemon.EnvMarker, "1"))
	var started []*exec.Cmd
	var execed [][]string
	h.deps.Detacher = newTestDetacher(h, &started)
	h.deps.LookPath = func(file string) (string, error) { return "/bin/" + file, nil }
	h.deps.Execer = relaunch.ExecFunc(func(argv0 string, argv, envv []string) error {
		execed = append(execed, append([]string{argv0}, argv...))
		assert.NotContains(t, envv, daemon.EnvMarker+"=1")
		return nil
	})

	require.NoError(t, h.run("detach", "--", "sleep", "60"))

	assert.Empty(t, started)
	assert.Equal(t, [][]string{{"/bin/sleep", "sleep", "60"}}, execed)
}

func TestDetachRequiresCommand(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.run("detach"))
}
