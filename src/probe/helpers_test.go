// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/logger"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"github.com/stretchr/testify/require"
)

// exitStatus mimics *exec.ExitError for a given status.
type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

// fakeRunner returns canned output and records invocations.
type fakeRunner struct {
	output string
	err    error
	calls  [][]string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.output), nil
}

// newProber returns a Prober isolated from the host: no probe files, an empty
// environment, a fixed platform and working directory.
func newProber(t *testing.T, platform probe.Platform) (*probe.Prober, *env.Map, *fakeRunner, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	missing := filepath.Join(t.TempDir(), "missing")
	environ := env.NewMap(nil)
	runner := &fakeRunner{}

	p := probe.New(log)
	p.Env = environ
	p.Runner = runner
	p.Platform = func() (probe.Platform, error) { return platform, nil }
	p.Getwd = func() (string, error) { return filepath.FromSlash("/work/checkout"), nil }
	p.CPUInfoPath = missing
	p.HostInfoPath = missing
	p.JavaLocatorPath = missing

	return p, environ, runner, &logs
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
