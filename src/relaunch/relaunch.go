// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package relaunch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/internal/helper/posix"
)

const (
	// EnvEngine names the variable pointing at the auxiliary d8 engine.
	EnvEngine = "D8_EXEC"
	// EnvScriptName names the variable recording the invocation name.
	EnvScriptName = "DART_SCRIPT_NAME"

	engineName = "d8"
)

// ErrUnknownCommand is returned when the invocation name has no entry in
// the command table.
var ErrUnknownCommand = errors.New("relaunch: unknown command")

// commands maps invocation names to the executable they launch from
// compiler/bin. It is never modified.
var commands = map[string]string{
	"dart":  "dartc_test",
	"dartc": "dartc",
}

// targetDir is the target location relative to the launcher directory.
var targetDir = []string{"compiler", "bin"}

// Commands returns the recognised invocation names in sorted order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the invocation name of argv0: its last path component
// without a ".exe" suffix.
func Name(argv0 string) string {
	return posix.InvocationName(argv0)
}

// enginePath locates the engine next to the launcher. The result always
// contains a separator so that running it never searches PATH.
func enginePath(dir string) string {
	if dir == "" || dir == "." {
		return "." + string(filepath.Separator) + engineName
	}
	return filepath.Join(dir, engineName)
}

// Plan is a resolved relaunch: what to execute and which variables to set
// before doing so.
type Plan struct {
	// Command is the name the launcher was invoked as.
	Command string
	// Path is the target executable.
	Path string
	// Engine is the value exported as [EnvEngine].
	Engine string
	// Argv is the target's argument vector; Argv[0] is Path.
	Argv []string
}

// Resolve maps argv to a Plan. The basename of argv[0] selects the target and
// its directory anchors both the target and the engine paths. Remaining
// arguments are forwarded unchanged.
func Resolve(argv []string) (*Plan, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("%w: empty argument vector", ErrUnknownCommand)
	}

	name := Name(argv[0])
	target, ok := commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	dir := posix.InvocationDir(argv[0])
	path := filepath.Join(append(append([]string{dir}, targetDir...), target)...)

	forwarded := make([]string, 0, len(argv))
	forwarded = append(forwarded, path)
	forwarded = append(forwarded, argv[1:]...)

	return &Plan{
		Command: name,
		Path:    path,
		Engine:  enginePath(dir),
		Argv:    forwarded,
	}, nil
}

// Apply exports the plan's variables to e.
func (p *Plan) Apply(e env.Environment) error {
	if err := e.Setenv(EnvEngine, p.Engine); err != nil {
		return fmt.Errorf("setting %s: %w", EnvEngine, err)
	}
	if err := e.Setenv(EnvScriptName, p.Command); err != nil {
		return fmt.Errorf("setting %s: %w", EnvScriptName, err)
	}
	return nil
}

// Execer replaces the running program with another one.
type Execer interface {
	// Exec runs argv0 with argv and envv in place of the caller. It only
	// returns on failure.
	Exec(argv0 string, argv, envv []string) error
}

// ExecFunc adapts a function to [Execer].
type ExecFunc func(argv0 string, argv, envv []string) error

// Exec calls f.
func (f ExecFunc) Exec(argv0 string, argv, envv []string) error { return f(argv0, argv, envv) }

// Run resolves argv, exports the plan's variables to e and hands control to
// x. It returns only on failure; OS errors stay reachable through errors.Is.
func Run(argv []string, e env.Environment, x Execer) error {
	plan, err := Resolve(argv)
	if err != nil {
		return err
	}
	if err := plan.Apply(e); err != nil {
		return err
	}
	if err := x.Exec(plan.Path, plan.Argv, e.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", plan.Path, err)
	}
	return nil
}
