// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBuildMode indicates a build mode other than debug or release.
	ErrUnknownBuildMode = errors.New("probe: unknown build mode")

	// ErrUnknownOS indicates an operating system tag without a build root.
	ErrUnknownOS = errors.New("probe: no build root for operating system")

	// ErrUnknownArchitecture indicates the host architecture could not be
	// guessed where one was required.
	ErrUnknownArchitecture = errors.New("probe: unknown host architecture")

	// ErrTool indicates that an external utility exited with a non-zero status.
	ErrTool = errors.New("probe: tool failed")

	// ErrPathNotFound indicates that a path named by a test option does not exist.
	ErrPathNotFound = errors.New("probe: path does not exist")

	// ErrInvalidPattern indicates a test option pattern without a capture group.
	ErrInvalidPattern = errors.New("probe: options pattern needs a capture group")

	// ErrCPUCount indicates that a CPU count source was present but unusable.
	ErrCPUCount = errors.New("probe: cannot determine cpu count")
)

// ToolError reports an external utility that exited with a non-zero status.
// It matches [ErrTool] and the underlying exit error with errors.Is.
type ToolError struct {
	// Tool is the path of the utility.
	Tool string
	// Err is the error returned when running it.
	Err error
}

// Error implements error.
func (e *ToolError) Error() string {
	return fmt.Sprintf("probe: non-zero exit code from %s: %v", e.Tool, e.Err)
}

// Unwrap exposes both [ErrTool] and the underlying error.
func (e *ToolError) Unwrap() []error { return []error{ErrTool, e.Err} }

// exitCoder is implemented by errors that carry a process exit status,
// such as *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// toolFailure wraps err in a ToolError when it is a non-zero exit and
// returns other errors unchanged.
func toolFailure(tool string, err error) error {
	var ec exitCoder
	if errors.As(err, &ec) {
		return &ToolError{Tool: tool, Err: err}
	}
	return err
}
