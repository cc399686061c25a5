// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when os.Args carries no program name.
const fallbackName = "buildenv"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] with [InvocationName] and falls
// back to "buildenv" if os.Args[0] is unavailable.
func GetExecutableName() string {
	// This literally never happens. If it happens, then it's not an operating system.
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallbackName
	}
	return InvocationName(os.Args[0])
}

// InvocationName returns the name a program was invoked as: the last path
// component of argv0 with a trailing ".exe" removed.
//
// Both '/' and '\' are treated as separators so that a Windows-style argv0
// yields the same name on every host:
//   - "/usr/local/dart-sdk/dartc" → "dartc"
//   - "C:\dart-sdk\dart.exe" → "dart"
func InvocationName(argv0 string) string {
	name := filepath.Base(argv0)

	// If that didn't extract a proper base name (e.g., Windows path on Unix),
	// take the last non-empty component manually.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

// InvocationDir returns the directory part of argv0, or "" when argv0 is a
// bare name found through PATH.
func InvocationDir(argv0 string) string {
	if !strings.ContainsAny(argv0, "/"+string(filepath.Separator)) {
		return ""
	}
	return filepath.Dir(argv0)
}
