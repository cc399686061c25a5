// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !windows

package relaunch

import "golang.org/x/sys/unix"

// Default replaces the process image with execve(2).
var Default Execer = ExecFunc(unix.Exec)
