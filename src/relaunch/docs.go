// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package relaunch re-executes the current invocation as a toolchain binary.
//
// The launcher is installed under several names. The name it is invoked as
// selects a target from a fixed table:
//
//	dart   → compiler/bin/dartc_test
//	dartc  → compiler/bin/dartc
//
// Target paths are relative to the directory the launcher was invoked from.
// Before handing over, D8_EXEC is set to the d8 engine next to the launcher
// and DART_SCRIPT_NAME to the invocation name. All remaining arguments are
// forwarded verbatim.
//
// On Unix the process image is replaced with execve(2). On Windows the target
// runs as a child and the launcher exits with its status.
package relaunch
