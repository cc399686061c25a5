// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package daemon detaches a program from its terminal and parent.
//
// A running Go program cannot fork, so [Detacher] re-executes the binary
// with the same arguments in a new session and marks the copy through the
// [EnvMarker] environment variable:
//
//	d := daemon.New()
//	isDaemon, err := d.Detach()
//	if err != nil {
//		return err
//	}
//	if !isDaemon {
//		return nil // foreground process, done
//	}
//	// background work
//
// Windows has no sessions in this sense and [Detacher.Detach] returns
// [ErrUnsupported] there.
package daemon
