// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris

package probe

import (
	"runtime"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
)

// hostPlatform derives the platform from the Go runtime where uname(2) is
// not available. Windows reports its machine through PROCESSOR_ARCHITECTURE.
func hostPlatform(e env.Environment) (Platform, error) {
	if runtime.GOOS == "windows" {
		return Platform{System: "Windows", Machine: e.Getenv("PROCESSOR_ARCHITECTURE")}, nil
	}
	return Platform{System: runtime.GOOS, Machine: runtime.GOARCH}, nil
}
