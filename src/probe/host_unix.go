// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly || solaris

package probe

import (
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"golang.org/x/sys/unix"
)

// hostPlatform reads the system and machine names from uname(2).
func hostPlatform(env.Environment) (Platform, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Platform{}, err
	}
	return Platform{
		System:  unix.ByteSliceToString(u.Sysname[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
