// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !windows

package daemon

import (
	"os/exec"
	"syscall"
)

const supported = true

// setDaemonSysProcAttr starts the child as the leader of a new session,
// without a controlling terminal.
func setDaemonSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
