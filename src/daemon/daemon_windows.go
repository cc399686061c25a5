// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build windows

package daemon

import "os/exec"

const supported = false

func setDaemonSysProcAttr(*exec.Cmd) {}
