// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/logger"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/relaunch"
)

func main() {
	os.Exit(run(os.Args, env.OS{}, relaunch.Default, logger.NewCLILogger()))
}

// run hands control to the target selected by argv[0]. It only returns when
// that fails, with the exit status for the launcher.
func run(argv []string, e env.Environment, x relaunch.Execer, log logger.Logger) int {
	if err := relaunch.Run(argv, e, x); err != nil {
		name := "relaunch"
		if len(argv) > 0 && argv[0] != "" {
			name = relaunch.Name(argv[0])
		}
		log.Printf("%s: %v", name, err)
		return 1
	}
	return 0
}
