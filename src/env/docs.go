// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package env abstracts process environment variables.
//
// The relauncher, the Java home configuration and the daemon detacher all
// mutate the environment. They receive an [Environment] instead of calling
// os.Setenv so that tests can substitute a [Map] and leave the real process
// environment alone.
package env
