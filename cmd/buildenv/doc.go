// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// buildenv reports facts about the build host to the toolchain's build and
// test scripts.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/toolchain-buildenv/cmd/buildenv@latest
//
// # Usage
//
//	buildenv [--config FILE] [--log-format text|json] COMMAND
//
// # Commands
//
//	probe         operating system, architecture, CPU count (--json, --yaml, --table)
//	os            host operating system tag (linux, macos, win32, ...)
//	arch          host architecture tag (ia32, arm)
//	cpus          CPU count for parallel jobs
//	is-windows    true on Windows hosts
//	build-conf    configuration name, e.g. Debug_ia32
//	build-root    build output directory (--os, --mode, --arch)
//	lines         significant lines of a file
//	test-options  options embedded in a test source file
//	java-home     locate Java and check JAVA_HOME
//	args          split list-valued options from an argument list
//	detach        run a command as a daemon
//	config        effective configuration (--schema for the JSON schema)
//
// # Examples
//
// Pick the job count for a parallel test run:
//
//	./tools/test.py -j "$(buildenv cpus)"
//
// Locate the debug build of the VM:
//
//	buildenv build-root --mode debug
//
// Collect the host report as JSON:
//
//	buildenv probe --json > host.json
package main
