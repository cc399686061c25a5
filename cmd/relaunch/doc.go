// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// relaunch is the launcher installed as "dart" and "dartc" next to the
// toolchain's d8 engine.
//
// It looks at the name it was invoked as, exports
//
//	D8_EXEC=<launcher dir>/d8
//	DART_SCRIPT_NAME=<invocation name>
//
// and replaces itself with <launcher dir>/compiler/bin/<target>, forwarding
// every argument:
//
//	dart  → compiler/bin/dartc_test
//	dartc → compiler/bin/dartc
//
// # Installation
//
//	go build -o out/dartc ./cmd/relaunch
//	ln -s dartc out/dart
//
// Any other invocation name is rejected with exit status 1.
package main
