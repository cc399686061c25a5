// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package optlist collects list-valued options out of an argument vector.
//
// Test drivers pass whole argument lists through to the programs they start,
// for example
//
//	test.py --vm-args -Xmx1g -ea -- --dart-flags --enable_asserts tests/
//
// A list option swallows the arguments after it until a stop condition, and
// the surrounding parser continues after the swallowed run. Two stop rules
// exist: [UntilSeparator] stops at the next "--"-prefixed argument, and
// [FlagsOnly] additionally stops at the first argument that is not a
// single-dash flag.
package optlist
