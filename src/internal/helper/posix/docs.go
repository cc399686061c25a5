// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// The relauncher selects its behaviour from the name it was invoked as and
// locates its targets relative to the directory it was invoked from, so both
// must be derived identically on every operating system.
//
// Key functions:
//   - GetExecutableName: Returns the current executable name for CLI usage
//   - InvocationName: Returns the command name carried by an argv[0]
//   - InvocationDir: Returns the directory carried by an argv[0]
//
// Cross-platform behaviour of InvocationName:
//
//   - Linux/macOS: "/usr/local/dart-sdk/dartc" → "dartc"
//   - Windows: "C:\dart-sdk\dart.exe" → "dart"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
