// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package probe answers the questions build scripts ask about the host and
// the checkout: which OS and architecture tags apply, how many CPUs to use,
// where build outputs live, and which options a test source requests.
//
// The pure functions ([GuessOS], [GuessArchitecture], [BuildMode],
// [BuildConf], [ParseLines], [ParseTestOptions]) are independent of the host.
// Operations that touch the host hang off [Prober], whose environment,
// command runner, working directory and platform source can be replaced.
//
// Nothing is retried. Lookup failures ([ErrUnknownBuildMode], [ErrUnknownOS]),
// tool failures ([ErrTool]) and missing test paths ([ErrPathNotFound]) are
// returned to the caller; OS errors are wrapped with %w.
package probe
