// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"fmt"
	"path/filepath"
)

// Build modes accepted by [BuildMode].
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

const (
	// LegacyArch is the placeholder architecture still passed by older
	// build bots. It is replaced by the host architecture when the tools run
	// from the top of the checkout.
	LegacyArch = "dartc"
	// TopDirName is the basename of the checkout's top-level directory.
	TopDirName = "dart"
)

// buildModes maps build modes to configuration name prefixes.
var buildModes = map[string]string{
	ModeDebug:   "Debug",
	ModeRelease: "Release",
}

// buildRoots maps OS tags to the directory build outputs are placed in,
// relative to the checkout.
var buildRoots = map[string]string{
	OSWin32:   "",
	OSLinux:   "out",
	OSFreeBSD: "out",
	OSMacOS:   "xcodebuild",
}

// BuildMode returns the configuration prefix for mode ("debug" → "Debug").
func BuildMode(mode string) (string, error) {
	m, ok := buildModes[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBuildMode, mode)
	}
	return m, nil
}

// BuildConf returns the configuration name for mode and arch, e.g. "Debug_ia32".
func BuildConf(mode, arch string) (string, error) {
	m, err := BuildMode(mode)
	if err != nil {
		return "", err
	}
	return m + "_" + arch, nil
}

// BuildRoot returns the output directory for targetOS. With an empty mode it
// is the per-OS base directory; otherwise the configuration directory below
// it. A [LegacyArch] arch is replaced by the host architecture when the
// working directory is the checkout's top-level directory.
func (p *Prober) BuildRoot(targetOS, mode, arch string) (string, error) {
	root, ok := buildRoots[targetOS]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOS, targetOS)
	}
	if mode == "" {
		return root, nil
	}

	if arch == LegacyArch && p.runFromTopDir() {
		guess, ok := p.HostArchitecture()
		if !ok {
			return "", ErrUnknownArchitecture
		}
		arch = guess
	}

	conf, err := BuildConf(mode, arch)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, conf), nil
}

func (p *Prober) runFromTopDir() bool {
	wd, err := p.Getwd()
	if err != nil {
		return false
	}
	return filepath.Base(wd) == TopDirName
}
