// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMode(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{mode: "debug", want: "Debug"},
		{mode: "release", want: "Release"},
		{mode: "Debug", wantErr: true},
		{mode: "profile", wantErr: true},
		{mode: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := probe.BuildMode(tt.mode)
			if tt.wantErr {
				assert.ErrorIs(t, err, probe.ErrUnknownBuildMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildConf(t *testing.T) {
	got, err := probe.BuildConf("release", "ia32")
	require.NoError(t, err)
	assert.Equal(t, "Release_ia32", got)

	_, err = probe.BuildConf("fast", "ia32")
	assert.ErrorIs(t, err, probe.ErrUnknownBuildMode)
}

func TestBuildRoot(t *testing.T) {
	tests := []struct {
		name    string
		os      string
		mode    string
		arch    string
		want    string
		wantErr error
	}{
		{name: "linux debug", os: "linux", mode: "debug", arch: "ia32", want: filepath.Join("out", "Debug_ia32")},
		{name: "freebsd release", os: "freebsd", mode: "release", arch: "arm", want: filepath.Join("out", "Release_arm")},
		{name: "macos", os: "macos", mode: "debug", arch: "ia32", want: filepath.Join("xcodebuild", "Debug_ia32")},
		{name: "win32 has no base", os: "win32", mode: "release", arch: "ia32", want: "Release_ia32"},
		{name: "base only", os: "linux", want: "out"},
		{name: "win32 base only", os: "win32", want: ""},
		{name: "legacy arch outside checkout top", os: "linux", mode: "debug", arch: "dartc", want: filepath.Join("out", "Debug_dartc")},
		{name: "unknown os", os: "openbsd", mode: "debug", arch: "ia32", wantErr: probe.ErrUnknownOS},
		{name: "unknown mode", os: "linux", mode: "fast", arch: "ia32", wantErr: probe.ErrUnknownBuildMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _, _ := newProber(t, probe.Platform{System: "Linux", Machine: "x86_64"})

			got, err := p.BuildRoot(tt.os, tt.mode, tt.arch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRootLegacyArchAtCheckoutTop(t *testing.T) {
	p, _, _, _ := newProber(t, probe.Platform{System: "Linux", Machine: "x86_64"})
	p.Getwd = func() (string, error) { return filepath.FromSlash("/src/dart"), nil }

	got, err := p.BuildRoot("linux", "release", probe.LegacyArch)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "Release_ia32"), got)
}

func TestBuildRootLegacyArchUnknownHost(t *testing.T) {
	p, _, _, _ := newProber(t, probe.Platform{System: "Linux", Machine: "sparc64"})
	p.Getwd = func() (string, error) { return filepath.FromSlash("/src/dart"), nil }

	_, err := p.BuildRoot("linux", "debug", probe.LegacyArch)

	assert.ErrorIs(t, err, probe.ErrUnknownArchitecture)
}

func TestBuildRootGetwdFailure(t *testing.T) {
	p, _, _, _ := newProber(t, probe.Platform{System: "Linux", Machine: "x86_64"})
	p.Getwd = func() (string, error) { return "", errors.New("removed") }

	got, err := p.BuildRoot("linux", "debug", probe.LegacyArch)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "Debug_dartc"), got)
}
