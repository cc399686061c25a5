// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/cli"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/config"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/logger"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const version = "1.3.3.7-testing"

// fakeRunner returns canned tool output.
type fakeRunner struct {
	output string
	calls  [][]string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return []byte(f.output), nil
}

// harness runs the command tree against a fake host described by its fields.
type harness struct {
	t        *testing.T
	dir      string
	env      *env.Map
	runner   *fakeRunner
	platform probe.Platform
	wd       string
	config   string
	deps     cli.Dependencies

	out    bytes.Buffer
	errOut bytes.Buffer
	logs   bytes.Buffer
}

// newHarness describes a two-CPU x86 Linux host without hostinfo or a Java
// locator.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		dir:      t.TempDir(),
		env:      env.NewMap(nil),
		runner:   &fakeRunner{},
		platform: probe.Platform{System: "Linux", Machine: "x86_64"},
	}
	h.wd = h.dir
	cpuinfo := h.write("cpuinfo", "processor\t: 0\nprocessor\t: 1\n")
	h.config = h.write("buildenv.yaml", "probe:\n  cpuInfoPath: "+yamlQuote(cpuinfo)+"\n  hostInfoPath: \"\"\njava:\n  locatorPath: \"\"\n")
	return h
}

func yamlQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func (h *harness) write(name, content string) string {
	h.t.Helper()
	path := filepath.Join(h.dir, filepath.FromSlash(name))
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (h *harness) run(args ...string) error {
	h.t.Helper()
	h.out.Reset()
	h.errOut.Reset()
	h.logs.Reset()

	log := logger.NewCLILogger()
	log.SetOutput(&h.logs)

	deps := h.deps
	deps.Log = log
	deps.Env = h.env
	deps.NewProber = func(l logger.Logger) *probe.Prober {
		p := probe.New(l)
		p.Env = h.env
		p.Runner = h.runner
		p.Platform = func() (probe.Platform, error) { return h.platform, nil }
		p.Getwd = func() (string, error) { return h.wd, nil }
		return p
	}

	cmd := cli.NewRootCommand(version, deps)
	cmd.SetOut(&h.out)
	cmd.SetErr(&h.errOut)
	if h.config != "" {
		args = append([]string{"--config", h.config}, args...)
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestProbeText(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("probe"))

	var got [][]string
	for _, line := range strings.Split(strings.TrimSpace(h.out.String()), "\n") {
		got = append(got, strings.Fields(line))
	}
	assert.Equal(t, [][]string{
		{"os", "linux"},
		{"arch", "ia32"},
		{"cpus", "2"},
		{"windows", "false"},
	}, got)
}

func TestProbeUnknownHostText(t *testing.T) {
	h := newHarness(t)
	h.platform = probe.Platform{System: "Plan9", Machine: "mips"}

	require.NoError(t, h.run("probe"))

	assert.Contains(t, h.out.String(), "unknown")
}

func TestProbeStructuredOutput(t *testing.T) {
	want := probe.Report{OS: "win32", Arch: "ia32", CPUs: 2, Windows: true}

	t.Run("json", func(t *testing.T) {
		h := newHarness(t)
		h.platform = probe.Platform{System: "Windows", Machine: "x86"}

		require.NoError(t, h.run("probe", "--json"))

		var got probe.Report
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml", func(t *testing.T) {
		h := newHarness(t)
		h.platform = probe.Platform{System: "Windows", Machine: "x86"}

		require.NoError(t, h.run("probe", "--yaml"))

		var got probe.Report
		require.NoError(t, yaml.Unmarshal(h.out.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("table", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run("probe", "--table"))

		out := h.out.String()
		assert.Contains(t, strings.ToLower(out), "property")
		assert.Contains(t, out, "|")
		assert.Contains(t, out, "linux")
		assert.Contains(t, out, "ia32")
	})

	t.Run("exclusive", func(t *testing.T) {
		h := newHarness(t)
		assert.Error(t, h.run("probe", "--json", "--table"))
	})
}

func TestHostQueries(t *testing.T) {
	tests := []struct {
		name     string
		platform probe.Platform
		args     []string
		want     string
	}{
		{name: "os", platform: probe.Platform{System: "Darwin", Machine: "arm64"}, args: []string{"os"}, want: "macos\n"},
		{name: "arch", platform: probe.Platform{System: "Darwin", Machine: "arm64"}, args: []string{"arch"}, want: "arm\n"},
		{name: "is-windows", platform: probe.Platform{System: "Microsoft", Machine: "x86"}, args: []string{"is-windows"}, want: "true\n"},
		{name: "cpus", platform: probe.Platform{System: "Linux", Machine: "i686"}, args: []string{"cpus"}, want: "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.platform = tt.platform

			require.NoError(t, h.run(tt.args...))
			assert.Equal(t, tt.want, h.out.String())
		})
	}
}

func TestHostQueriesUnrecognised(t *testing.T) {
	for _, args := range [][]string{{"os"}, {"arch"}, {"build-root"}} {
		t.Run(args[0], func(t *testing.T) {
			h := newHarness(t)
			h.platform = probe.Platform{System: "Plan9", Machine: "mips"}

			assert.ErrorIs(t, h.run(args...), cli.ErrUnrecognisedHost)
		})
	}
}

func TestCPUsFromEnvironment(t *testing.T) {
	h := newHarness(t)
	h.config = h.write("nocpuinfo.json", `{"probe": {"cpuInfoPath": "", "hostInfoPath": ""}}`)
	require.NoError(t, h.env.Setenv(probe.EnvNumberOfProcessors, "24"))

	require.NoError(t, h.run("cpus"))
	assert.Equal(t, "24\n", h.out.String())
}

func TestBuildRootAndConf(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "host base", args: []string{"build-root"}, want: "out"},
		{name: "host debug", args: []string{"build-root", "--mode", "debug"}, want: filepath.Join("out", "Debug_ia32")},
		{name: "explicit", args: []string{"build-root", "--os", "macos", "-m", "release", "-a", "arm"}, want: filepath.Join("xcodebuild", "Release_arm")},
		{name: "conf", args: []string{"build-conf", "release", "arm"}, want: "Release_arm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			require.NoError(t, h.run(tt.args...))
			assert.Equal(t, tt.want+"\n", h.out.String())
		})
	}
}

func TestBuildRootErrors(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.run("build-root", "--os", "plan9"), probe.ErrUnknownOS)
	assert.ErrorIs(t, h.run("build-root", "--mode", "fast"), probe.ErrUnknownBuildMode)
	assert.ErrorIs(t, h.run("build-conf", "fast", "ia32"), probe.ErrUnknownBuildMode)
}

func TestLines(t *testing.T) {
	h := newHarness(t)
	path := h.write("status.txt", "# skip\nfoo # bar\n\nbaz\n")

	require.NoError(t, h.run("lines", path))
	assert.Equal(t, "foo\nbaz\n", h.out.String())
}

func TestTestOptions(t *testing.T) {
	h := newHarness(t)
	helper := h.write("tests/lib/helper.dart", "")
	test := h.write("tests/a_test.dart", "// DartOptions=--enable_type_checks tests/lib/helper.dart\nmain() {}\n")

	require.NoError(t, h.run("test-options", test))
	assert.Equal(t, "--enable_type_checks\n"+helper+"\n", h.out.String())
}

func TestTestOptionsWorkspaceFlag(t *testing.T) {
	h := newHarness(t)
	h.wd = filepath.Join(h.dir, "elsewhere")
	helper := h.write("tests/lib/helper.dart", "")
	test := h.write("tests/a_test.dart", "// DartOptions=tests/lib/helper.dart\n")

	require.NoError(t, h.run("test-options", "-w", h.dir, test))
	assert.Equal(t, helper+"\n", h.out.String())

	assert.ErrorIs(t, h.run("test-options", test), probe.ErrPathNotFound)
}

func TestTestOptionsNoDirective(t *testing.T) {
	h := newHarness(t)
	test := h.write("plain_test.dart", "main() {}\n")

	require.NoError(t, h.run("test-options", test))
	assert.Empty(t, h.out.String())
	assert.Contains(t, h.logs.String(), "No test options")
}

func TestJavaHome(t *testing.T) {
	h := newHarness(t)
	locator := h.write("java_home", "")
	h.config = h.write("java.yaml", "java:\n  locatorPath: "+yamlQuote(locator)+"\n  version: \"1.8+\"\n")
	h.runner.output = "/opt/jdk\n"
	require.NoError(t, h.env.Setenv(probe.EnvJavaHome, "/opt/old"))

	require.NoError(t, h.run("java-home"))

	assert.Equal(t, "/opt/jdk\n", h.out.String())
	assert.Contains(t, h.logs.String(), "Please set JAVA_HOME to /opt/jdk")
	assert.Equal(t, [][]string{{locator, "-v", "1.8+"}}, h.runner.calls)
	assert.Equal(t, "/opt/jdk", h.env.Getenv(probe.EnvJavaHome))
}

func TestJavaHomeWithoutLocator(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("java-home"))
	assert.Empty(t, h.out.String())
	assert.Empty(t, h.runner.calls)
}

func TestArgs(t *testing.T) {
	args := []string{"args", "--list=--tests", "--flags=--vm", "--",
		"--tests", "a", "b", "--vm", "-x", "-y", "c", "--verbose"}

	t.Run("text", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run(args...))
		assert.Equal(t, "tests: a b\nvm: -x -y\nrest: c --verbose\n", h.out.String())
	})

	t.Run("json", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.run(append([]string{"args", "--json"}, args[1:]...)...))

		var got struct {
			Rest   []string            `json:"rest"`
			Values map[string][]string `json:"values"`
		}
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
		assert.Equal(t, []string{"c", "--verbose"}, got.Rest)
		assert.Equal(t, map[string][]string{"tests": {"a", "b"}, "vm": {"-x", "-y"}}, got.Values)
	})

	t.Run("invalid option name", func(t *testing.T) {
		h := newHarness(t)
		assert.Error(t, h.run("args", "--list=tests", "--", "tests"))
	})
}

func TestConfigCommand(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("config"))

	var got config.Config
	require.NoError(t, yaml.Unmarshal(h.out.Bytes(), &got))
	assert.Equal(t, filepath.Join(h.dir, "cpuinfo"), got.Probe.CPUInfoPath)
	assert.Equal(t, probe.DefaultJavaVersion, got.Java.Version)

	require.NoError(t, h.run("config", "--schema"))
	assert.Equal(t, config.Schema(), h.out.Bytes())
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)
	h.config = h.write("bad.json", `{"probe": {"cpus": 4}}`)

	assert.ErrorIs(t, h.run("os"), config.ErrInvalidConfig)
}

func TestConfigFromEnvironment(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.env.Setenv(config.EnvConfigFile, h.config))
	h.config = ""

	require.NoError(t, h.run("cpus"))
	assert.Equal(t, "2\n", h.out.String())
}

func TestLogFormat(t *testing.T) {
	h := newHarness(t)
	test := h.write("plain_test.dart", "main() {}\n")

	require.NoError(t, h.run("--log-format", "json", "test-options", test))

	var entry map[string]string
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(h.errOut.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry["message"], "No test options")
	assert.Empty(t, h.logs.String())

	assert.ErrorIs(t, h.run("--log-format", "xml", "os"), logger.ErrUnknownFormat)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--version"))
	assert.Contains(t, h.out.String(), version)
}
