// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/H0llyW00dzZ/toolchain-buildenv/src/env"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/logger"
	"github.com/H0llyW00dzZ/toolchain-buildenv/src/probe"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the configuration file when no path is given explicitly.
const EnvConfigFile = "BUILDENV_CONFIG_FILE"

// ErrInvalidConfig indicates a configuration document rejected by the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the tunable paths and patterns of the build environment tools.
//
// An empty probe or locator path disables that probe step.
type Config struct {
	Probe struct {
		// CPUInfoPath: file whose "processor" lines are counted
		CPUInfoPath string `json:"cpuInfoPath" yaml:"cpuInfoPath"`
		// HostInfoPath: Darwin hostinfo utility
		HostInfoPath string `json:"hostInfoPath" yaml:"hostInfoPath"`
	} `json:"probe" yaml:"probe"`

	Java struct {
		// LocatorPath: utility printing the Java home for a version constraint
		LocatorPath string `json:"locatorPath" yaml:"locatorPath"`
		// Version: version constraint passed to the locator with -v
		Version string `json:"version" yaml:"version"`
	} `json:"java" yaml:"java"`

	Tests struct {
		// OptionsPattern: regular expression whose first group holds test options
		OptionsPattern string `json:"optionsPattern" yaml:"optionsPattern"`
		// Workspace: root that relative option paths are resolved against
		Workspace string `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	} `json:"tests" yaml:"tests"`

	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Probe.CPUInfoPath = probe.DefaultCPUInfoPath
	c.Probe.HostInfoPath = probe.DefaultHostInfoPath
	c.Java.LocatorPath = probe.DefaultJavaLocatorPath
	c.Java.Version = probe.DefaultJavaVersion
	c.Tests.OptionsPattern = probe.DefaultOptionsPattern
	c.Log.Format = logger.FormatText
	return c
}

// detectFormat determines the configuration file format based on file
// extension, case-insensitively. Unknown extensions are read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// decode parses data into a generic document.
func decode(data []byte, f format) (any, error) {
	var doc any
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Load reads the configuration from configPath, or from the file named by
// [EnvConfigFile] in e when configPath is empty. Without either, it returns
// [Default].
//
// Configuration Priority:
//  1. Default values are set
//  2. Values present in the file override them
//
// The document is validated against the embedded schema before it is applied,
// so unknown keys and misspelled sections are reported instead of ignored.
func Load(configPath string, e env.Environment) (*Config, error) {
	c := Default()

	if configPath == "" && e != nil {
		configPath = e.Getenv(EnvConfigFile)
	}
	if configPath == "" {
		return c, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f := detectFormat(configPath)
	doc, err := decode(data, f)
	if err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply config file: %w", err)
	}
	return c, nil
}

// OptionsPattern compiles Tests.OptionsPattern.
func (c *Config) OptionsPattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.Tests.OptionsPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: tests.optionsPattern: %w", ErrInvalidConfig, err)
	}
	return re, nil
}

// Apply copies the probe settings onto p.
func (c *Config) Apply(p *probe.Prober) {
	p.CPUInfoPath = c.Probe.CPUInfoPath
	p.HostInfoPath = c.Probe.HostInfoPath
	p.JavaLocatorPath = c.Java.LocatorPath
	p.JavaVersion = c.Java.Version
}
