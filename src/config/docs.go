// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads buildenv settings from JSON or YAML files.
//
// The file format is chosen by extension (.json, .yaml, .yml). Documents are
// validated against an embedded JSON schema and merged over [Default]:
//
//	probe:
//	  cpuInfoPath: /proc/cpuinfo
//	  hostInfoPath: ""          # never run hostinfo
//	java:
//	  version: "1.8+"
//	tests:
//	  workspace: /src/dart
//	log:
//	  format: json
//
// The path comes from the --config flag or the BUILDENV_CONFIG_FILE
// environment variable.
package config
