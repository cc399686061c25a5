// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultOptionsPattern matches the options directive embedded in test sources.
const DefaultOptionsPattern = `// DartOptions=(.*)`

// ParseTestOptions extracts the options directive from a test source.
//
// The first match of pattern is located and its first capture group split on
// single spaces. Options are always written with '/' separators; a token
// containing '/' is treated as a path relative to workspace, converted to the
// host separator, and must exist. The second result is false when source has
// no directive.
func ParseTestOptions(pattern *regexp.Regexp, source, workspace string) ([]string, bool, error) {
	if pattern.NumSubexp() < 1 {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
	}

	match := pattern.FindStringSubmatch(source)
	if match == nil {
		return nil, false, nil
	}

	tokens := strings.Split(match[1], " ")
	options := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		opt, err := rewriteOption(tok, workspace)
		if err != nil {
			return nil, true, err
		}
		options = append(options, opt)
	}
	return options, true, nil
}

func rewriteOption(tok, workspace string) (string, error) {
	if !strings.Contains(tok, "/") {
		return tok, nil
	}

	path := filepath.FromSlash(tok)
	if !filepath.IsAbs(path) {
		path = filepath.Join(workspace, path)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return "", err
	}
	return path, nil
}
