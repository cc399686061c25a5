// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// ReadLinesFrom reads the significant lines of the named file. See [ParseLines].
// Reading an unchanged file again yields the same slice.
func ReadLinesFrom(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ParseLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}

// ParseLines returns the significant lines of r in order: everything from
// the first '#' is dropped, surrounding whitespace is trimmed and lines left
// empty are skipped. A leading byte order mark selects UTF-8 or UTF-16
// decoding; without one the input is read as UTF-8. Lines may be of any
// length.
func ParseLines(r io.Reader) ([]string, error) {
	decoded := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder())))

	var lines []string
	for {
		line, err := decoded.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if i := strings.Index(line, commentMarker); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			return lines, nil
		}
	}
}
