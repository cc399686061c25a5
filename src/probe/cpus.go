// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables consulted by [Prober.GuessCPUs].
const (
	EnvNumberOfProcessors = "NUMBER_OF_PROCESSORS"
	EnvDefaultCores       = "DART_NUMBER_OF_CORES"

	defaultCores = 2
)

// hostInfoMarker identifies the hostinfo line carrying the logical CPU count.
const hostInfoMarker = "processors are logically available."

// GuessCPUs returns the number of CPUs. Sources are tried in a fixed order
// and the first one present decides:
//
//  1. the processor listing file (/proc/cpuinfo);
//  2. the hostinfo utility (macOS);
//  3. NUMBER_OF_PROCESSORS (Windows);
//  4. DART_NUMBER_OF_CORES, defaulting to 2.
//
// A present source that cannot be parsed is an error; the next source is
// not consulted.
func (p *Prober) GuessCPUs(ctx context.Context) (int, error) {
	if exists(p.CPUInfoPath) {
		return countProcessors(p.CPUInfoPath)
	}
	if exists(p.HostInfoPath) {
		return p.hostInfoCPUs(ctx)
	}
	if v := p.Env.Getenv(EnvNumberOfProcessors); v != "" {
		return parseCount(EnvNumberOfProcessors, v)
	}
	if v := p.Env.Getenv(EnvDefaultCores); v != "" {
		return parseCount(EnvDefaultCores, v)
	}
	return defaultCores, nil
}

// countProcessors counts the lines of a cpuinfo file that begin with "processor".
func countProcessors(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "processor") {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}

func (p *Prober) hostInfoCPUs(ctx context.Context) (int, error) {
	out, err := p.Runner.Output(ctx, p.HostInfoPath)
	if err != nil {
		return 0, toolFailure(p.HostInfoPath, err)
	}

	for _, line := range bytes.Split(out, []byte("\n")) {
		if !bytes.Contains(line, []byte(hostInfoMarker)) {
			continue
		}
		fields := strings.Fields(string(line))
		if len(fields) == 0 {
			break
		}
		return parseCount(p.HostInfoPath, fields[0])
	}
	return 0, fmt.Errorf("%w: %s reported no logical processor count", ErrCPUCount, p.HostInfoPath)
}

func parseCount(source, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrCPUCount, source, err)
	}
	return n, nil
}
