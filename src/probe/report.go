// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import "context"

// Report is a snapshot of the host guesses.
type Report struct {
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
	CPUs    int    `json:"cpus" yaml:"cpus"`
	Windows bool   `json:"windows" yaml:"windows"`
}

// Report collects the host guesses. Unrecognised OS and architecture are
// left empty; only the CPU count can fail.
func (p *Prober) Report(ctx context.Context) (*Report, error) {
	cpus, err := p.GuessCPUs(ctx)
	if err != nil {
		return nil, err
	}

	osTag, _ := p.HostOS()
	arch, _ := p.HostArchitecture()

	return &Report{
		OS:      osTag,
		Arch:    arch,
		CPUs:    cpus,
		Windows: osTag == OSWin32,
	}, nil
}
