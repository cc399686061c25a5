// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"context"
	"fmt"
	"strings"
)

// EnvJavaHome is the variable [Prober.ConfigureJava] reconciles.
const EnvJavaHome = "JAVA_HOME"

// ConfigureJava points JAVA_HOME at the Java installation reported by the
// platform locator (/usr/libexec/java_home on macOS) and returns it.
//
// Without a locator it does nothing and returns "". A locator exiting
// non-zero yields a [*ToolError]. When the reported home differs from a set
// JAVA_HOME, a warning is logged and the variable is overwritten.
func (p *Prober) ConfigureJava(ctx context.Context) (string, error) {
	if !exists(p.JavaLocatorPath) {
		return "", nil
	}

	out, err := p.Runner.Output(ctx, p.JavaLocatorPath, "-v", p.JavaVersion)
	if err != nil {
		return "", toolFailure(p.JavaLocatorPath, err)
	}

	home := strings.TrimSpace(string(out))
	current, ok := p.Env.LookupEnv(EnvJavaHome)
	if !ok {
		current = home
	}
	if current != home {
		p.Log.Printf("Please set %s to %s", EnvJavaHome, home)
		if err := p.Env.Setenv(EnvJavaHome, home); err != nil {
			return "", fmt.Errorf("setting %s: %w", EnvJavaHome, err)
		}
	}
	return home, nil
}
