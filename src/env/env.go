// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package env

import (
	"os"
	"sort"
	"sync"
)

// Environment is the set of environment variables an operation reads from
// and writes to.
type Environment interface {
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)
	// Getenv returns the value of key, or "" when unset.
	Getenv(key string) string
	// Setenv sets key to value.
	Setenv(key, value string) error
	// Unsetenv removes key.
	Unsetenv(key string) error
	// Environ returns the variables in "key=value" form.
	Environ() []string
}

// OS is the environment of the running process.
type OS struct{}

// LookupEnv implements [Environment].
func (OS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Getenv implements [Environment].
func (OS) Getenv(key string) string { return os.Getenv(key) }

// Setenv implements [Environment].
func (OS) Setenv(key, value string) error { return os.Setenv(key, value) }

// Unsetenv implements [Environment].
func (OS) Unsetenv(key string) error { return os.Unsetenv(key) }

// Environ implements [Environment].
func (OS) Environ() []string { return os.Environ() }

// Map is an in-memory environment. The zero value is empty and ready to use.
//
// Map is safe for concurrent use by multiple goroutines.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap returns a Map holding a copy of vars.
func NewMap(vars map[string]string) *Map {
	m := &Map{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

// LookupEnv implements [Environment].
func (m *Map) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[key]
	return v, ok
}

// Getenv implements [Environment].
func (m *Map) Getenv(key string) string {
	v, _ := m.LookupEnv(key)
	return v
}

// Setenv implements [Environment].
func (m *Map) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[key] = value
	return nil
}

// Unsetenv implements [Environment].
func (m *Map) Unsetenv(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, key)
	return nil
}

// Environ implements [Environment]. Entries are sorted by key.
func (m *Map) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.vars))
	for k, v := range m.vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
