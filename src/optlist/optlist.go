// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package optlist

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects where a list option stops consuming arguments.
type Mode int

const (
	// UntilSeparator consumes arguments up to the next one starting with "--".
	UntilSeparator Mode = iota
	// FlagsOnly consumes a run of single-dash flags. It stops at an argument
	// starting with "--" or not starting with "-".
	FlagsOnly
)

// String returns the name used in CLI flags and diagnostics.
func (m Mode) String() string {
	switch m {
	case UntilSeparator:
		return "until-separator"
	case FlagsOnly:
		return "flags-only"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	// ErrDuplicateOption is returned when an option name is registered twice.
	ErrDuplicateOption = errors.New("optlist: duplicate option")
	// ErrInvalidOption is returned for an option name that does not start with "-".
	ErrInvalidOption = errors.New("optlist: option name must start with '-'")
)

// stops reports whether arg ends a run consumed in mode m.
func (m Mode) stops(arg string) bool {
	if strings.HasPrefix(arg, "--") {
		return true
	}
	return m == FlagsOnly && !strings.HasPrefix(arg, "-")
}

// Consume splits rargs at the first argument that ends a run in mode m.
// taken holds the consumed prefix and rest what the outer parser should
// continue with. Neither result aliases rargs.
func Consume(rargs []string, m Mode) (taken, rest []string) {
	n := 0
	for n < len(rargs) && !m.stops(rargs[n]) {
		n++
	}
	taken = append([]string{}, rargs[:n]...)
	rest = append([]string{}, rargs[n:]...)
	return taken, rest
}

// Option is a list-valued command-line option.
type Option struct {
	// Name is the option as it appears on the command line, e.g. "--vm-args".
	Name string
	// Dest is the key the consumed list is stored under. Empty derives it
	// from Name: leading dashes dropped, inner dashes turned into underscores.
	Dest string
	// Mode selects where consumption stops.
	Mode Mode
}

func (o Option) dest() string {
	if o.Dest != "" {
		return o.Dest
	}
	return strings.ReplaceAll(strings.TrimLeft(o.Name, "-"), "-", "_")
}

// Set is a collection of list options recognised by [Set.Parse].
// The zero value is an empty set.
type Set struct {
	options map[string]Option
}

// Add registers o.
func (s *Set) Add(o Option) error {
	if !strings.HasPrefix(o.Name, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidOption, o.Name)
	}
	if _, ok := s.options[o.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateOption, o.Name)
	}
	if s.options == nil {
		s.options = make(map[string]Option)
	}
	s.options[o.Name] = o
	return nil
}

// Parse walks args with a cursor. At each registered option it consumes the
// following arguments in the option's mode, removes them from the stream so
// parsing resumes after them, and assigns them to values[Dest]. A repeated
// option replaces the earlier list. Every other argument is passed through
// to rest in order.
func (s *Set) Parse(args []string) (rest []string, values map[string][]string) {
	values = make(map[string][]string)
	rest = make([]string, 0, len(args))

	for cursor := 0; cursor < len(args); cursor++ {
		opt, ok := s.options[args[cursor]]
		if !ok {
			rest = append(rest, args[cursor])
			continue
		}
		taken, _ := Consume(args[cursor+1:], opt.Mode)
		values[opt.dest()] = taken
		cursor += len(taken)
	}

	return rest, values
}
