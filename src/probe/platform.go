// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"regexp"
	"strings"
)

// Canonical operating system tags.
const (
	OSLinux   = "linux"
	OSMacOS   = "macos"
	OSWin32   = "win32"
	OSFreeBSD = "freebsd"
	OSOpenBSD = "openbsd"
	OSSolaris = "solaris"
)

// Canonical architecture tags.
const (
	ArchARM  = "arm"
	ArchIA32 = "ia32"
)

// systemTags maps uname-style system names to OS tags. Some Windows
// releases report "Microsoft" instead of "Windows".
var systemTags = map[string]string{
	"Linux":     OSLinux,
	"Darwin":    OSMacOS,
	"Windows":   OSWin32,
	"Microsoft": OSWin32,
	"FreeBSD":   OSFreeBSD,
	"OpenBSD":   OSOpenBSD,
	"SunOS":     OSSolaris,
}

// x86Machine matches the start of Intel x86 family machine names
// (x86, i386 through i686, x86_64).
var x86Machine = regexp.MustCompile(`^(x|i[3-6])86`)

// GuessOS maps a system name as reported by uname to an OS tag.
// The second result is false for unrecognised systems.
func GuessOS(system string) (string, bool) {
	tag, ok := systemTags[system]
	return tag, ok
}

// GuessArchitecture maps a machine name as reported by uname to an
// architecture tag. An empty machine name is taken to be ia32.
// The second result is false for unrecognised machines.
func GuessArchitecture(machine string) (string, bool) {
	switch {
	case strings.HasPrefix(machine, "arm"):
		return ArchARM, true
	case machine == "", x86Machine.MatchString(machine), machine == "i86pc":
		return ArchIA32, true
	default:
		return "", false
	}
}
