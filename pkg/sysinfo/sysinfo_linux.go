//go:build linux
// +build linux

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// stat reads the kernel identification directly via uname(2).
func stat() (*SysInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return &SysUnknown, nil
	}

	return &SysInfo{
		Name:    utsString(uts.Sysname[:]),
		Release: utsString(uts.Release[:]),
		Version: utsString(uts.Version[:]),
	}, nil
}

func utsString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
