//go:build !linux
// +build !linux

package sysinfo

import (
	"bufio"
	"bytes"
	"os/exec"
	"runtime"
	"strings"
)

func stat() (*SysInfo, error) {
	switch runtime.GOOS {
	case "darwin":
		name, version := darwinInfo()
		return &SysInfo{Name: "darwin", Release: name, Version: version}, nil
	case "windows":
		return &SysInfo{Name: "windows", Release: "Windows", Version: windowsVersion()}, nil
	}
	return &SysUnknown, nil
}

// darwinInfo parses the output of 'sw_vers'.
func darwinInfo() (string, string) {
	output, err := exec.Command("sw_vers").Output()
	if err != nil {
		return "macOS", "unknown"
	}

	var productName, productVersion string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ProductName:") {
			productName = strings.TrimSpace(strings.TrimPrefix(line, "ProductName:"))
		}
		if strings.HasPrefix(line, "ProductVersion:") {
			productVersion = strings.TrimSpace(strings.TrimPrefix(line, "ProductVersion:"))
		}
	}
	return productName, productVersion
}

func windowsVersion() string {
	output, err := exec.Command("cmd", "/c", "ver").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}
