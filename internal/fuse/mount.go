//go:build !linux
// +build !linux

package fuse

import (
	"fmt"

	"github.com/cjbassi/mime-detective/pkg/report"
)

func Mount(mountpoint string, objects []report.FileObject) error {
	return fmt.Errorf("FUSE mount is only supported on Linux")
}
