package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cjbassi/mime-detective/pkg/report"
)

func TestScanCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello\n"), 0644))

	reportFile := filepath.Join(t.TempDir(), "report.xml")

	cmd := DefineScanCommand()
	cmd.SetArgs([]string{root, "-o", reportFile, "--no-log", "--quiet"})
	require.NoError(t, cmd.Execute())

	f, err := os.Open(reportFile)
	require.NoError(t, err)
	defer f.Close()

	objects, err := report.ReadFileObjects(f)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	require.Contains(t, objects[0].MIME, "text/plain")
}

func TestScanCommandBadThreshold(t *testing.T) {
	cmd := DefineScanCommand()
	cmd.SetArgs([]string{t.TempDir(), "--mmap-threshold", "lots", "--quiet"})
	require.Error(t, cmd.Execute())
}

func TestScanCommandBadMaxFileRead(t *testing.T) {
	cmd := DefineScanCommand()
	cmd.SetArgs([]string{t.TempDir(), "--max-file-read", "many", "--quiet"})
	require.Error(t, cmd.Execute())
}
