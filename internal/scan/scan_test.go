package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cjbassi/mime-detective/pkg/report"
)

func setupTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello scan\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.png"),
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("secret"), 0644))
	return root
}

func TestScan(t *testing.T) {
	root := setupTree(t)
	reportFile := filepath.Join(t.TempDir(), "report.xml")

	summary, err := Scan(root, Options{
		ReportFile: reportFile,
		DisableLog: true,
		Quiet:      true,
	})
	require.NoError(t, err)

	require.Equal(t, 2, summary.FilesScanned)
	require.Zero(t, summary.Failures)
	require.Equal(t, 1, summary.ByType["text/plain"])
	require.Equal(t, 1, summary.ByType["image/png"])
	require.NotEmpty(t, summary.Session)

	f, err := os.Open(reportFile)
	require.NoError(t, err)
	defer f.Close()

	objects, err := report.ReadFileObjects(f)
	require.NoError(t, err)
	require.Len(t, objects, 2)
}

func TestScanIncludeHidden(t *testing.T) {
	root := setupTree(t)

	summary, err := Scan(root, Options{
		ReportFile:    filepath.Join(t.TempDir(), "report.xml"),
		IncludeHidden: true,
		DisableLog:    true,
		Quiet:         true,
	})
	require.NoError(t, err)
	require.Equal(t, 3, summary.FilesScanned)
}

func TestScanWithDatabase(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.acme"), []byte("ACME data"), 0644))

	db := filepath.Join(t.TempDir(), "magic.db")
	require.NoError(t, os.WriteFile(db, []byte(`application/x-acme acme "ACME"`), 0644))

	summary, err := Scan(root, Options{
		ReportFile: filepath.Join(t.TempDir(), "report.xml"),
		Databases:  []string{db},
		DisableLog: true,
		Quiet:      true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, summary.ByType["application/x-acme"])
}

func TestScanBadDatabase(t *testing.T) {
	_, err := Scan(t.TempDir(), Options{
		Databases:  []string{filepath.Join(t.TempDir(), "missing.db")},
		DisableLog: true,
		Quiet:      true,
	})
	require.Error(t, err)
}

func TestScanMmapPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.txt"),
		[]byte("large enough to cross a tiny mmap threshold\n"), 0644))

	summary, err := Scan(root, Options{
		ReportFile:    filepath.Join(t.TempDir(), "report.xml"),
		MmapThreshold: 1, // force the mmap route
		DisableLog:    true,
		Quiet:         true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, summary.ByType["text/plain"])
}

func TestScanMaxFileRead(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.png"),
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}, 0644))

	// Capping the buffer below the PNG signature length must prevent the
	// PNG match without failing the scan.
	summary, err := Scan(root, Options{
		ReportFile:    filepath.Join(t.TempDir(), "report.xml"),
		MmapThreshold: 1,
		MaxFileRead:   4,
		DisableLog:    true,
		Quiet:         true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, summary.FilesScanned)
	require.Zero(t, summary.ByType["image/png"])
}

func TestFormatDurationHMS(t *testing.T) {
	require.Equal(t, "0.50s", FormatDurationHMS(500*time.Millisecond))
	require.Equal(t, "00:00:05", FormatDurationHMS(5*time.Second))
	require.Equal(t, "01:02:03", FormatDurationHMS(time.Hour+2*time.Minute+3*time.Second))
}
