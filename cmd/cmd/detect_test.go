package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectCommandWalksDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.png"),
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, 0644))

	cmd := DefineDetectCommand()
	cmd.SetArgs([]string{root})
	require.NoError(t, cmd.Execute())
}

func TestDetectCommandMissingPath(t *testing.T) {
	cmd := DefineDetectCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, cmd.Execute())
}

func TestFormatParamsSorted(t *testing.T) {
	params := map[string]string{
		"charset":  "utf-8",
		"boundary": "xyz",
		"a":        "1",
	}
	want := "; a=1; boundary=xyz; charset=utf-8"
	for i := 0; i < 10; i++ {
		require.Equal(t, want, formatParams(params))
	}

	require.Empty(t, formatParams(nil))
}
