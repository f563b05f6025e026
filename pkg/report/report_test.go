package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	err := w.WriteHeader(Header{
		Version: FormatVersion,
		Creator: Creator{
			Package:              "mime-detective",
			Version:              "test",
			ExecutionEnvironment: GetExecEnv(),
		},
		Source: Source{RootPath: "/data", Session: "abc123"},
	})
	require.NoError(t, err)

	objects := []FileObject{
		{Path: "/data/a.txt", Size: 12, MIME: "text/plain; charset=utf-8", Ext: "txt"},
		{Path: "/data/b.png", Size: 2048, MIME: "image/png", Ext: "png"},
		{Path: "/data/c", Size: 0, MIME: "application/octet-stream"},
	}
	for _, obj := range objects {
		require.NoError(t, w.WriteFileObject(obj))
	}
	require.NoError(t, w.Close())

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, `<detection_report version="1.0">`)
	require.Contains(t, out, "</detection_report>")

	got, err := ReadFileObjects(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, got, len(objects))

	for i := range objects {
		require.Equal(t, objects[i].Path, got[i].Path)
		require.Equal(t, objects[i].Size, got[i].Size)
		require.Equal(t, objects[i].MIME, got[i].MIME)
		require.Equal(t, objects[i].Ext, got[i].Ext)
	}
}

func TestReadFileObjectsEmptyReport(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(Header{Version: FormatVersion}))
	require.NoError(t, w.Close())

	got, err := ReadFileObjects(&buf)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetExecEnv(t *testing.T) {
	env := GetExecEnv()
	require.NotEmpty(t, env.OS)
	require.NotEmpty(t, env.Arch)
	require.NotEmpty(t, env.Start)
}
