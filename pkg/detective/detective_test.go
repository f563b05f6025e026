package detective

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestNewWithDatabasesMissingPath(t *testing.T) {
	_, err := NewWithDatabases(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	require.True(t, IsDatabase(err))
	require.False(t, IsParse(err))
	require.False(t, IsIO(err))
}

func TestNewWithDatabasesBadContent(t *testing.T) {
	path := writeFile(t, "magic.db", "this is not a rule")
	_, err := NewWithDatabases(path)
	require.True(t, IsDatabase(err))
}

func TestDetectFilepath(t *testing.T) {
	path := writeFile(t, "note.txt", "The quick brown fox jumps over the lazy dog.\n")

	d, err := New()
	require.NoError(t, err)

	mt, err := d.DetectFilepath(path)
	require.NoError(t, err)
	require.True(t, mt.Is("text/plain"))
}

func TestDetectFilepathMissing(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	_, err = d.DetectFilepath(filepath.Join(t.TempDir(), "missing.txt"))
	require.True(t, IsDatabase(err))
}

func TestDetectFileAdvancesTwoBytes(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	r := bytes.NewReader([]byte("hello world"))
	mt, err := d.DetectFile(r)
	require.NoError(t, err)
	require.True(t, mt.Is("text/plain"))

	// exactly the first two bytes were consumed
	require.Equal(t, len("hello world")-2, r.Len())
}

func TestDetectFileShortInput(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	for _, input := range []string{"", "x"} {
		_, err := d.DetectFile(strings.NewReader(input))
		require.True(t, IsIO(err), "input %q", input)
	}
}

func TestDetectFileOnOpenFile(t *testing.T) {
	path := writeFile(t, "note.txt", "plain text content\n")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	d, err := New()
	require.NoError(t, err)

	mt, err := d.DetectFile(f)
	require.NoError(t, err)
	require.True(t, mt.Is("text/plain"))

	pos, err := f.Seek(0, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, pos)
}

func TestDetectBuffer(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	mt, err := d.DetectBuffer([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})
	require.NoError(t, err)
	require.True(t, mt.Is("image/png"))
}

func TestDetectBufferEmpty(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	mt, err := d.DetectBuffer(nil)
	require.NoError(t, err)
	require.True(t, mt.Is("text/plain"))
}

func TestShapesAgree(t *testing.T) {
	content := "agreement across all three detection shapes\n"
	path := writeFile(t, "note.txt", content)

	d, err := New()
	require.NoError(t, err)

	fromPath, err := d.DetectFilepath(path)
	require.NoError(t, err)

	fromBuffer, err := d.DetectBuffer([]byte(content))
	require.NoError(t, err)

	fromFile, err := d.DetectFile(strings.NewReader(content))
	require.NoError(t, err)

	require.Equal(t, fromPath.MIME(), fromBuffer.MIME())
	require.Equal(t, fromBuffer.MIME(), fromFile.MIME())
}

func TestDetectIdempotent(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	buf := []byte("same input, same answer")
	first, err := d.DetectBuffer(buf)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := d.DetectBuffer(buf)
		require.NoError(t, err)
		require.True(t, first.Equal(again))
	}
}

func TestCustomDatabase(t *testing.T) {
	db := writeFile(t, "magic.db", `application/x-acme acme "ACME"`)

	d, err := NewWithDatabases(db)
	require.NoError(t, err)

	mt, err := d.DetectBuffer([]byte("ACME payload"))
	require.NoError(t, err)
	require.Equal(t, "application/x-acme", mt.MIME())
}

// malformedEngine stands in for an engine that returns output violating
// MIME grammar.
type malformedEngine struct{}

func (malformedEngine) File(string) (string, error)   { return "definitely not a mime", nil }
func (malformedEngine) Buffer([]byte) (string, error) { return "definitely not a mime", nil }

func TestMalformedEngineOutput(t *testing.T) {
	d := &Detector{eng: malformedEngine{}}

	_, err := d.DetectBuffer([]byte("anything"))
	require.True(t, IsParse(err))

	_, err = d.DetectFilepath("anything")
	require.True(t, IsParse(err))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: KindIO, Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "io")
	require.Contains(t, err.Error(), "boom")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "database", KindDatabase.String())
	require.Equal(t, "parse", KindParse.String())
	require.Equal(t, "io", KindIO.String())
}
