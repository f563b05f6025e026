package mediatype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	mt, err := Parse("text/plain")
	require.NoError(t, err)
	require.Equal(t, "text", mt.Type)
	require.Equal(t, "plain", mt.Subtype)
	require.Empty(t, mt.Params)
}

func TestParseWithParams(t *testing.T) {
	mt, err := Parse("text/plain; charset=utf-8")
	require.NoError(t, err)
	require.Equal(t, "text/plain", mt.MIME())
	require.Equal(t, "utf-8", mt.Params["charset"])
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"cannot be a mime",
		"text",
		"text/",
		"/plain",
		"text/plain; =broken",
	} {
		_, err := Parse(s)
		require.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestString(t *testing.T) {
	mt, err := Parse("text/plain; charset=utf-8")
	require.NoError(t, err)
	require.Equal(t, "text/plain; charset=utf-8", mt.String())

	require.Equal(t, "text/plain", TextPlain.String())
}

func TestEqual(t *testing.T) {
	a, err := Parse("text/plain; charset=utf-8")
	require.NoError(t, err)
	b, err := Parse("TEXT/PLAIN;  CHARSET=utf-8")
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	require.False(t, a.Equal(TextPlain))
	require.False(t, TextPlain.Equal(TextHTML))
	require.True(t, TextPlain.Equal(TextPlain))
}

func TestIs(t *testing.T) {
	mt, err := Parse("text/plain; charset=utf-8")
	require.NoError(t, err)
	require.True(t, mt.Is("text/plain"))
	require.True(t, mt.Is("text/plain; charset=iso-8859-1"))
	require.False(t, mt.Is("text/html"))
}

func TestPredicates(t *testing.T) {
	require.True(t, TextPlain.IsText())
	require.True(t, ApplicationJSON.IsText())
	require.True(t, ImagePNG.IsImage())
	require.True(t, ApplicationZip.IsArchive())
	require.False(t, OctetStream.IsText())
	require.False(t, OctetStream.IsArchive())

	audio, err := Parse("audio/mpeg")
	require.NoError(t, err)
	require.True(t, audio.IsAudio())

	video, err := Parse("video/mp4")
	require.NoError(t, err)
	require.True(t, video.IsVideo())
}
