package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0B", FormatBytes(0))
	require.Equal(t, "512B", FormatBytes(512))
	require.Equal(t, "1KB", FormatBytes(1024))
	require.Equal(t, "1.50KB", FormatBytes(1536))
	require.Equal(t, "4MB", FormatBytes(4*MB))
	require.Equal(t, "2GB", FormatBytes(2*GB))
}

func TestParseBytes(t *testing.T) {
	cases := map[string]uint64{
		"0":     0,
		"123":   123,
		"512B":  512,
		"4KB":   4 * KB,
		"64MB":  64 * MB,
		"64mb":  64 * MB,
		"2GB":   2 * GB,
		"1TB":   1 * TB,
		" 8MB ": 8 * MB,
	}
	for in, want := range cases {
		got, err := ParseBytes(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}
}

func TestParseBytesInvalid(t *testing.T) {
	for _, in := range []string{"", "MB", "-1KB", "12XB", "1.5MB"} {
		_, err := ParseBytes(in)
		require.Error(t, err, "input %q", in)
	}
}
