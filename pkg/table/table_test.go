package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertGet(t *testing.T) {
	pt := New[string]()
	pt.Insert([]byte("ID3"), "mp3")
	pt.Insert([]byte{0x89, 'P', 'N', 'G'}, "png")

	v, ok := pt.Get([]byte("ID3"))
	require.True(t, ok)
	require.Equal(t, "mp3", v)

	_, ok = pt.Get([]byte("ID"))
	require.False(t, ok)

	require.Equal(t, 2, pt.Size())
}

func TestInsertReplaces(t *testing.T) {
	pt := New[int]()
	pt.Insert([]byte("ab"), 1)
	pt.Insert([]byte("ab"), 2)

	v, ok := pt.Get([]byte("ab"))
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, pt.Size())
}

func TestWalkShortestFirst(t *testing.T) {
	pt := New[string]()
	pt.Insert([]byte("a"), "a")
	pt.Insert([]byte("abc"), "abc")
	pt.Insert([]byte("abcd"), "abcd")
	pt.Insert([]byte("zzz"), "zzz")

	var got []string
	pt.Walk([]byte("abcdef"), func(v string) bool {
		got = append(got, v)
		return false
	})
	require.Equal(t, []string{"a", "abc", "abcd"}, got)
}

func TestWalkStopsOnMatch(t *testing.T) {
	pt := New[string]()
	pt.Insert([]byte("a"), "a")
	pt.Insert([]byte("ab"), "ab")

	var got []string
	pt.Walk([]byte("abc"), func(v string) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []string{"a"}, got)
}

func TestLongest(t *testing.T) {
	pt := New[string]()
	pt.Insert([]byte("RIFF"), "riff")
	pt.Insert([]byte("RIFFWAVE"), "wave")

	v, ok := pt.Longest([]byte("RIFFWAVEfmt "))
	require.True(t, ok)
	require.Equal(t, "wave", v)

	v, ok = pt.Longest([]byte("RIFFdata"))
	require.True(t, ok)
	require.Equal(t, "riff", v)

	_, ok = pt.Longest([]byte("nothing"))
	require.False(t, ok)
}

func TestWalkNoMatch(t *testing.T) {
	pt := New[string]()
	pt.Insert([]byte("abc"), "abc")

	called := false
	pt.Walk([]byte("xyz"), func(string) bool {
		called = true
		return false
	})
	require.False(t, called)
}
