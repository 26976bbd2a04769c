package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"L": LevelL, "m": LevelM, " q ": LevelQ, "H": LevelH}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, strings.ToUpper(strings.TrimSpace(in)), got.String())
	}

	_, err := ParseLevel("X")
	assert.Error(t, err)
}

func TestNewBackend(t *testing.T) {
	for _, name := range []string{"", "yeqown", "SKIP2"} {
		enc, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc)
	}
	_, err := New("zxing")
	assert.Error(t, err)
}

func TestEncodeFinderPatterns(t *testing.T) {
	for _, enc := range []Encoder{Yeqown{}, Skip2{}} {
		for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
			g, err := enc.Encode("https://example.com", level, 4)
			require.NoError(t, err)

			n := g.Size()
			require.GreaterOrEqual(t, n, 21)
			assert.Zero(t, (n-17)%4, "symbol size must be 17+4v, got %d", n)
			assert.Equal(t, 4, g.QuietZone)
			assert.Equal(t, n+8, g.Span())

			// Each finder pattern has a dark outer ring, a light ring and a dark core.
			for _, origin := range [][2]int{{0, 0}, {n - 7, 0}, {0, n - 7}} {
				ox, oy := origin[0], origin[1]
				assert.True(t, g.Dark(ox, oy), "%T level %s outer ring at %v", enc, level, origin)
				assert.False(t, g.Dark(ox+1, oy+1), "%T level %s light ring at %v", enc, level, origin)
				assert.True(t, g.Dark(ox+3, oy+3), "%T level %s core at %v", enc, level, origin)
			}
		}
	}
}

func TestEncodeTooLong(t *testing.T) {
	text := strings.Repeat("a", 3000)
	for _, enc := range []Encoder{Yeqown{}, Skip2{}} {
		_, err := enc.Encode(text, LevelH, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEncoding)
	}
}

func TestGridIsImmutable(t *testing.T) {
	src := [][]bool{{true, false}, {false, true}}
	g := NewGrid(src, -1)
	src[0][0] = false

	assert.True(t, g.Dark(0, 0))
	assert.Zero(t, g.QuietZone)
	assert.False(t, g.Dark(-1, 0))
	assert.False(t, g.Dark(5, 5))
}

func TestTrimQuietZone(t *testing.T) {
	bm := [][]bool{
		{false, false, false, false},
		{false, true, false, false},
		{false, false, true, false},
		{false, false, false, false},
	}
	out := trimQuietZone(bm)
	require.Len(t, out, 2)
	assert.Equal(t, []bool{true, false}, out[0])
	assert.Equal(t, []bool{false, true}, out[1])

	assert.Nil(t, trimQuietZone([][]bool{{false}}))
}
