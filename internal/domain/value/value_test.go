package value

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInteger covers prefix parsing, signs, garbage and saturation.
func TestInteger(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"1024":     1024,
		"  42":     42,
		"+7":       7,
		"-15":      -15,
		"60s":      60,
		"abc":      0,
		"":         0,
		"-":        0,
		"1 2":      1,
		"\t\n3":    3,
		"00017":    17,
		"12.5":     12,
		"0x10":     0,
		" - 4":     0,
		"99999999": 99999999,
	}
	for in, want := range cases {
		require.Equal(t, want, Integer(in), "input %q", in)
	}

	require.Equal(t, int(^uint(0)>>1), Integer("99999999999999999999999"))
	require.Equal(t, -int(^uint(0)>>1)-1, Integer("-99999999999999999999999"))
	require.Equal(t, -int(^uint(0)>>1)-1, Integer(strconv.Itoa(-int(^uint(0)>>1)-1)))
}

// TestBounded checks that only over-long text is cut, to exactly the limit.
func TestBounded(t *testing.T) {
	t.Parallel()

	got, cut := Bounded("abcdef", 4)
	require.True(t, cut)
	require.Equal(t, "abcd", got)

	got, cut = Bounded("abcd", 4)
	require.False(t, cut)
	require.Equal(t, "abcd", got)

	got, cut = Bounded("abcdef", 0)
	require.False(t, cut)
	require.Equal(t, "abcdef", got)
}
