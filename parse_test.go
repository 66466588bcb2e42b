package timespan

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2017-08-01 ")
	require.NoError(t, err)
	require.Equal(t, NewDate(2017, time.August, 1), d)

	for _, bad := range []string{"", "2017-02-30", "2017/08/01", "yesterday", "2017-8-1"} {
		_, err := ParseDate(bad)
		require.True(t, errors.Is(err, ErrInvalidDate), "input %q: %v", bad, err)
	}
}

func TestParseDateCache(t *testing.T) {
	ClearDateCache()
	_, err := ParseDate("2017-08-01")
	require.NoError(t, err)
	_, err = ParseDate("2017-08-01")
	require.NoError(t, err)
	require.Equal(t, "CacheStats(Hits: 1, Misses: 1)", DateCacheStats())

	// Failures are not cached.
	_, err = ParseDate("nope")
	require.Error(t, err)
	_, err = ParseDate("nope")
	require.Error(t, err)
	require.Equal(t, "CacheStats(Hits: 1, Misses: 3)", DateCacheStats())
}

func TestParseSpan(t *testing.T) {
	d1, d2 := NewDate(2017, time.August, 1), NewDate(2017, time.September, 1)
	tests := []struct {
		in   string
		want DateSpan
	}{
		{"2017-08-01..2017-09-01", Between(d1, d2)},
		{" 2017-08-01 .. 2017-09-01 ", Between(d1, d2)},
		{"..2017-09-01", Until(d2)},
		{"2017-08-01..", Since(d1)},
		{"..", Always[Date]()},
		{"2017-08-01", FromPoint(d1)},
		{"EmptyTimeSpan", Empty[Date]()},
		{"2017-09-01..2017-08-01", Between(d2, d1)},
	}
	for _, tt := range tests {
		got, err := ParseSpan(tt.in)
		require.NoError(t, err, tt.in)
		require.True(t, got.Equal(tt.want), "%q: got %s want %s", tt.in, got, tt.want)
	}

	for _, bad := range []string{"", "2017-08-01..soon", "x..2017-08-01", "2017-08-01...2017-09-01"} {
		_, err := ParseSpan(bad)
		require.True(t, errors.Is(err, ErrInvalidSpan), "input %q: %v", bad, err)
	}
}

func TestFormatSpanRoundTrip(t *testing.T) {
	for _, in := range []string{"2017-08-01..2017-09-01", "..2017-09-01", "2017-08-01..", "..", "EmptyTimeSpan"} {
		span := mustSpan(t, in)
		require.Equal(t, in, FormatSpan(span))
	}
	require.Equal(t, "2017-08-01..2017-08-01", FormatSpan(mustSpan(t, "2017-08-01")))
}

func TestValidateSpan(t *testing.T) {
	for _, ok := range []DateSpan{
		Between(NewDate(0, time.January, 1), NewDate(9999, time.December, 31)),
		Always[Date](),
		Empty[Date](),
	} {
		require.NoError(t, ValidateSpan(ok))
		back, err := ParseSpan(FormatSpan(ok))
		require.NoError(t, err)
		require.True(t, back.Equal(ok), "%s", ok)
	}

	for _, bad := range []DateSpan{
		Since(NewDate(10000, time.January, 1)),
		Until(NewDate(-5, time.January, 1)),
		Between(NewDate(2017, time.January, 1), NewDate(12017, time.January, 1)),
	} {
		require.ErrorIs(t, ValidateSpan(bad), ErrInvalidDate, "%s", bad)
	}
}
