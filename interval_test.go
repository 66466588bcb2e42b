package timespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIntersectScenarios(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"overlapping", "2017-08-01..2017-09-01", "2017-08-15..2017-09-15", "2017-08-15..2017-09-01"},
		{"disjoint", "2017-01-01..2017-01-31", "2017-02-01..2017-02-28", "EmptyTimeSpan"},
		{"half open sides", "..2017-06-01", "2017-01-01..", "2017-01-01..2017-06-01"},
		{"universal", "..", "..", ".."},
		{"touching", "2017-01-01..2017-01-31", "2017-01-31..2017-02-28", "2017-01-31"},
		{"nested", "2017-01-01..2017-12-31", "2017-05-01..2017-05-31", "2017-05-01..2017-05-31"},
		{"both future unbound", "2017-03-01..", "2017-01-01..", "2017-03-01.."},
		{"both past unbound", "..2017-03-01", "..2017-01-01", "..2017-01-01"},
		{"with empty", "2017-03-01..", "EmptyTimeSpan", "EmptyTimeSpan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, want := mustSpan(t, tt.a), mustSpan(t, tt.b), mustSpan(t, tt.want)
			got := a.Intersect(b)
			require.True(t, got.Equal(want), "%s & %s: got %s, want %s", a, b, got, want)
		})
	}
}

func TestUniversalStaysUnbound(t *testing.T) {
	got := Always[Date]().Intersect(Always[Date]())
	require.False(t, got.IsEmpty())
	require.True(t, got.IsPastUnbound())
	require.True(t, got.IsFutureUnbound())
	require.True(t, got.Start().IsUnbounded())
	require.True(t, got.End().IsUnbounded())
}

func TestIntrospection(t *testing.T) {
	d1, d2 := mustDate(t, "2017-01-01"), mustDate(t, "2017-02-01")

	bound := Between(d1, d2)
	require.True(t, bound.IsBound())
	require.False(t, bound.IsUnbound())
	require.True(t, bound.IsValid())

	past := Until(d2)
	require.True(t, past.IsPastUnbound())
	require.False(t, past.IsFutureUnbound())
	require.True(t, past.IsUnbound())
	require.False(t, past.IsBound())

	future := Since(d1)
	require.False(t, future.IsPastUnbound())
	require.True(t, future.IsFutureUnbound())
	require.True(t, future.IsUnbound())

	require.True(t, Always[Date]().IsUnbound())
	require.True(t, Always[Date]().IsValid())

	invalid := Between(d2, d1)
	require.True(t, invalid.IsBound())
	require.False(t, invalid.IsValid())
}

func TestInvalidSpanIsUsable(t *testing.T) {
	d1, d2 := mustDate(t, "2017-01-01"), mustDate(t, "2017-02-01")
	invalid := Between(d2, d1)

	require.False(t, invalid.Contains(mustDate(t, "2017-01-15")))
	require.False(t, invalid.Contains(d1))
	require.True(t, invalid.Intersect(Always[Date]()).IsEmpty())
	require.False(t, invalid.Overlaps(Between(d1, d2)))
	require.Equal(t, "TimeSpan(2017-02-01, 2017-01-01)", invalid.String())
}

func TestContains(t *testing.T) {
	span := mustSpan(t, "2017-08-01..2017-09-01")
	require.True(t, span.Contains(mustDate(t, "2017-08-01")))
	require.True(t, span.Contains(mustDate(t, "2017-08-20")))
	require.True(t, span.Contains(mustDate(t, "2017-09-01")))
	require.False(t, span.Contains(mustDate(t, "2017-07-31")))
	require.False(t, span.Contains(mustDate(t, "2017-09-02")))

	require.True(t, mustSpan(t, "..2017-09-01").Contains(NewDate(1, time.January, 1)))
	require.True(t, mustSpan(t, "2017-09-01..").Contains(NewDate(9999, time.December, 31)))
	require.True(t, Always[Date]().Contains(Today()))
}

func TestFromPoint(t *testing.T) {
	p := mustDate(t, "2017-03-04")
	span := FromPoint(p)
	require.True(t, span.Contains(p))
	require.False(t, span.Contains(p.Next()))
	require.False(t, span.Contains(p.Prev()))
	require.True(t, span.IsBound())
	require.True(t, span.Equal(Between(p, p)))
}

func TestEquality(t *testing.T) {
	a := mustSpan(t, "2017-01-01..2017-02-01")
	require.True(t, a.Equal(mustSpan(t, "2017-01-01..2017-02-01")))
	require.False(t, a.Equal(mustSpan(t, "2017-01-01..")))
	require.False(t, a.Equal(mustSpan(t, "2017-01-02..2017-02-01")))
	require.False(t, a.Equal(Empty[Date]()))
	require.False(t, Empty[Date]().Equal(a))
	require.True(t, Empty[Date]().Equal(Empty[Date]()))
	require.True(t, Always[Date]().Equal(DateSpan{}))

	// Dates are comparable, so spans of dates are too.
	require.True(t, a == mustSpan(t, "2017-01-01..2017-02-01"))
}

func TestString(t *testing.T) {
	require.Equal(t, "TimeSpan(2017-08-01, 2017-09-01)", mustSpan(t, "2017-08-01..2017-09-01").String())
	require.Equal(t, "TimeSpan(None, 2017-09-01)", mustSpan(t, "..2017-09-01").String())
	require.Equal(t, "TimeSpan(None, None)", Always[Date]().String())
	require.Equal(t, "EmptyTimeSpan", Empty[Date]().String())
}

func TestSubsetScenarios(t *testing.T) {
	may := mustSpan(t, "2017-05-01..2017-05-31")
	year := mustSpan(t, "2017-01-01..2017-12-31")
	require.True(t, may.IsSubset(year))
	require.True(t, may.IsProperSubset(year))
	require.True(t, year.IsSuperset(may))
	require.True(t, year.Covers(may))
	require.True(t, year.IsProperSuperset(may))
	require.False(t, year.IsSubset(may))

	require.True(t, may.IsSubset(may))
	require.False(t, may.IsProperSubset(may))
	require.False(t, may.IsProperSuperset(may))

	short := mustSpan(t, "2017-01-01..2017-01-02")
	require.True(t, Empty[Date]().IsSubset(short))
	require.False(t, short.IsSubset(Empty[Date]()))

	require.True(t, year.IsSubset(Always[Date]()))
	require.True(t, mustSpan(t, "2017-01-01..").IsSubset(mustSpan(t, "2016-01-01..")))
	require.False(t, mustSpan(t, "2017-01-01..").IsSubset(year))
}

func TestIntersectAll(t *testing.T) {
	_, err := IntersectAll[Date]()
	require.ErrorIs(t, err, ErrEmptyFold)

	got, err := IntersectAll(mustSpan(t, "2017-01-01.."))
	require.NoError(t, err)
	require.True(t, got.Equal(mustSpan(t, "2017-01-01..")))

	got, err = IntersectAll(
		mustSpan(t, "2017-01-01.."),
		mustSpan(t, "..2017-06-30"),
		mustSpan(t, "2017-03-01..2017-12-31"),
	)
	require.NoError(t, err)
	require.True(t, got.Equal(mustSpan(t, "2017-03-01..2017-06-30")), "got %s", got)

	got, err = IntersectAll(
		mustSpan(t, "2017-01-01..2017-01-31"),
		Empty[Date](),
		mustSpan(t, "2017-01-15.."),
	)
	require.NoError(t, err)
	require.True(t, got.IsEmpty())

	got = mustSpan(t, "2017-01-01..2017-01-31").Intersection()
	require.True(t, got.Equal(mustSpan(t, "2017-01-01..2017-01-31")))
}

func TestTimePoints(t *testing.T) {
	base := time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)
	morning := Between(base.Add(-3*time.Hour), base)
	lunch := Between(base.Add(-time.Hour), base.Add(time.Hour))

	got := morning.Intersect(lunch)
	require.True(t, got.Equal(Between(base.Add(-time.Hour), base)))
	require.True(t, got.Contains(base))
	require.False(t, got.Contains(base.Add(time.Second)))
	require.True(t, FromPoint(base).IsSubset(Since(base)))
}
