package timespan

import (
	"math/rand"
	"testing"
)

func mustDate(t testing.TB, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("can not parse %q: %v", s, err)
	}
	return d
}

func mustSpan(t testing.TB, s string) DateSpan {
	t.Helper()
	span, err := ParseSpan(s)
	if err != nil {
		t.Fatalf("can not parse %q: %v", s, err)
	}
	return span
}

var epoch = NewDate(2017, 1, 1)

// randomDate picks a day of 2017 so that generated spans collide often.
func randomDate(r *rand.Rand) Date {
	return epoch.AddDays(r.Intn(365))
}

func randomBound(r *rand.Rand) Bound[Date] {
	if r.Intn(5) == 0 {
		return Unbounded[Date]()
	}
	return At(randomDate(r))
}

// randomSpan returns a valid span, possibly unbound on either side.
func randomSpan(r *rand.Rand) DateSpan {
	start, end := randomBound(r), randomBound(r)
	s, sok := start.Value()
	e, eok := end.Value()
	if sok && eok && s.After(e) {
		start, end = end, start
	}
	return NewSpan(start, end)
}

// randomInterval is randomSpan that now and then returns the empty interval.
func randomInterval(r *rand.Rand) DateSpan {
	if r.Intn(10) == 0 {
		return Empty[Date]()
	}
	return randomSpan(r)
}
