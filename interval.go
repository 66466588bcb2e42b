package timespan

import "fmt"

// Interval is a closed span of points, or the empty interval.
//
// A span holds every point between its start and its end, inclusive.  Either
// bound may be unbounded; a span unbounded on both sides holds every point.
// A span whose start comes after its end can be built and used, it simply
// contains nothing (see IsValid).
//
// The empty interval is the intersection of two disjoint spans.  It holds no
// points and is a subset of every interval.
//
// Intervals are immutable values and safe to share between goroutines.  The
// zero Interval is the span that contains everything.
type Interval[P Point[P]] struct {
	start Bound[P]
	end   Bound[P]
	empty bool
}

// NewSpan returns the span from start to end.  No validation is done.
func NewSpan[P Point[P]](start, end Bound[P]) Interval[P] {
	return Interval[P]{start: start, end: end}
}

// Between returns the span from start to end, both bounded.
func Between[P Point[P]](start, end P) Interval[P] {
	return NewSpan(At(start), At(end))
}

// Since returns the span from start into the unbounded future.
func Since[P Point[P]](start P) Interval[P] {
	return NewSpan(At(start), Unbounded[P]())
}

// Until returns the span from the unbounded past up to end.
func Until[P Point[P]](end P) Interval[P] {
	return NewSpan(Unbounded[P](), At(end))
}

// Always returns the span that contains every point.
func Always[P Point[P]]() Interval[P] {
	return Interval[P]{}
}

// FromPoint returns the span that covers exactly p.
func FromPoint[P Point[P]](p P) Interval[P] {
	return Between(p, p)
}

// Empty returns the empty interval.
func Empty[P Point[P]]() Interval[P] {
	return Interval[P]{empty: true}
}

func (i Interval[P]) IsEmpty() bool {
	return i.empty
}

// Start returns the lower bound.  The empty interval has no bounds and
// reports both as unbounded; check IsEmpty first.
func (i Interval[P]) Start() Bound[P] {
	return i.start
}

// End returns the upper bound.
func (i Interval[P]) End() Bound[P] {
	return i.end
}

// IsPastUnbound reports whether the span has no start.
func (i Interval[P]) IsPastUnbound() bool {
	return !i.empty && !i.start.set
}

// IsFutureUnbound reports whether the span has no end.
func (i Interval[P]) IsFutureUnbound() bool {
	return !i.empty && !i.end.set
}

// IsUnbound reports whether the span is unbound to the past, the future, or
// both.
func (i Interval[P]) IsUnbound() bool {
	return i.IsPastUnbound() || i.IsFutureUnbound()
}

// IsBound is the negation of IsUnbound.
func (i Interval[P]) IsBound() bool {
	return !i.IsUnbound()
}

// IsValid reports whether a bound span starts no later than it ends.
// Unbound spans and the empty interval are always valid.
func (i Interval[P]) IsValid() bool {
	if i.empty || i.IsUnbound() {
		return true
	}
	return i.start.point.Compare(i.end.point) <= 0
}

// Contains reports whether p lies within the span.
func (i Interval[P]) Contains(p P) bool {
	if i.empty {
		return false
	}
	if i.start.set && i.start.point.Compare(p) > 0 {
		return false
	}
	if i.end.set && p.Compare(i.end.point) > 0 {
		return false
	}
	return true
}

// Equal reports structural equality: two spans are equal when their bounds
// are, and the empty interval only equals itself.
func (i Interval[P]) Equal(o Interval[P]) bool {
	if i.empty || o.empty {
		return i.empty == o.empty
	}
	return i.start.Equal(o.start) && i.end.Equal(o.end)
}

// String renders the interval as TimeSpan(start, end), writing None for an
// unbounded side, or as EmptyTimeSpan.
func (i Interval[P]) String() string {
	if i.empty {
		return "EmptyTimeSpan"
	}
	return fmt.Sprintf("TimeSpan(%s, %s)", formatBound(i.start), formatBound(i.end))
}

func formatBound[P Point[P]](b Bound[P]) string {
	if !b.set {
		return "None"
	}
	return fmt.Sprint(b.point)
}
