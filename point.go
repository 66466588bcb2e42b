package timespan

// Point is any totally ordered value a span can be drawn over.  Compare must
// return a negative number, zero or a positive number when the receiver sorts
// before, equal to or after the argument.  time.Time and Date both qualify.
type Point[P any] interface {
	Compare(P) int
}

// Bound is one end of a span.  It either holds a concrete point or is
// unbounded, in which case it reaches into the past (for a start) or the
// future (for an end).
//
// The zero Bound is unbounded.
type Bound[P Point[P]] struct {
	point P
	set   bool
}

// At returns a bound fixed at p.
func At[P Point[P]](p P) Bound[P] {
	return Bound[P]{point: p, set: true}
}

// Unbounded returns a bound that does not stop anywhere.
func Unbounded[P Point[P]]() Bound[P] {
	return Bound[P]{}
}

// Value returns the point and whether the bound is set.
func (b Bound[P]) Value() (P, bool) {
	return b.point, b.set
}

func (b Bound[P]) IsUnbounded() bool {
	return !b.set
}

// Equal reports whether both bounds are unbounded or both hold equal points.
func (b Bound[P]) Equal(o Bound[P]) bool {
	if b.set != o.set {
		return false
	}
	return !b.set || b.point.Compare(o.point) == 0
}
