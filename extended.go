package timespan

import "cmp"

type extKind int8

const (
	negInf extKind = iota - 1
	finite
	posInf
)

// extended is a point of the domain widened with -∞ and +∞.  It only lives
// for the duration of a computation; spans never store one.
type extended[P Point[P]] struct {
	kind  extKind
	point P
}

// lower maps a start bound onto the extended domain, unbounded being -∞.
func lower[P Point[P]](b Bound[P]) extended[P] {
	if !b.set {
		return extended[P]{kind: negInf}
	}
	return extended[P]{kind: finite, point: b.point}
}

// upper maps an end bound onto the extended domain, unbounded being +∞.
func upper[P Point[P]](b Bound[P]) extended[P] {
	if !b.set {
		return extended[P]{kind: posInf}
	}
	return extended[P]{kind: finite, point: b.point}
}

// bound turns the value back into a Bound, both infinities becoming
// unbounded.
func (e extended[P]) bound() Bound[P] {
	if e.kind != finite {
		return Unbounded[P]()
	}
	return At(e.point)
}

// compareExtended is a total three way comparison.  -∞ sorts before every
// point and +∞ after every point; each infinity only equals itself.
func compareExtended[P Point[P]](a, b extended[P]) int {
	if a.kind != finite || b.kind != finite {
		return cmp.Compare(a.kind, b.kind)
	}
	return cmp.Compare(a.point.Compare(b.point), 0)
}

func maxExtended[P Point[P]](a, b extended[P]) extended[P] {
	if compareExtended(a, b) >= 0 {
		return a
	}
	return b
}

func minExtended[P Point[P]](a, b extended[P]) extended[P] {
	if compareExtended(a, b) <= 0 {
		return a
	}
	return b
}
