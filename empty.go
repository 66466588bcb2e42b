package timespan

// The empty interval carries no bounds, so the span formulas do not apply to
// it.  These are its laws, spelled out.

// emptyIntersect: empty ∩ x = empty.
func emptyIntersect[P Point[P]]() Interval[P] {
	return Empty[P]()
}

// emptyUnion: empty ∪ x = x.
func emptyUnion[P Point[P]](x Interval[P]) Interval[P] {
	return x
}

// emptyIsSubset: the empty set is a subset of every set.
func emptyIsSubset[P Point[P]](Interval[P]) bool {
	return true
}

// emptyIsSuperset: the empty set is only a superset of itself.
func emptyIsSuperset[P Point[P]](x Interval[P]) bool {
	return x.empty
}

// emptyIsProperSubset: the empty set is a proper subset of every set but
// itself.
func emptyIsProperSubset[P Point[P]](x Interval[P]) bool {
	return !x.empty
}

// emptyIsProperSuperset: the empty set is a proper superset of nothing.
func emptyIsProperSuperset[P Point[P]](Interval[P]) bool {
	return false
}

// emptyIsDisjoint: the empty set shares no point with any set, itself
// included.
func emptyIsDisjoint[P Point[P]](Interval[P]) bool {
	return true
}
