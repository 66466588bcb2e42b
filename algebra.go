package timespan

// Intersect returns the span of points contained in both i and o, or the
// empty interval when they do not overlap.
//
// Missing bounds are widened to -∞/+∞ for the computation and narrowed back
// afterwards, so the intersection of two spans unbound on a side stays
// unbound on that side.
func (i Interval[P]) Intersect(o Interval[P]) Interval[P] {
	if i.empty || o.empty {
		return emptyIntersect[P]()
	}
	lo := maxExtended(lower(i.start), lower(o.start))
	hi := minExtended(upper(i.end), upper(o.end))
	if compareExtended(lo, hi) > 0 {
		return Empty[P]()
	}
	return NewSpan(lo.bound(), hi.bound())
}

// Intersection returns i ∩ others[0] ∩ others[1] ∩ ...
func (i Interval[P]) Intersection(others ...Interval[P]) Interval[P] {
	res := i
	for _, o := range others {
		res = res.Intersect(o)
	}
	return res
}

// IntersectAll folds Intersect over spans, starting from the first one.
// There is no identity to fall back to, so an empty list is ErrEmptyFold.
func IntersectAll[P Point[P]](spans ...Interval[P]) (Interval[P], error) {
	if len(spans) == 0 {
		return Interval[P]{}, ErrEmptyFold
	}
	return spans[0].Intersection(spans[1:]...), nil
}

// Union returns o when i is empty and i when o is empty.  The union of two
// non empty spans may have a hole in it and is refused with
// ErrDiscontinuousUnion.
func (i Interval[P]) Union(o Interval[P]) (Interval[P], error) {
	switch {
	case i.empty:
		return emptyUnion(o), nil
	case o.empty:
		return emptyUnion(i), nil
	}
	return Interval[P]{}, ErrDiscontinuousUnion
}

// Overlaps reports whether i and o share at least one point.
func (i Interval[P]) Overlaps(o Interval[P]) bool {
	return !i.Intersect(o).empty
}

// IsDisjoint reports whether i and o share no point.
func (i Interval[P]) IsDisjoint(o Interval[P]) bool {
	if i.empty {
		return emptyIsDisjoint(o)
	}
	return !i.Overlaps(o)
}

// IsSubset reports whether every point of i is in o, i.e. i ∩ o == i.
func (i Interval[P]) IsSubset(o Interval[P]) bool {
	if i.empty {
		return emptyIsSubset(o)
	}
	return i.Intersect(o).Equal(i)
}

// IsSuperset reports whether every point of o is in i, i.e. i ∩ o == o.
func (i Interval[P]) IsSuperset(o Interval[P]) bool {
	if i.empty {
		return emptyIsSuperset(o)
	}
	return i.Intersect(o).Equal(o)
}

// Covers is IsSuperset.
func (i Interval[P]) Covers(o Interval[P]) bool {
	return i.IsSuperset(o)
}

func (i Interval[P]) IsProperSubset(o Interval[P]) bool {
	if i.empty {
		return emptyIsProperSubset(o)
	}
	return !i.Equal(o) && i.IsSubset(o)
}

func (i Interval[P]) IsProperSuperset(o Interval[P]) bool {
	if i.empty {
		return emptyIsProperSuperset(o)
	}
	return !i.Equal(o) && i.IsSuperset(o)
}
