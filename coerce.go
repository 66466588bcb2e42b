package timespan

import (
	"time"

	"github.com/cockroachdb/errors"
)

// AsDateSpan turns v into a span of dates.  It accepts a DateSpan, a Date or
// time.Time (the span covering that day), a string in any form ParseSpan
// reads, and nil (the span of every day).  Any other type can not be
// compared with a span of dates and yields ErrInvalidComparison.
func AsDateSpan(v any) (DateSpan, error) {
	switch v := v.(type) {
	case nil:
		return Always[Date](), nil
	case DateSpan:
		return v, nil
	case *DateSpan:
		if v == nil {
			return Always[Date](), nil
		}
		return *v, nil
	case Date:
		return FromPoint(v), nil
	case time.Time:
		return FromPoint(DateOf(v)), nil
	case string:
		return ParseSpan(v)
	default:
		return DateSpan{}, errors.Wrapf(ErrInvalidComparison, "can not compare a span of dates with %T", v)
	}
}

// IntersectValues coerces a and b with AsDateSpan and intersects them.
func IntersectValues(a, b any) (DateSpan, error) {
	x, err := AsDateSpan(a)
	if err != nil {
		return DateSpan{}, err
	}
	y, err := AsDateSpan(b)
	if err != nil {
		return DateSpan{}, err
	}
	return x.Intersect(y), nil
}
