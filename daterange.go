package timespan

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// DateRange yields the dates from start up to, but not including, stop,
// stepping by step days.  A negative step walks backwards and stops once it
// reaches stop from above.  When stop is unbounded the sequence never ends.
func DateRange(start Date, stop Bound[Date], step int) (iter.Seq[Date], error) {
	if step == 0 {
		return nil, errors.Wrap(ErrInvalidStep, "step must not be zero")
	}
	return func(yield func(Date) bool) {
		end, bounded := stop.Value()
		for cur := start; ; cur = cur.AddDays(step) {
			if bounded {
				if step > 0 && !cur.Before(end) {
					return
				}
				if step < 0 && !cur.After(end) {
					return
				}
			}
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// DateRangeDays is DateRange with stop given as a number of days from start,
// negative days counting back.  Walking back needs a negative step.
func DateRangeDays(start Date, days, step int) (iter.Seq[Date], error) {
	return DateRange(start, At(start.AddDays(days)), step)
}

// MonthToDate yields the days from the first of stop's month up to, but not
// including, stop.
func MonthToDate(stop Date) iter.Seq[Date] {
	seq, _ := DateRange(MonthFirst(stop), At(stop), 1)
	return seq
}

// Days yields every date of a bound span, in order.  The empty interval and
// invalid spans yield nothing; unbound spans are refused.
func Days(span DateSpan) (iter.Seq[Date], error) {
	if span.IsEmpty() {
		return func(func(Date) bool) {}, nil
	}
	if span.IsUnbound() {
		return nil, errors.Wrapf(ErrUnboundSpan, "can not list the days of %s", span)
	}
	start, _ := span.Start().Value()
	end, _ := span.End().Value()
	return DateRange(start, At(end.Next()), 1)
}
