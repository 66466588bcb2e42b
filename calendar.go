package timespan

// MonthFirst returns the first day of ref's month.
func MonthFirst(ref Date) Date {
	return NewDate(ref.year, ref.month, 1)
}

// MonthLast returns the last day of ref's month.
func MonthLast(ref Date) Date {
	return NewDate(ref.year, ref.month+1, 1).Prev()
}

// NextMonth returns the first day of the month after ref's, or its last day
// when lastDay is set.
//
//	NextMonth(NewDate(2017, 1, 23), false) == 2017-02-01
//	NextMonth(NewDate(2017, 1, 23), true)  == 2017-02-28
func NextMonth(ref Date, lastDay bool) Date {
	first := MonthLast(ref).Next()
	if lastDay {
		return MonthLast(first)
	}
	return first
}

// IsFullMonth reports whether start..end is exactly one whole month.
func IsFullMonth(start, end Date) bool {
	return start.day == 1 &&
		start.month == end.month &&
		start.year == end.year &&
		end.Next().month != end.month
}

// MonthSpan returns the span covering ref's whole month.
func MonthSpan(ref Date) DateSpan {
	return Between(MonthFirst(ref), MonthLast(ref))
}
