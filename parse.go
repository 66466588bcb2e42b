package timespan

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timespan/misc"
	"github.com/patrickmn/go-cache"
)

// spanSeparator splits the two sides of a span in its text form,
// e.g. 2017-08-01..2017-09-01.
const spanSeparator = ".."

const emptyText = "EmptyTimeSpan"

var dateCache = cache.New(10*time.Minute, time.Hour)

var dateCacheStats = misc.CacheStats{}

// DateCacheStats reports how often ParseDate was answered from its cache.
func DateCacheStats() string {
	return dateCacheStats.String()
}

func ClearDateCache() {
	dateCacheStats.Reset()
	dateCache.Flush()
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if d, ok := dateCache.Get(s); ok {
		dateCacheStats.Hit()
		return d.(Date), nil
	}
	dateCacheStats.Miss()

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Mark(errors.Wrapf(err, "can not parse date %q", s), ErrInvalidDate)
	}
	d := DateOf(t)
	dateCache.Set(s, d, cache.DefaultExpiration)
	return d, nil
}

// ValidateSpan returns ErrInvalidDate when a bound of span has a year
// FormatSpan can not write in a form ParseSpan reads back, i.e. one outside
// 0000 through 9999.
func ValidateSpan(span DateSpan) error {
	for _, b := range []Bound[Date]{span.Start(), span.End()} {
		d, ok := b.Value()
		if ok && (d.year < 0 || d.year > 9999) {
			return errors.Wrapf(ErrInvalidDate, "year of %s is outside 0000-9999", d)
		}
	}
	return nil
}

// FormatSpan renders span in the text form ParseSpan reads back: start..end
// with an unbounded side left blank, or EmptyTimeSpan.
func FormatSpan(span DateSpan) string {
	if span.IsEmpty() {
		return emptyText
	}
	var sb strings.Builder
	if d, ok := span.Start().Value(); ok {
		sb.WriteString(d.String())
	}
	sb.WriteString(spanSeparator)
	if d, ok := span.End().Value(); ok {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// ParseSpan parses the forms written by FormatSpan.  A single date is the
// span covering that day.
//
//	2017-08-01..2017-09-01   both bounds
//	..2017-06-01             unbound to the past
//	2017-01-01..             unbound to the future
//	..                       every day
//	2017-01-01               one day
//	EmptyTimeSpan            the empty interval
func ParseSpan(s string) (DateSpan, error) {
	s = strings.TrimSpace(s)
	if s == emptyText {
		return Empty[Date](), nil
	}

	left, right, found := strings.Cut(s, spanSeparator)
	if !found {
		d, err := ParseDate(s)
		if err != nil {
			return DateSpan{}, errors.Mark(errors.Wrapf(err, "can not parse span %q", s), ErrInvalidSpan)
		}
		return FromPoint(d), nil
	}

	start, err := parseBound(left)
	if err != nil {
		return DateSpan{}, errors.Mark(errors.Wrapf(err, "can not parse start of span %q", s), ErrInvalidSpan)
	}
	end, err := parseBound(right)
	if err != nil {
		return DateSpan{}, errors.Mark(errors.Wrapf(err, "can not parse end of span %q", s), ErrInvalidSpan)
	}
	return NewSpan(start, end), nil
}

func parseBound(s string) (Bound[Date], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unbounded[Date](), nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return Bound[Date]{}, err
	}
	return At(d), nil
}
