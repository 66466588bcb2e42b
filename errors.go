package timespan

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidComparison is returned when a span is compared against a value
	// that can not be turned into a span of the same kind of point.
	ErrInvalidComparison = errors.New("invalid comparison")

	// ErrEmptyFold is returned by IntersectAll when it is given no spans.
	ErrEmptyFold = errors.New("can not intersect an empty list of spans")

	// ErrDiscontinuousUnion is returned by Union when neither side is empty;
	// the union of two spans might not be a single span.
	ErrDiscontinuousUnion = errors.New("union of two spans is not supported")

	ErrInvalidStep = errors.New("invalid step")
	ErrUnboundSpan = errors.New("span is unbound")
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidSpan = errors.New("invalid span")
)
