package elspot

import "errors"

var (
	// ErrInvalidPageID means the payload is not the hourly day-ahead page.
	ErrInvalidPageID = errors.New("invalid page id")

	// ErrRegionNotFound means the feed has no column for the requested region.
	ErrRegionNotFound = errors.New("region not found in feed")

	// ErrHourNotFound means no row matches the requested local hour.
	ErrHourNotFound = errors.New("no row for requested hour")

	// ErrAmbiguousHour means the candidate rows for a repeated local hour
	// could not be told apart, or more than two rows claimed the same hour.
	ErrAmbiguousHour = errors.New("ambiguous hour could not be resolved")

	// ErrDateMismatch means the requested or produced time falls outside the
	// feed's declared delivery date.
	ErrDateMismatch = errors.New("date outside feed delivery date")

	// ErrRowCountMismatch means extraction produced a number of entries
	// inconsistent with the DST-derived hour count for the day.
	ErrRowCountMismatch = errors.New("row count does not match hours in day")

	// ErrInvalidDecimal means a price value is not a well-formed decimal.
	ErrInvalidDecimal = errors.New("invalid decimal price value")
)
