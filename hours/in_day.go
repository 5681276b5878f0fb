package hours

import (
	"fmt"
	"time"

	"github.com/angas/elspot-go/regions"
)

// InDay returns how many local hours the calendar date spans in the region:
// 23 on the spring-forward date, 25 on the fall-back date, otherwise 24.
//
// The feed itself carries no indicator for this, so the boundary is detected
// by adding a fixed number of hours to local midnight and checking where it
// lands relative to the next midnight: a 23-hour day reaches the next
// midnight after 23 hours, a 25-hour day after 25.
func InDay(date time.Time, region string) (int, error) {
	loc, err := regions.Resolve(region)
	if err != nil {
		return 0, fmt.Errorf("cannot count hours in day: %w", err)
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	switch {
	case midnight.Add(23 * time.Hour).In(loc).Hour() == 0:
		return 23, nil
	case midnight.Add(25 * time.Hour).In(loc).Hour() == 0:
		return 25, nil
	default:
		return 24, nil
	}
}
