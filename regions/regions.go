// Package regions holds the catalog of delivery regions known from the
// Nordpool day-ahead feed and maps each one to its IANA timezone.
package regions

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnsupportedRegion = errors.New("unsupported region")

// The system-wide reference series has no geography of its own; it follows
// the default market timezone.
const System = "SYS"

const defaultTimezone = "Europe/Oslo"

type entry struct {
	timezone string
}

// One authoritative table. Norwegian regions appear both as area codes (NO1..)
// and as the city names used by the older marketdata pages.
var catalog = map[string]entry{
	"Oslo":    {timezone: "Europe/Oslo"},
	"Bergen":  {timezone: "Europe/Oslo"},
	"Kr.sand": {timezone: "Europe/Oslo"},
	"Molde":   {timezone: "Europe/Oslo"},
	"Tr.heim": {timezone: "Europe/Oslo"},
	"Tromsø":  {timezone: "Europe/Oslo"},
	"NO1":     {timezone: "Europe/Oslo"},
	"NO2":     {timezone: "Europe/Oslo"},
	"NO3":     {timezone: "Europe/Oslo"},
	"NO4":     {timezone: "Europe/Oslo"},
	"NO5":     {timezone: "Europe/Oslo"},
	"SE1":     {timezone: "Europe/Stockholm"},
	"SE2":     {timezone: "Europe/Stockholm"},
	"SE3":     {timezone: "Europe/Stockholm"},
	"SE4":     {timezone: "Europe/Stockholm"},
	"DK1":     {timezone: "Europe/Copenhagen"},
	"DK2":     {timezone: "Europe/Copenhagen"},
	"FI":      {timezone: "Europe/Helsinki"},
	"EE":      {timezone: "Europe/Tallinn"},
	"LV":      {timezone: "Europe/Riga"},
	"LT":      {timezone: "Europe/Vilnius"},
	"AT":      {timezone: "Europe/Vienna"},
	"BE":      {timezone: "Europe/Brussels"},
	"DE-LU":   {timezone: "Europe/Luxembourg"},
	"FR":      {timezone: "Europe/Paris"},
	"NL":      {timezone: "Europe/Amsterdam"},
	System:    {timezone: defaultTimezone},
}

// Resolve returns the location a region keeps its wall clock in.
// Unknown regions fail explicitly, they never fall back to a default.
func Resolve(region string) (*time.Location, error) {
	e, ok := catalog[region]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRegion, region)
	}
	loc, err := time.LoadLocation(e.timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s for region %s: %w", e.timezone, region, err)
	}
	return loc, nil
}

// IsSupported reports whether the region exists in the catalog.
func IsSupported(region string) bool {
	_, ok := catalog[region]
	return ok
}

// Supported returns all known region codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(catalog))
	for code := range catalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
