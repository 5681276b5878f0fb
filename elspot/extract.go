package elspot

import (
	"fmt"
	"time"

	"github.com/angas/elspot-go/decimal"
	"github.com/angas/elspot-go/hours"
	"github.com/angas/elspot-go/regions"
	"github.com/angas/elspot-go/units"
)

// PricesForRegion extracts the full ordered day of prices for one region,
// starting at local midnight. A region that exists in the feed but carries no
// values yields an empty slice; any other count that disagrees with the
// DST-derived hour count for the date is ErrRowCountMismatch.
func (d *Document) PricesForRegion(region string) ([]Price, error) {
	loc, err := regions.Resolve(region)
	if err != nil {
		return nil, err
	}
	idx, err := d.columnIndex(region)
	if err != nil {
		return nil, err
	}
	currency, power, err := units.ParseUnitString(d.UnitString())
	if err != nil {
		return nil, err
	}

	// Document order matters here: the two rows of a fall-back day share a
	// local hour label and are told apart only by position.
	var rows []Row
	for _, row := range d.Data.Rows {
		if row.IsExtraRow {
			continue
		}
		if idx >= len(row.Columns) {
			return nil, fmt.Errorf("%w: column %d missing from row", ErrRegionNotFound, idx)
		}
		if row.Columns[idx].Value == noData {
			// Regions absent from this dataset are all dashes; on a
			// spring-forward day the skipped hour is a single dash row.
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return []Price{}, nil
	}

	expected, err := hours.InDay(d.Date(), region)
	if err != nil {
		return nil, err
	}
	if len(rows) != expected {
		return nil, fmt.Errorf("%w: got %d rows, expected %d for %s in %s",
			ErrRowCountMismatch, len(rows), expected, d.Date().Format("2006-01-02"), region)
	}

	mtu := units.MtuSixty // this feed is always hourly

	// The first row starts at local midnight; every following interval is one
	// market time unit later in absolute time, which is what carries the
	// sequence correctly across a DST boundary.
	start := d.Data.Rows[0].StartTime.In(loc)
	end := d.Data.Rows[0].EndTime.In(loc)

	prices := make([]Price, 0, len(rows))
	for _, row := range rows {
		// The system-wide series has no local calendar date of its own, every
		// real region must stay inside the declared delivery date.
		if region != regions.System && !sameDate(d.Date(), start) {
			return nil, fmt.Errorf("%w: interval start %s drifted off %s for %s",
				ErrDateMismatch, start.Format(time.RFC3339), d.Date().Format("2006-01-02"), region)
		}

		value := normalizeValue(row.Columns[idx].Value)
		if !decimal.Valid(value) {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidDecimal, row.Columns[idx].Value, region)
		}

		prices = append(prices, Price{
			Region:   region,
			From:     start.UTC(),
			To:       end.UTC(),
			Date:     d.Date(),
			Value:    value,
			Currency: currency,
			Power:    power,
			Mtu:      mtu,
		})

		start = start.Add(mtu.Duration())
		end = end.Add(mtu.Duration())
	}

	return prices, nil
}

// PricesAllRegions extracts every region in the feed. Regions without values
// contribute an empty slice rather than an error.
func (d *Document) PricesAllRegions() ([][]Price, error) {
	regionNames := d.Regions()
	all := make([][]Price, 0, len(regionNames))
	for _, region := range regionNames {
		prices, err := d.PricesForRegion(region)
		if err != nil {
			return nil, fmt.Errorf("failed to extract prices for %s: %w", region, err)
		}
		all = append(all, prices)
	}
	return all, nil
}

// PriceAt returns the price covering a single UTC instant in the given
// region. On a fall-back day two rows carry the requested local hour; adding
// one market time unit disambiguates: if the clock stays inside the same
// local-hour bucket the instant lies in the first occurrence (earlier
// offset), if it advances to the next bucket it lies in the second.
func (d *Document) PriceAt(region string, at time.Time) (Price, error) {
	loc, err := regions.Resolve(region)
	if err != nil {
		return Price{}, err
	}
	idx, err := d.columnIndex(region)
	if err != nil {
		return Price{}, err
	}
	currency, power, err := units.ParseUnitString(d.UnitString())
	if err != nil {
		return Price{}, err
	}

	local := at.In(loc)
	if !sameDate(d.Date(), local) {
		return Price{}, fmt.Errorf("%w: %s is not on %s in %s",
			ErrDateMismatch, local.Format(time.RFC3339), d.Date().Format("2006-01-02"), region)
	}

	var candidates []Row
	for _, row := range d.Data.Rows {
		if !row.IsExtraRow && row.StartTime.Hour() == local.Hour() {
			candidates = append(candidates, row)
		}
	}

	mtu := units.MtuSixty

	var row Row
	switch len(candidates) {
	case 0:
		return Price{}, fmt.Errorf("%w: local hour %d on %s in %s",
			ErrHourNotFound, local.Hour(), d.Date().Format("2006-01-02"), region)
	case 1:
		row = candidates[0]
	case 2:
		// Only possible on the fall-back date.
		next := local.Add(mtu.Duration())
		switch next.Hour() {
		case local.Hour():
			row = candidates[0]
		case (local.Hour() + 1) % 24:
			row = candidates[1]
		default:
			return Price{}, fmt.Errorf("%w: adding one interval to %s landed on hour %d",
				ErrAmbiguousHour, local.Format(time.RFC3339), next.Hour())
		}
	default:
		return Price{}, fmt.Errorf("%w: %d rows share local hour %d",
			ErrAmbiguousHour, len(candidates), local.Hour())
	}

	if idx >= len(row.Columns) {
		return Price{}, fmt.Errorf("%w: column %d missing from row", ErrRegionNotFound, idx)
	}
	value := normalizeValue(row.Columns[idx].Value)
	if !decimal.Valid(value) {
		return Price{}, fmt.Errorf("%w: %q for %s", ErrInvalidDecimal, row.Columns[idx].Value, region)
	}

	// Truncating the instant gives distinct UTC bounds for the two
	// occurrences of a repeated hour, which the naive row timestamps cannot.
	from := at.Truncate(mtu.Duration())

	return Price{
		Region:   region,
		From:     from,
		To:       from.Add(mtu.Duration()),
		Date:     d.Date(),
		Value:    value,
		Currency: currency,
		Power:    power,
		Mtu:      mtu,
	}, nil
}
