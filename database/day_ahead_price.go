package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/angas/elspot-go/elspot"
	"github.com/angas/elspot-go/hours"
	"github.com/angas/elspot-go/units"
)

const dateLayout = "2006-01-02"

type DayAheadPriceRow struct {
	Region   string
	Date     string
	From     time.Time
	To       time.Time
	Value    string
	Currency string
	Fraction bool
	Power    string
}

// RowFromPrice converts a normalized price into its storable form. The value
// stays a string so the exact decimal survives persistence.
func RowFromPrice(p elspot.Price) DayAheadPriceRow {
	return DayAheadPriceRow{
		Region:   p.Region,
		Date:     p.Date.Format(dateLayout),
		From:     p.From,
		To:       p.To,
		Value:    p.Value,
		Currency: p.Currency.Code(),
		Fraction: p.Currency.IsFraction(),
		Power:    p.Power.String(),
	}
}

// Price converts a stored row back into a price record.
func (r DayAheadPriceRow) Price() (elspot.Price, error) {
	currency, err := units.NewCurrency(r.Currency)
	if err != nil {
		return elspot.Price{}, fmt.Errorf("stored price has unknown currency: %w", err)
	}
	if r.Fraction {
		currency = currency.AsFraction()
	}
	power, err := units.NewPower(r.Power)
	if err != nil {
		return elspot.Price{}, fmt.Errorf("stored price has unknown power unit: %w", err)
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return elspot.Price{}, fmt.Errorf("stored price has malformed date: %w", err)
	}
	mtu, err := units.MtuFromInterval(r.From, r.To)
	if err != nil {
		return elspot.Price{}, fmt.Errorf("stored price has malformed interval: %w", err)
	}
	return elspot.Price{
		Region:   r.Region,
		From:     r.From,
		To:       r.To,
		Date:     date,
		Value:    r.Value,
		Currency: currency,
		Power:    power,
		Mtu:      mtu,
	}, nil
}

func (d *Database) SaveDayAheadPrices(ctx context.Context, rows []DayAheadPriceRow) error {
	for _, row := range rows {
		_, err := d.write.ExecContext(ctx, `
			INSERT INTO day_ahead_price (region, date, hour_from, hour_to, value, currency, fraction_unit, power_unit)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(region, hour_from) DO UPDATE SET
				date = excluded.date,
				hour_to = excluded.hour_to,
				value = excluded.value,
				currency = excluded.currency,
				fraction_unit = excluded.fraction_unit,
				power_unit = excluded.power_unit`,
			row.Region,
			row.Date,
			row.From.UTC().Format(time.RFC3339),
			row.To.UTC().Format(time.RFC3339),
			row.Value,
			row.Currency,
			row.Fraction,
			row.Power)
		if err != nil {
			return fmt.Errorf("error when saving day-ahead price: %w", err)
		}
	}
	return nil
}

// GetDayAheadPrices returns all stored prices for a region and delivery date
// in ascending interval order.
func (d *Database) GetDayAheadPrices(ctx context.Context, region, date string) ([]DayAheadPriceRow, error) {
	rows, err := d.read.QueryContext(ctx, `SELECT
		region, date, hour_from, hour_to, value, currency, fraction_unit, power_unit
		FROM day_ahead_price
		WHERE region = ? AND date = ?
		ORDER BY hour_from ASC`,
		region, date)
	if err != nil {
		return nil, fmt.Errorf("error when fetching day-ahead prices: %w", err)
	}
	defer rows.Close()

	var result []DayAheadPriceRow
	for rows.Next() {
		row, err := scanDayAheadPrice(rows)
		if err != nil {
			d.logger.Error("error when scanning day-ahead price row", slog.Any("error", err))
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetDayAheadPriceAt returns the stored price covering a UTC instant.
func (d *Database) GetDayAheadPriceAt(ctx context.Context, region string, at time.Time) (DayAheadPriceRow, error) {
	row := d.read.QueryRowContext(ctx, `SELECT
		region, date, hour_from, hour_to, value, currency, fraction_unit, power_unit
		FROM day_ahead_price
		WHERE region = ? AND hour_from <= ? AND hour_to > ?`,
		region, at.UTC().Format(time.RFC3339), at.UTC().Format(time.RFC3339))

	r, err := scanDayAheadPrice(row)
	if err != nil {
		return DayAheadPriceRow{}, fmt.Errorf("error when fetching day-ahead price: %w", err)
	}
	return r, nil
}

// Bucket returns the UTC hour bucket the row's interval starts in.
func (r DayAheadPriceRow) Bucket() hours.DateHour {
	return hours.FromTime(r.From)
}

// Purge removes prices older than the retention window.
func (d *Database) Purge(ctx context.Context, retentionDays int) error {
	before := hours.FromTime(time.Now().AddDate(0, 0, -retentionDays)).Date
	res, err := d.write.ExecContext(ctx, `DELETE FROM day_ahead_price WHERE date < ?`, before)
	if err != nil {
		return fmt.Errorf("error when purging day-ahead prices: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows > 0 {
		d.logger.Debug(fmt.Sprintf("purged %d day-ahead price rows", rows))
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDayAheadPrice(s scanner) (DayAheadPriceRow, error) {
	var r DayAheadPriceRow
	var from, to string
	if err := s.Scan(&r.Region, &r.Date, &from, &to, &r.Value, &r.Currency, &r.Fraction, &r.Power); err != nil {
		return DayAheadPriceRow{}, err
	}
	var err error
	if r.From, err = time.Parse(time.RFC3339, from); err != nil {
		return DayAheadPriceRow{}, fmt.Errorf("malformed hour_from %q: %w", from, err)
	}
	if r.To, err = time.Parse(time.RFC3339, to); err != nil {
		return DayAheadPriceRow{}, fmt.Errorf("malformed hour_to %q: %w", to, err)
	}
	return r, nil
}
