package elspot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/angas/elspot-go/decimal"
	"github.com/angas/elspot-go/regions"
	"github.com/angas/elspot-go/units"
)

// Price is one hourly price observation. Value is an exact decimal string;
// conversions return a new Price instead of mutating, so a price can never be
// half-converted.
type Price struct {
	Region   string
	From     time.Time // start of the delivery interval, UTC
	To       time.Time // end of the delivery interval, UTC
	Date     time.Time // the feed's declared delivery date
	Value    string
	Currency units.Currency
	Power    units.Power
	Mtu      units.Mtu
}

// ToCurrencyFraction re-quotes the price in the currency's sub-unit
// (x100, e.g. Kr. to Øre). Already-fraction prices come back unchanged.
func (p Price) ToCurrencyFraction() (Price, error) {
	if p.Currency.IsFraction() {
		return p, nil
	}
	v, err := decimal.ShiftRight(p.Value, 2)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, p.Value)
	}
	p.Value = v
	p.Currency = p.Currency.AsFraction()
	return p, nil
}

// ToCurrencyFull re-quotes the price in the currency's full unit (/100).
func (p Price) ToCurrencyFull() (Price, error) {
	if p.Currency.IsFull() {
		return p, nil
	}
	v, err := decimal.ShiftLeft(p.Value, 2)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, p.Value)
	}
	p.Value = v
	p.Currency = p.Currency.AsFull()
	return p, nil
}

// ToKWh re-quotes the price per kWh (/1000).
func (p Price) ToKWh() (Price, error) {
	if p.Power.IsKWh() {
		return p, nil
	}
	v, err := decimal.ShiftLeft(p.Value, 3)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, p.Value)
	}
	p.Value = v
	p.Power = units.KWh
	return p, nil
}

// ToMWh re-quotes the price per MWh (x1000).
func (p Price) ToMWh() (Price, error) {
	if p.Power.IsMWh() {
		return p, nil
	}
	v, err := decimal.ShiftRight(p.Value, 3)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, p.Value)
	}
	p.Value = v
	p.Power = units.MWh
	return p, nil
}

// Float64 is a best-effort numeric view of the value. The exact string is the
// source of truth; this is for display and arithmetic that tolerates float
// rounding.
func (p Price) Float64() (float64, error) {
	f, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDecimal, p.Value)
	}
	return f, nil
}

// Int rounds the value to the nearest integer.
func (p Price) Int() (int, error) {
	f, err := p.Float64()
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// Hour formats the end of the delivery interval as a wall-clock label.
func (p Price) Hour() string {
	return p.To.Format("15:04")
}

// Label formats the price the way the market displays it,
// e.g. "NOK 167,68 Kr./MWh".
func (p Price) Label() string {
	value := strings.ReplaceAll(p.Value, ".", ",")
	return fmt.Sprintf("%s %s %s/%s", p.Currency.Code(), value, p.Currency, p.Power)
}

// FromTo returns the delivery interval in the price's own region time.
func (p Price) FromTo() (time.Time, time.Time, error) {
	return p.FromToInRegion(p.Region)
}

// FromToInRegion returns the delivery interval in another region's time.
func (p Price) FromToInRegion(region string) (time.Time, time.Time, error) {
	loc, err := regions.Resolve(region)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return p.From.In(loc), p.To.In(loc), nil
}
