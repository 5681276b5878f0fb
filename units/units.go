// Package units models the currency and power units a price is quoted in.
// A currency is always tagged with its denomination: the full unit (Kr., Eur.)
// or the fraction unit (Øre, Cent), always 1/100 of the full unit.
package units

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidUnitString = errors.New("invalid unit string")

type Denomination int

const (
	Full Denomination = iota
	Fraction
)

type currencyNames struct {
	full     string
	fraction string
}

// One authoritative table per currency, carrying the display names for both
// denominations.
var currencies = map[string]currencyNames{
	"BGN": {full: "lev.", fraction: "stotinka"},
	"DKK": {full: "Kr.", fraction: "Øre"},
	"EUR": {full: "Eur.", fraction: "Cent"},
	"NOK": {full: "Kr.", fraction: "Øre"},
	"PLN": {full: "zł.", fraction: "grosz"},
	"RON": {full: "leu.", fraction: "bani"},
	"SEK": {full: "Kr.", fraction: "Öre"},
}

// Currency is a currency code tagged with its current denomination.
type Currency struct {
	code         string
	denomination Denomination
}

// NewCurrency returns the currency in its full denomination.
func NewCurrency(code string) (Currency, error) {
	if _, ok := currencies[code]; !ok {
		return Currency{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidUnitString, code)
	}
	return Currency{code: code, denomination: Full}, nil
}

func (c Currency) Code() string     { return c.code }
func (c Currency) IsFull() bool     { return c.denomination == Full }
func (c Currency) IsFraction() bool { return c.denomination == Fraction }

// AsFull returns the same currency tagged with the full denomination.
func (c Currency) AsFull() Currency {
	return Currency{code: c.code, denomination: Full}
}

// AsFraction returns the same currency tagged with the fraction denomination.
func (c Currency) AsFraction() Currency {
	return Currency{code: c.code, denomination: Fraction}
}

// String returns the display name of the current denomination, e.g. "Kr." or "Øre".
func (c Currency) String() string {
	n, ok := currencies[c.code]
	if !ok {
		return c.code
	}
	if c.denomination == Fraction {
		return n.fraction
	}
	return n.full
}

// Power is the power unit the price applies to.
type Power int

const (
	MWh Power = iota
	KWh
)

func NewPower(unit string) (Power, error) {
	switch unit {
	case "MWh":
		return MWh, nil
	case "kWh":
		return KWh, nil
	default:
		return MWh, fmt.Errorf("%w: unknown power unit %q", ErrInvalidUnitString, unit)
	}
}

func (p Power) IsMWh() bool { return p == MWh }
func (p Power) IsKWh() bool { return p == KWh }

func (p Power) String() string {
	if p == KWh {
		return "kWh"
	}
	return "MWh"
}

// Mtu is the market time unit, the granularity of one delivery interval.
type Mtu int

const (
	MtuSixty   Mtu = 60
	MtuFifteen Mtu = 15
)

// MtuFromInterval derives the market time unit from a delivery interval.
func MtuFromInterval(from, to time.Time) (Mtu, error) {
	switch to.Sub(from) {
	case 60 * time.Minute:
		return MtuSixty, nil
	case 15 * time.Minute:
		return MtuFifteen, nil
	default:
		return MtuSixty, fmt.Errorf("%w: interval %s is not a market time unit", ErrInvalidUnitString, to.Sub(from))
	}
}

func (m Mtu) Duration() time.Duration {
	return time.Duration(m) * time.Minute
}

func (m Mtu) String() string {
	return fmt.Sprintf("%d minutes", int(m))
}

// ParseUnitString splits and validates the feed's declared unit token,
// e.g. "NOK/MWh". The currency comes back in its full denomination.
func ParseUnitString(unit string) (Currency, Power, error) {
	parts := strings.Split(unit, "/")
	if len(parts) != 2 {
		return Currency{}, MWh, fmt.Errorf("%w: %q", ErrInvalidUnitString, unit)
	}
	cur, err := NewCurrency(parts[0])
	if err != nil {
		return Currency{}, MWh, fmt.Errorf("%w: %q", ErrInvalidUnitString, unit)
	}
	pwr, err := NewPower(parts[1])
	if err != nil {
		return Currency{}, MWh, fmt.Errorf("%w: %q", ErrInvalidUnitString, unit)
	}
	return cur, pwr, nil
}

// SupportedCurrencies returns all known currency codes.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	return codes
}
