package elspot

import (
	"testing"
	"time"

	"github.com/angas/elspot-go/units"
)

func testPrice(t *testing.T, value string) Price {
	t.Helper()
	currency, power, err := units.ParseUnitString("NOK/MWh")
	if err != nil {
		t.Fatal(err)
	}
	from := time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC)
	return Price{
		Region:   "Oslo",
		From:     from,
		To:       from.Add(time.Hour),
		Date:     time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		Value:    value,
		Currency: currency,
		Power:    power,
		Mtu:      units.MtuSixty,
	}
}

func TestPriceConversionChain(t *testing.T) {
	// 167.680 Kr./MWh through every re-quoting and back, losslessly.
	p := testPrice(t, "0167.680")

	fraction, err := p.ToCurrencyFraction()
	if err != nil {
		t.Fatal(err)
	}
	if fraction.Value != "16768" {
		t.Errorf("fraction expected 16768, got %q", fraction.Value)
	}
	if fraction.Currency.String() != "Øre" {
		t.Errorf("fraction unit expected Øre, got %q", fraction.Currency.String())
	}

	perKWh, err := fraction.ToKWh()
	if err != nil {
		t.Fatal(err)
	}
	if perKWh.Value != "16.768" {
		t.Errorf("per kWh expected 16.768, got %q", perKWh.Value)
	}

	full, err := perKWh.ToCurrencyFull()
	if err != nil {
		t.Fatal(err)
	}
	if full.Value != "0.16768" {
		t.Errorf("full expected 0.16768, got %q", full.Value)
	}

	back, err := full.ToMWh()
	if err != nil {
		t.Fatal(err)
	}
	if back.Value != "167.68" {
		t.Errorf("round trip expected 167.68, got %q", back.Value)
	}
	if !back.Currency.IsFull() || !back.Power.IsMWh() {
		t.Error("round trip must end in full currency per MWh")
	}

	// The original is untouched throughout.
	if p.Value != "0167.680" || !p.Currency.IsFull() {
		t.Error("conversions must not mutate the source price")
	}
}

func TestPriceConversionIdempotent(t *testing.T) {
	p := testPrice(t, "167.68")

	same, err := p.ToCurrencyFull()
	if err != nil || same.Value != p.Value {
		t.Errorf("full to full expected no-op, got %q (%v)", same.Value, err)
	}
	same, err = p.ToMWh()
	if err != nil || same.Value != p.Value {
		t.Errorf("MWh to MWh expected no-op, got %q (%v)", same.Value, err)
	}

	fraction, err := p.ToCurrencyFraction()
	if err != nil {
		t.Fatal(err)
	}
	again, err := fraction.ToCurrencyFraction()
	if err != nil || again.Value != fraction.Value {
		t.Errorf("fraction to fraction expected no-op, got %q (%v)", again.Value, err)
	}
}

func TestPriceNegativeValues(t *testing.T) {
	p := testPrice(t, "-0.6")
	fraction, err := p.ToCurrencyFraction()
	if err != nil {
		t.Fatal(err)
	}
	if fraction.Value != "-60" {
		t.Errorf("negative fraction expected -60, got %q", fraction.Value)
	}

	p = testPrice(t, "-30")
	perKWh, err := p.ToKWh()
	if err != nil {
		t.Fatal(err)
	}
	if perKWh.Value != "-0.03" {
		t.Errorf("negative per kWh expected -0.03, got %q", perKWh.Value)
	}
}

func TestPriceNumericViews(t *testing.T) {
	p := testPrice(t, "167.68")

	f, err := p.Float64()
	if err != nil {
		t.Fatal(err)
	}
	if f != 167.68 {
		t.Errorf("Float64 expected 167.68, got %v", f)
	}

	n, err := p.Int()
	if err != nil {
		t.Fatal(err)
	}
	if n != 168 {
		t.Errorf("Int expected 168, got %d", n)
	}

	if n, err := testPrice(t, "-0.6").Int(); err != nil || n != -1 {
		t.Errorf("Int(-0.6) expected -1, got %d (%v)", n, err)
	}
}

func TestPriceLabel(t *testing.T) {
	p := testPrice(t, "167.68")
	if got := p.Label(); got != "NOK 167,68 Kr./MWh" {
		t.Errorf("Label expected %q, got %q", "NOK 167,68 Kr./MWh", got)
	}

	fraction, err := p.ToCurrencyFraction()
	if err != nil {
		t.Fatal(err)
	}
	perKWh, err := fraction.ToKWh()
	if err != nil {
		t.Fatal(err)
	}
	if got := perKWh.Label(); got != "NOK 16,768 Øre/kWh" {
		t.Errorf("Label expected %q, got %q", "NOK 16,768 Øre/kWh", got)
	}
}

func TestPriceFromTo(t *testing.T) {
	p := testPrice(t, "167.68")

	from, to, err := p.FromTo()
	if err != nil {
		t.Fatal(err)
	}
	// 10:00 UTC on a summer date is 12:00 in Oslo.
	if from.Hour() != 12 || to.Hour() != 13 {
		t.Errorf("expected local interval 12-13, got %d-%d", from.Hour(), to.Hour())
	}
	if p.Hour() != "11:00" {
		t.Errorf("Hour expected 11:00 UTC, got %q", p.Hour())
	}

	from, _, err = p.FromToInRegion("FI")
	if err != nil {
		t.Fatal(err)
	}
	if from.Hour() != 13 {
		t.Errorf("expected 13:00 in Helsinki, got %d", from.Hour())
	}

	if _, _, err := p.FromToInRegion("XX"); err == nil {
		t.Error("expected an error for an unsupported region")
	}
}
