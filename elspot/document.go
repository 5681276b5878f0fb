// Package elspot turns the raw hourly day-ahead price feed into normalized
// per-region, per-hour price records. The feed encodes a day as a list of
// hourly rows with naive local timestamps; depending on the region's timezone
// a date legitimately holds 23, 24 or 25 of them, and on the fall-back date
// two rows carry the same local hour label. This package owns that
// reconciliation.
package elspot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/angas/elspot-go/units"
)

// The hourly day-ahead prices live on page 10 of the marketdata API.
const hourlyPageID = 10

// noData is the sentinel the feed uses for "no value for this region at this
// hour". It appears for regions missing from a dataset and for the skipped
// hour on spring-forward days.
const noData = "-"

const naiveLayout = "2006-01-02T15:04:05"

// NaiveTime is a feed timestamp without timezone. The wall-clock fields are
// meaningful only together with a region's location.
type NaiveTime struct {
	time.Time
}

func (t *NaiveTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(naiveLayout, s)
	if err != nil {
		return fmt.Errorf("failed to parse feed timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t NaiveTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(naiveLayout))
}

// In pins the naive wall-clock time to a location.
func (t NaiveTime) In(loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

type Column struct {
	Index      int    `json:"Index"`
	IsOfficial bool   `json:"IsOfficial"`
	Name       string `json:"Name"`
	Value      string `json:"Value"`
}

type Row struct {
	Columns   []Column  `json:"Columns"`
	StartTime NaiveTime `json:"StartTime"`
	EndTime   NaiveTime `json:"EndTime"`
	// Extra rows hold aggregates (min, max, avg) and never prices.
	IsExtraRow bool `json:"IsExtraRow"`
}

type DocumentData struct {
	Rows                      []Row     `json:"Rows"`
	DataStartDate             NaiveTime `json:"DataStartdate"`
	Units                     []string  `json:"Units"`
	ContainsPreliminaryValues bool      `json:"ContainsPreliminaryValues"`
}

// Document is one day's worth of deserialized feed data, already fetched and
// page-validated. All extraction methods are pure functions over it.
type Document struct {
	Data     DocumentData `json:"data"`
	Currency string       `json:"currency"`
	PageID   int          `json:"pageId"`
}

// FromJSON deserializes and validates a feed payload: the page id must be the
// hourly day-ahead page and the declared unit token must be in the supported
// vocabulary.
func FromJSON(b []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("failed to decode feed document: %w", err)
	}
	if d.PageID != hourlyPageID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPageID, d.PageID, hourlyPageID)
	}
	if len(d.Data.Units) == 0 {
		return nil, fmt.Errorf("%w: document declares no unit", units.ErrInvalidUnitString)
	}
	if _, _, err := units.ParseUnitString(d.Data.Units[0]); err != nil {
		return nil, err
	}
	return &d, nil
}

// FromFile loads a previously saved document.
func FromFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	return FromJSON(b)
}

// JSON serializes the document back to its wire form.
func (d *Document) JSON() ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feed document: %w", err)
	}
	return b, nil
}

// Save writes the document to a file in its wire form.
func (d *Document) Save(path string) error {
	b, err := d.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}
	return nil
}

// Date returns the delivery date the feed declares for its rows.
func (d *Document) Date() time.Time {
	return d.Data.DataStartDate.Time
}

func (d *Document) IsPreliminary() bool {
	return d.Data.ContainsPreliminaryValues
}

func (d *Document) IsFinal() bool {
	return !d.Data.ContainsPreliminaryValues
}

// UnitString returns the declared "CUR/PWR" token, e.g. "NOK/MWh".
func (d *Document) UnitString() string {
	if len(d.Data.Units) == 0 {
		return ""
	}
	return d.Data.Units[0]
}

// Regions lists the region columns present in the feed, in document order.
func (d *Document) Regions() []string {
	if len(d.Data.Rows) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Data.Rows[0].Columns))
	for _, col := range d.Data.Rows[0].Columns {
		names = append(names, col.Name)
	}
	return names
}

func (d *Document) HasRegion(region string) bool {
	_, err := d.columnIndex(region)
	return err == nil
}

// columnIndex locates the column carrying the region's values. The feed's own
// index field is authoritative, the position in the slice is not.
func (d *Document) columnIndex(region string) (int, error) {
	if len(d.Data.Rows) == 0 {
		return 0, fmt.Errorf("%w: %q (document has no rows)", ErrRegionNotFound, region)
	}
	for _, col := range d.Data.Rows[0].Columns {
		if col.Name == region {
			return col.Index, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrRegionNotFound, region)
}

// normalizeValue turns a feed value like "1 167,68" into "1167.68".
func normalizeValue(raw string) string {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, ",", ".")
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
