package data

import (
	"math"
	"strconv"
	"strings"
	"time"
	// Zone data for hosts without a system tz database.
	_ "time/tzdata"

	"windfarm-analytics/internal/model"

	"github.com/xuri/excelize/v2"
)

// Layouts tried, in order, for timestamps without an explicit offset.
var naiveLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/06 15:04",
	"01/02/2006",
}

// Excel serial day numbers accepted as timestamps (1900-01-01 .. 9999-12-31).
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// TimeParser turns spreadsheet cells into timestamps. Values without an
// offset are interpreted as wall-clock time in Location; with the default
// UTC they behave as plain labels and never collide.
type TimeParser struct {
	Location *time.Location
}

// NewTimeParser returns a parser for the named IANA zone ("" means UTC).
func NewTimeParser(zone string) (TimeParser, error) {
	if zone == "" {
		return TimeParser{Location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return TimeParser{}, err
	}
	return TimeParser{Location: loc}, nil
}

func (p TimeParser) loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Parse converts a cell to a timestamp. ok is false when the cell is not a
// recognisable timestamp.
func (p TimeParser) Parse(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}
	loc := p.loc()

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), true
	}
	if t, err := time.Parse("2006-01-02 15:04:05Z07:00", s); err == nil {
		return t.In(loc), true
	}
	for _, layout := range naiveLayouts {
		if label, err := time.Parse(layout, s); err == nil {
			return inZone(label, loc)
		}
	}

	// Raw xlsx date cells arrive as serial day numbers.
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(serial) || serial < minExcelSerial || serial > maxExcelSerial {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return inZone(t.Round(time.Second), loc)
}

// inZone reads the clock fields of label as wall time in loc. Wall times
// skipped by a daylight-saving jump do not exist there; time.Date would
// shift them onto the following hour, so they are rejected instead.
func inZone(label time.Time, loc *time.Location) (time.Time, bool) {
	y, mo, d := label.Date()
	h, mi, sec := label.Clock()
	t := time.Date(y, mo, d, h, mi, sec, label.Nanosecond(), loc)
	y2, mo2, d2 := t.Date()
	h2, mi2, sec2 := t.Clock()
	if y2 != y || mo2 != mo || d2 != d || h2 != h || mi2 != mi || sec2 != sec {
		return time.Time{}, false
	}
	return t, true
}

// ParseNumber coerces a cell to float64; anything non-numeric is model.Missing.
func ParseNumber(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return model.Missing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return model.Missing
	}
	return v
}
