package domain

import (
	"fmt"
	"time"
)

// Plan is an event a couple is interested in or has booked, tied to a
// calendar date. Dates are carried as YYYY-MM-DD strings the way the
// mobile client persists them; they are parsed on demand.
type Plan struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	EventDate      string `json:"event_date"`
	TicketOpenDate string `json:"ticket_open_date,omitempty"`
	LocationName   string `json:"location_name,omitempty"`
}

func (p *Plan) HasTicketOpenDate() bool {
	return p.TicketOpenDate != ""
}

// EventCalendarDate parses EventDate, failing with ErrInvalidEventDate
// when it is not a valid YYYY-MM-DD date.
func (p *Plan) EventCalendarDate() (CalendarDate, error) {
	d, err := ParseCalendarDate(p.EventDate)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidEventDate, p.EventDate)
	}
	return d, nil
}

// TicketOpenCalendarDate parses TicketOpenDate, failing with
// ErrInvalidTicketOpenDate. Callers must check HasTicketOpenDate first.
func (p *Plan) TicketOpenCalendarDate() (CalendarDate, error) {
	d, err := ParseCalendarDate(p.TicketOpenDate)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidTicketOpenDate, p.TicketOpenDate)
	}
	return d, nil
}

// LocationOrTitle returns the location name when set, otherwise the title.
// Used by the day-before reminder copy.
func (p *Plan) LocationOrTitle() string {
	if p.LocationName != "" {
		return p.LocationName
	}
	return p.Title
}

// CalendarDate is a civil date with no time-of-day or zone attached.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parses a YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// AddDays returns the date shifted by the given number of days, with
// calendar overflow normalized.
func (d CalendarDate) AddDays(days int) CalendarDate {
	t := time.Date(d.Year, d.Month, d.Day+days, 0, 0, 0, 0, time.UTC)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysSince returns the number of whole calendar days from other to d.
// Positive when d is later than other.
func (d CalendarDate) DaysSince(other CalendarDate) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
}

// After reports whether d is strictly later than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.DaysSince(other) > 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
