package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone is returned when a timezone identifier is not part of
// the IANA time zone database.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Clock represents a world clock for a specific city and timezone
type Clock struct {
	Name     string
	Location *time.Location
}

// LoadZone resolves an IANA timezone identifier to a *time.Location.
// Unknown identifiers return an error wrapping ErrInvalidTimezone.
func LoadZone(timezone string) (*time.Location, error) {
	// time.LoadLocation maps "" to UTC; an empty identifier is not a
	// recognized zone name here
	if timezone == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	return loc, nil
}

// New creates a new Clock instance, validating the timezone identifier
func New(name, timezone string) (*Clock, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return nil, err
	}

	return &Clock{
		Name:     name,
		Location: loc,
	}, nil
}

// Now returns the current time in the clock's timezone
func (c *Clock) Now() time.Time {
	return time.Now().In(c.Location)
}

// At returns the given instant expressed in the clock's timezone
func (c *Clock) At(t time.Time) time.Time {
	return t.In(c.Location)
}

// FormatTime returns the current time in 24-hour format (HH:MM:SS)
func (c *Clock) FormatTime() string {
	return c.Now().Format("15:04:05")
}

// FormatDate returns the current date in YYYY-MM-DD format
func (c *Clock) FormatDate() string {
	return c.Now().Format("2006-01-02")
}

// FormatUTCOffset returns the UTC offset in ±HH:MM format
func (c *Clock) FormatUTCOffset() string {
	offset := c.UTCOffsetAt(time.Now())

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60

	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}

// FormatDateWithOffset returns the date and UTC offset
// Format: "YYYY-MM-DD - UTC±HH:MM"
func (c *Clock) FormatDateWithOffset() string {
	return fmt.Sprintf("%s - %s", c.FormatDate(), c.FormatUTCOffset())
}

// UTCOffsetAt returns the clock's UTC offset in seconds at the given instant.
// Daylight-saving transitions make this instant-dependent.
func (c *Clock) UTCOffsetAt(t time.Time) int {
	_, offset := t.In(c.Location).Zone()
	return offset
}
