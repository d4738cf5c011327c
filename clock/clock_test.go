package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New("Tokyo", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", c.Name)
	assert.Equal(t, "Asia/Tokyo", c.Location.String())
}

func TestNewInvalidTimezone(t *testing.T) {
	for _, tz := range []string{"Nowhere/Atlantis", "Asia/Tokio", "not a zone", ""} {
		_, err := New("Nowhere", tz)
		require.Error(t, err, "timezone %q", tz)
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	}
}

func TestLoadZone(t *testing.T) {
	loc, err := LoadZone("Europe/London")
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())

	_, err = LoadZone("Europe/Atlantis")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestAt(t *testing.T) {
	// Mid-February: no DST in the northern hemisphere, DST in Sydney
	instant := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{"Tokyo", "Asia/Tokyo", "21:00:00"},
		{"New York", "America/New_York", "07:00:00"},
		{"London", "Europe/London", "12:00:00"},
		{"Kathmandu", "Asia/Kathmandu", "17:45:00"},
		{"Sydney", "Australia/Sydney", "23:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.name, tt.timezone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.At(instant).Format("15:04:05"))
		})
	}
}

func TestNowTracksWallClock(t *testing.T) {
	c, err := New("Tokyo", "Asia/Tokyo")
	require.NoError(t, err)

	got := c.Now()
	assert.WithinDuration(t, time.Now(), got, 5*time.Second)
	assert.Equal(t, "Asia/Tokyo", got.Location().String())
}

func TestUTCOffsetAt(t *testing.T) {
	instant := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

	tokyo, err := New("Tokyo", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, 9*3600, tokyo.UTCOffsetAt(instant))

	ny, err := New("New York", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, -5*3600, ny.UTCOffsetAt(instant))

	// DST flips New York to UTC-4 in summer
	summer := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, -4*3600, ny.UTCOffsetAt(summer))
}

func TestFormatUTCOffset(t *testing.T) {
	// Asia/Tokyo has no DST, so the offset is stable year round
	tokyo, err := New("Tokyo", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "UTC+09:00", tokyo.FormatUTCOffset())

	kathmandu, err := New("Kathmandu", "Asia/Kathmandu")
	require.NoError(t, err)
	assert.Equal(t, "UTC+05:45", kathmandu.FormatUTCOffset())
}
