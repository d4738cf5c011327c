package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgeraads/cityclock/clock"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.Len(t, seed, 10)

	assert.Equal(t, City{Name: "Tokyo", Timezone: "Asia/Tokyo"}, seed[0])

	for _, city := range seed {
		_, err := clock.LoadZone(city.Timezone)
		assert.NoError(t, err, "seed city %q", city.Name)
	}
}

func TestNewFromDefaultSeed(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)
	assert.Equal(t, 10, r.Len())
	assert.Equal(t, DefaultSeed(), r.Cities())
}

func TestNewRejectsBadSeed(t *testing.T) {
	_, err := New([]City{{Name: "Nowhere", Timezone: "Nowhere/Atlantis"}})
	assert.ErrorIs(t, err, clock.ErrInvalidTimezone)

	_, err = New([]City{{Name: "", Timezone: "Asia/Tokyo"}})
	assert.Error(t, err)

	_, err = New([]City{
		{Name: "Tokyo", Timezone: "Asia/Tokyo"},
		{Name: "Tokyo", Timezone: "Asia/Tokyo"},
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestAdd(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	require.NoError(t, r.Add("Los Angeles", "America/Los_Angeles"))
	assert.Equal(t, 11, r.Len())
	assert.True(t, r.Has("Los Angeles"))

	cities := r.Cities()
	assert.Equal(t, City{Name: "Los Angeles", Timezone: "America/Los_Angeles"}, cities[len(cities)-1])
}

func TestAddDuplicateName(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)
	require.NoError(t, r.Add("Los Angeles", "America/Los_Angeles"))

	before := r.Cities()

	err = r.Add("Tokyo", "Asia/Tokyo")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Name collision is checked even with a different timezone
	err = r.Add("Tokyo", "Europe/Paris")
	assert.ErrorIs(t, err, ErrDuplicateName)

	assert.Equal(t, before, r.Cities(), "failed add must not change the registry")
}

func TestAddCaseSensitiveNames(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	// "tokyo" and "Tokyo" are distinct display names
	require.NoError(t, r.Add("tokyo", "Asia/Tokyo"))
	assert.Equal(t, 11, r.Len())
}

func TestAddInvalidTimezone(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	err = r.Add("Atlantis", "Atlantic/Atlantis")
	assert.ErrorIs(t, err, clock.ErrInvalidTimezone)
	assert.Equal(t, 10, r.Len())
	assert.False(t, r.Has("Atlantis"))
}

func TestRemove(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	r.Remove([]string{"Paris", "Dubai"})
	assert.Equal(t, 8, r.Len())
	assert.False(t, r.Has("Paris"))
	assert.False(t, r.Has("Dubai"))

	// Remaining cities keep their relative order
	cities := r.Cities()
	assert.Equal(t, "Tokyo", cities[0].Name)
	assert.Equal(t, "London", cities[2].Name)
	assert.Equal(t, "Sydney", cities[3].Name)
}

func TestRemoveUnknownNames(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	// Unknown names are skipped, known ones still removed
	r.Remove([]string{"Atlantis", "London", "El Dorado"})
	assert.Equal(t, 9, r.Len())
	assert.False(t, r.Has("London"))
}

func TestRemoveAll(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	var names []string
	for _, city := range r.Cities() {
		names = append(names, city.Name)
	}
	r.Remove(names)

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Cities())

	// An emptied registry accepts new cities
	require.NoError(t, r.Add("Tokyo", "Asia/Tokyo"))
	assert.Equal(t, 1, r.Len())
}

func TestAddRemoveRoundTrip(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	require.NoError(t, r.Add("Oslo", "Europe/Oslo"))
	assert.True(t, r.Has("Oslo"))

	r.Remove([]string{"Oslo"})
	assert.False(t, r.Has("Oslo"))
	assert.Equal(t, DefaultSeed(), r.Cities())

	// The name is free again after removal
	require.NoError(t, r.Add("Oslo", "Europe/Oslo"))
	assert.True(t, r.Has("Oslo"))
}

func TestCitiesSnapshot(t *testing.T) {
	r, err := New(DefaultSeed())
	require.NoError(t, err)

	snapshot := r.Cities()
	snapshot[0] = City{Name: "Mutated", Timezone: "UTC"}

	assert.Equal(t, "Tokyo", r.Cities()[0].Name, "snapshot mutation must not leak into the registry")
}
