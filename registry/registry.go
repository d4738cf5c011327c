// Package registry holds the ordered set of cities shown by the clock view.
package registry

import (
	"errors"
	"fmt"

	"github.com/rgeraads/cityclock/clock"
)

// ErrDuplicateName is returned when a city with the same display name
// already exists in the registry.
var ErrDuplicateName = errors.New("city already exists")

// City pairs a display name with an IANA timezone identifier
type City struct {
	Name     string
	Timezone string
}

// Registry is an ordered mapping from display name to timezone.
// Insertion order is preserved and used for display. A registry lives for
// one session only; nothing is persisted.
type Registry struct {
	cities []City
	index  map[string]int
}

// DefaultSeed returns the fixed ten-city starter set
func DefaultSeed() []City {
	return []City{
		{Name: "Tokyo", Timezone: "Asia/Tokyo"},
		{Name: "New York", Timezone: "America/New_York"},
		{Name: "London", Timezone: "Europe/London"},
		{Name: "Paris", Timezone: "Europe/Paris"},
		{Name: "Dubai", Timezone: "Asia/Dubai"},
		{Name: "Sydney", Timezone: "Australia/Sydney"},
		{Name: "Singapore", Timezone: "Asia/Singapore"},
		{Name: "Berlin", Timezone: "Europe/Berlin"},
		{Name: "Rio de Janeiro", Timezone: "America/Sao_Paulo"},
		{Name: "Beijing", Timezone: "Asia/Shanghai"},
	}
}

// New creates a registry from the given seed, validating every entry
func New(seed []City) (*Registry, error) {
	r := &Registry{
		index: make(map[string]int, len(seed)),
	}

	for _, city := range seed {
		if city.Name == "" {
			return nil, fmt.Errorf("seed city has no name")
		}
		if err := r.Add(city.Name, city.Timezone); err != nil {
			return nil, fmt.Errorf("seed city %q: %w", city.Name, err)
		}
	}

	return r, nil
}

// Add appends a city at the end of the registry. It returns
// ErrDuplicateName if the name is already present (case-sensitive exact
// match) and clock.ErrInvalidTimezone if the timezone is not recognized.
// On error the registry is left unchanged.
func (r *Registry) Add(name, timezone string) error {
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	if _, err := clock.LoadZone(timezone); err != nil {
		return err
	}

	r.index[name] = len(r.cities)
	r.cities = append(r.cities, City{Name: name, Timezone: timezone})
	return nil
}

// Remove deletes every listed city that is present. Unknown names are
// silently ignored; removing the last city is allowed.
func (r *Registry) Remove(names []string) {
	toDelete := make(map[string]bool, len(names))
	for _, name := range names {
		toDelete[name] = true
	}

	remaining := r.cities[:0]
	for _, city := range r.cities {
		if !toDelete[city.Name] {
			remaining = append(remaining, city)
		}
	}
	r.cities = remaining

	// Rebuild the name index to match the compacted slice
	r.index = make(map[string]int, len(r.cities))
	for i, city := range r.cities {
		r.index[city.Name] = i
	}
}

// Cities returns a snapshot of the registry in insertion order
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)
	return out
}

// Has reports whether a city with the given name exists
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of cities in the registry
func (r *Registry) Len() int {
	return len(r.cities)
}
