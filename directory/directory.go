// Package directory provides a searchable city-to-timezone lookup backing
// the add view's suggestions.
package directory

import "strings"

// Entry represents a city in the directory
type Entry struct {
	Name        string
	CountryCode string
	Timezone    string
}

// entries is a curated list of major cities. All timezone identifiers are
// from the IANA database.
var entries = []Entry{
	// Americas
	{Name: "New York", CountryCode: "US", Timezone: "America/New_York"},
	{Name: "Los Angeles", CountryCode: "US", Timezone: "America/Los_Angeles"},
	{Name: "Chicago", CountryCode: "US", Timezone: "America/Chicago"},
	{Name: "Denver", CountryCode: "US", Timezone: "America/Denver"},
	{Name: "Anchorage", CountryCode: "US", Timezone: "America/Anchorage"},
	{Name: "Honolulu", CountryCode: "US", Timezone: "Pacific/Honolulu"},
	{Name: "Toronto", CountryCode: "CA", Timezone: "America/Toronto"},
	{Name: "Vancouver", CountryCode: "CA", Timezone: "America/Vancouver"},
	{Name: "Mexico City", CountryCode: "MX", Timezone: "America/Mexico_City"},
	{Name: "Rio de Janeiro", CountryCode: "BR", Timezone: "America/Sao_Paulo"},
	{Name: "Sao Paulo", CountryCode: "BR", Timezone: "America/Sao_Paulo"},
	{Name: "Buenos Aires", CountryCode: "AR", Timezone: "America/Argentina/Buenos_Aires"},
	{Name: "Lima", CountryCode: "PE", Timezone: "America/Lima"},
	{Name: "Bogota", CountryCode: "CO", Timezone: "America/Bogota"},
	{Name: "Santiago", CountryCode: "CL", Timezone: "America/Santiago"},
	// Europe
	{Name: "London", CountryCode: "GB", Timezone: "Europe/London"},
	{Name: "Paris", CountryCode: "FR", Timezone: "Europe/Paris"},
	{Name: "Berlin", CountryCode: "DE", Timezone: "Europe/Berlin"},
	{Name: "Madrid", CountryCode: "ES", Timezone: "Europe/Madrid"},
	{Name: "Rome", CountryCode: "IT", Timezone: "Europe/Rome"},
	{Name: "Amsterdam", CountryCode: "NL", Timezone: "Europe/Amsterdam"},
	{Name: "Zurich", CountryCode: "CH", Timezone: "Europe/Zurich"},
	{Name: "Vienna", CountryCode: "AT", Timezone: "Europe/Vienna"},
	{Name: "Stockholm", CountryCode: "SE", Timezone: "Europe/Stockholm"},
	{Name: "Oslo", CountryCode: "NO", Timezone: "Europe/Oslo"},
	{Name: "Helsinki", CountryCode: "FI", Timezone: "Europe/Helsinki"},
	{Name: "Warsaw", CountryCode: "PL", Timezone: "Europe/Warsaw"},
	{Name: "Lisbon", CountryCode: "PT", Timezone: "Europe/Lisbon"},
	{Name: "Athens", CountryCode: "GR", Timezone: "Europe/Athens"},
	{Name: "Istanbul", CountryCode: "TR", Timezone: "Europe/Istanbul"},
	{Name: "Moscow", CountryCode: "RU", Timezone: "Europe/Moscow"},
	{Name: "Kyiv", CountryCode: "UA", Timezone: "Europe/Kyiv"},
	// Africa & Middle East
	{Name: "Cairo", CountryCode: "EG", Timezone: "Africa/Cairo"},
	{Name: "Lagos", CountryCode: "NG", Timezone: "Africa/Lagos"},
	{Name: "Nairobi", CountryCode: "KE", Timezone: "Africa/Nairobi"},
	{Name: "Johannesburg", CountryCode: "ZA", Timezone: "Africa/Johannesburg"},
	{Name: "Dubai", CountryCode: "AE", Timezone: "Asia/Dubai"},
	{Name: "Riyadh", CountryCode: "SA", Timezone: "Asia/Riyadh"},
	{Name: "Tel Aviv", CountryCode: "IL", Timezone: "Asia/Jerusalem"},
	// Asia
	{Name: "Tokyo", CountryCode: "JP", Timezone: "Asia/Tokyo"},
	{Name: "Osaka", CountryCode: "JP", Timezone: "Asia/Tokyo"},
	{Name: "Seoul", CountryCode: "KR", Timezone: "Asia/Seoul"},
	{Name: "Beijing", CountryCode: "CN", Timezone: "Asia/Shanghai"},
	{Name: "Shanghai", CountryCode: "CN", Timezone: "Asia/Shanghai"},
	{Name: "Hong Kong", CountryCode: "HK", Timezone: "Asia/Hong_Kong"},
	{Name: "Taipei", CountryCode: "TW", Timezone: "Asia/Taipei"},
	{Name: "Singapore", CountryCode: "SG", Timezone: "Asia/Singapore"},
	{Name: "Bangkok", CountryCode: "TH", Timezone: "Asia/Bangkok"},
	{Name: "Jakarta", CountryCode: "ID", Timezone: "Asia/Jakarta"},
	{Name: "Mumbai", CountryCode: "IN", Timezone: "Asia/Kolkata"},
	{Name: "Delhi", CountryCode: "IN", Timezone: "Asia/Kolkata"},
	{Name: "Kathmandu", CountryCode: "NP", Timezone: "Asia/Kathmandu"},
	{Name: "Karachi", CountryCode: "PK", Timezone: "Asia/Karachi"},
	// Oceania
	{Name: "Sydney", CountryCode: "AU", Timezone: "Australia/Sydney"},
	{Name: "Melbourne", CountryCode: "AU", Timezone: "Australia/Melbourne"},
	{Name: "Perth", CountryCode: "AU", Timezone: "Australia/Perth"},
	{Name: "Auckland", CountryCode: "NZ", Timezone: "Pacific/Auckland"},
}

// MinQueryLength is the minimum query length for Search to return results
const MinQueryLength = 3

// Search returns cities matching the query, exact matches first, then
// prefix matches, then substring matches, capped at maxResults. Matching is
// case-insensitive. Queries shorter than MinQueryLength return nothing.
func Search(query string, maxResults int) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < MinQueryLength || maxResults <= 0 {
		return nil
	}

	var exactMatches []Entry
	var partialMatches []Entry

	for _, e := range entries {
		nameLower := strings.ToLower(e.Name)

		if nameLower == query {
			exactMatches = append(exactMatches, e)
		} else if strings.HasPrefix(nameLower, query) {
			partialMatches = append(partialMatches, e)
		} else if strings.Contains(nameLower, query) {
			partialMatches = append(partialMatches, e)
		}

		if len(exactMatches)+len(partialMatches) >= maxResults {
			break
		}
	}

	results := append(exactMatches, partialMatches...)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return results
}
