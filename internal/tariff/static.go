package tariff

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/one-connexion/backend-pricing/internal/cityname"
)

// StaticSource serves rate lookups from an in-memory slice of rows. It backs
// the service when no database is configured and is the snapshot type the
// Postgres store swaps in after each fetch.
type StaticSource struct {
	rows  []CityRate
	byKey map[string]int
}

// NewStaticSource indexes the given rows by their normalized lookup key.
// Two rows collapsing onto the same key is a data defect in the grid and
// yields ErrDuplicateCity rather than a silent merge.
func NewStaticSource(rows []CityRate) (*StaticSource, error) {
	s := &StaticSource{
		rows:  make([]CityRate, len(rows)),
		byKey: make(map[string]int, len(rows)),
	}
	copy(s.rows, rows)
	for i, row := range s.rows {
		key, err := cityname.Normalize(row.CityName)
		if err != nil {
			return nil, fmt.Errorf("row %d (%q): %w", i, row.CityName, err)
		}
		if prev, ok := s.byKey[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q both normalize to %q",
				ErrDuplicateCity, s.rows[prev].CityName, row.CityName, key)
		}
		s.byKey[key] = i
	}
	return s, nil
}

// MustStatic is NewStaticSource for compile-time grids; it panics on a
// duplicate key, which only a bad edit to the embedded data can cause.
func MustStatic(rows []CityRate) *StaticSource {
	s, err := NewStaticSource(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup resolves a city name against the indexed rows. The fast path is an
// exact hit on the normalized key; failing that it scans display names
// case-insensitively, so a row stored as "Saint Mandé" still matches the
// query "saint-mandé" even though their raw strings differ.
func (s *StaticSource) Lookup(ctx context.Context, cityName string) (CityRate, error) {
	key, err := cityname.Normalize(cityName)
	if err != nil {
		return CityRate{}, ErrCityNotFound
	}
	if i, ok := s.byKey[key]; ok {
		return s.rows[i], nil
	}
	for _, row := range s.rows {
		if strings.EqualFold(row.CityName, cityName) {
			return row, nil
		}
	}
	return CityRate{}, ErrCityNotFound
}

// All returns the rows sorted by display name. The slice is a copy; callers
// may keep or mutate it.
func (s *StaticSource) All(ctx context.Context) ([]CityRate, error) {
	out := make([]CityRate, len(s.rows))
	copy(out, s.rows)
	sort.Slice(out, func(i, j int) bool { return out[i].CityName < out[j].CityName })
	return out, nil
}

// Len reports the number of indexed rows.
func (s *StaticSource) Len() int { return len(s.rows) }
