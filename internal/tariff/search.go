package tariff

import (
	"context"
	"sort"
	"strings"

	"github.com/one-connexion/backend-pricing/internal/cityname"
)

// DefaultSearchLimit caps autocomplete responses when the caller does not
// ask for a specific page size.
const DefaultSearchLimit = 20

// Search matches rate rows against a free-text query. Matching runs on the
// search form of the name, so "le raincy", "Raincy" and "raincy (le)" all
// find the same row; an all-digit query matches on postal-code prefix
// instead. An empty query lists everything up to the limit.
func Search(ctx context.Context, src Source, query string, limit int) ([]CityRate, error) {
	rows, err := src.All(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	q := strings.TrimSpace(query)
	var matched []CityRate
	switch {
	case q == "":
		matched = rows
	case isDigits(q):
		for _, r := range rows {
			if strings.HasPrefix(r.PostalCode, q) {
				matched = append(matched, r)
			}
		}
	default:
		key := cityname.SearchKey(q)
		for _, r := range rows {
			if strings.HasPrefix(cityname.SearchKey(r.CityName), key) {
				matched = append(matched, r)
			}
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].CityName < matched[j].CityName })
	matched = dedupeBySearchKey(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// dedupeBySearchKey drops later rows whose search form collides with an
// earlier one, so listings never show "Le Raincy" twice under article and
// article-less spellings.
func dedupeBySearchKey(rows []CityRate) []CityRate {
	seen := make(map[string]struct{}, len(rows))
	out := rows[:0]
	for _, r := range rows {
		key := cityname.SearchKey(r.CityName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
