package services

import (
	"strings"

	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"
)

// FilterOptions is the structured filter set applied on the listing screen.
// Empty fields are inactive.
type FilterOptions struct {
	District string
	Area     string
	Type     string
}

// FilterBusinesses applies a free-text query plus FilterOptions to a
// collection of listings and returns the matching sub-collection:
//
//   - a non-empty query matches name, type or services text as a
//     case-insensitive substring
//   - district and type match exactly, area as a case-insensitive substring
//
// Active predicates combine with AND. The input order is preserved and the
// input slice is never mutated.
func FilterBusinesses(list []entity.Business, query string, f FilterOptions) []entity.Business {
	results := make([]entity.Business, 0, len(list))

	q := strings.ToLower(query)
	area := strings.ToLower(f.Area)

	for _, b := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.Type), q) &&
			!strings.Contains(strings.ToLower(b.Services), q) {
			continue
		}
		if f.District != "" && b.District != f.District {
			continue
		}
		if f.Area != "" && !strings.Contains(strings.ToLower(b.Area), area) {
			continue
		}
		if f.Type != "" && b.Type != f.Type {
			continue
		}
		results = append(results, b)
	}
	return results
}
