package catalog

import (
	"sort"
	"strings"
)

// Sort selects the ordering applied after filtering.
type Sort string

const (
	SortRecommended Sort = "recommended"
	SortPriceLow    Sort = "price_low"
	SortPriceHigh   Sort = "price_high"
	SortRating      Sort = "rating"
	SortReviews     Sort = "reviews"
)

// LocationAll is the sentinel that disables the location predicate.
const LocationAll = "all"

// Criteria describes a catalog search.  A zero MinPrice and a large MaxPrice
// together with Location "all" and an empty Search leave every record in.
// MinPrice > MaxPrice is not an error; it simply yields an empty result.
type Criteria struct {
	Search    string  `json:"search" query:"search"`
	Location  string  `json:"location" query:"location"`
	MinPrice  int     `json:"min_price" query:"min_price"`
	MaxPrice  int     `json:"max_price" query:"max_price"`
	MinRating float64 `json:"min_rating" query:"min_rating"`
	// PetSize is accepted and echoed back but is not applied by any
	// predicate.  The source product exposes the control without wiring it
	// to a filter; that behavior is preserved rather than guessed at.
	PetSize string `json:"pet_size" query:"pet_size"`
	SortBy  Sort   `json:"sort_by" query:"sort_by"`
}

// DefaultCriteria returns the criteria the listing page starts from.
func DefaultCriteria() Criteria {
	return Criteria{
		Location: LocationAll,
		MaxPrice: 500000,
		PetSize:  "all",
		SortBy:   SortRecommended,
	}
}

// Filter returns the records of list matching c, ordered by c.SortBy.
// It never mutates list and is deterministic: ties keep the original
// catalog order (stable sort).
func Filter(list []Accommodation, c Criteria) []Accommodation {
	out := make([]Accommodation, 0, len(list))
	query := strings.ToLower(strings.TrimSpace(c.Search))
	loc := strings.ToLower(c.Location)

	for _, a := range list {
		if query != "" {
			name := strings.ToLower(a.Name)
			region := strings.ToLower(a.Location)
			desc := strings.ToLower(a.Description)
			if !strings.Contains(name, query) && !strings.Contains(region, query) && !strings.Contains(desc, query) {
				continue
			}
		}
		if loc != "" && loc != LocationAll {
			if !strings.Contains(strings.ToLower(a.Location), loc) {
				continue
			}
		}
		if a.PricePerNight < c.MinPrice || a.PricePerNight > c.MaxPrice {
			continue
		}
		if a.Rating < c.MinRating {
			continue
		}
		// PetSize: intentionally no predicate, see Criteria.
		out = append(out, a)
	}

	sortResults(out, c.SortBy)
	return out
}

func sortResults(list []Accommodation, by Sort) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].PricePerNight < list[j].PricePerNight })
	case SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].PricePerNight > list[j].PricePerNight })
	case SortReviews:
		// The catalog carries no review counts; rating stands in for
		// popularity, matching the source.
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	default: // SortRecommended and anything unrecognized
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	}
}
