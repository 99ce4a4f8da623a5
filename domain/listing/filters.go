package listing

import (
	"math"
	"strconv"
	"strings"
)

// Filters are ephemeral query criteria. The zero value hides everything;
// use DefaultFilters for the show-all default.
type Filters struct {
	ShowCustomers  bool
	ShowPerformers bool
	MinPrice       string
	MaxPrice       string
}

func DefaultFilters() Filters {
	return Filters{ShowCustomers: true, ShowPerformers: true}
}

// Apply keeps listings whose role is shown and whose numeric price falls
// inside the requested bounds. Order-preserving and stable, so applying the
// same filters twice yields the same sequence. Unparsable bound text falls
// back to the default bound, never an error.
func Apply(listings []Listing, f Filters) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if !f.match(l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (f Filters) match(l Listing) bool {
	switch l.Role {
	case RoleCustomer:
		if !f.ShowCustomers {
			return false
		}
	case RolePerformer:
		if !f.ShowPerformers {
			return false
		}
	}

	price := l.NumericPrice()
	if f.MinPrice != "" && price < parseBound(f.MinPrice, 0) {
		return false
	}
	if f.MaxPrice != "" && price > parseBound(f.MaxPrice, math.MaxInt64) {
		return false
	}
	return true
}

func parseBound(text string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
