package domain

import "strings"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByPriceLow   SortKey = "price-low"
	SortByPriceHigh  SortKey = "price-high"
	SortByPopularity SortKey = "popularity"
)

// ParseSortKey maps a raw value onto a SortKey. Unknown values are kept
// as-is and mean "no reordering".
func ParseSortKey(s string) SortKey {
	return SortKey(strings.TrimSpace(strings.ToLower(s)))
}

// EventQuery is the ephemeral, UI-driven query over a catalog.
type EventQuery struct {
	SearchText string
	Category   Category
	SortKey    SortKey
}

// DefaultQuery is the query the events view starts with.
func DefaultQuery() EventQuery {
	return EventQuery{Category: CategoryAll, SortKey: SortByDate}
}

// HasActiveFilters reports whether the query narrows the catalog.
func (q EventQuery) HasActiveFilters() bool {
	return q.SearchText != "" || (q.Category != "" && q.Category != CategoryAll)
}
