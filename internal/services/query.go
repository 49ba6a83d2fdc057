package services

import (
	"slices"
	"strings"

	"eventify/internal/domain"
)

// DefaultRelatedLimit is how many related events the detail view shows.
const DefaultRelatedLimit = 3

// QueryEvents filters events by q and then sorts the survivors by q.SortKey.
// The input slice is never modified; the result is a new slice and is empty
// (not nil) when nothing matches.
func QueryEvents(events []domain.Event, q domain.EventQuery) []domain.Event {
	needle := strings.ToLower(q.SearchText)
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if matchesSearch(e, needle) && matchesCategory(e, q.Category) {
			out = append(out, e)
		}
	}
	sortEvents(out, q.SortKey)
	return out
}

func matchesSearch(e domain.Event, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) ||
		strings.Contains(strings.ToLower(e.Location), needle)
}

func matchesCategory(e domain.Event, c domain.Category) bool {
	return c == "" || c == domain.CategoryAll || e.Category == c
}

// sortEvents orders events in place. Ties keep their filtered order.
func sortEvents(events []domain.Event, key domain.SortKey) {
	switch key {
	case domain.SortByDate:
		slices.SortStableFunc(events, compareDate)
	case domain.SortByPriceLow:
		slices.SortStableFunc(events, func(a, b domain.Event) int {
			return compareFloat(a.Price, b.Price)
		})
	case domain.SortByPriceHigh:
		slices.SortStableFunc(events, func(a, b domain.Event) int {
			return compareFloat(b.Price, a.Price)
		})
	case domain.SortByPopularity:
		slices.SortStableFunc(events, func(a, b domain.Event) int {
			return b.Attendees - a.Attendees
		})
	}
}

// compareDate sorts by calendar date; events whose date does not parse go last.
func compareDate(a, b domain.Event) int {
	da, okA := a.CalendarDate()
	db, okB := b.CalendarDate()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return da.Compare(db)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// RelatedEvents returns up to limit events from catalog sharing event's
// category, excluding event itself, in catalog order.
func RelatedEvents(event domain.Event, catalog []domain.Event, limit int) []domain.Event {
	out := []domain.Event{}
	for _, e := range catalog {
		if len(out) >= limit {
			break
		}
		if e.Category == event.Category && e.ID != event.ID {
			out = append(out, e)
		}
	}
	return out
}
