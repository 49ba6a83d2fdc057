package domain

import (
	"context"
	"time"
)

// Category is one of the fixed event categories.
type Category string

const (
	CategoryCorporate      Category = "Corporate"
	CategoryWeddings       Category = "Weddings"
	CategoryConcerts       Category = "Concerts"
	CategoryWorkshops      Category = "Workshops"
	CategoryPrivateParties Category = "Private Parties"

	// CategoryAll is a query-only value that matches every category.
	CategoryAll Category = "all"
)

// Categories lists the event categories in the order used when assigning
// categories to remote records.
var Categories = []Category{
	CategoryCorporate,
	CategoryWeddings,
	CategoryConcerts,
	CategoryWorkshops,
	CategoryPrivateParties,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DateLayout is the calendar date format of Event.Date.
const DateLayout = "2006-01-02"

// Organizer is embedded in an Event; it is not a separately owned entity.
type Organizer struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Event is a bookable occasion. Events are produced by a catalog source and
// are never mutated by the client afterwards.
// swagger:model Event
type Event struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Category     Category  `json:"category"`
	Price        float64   `json:"price"`
	Image        string    `json:"image"`
	Organizer    Organizer `json:"organizer"`
	Attendees    int       `json:"attendees"`
	MaxAttendees int       `json:"maxAttendees"`
	Featured     bool      `json:"featured,omitempty"`
}

// CalendarDate parses Date. ok is false when Date is not a YYYY-MM-DD date.
func (e Event) CalendarDate() (date time.Time, ok bool) {
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// SpotsLeft returns the remaining capacity.
func (e Event) SpotsLeft() int {
	return e.MaxAttendees - e.Attendees
}

// FillPercent returns attendees as a percentage of capacity (0 when capacity is 0).
func (e Event) FillPercent() float64 {
	if e.MaxAttendees <= 0 {
		return 0
	}
	return float64(e.Attendees) / float64(e.MaxAttendees) * 100
}

// CatalogSource tells whether a catalog came from the remote API or from
// the bundled sample data.
type CatalogSource int

const (
	SourceRemote CatalogSource = iota
	SourceFallback
)

func (s CatalogSource) String() string {
	if s == SourceRemote {
		return "remote"
	}
	return "fallback"
}

// Catalog is one fetched snapshot of events tagged with its provenance.
// Both variants are successful results.
type Catalog struct {
	Events []Event
	Source CatalogSource
}

// FromRemote wraps events obtained from the remote API.
func FromRemote(events []Event) Catalog {
	return Catalog{Events: events, Source: SourceRemote}
}

// FromFallback wraps the sample events used when the remote API is unusable.
func FromFallback(events []Event) Catalog {
	return Catalog{Events: events, Source: SourceFallback}
}

// IsFromAPI reports whether the catalog is authoritative.
func (c Catalog) IsFromAPI() bool {
	return c.Source == SourceRemote
}

// BySlug returns the event with the given slug.
func (c Catalog) BySlug(slug string) (*Event, bool) {
	for i := range c.Events {
		if c.Events[i].Slug == slug {
			e := c.Events[i]
			return &e, true
		}
	}
	return nil, false
}

// RemoteEvent is one record of the remote GET /events response.
type RemoteEvent struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// EventFetcher fetches the raw event list from the remote API (or a test double).
type EventFetcher interface {
	FetchEvents(ctx context.Context) ([]RemoteEvent, error)
}

// CatalogService produces catalogs and single-event lookups.
type CatalogService interface {
	FetchCatalog(ctx context.Context) Catalog
	FetchEventBySlug(ctx context.Context, slug string) (*Event, bool)
}
