package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eventify/internal/domain"
)

const defaultEventTime = "19:00"

var remoteEventImages = []string{
	"https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
	"https://images.unsplash.com/photo-1505373877841-8d25f7d46678?w=800&q=80",
	"https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=800&q=80",
	"https://images.unsplash.com/photo-1519741497674-611481863552?w=800&q=80",
	"https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=800&q=80",
}

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\x{FEFF}\p{Z}]+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
)

type catalogService struct {
	fetcher        domain.EventFetcher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewCatalogService returns a CatalogService that reads from fetcher and
// falls back to the sample dataset whenever the fetch fails.
func NewCatalogService(fetcher domain.EventFetcher, logger *slog.Logger, timeout time.Duration) domain.CatalogService {
	return &catalogService{
		fetcher:        fetcher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *catalogService) FetchCatalog(ctx context.Context) domain.Catalog {
	if s.contextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.contextTimeout)
		defer cancel()
	}

	records, err := s.fetcher.FetchEvents(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "events api unavailable, using sample events", "err", err)
		return domain.FromFallback(SampleEvents())
	}

	events := make([]domain.Event, len(records))
	for i, rec := range records {
		events[i] = TransformRemoteEvent(rec, i)
	}
	return domain.FromRemote(events)
}

func (s *catalogService) FetchEventBySlug(ctx context.Context, slug string) (*domain.Event, bool) {
	return s.FetchCatalog(ctx).BySlug(slug)
}

// TransformRemoteEvent maps the remote record at position index onto an Event.
func TransformRemoteEvent(rec domain.RemoteEvent, index int) domain.Event {
	return domain.Event{
		ID:          strconv.Itoa(index + 1),
		Slug:        Slugify(rec.Title),
		Title:       rec.Title,
		Date:        rec.Date,
		Time:        defaultEventTime,
		Description: rec.Description,
		Location:    rec.Location,
		Category:    domain.Categories[index%len(domain.Categories)],
		Price:       float64(99 + index*50),
		Image:       remoteEventImages[index%len(remoteEventImages)],
		Organizer: domain.Organizer{
			Name:   "Event Organizer",
			Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=EO%d", index),
		},
		Attendees:    50 + index*30,
		MaxAttendees: 200 + index*50,
		Featured:     index < 4,
	}
}

// Slugify lowercases title, turns each whitespace run into one hyphen and
// drops every character outside [a-z0-9-].
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}

// FeaturedEvents returns the featured events of a catalog in catalog order.
func FeaturedEvents(events []domain.Event) []domain.Event {
	out := []domain.Event{}
	for _, e := range events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}
