package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventify/internal/delivery/http/helpers"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/domain"
	"eventify/internal/services"
)

const bookingsViewPath = "/dashboard/bookings"

// EventListResponse is the body of GET /api/events.
// swagger:model EventListResponse
type EventListResponse struct {
	Events           []domain.Event `json:"events"`
	Count            int            `json:"count"`
	IsFromAPI        bool           `json:"is_from_api"`
	HasActiveFilters bool           `json:"has_active_filters"`
}

// FeaturedEventsResponse is the body of GET /api/events/featured.
type FeaturedEventsResponse struct {
	Events    []domain.Event `json:"events"`
	IsFromAPI bool           `json:"is_from_api"`
}

// EventDetailResponse is the body of GET /api/events/{slug}.
// swagger:model EventDetailResponse
type EventDetailResponse struct {
	Event     domain.Event   `json:"event"`
	Related   []domain.Event `json:"related"`
	SpotsLeft int            `json:"spots_left"`
	IsFromAPI bool           `json:"is_from_api"`
}

// RedirectResponse tells the client which view to show next.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

type EventsController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
	Session middleware.SessionGuard
}

func NewEventsController(logger *slog.Logger, catalog domain.CatalogService, session middleware.SessionGuard) *EventsController {
	return &EventsController{
		Logger:  logger,
		Catalog: catalog,
		Session: session,
	}
}

// parseEventQuery reads q, category and sort. Missing values take the defaults of the events view.
func parseEventQuery(r *http.Request) (domain.EventQuery, []string) {
	values := r.URL.Query()
	q := domain.DefaultQuery()
	q.SearchText = strings.TrimSpace(values.Get("q"))

	var errs []string
	if c := strings.TrimSpace(values.Get("category")); c != "" {
		category := domain.Category(c)
		if category != domain.CategoryAll && !category.Valid() {
			errs = append(errs, "unknown category "+c)
		}
		q.Category = category
	}
	if s := values.Get("sort"); s != "" {
		q.SortKey = domain.ParseSortKey(s)
	}
	return q, errs
}

// ListEvents godoc
// @Summary List events
// @Description Search, filter by category and sort the catalog. Falls back to sample events when the remote API is unavailable.
// @Tags events
// @Produce json
// @Param q query string false "Case-insensitive text matched against title, description and location"
// @Param category query string false "Category name or \"all\""
// @Param sort query string false "date, price-low, price-high or popularity"
// @Success 200 {object} helpers.APIResponse{data=EventListResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/events [get]
func (c *EventsController) ListEvents(w http.ResponseWriter, r *http.Request) {
	query, errs := parseEventQuery(r)
	if len(errs) > 0 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, strings.Join(errs, "; "))
		return
	}
	catalog := c.Catalog.FetchCatalog(r.Context())
	events := services.QueryEvents(catalog.Events, query)
	h.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:           events,
		Count:            len(events),
		IsFromAPI:        catalog.IsFromAPI(),
		HasActiveFilters: query.HasActiveFilters(),
	})
}

// FeaturedEvents godoc
// @Summary Featured events
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=FeaturedEventsResponse}
// @Router /api/events/featured [get]
func (c *EventsController) FeaturedEvents(w http.ResponseWriter, r *http.Request) {
	catalog := c.Catalog.FetchCatalog(r.Context())
	h.WriteJSONSuccess(w, http.StatusOK, FeaturedEventsResponse{
		Events:    services.FeaturedEvents(catalog.Events),
		IsFromAPI: catalog.IsFromAPI(),
	})
}

// GetEvent godoc
// @Summary Event details
// @Description Returns the event, up to three related events of the same category and the remaining capacity.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse{data=EventDetailResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{slug} [get]
func (c *EventsController) GetEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	catalog := c.Catalog.FetchCatalog(r.Context())
	event, ok := catalog.BySlug(slug)
	if !ok {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, EventDetailResponse{
		Event:     *event,
		Related:   services.RelatedEvents(*event, catalog.Events, services.DefaultRelatedLimit),
		SpotsLeft: event.SpotsLeft(),
		IsFromAPI: catalog.IsFromAPI(),
	})
}

// BookEvent godoc
// @Summary Book an event
// @Description Simulated booking. Anonymous visitors are sent to the login page and return to the event afterwards.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse{data=RedirectResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, error.redirect: /login"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{slug}/book [post]
func (c *EventsController) BookEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, ok := c.Catalog.FetchEventBySlug(r.Context(), slug)
	if !ok {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		return
	}
	session := c.Session.Snapshot()
	if !session.IsAuthenticated {
		back := "/events/" + event.Slug
		c.Session.SetReturnURL(&back)
		h.WriteLoginRequired(w)
		return
	}
	c.Logger.InfoContext(r.Context(), "booking confirmed", "event", event.Slug, "user", session.User.ID)
	h.WriteJSONSuccess(w, http.StatusOK, RedirectResponse{Redirect: bookingsViewPath})
}
