package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"eventify/internal/domain"
)

var sampleBookings = []domain.Booking{
	{ID: "1", Title: "Summer Gala 2024", Date: "Jul 15, 2024", Time: "7:00 PM", Location: "The Ritz-Carlton, New York", Image: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=400&q=80", Status: domain.BookingConfirmed, Price: 350, TicketCount: 2},
	{ID: "2", Title: "Tech Innovation Summit", Date: "Aug 22, 2024", Time: "9:00 AM", Location: "Silicon Valley Convention Center", Image: "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?w=400&q=80", Status: domain.BookingConfirmed, Price: 499, TicketCount: 1},
	{ID: "3", Title: "Jazz Night: An Exclusive Evening", Date: "Jul 5, 2024", Time: "8:00 PM", Location: "The Blue Note, Chicago", Image: "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=400&q=80", Status: domain.BookingPending, Price: 150, TicketCount: 2},
	{ID: "4", Title: "Vintage Wine Tasting Experience", Date: "Jun 28, 2024", Time: "6:00 PM", Location: "Château de Lumière, Napa Valley", Image: "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=400&q=80", Status: domain.BookingCancelled, Price: 175, TicketCount: 1},
}

// SampleBookings returns a fresh copy of the dashboard's display bookings.
func SampleBookings() []domain.Booking {
	return slices.Clone(sampleBookings)
}

// BookingBoard holds the dashboard's bookings. Cancellation only changes
// this process's copy; nothing is sent to the remote API.
type BookingBoard struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewBookingBoard returns a board seeded with bookings.
func NewBookingBoard(bookings []domain.Booking) *BookingBoard {
	return &BookingBoard{bookings: slices.Clone(bookings)}
}

// List returns all bookings in display order.
func (b *BookingBoard) List() []domain.Booking {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.bookings)
}

// Split partitions the bookings into active and cancelled ones.
func (b *BookingBoard) Split() (active, cancelled []domain.Booking) {
	active, cancelled = []domain.Booking{}, []domain.Booking{}
	for _, booking := range b.List() {
		if booking.Active() {
			active = append(active, booking)
		} else {
			cancelled = append(cancelled, booking)
		}
	}
	return active, cancelled
}

// Upcoming returns at most limit bookings that are not cancelled.
func (b *BookingBoard) Upcoming(limit int) []domain.Booking {
	active, _ := b.Split()
	if len(active) > limit {
		active = active[:limit]
	}
	return active
}

// Get returns the booking with id.
func (b *BookingBoard) Get(id string) (domain.Booking, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, booking := range b.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return domain.Booking{}, fmt.Errorf("booking %q: %w", id, domain.ErrNotFound)
}

// Cancel marks the booking as cancelled. Cancelling twice is a no-op.
func (b *BookingBoard) Cancel(_ context.Context, id string) (domain.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.bookings {
		if b.bookings[i].ID == id {
			b.bookings[i].Status = domain.BookingCancelled
			return b.bookings[i], nil
		}
	}
	return domain.Booking{}, fmt.Errorf("booking %q: %w", id, domain.ErrNotFound)
}
