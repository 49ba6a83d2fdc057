package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/domain"
)

func bookingIDs(bookings []domain.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestBookingBoard_Split(t *testing.T) {
	board := NewBookingBoard(SampleBookings())

	active, cancelled := board.Split()

	assert.Equal(t, []string{"1", "2", "3"}, bookingIDs(active))
	assert.Equal(t, []string{"4"}, bookingIDs(cancelled))
	assert.Equal(t, []string{"1", "2"}, bookingIDs(board.Upcoming(2)))
	assert.Len(t, board.Upcoming(10), 3)
}

func TestBookingBoard_Get(t *testing.T) {
	board := NewBookingBoard(SampleBookings())

	b, err := board.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovation Summit", b.Title)
	assert.Equal(t, 499.0, b.Total())

	_, err = board.Get("99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingBoard_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantErr    error
		wantActive []string
	}{
		{name: "confirmed booking", id: "1", wantActive: []string{"2", "3"}},
		{name: "pending booking", id: "3", wantActive: []string{"1", "2"}},
		{name: "already cancelled is a no-op", id: "4", wantActive: []string{"1", "2", "3"}},
		{name: "unknown booking", id: "99", wantErr: domain.ErrNotFound, wantActive: []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBookingBoard(SampleBookings())

			b, err := board.Cancel(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.BookingCancelled, b.Status)
			}
			active, _ := board.Split()
			assert.Equal(t, tt.wantActive, bookingIDs(active))
		})
	}
}

func TestBookingBoard_doesNotShareSeed(t *testing.T) {
	seed := SampleBookings()
	board := NewBookingBoard(seed)

	_, err := board.Cancel(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, domain.BookingConfirmed, seed[0].Status)
	assert.Equal(t, domain.BookingConfirmed, SampleBookings()[0].Status)
}
