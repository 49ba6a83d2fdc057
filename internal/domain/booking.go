package domain

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a display-only view of a ticket reservation shown on the dashboard.
// swagger:model Booking
type Booking struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Image       string        `json:"image"`
	Status      BookingStatus `json:"status"`
	Price       float64       `json:"price"`
	TicketCount int           `json:"ticketCount"`
}

// Total returns the amount paid for all tickets.
func (b Booking) Total() float64 {
	return b.Price * float64(b.TicketCount)
}

// Active reports whether the booking has not been cancelled.
func (b Booking) Active() bool {
	return b.Status != BookingCancelled
}
