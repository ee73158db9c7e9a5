package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a rental of a venue for a time interval. A booking may
// span several days; scheduling views key it by its start day.
type Booking struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	VenueID    uuid.UUID     `json:"venue_id" db:"venue_id"`
	CustomerID uuid.UUID     `json:"customer_id" db:"customer_id"`
	StartTime  time.Time     `json:"start_time" db:"start_time"`
	EndTime    time.Time     `json:"end_time" db:"end_time"`
	Status     BookingStatus `json:"status" db:"status"`
}
