package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OrganizerID uuid.UUID `json:"organizer_id" db:"organizer_id"`
	VenueID     uuid.UUID `json:"venue_id" db:"venue_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StartsAt    time.Time `json:"starts_at" db:"starts_at"`
	PriceCents  int64     `json:"price_cents" db:"price_cents"`
	Capacity    int       `json:"capacity" db:"capacity"`
}

type TicketStatus string

const (
	TicketValid     TicketStatus = "valid"
	TicketCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	EventID     uuid.UUID    `json:"event_id" db:"event_id"`
	BuyerID     uuid.UUID    `json:"buyer_id" db:"buyer_id"`
	PriceCents  int64        `json:"price_cents" db:"price_cents"`
	Status      TicketStatus `json:"status" db:"status"`
	PurchasedAt time.Time    `json:"purchased_at" db:"purchased_at"`
}

// SalesReportRow aggregates ticket sales for one event.
type SalesReportRow struct {
	EventID      uuid.UUID `json:"event_id" db:"event_id"`
	Title        string    `json:"title" db:"title"`
	TicketsSold  int       `json:"tickets_sold" db:"tickets_sold"`
	RevenueCents int64     `json:"revenue_cents" db:"revenue_cents"`
}
