package repository

import (
	"log/slog"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ListByOwner returns all bookings across the owner's venues, ordered
// by start time. Status filtering is left to the schedule view.
func (r *BookingRepository) ListByOwner(ownerID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	query := `
		SELECT b.* FROM bookings b
		JOIN venues v ON v.id = b.venue_id
		WHERE v.owner_id = $1
		ORDER BY b.start_time
	`
	if err := r.db.Select(&bookings, query, ownerID); err != nil {
		slog.Error("list bookings", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return bookings, nil
}
