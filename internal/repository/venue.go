package repository

import (
	"log/slog"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) ListByOwner(ownerID uuid.UUID) ([]model.Venue, error) {
	var venues []model.Venue
	query := "SELECT * FROM venues WHERE owner_id = $1 ORDER BY name"
	if err := r.db.Select(&venues, query, ownerID); err != nil {
		slog.Error("list venues", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return venues, nil
}
