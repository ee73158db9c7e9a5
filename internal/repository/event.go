package repository

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListUpcoming(now time.Time) ([]model.Event, error) {
	var events []model.Event
	query := "SELECT * FROM events WHERE starts_at > $1 ORDER BY starts_at"
	if err := r.db.Select(&events, query, now); err != nil {
		slog.Error("list events", "error", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetByID(id uuid.UUID) (*model.Event, error) {
	var event model.Event
	query := "SELECT * FROM events WHERE id = $1"
	err := r.db.Get(&event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("get event", "id", id, "error", err)
		return nil, err
	}
	return &event, nil
}
