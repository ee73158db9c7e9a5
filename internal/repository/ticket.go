package repository

import (
	"log/slog"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TicketRepository struct {
	db *sqlx.DB
}

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(t *model.Ticket) error {
	query := `
		INSERT INTO tickets (id, event_id, buyer_id, price_cents, status, purchased_at)
		VALUES (:id, :event_id, :buyer_id, :price_cents, :status, :purchased_at)
	`
	if _, err := r.db.NamedExec(query, t); err != nil {
		slog.Error("insert ticket", "event_id", t.EventID, "error", err)
		return err
	}
	return nil
}

func (r *TicketRepository) CountByEvent(eventID uuid.UUID) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM tickets WHERE event_id = $1 AND status = 'valid'"
	if err := r.db.Get(&count, query, eventID); err != nil {
		slog.Error("count tickets", "event_id", eventID, "error", err)
		return 0, err
	}
	return count, nil
}

func (r *TicketRepository) ListByBuyer(buyerID uuid.UUID) ([]model.Ticket, error) {
	var tickets []model.Ticket
	query := "SELECT * FROM tickets WHERE buyer_id = $1 ORDER BY purchased_at DESC"
	if err := r.db.Select(&tickets, query, buyerID); err != nil {
		slog.Error("list tickets", "buyer_id", buyerID, "error", err)
		return nil, err
	}
	return tickets, nil
}

// SalesByOrganizer rolls up valid ticket sales per event for all of the
// organizer's events, including events with zero sales.
func (r *TicketRepository) SalesByOrganizer(organizerID uuid.UUID) ([]model.SalesReportRow, error) {
	var rows []model.SalesReportRow
	query := `
		SELECT e.id AS event_id,
		       e.title AS title,
		       COUNT(t.id) AS tickets_sold,
		       COALESCE(SUM(t.price_cents), 0) AS revenue_cents
		FROM events e
		LEFT JOIN tickets t ON t.event_id = e.id AND t.status = 'valid'
		WHERE e.organizer_id = $1
		GROUP BY e.id, e.title, e.starts_at
		ORDER BY e.starts_at
	`
	if err := r.db.Select(&rows, query, organizerID); err != nil {
		slog.Error("sales report", "organizer_id", organizerID, "error", err)
		return nil, err
	}
	return rows, nil
}
