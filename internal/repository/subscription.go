package repository

import (
	"database/sql"
	"errors"
	"log/slog"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SubscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, user_id, plan_id, status, start_date, end_date, metadata)
		VALUES (:id, :user_id, :plan_id, :status, :start_date, :end_date, :metadata)
	`

	_, err := r.db.NamedExec(query, sub)
	if err != nil {
		slog.Error("insert subscription", "error", err)
		return err
	}

	return nil
}

func (r *SubscriptionRepository) GetByID(id uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	query := "SELECT * FROM subscriptions WHERE id = $1"
	err := r.db.Get(&sub, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("get subscription", "id", id, "error", err)
		return nil, err
	}
	return &sub, nil
}

// CurrentByUser returns the user's most recent subscription, or
// ErrNotFound when the user never had one. Expired rows are still
// returned; display-state derivation is the caller's concern.
func (r *SubscriptionRepository) CurrentByUser(userID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	query := `
		SELECT * FROM subscriptions
		WHERE user_id = $1
		ORDER BY end_date DESC
		LIMIT 1
	`
	err := r.db.Get(&sub, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("get current subscription", "user_id", userID, "error", err)
		return nil, err
	}
	return &sub, nil
}

// Cancel flips the subscription to cancelled without touching end_date,
// leaving the grace period intact. Cancelling an already cancelled
// subscription is a no-op success.
func (r *SubscriptionRepository) Cancel(id uuid.UUID) error {
	query := `
		UPDATE subscriptions
		SET status = 'cancelled'
		WHERE id = $1 AND status IN ('active', 'cancelled')
	`
	result, err := r.db.Exec(query, id)
	if err != nil {
		slog.Error("cancel subscription", "id", id, "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SubscriptionRepository) ListPlans() ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	query := "SELECT * FROM subscription_plans ORDER BY price_cents"
	if err := r.db.Select(&plans, query); err != nil {
		slog.Error("list plans", "error", err)
		return nil, err
	}
	return plans, nil
}

func (r *SubscriptionRepository) GetPlan(id uuid.UUID) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	query := "SELECT * FROM subscription_plans WHERE id = $1"
	err := r.db.Get(&plan, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("get plan", "id", id, "error", err)
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepository) CreatePayment(p *model.SubscriptionPayment) error {
	query := `
		INSERT INTO subscription_payments (id, subscription_id, amount_cents, status, paid_at)
		VALUES (:id, :subscription_id, :amount_cents, :status, :paid_at)
	`
	if _, err := r.db.NamedExec(query, p); err != nil {
		slog.Error("insert payment", "subscription_id", p.SubscriptionID, "error", err)
		return err
	}
	return nil
}

// Payments returns a subscription's payments newest first; callers
// rely on this ordering and do not re-sort.
func (r *SubscriptionRepository) Payments(subscriptionID uuid.UUID) ([]model.SubscriptionPayment, error) {
	var payments []model.SubscriptionPayment
	query := `
		SELECT * FROM subscription_payments
		WHERE subscription_id = $1
		ORDER BY paid_at DESC NULLS LAST
	`
	if err := r.db.Select(&payments, query, subscriptionID); err != nil {
		slog.Error("list payments", "subscription_id", subscriptionID, "error", err)
		return nil, err
	}
	return payments, nil
}
