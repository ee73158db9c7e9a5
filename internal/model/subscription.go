package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// Metadata is an opaque key-value bag attached to a subscription,
// stored as a JSONB column.
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("metadata: cannot scan %T", src)
}

// Subscription rows are never deleted; cancellation and expiry only
// change the status so that payment history stays reachable.
type Subscription struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	UserID    uuid.UUID          `json:"user_id" db:"user_id"`
	PlanID    uuid.UUID          `json:"plan_id" db:"plan_id"`
	Status    SubscriptionStatus `json:"status" db:"status"`
	StartDate time.Time          `json:"start_date" db:"start_date"`
	EndDate   time.Time          `json:"end_date" db:"end_date"`
	Metadata  Metadata           `json:"metadata,omitempty" db:"metadata"`
}

type SubscriptionPlan struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Description   string         `json:"description" db:"description"`
	PriceCents    int64          `json:"price_cents" db:"price_cents"`
	BillingPeriod BillingPeriod  `json:"billing_period" db:"billing_period"`
	Features      pq.StringArray `json:"features" db:"features"`
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

type SubscriptionPayment struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	SubscriptionID uuid.UUID     `json:"subscription_id" db:"subscription_id"`
	AmountCents    int64         `json:"amount_cents" db:"amount_cents"`
	Status         PaymentStatus `json:"status" db:"status"`
	PaidAt         *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
}
