package subscription

import (
	"errors"
	"testing"
	"time"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
)

func TestPaymentCacheLoadsOnce(t *testing.T) {
	subID := uuid.New()
	paidAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := []model.SubscriptionPayment{
		{ID: uuid.New(), SubscriptionID: subID, AmountCents: 990, Status: model.PaymentPaid, PaidAt: &paidAt},
	}

	var calls int
	cache := NewPaymentCache(func(id uuid.UUID) ([]model.SubscriptionPayment, error) {
		calls++
		if id != subID {
			t.Fatalf("loader called with %s, want %s", id, subID)
		}
		return stored, nil
	})

	first, err := cache.Load(subID)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := cache.Load(subID)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Errorf("repeated loads returned different lists")
	}
}

func TestPaymentCacheFailedLoadCachesNothing(t *testing.T) {
	subID := uuid.New()
	loadErr := errors.New("store unavailable")

	var calls int
	cache := NewPaymentCache(func(uuid.UUID) ([]model.SubscriptionPayment, error) {
		calls++
		if calls == 1 {
			return nil, loadErr
		}
		return []model.SubscriptionPayment{{ID: uuid.New(), SubscriptionID: subID}}, nil
	})

	if _, err := cache.Load(subID); !errors.Is(err, loadErr) {
		t.Fatalf("Load error = %v, want %v", err, loadErr)
	}

	payments, err := cache.Load(subID)
	if err != nil {
		t.Fatalf("retry Load: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("retry returned %d payments, want 1", len(payments))
	}
	if calls != 2 {
		t.Errorf("loader called %d times, want 2", calls)
	}
}

func TestPaymentCacheInvalidate(t *testing.T) {
	subID := uuid.New()
	other := uuid.New()

	var calls int
	cache := NewPaymentCache(func(uuid.UUID) ([]model.SubscriptionPayment, error) {
		calls++
		return []model.SubscriptionPayment{}, nil
	})

	if _, err := cache.Load(subID); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(other); err != nil {
		t.Fatal(err)
	}

	cache.Invalidate(subID)

	// subID re-fetches, other stays cached.
	if _, err := cache.Load(subID); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(other); err != nil {
		t.Fatal(err)
	}

	if calls != 3 {
		t.Errorf("loader called %d times, want 3", calls)
	}
}
