package subscription

import (
	"testing"
	"time"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
)

func TestResolve(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	sub := func(status model.SubscriptionStatus, end time.Time) *model.Subscription {
		return &model.Subscription{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			PlanID:    uuid.New(),
			Status:    status,
			StartDate: now.AddDate(0, -1, 0),
			EndDate:   end,
		}
	}

	tests := []struct {
		name string
		sub  *model.Subscription
		want State
	}{
		{"no record", nil, StateNone},
		{"active ending tomorrow", sub(model.SubscriptionActive, now.AddDate(0, 0, 1)), StateActive},
		{"active already ended", sub(model.SubscriptionActive, now.AddDate(0, 0, -1)), StateExpired},
		{"active ending exactly now", sub(model.SubscriptionActive, now), StateExpired},
		{"cancelled with five days left", sub(model.SubscriptionCancelled, now.AddDate(0, 0, 5)), StatePendingCancellation},
		{"cancelled and ended", sub(model.SubscriptionCancelled, now.AddDate(0, 0, -2)), StateExpired},
		{"explicitly expired with future end", sub(model.SubscriptionExpired, now.AddDate(0, 1, 0)), StateExpired},
		{"pending purchase", sub(model.SubscriptionPending, now.AddDate(0, 1, 0)), StateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.sub, now); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDoesNotReadClock(t *testing.T) {
	// Two calls with the same injected now must agree even if the
	// wall clock moved between them.
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	sub := &model.Subscription{
		Status:  model.SubscriptionActive,
		EndDate: now.Add(time.Minute),
	}

	first := Resolve(sub, now)
	time.Sleep(time.Millisecond)
	second := Resolve(sub, now)

	if first != second {
		t.Errorf("same inputs resolved differently: %q then %q", first, second)
	}
	if first != StateActive {
		t.Errorf("Resolve() = %q, want %q", first, StateActive)
	}
}
