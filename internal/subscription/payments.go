package subscription

import (
	"sync"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
)

// PaymentLoader fetches a subscription's payments from the store.
type PaymentLoader func(subscriptionID uuid.UUID) ([]model.SubscriptionPayment, error)

// PaymentCache serves payment history fetched at most once per
// subscription. A failed load caches nothing, so an earlier
// successful list survives a later failed refresh attempt.
type PaymentCache struct {
	mu     sync.Mutex
	load   PaymentLoader
	loaded map[uuid.UUID][]model.SubscriptionPayment
}

func NewPaymentCache(load PaymentLoader) *PaymentCache {
	return &PaymentCache{
		load:   load,
		loaded: make(map[uuid.UUID][]model.SubscriptionPayment),
	}
}

// Load returns the cached list when present, fetching it otherwise.
func (c *PaymentCache) Load(subscriptionID uuid.UUID) ([]model.SubscriptionPayment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if payments, ok := c.loaded[subscriptionID]; ok {
		return payments, nil
	}

	payments, err := c.load(subscriptionID)
	if err != nil {
		return nil, err
	}
	c.loaded[subscriptionID] = payments
	return payments, nil
}

// Invalidate drops one subscription's cached list so the next Load
// re-fetches. Called after a cancellation mutates the subscription.
func (c *PaymentCache) Invalidate(subscriptionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.loaded, subscriptionID)
}
