// Package subscription derives display state from stored subscription
// records and caches payment history.
package subscription

import (
	"time"

	"ticketing-service/internal/model"
)

// State is the display state derived from a subscription record and
// the clock. It is never stored.
type State string

const (
	StateNone                State = "none"
	StateActive              State = "active"
	StateExpired             State = "expired"
	StatePendingCancellation State = "pending-cancellation"
)

// Resolve maps a subscription record (or its absence) to a display
// state. The comparison is strict: a subscription ending exactly at
// now is already expired. now is always passed in, never read here.
func Resolve(sub *model.Subscription, now time.Time) State {
	if sub == nil {
		return StateNone
	}

	switch sub.Status {
	case model.SubscriptionActive:
		if sub.EndDate.After(now) {
			return StateActive
		}
		return StateExpired
	case model.SubscriptionCancelled:
		// Cancellation keeps the paid-for period; access only ends
		// when end_date passes.
		if sub.EndDate.After(now) {
			return StatePendingCancellation
		}
		return StateExpired
	case model.SubscriptionExpired:
		return StateExpired
	default:
		// A pending purchase never granted access.
		return StateNone
	}
}
