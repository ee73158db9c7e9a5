package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/model"
	"ticketing-service/internal/repository"
	"ticketing-service/internal/subscription"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// SubscriptionStore is the slice of the subscription repository the
// handlers need.
type SubscriptionStore interface {
	Create(sub *model.Subscription) error
	GetByID(id uuid.UUID) (*model.Subscription, error)
	CurrentByUser(userID uuid.UUID) (*model.Subscription, error)
	Cancel(id uuid.UUID) error
	ListPlans() ([]model.SubscriptionPlan, error)
	GetPlan(id uuid.UUID) (*model.SubscriptionPlan, error)
	CreatePayment(p *model.SubscriptionPayment) error
}

type SubscriptionHandler struct {
	Subs     SubscriptionStore
	Payments *subscription.PaymentCache
	Now      func() time.Time
}

func NewSubscriptionHandler(subs SubscriptionStore, payments *subscription.PaymentCache) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: subs, Payments: payments, Now: time.Now}
}

// CurrentResponse pairs the stored record with its derived display
// state so clients never re-derive it.
type CurrentResponse struct {
	Subscription *model.Subscription `json:"subscription"`
	State        subscription.State  `json:"state"`
}

// GetCurrent returns the caller's current subscription and state.
//
//	@Summary		Get current subscription
//	@Description	Get the caller's subscription with its derived display state; absence is not an error
//	@Tags			subscriptions
//	@Produce		json
//	@Success		200	{object}	CurrentResponse
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/subscriptions/current [get]
func (h *SubscriptionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	sub, err := h.Subs.CurrentByUser(identity.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		SendJSON(w, http.StatusOK, CurrentResponse{State: subscription.StateNone})
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load subscription")
		return
	}

	SendJSON(w, http.StatusOK, CurrentResponse{
		Subscription: sub,
		State:        subscription.Resolve(sub, h.Now()),
	})
}

// ListPlans lists the available subscription plans.
//
//	@Summary		List plans
//	@Description	Get all subscription plans ordered by price
//	@Tags			subscriptions
//	@Produce		json
//	@Success		200	{array}		model.SubscriptionPlan
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/subscriptions/plans [get]
func (h *SubscriptionHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Subs.ListPlans()
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load plans")
		return
	}
	SendJSON(w, http.StatusOK, plans)
}

// Purchase creates an active subscription for the caller and records
// its first payment.
//
//	@Summary		Purchase a subscription
//	@Description	Subscribe the caller to a plan; the billing period sets the end date
//	@Tags			subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PurchaseSubscriptionRequest	true	"Plan to subscribe to"
//	@Success		201	{object}	model.Subscription
//	@Failure		400	{string}	string	"Bad request"
//	@Failure		404	{string}	string	"Plan not found"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/subscriptions [post]
func (h *SubscriptionHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	var input PurchaseSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	planID, err := uuid.Parse(input.PlanID)
	if err != nil {
		SendError(w, http.StatusBadRequest, "plan_id must be a valid UUID")
		return
	}

	plan, err := h.Subs.GetPlan(planID)
	if errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load plan")
		return
	}

	now := h.Now()
	end := now.AddDate(0, 1, 0)
	if plan.BillingPeriod == model.BillingYearly {
		end = now.AddDate(1, 0, 0)
	}

	sub := &model.Subscription{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		PlanID:    plan.ID,
		Status:    model.SubscriptionActive,
		StartDate: now,
		EndDate:   end,
		Metadata:  input.Metadata,
	}

	if err := h.Subs.Create(sub); err != nil {
		SendError(w, http.StatusInternalServerError, "could not save subscription")
		return
	}

	paidAt := now
	payment := &model.SubscriptionPayment{
		ID:             uuid.New(),
		SubscriptionID: sub.ID,
		AmountCents:    plan.PriceCents,
		Status:         model.PaymentPaid,
		PaidAt:         &paidAt,
	}
	if err := h.Subs.CreatePayment(payment); err != nil {
		SendError(w, http.StatusInternalServerError, "could not record payment")
		return
	}

	saved, err := h.Subs.GetByID(sub.ID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load saved subscription")
		return
	}

	SendJSON(w, http.StatusCreated, saved)
}

// Cancel marks the caller's current subscription cancelled. The end
// date is untouched, so access continues until it passes. The stored
// row is only returned after the update succeeds; nothing is mutated
// optimistically.
//
//	@Summary		Cancel subscription
//	@Description	Mark the caller's subscription cancelled, keeping the grace period
//	@Tags			subscriptions
//	@Produce		json
//	@Success		200	{object}	CurrentResponse
//	@Failure		404	{string}	string	"No subscription"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/subscriptions/cancel [post]
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	sub, err := h.Subs.CurrentByUser(identity.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusNotFound, "no subscription to cancel")
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load subscription")
		return
	}

	if err := h.Subs.Cancel(sub.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			SendError(w, http.StatusConflict, "subscription cannot be cancelled")
			return
		}
		SendError(w, http.StatusInternalServerError, "could not cancel subscription")
		return
	}

	h.Payments.Invalidate(sub.ID)

	updated, err := h.Subs.GetByID(sub.ID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load updated subscription")
		return
	}

	SendJSON(w, http.StatusOK, CurrentResponse{
		Subscription: updated,
		State:        subscription.Resolve(updated, h.Now()),
	})
}

// ListPayments returns the payment history of one of the caller's
// subscriptions, served from the fetch-once cache.
//
//	@Summary		List subscription payments
//	@Description	Get the payment history for a subscription owned by the caller
//	@Tags			subscriptions
//	@Produce		json
//	@Param			id	path		string	true	"Subscription ID"
//	@Success		200	{array}		model.SubscriptionPayment
//	@Failure		400	{string}	string	"Invalid ID format"
//	@Failure		404	{string}	string	"Subscription not found"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/subscriptions/{id}/payments [get]
func (h *SubscriptionHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		SendError(w, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	sub, err := h.Subs.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusNotFound, "subscription not found")
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load subscription")
		return
	}
	if sub.UserID != identity.UserID {
		SendError(w, http.StatusNotFound, "subscription not found")
		return
	}

	payments, err := h.Payments.Load(id)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load payments")
		return
	}

	SendJSON(w, http.StatusOK, payments)
}

// PurchaseSubscriptionRequest is the request body for purchasing a
// subscription.
//
//	@Description	Subscription purchase request
type PurchaseSubscriptionRequest struct {
	PlanID   string         `json:"plan_id" example:"60601fee-2bf1-4721-ae6f-7636e79a0cba"`
	Metadata model.Metadata `json:"metadata,omitempty"`
}
