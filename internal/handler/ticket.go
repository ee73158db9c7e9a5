package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/model"
	"ticketing-service/internal/repository"

	"github.com/google/uuid"
)

type TicketStore interface {
	Create(t *model.Ticket) error
	CountByEvent(eventID uuid.UUID) (int, error)
	ListByBuyer(buyerID uuid.UUID) ([]model.Ticket, error)
	SalesByOrganizer(organizerID uuid.UUID) ([]model.SalesReportRow, error)
}

type TicketHandler struct {
	Tickets TicketStore
	Events  EventStore
	Now     func() time.Time
}

func NewTicketHandler(tickets TicketStore, events EventStore) *TicketHandler {
	return &TicketHandler{Tickets: tickets, Events: events, Now: time.Now}
}

// Purchase buys a ticket for an event at the event's current price.
//
//	@Summary		Purchase a ticket
//	@Description	Buy one ticket for an event; fails when the event is sold out
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PurchaseTicketRequest	true	"Event to buy a ticket for"
//	@Success		201	{object}	model.Ticket
//	@Failure		400	{string}	string	"Bad request"
//	@Failure		404	{string}	string	"Event not found"
//	@Failure		409	{string}	string	"Sold out"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/tickets [post]
func (h *TicketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	var input PurchaseTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eventID, err := uuid.Parse(input.EventID)
	if err != nil {
		SendError(w, http.StatusBadRequest, "event_id must be a valid UUID")
		return
	}

	event, err := h.Events.GetByID(eventID)
	if errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load event")
		return
	}

	sold, err := h.Tickets.CountByEvent(event.ID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not check availability")
		return
	}
	if sold >= event.Capacity {
		SendError(w, http.StatusConflict, "event is sold out")
		return
	}

	ticket := &model.Ticket{
		ID:          uuid.New(),
		EventID:     event.ID,
		BuyerID:     identity.UserID,
		PriceCents:  event.PriceCents,
		Status:      model.TicketValid,
		PurchasedAt: h.Now(),
	}

	if err := h.Tickets.Create(ticket); err != nil {
		SendError(w, http.StatusInternalServerError, "could not save ticket")
		return
	}

	SendJSON(w, http.StatusCreated, ticket)
}

// List returns the caller's tickets, newest first.
//
//	@Summary		List my tickets
//	@Description	Get the caller's purchased tickets
//	@Tags			tickets
//	@Produce		json
//	@Success		200	{array}		model.Ticket
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/tickets [get]
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	tickets, err := h.Tickets.ListByBuyer(identity.UserID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load tickets")
		return
	}
	SendJSON(w, http.StatusOK, tickets)
}

// SalesReport returns per-event ticket sales for the organizer.
//
//	@Summary		Sales report
//	@Description	Get tickets sold and revenue per event for the calling organizer
//	@Tags			reports
//	@Produce		json
//	@Success		200	{array}		model.SalesReportRow
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/reports/sales [get]
func (h *TicketHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	rows, err := h.Tickets.SalesByOrganizer(identity.UserID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not build report")
		return
	}
	SendJSON(w, http.StatusOK, rows)
}

// PurchaseTicketRequest is the request body for buying a ticket.
//
//	@Description	Ticket purchase request
type PurchaseTicketRequest struct {
	EventID string `json:"event_id" example:"60601fee-2bf1-4721-ae6f-7636e79a0cba"`
}
