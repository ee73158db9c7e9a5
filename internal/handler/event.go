package handler

import (
	"errors"
	"net/http"
	"time"

	"ticketing-service/internal/model"
	"ticketing-service/internal/repository"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type EventStore interface {
	ListUpcoming(now time.Time) ([]model.Event, error)
	GetByID(id uuid.UUID) (*model.Event, error)
}

type EventHandler struct {
	Events EventStore
	Now    func() time.Time
}

func NewEventHandler(events EventStore) *EventHandler {
	return &EventHandler{Events: events, Now: time.Now}
}

// List returns upcoming events for browsing.
//
//	@Summary		List events
//	@Description	Get upcoming events ordered by start time
//	@Tags			events
//	@Produce		json
//	@Success		200	{array}		model.Event
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.ListUpcoming(h.Now())
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load events")
		return
	}
	SendJSON(w, http.StatusOK, events)
}

// Get returns a single event.
//
//	@Summary		Get event
//	@Description	Get one event by its ID
//	@Tags			events
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	model.Event
//	@Failure		400	{string}	string	"Invalid ID format"
//	@Failure		404	{string}	string	"Event not found"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		SendError(w, http.StatusBadRequest, "invalid event ID")
		return
	}

	event, err := h.Events.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load event")
		return
	}

	SendJSON(w, http.StatusOK, event)
}
