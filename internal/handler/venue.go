package handler

import (
	"net/http"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/model"

	"github.com/google/uuid"
)

type VenueStore interface {
	ListByOwner(ownerID uuid.UUID) ([]model.Venue, error)
}

type VenueHandler struct {
	Venues VenueStore
}

func NewVenueHandler(venues VenueStore) *VenueHandler {
	return &VenueHandler{Venues: venues}
}

// List returns the calling owner's venues.
//
//	@Summary		List venues
//	@Description	Get the venues owned by the caller
//	@Tags			venues
//	@Produce		json
//	@Success		200	{array}		model.Venue
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/venues [get]
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	venues, err := h.Venues.ListByOwner(identity.UserID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load venues")
		return
	}
	SendJSON(w, http.StatusOK, venues)
}
