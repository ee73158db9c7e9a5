package handler

import (
	"net/http"
	"time"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/model"
	"ticketing-service/internal/schedule"

	"github.com/google/uuid"
)

type BookingStore interface {
	ListByOwner(ownerID uuid.UUID) ([]model.Booking, error)
}

type RentalHandler struct {
	Bookings BookingStore
	Now      func() time.Time
}

func NewRentalHandler(bookings BookingStore) *RentalHandler {
	return &RentalHandler{Bookings: bookings, Now: time.Now}
}

// List returns all bookings across the caller's venues.
//
//	@Summary		List rentals
//	@Description	Get all bookings for the caller's venues ordered by start time
//	@Tags			rentals
//	@Produce		json
//	@Success		200	{array}		model.Booking
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/rentals [get]
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	bookings, err := h.Bookings.ListByOwner(identity.UserID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load bookings")
		return
	}
	SendJSON(w, http.StatusOK, bookings)
}

// ScheduleDay is one calendar day of the weekly grid.
type ScheduleDay struct {
	Date     string          `json:"date"`
	Bookings []model.Booking `json:"bookings"`
}

// ScheduleResponse is the bucketed Monday-to-Sunday schedule view.
type ScheduleResponse struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []ScheduleDay `json:"days"`
}

// Schedule returns the caller's confirmed bookings bucketed into the
// seven days of the requested week.
//
//	@Summary		Weekly schedule
//	@Description	Get confirmed bookings bucketed by day for the week containing week_of
//	@Tags			rentals
//	@Produce		json
//	@Param			week_of	query		string	false	"Any date inside the wanted week (YYYY-MM-DD, default today)"
//	@Param			venue	query		string	false	"Venue ID filter, or 'all' (default)"
//	@Success		200	{object}	ScheduleResponse
//	@Failure		400	{string}	string	"Bad request"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/rentals/schedule [get]
func (h *RentalHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		SendError(w, http.StatusUnauthorized, "please log in")
		return
	}

	ref := h.Now()
	if weekOf := r.URL.Query().Get("week_of"); weekOf != "" {
		parsed, err := time.ParseInLocation("2006-01-02", weekOf, ref.Location())
		if err != nil {
			SendError(w, http.StatusBadRequest, "week_of must be in YYYY-MM-DD format")
			return
		}
		ref = parsed
	}

	venueFilter := r.URL.Query().Get("venue")
	if venueFilter == "" {
		venueFilter = schedule.VenueAll
	}

	bookings, err := h.Bookings.ListByOwner(identity.UserID)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load bookings")
		return
	}

	week := schedule.WeekOf(ref)
	buckets := schedule.BucketByDay(bookings, week, venueFilter)
	days := week.Days()

	resp := ScheduleResponse{
		WeekStart: week.Start.Format("2006-01-02"),
		WeekEnd:   week.End().Format("2006-01-02"),
		Days:      make([]ScheduleDay, 0, schedule.DaysPerWeek),
	}
	for i, day := range days {
		resp.Days = append(resp.Days, ScheduleDay{
			Date:     day.Format("2006-01-02"),
			Bookings: buckets[i],
		})
	}

	SendJSON(w, http.StatusOK, resp)
}
