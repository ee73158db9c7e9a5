package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/model"
	"ticketing-service/internal/repository"

	"github.com/google/uuid"
)

type fakeEventStore struct {
	events map[uuid.UUID]*model.Event
}

func (s *fakeEventStore) ListUpcoming(now time.Time) ([]model.Event, error) {
	var out []model.Event
	for _, e := range s.events {
		if e.StartsAt.After(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeEventStore) GetByID(id uuid.UUID) (*model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

type fakeTicketStore struct {
	tickets []model.Ticket
}

func (s *fakeTicketStore) Create(t *model.Ticket) error {
	s.tickets = append(s.tickets, *t)
	return nil
}

func (s *fakeTicketStore) CountByEvent(eventID uuid.UUID) (int, error) {
	count := 0
	for _, t := range s.tickets {
		if t.EventID == eventID && t.Status == model.TicketValid {
			count++
		}
	}
	return count, nil
}

func (s *fakeTicketStore) ListByBuyer(buyerID uuid.UUID) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, t := range s.tickets {
		if t.BuyerID == buyerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTicketStore) SalesByOrganizer(uuid.UUID) ([]model.SalesReportRow, error) {
	return nil, nil
}

func TestPurchaseTicket(t *testing.T) {
	event := &model.Event{
		ID:         uuid.New(),
		VenueID:    uuid.New(),
		Title:      "Spring Gala",
		StartsAt:   time.Now().AddDate(0, 1, 0),
		PriceCents: 4500,
		Capacity:   2,
	}
	events := &fakeEventStore{events: map[uuid.UUID]*model.Event{event.ID: event}}
	tickets := &fakeTicketStore{}

	h := NewTicketHandler(tickets, events)
	buyerID := uuid.New()

	purchase := func() *httptest.ResponseRecorder {
		body := `{"event_id":"` + event.ID.String() + `"}`
		req := httptest.NewRequest("POST", "/api/tickets", strings.NewReader(body))
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: buyerID, Role: model.RoleCustomer}))
		rec := httptest.NewRecorder()
		h.Purchase(rec, req)
		return rec
	}

	rec := purchase()
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var body struct {
		Success bool         `json:"success"`
		Data    model.Ticket `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.PriceCents != event.PriceCents {
		t.Errorf("ticket price = %d, want %d", body.Data.PriceCents, event.PriceCents)
	}
	if body.Data.Status != model.TicketValid {
		t.Errorf("ticket status = %q, want valid", body.Data.Status)
	}

	// Second ticket fills the event; the third is refused.
	if rec := purchase(); rec.Code != http.StatusCreated {
		t.Fatalf("second purchase status = %d", rec.Code)
	}
	if rec := purchase(); rec.Code != http.StatusConflict {
		t.Errorf("sold-out purchase status = %d, want 409", rec.Code)
	}
}

func TestPurchaseTicketUnknownEvent(t *testing.T) {
	h := NewTicketHandler(&fakeTicketStore{}, &fakeEventStore{events: map[uuid.UUID]*model.Event{}})

	body := `{"event_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest("POST", "/api/tickets", strings.NewReader(body))
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: uuid.New(), Role: model.RoleCustomer}))
	rec := httptest.NewRecorder()
	h.Purchase(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
