package schedule

import (
	"testing"
	"time"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestWeekOf(t *testing.T) {
	monday := date(2026, 3, 16, 0, 0)

	tests := []struct {
		name string
		ref  time.Time
	}{
		{"monday itself", date(2026, 3, 16, 9, 0)},
		{"midweek", date(2026, 3, 18, 23, 0)},
		{"sunday", date(2026, 3, 22, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := WeekOf(tt.ref)
			if !week.Start.Equal(monday) {
				t.Errorf("WeekOf(%v).Start = %v, want %v", tt.ref, week.Start, monday)
			}
			if !week.End().Equal(date(2026, 3, 22, 0, 0)) {
				t.Errorf("End() = %v, want Sunday", week.End())
			}
		})
	}
}

func TestWeekNavigation(t *testing.T) {
	week := WeekOf(date(2026, 3, 18, 12, 0))

	if next := week.Next(); !next.Start.Equal(date(2026, 3, 23, 0, 0)) {
		t.Errorf("Next().Start = %v", next.Start)
	}
	if prev := week.Previous(); !prev.Start.Equal(date(2026, 3, 9, 0, 0)) {
		t.Errorf("Previous().Start = %v", prev.Start)
	}
	if back := week.Next().Previous(); !back.Start.Equal(week.Start) {
		t.Errorf("Next().Previous() drifted to %v", back.Start)
	}
}

func TestBucketByDay(t *testing.T) {
	week := WeekOf(date(2026, 3, 16, 0, 0))
	venue1 := uuid.New()
	venue2 := uuid.New()

	booking := func(venue uuid.UUID, start time.Time, status model.BookingStatus) model.Booking {
		return model.Booking{
			ID:         uuid.New(),
			VenueID:    venue,
			CustomerID: uuid.New(),
			StartTime:  start,
			EndTime:    start.Add(2 * time.Hour),
			Status:     status,
		}
	}

	mondayConfirmed := booking(venue1, date(2026, 3, 16, 10, 0), model.BookingConfirmed)
	mondayPending := booking(venue2, date(2026, 3, 16, 14, 0), model.BookingPending)
	mondayLater := booking(venue1, date(2026, 3, 16, 18, 0), model.BookingConfirmed)
	thursdayOther := booking(venue2, date(2026, 3, 19, 9, 0), model.BookingConfirmed)
	cancelled := booking(venue1, date(2026, 3, 20, 9, 0), model.BookingCancelled)
	outsideWeek := booking(venue1, date(2026, 3, 25, 9, 0), model.BookingConfirmed)

	bookings := []model.Booking{mondayConfirmed, mondayPending, mondayLater, thursdayOther, cancelled, outsideWeek}

	t.Run("filtered to one venue", func(t *testing.T) {
		buckets := BucketByDay(bookings, week, venue1.String())

		if got := len(buckets[0]); got != 2 {
			t.Fatalf("Monday has %d bookings, want 2", got)
		}
		if buckets[0][0].ID != mondayConfirmed.ID || buckets[0][1].ID != mondayLater.ID {
			t.Errorf("Monday bucket order not preserved")
		}
		for i := 1; i < DaysPerWeek; i++ {
			if len(buckets[i]) != 0 {
				t.Errorf("day %d has %d bookings, want 0", i, len(buckets[i]))
			}
		}
	})

	t.Run("all venues is the per-venue union", func(t *testing.T) {
		all := BucketByDay(bookings, week, VenueAll)
		v1 := BucketByDay(bookings, week, venue1.String())
		v2 := BucketByDay(bookings, week, venue2.String())

		for i := 0; i < DaysPerWeek; i++ {
			if len(all[i]) != len(v1[i])+len(v2[i]) {
				t.Errorf("day %d: all=%d, v1+v2=%d", i, len(all[i]), len(v1[i])+len(v2[i]))
			}
		}
	})

	t.Run("only confirmed bookings appear", func(t *testing.T) {
		buckets := BucketByDay(bookings, week, VenueAll)
		for i, day := range buckets {
			for _, b := range day {
				if b.Status != model.BookingConfirmed {
					t.Errorf("day %d contains a %s booking", i, b.Status)
				}
			}
		}
	})

	t.Run("empty buckets are empty slices", func(t *testing.T) {
		buckets := BucketByDay(nil, week, VenueAll)
		for i, day := range buckets {
			if day == nil {
				t.Errorf("day %d is nil, want empty slice", i)
			}
			if len(day) != 0 {
				t.Errorf("day %d not empty", i)
			}
		}
	})
}

func TestBucketByDayMultiDayBookingOnStartDayOnly(t *testing.T) {
	week := WeekOf(date(2026, 3, 16, 0, 0))
	venue := uuid.New()

	spanning := model.Booking{
		ID:        uuid.New(),
		VenueID:   venue,
		StartTime: date(2026, 3, 17, 20, 0), // Tuesday evening
		EndTime:   date(2026, 3, 19, 2, 0),  // into Thursday
		Status:    model.BookingConfirmed,
	}

	buckets := BucketByDay([]model.Booking{spanning}, week, VenueAll)

	if len(buckets[1]) != 1 {
		t.Errorf("Tuesday has %d bookings, want 1", len(buckets[1]))
	}
	for _, i := range []int{2, 3} {
		if len(buckets[i]) != 0 {
			t.Errorf("day %d has %d bookings, want 0 (start day only)", i, len(buckets[i]))
		}
	}
}
