// Package schedule buckets venue bookings into a Monday-to-Sunday
// calendar grid for the weekly schedule view.
package schedule

import (
	"time"

	"ticketing-service/internal/model"
)

// VenueAll disables venue filtering in BucketByDay.
const VenueAll = "all"

// DaysPerWeek is the size of the schedule grid.
const DaysPerWeek = 7

// Week is a Monday-to-Sunday span. Start is midnight on Monday in
// the reference location.
type Week struct {
	Start time.Time
}

// WeekOf returns the week containing ref.
func WeekOf(ref time.Time) Week {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	// time.Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return Week{Start: day.AddDate(0, 0, -offset)}
}

// End returns midnight on the week's Sunday.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, DaysPerWeek-1)
}

func (w Week) Next() Week {
	return Week{Start: w.Start.AddDate(0, 0, DaysPerWeek)}
}

func (w Week) Previous() Week {
	return Week{Start: w.Start.AddDate(0, 0, -DaysPerWeek)}
}

// Days returns the seven calendar days of the week in order.
func (w Week) Days() [DaysPerWeek]time.Time {
	var days [DaysPerWeek]time.Time
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// BucketByDay groups bookings into the week's seven days, indexed 0
// (Monday) through 6 (Sunday). A booking lands in the bucket of its
// start day only, even when it spans several days. Only confirmed
// bookings appear; venueFilter is VenueAll or a venue id compared as
// a string. Input order is preserved within each bucket, and a day
// with no matches is an empty slice, not nil.
func BucketByDay(bookings []model.Booking, week Week, venueFilter string) [DaysPerWeek][]model.Booking {
	var buckets [DaysPerWeek][]model.Booking
	for i := range buckets {
		buckets[i] = []model.Booking{}
	}

	days := week.Days()
	loc := week.Start.Location()

	for _, b := range bookings {
		if b.Status != model.BookingConfirmed {
			continue
		}
		if venueFilter != VenueAll && b.VenueID.String() != venueFilter {
			continue
		}

		by, bm, bd := b.StartTime.In(loc).Date()
		for i, day := range days {
			dy, dm, dd := day.Date()
			if by == dy && bm == dm && bd == dd {
				buckets[i] = append(buckets[i], b)
				break
			}
		}
	}

	return buckets
}
