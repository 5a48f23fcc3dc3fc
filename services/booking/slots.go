package booking

import (
	"time"

	"qport/models"
)

// Demo slots are half-hour sessions on weekdays between 09:00 and 17:00
// local time, offered over a 14-day horizon.
const (
	slotHorizonDays = 14
	slotStartHour   = 9
	slotEndHour     = 17
	slotStepMinutes = 30
	slotDateLayout  = "2006-01-02"
)

// GenerateSlots produces the bookable demo slots for the next 14 calendar
// days starting today, grouped by day. Weekend days are skipped, candidates
// at or before now are discarded, and days left with no eligible slot are
// omitted entirely. Pure function of now.
func GenerateSlots(now time.Time) []models.DayBucket {
	var buckets []models.DayBucket

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	for d := 0; d < slotHorizonDays; d++ {
		date := today.AddDate(0, 0, d)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		var slots []time.Time
		for hour := slotStartHour; hour < slotEndHour; hour++ {
			for minute := 0; minute < 60; minute += slotStepMinutes {
				candidate := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, now.Location())
				// Skip already-elapsed times on the current day.
				if !candidate.After(now) {
					continue
				}
				slots = append(slots, candidate)
			}
		}

		if len(slots) > 0 {
			buckets = append(buckets, models.DayBucket{
				Date:  date.Format(slotDateLayout),
				Slots: slots,
			})
		}
	}

	return buckets
}
