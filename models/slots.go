package models

import "time"

// DayBucket groups the bookable half-hour demo slots of one calendar day.
// Slots are ascending start instants; a bucket is only emitted when it has at
// least one future slot.
type DayBucket struct {
	Date  string      `json:"date"`  // "2006-01-02"
	Slots []time.Time `json:"slots"` // half-hour aligned start times
}
