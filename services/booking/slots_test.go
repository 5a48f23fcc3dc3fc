package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsProperties(t *testing.T) {
	nows := []time.Time{
		time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC), // Monday mid-morning
		time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),  // Friday after hours
		time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),  // Saturday
		time.Date(2025, 12, 31, 8, 59, 0, 0, time.UTC), // year boundary, before opening
	}

	for _, now := range nows {
		buckets := GenerateSlots(now)
		require.NotEmpty(t, buckets, "now=%s", now)

		var prevDate string
		for _, bucket := range buckets {
			day, err := time.ParseInLocation("2006-01-02", bucket.Date, now.Location())
			require.NoError(t, err)

			assert.NotEqual(t, time.Saturday, day.Weekday(), "weekend bucket for now=%s", now)
			assert.NotEqual(t, time.Sunday, day.Weekday(), "weekend bucket for now=%s", now)
			assert.Greater(t, bucket.Date, prevDate, "buckets must ascend")
			prevDate = bucket.Date

			require.NotEmpty(t, bucket.Slots, "empty bucket must be omitted")
			var prev time.Time
			for _, slot := range bucket.Slots {
				assert.True(t, slot.After(now), "slot %s not after now %s", slot, now)
				assert.Zero(t, slot.Second())
				assert.True(t, slot.Minute() == 0 || slot.Minute() == 30, "slot %s not half-hour aligned", slot)

				startOfDay := slot.Hour()*60 + slot.Minute()
				assert.GreaterOrEqual(t, startOfDay, 9*60, "slot %s before 09:00", slot)
				assert.LessOrEqual(t, startOfDay, 16*60+30, "slot %s after 16:30", slot)

				assert.Equal(t, bucket.Date, slot.Format("2006-01-02"), "slot outside its bucket day")
				if !prev.IsZero() {
					assert.True(t, slot.After(prev), "slots must strictly increase")
				}
				prev = slot
			}
		}
	}
}

func TestGenerateSlotsSkipsElapsedToday(t *testing.T) {
	// Monday 10:15: the 10:30 slot is the earliest remaining one today.
	now := time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC)
	buckets := GenerateSlots(now)

	require.NotEmpty(t, buckets)
	assert.Equal(t, "2025-03-10", buckets[0].Date)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC), buckets[0].Slots[0])
}

func TestGenerateSlotsOmitsFinishedToday(t *testing.T) {
	// Friday 18:00: today has no future slots, so the first bucket is Monday
	// with a full day.
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	buckets := GenerateSlots(now)

	require.NotEmpty(t, buckets)
	assert.Equal(t, "2025-03-17", buckets[0].Date)
	assert.Len(t, buckets[0].Slots, 16)
	assert.Equal(t, time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), buckets[0].Slots[0])
	assert.Equal(t, time.Date(2025, 3, 17, 16, 30, 0, 0, time.UTC), buckets[0].Slots[15])
}

func TestGenerateSlotsHorizon(t *testing.T) {
	// A 14-day window starting Saturday contains exactly ten weekdays.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	buckets := GenerateSlots(now)

	assert.Len(t, buckets, 10)
	assert.Equal(t, "2025-03-17", buckets[0].Date)
	assert.Equal(t, "2025-03-28", buckets[len(buckets)-1].Date)
}
