package reservation

import (
	"time"

	"github.com/zdzdigital/booky-backend/internal/schedule"
)

// ComputeSlots walks every open interval of the day at the scheduling
// granularity and counts, for each candidate start time, the compatible
// resources free for the full service duration.
//
// Rules:
//   - A candidate never starts before the interval opens and never needs
//     capacity past its close; generation stops at close - duration.
//   - Both pending and approved reservations occupy their resource.
//     Overlap uses the half-open test: start < candidateEnd && end > candidate.
//   - When the date is "today" in loc, candidates already in the past
//     (relative to now) are skipped.
//   - Candidates with zero free resources are omitted entirely.
//
// The result is ordered ascending by start time; intervals are processed in
// the order given and never merged, so no slot spans a closed gap.
func ComputeSlots(
	date time.Time,
	intervals []schedule.Interval,
	duration time.Duration,
	resourceIDs []string,
	reservations []*Reservation,
	now time.Time,
	loc *time.Location,
) []Slot {
	if duration <= 0 || len(resourceIDs) == 0 {
		return nil
	}

	candidates := make(map[string]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		candidates[id] = true
	}

	localNow := now.In(loc)
	isToday := sameDate(date, localNow)

	var slots []Slot
	for _, iv := range intervals {
		openAt := iv.Open.At(date, loc)
		closeAt := iv.Close.At(date, loc)

		for t := openAt; !t.Add(duration).After(closeAt); t = t.Add(Granularity) {
			if isToday && t.Before(localNow) {
				continue
			}

			end := t.Add(duration)

			busy := make(map[string]bool)
			for _, r := range reservations {
				if !candidates[r.ResourceID] {
					continue
				}
				if r.StartTime.Before(end) && r.EndTime.After(t) {
					busy[r.ResourceID] = true
				}
			}

			if available := len(resourceIDs) - len(busy); available > 0 {
				slots = append(slots, Slot{StartTime: t, AvailableCount: available})
			}
		}
	}

	return slots
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
