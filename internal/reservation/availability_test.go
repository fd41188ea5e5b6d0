package reservation

import (
	"reflect"
	"testing"
	"time"

	"github.com/zdzdigital/booky-backend/internal/schedule"
)

func mustInterval(t *testing.T, openStr, closeStr string) schedule.Interval {
	t.Helper()
	openAt, err := schedule.ParseTimeOfDay(openStr)
	if err != nil {
		t.Fatalf("parse open time: %v", err)
	}
	closeAt, err := schedule.ParseTimeOfDay(closeStr)
	if err != nil {
		t.Fatalf("parse close time: %v", err)
	}
	return schedule.Interval{Open: openAt, Close: closeAt}
}

func TestComputeSlots(t *testing.T) {
	loc := time.UTC
	// Base date for testing: 2026-02-09 (a Monday)
	baseDate := time.Date(2026, 2, 9, 0, 0, 0, 0, loc)
	// "now" well before the base date so no candidate counts as past
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, loc)

	at := func(hour, min int) time.Time {
		return time.Date(2026, 2, 9, hour, min, 0, 0, loc)
	}
	rsv := func(resourceID string, start, end time.Time, approved bool) *Reservation {
		return &Reservation{
			ResourceID: resourceID,
			StartTime:  start,
			EndTime:    end,
			IsApproved: approved,
		}
	}

	tests := []struct {
		name         string
		intervals    []string // "open-close" pairs
		duration     time.Duration
		resourceIDs  []string
		reservations []*Reservation
		now          time.Time
		want         []Slot
	}{
		{
			name:        "no reservations, single interval",
			intervals:   []string{"09:00-11:00"},
			duration:    60 * time.Minute,
			resourceIDs: []string{"a", "b"},
			now:         now,
			want: []Slot{
				{StartTime: at(9, 0), AvailableCount: 2},
				{StartTime: at(9, 30), AvailableCount: 2},
				{StartTime: at(10, 0), AvailableCount: 2},
			},
		},
		{
			name:        "slot never extends past close",
			intervals:   []string{"09:00-10:00"},
			duration:    90 * time.Minute,
			resourceIDs: []string{"a"},
			now:         now,
			want:        nil,
		},
		{
			name:        "pending reservation occupies its resource",
			intervals:   []string{"09:00-11:00"},
			duration:    60 * time.Minute,
			resourceIDs: []string{"a", "b"},
			reservations: []*Reservation{
				rsv("a", at(9, 0), at(10, 0), false),
			},
			now: now,
			want: []Slot{
				{StartTime: at(9, 0), AvailableCount: 1},
				{StartTime: at(9, 30), AvailableCount: 1},
				{StartTime: at(10, 0), AvailableCount: 2},
			},
		},
		{
			name:        "fully booked slot omitted",
			intervals:   []string{"09:00-11:00"},
			duration:    60 * time.Minute,
			resourceIDs: []string{"a", "b"},
			reservations: []*Reservation{
				rsv("a", at(9, 0), at(10, 0), true),
				rsv("b", at(9, 30), at(10, 30), false),
			},
			now: now,
			want: []Slot{
				{StartTime: at(10, 0), AvailableCount: 1},
			},
		},
		{
			name:        "back to back reservations do not overlap",
			intervals:   []string{"09:00-11:00"},
			duration:    60 * time.Minute,
			resourceIDs: []string{"a"},
			reservations: []*Reservation{
				rsv("a", at(9, 0), at(10, 0), true),
			},
			now: now,
			want: []Slot{
				{StartTime: at(10, 0), AvailableCount: 1},
			},
		},
		{
			name:        "reservation on unrelated resource ignored",
			intervals:   []string{"09:00-10:30"},
			duration:    60 * time.Minute,
			resourceIDs: []string{"a"},
			reservations: []*Reservation{
				rsv("x", at(9, 0), at(10, 0), true),
			},
			now: now,
			want: []Slot{
				{StartTime: at(9, 0), AvailableCount: 1},
				{StartTime: at(9, 30), AvailableCount: 1},
			},
		},
		{
			name:        "split day, no slot spans the gap",
			intervals:   []string{"09:00-11:00", "14:00-16:00"},
			duration:    90 * time.Minute,
			resourceIDs: []string{"a"},
			now:         now,
			want: []Slot{
				{StartTime: at(9, 0), AvailableCount: 1},
				{StartTime: at(9, 30), AvailableCount: 1},
				{StartTime: at(14, 0), AvailableCount: 1},
				{StartTime: at(14, 30), AvailableCount: 1},
			},
		},
		{
			name:        "today hides past start times",
			intervals:   []string{"09:00-11:00"},
			duration:    60 * time.Minute,
			resourceIDs: []string{"a"},
			now:         at(9, 45),
			want: []Slot{
				{StartTime: at(10, 0), AvailableCount: 1},
			},
		},
		{
			name:        "no resources yields nothing",
			intervals:   []string{"09:00-18:00"},
			duration:    60 * time.Minute,
			resourceIDs: nil,
			now:         now,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var intervals []schedule.Interval
			for _, iv := range tt.intervals {
				intervals = append(intervals, mustInterval(t, iv[:5], iv[6:]))
			}

			got := ComputeSlots(baseDate, intervals, tt.duration, tt.resourceIDs, tt.reservations, tt.now, loc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}
