package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	hours    []*BusinessHours
	holidays map[string]bool
}

func (f *fakeRepo) CreateHours(_ context.Context, bh *BusinessHours) error {
	bh.ID = "bh-1"
	f.hours = append(f.hours, bh)
	return nil
}

func (f *fakeRepo) ListHours(context.Context) ([]*BusinessHours, error) {
	return f.hours, nil
}

func (f *fakeRepo) ListHoursByWeekday(_ context.Context, weekday int) ([]*BusinessHours, error) {
	var out []*BusinessHours
	for _, bh := range f.hours {
		if bh.Weekday == weekday {
			out = append(out, bh)
		}
	}
	return out, nil
}

func (f *fakeRepo) WeekdaysWithHours(context.Context) (map[int]bool, error) {
	out := map[int]bool{}
	for _, bh := range f.hours {
		out[bh.Weekday] = true
	}
	return out, nil
}

func (f *fakeRepo) DeleteHours(context.Context, string) error { return nil }

func (f *fakeRepo) CreateHoliday(_ context.Context, h *Holiday) error {
	key := h.Date.Format("2006-01-02")
	if f.holidays[key] {
		return ErrHolidayExists
	}
	f.holidays[key] = true
	h.ID = "h-1"
	return nil
}

func (f *fakeRepo) ListHolidays(context.Context) ([]*Holiday, error) { return nil, nil }

func (f *fakeRepo) HolidayExists(_ context.Context, date time.Time) (bool, error) {
	return f.holidays[date.Format("2006-01-02")], nil
}

func (f *fakeRepo) HolidayDatesBetween(_ context.Context, from, to time.Time) (map[string]bool, error) {
	out := map[string]bool{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if f.holidays[d.Format("2006-01-02")] {
			out[d.Format("2006-01-02")] = true
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteHoliday(context.Context, string) error { return nil }

func newFakeRepo() *fakeRepo {
	return &fakeRepo{holidays: map[string]bool{}}
}

func hours(weekday int, openStr, closeStr string) *BusinessHours {
	openAt, _ := ParseTimeOfDay(openStr)
	closeAt, _ := ParseTimeOfDay(closeStr)
	return &BusinessHours{Weekday: weekday, OpenTime: openAt, CloseTime: closeAt}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "09:00", want: "09:00"},
		{input: "09:00:00", want: "09:00"},
		{input: "23:59", want: "23:59"},
		{input: "7:5", want: "07:05"},
		{input: "24:00", want: "24:00"},
		{input: "24:00:00", want: "24:00"},
		{input: "24:01", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestDisabledDates(t *testing.T) {
	repo := newFakeRepo()
	// Open Monday through Friday.
	for wd := 0; wd <= 4; wd++ {
		repo.hours = append(repo.hours, hours(wd, "08:00", "17:00"))
	}
	// Easter Monday 2026-04-06.
	repo.holidays["2026-04-06"] = true

	svc := NewService(repo)

	// 2026-04-01 is a Wednesday.
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.DisabledDates(context.Background(), start, 7)
	require.NoError(t, err)

	assert.Equal(t, start, got.StartDate)
	assert.Equal(t, start.AddDate(0, 0, 7), got.EndDate)

	want := []time.Time{
		time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC), // Saturday
		time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC), // Sunday
		time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC), // holiday
	}
	assert.Equal(t, want, got.Dates)
}

func TestDisabledDatesZeroDays(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	// No business hours at all, so the single day is disabled.
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.DisabledDates(context.Background(), start, 0)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{start}, got.Dates)
}

func TestDisabledDatesNegativeDays(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.DisabledDates(context.Background(), time.Now(), -1)
	assert.ErrorIs(t, err, ErrInvalidDaysParam)
}

func TestCreateHoursValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateHours(ctx, CreateHoursRequest{Weekday: 7, OpenTime: "08:00", CloseTime: "12:00"})
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.CreateHours(ctx, CreateHoursRequest{Weekday: 0, OpenTime: "12:00", CloseTime: "08:00"})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = svc.CreateHours(ctx, CreateHoursRequest{Weekday: 0, OpenTime: "soon", CloseTime: "12:00"})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	bh, err := svc.CreateHours(ctx, CreateHoursRequest{Weekday: 0, OpenTime: "08:00", CloseTime: "12:00"})
	require.NoError(t, err)
	assert.Equal(t, "08:00", bh.OpenTime.String())
	assert.Equal(t, "12:00", bh.CloseTime.String())
}

func TestCreateHolidayDuplicate(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	date := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateHoliday(ctx, CreateHolidayRequest{Name: "Christmas", Date: date})
	require.NoError(t, err)

	_, err = svc.CreateHoliday(ctx, CreateHolidayRequest{Name: "Christmas again", Date: date})
	assert.ErrorIs(t, err, ErrHolidayExists)
}
