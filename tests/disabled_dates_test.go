package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scheduleHttp "github.com/zdzdigital/booky-backend/internal/schedule/http"
)

func TestDisabledDates(t *testing.T) {
	clearTables()

	staff := createTestUser(t, "staff@calendar.com", "pass", true)
	staffToken := generateToken(staff)

	// Open Monday through Friday.
	for wd := 0; wd <= 4; wd++ {
		weekday := wd
		w := executeRequest("POST", "/v1/business-hours", scheduleHttp.CreateBusinessHoursBody{
			Weekday: &weekday, OpenTime: "08:00", CloseTime: "17:00",
		}, staffToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Wednesday within the window.
	w := executeRequest("POST", "/v1/holidays", scheduleHttp.CreateHolidayBody{
		Name: "Knabenschiessen", Date: "2026-09-09",
	}, staffToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("Week window", func(t *testing.T) {
		// Frozen clock: today is Monday 2026-09-07.
		w := executeRequest("GET", "/v1/disabled-dates?days=7", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp scheduleHttp.DisabledDatesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "2026-09-07", resp.StartDate)
		assert.Equal(t, "2026-09-14", resp.EndDate)
		assert.Equal(t, []string{"2026-09-09", "2026-09-12", "2026-09-13"}, resp.DisabledDates)
	})

	t.Run("Default window is 90 days", func(t *testing.T) {
		w := executeRequest("GET", "/v1/disabled-dates", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp scheduleHttp.DisabledDatesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2026-12-06", resp.EndDate)
	})

	t.Run("Non numeric days", func(t *testing.T) {
		w := executeRequest("GET", "/v1/disabled-dates?days=soon", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"detail": "Parametar must be an int."}`, w.Body.String())
	})

	t.Run("Negative days", func(t *testing.T) {
		w := executeRequest("GET", "/v1/disabled-dates?days=-3", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"detail": "Parametar must be an int."}`, w.Body.String())
	})

	t.Run("Holiday endpoint records creator", func(t *testing.T) {
		w := executeRequest("GET", "/v1/holidays", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var holidays []scheduleHttp.HolidayResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &holidays))
		require.Len(t, holidays, 1)
		require.NotNil(t, holidays[0].CreatedByEmail)
		assert.Equal(t, "staff@calendar.com", *holidays[0].CreatedByEmail)
	})
}
