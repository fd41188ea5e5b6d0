package tests

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reservationHttp "github.com/zdzdigital/booky-backend/internal/reservation/http"
	resourceHttp "github.com/zdzdigital/booky-backend/internal/resource/http"
	scheduleHttp "github.com/zdzdigital/booky-backend/internal/schedule/http"
	servicetypeHttp "github.com/zdzdigital/booky-backend/internal/servicetype/http"
)

// TestConcurrentAllocation fires parallel booking requests at a single
// resource and expects exactly one winner.
func TestConcurrentAllocation(t *testing.T) {
	clearTables()

	staff := createTestUser(t, "staff@race.com", "pass", true)
	customer := createTestUser(t, "customer@race.com", "pass", false)
	staffToken := generateToken(staff)
	customerToken := generateToken(customer)

	w := executeRequest("POST", "/v1/resources", resourceHttp.CreateResourceBody{Name: "Single lift"}, staffToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var res resourceHttp.ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	w = executeRequest("POST", "/v1/services", servicetypeHttp.CreateServiceBody{
		Name:            "Oil change",
		DurationMinutes: 60,
		ResourceIDs:     []string{res.ID},
	}, staffToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var svc servicetypeHttp.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))

	weekday := 1
	w = executeRequest("POST", "/v1/business-hours", scheduleHttp.CreateBusinessHoursBody{
		Weekday: &weekday, OpenTime: "09:00", CloseTime: "17:00",
	}, staffToken)
	require.Equal(t, http.StatusCreated, w.Code)

	start, err := time.Parse(time.RFC3339, "2026-09-08T10:00:00Z")
	require.NoError(t, err)

	const attempts = 8
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := executeRequest("POST", "/v1/reservations", reservationHttp.CreateReservationBody{
				FullName:     "Race Runner",
				Phone:        "+41790000000",
				Email:        "runner@example.com",
				LicensePlate: "ZH 1",
				ServiceID:    svc.ID,
				StartTime:    start,
			}, customerToken)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	created, conflicted := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}
	assert.Equal(t, 1, created, "exactly one request may win the slot")
	assert.Equal(t, attempts-1, conflicted)
}
