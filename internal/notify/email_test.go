package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zdzdigital/booky-backend/internal/reservation"
)

func testReservation() *reservation.Reservation {
	return &reservation.Reservation{
		ID:           "4f6c9f3e-8d1b-4df5-9f2a-1f6d0c4b1a00",
		FullName:     "Anna Keller",
		Phone:        "+41790000000",
		Email:        "anna@example.com",
		LicensePlate: "ZH 12345",
		ServiceName:  "Wheel change",
		StartTime:    time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
		IsStored:     true,
	}
}

func TestRenderCreatedIsBilingual(t *testing.T) {
	body := renderCreated(testReservation(), time.UTC)

	assert.Contains(t, body, "Guten Tag Anna Keller")
	assert.Contains(t, body, "Hello Anna Keller")
	assert.Contains(t, body, "Wheel change")
	assert.Contains(t, body, "03.03.2026")
	assert.Contains(t, body, "10:00")
	assert.Contains(t, body, "ZH 12345")
}

func TestRenderOperatorNoticeListsContactData(t *testing.T) {
	body := renderOperatorNotice(testReservation(), time.UTC)

	assert.Contains(t, body, "+41790000000")
	assert.Contains(t, body, "anna@example.com")
	assert.Contains(t, body, "Eingelagert:    ja")
}

func TestRenderICS(t *testing.T) {
	ics := string(renderICS(testReservation()))

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, ics, "DTSTART:20260303T100000Z\r\n")
	assert.Contains(t, ics, "DTEND:20260303T110000Z\r\n")
	assert.Contains(t, ics, "SUMMARY:Wheel change\r\n")
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
}

func TestBuildMessagePlain(t *testing.T) {
	msg := string(buildMessage("noreply@example.com", "anna@example.com", "Subject line", "body text", nil))

	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "To: anna@example.com\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "body text"))
}

func TestBuildMessageWithAttachment(t *testing.T) {
	msg := string(buildMessage("noreply@example.com", "anna@example.com", "s", "body", []byte("BEGIN:VCALENDAR")))

	assert.Contains(t, msg, "multipart/mixed")
	assert.Contains(t, msg, "Content-Type: text/calendar")
	assert.Contains(t, msg, "filename=appointment.ics")
	assert.Contains(t, msg, "Content-Transfer-Encoding: base64")
}
