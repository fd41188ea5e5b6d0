package notify

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"time"

	"github.com/google/uuid"

	"github.com/zdzdigital/booky-backend/internal/reservation"
)

const (
	createdSubject  = "Reservierung erhalten / Reservation received"
	approvedSubject = "Termin bestätigt / Appointment confirmed"
)

func operatorSubject(r *reservation.Reservation) string {
	return fmt.Sprintf("Neue Reservierung: %s (%s)", r.FullName, r.LicensePlate)
}

// Mails go out bilingual, German first. Customers of the shop are mostly
// German speaking but the booking form is offered in both languages.
func renderCreated(r *reservation.Reservation, loc *time.Location) string {
	start := r.StartTime.In(loc)
	return fmt.Sprintf(`Guten Tag %[1]s

Vielen Dank für Ihre Reservierung. Wir haben Ihre Anfrage erhalten und
melden uns, sobald der Termin bestätigt ist.

Service:      %[2]s
Datum:        %[3]s
Zeit:         %[4]s
Kontrollschild: %[5]s

---

Hello %[1]s

Thank you for your reservation. We have received your request and will
get back to you once the appointment is confirmed.

Service:       %[2]s
Date:          %[3]s
Time:          %[4]s
License plate: %[5]s
`,
		r.FullName, r.ServiceName,
		start.Format("02.01.2006"), start.Format("15:04"), r.LicensePlate)
}

func renderApproved(r *reservation.Reservation, loc *time.Location) string {
	start := r.StartTime.In(loc)
	return fmt.Sprintf(`Guten Tag %[1]s

Ihr Termin ist bestätigt. Wir freuen uns auf Ihren Besuch.

Service:      %[2]s
Datum:        %[3]s
Zeit:         %[4]s

---

Hello %[1]s

Your appointment is confirmed. We look forward to your visit.

Service: %[2]s
Date:    %[3]s
Time:    %[4]s
`,
		r.FullName, r.ServiceName,
		start.Format("02.01.2006"), start.Format("15:04"))
}

func renderOperatorNotice(r *reservation.Reservation, loc *time.Location) string {
	start := r.StartTime.In(loc)
	stored := "nein"
	if r.IsStored {
		stored = "ja"
	}
	return fmt.Sprintf(`Neue Reservierung eingegangen.

Name:           %s
Telefon:        %s
E-Mail:         %s
Kontrollschild: %s
Service:        %s
Datum:          %s
Zeit:           %s - %s
Eingelagert:    %s
`,
		r.FullName, r.Phone, r.Email, r.LicensePlate, r.ServiceName,
		start.Format("02.01.2006"), start.Format("15:04"),
		r.EndTime.In(loc).Format("15:04"), stored)
}

// renderICS produces a minimal VCALENDAR invite for the confirmed slot.
func renderICS(r *reservation.Reservation) []byte {
	var b bytes.Buffer
	stamp := func(t time.Time) string { return t.UTC().Format("20060102T150405Z") }

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//zdzdigital//booky//EN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@booky.zdzdigital.ch\r\n", r.ID)
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp(time.Now()))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", stamp(r.StartTime))
	fmt.Fprintf(&b, "DTEND:%s\r\n", stamp(r.EndTime))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", r.ServiceName)
	fmt.Fprintf(&b, "DESCRIPTION:%s %s\r\n", r.ServiceName, r.LicensePlate)
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.Bytes()
}

// buildMessage assembles an RFC 5322 message, multipart when an ICS
// attachment is present.
func buildMessage(from, to, subject, body string, attachment []byte) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	if attachment == nil {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(body)
		return b.Bytes()
	}

	boundary := uuid.NewString()
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/calendar; method=PUBLISH; charset=utf-8\r\n")
	b.WriteString("Content-Disposition: attachment; filename=appointment.ics\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	b.WriteString(base64.StdEncoding.EncodeToString(attachment))
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.Bytes()
}
