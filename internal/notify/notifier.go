// Package notify delivers reservation lifecycle emails. Delivery is
// fire-and-forget: every method returns immediately and failures are
// logged, never propagated to the booking flow.
package notify

import (
	"net/smtp"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zdzdigital/booky-backend/internal/metrics"
	"github.com/zdzdigital/booky-backend/internal/reservation"
)

// EmailNotifier sends customer and operator mails over plain SMTP.
type EmailNotifier struct {
	addr     string
	from     string
	operator string
	location *time.Location
}

func NewEmailNotifier(addr, from, operator string, location *time.Location) *EmailNotifier {
	return &EmailNotifier{addr: addr, from: from, operator: operator, location: location}
}

func (n *EmailNotifier) ReservationCreated(r *reservation.Reservation) {
	go func() {
		n.send("reservation_created", r.Email, createdSubject, renderCreated(r, n.location), nil)
		if n.operator != "" {
			n.send("operator_notice", n.operator, operatorSubject(r), renderOperatorNotice(r, n.location), nil)
		}
	}()
}

func (n *EmailNotifier) ReservationApproved(r *reservation.Reservation) {
	go func() {
		n.send("reservation_approved", r.Email, approvedSubject, renderApproved(r, n.location), renderICS(r))
	}()
}

func (n *EmailNotifier) send(event, to, subject, body string, attachment []byte) {
	msg := buildMessage(n.from, to, subject, body, attachment)
	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, msg); err != nil {
		metrics.IncNotificationFailure(event)
		log.Warn().Err(err).
			Str("event", event).
			Str("to", to).
			Msg("notification delivery failed")
		return
	}
	log.Debug().Str("event", event).Str("to", to).Msg("notification sent")
}

// LogNotifier stands in when no SMTP endpoint is configured, so local
// development still surfaces every lifecycle event.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ReservationCreated(r *reservation.Reservation) {
	log.Info().
		Str("reservation_id", r.ID).
		Str("email", r.Email).
		Time("start_time", r.StartTime).
		Msg("reservation created (mail delivery disabled)")
}

func (n *LogNotifier) ReservationApproved(r *reservation.Reservation) {
	log.Info().
		Str("reservation_id", r.ID).
		Str("email", r.Email).
		Time("start_time", r.StartTime).
		Msg("reservation approved (mail delivery disabled)")
}
