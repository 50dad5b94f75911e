package notification

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/resend/resend-go/v2"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier emails the team through the Resend API.
type ResendNotifier struct {
	emails emailSender
	from   string
	to     []string
}

func NewResendNotifier(apiKey, from string, to []string) *ResendNotifier {
	client := resend.NewClient(apiKey)
	return &ResendNotifier{emails: client.Emails, from: from, to: to}
}

func (r *ResendNotifier) NotifyBookingCreated(ctx context.Context, n BookingCreated) error {
	html, err := renderBookingEmail(n)
	if err != nil {
		return fmt.Errorf("render booking email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      r.to,
		Subject: bookingSubject(n),
		Html:    html,
		ReplyTo: n.Email,
	}

	sent, err := r.emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("booking_notification provider=resend booking_id=%d error=%q", n.BookingID, err.Error())
		return fmt.Errorf("resend send failed: %w", err)
	}

	log.Printf("booking_notification provider=resend booking_id=%d message_id=%s", n.BookingID, sent.Id)
	return nil
}

func bookingSubject(n BookingCreated) string {
	if n.CompanyName != "" {
		return fmt.Sprintf("New strategy call request: %s (%s)", n.FullName, n.CompanyName)
	}
	return fmt.Sprintf("New strategy call request: %s", n.FullName)
}

func renderBookingEmail(n BookingCreated) (string, error) {
	rows := []struct{ label, value string }{
		{"Name", n.FullName},
		{"Company", n.CompanyName},
		{"Email", n.Email},
		{"WhatsApp", n.WhatsApp},
		{"Industry", n.Industry},
		{"Message", n.Message},
	}

	doc := Div(
		H2(g.Text("New booking request")),
		Table(
			g.Group(g.Map(rows, func(r struct{ label, value string }) g.Node {
				value := r.value
				if value == "" {
					value = "-"
				}
				return Tr(
					Td(Strong(g.Text(r.label))),
					Td(g.Text(value)),
				)
			})),
		),
		P(g.Textf("Booking #%d", n.BookingID)),
	)

	var sb strings.Builder
	if err := doc.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
