package service

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"hostelia/internal/db"
	"hostelia/internal/entities"
)

const emailDateLayout = "02 Jan 2006"

var reservationEmailTmpl = template.Must(template.New("reservation_email").Parse(`
<p>Hi {{.GuestName}},</p>
<p>Your reservation at {{.HostelName}} is confirmed.</p>
<ul>
  <li>Reservation code: {{.ReservationCode}}</li>
  <li>Room: {{.RoomNumber}}, bed {{.BedNumber}}</li>
  <li>Check-in: {{.CheckinFormatted}}</li>
  <li>Check-out: {{.CheckoutFormatted}}</li>
</ul>
<p>{{.HostelName}}. {{.CurrentYear}}.</p>
`))

// reservationEmail is a rendered confirmation ready for delivery.
type reservationEmail struct {
	to      string
	toName  string
	subject string
	plain   string
	html    string
}

// SenderService delivers reservation confirmations. Failures are
// logged, never surfaced: a reservation is committed before any
// notification is attempted.
type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendReservationConfirmation emails the reserving guest's account
// address and, when a phone number is on file, texts the guest too.
func (s *SenderService) SendReservationConfirmation(user *db.User, guest *db.Guest, hostel *db.Hostel, res *db.Reservation) {
	email, err := buildReservationEmail(user, hostel, res)
	if err != nil {
		log.WithError(err).Warn("could not render reservation email template")
	} else if email != nil {
		if err := sendEmailWithSendGrid(email.to, email.toName, email.subject, email.plain, email.html); err != nil {
			log.WithError(err).WithField("code", res.Code).Warn("reservation email failed")
		}
	}

	if guest.PhoneNumber.Valid {
		sms := fmt.Sprintf("%s: reservation %s confirmed. Check-in %s, room %s bed %s.",
			hostel.Name, res.Code, res.CheckinDate.Format(emailDateLayout),
			res.RoomNumber, res.BedNumber)
		if err := sendSMS(guest.PhoneNumber.String, sms); err != nil {
			log.WithError(err).WithField("code", res.Code).Warn("reservation SMS failed")
		}
	}
}

// buildReservationEmail renders the confirmation addressed to the
// guest's user account email. Returns nil when there is no address to
// deliver to.
func buildReservationEmail(user *db.User, hostel *db.Hostel, res *db.Reservation) (*reservationEmail, error) {
	if user == nil || user.Email == "" {
		return nil, nil
	}

	data := entities.ReservationEmailData{
		GuestName:         user.Name,
		HostelName:        hostel.Name,
		ReservationCode:   res.Code,
		RoomNumber:        res.RoomNumber,
		BedNumber:         res.BedNumber,
		CheckinFormatted:  res.CheckinDate.Format(emailDateLayout),
		CheckoutFormatted: res.CheckoutDate.Format(emailDateLayout),
		CurrentYear:       time.Now().Year(),
	}

	var htmlBody bytes.Buffer
	if err := reservationEmailTmpl.Execute(&htmlBody, data); err != nil {
		return nil, err
	}

	return &reservationEmail{
		to:      user.Email,
		toName:  user.Name,
		subject: fmt.Sprintf("Your reservation at %s is confirmed - Code: %s", data.HostelName, data.ReservationCode),
		plain: fmt.Sprintf(
			"Hi %s,\n\nYour reservation at %s is confirmed.\n\n"+
				"Reservation code: %s\nRoom: %s, bed %s\nCheck-in: %s\nCheck-out: %s\n",
			data.GuestName, data.HostelName, data.ReservationCode,
			data.RoomNumber, data.BedNumber, data.CheckinFormatted, data.CheckoutFormatted,
		),
		html: htmlBody.String(),
	}, nil
}

func sendEmailWithSendGrid(toEmail, toName, subject, plainTextContent, htmlContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Hostelia"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("twilio credentials not fully configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.WithField("to", toNumber).Warn("destination number is not E.164 formatted")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}
