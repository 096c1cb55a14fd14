package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/config"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

// Mailer delivers a login code to the user out of band. The contract is
// only "make the code available"; the transport is swappable.
type Mailer interface {
	SendLoginCode(ctx context.Context, email, code string, expiresAt time.Time) error
}

// NewMailer picks SendGrid when an API key is configured and falls back to
// the operator console otherwise.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SendgridAPIKey != "" {
		return &sendgridMailer{
			client:    sendgrid.NewSendClient(cfg.SendgridAPIKey),
			fromEmail: cfg.SendgridFromEmail,
			appName:   cfg.AppName,
		}
	}
	return &consoleMailer{}
}

// ---------------------------------------------------------------------
// SendGrid transport
// ---------------------------------------------------------------------

type sendgridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	appName   string
}

func (m *sendgridMailer) SendLoginCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	from := mail.NewEmail("Helping Hand", m.fromEmail)
	to := mail.NewEmail("", email)
	subject := "Helping Hand - Your Login Code"
	plainTextContent := fmt.Sprintf("Your login code is %s", code)
	htmlContent := fmt.Sprintf(
		loginCodeEmailHTML,
		"Login Code",
		"Please use the following code to sign in. This code will expire in 2 minutes.",
		code,
		time.Now().Year(),
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	_, err := m.client.Send(message)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send login code email to %s via SendGrid", email)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}

// ---------------------------------------------------------------------
// Console transport (reference behavior for local runs)
// ---------------------------------------------------------------------

type consoleMailer struct{}

func (m *consoleMailer) SendLoginCode(_ context.Context, email, code string, expiresAt time.Time) error {
	fmt.Printf("\n--- OTP for %s ---\n", email)
	fmt.Printf("Your OTP is: %s\n", code)
	fmt.Printf("This OTP will expire in 120 seconds (%s).\n", expiresAt.Format(time.RFC3339))
	fmt.Printf("--------------------------\n\n")
	return nil
}
