package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/payperiod"
)

// NoopNotifier is the default when no notification channel is configured.
type NoopNotifier struct{}

func (NoopNotifier) PTOAccrued(context.Context, *domain.Organization, *domain.User, float64, payperiod.Period) error {
	return nil
}

type emailNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailNotifier returns a Notifier that emails the user a PTO-accrued
// notice through SendGrid.
func NewEmailNotifier(apiKey, fromEmail, fromName string) Notifier {
	return &emailNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *emailNotifier) PTOAccrued(ctx context.Context, org *domain.Organization, user *domain.User, hoursAdded float64, period payperiod.Period) error {
	if user.Email == "" {
		return nil
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail(user.Name, user.Email)
	subject := fmt.Sprintf("You earned %.2f hours of PTO", hoursAdded)
	body := fmt.Sprintf(
		"Hello %s,\n\nYou earned %.2f hours of PTO for the pay period %s at %s.\n\nBest regards,\nThe Shiftline Team",
		user.Name, hoursAdded, period.Label, org.Name,
	)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")
	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send accrual notice: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
