package service

import (
	"fmt"
	"strings"

	"github.com/northcart/northcart/internal/config"
	"github.com/northcart/northcart/internal/models"

	"github.com/wneessen/go-mail"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// OrderConfirmationLine is one line of the confirmation summary.
type OrderConfirmationLine struct {
	Name     string
	Quantity int
	Price    models.Money
}

// OrderConfirmationEmailInput carries the rendered order summary.
type OrderConfirmationEmailInput struct {
	OrderID uint
	Total   models.Money
	Lines   []OrderConfirmationLine
}

// SendOrderConfirmation sends the plain-text order confirmation.
func (s *EmailService) SendOrderConfirmation(toEmail string, input OrderConfirmationEmailInput) error {
	subject := fmt.Sprintf("Order #%d confirmation", input.OrderID)
	body := buildOrderConfirmationBody(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendCustomEmail sends an arbitrary plain-text message (SMTP smoke tests).
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "SMTP configuration test"
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = "This is a test message confirming the SMTP configuration works."
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func buildOrderConfirmationBody(input OrderConfirmationEmailInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your order has been placed successfully!\n\n")
	fmt.Fprintf(&b, "Order #%d\n\n", input.OrderID)
	for _, line := range input.Lines {
		fmt.Fprintf(&b, "  %s x%d @ %s\n", line.Name, line.Quantity, line.Price.String())
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", input.Total.String())
	return b.String()
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}

	msg := mail.NewMsg()
	if strings.TrimSpace(s.cfg.FromName) != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return err
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return err
		}
	}
	if err := msg.To(toEmail); err != nil {
		return ErrInvalidEmail
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}
	if s.cfg.Username != "" || s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	switch {
	case s.cfg.UseSSL:
		opts = append(opts, mail.WithSSLPort(false))
	case s.cfg.UseTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}
