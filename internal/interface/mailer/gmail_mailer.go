package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/copipaste/agencia-SGE/internal/domain/repository"
	"github.com/copipaste/agencia-SGE/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer delivers reminder emails through the Gmail API
type GmailMailer struct {
	service *gmail.Service
	from    string
	logger  logger.Logger
}

// NewGmailMailer creates a new Gmail-backed mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (repository.MailerRepository, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		service: service,
		from:    from,
		logger:  logger,
	}, nil
}

// SendEmail sends a plain-text email
func (m *GmailMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	var raw strings.Builder
	raw.WriteString("From: " + m.from + "\r\n")
	raw.WriteString("To: " + to + "\r\n")
	raw.WriteString("Subject: " + subject + "\r\n")
	raw.WriteString("MIME-Version: 1.0\r\n")
	raw.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	raw.WriteString("\r\n")
	raw.WriteString(body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw.String())),
	}

	if _, err := m.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.Info("Email sent", "to", to, "subject", subject)
	return nil
}
