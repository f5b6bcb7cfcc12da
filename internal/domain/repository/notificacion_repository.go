package repository

import "context"

// MailerRepository defines the interface for outbound email delivery.
type MailerRepository interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// PushRepository defines the interface for push notification delivery to a
// client device token.
type PushRepository interface {
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}
