package mailer

import "context"

// IMailer defines the interface for the email sender service client.
type IMailer interface {
	// Send delivers one email and returns the sender service's response text.
	Send(ctx context.Context, req SendRequest) (string, error)
}
