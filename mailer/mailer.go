// Package mailer renders and sends the outbound email of the intake
// system: operator notifications, submitter confirmations and the
// spreadsheet export message. Sending is best-effort; a failed send is
// reported as a result value and never as an error or panic.
package mailer

import (
	"github.com/samenwerkt-wbd/members-backend/config"
	"github.com/wneessen/go-mail"
)

// Sender delivers fully built messages. *mail.Client satisfies it; tests
// substitute a stub.
type Sender interface {
	DialAndSend(messages ...*mail.Msg) error
}

// SendResult reports one send attempt. Failures carry a short detail
// string for logging; they are never raised past the notifier boundary.
type SendResult struct {
	OK     bool
	Detail string
}

// NewClient builds an SMTP client from the mail configuration. The
// default target is a local relay on port 25 without authentication or
// TLS; when credentials are configured, plain auth with opportunistic
// TLS is used.
func NewClient(cfg *config.MailConfig) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
			mail.WithTLSPolicy(mail.TLSOpportunistic),
		)
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	return mail.NewClient(cfg.Host, opts...)
}
