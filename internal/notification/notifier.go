// Package notification composes and sends the e-mails of the lifecycle.
//
// Sending happens after the handler committed; failures are logged and
// counted, never returned.
package notification

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"parcours/internal/ports"
)

type Notifier struct {
	mailer ports.Mailer
	logger *slog.Logger

	sent *prometheus.CounterVec
}

type Option func(*Notifier)

func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) { n.logger = logger }
}

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(n *Notifier) {
		n.sent = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parcours_notifications_total",
			Help: "Notifications by template and outcome",
		}, []string{"template", "outcome"})
		reg.MustRegister(n.sent)
	}
}

func New(mailer ports.Mailer, opts ...Option) *Notifier {
	n := &Notifier{mailer: mailer, logger: slog.Default()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Mail is one notification to send.
type Mail struct {
	TemplateID  string
	Tokens      map[string]string
	Recipients  []ports.Recipient
	Attachments []ports.Attachment

	// Subject and Body override the template, used when the author writes the message.
	Subject string
	Body    string
}

// Send builds the message in each recipient's language and delivers it.
func (n *Notifier) Send(ctx context.Context, mail Mail) {
	for _, recipient := range mail.Recipients {
		if recipient.Email == "" {
			n.logger.WarnContext(ctx, "notification recipient without e-mail",
				"template", mail.TemplateID,
				"recipient", recipient.Name,
			)
			continue
		}
		msg, err := n.mailer.Build(ctx, mail.TemplateID, recipient.Language, mail.Tokens)
		if err != nil {
			n.fail(ctx, mail.TemplateID, recipient, err)
			continue
		}
		if mail.Subject != "" {
			msg.Subject = mail.Subject
		}
		if mail.Body != "" {
			msg.Body = mail.Body
		}
		msg.Attachments = append(msg.Attachments, mail.Attachments...)
		if err := n.mailer.Send(ctx, msg, recipient); err != nil {
			n.fail(ctx, mail.TemplateID, recipient, err)
			continue
		}
		n.count(mail.TemplateID, "sent")
	}
}

func (n *Notifier) fail(ctx context.Context, templateID string, recipient ports.Recipient, err error) {
	n.count(templateID, "failed")
	n.logger.ErrorContext(ctx, "notification not sent",
		"template", templateID,
		"recipient", recipient.Email,
		"error", err,
	)
}

func (n *Notifier) count(templateID, outcome string) {
	if n.sent != nil {
		n.sent.WithLabelValues(templateID, outcome).Inc()
	}
}
