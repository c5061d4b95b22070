package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"parcours/internal/ports"
)

// Sender delivers a built message.
type Sender interface {
	Deliver(ctx context.Context, msg *ports.Message, recipient ports.Recipient) error
}

// Mailer implements ports.Mailer.
type Mailer struct {
	*Catalog
	sender Sender
}

func NewMailer(catalog *Catalog, sender Sender) *Mailer {
	return &Mailer{Catalog: catalog, sender: sender}
}

func (m *Mailer) Send(ctx context.Context, msg *ports.Message, recipient ports.Recipient) error {
	return m.sender.Deliver(ctx, msg, recipient)
}

// LogSender writes messages to the log instead of sending them.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Deliver(ctx context.Context, msg *ports.Message, recipient ports.Recipient) error {
	s.logger.InfoContext(ctx, "mail",
		"template", msg.TemplateID,
		"to", recipient.Email,
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)
	return nil
}

// Producer is the part of *kgo.Client used by QueueSender.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// QueueSender enqueues messages on the mail queue topic consumed by the
// platform mailer.
type QueueSender struct {
	producer Producer
	topic    string
}

func NewQueueSender(producer Producer, topic string) *QueueSender {
	return &QueueSender{producer: producer, topic: topic}
}

type queuedMail struct {
	Recipient ports.Recipient `json:"recipient"`
	Message   *ports.Message   `json:"message"`
}

func (s *QueueSender) Deliver(ctx context.Context, msg *ports.Message, recipient ports.Recipient) error {
	value, err := json.Marshal(queuedMail{Recipient: recipient, Message: msg})
	if err != nil {
		return fmt.Errorf("encode mail: %w", err)
	}
	record := &kgo.Record{Topic: s.topic, Key: []byte(recipient.Email), Value: value}
	if err := s.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("enqueue mail: %w", err)
	}
	return nil
}
