package mail_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"parcours/internal/adapters/mail"
	"parcours/internal/notification"
	"parcours/internal/ports"
	"parcours/pkg/platform/sentinel"
)

const catalogYAML = `
templates:
  greeting:
    fr-be:
      subject: "Bonjour {{.name}}"
      body: "Salut {{.name}}, {{.missing}}fin"
    en:
      subject: "Hello {{.name}}"
      body: "Hi {{.name}}"
`

func TestCatalog_LanguageFallback(t *testing.T) {
	catalog, err := mail.ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)
	ctx := context.Background()
	tokens := map[string]string{"name": "Ada"}

	msg, err := catalog.Build(ctx, "greeting", "en-GB", tokens)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada", msg.Subject)

	msg, err = catalog.Build(ctx, "greeting", "nl", tokens)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour Ada", msg.Subject)
	assert.Equal(t, "Salut Ada, fin", msg.Body)
	assert.Equal(t, "greeting", msg.TemplateID)

	_, err = catalog.Build(ctx, "unknown", "fr-be", tokens)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestCatalog_RejectsBrokenTemplate(t *testing.T) {
	_, err := mail.ParseCatalog([]byte("templates:\n  x:\n    fr-be:\n      subject: \"{{.a\"\n"))
	assert.Error(t, err)
}

func TestDefaultCatalog_CoversNotificationTemplates(t *testing.T) {
	catalog, err := mail.DefaultCatalog()
	require.NoError(t, err)
	for _, id := range []string{
		notification.TemplateConfirmationSubmitStudent,
		notification.TemplateConfirmationOnRetakeStudent,
		notification.TemplateJurySignatureRequestExternal,
		notification.TemplatePublicDefenseAuthorised,
		notification.TemplateDefensesOnSuccess,
		notification.TemplateDistributionRefusedStudent,
	} {
		assert.True(t, catalog.Has(id), id)
	}
}

type recordingProducer struct {
	records []*kgo.Record
}

func (p *recordingProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	p.records = append(p.records, rs...)
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r})
	}
	return results
}

func TestQueueSender(t *testing.T) {
	producer := &recordingProducer{}
	catalog, err := mail.ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)
	mailer := mail.NewMailer(catalog, mail.NewQueueSender(producer, "parcours.mail"))

	msg, err := mailer.Build(context.Background(), "greeting", "en", map[string]string{"name": "Ada"})
	require.NoError(t, err)
	recipient := ports.Recipient{Name: "Ada", Email: "ada@example.org", Language: "en"}
	require.NoError(t, mailer.Send(context.Background(), msg, recipient))

	require.Len(t, producer.records, 1)
	assert.Equal(t, "parcours.mail", producer.records[0].Topic)
	var queued struct {
		Recipient ports.Recipient `json:"recipient"`
		Message   ports.Message   `json:"message"`
	}
	require.NoError(t, json.Unmarshal(producer.records[0].Value, &queued))
	assert.Equal(t, recipient, queued.Recipient)
	assert.Equal(t, "Hello Ada", queued.Message.Subject)
}
