package notification_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parcours/internal/notification"
	"parcours/internal/ports"
	"parcours/internal/ports/mocks"
)

type NotifierSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mailer   *mocks.MockMailer
	notifier *notification.Notifier
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierSuite))
}

func (s *NotifierSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mailer = mocks.NewMockMailer(s.ctrl)
	s.notifier = notification.New(s.mailer)
}

func (s *NotifierSuite) TestBuildsInRecipientLanguage() {
	fr := ports.Recipient{Name: "Ada", Email: "ada@example.org", Language: "fr-be"}
	en := ports.Recipient{Name: "Alan", Email: "alan@example.org", Language: "en"}
	tokens := map[string]string{"student_first_name": "Ada"}

	s.mailer.EXPECT().Build(gomock.Any(), notification.TemplateConfirmationSubmitStudent, "fr-be", tokens).
		Return(&ports.Message{Subject: "Soumis"}, nil)
	s.mailer.EXPECT().Build(gomock.Any(), notification.TemplateConfirmationSubmitStudent, "en", tokens).
		Return(&ports.Message{Subject: "Submitted"}, nil)
	s.mailer.EXPECT().Send(gomock.Any(), &ports.Message{Subject: "Soumis"}, fr).Return(nil)
	s.mailer.EXPECT().Send(gomock.Any(), &ports.Message{Subject: "Submitted"}, en).Return(nil)

	s.notifier.Send(context.Background(), notification.Mail{
		TemplateID: notification.TemplateConfirmationSubmitStudent,
		Tokens:     tokens,
		Recipients: []ports.Recipient{fr, en},
	})
}

func (s *NotifierSuite) TestAuthorOverridesAndFailuresAreSwallowed() {
	first := ports.Recipient{Email: "first@example.org", Language: "fr-be"}
	second := ports.Recipient{Email: "second@example.org", Language: "fr-be"}

	s.mailer.EXPECT().Build(gomock.Any(), notification.TemplateConfirmationOnSuccessStudent, "fr-be", gomock.Any()).
		Return(&ports.Message{Subject: "template", Body: "template"}, nil).Times(2)
	s.mailer.EXPECT().Send(gomock.Any(), &ports.Message{Subject: "Félicitations", Body: "Bravo"}, first).
		Return(errors.New("smtp down"))
	s.mailer.EXPECT().Send(gomock.Any(), &ports.Message{Subject: "Félicitations", Body: "Bravo"}, second).
		Return(nil)

	s.notifier.Send(context.Background(), notification.Mail{
		TemplateID: notification.TemplateConfirmationOnSuccessStudent,
		Recipients: []ports.Recipient{first, {Name: "no mail"}, second},
		Subject:    "Félicitations",
		Body:       "Bravo",
	})
}

func TestCalendar(t *testing.T) {
	start := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	att := notification.Calendar(notification.DefenseInvitation{
		UID:       "defense-1@parcours",
		Summary:   "Soutenance publique",
		Location:  "A1",
		Start:     start,
		Attendees: []string{"jury@example.org"},
	}, start.Add(-48*time.Hour))

	assert.Equal(t, "text/calendar", att.MimeType)
	cal, err := ics.ParseCalendar(bytes.NewReader(att.Content))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Soutenance publique", events[0].GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "A1", events[0].GetProperty(ics.ComponentPropertyLocation).Value)
	got, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, got.Equal(start))
}
