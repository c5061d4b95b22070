package models_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"parcours/internal/doctorate/models"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/validation"
)

type DoctorateSuite struct {
	suite.Suite
	now time.Time
	d   *models.Doctorate
}

func TestDoctorateSuite(t *testing.T) {
	suite.Run(t, new(DoctorateSuite))
}

func (s *DoctorateSuite) SetupTest() {
	s.now = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	acceptance := civil.Date{Year: 2020, Month: 2, Day: 2}
	s.d = models.NewFromAdmission(models.Admission{
		PropositionID:     domain.PropositionID(uuid.New()),
		Reference:         "M-CDA22-000.001",
		Training:          models.Training{Acronym: "SC3DP", Year: 2022, CddCode: "CDSC"},
		Student:           models.Student{Matricule: "00000001", FirstName: "Jean", LastName: "Dupont"},
		ThesisTitle:       "Titre",
		CddAcceptanceDate: &acceptance,
	}, domain.NewConfirmationPaperID(), s.now)
}

func (s *DoctorateSuite) TestNewFromAdmission() {
	s.Equal(models.StatusAdmitted, s.d.Status)
	s.Equal(uuid.UUID(s.d.PropositionID), uuid.UUID(s.d.ID))
	s.False(s.d.CurrentConfirmationPaperID.IsNil())
	s.True(s.d.CurrentPrivateDefenseID.IsNil())
}

func (s *DoctorateSuite) TestTransitionTo() {
	s.Run("allowed transition", func() {
		s.Require().NoError(s.d.TransitionTo(models.StatusConfirmationSubmitted, s.now))
		s.Equal(models.StatusConfirmationSubmitted, s.d.Status)
	})

	s.Run("rejected transition leaves state unchanged", func() {
		err := s.d.TransitionTo(models.StatusProclaimed, s.now)
		s.Require().Error(err)
		s.ErrorIs(err, models.ErrTransitionNotAllowed)
		s.Equal(models.StatusConfirmationSubmitted, s.d.Status)
	})
}

func (s *DoctorateSuite) publicDefenseInput() models.PublicDefenseInput {
	return models.PublicDefenseInput{
		Language:          "FR",
		DateTime:          &civil.DateTime{Date: civil.Date{Year: 2024, Month: 2, Day: 5}, Time: civil.Time{Hour: 10}},
		Place:             "A1",
		DeliberationRoom:  "D1",
		AnnouncementPhoto: []domain.FileID{domain.NewFileID()},
	}
}

func (s *DoctorateSuite) TestPublicDefense() {
	s.Run("submission requires private defence success", func() {
		err := s.d.SubmitPublicDefense(s.publicDefenseInput(), s.now)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, models.ErrStatusNotPrivateDefenseSucceeded.Code))
		s.Equal(models.StatusAdmitted, s.d.Status)
	})

	s.Run("incomplete submission is reported before the status", func() {
		s.d.Status = models.StatusAdmitted
		in := s.publicDefenseInput()
		in.DeliberationRoom = " "
		err := s.d.SubmitPublicDefense(in, s.now)
		s.Equal([]dErrors.Code{models.ErrPublicDefenseIncomplete.Code}, dErrors.Codes(err))
	})

	s.Run("success from authorised with minutes", func() {
		s.d.Status = models.StatusPrivateDefenseSucceeded
		s.Require().NoError(s.d.SubmitPublicDefense(s.publicDefenseInput(), s.now))
		s.Require().NoError(s.d.AuthorisePublicDefense(s.now))
		s.Require().NoError(s.d.SubmitPublicDefenseMinutes([]domain.FileID{domain.NewFileID()}, s.now))
		s.Require().NoError(s.d.ConfirmPublicDefenseSuccess(s.now))
		s.Equal(models.StatusProclaimed, s.d.Status)
	})

	s.Run("success before authorisation", func() {
		s.d.Status = models.StatusPrivateDefenseSucceeded
		err := s.d.ConfirmPublicDefenseSuccess(s.now)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, models.ErrStatusNotPublicDefenseAuthorised.Code))
		s.Equal(models.StatusPrivateDefenseSucceeded, s.d.Status)
	})

	s.Run("success without minutes", func() {
		s.d.Status = models.StatusPublicDefenseAuthorised
		s.d.PublicDefense.Minutes = nil
		err := s.d.ConfirmPublicDefenseSuccess(s.now)
		s.True(dErrors.HasCode(err, models.ErrPublicDefenseMinutesMissing.Code))
	})
}

func (s *DoctorateSuite) TestDefensesFormule2() {
	s.d.Status = models.StatusJuryApprovedADRE

	s.Run("formule 1 cannot use the combined stage", func() {
		s.d.DefenseMethod = models.Formule1
		err := validation.Run(nil, s.d.DefensesSubmissionInvariants()...)
		s.True(dErrors.HasCode(err, models.ErrFormule2Required.Code))
	})

	s.Run("retake sends back to private defence retake", func() {
		s.d.DefenseMethod = models.Formule2
		s.d.Status = models.StatusDefensesSubmitted
		s.Require().NoError(s.d.AuthoriseDefenses(s.now))
		s.Require().NoError(s.d.ConfirmDefensesRetake(s.now))
		s.Equal(models.StatusPrivateDefenseToRetake, s.d.Status)
	})
}

func (s *DoctorateSuite) TestScheduleDiplomaCollection() {
	date := civil.Date{Year: 2024, Month: 6, Day: 1}
	err := s.d.ScheduleDiplomaCollection(&date, s.now)
	s.True(dErrors.HasCode(err, models.ErrStatusNotProclaimed.Code))

	s.d.Status = models.StatusProclaimed
	s.Require().NoError(s.d.ScheduleDiplomaCollection(&date, s.now))
	s.Equal(&date, s.d.PublicDefense.DiplomaCollectionDate)
}
