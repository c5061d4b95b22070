package models_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"parcours/internal/admissibility/models"
	dmodels "parcours/internal/doctorate/models"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/validation"
)

type AdmissibilitySuite struct {
	suite.Suite
	now time.Time
	adm *models.Admissibility
}

func TestAdmissibilitySuite(t *testing.T) {
	suite.Run(t, new(AdmissibilitySuite))
}

func (s *AdmissibilitySuite) SetupTest() {
	s.now = time.Date(2023, 10, 1, 9, 0, 0, 0, time.UTC)
	s.adm = models.New(domain.NewAdmissibilityID(), domain.DoctorateID(uuid.New()), s.now)
}

func submission() models.Submission {
	return models.Submission{
		ThesisTitle:              "T",
		DecisionDate:             &civil.Date{Year: 2023, Month: 9, Day: 20},
		ManuscriptSubmissionDate: &civil.Date{Year: 2023, Month: 9, Day: 1},
	}
}

func (s *AdmissibilitySuite) TestCanSubmit() {
	s.Run("formule rule is reported with the status", func() {
		formule := validation.Require(false, dmodels.ErrFormule2Required)
		err := models.CanSubmit(dmodels.StatusJurySubmitted, formule, submission())
		s.ElementsMatch([]dErrors.Code{models.ErrStatusNotSubmittable.Code, dmodels.ErrFormule2Required.Code}, dErrors.Codes(err))
	})

	s.Run("resubmission is allowed", func() {
		s.NoError(models.CanSubmit(dmodels.StatusAdmissibilitySubmitted, nil, submission()))
	})

	s.Run("incomplete", func() {
		in := submission()
		in.DecisionDate = nil
		err := models.CanSubmit(dmodels.StatusJuryApprovedADRE, nil, in)
		s.Equal([]dErrors.Code{models.ErrAdmissibilityIncomplete.Code}, dErrors.Codes(err))
	})
}

func (s *AdmissibilitySuite) TestSubmitInPlaceIsIdempotent() {
	s.Require().NoError(s.adm.ApplySubmission(submission(), s.now))
	first := *s.adm
	s.Require().NoError(s.adm.ApplySubmission(submission(), s.now))
	s.Equal(first, *s.adm)
}

func (s *AdmissibilitySuite) TestConfirmSuccess() {
	err := s.adm.CanConfirmSuccess(dmodels.StatusAdmissibilitySubmitted)
	s.ElementsMatch([]dErrors.Code{models.ErrDecisionDateMissing.Code, models.ErrMinutesMissing.Code}, dErrors.Codes(err))

	s.Require().NoError(s.adm.ApplySubmission(submission(), s.now))
	s.Require().NoError(s.adm.SubmitMinutes(dmodels.StatusAdmissibilitySubmitted, []domain.FileID{domain.NewFileID()}, nil, s.now))
	s.NoError(s.adm.CanConfirmSuccess(dmodels.StatusAdmissibilitySubmitted))
}

func (s *AdmissibilitySuite) TestRetake() {
	next, err := s.adm.Retake(dmodels.StatusAdmissibilitySubmitted, domain.NewAdmissibilityID(), s.now)
	s.Require().NoError(err)
	s.False(s.adm.IsActive)
	s.True(next.IsActive)
}
