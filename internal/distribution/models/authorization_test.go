package models_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"parcours/internal/distribution/models"
	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/signature"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
)

type AuthorizationSuite struct {
	suite.Suite
	now  time.Time
	auth *models.Authorization
}

func TestAuthorizationSuite(t *testing.T) {
	suite.Run(t, new(AuthorizationSuite))
}

func (s *AuthorizationSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.auth = models.New(domain.DoctorateID(uuid.New()), s.now)
}

func content() models.Content {
	return models.Content{
		SummaryEN:     "Summary",
		Keywords:      []string{" graphs ", "", "logic"},
		DiffusionType: models.DiffusionFree,
	}
}

func (s *AuthorizationSuite) submitAndSend() {
	s.Require().NoError(s.auth.Encode(dmodels.StatusProclaimed, content(), s.now))
	s.Require().NoError(s.auth.Submit(dmodels.StatusProclaimed, "J'accepte", s.now))
	s.Require().NoError(s.auth.SendToReferencePromoter("111", s.now))
}

func (s *AuthorizationSuite) TestEncode() {
	s.Run("before the private defence succeeded", func() {
		err := s.auth.Encode(dmodels.StatusJuryApprovedADRE, content(), s.now)
		s.True(dErrors.HasCode(err, models.ErrDoctorateNotDefended.Code))
	})

	s.Run("keywords are normalized", func() {
		s.Require().NoError(s.auth.Encode(dmodels.StatusPrivateDefenseSucceeded, content(), s.now))
		s.Equal([]string{"graphs", "logic"}, s.auth.Keywords)
		s.Equal(models.StatusNotSubmitted, s.auth.Status)
	})
}

func (s *AuthorizationSuite) TestSubmit() {
	s.Run("embargo needs an end date", func() {
		in := content()
		in.DiffusionType = models.DiffusionEmbargo
		s.Require().NoError(s.auth.Encode(dmodels.StatusProclaimed, in, s.now))
		err := s.auth.Submit(dmodels.StatusProclaimed, "J'accepte", s.now)
		s.Equal([]dErrors.Code{models.ErrEmbargoDateMissing.Code}, dErrors.Codes(err))
	})

	s.Run("embargo with date", func() {
		in := content()
		in.DiffusionType = models.DiffusionEmbargo
		in.EmbargoDate = &civil.Date{Year: 2026, Month: 1, Day: 1}
		s.Require().NoError(s.auth.Encode(dmodels.StatusProclaimed, in, s.now))
		s.Require().NoError(s.auth.Submit(dmodels.StatusProclaimed, "J'accepte", s.now))
		s.Equal(models.StatusSubmitted, s.auth.Status)
		s.NotNil(s.auth.AcceptedOn)
	})

	s.Run("no more encoding once submitted", func() {
		err := s.auth.Encode(dmodels.StatusProclaimed, content(), s.now)
		s.True(dErrors.HasCode(err, models.ErrNotEditable.Code))
	})
}

func (s *AuthorizationSuite) TestPromoterDecision() {
	s.submitAndSend()

	s.Run("only the reference promoter decides", func() {
		err := s.auth.DecideByReferencePromoter(models.Decision{Matricule: "222", Approved: true}, s.now)
		s.True(dErrors.HasCode(err, models.ErrNotReferencePromoter.Code))
		s.Equal(models.StatusPendingPromoter, s.auth.Status)
	})

	s.Run("ADRE cannot act before the promoter", func() {
		err := s.auth.DecideByAdre(models.Decision{Matricule: "adre", Approved: true}, s.now)
		s.True(dErrors.HasCode(err, models.ErrStatusNotApprovedByPromoter.Code))
	})

	s.Run("approval", func() {
		s.Require().NoError(s.auth.DecideByReferencePromoter(models.Decision{Matricule: "111", Approved: true}, s.now))
		s.Equal(models.StatusApprovedByPromoter, s.auth.Status)
		promoter, ok := s.auth.Signatory(models.RoleReferencePromoter)
		s.Require().True(ok)
		s.Equal(signature.Approved, promoter.State)
	})
}

func (s *AuthorizationSuite) TestAdreRefusal() {
	s.submitAndSend()
	s.Require().NoError(s.auth.DecideByReferencePromoter(models.Decision{Matricule: "111", Approved: true}, s.now))

	s.Run("refusal without reason", func() {
		err := s.auth.DecideByAdre(models.Decision{Matricule: "adre"}, s.now)
		s.Require().Error(err)
		s.Equal([]dErrors.Code{models.ErrRefusalReasonMissing.Code}, dErrors.Codes(err))
		s.Equal(models.StatusApprovedByPromoter, s.auth.Status)
	})

	s.Run("refusal with reason", func() {
		s.Require().NoError(s.auth.DecideByAdre(models.Decision{Matricule: "adre", Reason: "Résumé incomplet"}, s.now))
		s.Equal(models.StatusRefusedByAdre, s.auth.Status)
		adre, ok := s.auth.Signatory(models.RoleAdre)
		s.Require().True(ok)
		s.Equal("Résumé incomplet", adre.RefusalReason)
	})

	s.Run("refused authorisation is editable again", func() {
		s.NoError(s.auth.Encode(dmodels.StatusProclaimed, content(), s.now))
	})
}

func (s *AuthorizationSuite) TestScebApproval() {
	s.submitAndSend()
	s.Require().NoError(s.auth.DecideByReferencePromoter(models.Decision{Matricule: "111", Approved: true}, s.now))
	s.Require().NoError(s.auth.DecideByAdre(models.Decision{Matricule: "adre", Approved: true}, s.now))
	s.Require().NoError(s.auth.DecideBySceb(models.Decision{Matricule: "sceb", Approved: true}, s.now))
	s.Equal(models.StatusApprovedBySceb, s.auth.Status)
	s.Len(s.auth.Signatories, 3)
}
