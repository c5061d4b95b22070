package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/jury/models"
	"parcours/internal/signature"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
)

type JurySuite struct {
	suite.Suite
	now  time.Time
	jury *models.Jury
	ref  signature.Actor
}

func TestJurySuite(t *testing.T) {
	suite.Run(t, new(JurySuite))
}

func (s *JurySuite) SetupTest() {
	s.now = time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	s.jury = models.New(domain.DoctorateID(uuid.New()), "Titre", s.now)
	s.ref = signature.Actor{ID: domain.NewActorID(), Matricule: "111", State: signature.Approved}
	s.jury.SyncPromoters([]signature.Actor{s.ref}, s.ref.ID, s.now)
}

func externalMember(email string) models.MemberInput {
	return models.MemberInput{Person: signature.PersonInput{External: &signature.External{
		FirstName: "Ada", LastName: "Lovelace", Email: email,
		Institute: "KUL", City: "Leuven", Country: "BE", Language: "EN",
	}}}
}

func internalMember(matricule string) models.MemberInput {
	return models.MemberInput{Person: signature.PersonInput{Matricule: matricule}}
}

func (s *JurySuite) fill(members int, withExternal bool) {
	status := dmodels.StatusConfirmationSucceeded
	for i := 0; i < members; i++ {
		in := internalMember("m" + string(rune('a'+i)))
		if withExternal && i == 0 {
			in = externalMember("ext@kuleuven.be")
		}
		_, err := s.jury.AddMember(status, domain.NewActorID(), in, s.now)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.jury.Modify(status, models.Details{ThesisTitle: "Titre", DefenseMethod: dmodels.Formule1}, s.now))
}

func (s *JurySuite) TestSyncPromoters() {
	s.Require().Len(s.jury.Members, 1)
	m := s.jury.Members[0]
	s.True(m.IsPromoter)
	s.True(m.IsReferencePromoter)
	s.Equal(signature.NotInvited, m.State)
}

func (s *JurySuite) TestEditionRules() {
	status := dmodels.StatusConfirmationSucceeded

	s.Run("duplicate member", func() {
		_, err := s.jury.AddMember(status, domain.NewActorID(), internalMember("111"), s.now)
		s.True(dErrors.HasCode(err, models.ErrMemberAlreadyInJury.Code))
	})

	s.Run("reference promoter cannot be removed", func() {
		_, err := s.jury.RemoveMember(status, s.ref.ID, s.now)
		s.True(dErrors.HasCode(err, models.ErrCannotRemoveReferencePromoter.Code))
	})

	s.Run("promoter identity cannot be modified", func() {
		err := s.jury.ModifyMember(status, s.ref.ID, internalMember("999"), s.now)
		s.True(dErrors.HasCode(err, models.ErrCannotModifyPromoter.Code))
		s.Equal("111", s.jury.Members[0].Matricule)
	})

	s.Run("not editable once submitted", func() {
		_, err := s.jury.AddMember(dmodels.StatusJurySubmitted, domain.NewActorID(), internalMember("222"), s.now)
		s.True(dErrors.HasCode(err, models.ErrJuryNotEditable.Code))
	})

	s.Run("single president", func() {
		a, err := s.jury.AddMember(status, domain.NewActorID(), models.MemberInput{Person: signature.PersonInput{Matricule: "p1"}, Role: models.RolePresident}, s.now)
		s.Require().NoError(err)
		b, err := s.jury.AddMember(status, domain.NewActorID(), internalMember("p2"), s.now)
		s.Require().NoError(err)
		s.Require().NoError(s.jury.ModifyRole(status, b.ID, models.RolePresident, s.now))

		first, _ := s.jury.Member(a.ID)
		second, _ := s.jury.Member(b.ID)
		s.Equal(models.RoleMember, first.Role)
		s.Equal(models.RolePresident, second.Role)
	})

	s.Run("decision roles are not member roles", func() {
		err := s.jury.ModifyRole(status, s.ref.ID, models.RoleADRE, s.now)
		s.True(dErrors.HasCode(err, models.ErrInvalidRole.Code))
	})
}

func (s *JurySuite) TestCanRequestSignatures() {
	status := dmodels.StatusConfirmationSucceeded

	s.Run("too few members and no external", func() {
		err := s.jury.CanRequestSignatures(status, 4)
		s.ElementsMatch([]dErrors.Code{
			models.ErrTooFewMembers.Code,
			models.ErrNoExternalMember.Code,
			models.ErrDefenseMethodMissing.Code,
		}, dErrors.Codes(err))
	})

	s.Run("enough members but no external", func() {
		s.fill(3, false)
		err := s.jury.CanRequestSignatures(status, 4)
		s.Equal([]dErrors.Code{models.ErrNoExternalMember.Code}, dErrors.Codes(err))
	})

	s.Run("external member completes the jury", func() {
		_, err := s.jury.AddMember(status, domain.NewActorID(), externalMember("ext@kuleuven.be"), s.now)
		s.Require().NoError(err)
		s.NoError(s.jury.CanRequestSignatures(status, 4))
	})
}

func (s *JurySuite) TestSigningFlow() {
	s.fill(3, true)
	s.Require().NoError(s.jury.RequestSignatures(dmodels.StatusConfirmationSucceeded, 4, s.now))
	for _, m := range s.jury.Members {
		s.Equal(signature.Invited, m.State)
	}

	s.Run("decline requires a reason", func() {
		err := s.jury.DeclineMember(dmodels.StatusJurySubmitted, s.ref.ID, "", "", "", s.now)
		s.True(dErrors.HasCode(err, models.ErrRefusalReasonMissing.Code))
	})

	s.Run("all approvals complete the jury", func() {
		var all bool
		for i, m := range s.jury.Members {
			var err error
			all, err = s.jury.ApproveMember(dmodels.StatusJurySubmitted, m.ID, "ok", "", nil, s.now.Add(time.Duration(i)*time.Minute))
			s.Require().NoError(err)
		}
		s.True(all)
	})

	s.Run("second approval is rejected", func() {
		_, err := s.jury.ApproveMember(dmodels.StatusJurySubmitted, s.ref.ID, "ok", "", nil, s.now)
		s.True(dErrors.HasCode(err, models.ErrMemberAlreadyDecided.Code))
	})

	s.Run("ADRE decision after CA approval", func() {
		err := s.jury.DecideByAdre(dmodels.StatusJurySubmitted, models.Decision{Matricule: "adre", Approved: true}, s.now)
		s.True(dErrors.HasCode(err, models.ErrStatusNotReadyForAdre.Code))

		s.Require().NoError(s.jury.DecideByAdre(dmodels.StatusJuryApprovedCA, models.Decision{Matricule: "adre", Approved: true}, s.now))
		s.Require().NotNil(s.jury.AdreDecision)
		s.Equal(signature.Approved, s.jury.AdreDecision.State)
	})
}

func (s *JurySuite) TestApproveByPdf() {
	s.fill(3, true)
	s.Require().NoError(s.jury.RequestSignatures(dmodels.StatusJuryRefusedCA, 4, s.now))

	err := s.jury.ApproveByPdf(dmodels.StatusJurySubmitted, nil, s.now)
	s.True(dErrors.HasCode(err, models.ErrApprovalPdfMissing.Code))

	s.Require().NoError(s.jury.ApproveByPdf(dmodels.StatusJurySubmitted, []domain.FileID{domain.NewFileID()}, s.now))
	s.True(s.jury.AllApproved())
}
