package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"parcours/internal/signature"
	"parcours/internal/supervision/models"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
)

type GroupSuite struct {
	suite.Suite
	now   time.Time
	group *models.Group
}

func TestGroupSuite(t *testing.T) {
	suite.Run(t, new(GroupSuite))
}

func (s *GroupSuite) SetupTest() {
	s.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.group = models.NewGroup(domain.DoctorateID(uuid.New()), "process-1", s.now)
}

func external(email string) signature.PersonInput {
	return signature.PersonInput{External: &signature.External{
		FirstName: "Ada", LastName: "Lovelace", Email: email,
		Institute: "ULB", City: "Bruxelles", Country: "BE", Language: "FR",
	}}
}

func (s *GroupSuite) TestAddPromoter() {
	s.Run("first promoter becomes reference", func() {
		first, err := s.group.AddPromoter(domain.NewActorID(), signature.PersonInput{Matricule: "111"}, s.now)
		s.Require().NoError(err)
		ref, ok := s.group.ReferencePromoter()
		s.Require().True(ok)
		s.Equal(first.ID, ref.ID)
		s.True(s.group.IsReferencePromoter("111"))
	})

	s.Run("second promoter does not steal the reference", func() {
		_, err := s.group.AddPromoter(domain.NewActorID(), signature.PersonInput{Matricule: "222"}, s.now)
		s.Require().NoError(err)
		s.True(s.group.IsReferencePromoter("111"))
		s.False(s.group.IsReferencePromoter("222"))
	})

	s.Run("duplicate person is a conflict", func() {
		_, err := s.group.AddCaMember(domain.NewActorID(), signature.PersonInput{Matricule: "222"}, s.now)
		s.True(dErrors.HasCode(err, models.ErrMemberAlreadyInGroup.Code))
		s.Len(s.group.CaMembers, 0)
	})
}

func (s *GroupSuite) TestAddExternalMember() {
	s.Run("invalid email", func() {
		_, err := s.group.AddCaMember(domain.NewActorID(), external("not-an-email"), s.now)
		s.True(dErrors.HasCode(err, models.ErrMemberInvalidEmail.Code))
	})

	s.Run("incomplete designation", func() {
		_, err := s.group.AddCaMember(domain.NewActorID(), signature.PersonInput{}, s.now)
		s.True(dErrors.HasCode(err, models.ErrMemberIncomplete.Code))
	})

	s.Run("valid external member", func() {
		member, err := s.group.AddCaMember(domain.NewActorID(), external("ada@ulb.be"), s.now)
		s.Require().NoError(err)
		s.True(member.IsExternal())
		s.Equal(signature.NotInvited, member.State)
	})
}

func (s *GroupSuite) TestCopy() {
	s.Run("keeps an external member with partial details", func() {
		ada := signature.Actor{ID: domain.NewActorID(), External: &signature.External{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@ulb.be",
		}}
		s.True(s.group.Copy(models.KindCaMember, ada, s.now))
		s.Require().Len(s.group.CaMembers, 1)
		s.Equal(ada.ID, s.group.CaMembers[0].ID)
	})

	s.Run("first copied promoter becomes reference", func() {
		p := signature.Actor{ID: domain.NewActorID(), Matricule: "111"}
		s.True(s.group.Copy(models.KindPromoter, p, s.now))
		s.True(s.group.IsReferencePromoter("111"))
	})

	s.Run("skips a person already in the group", func() {
		s.False(s.group.Copy(models.KindCaMember, signature.Actor{ID: domain.NewActorID(), Matricule: "111"}, s.now))
		s.Len(s.group.CaMembers, 1)
	})
}

func (s *GroupSuite) TestRemove() {
	ref, err := s.group.AddPromoter(domain.NewActorID(), signature.PersonInput{Matricule: "111"}, s.now)
	s.Require().NoError(err)
	other, err := s.group.AddPromoter(domain.NewActorID(), signature.PersonInput{Matricule: "222"}, s.now)
	s.Require().NoError(err)

	s.Run("reference promoter cannot be removed", func() {
		_, err := s.group.Remove(ref.ID, s.now)
		s.True(dErrors.HasCode(err, models.ErrReferencePromoterRemoval.Code))
		s.Len(s.group.Promoters, 2)
	})

	s.Run("after designating another promoter", func() {
		s.Require().NoError(s.group.DesignateReferencePromoter(other.ID, s.now))
		removed, err := s.group.Remove(ref.ID, s.now)
		s.Require().NoError(err)
		s.Equal(ref.ID, removed.ID)
		s.True(s.group.IsReferencePromoter("222"))
	})

	s.Run("unknown member", func() {
		_, err := s.group.Remove(domain.NewActorID(), s.now)
		s.Equal(dErrors.KindNotFound, dErrors.KindOf(err))
	})
}

func (s *GroupSuite) TestDesignateCaMemberRejected() {
	member, err := s.group.AddCaMember(domain.NewActorID(), signature.PersonInput{Matricule: "333"}, s.now)
	s.Require().NoError(err)
	err = s.group.DesignateReferencePromoter(member.ID, s.now)
	s.True(dErrors.HasCode(err, models.ErrNotAPromoter.Code))
}
