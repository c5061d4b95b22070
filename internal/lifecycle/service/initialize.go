package service

import (
	"context"
	"errors"

	cmodels "parcours/internal/confirmation/models"
	distmodels "parcours/internal/distribution/models"
	dmodels "parcours/internal/doctorate/models"
	docmodels "parcours/internal/document/models"
	"parcours/internal/history"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/ports"
	"parcours/internal/signature"
	smodels "parcours/internal/supervision/models"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/requestcontext"
)

// CurriculumLabel is the NON_LIBRE slot holding the admission curriculum.
const CurriculumLabel = "Curriculum"

// InitializeDoctorate creates the doctorate of an enrolled admission. Calling
// it again for the same proposition returns the existing identity, whatever
// the admission became since.
func (s *Service) InitializeDoctorate(ctx context.Context, cmd commands.InitializeDoctorate) (domain.DoctorateID, error) {
	id := domain.DoctorateIDFromProposition(cmd.PropositionID)
	exists, err := s.doctorateExists(ctx, id)
	if err != nil {
		return domain.DoctorateID{}, err
	}
	if exists {
		return id, nil
	}

	prop, err := s.ext.Propositions.Get(ctx, cmd.PropositionID)
	if err != nil {
		return domain.DoctorateID{}, internal(err, dmodels.ErrPropositionNotFound, cmd.PropositionID.String())
	}
	if prop.Status != ports.PropositionStatusEnrolmentAuthorised {
		return domain.DoctorateID{}, dmodels.ErrPropositionNotEnrolled.With(prop.Status)
	}
	student, err := s.ext.People.Get(ctx, prop.StudentMatricule)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.DoctorateID{}, ErrPersonUnknown.With(prop.StudentMatricule)
		}
		return domain.DoctorateID{}, dErrors.Internal(err, "resolve student")
	}

	err = s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		if exists, err := s.doctorateExists(ctx, id); err != nil || exists {
			return err
		}
		now := requestcontext.Now(ctx)

		paper := cmodels.New(domain.NewConfirmationPaperID(), id,
			cmodels.DefaultDeadline(prop.CddAcceptanceDate, s.today(now)), now)
		d := dmodels.NewFromAdmission(dmodels.Admission{
			PropositionID: prop.ID,
			Reference:     prop.Reference,
			Training: dmodels.Training{
				Acronym:  prop.TrainingAcronym,
				Title:    prop.TrainingTitle,
				Year:     prop.TrainingYear,
				CddCode:  prop.CddCode,
				CddTitle: prop.CddTitle,
			},
			Student: dmodels.Student{
				Matricule: student.Matricule,
				FirstName: student.FirstName,
				LastName:  student.LastName,
				Email:     student.Email,
				Language:  student.Language,
			},
			ThesisTitle:       prop.ThesisTitle,
			ThesisLanguage:    prop.ThesisLanguage,
			CddAcceptanceDate: prop.CddAcceptanceDate,
		}, paper.ID, now)

		group, err := s.buildGroup(ctx, prop, memberLanguage(student.Language), id, fx)
		if err != nil {
			return err
		}
		jury := jmodels.New(id, prop.ThesisTitle, now)
		jury.SyncPromoters(group.Promoters, group.ReferencePromoterID, now)

		if err := s.saveDoctorate(ctx, d); err != nil {
			return err
		}
		if err := s.saveConfirmation(ctx, paper); err != nil {
			return err
		}
		if err := s.saveGroup(ctx, group); err != nil {
			return err
		}
		if err := s.saveJury(ctx, jury); err != nil {
			return err
		}
		if err := s.saveDistribution(ctx, distmodels.New(id, now)); err != nil {
			return err
		}
		if len(prop.CurriculumFiles) > 0 {
			cv, err := docmodels.New(domain.NewDocumentID(), id, docmodels.TypeStandard, CurriculumLabel,
				prop.CurriculumFiles, SystemAuthor, now)
			if err != nil {
				return err
			}
			if err := s.stores.Documents.Save(ctx, cv); err != nil {
				return dErrors.Internal(err, "save curriculum")
			}
		}
		fx.record(
			"Le doctorat a été initialisé à partir de la proposition "+prop.Reference+".",
			"The doctorate was initialized from proposition "+prop.Reference+".",
			history.TagDoctorate, history.TagStatusChanged)
		return nil
	})
	if err != nil {
		return domain.DoctorateID{}, err
	}
	return id, nil
}

func (s *Service) doctorateExists(ctx context.Context, id domain.DoctorateID) (bool, error) {
	_, err := s.stores.Doctorates.Get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return false, nil
	}
	return false, dErrors.Internal(err, "load doctorate")
}

// buildGroup copies the admission supervision group into a new signature
// process. Members are taken over as the admission holds them; an external
// member without a language gets language.
func (s *Service) buildGroup(ctx context.Context, prop *ports.Proposition, language string, id domain.DoctorateID, fx *effects) (*smodels.Group, error) {
	now := requestcontext.Now(ctx)
	process, err := s.ext.Signatures.CreateProcess(ctx)
	if err != nil {
		return nil, ErrSignatureProcess.Wrap(err)
	}
	group := smodels.NewGroup(id, process, now)
	copyMember := func(kind smodels.Kind, m ports.SupervisionMember) domain.ActorID {
		in := supervisionInput(m, language)
		actor := signature.NewActor(domain.NewActorID(), in)
		if !group.Copy(kind, actor, now) {
			return domain.ActorID{}
		}
		enrolled := toSignatureActor(in)
		enrolled.ID = actor.ID
		fx.enrol(process, enrolled)
		return actor.ID
	}
	var reference domain.ActorID
	for _, m := range prop.Promoters {
		if actorID := copyMember(smodels.KindPromoter, m); m.IsReference && !actorID.IsNil() {
			reference = actorID
		}
	}
	for _, m := range prop.CaMembers {
		copyMember(smodels.KindCaMember, m)
	}
	if !reference.IsNil() {
		if err := group.DesignateReferencePromoter(reference, now); err != nil {
			return nil, err
		}
	}
	return group, nil
}

func supervisionInput(m ports.SupervisionMember, language string) signature.PersonInput {
	if m.Matricule != "" {
		return signature.PersonInput{Matricule: m.Matricule}
	}
	if m.Language != "" {
		language = m.Language
	}
	return signature.PersonInput{External: &signature.External{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Institute: m.Institute,
		City:      m.City,
		Country:   m.Country,
		Language:  language,
	}}
}

func memberLanguage(studentLanguage string) string {
	if studentLanguage != "" {
		return studentLanguage
	}
	return requestcontext.DefaultLanguage
}
