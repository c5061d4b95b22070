package service

import (
	"context"
	"time"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/signature"
	smodels "parcours/internal/supervision/models"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
	"parcours/pkg/validation"
)

type addMemberFunc func(id domain.ActorID, in signature.PersonInput, now time.Time) (signature.Actor, error)

// addGroupMember adds the person to the group under a new actor ID. The actor
// is registered with the signature process once the transaction committed.
func (s *Service) addGroupMember(ctx context.Context, g *smodels.Group, in signature.PersonInput, add addMemberFunc, fx *effects) (signature.Actor, error) {
	if err := validation.Run(in.Contract(smodels.ErrMemberIncomplete, smodels.ErrMemberInvalidEmail)); err != nil {
		return signature.Actor{}, err
	}
	if err := s.requirePerson(ctx, in.Matricule); err != nil {
		return signature.Actor{}, err
	}
	actor, err := add(domain.NewActorID(), in, requestcontext.Now(ctx))
	if err != nil {
		return signature.Actor{}, err
	}
	enrolled := toSignatureActor(in)
	enrolled.ID = actor.ID
	fx.enrol(g.ProcessID, enrolled)
	return actor, nil
}

// syncJuryPromoters mirrors the promoters on the jury while it is editable.
func (s *Service) syncJuryPromoters(ctx context.Context, d *dmodels.Doctorate, g *smodels.Group, now time.Time) error {
	if !d.IsJuryEditable() {
		return nil
	}
	jury, err := s.loadJury(ctx, d.ID)
	if err != nil {
		return err
	}
	jury.SyncPromoters(g.Promoters, g.ReferencePromoterID, now)
	return s.saveJury(ctx, jury)
}

func (s *Service) changeGroup(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, g *smodels.Group, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		g, err := s.loadGroup(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, d, g, fx); err != nil {
			return err
		}
		if err := s.saveGroup(ctx, g); err != nil {
			return err
		}
		return s.syncJuryPromoters(ctx, d, g, requestcontext.Now(ctx))
	})
}

func (s *Service) AddPromoter(ctx context.Context, cmd commands.AddPromoter) (domain.ActorID, error) {
	var added domain.ActorID
	err := s.changeGroup(ctx, cmd.DoctorateID, func(ctx context.Context, _ *dmodels.Doctorate, g *smodels.Group, fx *effects) error {
		actor, err := s.addGroupMember(ctx, g, cmd.Person, g.AddPromoter, fx)
		if err != nil {
			return err
		}
		added = actor.ID
		fx.record("Un promoteur a été ajouté au groupe de supervision.",
			"A promoter was added to the supervision group.",
			history.TagSupervision, history.TagModification)
		return nil
	})
	return added, err
}

func (s *Service) AddCaMember(ctx context.Context, cmd commands.AddCaMember) (domain.ActorID, error) {
	var added domain.ActorID
	err := s.changeGroup(ctx, cmd.DoctorateID, func(ctx context.Context, _ *dmodels.Doctorate, g *smodels.Group, fx *effects) error {
		actor, err := s.addGroupMember(ctx, g, cmd.Person, g.AddCaMember, fx)
		if err != nil {
			return err
		}
		added = actor.ID
		fx.record("Un membre du comité d'accompagnement a été ajouté.",
			"A supervisory panel member was added.",
			history.TagSupervision, history.TagModification)
		return nil
	})
	return added, err
}

func (s *Service) RemoveSupervisionMember(ctx context.Context, cmd commands.RemoveSupervisionMember) (domain.DoctorateID, error) {
	err := s.changeGroup(ctx, cmd.DoctorateID, func(ctx context.Context, _ *dmodels.Doctorate, g *smodels.Group, fx *effects) error {
		if _, err := g.Remove(cmd.MemberID, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.withdraw(g.ProcessID, cmd.MemberID)
		fx.record("Un membre a été retiré du groupe de supervision.",
			"A member was removed from the supervision group.",
			history.TagSupervision, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) DesignateReferencePromoter(ctx context.Context, cmd commands.DesignateReferencePromoter) (domain.DoctorateID, error) {
	err := s.changeGroup(ctx, cmd.DoctorateID, func(ctx context.Context, _ *dmodels.Doctorate, g *smodels.Group, fx *effects) error {
		if err := g.DesignateReferencePromoter(cmd.MemberID, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le promoteur de référence a été désigné.",
			"The reference promoter was designated.",
			history.TagSupervision, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}
