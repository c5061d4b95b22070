package service

import (
	"context"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/notification"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

const DocJuryApproval = "jury.approval"

// changeJury loads the doctorate and its jury, runs fn and saves both.
func (s *Service) changeJury(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		j, err := s.loadJury(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, d, j, fx); err != nil {
			return err
		}
		if err := s.saveJury(ctx, j); err != nil {
			return err
		}
		return s.saveDoctorate(ctx, d)
	})
}

// juryDecisionLabel names the deciding body in history lines.
func juryDecisionLabel(role jmodels.Role, approved bool) (fr, en string) {
	var body string
	switch role {
	case jmodels.RoleCDD:
		body = "CDD"
	case jmodels.RoleADRE:
		body = "ADRE"
	default:
		body = string(role)
	}
	if approved {
		return "Le jury a été approuvé par " + body + ".", "The jury was approved by " + body + "."
	}
	return "Le jury a été refusé par " + body + ".", "The jury was refused by " + body + "."
}

func (s *Service) ModifyJury(ctx context.Context, cmd commands.ModifyJury) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		now := requestcontext.Now(ctx)
		err := j.Modify(d.Status, jmodels.Details{
			ThesisTitle:     cmd.ThesisTitle,
			DefenseMethod:   cmd.DefenseMethod,
			IndicativeDate:  cmd.IndicativeDate,
			ThesisLanguage:  cmd.ThesisLanguage,
			DefenseLanguage: cmd.DefenseLanguage,
			Comment:         cmd.Comment,
		}, now)
		if err != nil {
			return err
		}
		d.ApplyJuryDetails(j.ThesisTitle, j.DefenseMethod, j.ThesisLanguage, now)
		fx.record("Les informations du jury ont été modifiées.",
			"The jury information was modified.",
			history.TagJury, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) AddJuryMember(ctx context.Context, cmd commands.AddJuryMember) (domain.ActorID, error) {
	var added domain.ActorID
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		if err := s.requirePerson(ctx, cmd.Person.Matricule); err != nil {
			return err
		}
		m, err := j.AddMember(d.Status, domain.NewActorID(), jmodels.MemberInput{Person: cmd.Person, Role: cmd.Role}, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		added = m.ID
		fx.record("Un membre a été ajouté au jury.",
			"A member was added to the jury.",
			history.TagJury, history.TagModification)
		return nil
	})
	return added, err
}

func (s *Service) ModifyJuryMember(ctx context.Context, cmd commands.ModifyJuryMember) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		if err := s.requirePerson(ctx, cmd.Person.Matricule); err != nil {
			return err
		}
		err := j.ModifyMember(d.Status, cmd.MemberID, jmodels.MemberInput{Person: cmd.Person, Role: cmd.Role}, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		fx.record("Un membre du jury a été modifié.",
			"A jury member was modified.",
			history.TagJury, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) RemoveJuryMember(ctx context.Context, cmd commands.RemoveJuryMember) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		if _, err := j.RemoveMember(d.Status, cmd.MemberID, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Un membre a été retiré du jury.",
			"A member was removed from the jury.",
			history.TagJury, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ModifyJuryMemberRole(ctx context.Context, cmd commands.ModifyJuryMemberRole) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		if err := j.ModifyRole(d.Status, cmd.MemberID, cmd.Role, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le rôle d'un membre du jury a été modifié.",
			"The role of a jury member was modified.",
			history.TagJury, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

// RequestJurySignatures invites every member to sign. The minimum jury size
// comes from the committee configuration.
func (s *Service) RequestJurySignatures(ctx context.Context, cmd commands.RequestJurySignatures) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		now := requestcontext.Now(ctx)
		if err := j.RequestSignatures(d.Status, s.cdd.MinJuryMembers(d.Training.CddCode), now); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusJurySubmitted, now); err != nil {
			return err
		}
		fx.record("Les signatures du jury ont été demandées.",
			"The jury signatures were requested.",
			history.TagJury, history.TagStatusChanged)
		for _, m := range j.Members {
			template := notification.TemplateJurySignatureRequestMember
			if m.IsExternal() {
				template = notification.TemplateJurySignatureRequestExternal
			}
			fx.notify(notification.Mail{
				TemplateID: template,
				Tokens:     tokens(d, "actor_name", s.memberName(ctx, m)),
				Recipients: s.actorRecipients(ctx, m.Actor),
			})
		}
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) memberName(ctx context.Context, m jmodels.Member) string {
	if m.External != nil {
		return m.External.FullName()
	}
	if p, err := s.ext.People.Get(ctx, m.Matricule); err == nil {
		return p.FullName()
	}
	return m.Matricule
}

// onJuryApproved moves the doctorate to JURY_APPROUVE_CA once every member signed.
func (s *Service) onJuryApproved(d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
	if err := d.TransitionTo(dmodels.StatusJuryApprovedCA, j.UpdatedAt); err != nil {
		return err
	}
	fx.record("Le jury a été approuvé par tous ses membres.",
		"The jury was approved by all its members.",
		history.TagJury, history.TagStatusChanged)
	fx.render(artefact{
		key:      DocJuryApproval,
		label:    "Approbation du jury",
		template: notification.CanvasJuryApproval,
		data: map[string]any{
			"reference":    d.Reference,
			"student":      d.Student.FullName(),
			"thesis_title": j.ThesisTitle,
			"members":      len(j.Members),
		},
	})
	fx.notify(notification.Mail{
		TemplateID: notification.TemplateJuryApprovedCA,
		Tokens:     tokens(d),
		Recipients: s.cddRecipients(d),
	})
	return nil
}

func (s *Service) ApproveJuryMember(ctx context.Context, cmd commands.ApproveJuryMember) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		at := s.clock.Stamp(cmd.MemberID.String(), requestcontext.Now(ctx))
		allApproved, err := j.ApproveMember(d.Status, cmd.MemberID, cmd.Comment, cmd.InternalComment, cmd.ApprovalPDF, at)
		if err != nil {
			return err
		}
		fx.record("Un membre du jury a approuvé le jury.",
			"A jury member approved the jury.",
			history.TagJury)
		if allApproved {
			return s.onJuryApproved(d, j, fx)
		}
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) DeclineJuryMember(ctx context.Context, cmd commands.DeclineJuryMember) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		at := s.clock.Stamp(cmd.MemberID.String(), requestcontext.Now(ctx))
		if err := j.DeclineMember(d.Status, cmd.MemberID, cmd.Reason, cmd.Comment, cmd.InternalComment, at); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusJuryRefusedCA, at); err != nil {
			return err
		}
		m, _ := j.Member(cmd.MemberID)
		fx.record("Un membre du jury a refusé le jury.",
			"A jury member refused the jury.",
			history.TagJury, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateJuryMemberRefused,
			Tokens:     tokens(d, "actor_name", s.memberName(ctx, *m), "reason", cmd.Reason),
			Recipients: studentRecipient(d),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ApproveJuryByPdf(ctx context.Context, cmd commands.ApproveJuryByPdf) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		if err := j.ApproveByPdf(d.Status, cmd.ApprovalPDF, requestcontext.Now(ctx)); err != nil {
			return err
		}
		return s.onJuryApproved(d, j, fx)
	})
	return cmd.DoctorateID, err
}

func (s *Service) decideJury(ctx context.Context, v commands.JuryVerdict, role jmodels.Role, approved bool) (domain.DoctorateID, error) {
	err := s.changeJury(ctx, v.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, fx *effects) error {
		caller := requestcontext.Actor(ctx)
		at := s.clock.Stamp(string(role)+":"+v.DoctorateID.String(), requestcontext.Now(ctx))
		decision := jmodels.Decision{
			Matricule:       caller,
			Approved:        approved,
			Reason:          v.Reason,
			Comment:         v.Comment,
			InternalComment: v.InternalComment,
		}
		var next dmodels.Status
		var template string
		if role == jmodels.RoleCDD {
			if err := j.DecideByCdd(d.Status, decision, at); err != nil {
				return err
			}
			next, template = dmodels.StatusJuryRefusedCDD, notification.TemplateJuryDecisionCdd
			if approved {
				next = dmodels.StatusJuryApprovedCDD
			}
		} else {
			if err := j.DecideByAdre(d.Status, decision, at); err != nil {
				return err
			}
			next, template = dmodels.StatusJuryRefusedADRE, notification.TemplateJuryDecisionAdre
			if approved {
				next = dmodels.StatusJuryApprovedADRE
			}
		}
		if err := d.TransitionTo(next, at); err != nil {
			return err
		}

		fr, en := juryDecisionLabel(role, approved)
		fx.record(fr, en, history.TagJury, history.TagStatusChanged)
		decisionLabel := "approved"
		if !approved {
			decisionLabel = "refused"
		}
		fx.notify(notification.Mail{
			TemplateID: template,
			Tokens:     tokens(d, "decision", decisionLabel, "reason", v.Reason),
			Recipients: studentRecipient(d),
		})
		return nil
	})
	return v.DoctorateID, err
}

func (s *Service) ApproveJuryByCdd(ctx context.Context, cmd commands.ApproveJuryByCdd) (domain.DoctorateID, error) {
	return s.decideJury(ctx, cmd.JuryVerdict, jmodels.RoleCDD, true)
}

func (s *Service) DeclineJuryByCdd(ctx context.Context, cmd commands.DeclineJuryByCdd) (domain.DoctorateID, error) {
	return s.decideJury(ctx, cmd.JuryVerdict, jmodels.RoleCDD, false)
}

func (s *Service) ApproveJuryByAdre(ctx context.Context, cmd commands.ApproveJuryByAdre) (domain.DoctorateID, error) {
	return s.decideJury(ctx, cmd.JuryVerdict, jmodels.RoleADRE, true)
}

func (s *Service) DeclineJuryByAdre(ctx context.Context, cmd commands.DeclineJuryByAdre) (domain.DoctorateID, error) {
	return s.decideJury(ctx, cmd.JuryVerdict, jmodels.RoleADRE, false)
}
