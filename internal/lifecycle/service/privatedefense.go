package service

import (
	"context"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/notification"
	pmodels "parcours/internal/privatedefense/models"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
	"parcours/pkg/validation"
)

const DocPrivateDefenseMinutes = "private_defense.minutes_canvas"

func (s *Service) changePrivateDefense(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		p, _, err := s.loadPrivateDefense(ctx, d, false, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		if err := fn(ctx, d, p, fx); err != nil {
			return err
		}
		if err := s.savePrivateDefense(ctx, p); err != nil {
			return err
		}
		return s.saveDoctorate(ctx, d)
	})
}

func privateDefenseCanvas(d *dmodels.Doctorate, p *pmodels.PrivateDefense) map[string]any {
	data := map[string]any{
		"reference":    d.Reference,
		"student":      d.Student.FullName(),
		"thesis_title": d.ThesisTitle,
		"place":        p.Place,
	}
	if p.DateTime != nil {
		data["date_time"] = p.DateTime.String()
	}
	return data
}

func (s *Service) attachToPrivateDefense(id domain.PrivateDefenseID) func(ctx context.Context, file domain.FileID) error {
	return func(ctx context.Context, file domain.FileID) error {
		p, err := s.stores.PrivateDefenses.Get(ctx, id)
		if err != nil {
			return err
		}
		p.MinutesCanvas = []domain.FileID{file}
		return s.stores.PrivateDefenses.Save(ctx, p)
	}
}

func (s *Service) SubmitPrivateDefense(ctx context.Context, cmd commands.SubmitPrivateDefense) (domain.DoctorateID, error) {
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		now := requestcontext.Now(ctx)
		d, err := s.loadDoctorate(ctx, cmd.DoctorateID)
		if err != nil {
			return err
		}
		p, created, err := s.loadPrivateDefense(ctx, d, true, now)
		if err != nil {
			return err
		}
		err = p.Submit(d.Status, pmodels.Submission{
			ThesisTitle:              cmd.ThesisTitle,
			DateTime:                 cmd.DateTime,
			Place:                    cmd.Place,
			ManuscriptSubmissionDate: cmd.ManuscriptSubmissionDate,
		}, now)
		if err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusPrivateDefenseSubmitted, now); err != nil {
			return err
		}
		d.SetThesisTitle(cmd.ThesisTitle, now)
		if created {
			d.ReplacePrivateDefense(p.ID, now)
		}
		if err := s.savePrivateDefense(ctx, p); err != nil {
			return err
		}
		if err := s.saveDoctorate(ctx, d); err != nil {
			return err
		}
		group, err := s.loadGroup(ctx, d.ID)
		if err != nil {
			return err
		}

		fx.record("La défense privée a été soumise.",
			"The private defence was submitted.",
			history.TagPrivateDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePrivateDefenseSubmitted,
			Tokens:     tokens(d, "date", p.DateTime.String(), "place", p.Place),
			Recipients: s.promoterRecipients(ctx, group),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) AuthorisePrivateDefense(ctx context.Context, cmd commands.AuthorisePrivateDefense) (domain.DoctorateID, error) {
	err := s.changePrivateDefense(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error {
		if err := p.CanAuthorise(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusPrivateDefenseAuthorised, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La défense privée a été autorisée.",
			"The private defence was authorised.",
			history.TagPrivateDefense, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocPrivateDefenseMinutes,
			label:    "Canevas du procès-verbal de la défense privée",
			template: notification.CanvasPrivateDefenseMinutes,
			data:     privateDefenseCanvas(d, p),
			attach:   s.attachToPrivateDefense(p.ID),
		})
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePrivateDefenseAuthorised,
			Tokens:     tokens(d, "date", p.DateTime.String(), "place", p.Place),
			Recipients: studentRecipient(d),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) SubmitPrivateDefenseMinutes(ctx context.Context, cmd commands.SubmitPrivateDefenseMinutes) (domain.DoctorateID, error) {
	err := s.changePrivateDefense(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error {
		if err := p.SubmitMinutes(d.Status, cmd.Minutes, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le procès-verbal de la défense privée a été déposé.",
			"The private defence minutes were submitted.",
			history.TagPrivateDefense, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmPrivateDefenseSuccess(ctx context.Context, cmd commands.ConfirmPrivateDefenseSuccess) (domain.DoctorateID, error) {
	err := s.changePrivateDefense(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error {
		if err := p.CanConfirmSuccess(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusPrivateDefenseSucceeded, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La défense privée a été réussie.",
			"The private defence was passed.",
			history.TagPrivateDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePrivateDefenseOnSuccess,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmPrivateDefenseFailure(ctx context.Context, cmd commands.ConfirmPrivateDefenseFailure) (domain.DoctorateID, error) {
	err := s.changePrivateDefense(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error {
		if err := p.CanConfirmFailure(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusPrivateDefenseFailed, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La défense privée n'a pas été réussie.",
			"The private defence was failed.",
			history.TagPrivateDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePrivateDefenseOnFailure,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

// retakePrivateDefense archives the active defence and saves its successor.
// requiredStatus differs between the two formulae.
func (s *Service) retakePrivateDefense(ctx context.Context, d *dmodels.Doctorate, statusErr error, requiredStatus dmodels.Status) (*pmodels.PrivateDefense, error) {
	now := requestcontext.Now(ctx)
	if err := validation.Run(nil, d.RequireStatus(statusErr, requiredStatus)); err != nil {
		return nil, err
	}
	p, _, err := s.loadPrivateDefense(ctx, d, false, now)
	if err != nil {
		return nil, err
	}
	successor, err := p.Retake(domain.NewPrivateDefenseID(), now)
	if err != nil {
		return nil, err
	}
	if err := d.TransitionTo(dmodels.StatusPrivateDefenseToRetake, now); err != nil {
		return nil, err
	}
	if err := s.savePrivateDefense(ctx, p); err != nil {
		return nil, err
	}
	if err := s.savePrivateDefense(ctx, successor); err != nil {
		return nil, err
	}
	d.ReplacePrivateDefense(successor.ID, now)
	if err := s.saveDoctorate(ctx, d); err != nil {
		return nil, err
	}
	return successor, nil
}

func (s *Service) ConfirmPrivateDefenseRetake(ctx context.Context, cmd commands.ConfirmPrivateDefenseRetake) (domain.PrivateDefenseID, error) {
	var successorID domain.PrivateDefenseID
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, cmd.DoctorateID)
		if err != nil {
			return err
		}
		successor, err := s.retakePrivateDefense(ctx, d, pmodels.ErrStatusNotAuthorised, dmodels.StatusPrivateDefenseAuthorised)
		if err != nil {
			return err
		}
		successorID = successor.ID
		fx.record("La défense privée est à recommencer.",
			"The private defence must be retaken.",
			history.TagPrivateDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePrivateDefenseOnRetake,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return successorID, err
}
