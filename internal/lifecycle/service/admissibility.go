package service

import (
	"context"

	amodels "parcours/internal/admissibility/models"
	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/notification"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

const DocAdmissibilityMinutes = "admissibility.minutes_canvas"

func (s *Service) changeAdmissibility(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, a *amodels.Admissibility, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		a, _, err := s.loadAdmissibility(ctx, d, false, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		if err := fn(ctx, d, a, fx); err != nil {
			return err
		}
		if err := s.saveAdmissibility(ctx, a); err != nil {
			return err
		}
		return s.saveDoctorate(ctx, d)
	})
}

// SubmitAdmissibility creates the admissibility on first submission and
// updates the active one in place afterwards.
func (s *Service) SubmitAdmissibility(ctx context.Context, cmd commands.SubmitAdmissibility) (domain.DoctorateID, error) {
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		now := requestcontext.Now(ctx)
		d, err := s.loadDoctorate(ctx, cmd.DoctorateID)
		if err != nil {
			return err
		}
		in := amodels.Submission{
			ThesisTitle:              cmd.ThesisTitle,
			DecisionDate:             cmd.DecisionDate,
			ManuscriptSubmissionDate: cmd.ManuscriptSubmissionDate,
		}
		if err := amodels.CanSubmit(d.Status, d.RequireFormule2(), in); err != nil {
			return err
		}
		a, created, err := s.loadAdmissibility(ctx, d, true, now)
		if err != nil {
			return err
		}
		if err := a.ApplySubmission(in, now); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusAdmissibilitySubmitted, now); err != nil {
			return err
		}
		d.SetThesisTitle(in.ThesisTitle, now)
		if created {
			d.ReplaceAdmissibility(a.ID, now)
		}
		if err := s.saveAdmissibility(ctx, a); err != nil {
			return err
		}
		if err := s.saveDoctorate(ctx, d); err != nil {
			return err
		}
		group, err := s.loadGroup(ctx, d.ID)
		if err != nil {
			return err
		}

		fx.record("La recevabilité a été soumise.",
			"The admissibility was submitted.",
			history.TagAdmissibility, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocAdmissibilityMinutes,
			label:    "Canevas du procès-verbal de la recevabilité",
			template: notification.CanvasAdmissibilityMinutes,
			data: map[string]any{
				"reference":     d.Reference,
				"student":       d.Student.FullName(),
				"thesis_title":  d.ThesisTitle,
				"decision_date": a.DecisionDate.String(),
			},
			attach: s.attachToAdmissibility(a.ID),
		})
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateAdmissibilitySubmitted,
			Tokens:     tokens(d, "date", a.DecisionDate.String()),
			Recipients: s.promoterRecipients(ctx, group),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) attachToAdmissibility(id domain.AdmissibilityID) func(ctx context.Context, file domain.FileID) error {
	return func(ctx context.Context, file domain.FileID) error {
		a, err := s.stores.Admissibilities.Get(ctx, id)
		if err != nil {
			return err
		}
		a.MinutesCanvas = []domain.FileID{file}
		return s.stores.Admissibilities.Save(ctx, a)
	}
}

func (s *Service) SubmitAdmissibilityMinutes(ctx context.Context, cmd commands.SubmitAdmissibilityMinutes) (domain.DoctorateID, error) {
	err := s.changeAdmissibility(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *amodels.Admissibility, fx *effects) error {
		if err := a.SubmitMinutes(d.Status, cmd.Minutes, cmd.JuryOpinion, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le procès-verbal de la recevabilité a été déposé.",
			"The admissibility minutes were submitted.",
			history.TagAdmissibility, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmAdmissibilitySuccess(ctx context.Context, cmd commands.ConfirmAdmissibilitySuccess) (domain.DoctorateID, error) {
	err := s.changeAdmissibility(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *amodels.Admissibility, fx *effects) error {
		if err := a.CanConfirmSuccess(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusAdmissibilitySucceeded, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La recevabilité a été réussie.",
			"The admissibility was passed.",
			history.TagAdmissibility, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateAdmissibilityOnSuccess,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmAdmissibilityFailure(ctx context.Context, cmd commands.ConfirmAdmissibilityFailure) (domain.DoctorateID, error) {
	err := s.changeAdmissibility(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *amodels.Admissibility, fx *effects) error {
		if err := a.CanConfirmFailure(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusAdmissibilityFailed, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La recevabilité n'a pas été réussie.",
			"The admissibility was failed.",
			history.TagAdmissibility, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateAdmissibilityOnFailure,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmAdmissibilityRetake(ctx context.Context, cmd commands.ConfirmAdmissibilityRetake) (domain.AdmissibilityID, error) {
	var successorID domain.AdmissibilityID
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		now := requestcontext.Now(ctx)
		d, err := s.loadDoctorate(ctx, cmd.DoctorateID)
		if err != nil {
			return err
		}
		a, _, err := s.loadAdmissibility(ctx, d, false, now)
		if err != nil {
			return err
		}
		successor, err := a.Retake(d.Status, domain.NewAdmissibilityID(), now)
		if err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusAdmissibilityToRetake, now); err != nil {
			return err
		}
		if err := s.saveAdmissibility(ctx, a); err != nil {
			return err
		}
		if err := s.saveAdmissibility(ctx, successor); err != nil {
			return err
		}
		d.ReplaceAdmissibility(successor.ID, now)
		if err := s.saveDoctorate(ctx, d); err != nil {
			return err
		}
		successorID = successor.ID

		fx.record("La recevabilité est à recommencer.",
			"The admissibility must be retaken.",
			history.TagAdmissibility, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateAdmissibilityOnRetake,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return successorID, err
}
