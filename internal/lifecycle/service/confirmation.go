package service

import (
	"context"

	cmodels "parcours/internal/confirmation/models"
	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/notification"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

// Keys of the SYSTEME documents generated by the confirmation stage.
const (
	DocConfirmationMinutes = "confirmation.minutes_canvas"
	DocConfirmationSuccess = "confirmation.success_certificate"
	DocConfirmationFailure = "confirmation.failure_certificate"
)

// changeConfirmation loads the doctorate and its active paper, runs fn and
// saves both.
func (s *Service) changeConfirmation(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		c, err := s.loadConfirmation(ctx, d)
		if err != nil {
			return err
		}
		if err := fn(ctx, d, c, fx); err != nil {
			return err
		}
		if err := s.saveConfirmation(ctx, c); err != nil {
			return err
		}
		return s.saveDoctorate(ctx, d)
	})
}

func confirmationCanvas(d *dmodels.Doctorate, c *cmodels.ConfirmationPaper) map[string]any {
	data := map[string]any{
		"reference": d.Reference,
		"student":   d.Student.FullName(),
		"training":  d.Training.Title,
		"deadline":  c.Deadline.String(),
	}
	if c.ExamDate != nil {
		data["exam_date"] = c.ExamDate.String()
	}
	return data
}

// attachToConfirmation stores a generated file on the paper identified by id.
func (s *Service) attachToConfirmation(id domain.ConfirmationPaperID, set func(c *cmodels.ConfirmationPaper, files []domain.FileID)) func(ctx context.Context, file domain.FileID) error {
	return func(ctx context.Context, file domain.FileID) error {
		c, err := s.stores.Confirmations.Get(ctx, id)
		if err != nil {
			return err
		}
		set(c, []domain.FileID{file})
		return s.stores.Confirmations.Save(ctx, c)
	}
}

func (s *Service) SubmitConfirmationPaper(ctx context.Context, cmd commands.SubmitConfirmationPaper) (domain.DoctorateID, error) {
	err := s.changeConfirmation(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error {
		now := requestcontext.Now(ctx)
		err := c.Submit(d.Status, cmodels.Submission{
			ExamDate:                      cmd.ExamDate,
			ResearchReport:                cmd.ResearchReport,
			SupervisoryPanelMinutes:       cmd.SupervisoryPanelMinutes,
			ResearchMandateRenewalOpinion: cmd.ResearchMandateRenewalOpinion,
		}, s.today(now), now)
		if err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusConfirmationSubmitted, now); err != nil {
			return err
		}
		group, err := s.loadGroup(ctx, d.ID)
		if err != nil {
			return err
		}

		fx.record("L'épreuve de confirmation a été soumise.",
			"The confirmation paper was submitted.",
			history.TagConfirmation, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocConfirmationMinutes,
			label:    "Canevas du procès-verbal de l'épreuve de confirmation",
			template: notification.CanvasConfirmationMinutes,
			data:     confirmationCanvas(d, c),
			attach: s.attachToConfirmation(c.ID, func(c *cmodels.ConfirmationPaper, files []domain.FileID) {
				c.MinutesCanvas = files
			}),
		})
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationSubmitStudent,
			Tokens:     tokens(d, "date", c.ExamDate.String()),
			Recipients: studentRecipient(d),
		})
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationSubmitPromoter,
			Tokens:     tokens(d, "date", c.ExamDate.String()),
			Recipients: s.promoterRecipients(ctx, group),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) CompleteConfirmationPaperByPromoter(ctx context.Context, cmd commands.CompleteConfirmationPaperByPromoter) (domain.DoctorateID, error) {
	err := s.changeConfirmation(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error {
		if err := c.CompleteByPromoter(d.Status, cmd.SupervisoryPanelMinutes, cmd.ResearchMandateRenewalOpinion, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le procès-verbal de l'épreuve de confirmation a été ajouté.",
			"The confirmation paper minutes were added.",
			history.TagConfirmation, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) DecideConfirmationSuccess(ctx context.Context, cmd commands.DecideConfirmationSuccess) (domain.DoctorateID, error) {
	err := s.changeConfirmation(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error {
		if err := c.CanDecideSuccess(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusConfirmationSucceeded, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("L'épreuve de confirmation a été réussie.",
			"The confirmation paper was passed.",
			history.TagConfirmation, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocConfirmationSuccess,
			label:    "Attestation de réussite de l'épreuve de confirmation",
			template: notification.CanvasConfirmationSuccess,
			data:     confirmationCanvas(d, c),
			attach: s.attachToConfirmation(c.ID, func(c *cmodels.ConfirmationPaper, files []domain.FileID) {
				c.SuccessCertificate = files
			}),
		})
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationOnSuccessStudent,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) DecideConfirmationFailure(ctx context.Context, cmd commands.DecideConfirmationFailure) (domain.DoctorateID, error) {
	err := s.changeConfirmation(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error {
		if err := c.CanDecideFailure(d.Status); err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusNotAllowedToContinue, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("L'épreuve de confirmation n'a pas été réussie.",
			"The confirmation paper was failed.",
			history.TagConfirmation, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocConfirmationFailure,
			label:    "Attestation d'échec de l'épreuve de confirmation",
			template: notification.CanvasConfirmationFailure,
			data:     confirmationCanvas(d, c),
			attach: s.attachToConfirmation(c.ID, func(c *cmodels.ConfirmationPaper, files []domain.FileID) {
				c.FailureCertificate = files
			}),
		})
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationOnFailureStudent,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

// DecideConfirmationRetake archives the active paper before saving its successor.
func (s *Service) DecideConfirmationRetake(ctx context.Context, cmd commands.DecideConfirmationRetake) (domain.ConfirmationPaperID, error) {
	var successorID domain.ConfirmationPaperID
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		now := requestcontext.Now(ctx)
		d, err := s.loadDoctorate(ctx, cmd.DoctorateID)
		if err != nil {
			return err
		}
		c, err := s.loadConfirmation(ctx, d)
		if err != nil {
			return err
		}
		successor, err := c.Retake(d.Status, cmd.NewDeadline, domain.NewConfirmationPaperID(), now)
		if err != nil {
			return err
		}
		if err := d.TransitionTo(dmodels.StatusConfirmationToRetake, now); err != nil {
			return err
		}
		if err := s.saveConfirmation(ctx, c); err != nil {
			return err
		}
		if err := s.saveConfirmation(ctx, successor); err != nil {
			return err
		}
		d.ReplaceConfirmationPaper(successor.ID, now)
		if err := s.saveDoctorate(ctx, d); err != nil {
			return err
		}
		successorID = successor.ID

		fx.record("L'épreuve de confirmation est à repasser.",
			"The confirmation paper must be retaken.",
			history.TagConfirmation, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationOnRetakeStudent,
			Tokens:     tokens(d, "new_deadline", successor.Deadline.String()),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return successorID, err
}

func (s *Service) RequestConfirmationExtension(ctx context.Context, cmd commands.RequestConfirmationExtension) (domain.DoctorateID, error) {
	err := s.changeConfirmation(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error {
		err := c.RequestExtension(d.Status, cmd.NewDeadline, cmd.BriefJustification, cmd.JustificationLetter, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		fx.record("Une prolongation du délai de l'épreuve de confirmation a été demandée.",
			"An extension of the confirmation deadline was requested.",
			history.TagConfirmation, history.TagModification)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationExtensionRequest,
			Tokens:     tokens(d, "new_deadline", cmd.NewDeadline.String()),
			Recipients: s.cddRecipients(d),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ApproveConfirmationExtension(ctx context.Context, cmd commands.ApproveConfirmationExtension) (domain.DoctorateID, error) {
	err := s.changeConfirmation(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, c *cmodels.ConfirmationPaper, fx *effects) error {
		if err := c.ApproveExtension(cmd.CddOpinion, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La prolongation du délai de l'épreuve de confirmation a été accordée.",
			"The confirmation deadline extension was approved.",
			history.TagConfirmation, history.TagModification)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateConfirmationExtensionApproved,
			Tokens:     tokens(d, "new_deadline", c.Deadline.String()),
			Recipients: studentRecipient(d),
		})
		return nil
	})
	return cmd.DoctorateID, err
}
