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

// Formule 2: the private and the public defence are submitted, authorised
// and decided together. The private part lives on the private defence
// record, the public part on the doctorate.

func (s *Service) SubmitPrivateAndPublicDefenses(ctx context.Context, cmd commands.SubmitPrivateAndPublicDefenses) (domain.DoctorateID, error) {
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
		private := pmodels.Submission{
			ThesisTitle:              cmd.ThesisTitle,
			DateTime:                 cmd.PrivateDateTime,
			Place:                    cmd.PrivatePlace,
			ManuscriptSubmissionDate: cmd.ManuscriptSubmissionDate,
		}
		public := publicDefenseInput(cmd.PublicDefense)
		err = validation.Run(
			[]validation.Validator{private.Contract(), public.Contract(dmodels.ErrDefensesIncomplete)},
			append(d.DefensesSubmissionInvariants(), p.RequireActive())...,
		)
		if err != nil {
			return err
		}
		p.ApplySubmission(private, now)
		d.ApplyPublicDefense(public, now)
		d.SetThesisTitle(cmd.ThesisTitle, now)
		if err := d.TransitionTo(dmodels.StatusDefensesSubmitted, now); err != nil {
			return err
		}
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

		fx.record("La défense privée et la soutenance publique ont été soumises.",
			"The private and public defences were submitted.",
			history.TagPrivateDefense, history.TagPublicDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDefensesSubmitted,
			Tokens:     tokens(d, "date", formatDateTime(p.DateTime), "place", p.Place),
			Recipients: s.promoterRecipients(ctx, group),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) AuthorisePrivateAndPublicDefenses(ctx context.Context, cmd commands.AuthorisePrivateAndPublicDefenses) (domain.DoctorateID, error) {
	err := s.changePrivateDefense(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error {
		if err := validation.Run(nil, p.RequireActive()); err != nil {
			return err
		}
		if err := d.AuthoriseDefenses(requestcontext.Now(ctx)); err != nil {
			return err
		}
		jury, err := s.loadJury(ctx, d.ID)
		if err != nil {
			return err
		}
		recipients := s.juryRecipients(ctx, jury)

		fx.record("La défense privée et la soutenance publique ont été autorisées.",
			"The private and public defences were authorised.",
			history.TagPrivateDefense, history.TagPublicDefense, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocPrivateDefenseMinutes,
			label:    "Canevas du procès-verbal de la défense privée",
			template: notification.CanvasPrivateDefenseMinutes,
			data:     privateDefenseCanvas(d, p),
			attach:   s.attachToPrivateDefense(p.ID),
		})
		fx.render(artefact{
			key:      DocPublicDefenseMinutes,
			label:    "Canevas du procès-verbal de la soutenance publique",
			template: notification.CanvasPublicDefenseMinutes,
			data:     publicDefenseCanvas(d),
			attach:   s.attachPublicDefenseCanvas(d.ID),
		})
		fx.notify(notification.Mail{
			TemplateID:  notification.TemplateDefensesAuthorised,
			Tokens:      tokens(d, "date", formatDateTime(d.PublicDefense.DateTime), "place", d.PublicDefense.Place),
			Recipients:  recipients,
			Attachments: s.defenseInvitation(ctx, d, jury, recipients),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

// SubmitPrivateAndPublicDefensesMinutes stores the same minutes on both parts.
func (s *Service) SubmitPrivateAndPublicDefensesMinutes(ctx context.Context, cmd commands.SubmitPrivateAndPublicDefensesMinutes) (domain.DoctorateID, error) {
	err := s.changePrivateDefense(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, p *pmodels.PrivateDefense, fx *effects) error {
		now := requestcontext.Now(ctx)
		if err := d.SubmitDefensesMinutes(cmd.Minutes, now); err != nil {
			return err
		}
		p.ApplyMinutes(cmd.Minutes, now)
		fx.record("Le procès-verbal de la défense privée et de la soutenance publique a été déposé.",
			"The private and public defence minutes were submitted.",
			history.TagPrivateDefense, history.TagPublicDefense, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmPrivateAndPublicDefensesSuccess(ctx context.Context, cmd commands.ConfirmPrivateAndPublicDefensesSuccess) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.ConfirmDefensesSuccess(requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le doctorat a été proclamé.",
			"The doctorate was proclaimed.",
			history.TagPrivateDefense, history.TagPublicDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDefensesOnSuccess,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmPrivateAndPublicDefensesFailure(ctx context.Context, cmd commands.ConfirmPrivateAndPublicDefensesFailure) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.ConfirmDefensesFailure(requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La défense privée et la soutenance publique n'ont pas été réussies.",
			"The private and public defences were failed.",
			history.TagPrivateDefense, history.TagPublicDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDefensesOnFailure,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmPrivateAndPublicDefensesRetake(ctx context.Context, cmd commands.ConfirmPrivateAndPublicDefensesRetake) (domain.PrivateDefenseID, error) {
	var successorID domain.PrivateDefenseID
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, cmd.DoctorateID)
		if err != nil {
			return err
		}
		successor, err := s.retakePrivateDefense(ctx, d, dmodels.ErrStatusNotDefensesAuthorised, dmodels.StatusDefensesAuthorised)
		if err != nil {
			return err
		}
		successorID = successor.ID
		fx.record("La défense privée et la soutenance publique sont à recommencer.",
			"The private and public defences must be retaken.",
			history.TagPrivateDefense, history.TagPublicDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDefensesOnRetake,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return successorID, err
}
