package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/notification"
	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

const DocPublicDefenseMinutes = "public_defense.minutes_canvas"

func publicDefenseInput(in commands.PublicDefense) dmodels.PublicDefenseInput {
	return dmodels.PublicDefenseInput{
		Language:            in.Language,
		DateTime:            in.DateTime,
		Place:               in.Place,
		DeliberationRoom:    in.DeliberationRoom,
		AdditionalInfo:      in.AdditionalInfo,
		AnnouncementSummary: in.AnnouncementSummary,
		AnnouncementPhoto:   in.AnnouncementPhoto,
	}
}

func (s *Service) changeDoctorate(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, d, fx); err != nil {
			return err
		}
		return s.saveDoctorate(ctx, d)
	})
}

func formatDateTime(dt *civil.DateTime) string {
	if dt == nil {
		return ""
	}
	return dt.String()
}

// defenseInvitation is the calendar invitation sent to the jury.
func (s *Service) defenseInvitation(ctx context.Context, d *dmodels.Doctorate, j *jmodels.Jury, recipients []ports.Recipient) []ports.Attachment {
	if d.PublicDefense.DateTime == nil {
		return nil
	}
	attendees := make([]string, 0, len(recipients))
	for _, r := range recipients {
		attendees = append(attendees, r.Email)
	}
	var organizer string
	if c, ok := s.cdd.Committee(d.Training.CddCode); ok {
		organizer = c.ManagerEmail
	}
	inv := notification.DefenseInvitation{
		UID:         fmt.Sprintf("%s-public-defense@parcours-doctoral", d.ID),
		Summary:     fmt.Sprintf("Soutenance publique de %s", d.Student.FullName()),
		Description: j.ThesisTitle,
		Location:    d.PublicDefense.Place,
		Start:       d.PublicDefense.DateTime.In(s.location),
		Organizer:   organizer,
		Attendees:   attendees,
	}
	return []ports.Attachment{notification.Calendar(inv, requestcontext.Now(ctx))}
}

func publicDefenseCanvas(d *dmodels.Doctorate) map[string]any {
	return map[string]any{
		"reference":         d.Reference,
		"student":           d.Student.FullName(),
		"thesis_title":      d.ThesisTitle,
		"date_time":         formatDateTime(d.PublicDefense.DateTime),
		"place":             d.PublicDefense.Place,
		"deliberation_room": d.PublicDefense.DeliberationRoom,
	}
}

func (s *Service) attachPublicDefenseCanvas(id domain.DoctorateID) func(ctx context.Context, file domain.FileID) error {
	return func(ctx context.Context, file domain.FileID) error {
		d, err := s.stores.Doctorates.Get(ctx, id)
		if err != nil {
			return err
		}
		d.PublicDefense.MinutesCanvas = []domain.FileID{file}
		return s.stores.Doctorates.Save(ctx, d)
	}
}

func (s *Service) SubmitPublicDefense(ctx context.Context, cmd commands.SubmitPublicDefense) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.SubmitPublicDefense(publicDefenseInput(cmd.PublicDefense), requestcontext.Now(ctx)); err != nil {
			return err
		}
		group, err := s.loadGroup(ctx, d.ID)
		if err != nil {
			return err
		}
		fx.record("La soutenance publique a été soumise.",
			"The public defence was submitted.",
			history.TagPublicDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePublicDefenseSubmitted,
			Tokens:     tokens(d, "date", formatDateTime(d.PublicDefense.DateTime), "place", d.PublicDefense.Place),
			Recipients: s.promoterRecipients(ctx, group),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

// AuthorisePublicDefense invites the jury with a calendar attachment.
func (s *Service) AuthorisePublicDefense(ctx context.Context, cmd commands.AuthorisePublicDefense) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.AuthorisePublicDefense(requestcontext.Now(ctx)); err != nil {
			return err
		}
		jury, err := s.loadJury(ctx, d.ID)
		if err != nil {
			return err
		}
		recipients := s.juryRecipients(ctx, jury)

		fx.record("La soutenance publique a été autorisée.",
			"The public defence was authorised.",
			history.TagPublicDefense, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocPublicDefenseMinutes,
			label:    "Canevas du procès-verbal de la soutenance publique",
			template: notification.CanvasPublicDefenseMinutes,
			data:     publicDefenseCanvas(d),
			attach:   s.attachPublicDefenseCanvas(d.ID),
		})
		fx.notify(notification.Mail{
			TemplateID:  notification.TemplatePublicDefenseAuthorised,
			Tokens:      tokens(d, "date", formatDateTime(d.PublicDefense.DateTime), "place", d.PublicDefense.Place),
			Recipients:  recipients,
			Attachments: s.defenseInvitation(ctx, d, jury, recipients),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) SubmitPublicDefenseMinutes(ctx context.Context, cmd commands.SubmitPublicDefenseMinutes) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.SubmitPublicDefenseMinutes(cmd.Minutes, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le procès-verbal de la soutenance publique a été déposé.",
			"The public defence minutes were submitted.",
			history.TagPublicDefense, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ConfirmPublicDefenseSuccess(ctx context.Context, cmd commands.ConfirmPublicDefenseSuccess) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.ConfirmPublicDefenseSuccess(requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("Le doctorat a été proclamé.",
			"The doctorate was proclaimed.",
			history.TagPublicDefense, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplatePublicDefenseOnSuccess,
			Tokens:     tokens(d),
			Recipients: studentRecipient(d),
			Subject:    cmd.Subject,
			Body:       cmd.Body,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) ScheduleDiplomaCollection(ctx context.Context, cmd commands.ScheduleDiplomaCollection) (domain.DoctorateID, error) {
	err := s.changeDoctorate(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, fx *effects) error {
		if err := d.ScheduleDiplomaCollection(cmd.Date, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("La date de retrait du diplôme a été fixée.",
			"The diploma collection date was set.",
			history.TagPublicDefense, history.TagModification)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDiplomaCollectionScheduled,
			Tokens:     tokens(d, "date", cmd.Date.String()),
			Recipients: studentRecipient(d),
		})
		return nil
	})
	return cmd.DoctorateID, err
}
