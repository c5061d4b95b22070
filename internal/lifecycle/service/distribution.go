package service

import (
	"context"
	"time"

	distmodels "parcours/internal/distribution/models"
	dmodels "parcours/internal/doctorate/models"
	"parcours/internal/history"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/notification"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

const DocThesisDistributionTerms = "thesis_distribution.terms"

func (s *Service) changeDistribution(ctx context.Context, id domain.DoctorateID, fn func(ctx context.Context, d *dmodels.Doctorate, a *distmodels.Authorization, fx *effects) error) error {
	return s.mutate(ctx, id, func(ctx context.Context, fx *effects) error {
		d, err := s.loadDoctorate(ctx, id)
		if err != nil {
			return err
		}
		a, err := s.loadDistribution(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, d, a, fx); err != nil {
			return err
		}
		return s.saveDistribution(ctx, a)
	})
}

func (s *Service) EncodeThesisDistribution(ctx context.Context, cmd commands.EncodeThesisDistribution) (domain.DoctorateID, error) {
	err := s.changeDistribution(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *distmodels.Authorization, fx *effects) error {
		err := a.Encode(d.Status, distmodels.Content{
			FundingSources:       cmd.FundingSources,
			SummaryEN:            cmd.SummaryEN,
			SummaryOther:         cmd.SummaryOther,
			SummaryOtherLanguage: cmd.SummaryOtherLanguage,
			Keywords:             cmd.Keywords,
			DiffusionType:        cmd.DiffusionType,
			EmbargoDate:          cmd.EmbargoDate,
			AdditionalLimitation: cmd.AdditionalLimitation,
		}, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		fx.record("Les informations de diffusion de la thèse ont été encodées.",
			"The thesis distribution details were encoded.",
			history.TagDistribution, history.TagModification)
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) SubmitThesisDistribution(ctx context.Context, cmd commands.SubmitThesisDistribution) (domain.DoctorateID, error) {
	err := s.changeDistribution(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *distmodels.Authorization, fx *effects) error {
		if err := a.Submit(d.Status, cmd.AcceptanceContent, requestcontext.Now(ctx)); err != nil {
			return err
		}
		data := map[string]any{
			"reference":      d.Reference,
			"student":        d.Student.FullName(),
			"thesis_title":   d.ThesisTitle,
			"diffusion_type": string(a.DiffusionType),
			"keywords":       a.Keywords,
			"acceptance":     a.AcceptanceContent,
			"accepted_on":    a.AcceptedOn.Format(time.DateOnly),
		}
		if a.EmbargoDate != nil {
			data["embargo_date"] = a.EmbargoDate.String()
		}
		fx.record("L'autorisation de diffusion de la thèse a été soumise.",
			"The thesis distribution authorisation was submitted.",
			history.TagDistribution, history.TagStatusChanged)
		fx.render(artefact{
			key:      DocThesisDistributionTerms,
			label:    "Conditions de diffusion de la thèse",
			template: notification.CanvasThesisDistributionTerms,
			data:     data,
		})
		return nil
	})
	return cmd.DoctorateID, err
}

func (s *Service) SendThesisDistributionToReferencePromoter(ctx context.Context, cmd commands.SendThesisDistributionToReferencePromoter) (domain.DoctorateID, error) {
	err := s.changeDistribution(ctx, cmd.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *distmodels.Authorization, fx *effects) error {
		group, err := s.loadGroup(ctx, d.ID)
		if err != nil {
			return err
		}
		var matricule string
		if ref, ok := group.ReferencePromoter(); ok {
			matricule = ref.Matricule
		}
		if err := a.SendToReferencePromoter(matricule, requestcontext.Now(ctx)); err != nil {
			return err
		}
		fx.record("L'autorisation de diffusion de la thèse a été envoyée au promoteur de référence.",
			"The thesis distribution authorisation was sent to the reference promoter.",
			history.TagDistribution, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDistributionToPromoter,
			Tokens:     tokens(d),
			Recipients: s.referencePromoterRecipients(ctx, group),
		})
		return nil
	})
	return cmd.DoctorateID, err
}

type distributionDecider func(a *distmodels.Authorization, d distmodels.Decision, now time.Time) error

// decideDistribution records a signatory verdict. The deciding matricule is
// the caller's; the reference promoter check relies on it.
func (s *Service) decideDistribution(ctx context.Context, v commands.DistributionVerdict, approved bool, decide distributionDecider, label, labelEN string) (domain.DoctorateID, error) {
	err := s.changeDistribution(ctx, v.DoctorateID, func(ctx context.Context, d *dmodels.Doctorate, a *distmodels.Authorization, fx *effects) error {
		err := decide(a, distmodels.Decision{
			Matricule:       requestcontext.Actor(ctx),
			Approved:        approved,
			Reason:          v.Reason,
			Comment:         v.Comment,
			InternalComment: v.InternalComment,
		}, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		if approved {
			fx.record("L'autorisation de diffusion de la thèse a été approuvée par "+label+".",
				"The thesis distribution authorisation was approved by "+labelEN+".",
				history.TagDistribution, history.TagStatusChanged)
			if a.Status == distmodels.StatusApprovedBySceb {
				fx.notify(notification.Mail{
					TemplateID: notification.TemplateDistributionApprovedStudent,
					Tokens:     tokens(d, "actor_name", label),
					Recipients: studentRecipient(d),
				})
			}
			return nil
		}
		fx.record("L'autorisation de diffusion de la thèse a été refusée par "+label+".",
			"The thesis distribution authorisation was refused by "+labelEN+".",
			history.TagDistribution, history.TagStatusChanged)
		fx.notify(notification.Mail{
			TemplateID: notification.TemplateDistributionRefusedStudent,
			Tokens:     tokens(d, "actor_name", label, "reason", v.Reason),
			Recipients: studentRecipient(d),
		})
		return nil
	})
	return v.DoctorateID, err
}

func (s *Service) ApproveThesisDistributionByReferencePromoter(ctx context.Context, cmd commands.ApproveThesisDistributionByReferencePromoter) (domain.DoctorateID, error) {
	return s.decideDistribution(ctx, cmd.DistributionVerdict, true, (*distmodels.Authorization).DecideByReferencePromoter,
		"le promoteur de référence", "the reference promoter")
}

func (s *Service) DeclineThesisDistributionByReferencePromoter(ctx context.Context, cmd commands.DeclineThesisDistributionByReferencePromoter) (domain.DoctorateID, error) {
	return s.decideDistribution(ctx, cmd.DistributionVerdict, false, (*distmodels.Authorization).DecideByReferencePromoter,
		"le promoteur de référence", "the reference promoter")
}

func (s *Service) ApproveThesisDistributionByAdre(ctx context.Context, cmd commands.ApproveThesisDistributionByAdre) (domain.DoctorateID, error) {
	return s.decideDistribution(ctx, cmd.DistributionVerdict, true, (*distmodels.Authorization).DecideByAdre, "l'ADRE", "ADRE")
}

func (s *Service) DeclineThesisDistributionByAdre(ctx context.Context, cmd commands.DeclineThesisDistributionByAdre) (domain.DoctorateID, error) {
	return s.decideDistribution(ctx, cmd.DistributionVerdict, false, (*distmodels.Authorization).DecideByAdre, "l'ADRE", "ADRE")
}

func (s *Service) ApproveThesisDistributionBySceb(ctx context.Context, cmd commands.ApproveThesisDistributionBySceb) (domain.DoctorateID, error) {
	return s.decideDistribution(ctx, cmd.DistributionVerdict, true, (*distmodels.Authorization).DecideBySceb, "le SCEB", "SCEB")
}

func (s *Service) DeclineThesisDistributionBySceb(ctx context.Context, cmd commands.DeclineThesisDistributionBySceb) (domain.DoctorateID, error) {
	return s.decideDistribution(ctx, cmd.DistributionVerdict, false, (*distmodels.Authorization).DecideBySceb, "le SCEB", "SCEB")
}
