package service

import (
	"context"
	"errors"
	"strings"

	dmodels "parcours/internal/doctorate/models"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/ports"
	"parcours/internal/signature"
	smodels "parcours/internal/supervision/models"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/requestcontext"
)

// requirePerson checks that a matricule is known to the directory.
func (s *Service) requirePerson(ctx context.Context, matricule string) error {
	matricule = strings.TrimSpace(matricule)
	if matricule == "" {
		return nil
	}
	if _, err := s.ext.People.Get(ctx, matricule); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return ErrPersonUnknown.With(matricule)
		}
		return ErrPersonUnknown.Wrap(err)
	}
	return nil
}

func studentRecipient(d *dmodels.Doctorate) []ports.Recipient {
	return []ports.Recipient{{
		Name:     d.Student.FullName(),
		Email:    d.Student.Email,
		Language: d.Student.Language,
	}}
}

// actorRecipients resolves actors to e-mail recipients. Unknown matricules
// are logged and skipped.
func (s *Service) actorRecipients(ctx context.Context, actors ...signature.Actor) []ports.Recipient {
	out := make([]ports.Recipient, 0, len(actors))
	for _, a := range actors {
		if a.External != nil {
			out = append(out, ports.Recipient{Name: a.External.FullName(), Email: a.External.Email, Language: a.External.Language})
			continue
		}
		if a.Matricule == "" {
			continue
		}
		p, err := s.ext.People.Get(ctx, a.Matricule)
		if err != nil {
			s.logger.WarnContext(ctx, "recipient not resolved",
				"matricule", a.Matricule,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			continue
		}
		out = append(out, ports.Recipient{Name: p.FullName(), Email: p.Email, Language: p.Language})
	}
	return out
}

func (s *Service) promoterRecipients(ctx context.Context, g *smodels.Group) []ports.Recipient {
	return s.actorRecipients(ctx, g.Promoters...)
}

func (s *Service) referencePromoterRecipients(ctx context.Context, g *smodels.Group) []ports.Recipient {
	ref, ok := g.ReferencePromoter()
	if !ok {
		return nil
	}
	return s.actorRecipients(ctx, *ref)
}

func (s *Service) juryRecipients(ctx context.Context, j *jmodels.Jury) []ports.Recipient {
	actors := make([]signature.Actor, len(j.Members))
	for i, m := range j.Members {
		actors[i] = m.Actor
	}
	return s.actorRecipients(ctx, actors...)
}

// cddRecipients is the mailbox of the doctoral committee, when configured.
func (s *Service) cddRecipients(d *dmodels.Doctorate) []ports.Recipient {
	c, ok := s.cdd.Committee(d.Training.CddCode)
	if !ok || c.ManagerEmail == "" {
		return nil
	}
	name := c.ManagerName
	if name == "" {
		name = d.Training.CddTitle
	}
	return []ports.Recipient{{Name: name, Email: c.ManagerEmail, Language: c.Language}}
}

// tokens builds the template tokens of d, extended with key/value pairs.
func tokens(d *dmodels.Doctorate, kv ...string) map[string]string {
	out := map[string]string{
		"student_first_name":  d.Student.FirstName,
		"student_last_name":   d.Student.LastName,
		"doctorate_reference": d.Reference,
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

// toSignatureActor is what the signature service stores for a new actor.
func toSignatureActor(in signature.PersonInput) ports.SignatureActor {
	a := ports.SignatureActor{Matricule: strings.TrimSpace(in.Matricule)}
	if e := in.External; e != nil {
		a.FirstName = e.FirstName
		a.LastName = e.LastName
		a.Email = strings.TrimSpace(e.Email)
		a.Institute = e.Institute
		a.City = e.City
		a.Country = e.Country
		a.Language = e.Language
	}
	return a
}
