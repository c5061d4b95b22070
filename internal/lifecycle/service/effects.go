package service

import (
	"context"

	docmodels "parcours/internal/document/models"
	"parcours/internal/notification"
	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

// effects collects what a command does outside its transaction.
type effects struct {
	doctorateID domain.DoctorateID
	author      string

	enrolments []enrolment
	lines      []historyLine
	mails      []notification.Mail
	artefacts  []artefact
}

// enrolment registers an actor with, or withdraws it from, a signature
// process. The actor keeps the ID the group gave it.
type enrolment struct {
	processID string
	actor     ports.SignatureActor
	withdraw  bool
}

type historyLine struct {
	fr, en string
	tags   []string
}

// artefact is a document generated from a canvas after commit. It is stored
// as the SYSTEME document key and handed to attach, which links it to its
// aggregate inside a new transaction.
type artefact struct {
	key      string
	label    string
	template string
	data     map[string]any
	attach   func(ctx context.Context, file domain.FileID) error
}

func (fx *effects) enrol(processID string, actor ports.SignatureActor) {
	fx.enrolments = append(fx.enrolments, enrolment{processID: processID, actor: actor})
}

func (fx *effects) withdraw(processID string, actorID domain.ActorID) {
	fx.enrolments = append(fx.enrolments, enrolment{processID: processID, actor: ports.SignatureActor{ID: actorID}, withdraw: true})
}

func (fx *effects) record(fr, en string, tags ...string) {
	fx.lines = append(fx.lines, historyLine{fr: fr, en: en, tags: tags})
}

func (fx *effects) notify(mail notification.Mail) {
	if len(mail.Recipients) == 0 {
		return
	}
	fx.mails = append(fx.mails, mail)
}

func (fx *effects) render(a artefact) {
	fx.artefacts = append(fx.artefacts, a)
}

func (s *Service) apply(ctx context.Context, fx *effects) {
	for _, e := range fx.enrolments {
		s.sync(ctx, e)
	}
	for _, l := range fx.lines {
		s.history.Record(ctx, fx.doctorateID, l.fr, l.en, fx.author, l.tags...)
	}
	for _, a := range fx.artefacts {
		s.generate(ctx, fx.doctorateID, a)
	}
	for _, m := range fx.mails {
		s.notifier.Send(ctx, m)
	}
}

func (s *Service) sync(ctx context.Context, e enrolment) {
	var err error
	if e.withdraw {
		err = s.ext.Signatures.RemoveActor(ctx, e.processID, e.actor.ID)
	} else {
		var got domain.ActorID
		got, err = s.ext.Signatures.AddActor(ctx, e.processID, e.actor)
		if err == nil && got != e.actor.ID {
			s.logger.WarnContext(ctx, "signature process renamed actor",
				"process_id", e.processID,
				"actor_id", e.actor.ID.String(),
				"returned_id", got.String(),
			)
		}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "signature process out of sync",
			"process_id", e.processID,
			"actor_id", e.actor.ID.String(),
			"withdraw", e.withdraw,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func (s *Service) generate(ctx context.Context, doctorateID domain.DoctorateID, a artefact) {
	file, err := s.ext.Canvas.Render(ctx, a.template, a.data)
	if err != nil {
		s.logger.ErrorContext(ctx, "canvas rendering failed",
			"doctorate_id", doctorateID.String(),
			"template", a.template,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return
	}
	err = s.stores.Tx.RunInTx(ctx, doctorateID.String(), func(ctx context.Context) error {
		if err := s.upsertSystemDocument(ctx, doctorateID, a.key, a.label, file); err != nil {
			return err
		}
		if a.attach == nil {
			return nil
		}
		return a.attach(ctx, file)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "generated document not attached",
			"doctorate_id", doctorateID.String(),
			"key", a.key,
			"file", file.String(),
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func (s *Service) upsertSystemDocument(ctx context.Context, doctorateID domain.DoctorateID, key, label string, file domain.FileID) error {
	docs, err := s.stores.Documents.ListByDoctorate(ctx, doctorateID)
	if err != nil {
		return err
	}
	now := requestcontext.Now(ctx)
	files := []domain.FileID{file}
	for i := range docs {
		if docs[i].Type == docmodels.TypeSystem && docs[i].Key == key {
			docs[i].Replace(files, SystemAuthor, now)
			return s.stores.Documents.Save(ctx, &docs[i])
		}
	}
	return s.stores.Documents.Save(ctx, docmodels.Generated(domain.NewDocumentID(), doctorateID, key, label, files, SystemAuthor, now))
}
