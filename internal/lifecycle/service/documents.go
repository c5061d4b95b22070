package service

import (
	"context"

	docmodels "parcours/internal/document/models"
	"parcours/internal/history"
	"parcours/internal/lifecycle/commands"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/requestcontext"
)

// loadDocument returns the document only when it belongs to doctorateID.
func (s *Service) loadDocument(ctx context.Context, doctorateID domain.DoctorateID, id domain.DocumentID) (*docmodels.Document, error) {
	doc, err := s.stores.Documents.Get(ctx, id)
	if err != nil {
		return nil, internal(err, docmodels.ErrDocumentNotFound, id.String())
	}
	if doc.DoctorateID != doctorateID {
		return nil, docmodels.ErrDocumentNotFound.With(id.String())
	}
	return doc, nil
}

func (s *Service) InitializeDocument(ctx context.Context, cmd commands.InitializeDocument) (domain.DocumentID, error) {
	var id domain.DocumentID
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		if _, err := s.loadDoctorate(ctx, cmd.DoctorateID); err != nil {
			return err
		}
		doc, err := docmodels.New(domain.NewDocumentID(), cmd.DoctorateID, cmd.Type, cmd.Label, cmd.Files, fx.author, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		if err := s.stores.Documents.Save(ctx, doc); err != nil {
			return dErrors.Internal(err, "save document")
		}
		id = doc.ID
		fx.record("Le document \""+doc.Label+"\" a été ajouté.",
			"The document \""+doc.Label+"\" was added.",
			history.TagDocument, history.TagModification)
		return nil
	})
	return id, err
}

func (s *Service) ModifyDocument(ctx context.Context, cmd commands.ModifyDocument) (domain.DocumentID, error) {
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		doc, err := s.loadDocument(ctx, cmd.DoctorateID, cmd.DocumentID)
		if err != nil {
			return err
		}
		if err := doc.Modify(cmd.Label, cmd.Files, fx.author, requestcontext.Now(ctx)); err != nil {
			return err
		}
		if err := s.stores.Documents.Save(ctx, doc); err != nil {
			return dErrors.Internal(err, "save document")
		}
		fx.record("Le document \""+doc.Label+"\" a été modifié.",
			"The document \""+doc.Label+"\" was modified.",
			history.TagDocument, history.TagModification)
		return nil
	})
	return cmd.DocumentID, err
}

// DeleteDocument removes a LIBRE document.
func (s *Service) DeleteDocument(ctx context.Context, cmd commands.DeleteDocument) (domain.DocumentID, error) {
	err := s.mutate(ctx, cmd.DoctorateID, func(ctx context.Context, fx *effects) error {
		doc, err := s.loadDocument(ctx, cmd.DoctorateID, cmd.DocumentID)
		if err != nil {
			return err
		}
		if err := doc.CanDelete(); err != nil {
			return err
		}
		if err := s.stores.Documents.Delete(ctx, doc.ID); err != nil {
			return internal(err, docmodels.ErrDocumentNotFound, doc.ID.String())
		}
		fx.record("Le document \""+doc.Label+"\" a été supprimé.",
			"The document \""+doc.Label+"\" was deleted.",
			history.TagDocument, history.TagModification)
		return nil
	})
	return cmd.DocumentID, err
}
