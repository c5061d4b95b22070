package service

import (
	"context"

	amodels "parcours/internal/admissibility/models"
	cmodels "parcours/internal/confirmation/models"
	distmodels "parcours/internal/distribution/models"
	dmodels "parcours/internal/doctorate/models"
	docmodels "parcours/internal/document/models"
	"parcours/internal/history"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/lifecycle/commands"
	pmodels "parcours/internal/privatedefense/models"
	smodels "parcours/internal/supervision/models"
	dErrors "parcours/pkg/domain-errors"
)

func (s *Service) GetDoctorate(ctx context.Context, q commands.GetDoctorate) (*dmodels.Doctorate, error) {
	return s.loadDoctorate(ctx, q.DoctorateID)
}

// ListConfirmationPapers returns every paper of the doctorate, archived ones included.
func (s *Service) ListConfirmationPapers(ctx context.Context, q commands.ListConfirmationPapers) ([]cmodels.ConfirmationPaper, error) {
	if _, err := s.loadDoctorate(ctx, q.DoctorateID); err != nil {
		return nil, err
	}
	papers, err := s.stores.Confirmations.ListByDoctorate(ctx, q.DoctorateID)
	if err != nil {
		return nil, dErrors.Internal(err, "list confirmation papers")
	}
	return papers, nil
}

func (s *Service) GetSupervisionGroup(ctx context.Context, q commands.GetSupervisionGroup) (*smodels.Group, error) {
	return s.loadGroup(ctx, q.DoctorateID)
}

func (s *Service) GetJury(ctx context.Context, q commands.GetJury) (*jmodels.Jury, error) {
	return s.loadJury(ctx, q.DoctorateID)
}

func (s *Service) ListPrivateDefenses(ctx context.Context, q commands.ListPrivateDefenses) ([]pmodels.PrivateDefense, error) {
	if _, err := s.loadDoctorate(ctx, q.DoctorateID); err != nil {
		return nil, err
	}
	defenses, err := s.stores.PrivateDefenses.ListByDoctorate(ctx, q.DoctorateID)
	if err != nil {
		return nil, dErrors.Internal(err, "list private defences")
	}
	return defenses, nil
}

func (s *Service) ListAdmissibilities(ctx context.Context, q commands.ListAdmissibilities) ([]amodels.Admissibility, error) {
	if _, err := s.loadDoctorate(ctx, q.DoctorateID); err != nil {
		return nil, err
	}
	out, err := s.stores.Admissibilities.ListByDoctorate(ctx, q.DoctorateID)
	if err != nil {
		return nil, dErrors.Internal(err, "list admissibilities")
	}
	return out, nil
}

func (s *Service) GetThesisDistribution(ctx context.Context, q commands.GetThesisDistribution) (*distmodels.Authorization, error) {
	return s.loadDistribution(ctx, q.DoctorateID)
}

func (s *Service) ListDocuments(ctx context.Context, q commands.ListDocuments) (docmodels.Grouped, error) {
	if _, err := s.loadDoctorate(ctx, q.DoctorateID); err != nil {
		return nil, err
	}
	docs, err := s.stores.Documents.ListByDoctorate(ctx, q.DoctorateID)
	if err != nil {
		return nil, dErrors.Internal(err, "list documents")
	}
	return docmodels.Group(docs), nil
}

func (s *Service) GetDocument(ctx context.Context, q commands.GetDocument) (*docmodels.Document, error) {
	doc, err := s.stores.Documents.Get(ctx, q.DocumentID)
	if err != nil {
		return nil, internal(err, docmodels.ErrDocumentNotFound, q.DocumentID.String())
	}
	return doc, nil
}

func (s *Service) ListHistory(ctx context.Context, q commands.ListHistory) ([]history.Entry, error) {
	if _, err := s.loadDoctorate(ctx, q.DoctorateID); err != nil {
		return nil, err
	}
	entries, err := s.history.List(ctx, q.DoctorateID)
	if err != nil {
		return nil, dErrors.Internal(err, "list history")
	}
	return entries, nil
}
