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
	"parcours/internal/notification"
	pmodels "parcours/internal/privatedefense/models"
	smodels "parcours/internal/supervision/models"
	"parcours/pkg/domain"
)

// Stores return sentinel.ErrNotFound for missing rows.

type DoctorateStore interface {
	Get(ctx context.Context, id domain.DoctorateID) (*dmodels.Doctorate, error)
	Save(ctx context.Context, d *dmodels.Doctorate) error
}

type ConfirmationStore interface {
	Get(ctx context.Context, id domain.ConfirmationPaperID) (*cmodels.ConfirmationPaper, error)
	Save(ctx context.Context, c *cmodels.ConfirmationPaper) error
	ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]cmodels.ConfirmationPaper, error)
}

type PrivateDefenseStore interface {
	Get(ctx context.Context, id domain.PrivateDefenseID) (*pmodels.PrivateDefense, error)
	Save(ctx context.Context, p *pmodels.PrivateDefense) error
	ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]pmodels.PrivateDefense, error)
}

type AdmissibilityStore interface {
	Get(ctx context.Context, id domain.AdmissibilityID) (*amodels.Admissibility, error)
	Save(ctx context.Context, a *amodels.Admissibility) error
	ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]amodels.Admissibility, error)
}

type JuryStore interface {
	Get(ctx context.Context, doctorateID domain.DoctorateID) (*jmodels.Jury, error)
	Save(ctx context.Context, j *jmodels.Jury) error
}

type SupervisionStore interface {
	Get(ctx context.Context, doctorateID domain.DoctorateID) (*smodels.Group, error)
	Save(ctx context.Context, g *smodels.Group) error
}

type DistributionStore interface {
	Get(ctx context.Context, doctorateID domain.DoctorateID) (*distmodels.Authorization, error)
	Save(ctx context.Context, a *distmodels.Authorization) error
}

type DocumentStore interface {
	Get(ctx context.Context, id domain.DocumentID) (*docmodels.Document, error)
	Save(ctx context.Context, d *docmodels.Document) error
	ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]docmodels.Document, error)
	Delete(ctx context.Context, id domain.DocumentID) error
}

// TxRunner runs fn as one transaction serialized on key.
type TxRunner interface {
	RunInTx(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type HistoryRecorder interface {
	Record(ctx context.Context, doctorateID domain.DoctorateID, fr, en, author string, tags ...string)
	List(ctx context.Context, doctorateID domain.DoctorateID) ([]history.Entry, error)
}

type Notifier interface {
	Send(ctx context.Context, mail notification.Mail)
}

// Stores groups the repositories and the transaction runner shared by them.
type Stores struct {
	Tx              TxRunner
	Doctorates      DoctorateStore
	Confirmations   ConfirmationStore
	PrivateDefenses PrivateDefenseStore
	Admissibilities AdmissibilityStore
	Juries          JuryStore
	Supervision     SupervisionStore
	Distributions   DistributionStore
	Documents       DocumentStore
}
