// Package service implements the lifecycle commands and queries of a
// doctorate.
//
// Each command runs as one transaction keyed on the doctorate: it loads the
// aggregates it needs, lets their mutators validate and change them, and saves
// them. History lines, e-mails and generated documents are collected while the
// transaction runs and only performed once it committed; their failures are
// logged and never returned.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"

	amodels "parcours/internal/admissibility/models"
	cmodels "parcours/internal/confirmation/models"
	distmodels "parcours/internal/distribution/models"
	dmodels "parcours/internal/doctorate/models"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/lifecycle/cddconfig"
	"parcours/internal/ports"
	pmodels "parcours/internal/privatedefense/models"
	"parcours/internal/signature"
	smodels "parcours/internal/supervision/models"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/requestcontext"
)

// SystemAuthor signs the documents the engine generates.
const SystemAuthor = "parcours-doctoral"

// External groups the collaborators outside the engine.
type External struct {
	Propositions ports.PropositionReader
	People       ports.PersonDirectory
	Signatures   ports.SignatureService
	Canvas       ports.CanvasRenderer
}

type Service struct {
	stores   Stores
	ext      External
	history  HistoryRecorder
	notifier Notifier

	cdd      *cddconfig.Config
	clock    *signature.Clock
	location *time.Location
	logger   *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithCddConfig(cfg *cddconfig.Config) Option {
	return func(s *Service) {
		s.cdd = cfg
	}
}

// WithLocation sets the time zone used to derive calendar dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.location = loc
	}
}

func WithClock(c *signature.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// New constructs a Service.
func New(stores Stores, ext External, recorder HistoryRecorder, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		stores:   stores,
		ext:      ext,
		history:  recorder,
		notifier: notifier,
		cdd:      cddconfig.Default(),
		clock:    signature.NewClock(),
		location: time.UTC,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today(now time.Time) civil.Date {
	return civil.DateOf(now.In(s.location))
}

// author is the label recorded on history lines and documents.
func author(ctx context.Context) string {
	if a := requestcontext.Actor(ctx); a != "" {
		return a
	}
	return SystemAuthor
}

// internal converts a store error into a business error. notFound is used
// for sentinel.ErrNotFound.
func internal(err error, notFound *dErrors.Error, detail string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return notFound.With(detail)
	}
	return dErrors.Internal(err, detail)
}

// mutate runs fn in a transaction on doctorateID and performs the effects it
// collected once the transaction committed.
func (s *Service) mutate(ctx context.Context, doctorateID domain.DoctorateID, fn func(ctx context.Context, fx *effects) error) error {
	fx := &effects{doctorateID: doctorateID, author: author(ctx)}
	err := s.stores.Tx.RunInTx(ctx, doctorateID.String(), func(ctx context.Context) error {
		return fn(ctx, fx)
	})
	if err != nil {
		return err
	}
	s.apply(ctx, fx)
	return nil
}

func (s *Service) loadDoctorate(ctx context.Context, id domain.DoctorateID) (*dmodels.Doctorate, error) {
	d, err := s.stores.Doctorates.Get(ctx, id)
	if err != nil {
		return nil, internal(err, dmodels.ErrDoctorateNotFound, id.String())
	}
	return d, nil
}

func (s *Service) saveDoctorate(ctx context.Context, d *dmodels.Doctorate) error {
	if err := s.stores.Doctorates.Save(ctx, d); err != nil {
		return dErrors.Internal(err, "save doctorate")
	}
	return nil
}

func (s *Service) loadConfirmation(ctx context.Context, d *dmodels.Doctorate) (*cmodels.ConfirmationPaper, error) {
	c, err := s.stores.Confirmations.Get(ctx, d.CurrentConfirmationPaperID)
	if err != nil {
		return nil, internal(err, cmodels.ErrConfirmationPaperNotFound, d.CurrentConfirmationPaperID.String())
	}
	return c, nil
}

func (s *Service) saveConfirmation(ctx context.Context, c *cmodels.ConfirmationPaper) error {
	if err := s.stores.Confirmations.Save(ctx, c); err != nil {
		return dErrors.Internal(err, "save confirmation paper")
	}
	return nil
}

// loadPrivateDefense returns the active private defence. When the doctorate
// has none yet and create is set, a new one is returned (unsaved) with
// created reporting it.
func (s *Service) loadPrivateDefense(ctx context.Context, d *dmodels.Doctorate, create bool, now time.Time) (p *pmodels.PrivateDefense, created bool, err error) {
	if d.CurrentPrivateDefenseID.IsNil() {
		if !create {
			return nil, false, pmodels.ErrPrivateDefenseNotFound.With(d.ID.String())
		}
		return pmodels.New(domain.NewPrivateDefenseID(), d.ID, now), true, nil
	}
	p, err = s.stores.PrivateDefenses.Get(ctx, d.CurrentPrivateDefenseID)
	if err != nil {
		return nil, false, internal(err, pmodels.ErrPrivateDefenseNotFound, d.CurrentPrivateDefenseID.String())
	}
	return p, false, nil
}

func (s *Service) savePrivateDefense(ctx context.Context, p *pmodels.PrivateDefense) error {
	if err := s.stores.PrivateDefenses.Save(ctx, p); err != nil {
		return dErrors.Internal(err, "save private defence")
	}
	return nil
}

func (s *Service) loadAdmissibility(ctx context.Context, d *dmodels.Doctorate, create bool, now time.Time) (a *amodels.Admissibility, created bool, err error) {
	if d.CurrentAdmissibilityID.IsNil() {
		if !create {
			return nil, false, amodels.ErrAdmissibilityNotFound.With(d.ID.String())
		}
		return amodels.New(domain.NewAdmissibilityID(), d.ID, now), true, nil
	}
	a, err = s.stores.Admissibilities.Get(ctx, d.CurrentAdmissibilityID)
	if err != nil {
		return nil, false, internal(err, amodels.ErrAdmissibilityNotFound, d.CurrentAdmissibilityID.String())
	}
	return a, false, nil
}

func (s *Service) saveAdmissibility(ctx context.Context, a *amodels.Admissibility) error {
	if err := s.stores.Admissibilities.Save(ctx, a); err != nil {
		return dErrors.Internal(err, "save admissibility")
	}
	return nil
}

func (s *Service) loadJury(ctx context.Context, id domain.DoctorateID) (*jmodels.Jury, error) {
	j, err := s.stores.Juries.Get(ctx, id)
	if err != nil {
		return nil, internal(err, jmodels.ErrJuryNotFound, id.String())
	}
	return j, nil
}

func (s *Service) saveJury(ctx context.Context, j *jmodels.Jury) error {
	if err := s.stores.Juries.Save(ctx, j); err != nil {
		return dErrors.Internal(err, "save jury")
	}
	return nil
}

func (s *Service) loadGroup(ctx context.Context, id domain.DoctorateID) (*smodels.Group, error) {
	g, err := s.stores.Supervision.Get(ctx, id)
	if err != nil {
		return nil, internal(err, smodels.ErrGroupNotFound, id.String())
	}
	return g, nil
}

func (s *Service) saveGroup(ctx context.Context, g *smodels.Group) error {
	if err := s.stores.Supervision.Save(ctx, g); err != nil {
		return dErrors.Internal(err, "save supervision group")
	}
	return nil
}

func (s *Service) loadDistribution(ctx context.Context, id domain.DoctorateID) (*distmodels.Authorization, error) {
	a, err := s.stores.Distributions.Get(ctx, id)
	if err != nil {
		return nil, internal(err, distmodels.ErrAuthorizationNotFound, id.String())
	}
	return a, nil
}

func (s *Service) saveDistribution(ctx context.Context, a *distmodels.Authorization) error {
	if err := s.stores.Distributions.Save(ctx, a); err != nil {
		return dErrors.Internal(err, "save thesis distribution")
	}
	return nil
}
