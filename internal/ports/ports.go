// Package ports declares the external collaborators of the lifecycle engine.
//
// The engine depends on these interfaces only. Adapters under internal/adapters
// implement them against real infrastructure (S3, Redis, Kafka) or in memory.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"parcours/pkg/domain"
)

// PropositionStatusEnrolmentAuthorised is the upstream admission state that
// allows a doctorate to be created.
const PropositionStatusEnrolmentAuthorised = "INSCRIPTION_AUTORISEE"

// PropositionReader is the read-only view on the upstream admission module.
// Get returns sentinel.ErrNotFound when the proposition does not exist.
type PropositionReader interface {
	Get(ctx context.Context, id domain.PropositionID) (*Proposition, error)
}

// Proposition is the admission data a doctorate is built from.
type Proposition struct {
	ID                domain.PropositionID
	Reference         string
	Status            string
	StudentMatricule  string
	TrainingAcronym   string
	TrainingTitle     string
	TrainingYear      int
	CddCode           string
	CddTitle          string
	ThesisTitle       string
	ThesisLanguage    string
	CddAcceptanceDate *civil.Date
	CurriculumFiles   []domain.FileID
	Promoters         []SupervisionMember
	CaMembers         []SupervisionMember
}

// SupervisionMember is an upstream supervision group member: either a
// matricule or external contact details.
type SupervisionMember struct {
	Matricule   string
	FirstName   string
	LastName    string
	Email       string
	Institute   string
	City        string
	Country     string
	Language    string
	IsReference bool
}

// PersonDirectory resolves matricules. Get returns sentinel.ErrNotFound for an
// unknown matricule.
type PersonDirectory interface {
	Get(ctx context.Context, matricule string) (*Person, error)
}

type Person struct {
	Matricule string `json:"matricule"`
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
	Email     string `json:"email"`
	Language  string `json:"langue"`
	Gender    string `json:"genre"`
}

func (p *Person) FullName() string { return p.FirstName + " " + p.LastName }

// FileService is the document storage service. Files are opaque to the engine.
type FileService interface {
	StoreRemote(ctx context.Context, data []byte, name, mimeType string) (token string, err error)
	ConfirmUpload(ctx context.Context, token, author string) (domain.FileID, error)
	ReadToken(ctx context.Context, id domain.FileID) (string, error)
	Metadata(ctx context.Context, token string) (*FileMetadata, error)
}

type FileMetadata struct {
	Name       string    `json:"name"`
	MimeType   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Author     string    `json:"author"`
}

// SignatureService hosts signature processes. Actor IDs it returns are stable;
// AddActor keeps the ID of an actor that already carries one.
type SignatureService interface {
	CreateProcess(ctx context.Context) (string, error)
	AddActor(ctx context.Context, processID string, actor SignatureActor) (domain.ActorID, error)
	ListActors(ctx context.Context, processID string) ([]SignatureActor, error)
	RemoveActor(ctx context.Context, processID string, actorID domain.ActorID) error
	EditExternalActor(ctx context.Context, processID string, actor SignatureActor) error
}

type SignatureActor struct {
	ID        domain.ActorID
	Matricule string
	FirstName string
	LastName  string
	Email     string
	Institute string
	City      string
	Country   string
	Language  string
}

// Mailer composes and delivers e-mails.
type Mailer interface {
	Build(ctx context.Context, templateID, language string, tokens map[string]string) (*Message, error)
	Send(ctx context.Context, msg *Message, recipient Recipient) error
}

type Message struct {
	TemplateID  string       `json:"template_id,omitempty"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Content  []byte `json:"content"`
}

type Recipient struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Language string `json:"language"`
}

// CanvasRenderer renders a document template and stores the result.
type CanvasRenderer interface {
	Render(ctx context.Context, templateID string, data map[string]any) (domain.FileID, error)
}
