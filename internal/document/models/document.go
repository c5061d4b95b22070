package models

import (
	"strings"
	"time"

	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// Type tags how a document may be edited.
type Type string

const (
	// TypeFree is user-authored and fully editable.
	TypeFree Type = "LIBRE"
	// TypeSystem is regenerated from an aggregate and replaced, never edited.
	TypeSystem Type = "SYSTEME"
	// TypeStandard is a fixed platform slot whose files may be replaced.
	TypeStandard Type = "NON_LIBRE"
)

func (t Type) IsValid() bool { return t == TypeFree || t == TypeSystem || t == TypeStandard }

// Document maps a label to a list of opaque file identifiers.
type Document struct {
	ID          domain.DocumentID  `json:"id"`
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Type        Type               `json:"type"`
	Label       string             `json:"label"`
	Author      string             `json:"author"`
	ModifiedAt  time.Time          `json:"modified_at"`
	Files       []domain.FileID    `json:"files"`

	// Key identifies the slot of a system document, e.g. the confirmation minutes canvas.
	Key string `json:"key,omitempty"`
}

func contract(label string, files []domain.FileID, author string) []validation.Validator {
	return []validation.Validator{
		validation.Require(strings.TrimSpace(label) != "" && len(files) > 0, ErrDocumentIncomplete),
		validation.NotBlank(author, ErrAuthorMissing),
	}
}

// New creates a LIBRE or NON_LIBRE document. System documents come from Generated.
func New(id domain.DocumentID, doctorateID domain.DoctorateID, typ Type, label string, files []domain.FileID, author string, now time.Time) (*Document, error) {
	err := validation.Run(contract(label, files, author),
		validation.Require(typ == TypeFree || typ == TypeStandard, ErrInvalidType),
	)
	if err != nil {
		return nil, err
	}
	return &Document{
		ID:          id,
		DoctorateID: doctorateID,
		Type:        typ,
		Label:       strings.TrimSpace(label),
		Author:      author,
		ModifiedAt:  now,
		Files:       files,
	}, nil
}

// Generated builds the system document stored under key.
func Generated(id domain.DocumentID, doctorateID domain.DoctorateID, key, label string, files []domain.FileID, author string, now time.Time) *Document {
	return &Document{
		ID:          id,
		DoctorateID: doctorateID,
		Type:        TypeSystem,
		Label:       label,
		Key:         key,
		Author:      author,
		ModifiedAt:  now,
		Files:       files,
	}
}

// Modify updates files (and the label of a free document), stamping the author and time.
func (d *Document) Modify(label string, files []domain.FileID, author string, now time.Time) error {
	if strings.TrimSpace(label) == "" {
		label = d.Label
	}
	err := validation.Run(contract(label, files, author),
		validation.Require(d.Type != TypeSystem, ErrDocumentReadOnly),
		validation.When(d.Type == TypeStandard, validation.Require(strings.TrimSpace(label) == d.Label, ErrLabelReadOnly)),
	)
	if err != nil {
		return err
	}
	d.Label = strings.TrimSpace(label)
	d.Files = files
	d.Author = author
	d.ModifiedAt = now
	return nil
}

// Replace swaps the files of a system document after regeneration.
func (d *Document) Replace(files []domain.FileID, author string, now time.Time) {
	d.Files = files
	d.Author = author
	d.ModifiedAt = now
}

func (d *Document) CanDelete() error {
	return validation.Run(nil, validation.Require(d.Type == TypeFree, ErrDocumentNotDeletable))
}

// Grouped is the list view of a doctorate's documents.
type Grouped map[Type][]Document

// Group buckets docs by type, keeping their order.
func Group(docs []Document) Grouped {
	out := Grouped{TypeFree: {}, TypeSystem: {}, TypeStandard: {}}
	for _, d := range docs {
		out[d.Type] = append(out[d.Type], d)
	}
	return out
}
