// Package domain holds the typed identifiers shared by every bounded context.
//
// Every aggregate carries its own UUID-backed identifier type so that a
// confirmation paper ID can never be handed to a private defence store by
// mistake. Identifiers marshal as their canonical string form.
package domain

import (
	"github.com/google/uuid"

	dErrors "parcours/pkg/domain-errors"
)

// ErrInvalidID is returned when an identifier cannot be parsed at a trust boundary.
var ErrInvalidID = dErrors.Define(dErrors.KindInvalidValue, "IDENTIFIANT-1",
	"L'identifiant fourni n'est pas un UUID valide.",
	"The provided identifier is not a valid UUID.")

type (
	DoctorateID         uuid.UUID
	PropositionID       uuid.UUID
	ConfirmationPaperID uuid.UUID
	PrivateDefenseID    uuid.UUID
	AdmissibilityID     uuid.UUID
	ActorID             uuid.UUID
	DocumentID          uuid.UUID
	FileID              uuid.UUID
	HistoryEntryID      uuid.UUID
)

func parse(s string) (uuid.UUID, error) {
	if len(s) > 64 {
		return uuid.Nil, ErrInvalidID.With("identifier too long")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidID.With(err.Error())
	}
	if u == uuid.Nil {
		return uuid.Nil, ErrInvalidID.With("nil uuid")
	}
	return u, nil
}

func unmarshal(dst *[16]byte, text []byte) error {
	if len(text) == 0 {
		*dst = uuid.Nil
		return nil
	}
	u, err := uuid.ParseBytes(text)
	if err != nil {
		return ErrInvalidID.With(err.Error())
	}
	*dst = u
	return nil
}

// ParseDoctorateID parses a non-nil doctorate identifier.
func ParseDoctorateID(s string) (DoctorateID, error) {
	u, err := parse(s)
	return DoctorateID(u), err
}

// ParsePropositionID parses a non-nil admission proposition identifier.
func ParsePropositionID(s string) (PropositionID, error) {
	u, err := parse(s)
	return PropositionID(u), err
}

func ParseActorID(s string) (ActorID, error) {
	u, err := parse(s)
	return ActorID(u), err
}

func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parse(s)
	return DocumentID(u), err
}

func ParseFileID(s string) (FileID, error) {
	u, err := parse(s)
	return FileID(u), err
}

func NewConfirmationPaperID() ConfirmationPaperID { return ConfirmationPaperID(uuid.New()) }
func NewPrivateDefenseID() PrivateDefenseID       { return PrivateDefenseID(uuid.New()) }
func NewAdmissibilityID() AdmissibilityID         { return AdmissibilityID(uuid.New()) }
func NewActorID() ActorID                         { return ActorID(uuid.New()) }
func NewDocumentID() DocumentID                   { return DocumentID(uuid.New()) }
func NewFileID() FileID                           { return FileID(uuid.New()) }
func NewHistoryEntryID() HistoryEntryID           { return HistoryEntryID(uuid.New()) }

// DoctorateIDFromProposition derives the doctorate identity from the admission
// it was produced by. Both share the same UUID, which makes initialization
// idempotent across processes.
func DoctorateIDFromProposition(p PropositionID) DoctorateID { return DoctorateID(p) }

func (id DoctorateID) String() string { return uuid.UUID(id).String() }
func (id DoctorateID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id DoctorateID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *DoctorateID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id PropositionID) String() string { return uuid.UUID(id).String() }
func (id PropositionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id PropositionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *PropositionID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id ConfirmationPaperID) String() string { return uuid.UUID(id).String() }
func (id ConfirmationPaperID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ConfirmationPaperID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *ConfirmationPaperID) UnmarshalText(b []byte) error {
	return unmarshal((*[16]byte)(id), b)
}

func (id PrivateDefenseID) String() string { return uuid.UUID(id).String() }
func (id PrivateDefenseID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id PrivateDefenseID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *PrivateDefenseID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id AdmissibilityID) String() string { return uuid.UUID(id).String() }
func (id AdmissibilityID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AdmissibilityID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *AdmissibilityID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id ActorID) String() string { return uuid.UUID(id).String() }
func (id ActorID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ActorID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *ActorID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id DocumentID) String() string { return uuid.UUID(id).String() }
func (id DocumentID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id DocumentID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *DocumentID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id FileID) String() string { return uuid.UUID(id).String() }
func (id FileID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id FileID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *FileID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

func (id HistoryEntryID) String() string { return uuid.UUID(id).String() }
func (id HistoryEntryID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id *HistoryEntryID) UnmarshalText(b []byte) error { return unmarshal((*[16]byte)(id), b) }

// FileIDs renders a file list as strings, preserving order.
func FileIDs(files []FileID) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.String()
	}
	return out
}
