// Package signature models the actors of a multi-party approval flow.
//
// An actor is either an internal person (referenced by matricule) or an
// external person carrying their own contact details. Its identity outlives
// state changes: re-inviting an actor resets the decision but keeps the ID.
package signature

import (
	"strings"
	"time"

	"parcours/pkg/domain"
)

// State is the signature state of one actor.
type State string

const (
	NotInvited State = "NOT_INVITED"
	Invited    State = "INVITED"
	Approved   State = "APPROVED"
	Declined   State = "DECLINED"
)

func (s State) IsDecided() bool { return s == Approved || s == Declined }

// External holds the contact details of a person outside the university directory.
type External struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Institute string `json:"institute"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Language  string `json:"language"`
}

func (e *External) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Actor is one signatory of a process.
type Actor struct {
	ID              domain.ActorID  `json:"id"`
	Matricule       string          `json:"matricule,omitempty"`
	External        *External       `json:"external,omitempty"`
	State           State           `json:"state"`
	StateChangedAt  *time.Time      `json:"state_changed_at,omitempty"`
	InternalComment string          `json:"internal_comment,omitempty"`
	PublicComment   string          `json:"public_comment,omitempty"`
	RefusalReason   string          `json:"refusal_reason,omitempty"`
	ApprovalPDF     []domain.FileID `json:"approval_pdf,omitempty"`
}

// IsExternal reports whether the actor is not a member of the university directory.
func (a *Actor) IsExternal() bool { return a.External != nil }

// SamePerson reports whether a and other denote the same person: same
// matricule for internal actors, same e-mail (case-insensitive) for external ones.
func (a *Actor) SamePerson(other *Actor) bool {
	if a.Matricule != "" || other.Matricule != "" {
		return a.Matricule == other.Matricule
	}
	if a.External == nil || other.External == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a.External.Email), strings.TrimSpace(other.External.Email))
}

func (a *Actor) Invite(at time.Time) {
	a.State = Invited
	a.StateChangedAt = &at
	a.PublicComment = ""
	a.InternalComment = ""
	a.RefusalReason = ""
	a.ApprovalPDF = nil
}

func (a *Actor) Reset() {
	a.State = NotInvited
	a.StateChangedAt = nil
	a.PublicComment = ""
	a.InternalComment = ""
	a.RefusalReason = ""
	a.ApprovalPDF = nil
}

func (a *Actor) Approve(at time.Time, publicComment, internalComment string, pdf []domain.FileID) {
	a.State = Approved
	a.StateChangedAt = &at
	a.PublicComment = publicComment
	a.InternalComment = internalComment
	a.RefusalReason = ""
	a.ApprovalPDF = pdf
}

func (a *Actor) Decline(at time.Time, reason, publicComment, internalComment string) {
	a.State = Declined
	a.StateChangedAt = &at
	a.RefusalReason = reason
	a.PublicComment = publicComment
	a.InternalComment = internalComment
	a.ApprovalPDF = nil
}
