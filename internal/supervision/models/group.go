package models

import (
	"slices"
	"time"

	"parcours/internal/signature"
	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// Group is the supervision group of a doctorate: the promoters and the
// members of the supervisory panel (CA).
//
// Invariants:
//   - A person appears at most once across both lists
//   - ReferencePromoterID, when set, is the ID of an entry of Promoters
//   - The first promoter added to an empty group becomes the reference promoter
type Group struct {
	DoctorateID         domain.DoctorateID `json:"doctorate_id"`
	ProcessID           string             `json:"process_id"`
	Promoters           []signature.Actor  `json:"promoters"`
	CaMembers           []signature.Actor  `json:"ca_members"`
	ReferencePromoterID domain.ActorID     `json:"reference_promoter_id"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func NewGroup(doctorateID domain.DoctorateID, processID string, now time.Time) *Group {
	return &Group{DoctorateID: doctorateID, ProcessID: processID, UpdatedAt: now}
}

// Kind tells which list a member belongs to.
type Kind string

const (
	KindPromoter Kind = "PROMOTEUR"
	KindCaMember Kind = "MEMBRE_CA"
)

func (g *Group) find(id domain.ActorID) (Kind, int) {
	if i := slices.IndexFunc(g.Promoters, func(a signature.Actor) bool { return a.ID == id }); i >= 0 {
		return KindPromoter, i
	}
	if i := slices.IndexFunc(g.CaMembers, func(a signature.Actor) bool { return a.ID == id }); i >= 0 {
		return KindCaMember, i
	}
	return "", -1
}

// Member returns the member with the given ID.
func (g *Group) Member(id domain.ActorID) (*signature.Actor, Kind, bool) {
	kind, i := g.find(id)
	switch kind {
	case KindPromoter:
		return &g.Promoters[i], kind, true
	case KindCaMember:
		return &g.CaMembers[i], kind, true
	}
	return nil, "", false
}

// ReferencePromoter returns the reference promoter, if any.
func (g *Group) ReferencePromoter() (*signature.Actor, bool) {
	if g.ReferencePromoterID.IsNil() {
		return nil, false
	}
	kind, i := g.find(g.ReferencePromoterID)
	if kind != KindPromoter {
		return nil, false
	}
	return &g.Promoters[i], true
}

func (g *Group) contains(candidate *signature.Actor) bool {
	for i := range g.Promoters {
		if g.Promoters[i].SamePerson(candidate) {
			return true
		}
	}
	for i := range g.CaMembers {
		if g.CaMembers[i].SamePerson(candidate) {
			return true
		}
	}
	return false
}

func (g *Group) canAdd(in signature.PersonInput, candidate *signature.Actor) error {
	return validation.Run(
		in.Contract(ErrMemberIncomplete, ErrMemberInvalidEmail),
		func() error {
			if g.contains(candidate) {
				return ErrMemberAlreadyInGroup
			}
			return nil
		},
	)
}

// AddPromoter adds a promoter; the first promoter is the reference promoter.
func (g *Group) AddPromoter(id domain.ActorID, in signature.PersonInput, now time.Time) (signature.Actor, error) {
	actor := signature.NewActor(id, in)
	if err := g.canAdd(in, &actor); err != nil {
		return signature.Actor{}, err
	}
	g.Promoters = append(g.Promoters, actor)
	if len(g.Promoters) == 1 && g.ReferencePromoterID.IsNil() {
		g.ReferencePromoterID = actor.ID
	}
	g.UpdatedAt = now
	return actor, nil
}

func (g *Group) AddCaMember(id domain.ActorID, in signature.PersonInput, now time.Time) (signature.Actor, error) {
	actor := signature.NewActor(id, in)
	if err := g.canAdd(in, &actor); err != nil {
		return signature.Actor{}, err
	}
	g.CaMembers = append(g.CaMembers, actor)
	g.UpdatedAt = now
	return actor, nil
}

// Copy adds an actor taken over from the admission as is. A person already in
// the group is skipped and Copy reports false.
func (g *Group) Copy(kind Kind, actor signature.Actor, now time.Time) bool {
	if g.contains(&actor) {
		return false
	}
	switch kind {
	case KindPromoter:
		g.Promoters = append(g.Promoters, actor)
		if len(g.Promoters) == 1 && g.ReferencePromoterID.IsNil() {
			g.ReferencePromoterID = actor.ID
		}
	case KindCaMember:
		g.CaMembers = append(g.CaMembers, actor)
	default:
		return false
	}
	g.UpdatedAt = now
	return true
}

// Remove removes a member. The reference promoter cannot be removed; designate
// another promoter first.
func (g *Group) Remove(id domain.ActorID, now time.Time) (signature.Actor, error) {
	kind, i := g.find(id)
	err := validation.Run(nil,
		validation.Require(i >= 0, ErrMemberNotFound),
		validation.Require(id != g.ReferencePromoterID, ErrReferencePromoterRemoval),
	)
	if err != nil {
		return signature.Actor{}, err
	}
	var removed signature.Actor
	if kind == KindPromoter {
		removed = g.Promoters[i]
		g.Promoters = slices.Delete(g.Promoters, i, i+1)
	} else {
		removed = g.CaMembers[i]
		g.CaMembers = slices.Delete(g.CaMembers, i, i+1)
	}
	g.UpdatedAt = now
	return removed, nil
}

func (g *Group) DesignateReferencePromoter(id domain.ActorID, now time.Time) error {
	kind, i := g.find(id)
	err := validation.Run(nil,
		validation.Require(i >= 0, ErrMemberNotFound),
		validation.When(i >= 0, validation.Require(kind == KindPromoter, ErrNotAPromoter)),
	)
	if err != nil {
		return err
	}
	g.ReferencePromoterID = id
	g.UpdatedAt = now
	return nil
}

// IsReferencePromoter reports whether matricule designates the reference promoter.
func (g *Group) IsReferencePromoter(matricule string) bool {
	ref, ok := g.ReferencePromoter()
	return ok && matricule != "" && ref.Matricule == matricule
}
