package signature

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/validation"
)

// PersonInput designates a new actor: either a matricule or external details.
type PersonInput struct {
	Matricule string    `json:"matricule,omitempty"`
	External  *External `json:"external,omitempty"`
}

func (in PersonInput) complete() bool {
	hasMatricule := strings.TrimSpace(in.Matricule) != ""
	if hasMatricule == (in.External != nil) {
		return false
	}
	if hasMatricule {
		return true
	}
	e := in.External
	for _, v := range []string{e.FirstName, e.LastName, e.Email, e.Institute, e.City, e.Country, e.Language} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Contract checks that the person is fully designated and that an external
// e-mail address is well formed.
func (in PersonInput) Contract(incomplete, invalidEmail *dErrors.Error) []validation.Validator {
	return []validation.Validator{
		validation.Require(in.complete(), incomplete),
		func() error {
			if in.External == nil || in.External.Email == "" {
				return nil
			}
			if !govalidator.IsEmail(strings.TrimSpace(in.External.Email)) {
				return invalidEmail.With(in.External.Email)
			}
			return nil
		},
	}
}

// NewActor builds a not-yet-invited actor for in.
func NewActor(id domain.ActorID, in PersonInput) Actor {
	a := Actor{ID: id, State: NotInvited}
	if in.External != nil {
		ext := *in.External
		ext.Email = strings.TrimSpace(ext.Email)
		a.External = &ext
		return a
	}
	a.Matricule = strings.TrimSpace(in.Matricule)
	return a
}
