package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrPrivateDefenseIncomplete = dErrors.Define(dErrors.KindIncompleteData, "DEFENSE-PRIVEE-1",
		"Les informations relatives à la défense privée ne sont pas complètes.",
		"The private defence information is incomplete.")
	ErrPrivateDefenseNotFound = dErrors.Define(dErrors.KindNotFound, "DEFENSE-PRIVEE-2",
		"Défense privée non trouvée.",
		"Private defence not found.")
	ErrStatusNotSubmittable = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-PRIVEE-3",
		"Le statut du doctorat ne permet pas de soumettre la défense privée.",
		"The doctorate status does not allow submitting the private defence.")
	ErrStatusNotSubmitted = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-PRIVEE-4",
		"Le statut du doctorat doit être 'Défense privée soumise'.",
		"The doctorate status must be 'private defence submitted'.")
	ErrStatusNotAuthorised = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-PRIVEE-5",
		"Le statut du doctorat doit être 'Défense privée autorisée'.",
		"The doctorate status must be 'private defence authorised'.")
	ErrMinutesMissing = dErrors.Define(dErrors.KindIncompleteData, "DEFENSE-PRIVEE-6",
		"Le procès-verbal de la défense privée doit être fourni.",
		"The private defence minutes must be provided.")
	ErrPrivateDefenseArchived = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-PRIVEE-7",
		"Cette défense privée n'est plus active.",
		"This private defence is no longer active.")
)
