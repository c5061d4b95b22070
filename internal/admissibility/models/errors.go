package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrAdmissibilityIncomplete = dErrors.Define(dErrors.KindIncompleteData, "RECEVABILITE-1",
		"Les informations relatives à la recevabilité ne sont pas complètes.",
		"The admissibility information is incomplete.")
	ErrAdmissibilityNotFound = dErrors.Define(dErrors.KindNotFound, "RECEVABILITE-2",
		"Recevabilité non trouvée.",
		"Admissibility not found.")
	ErrStatusNotSubmittable = dErrors.Define(dErrors.KindPrecondition, "RECEVABILITE-3",
		"Le statut du doctorat ne permet pas de soumettre la recevabilité.",
		"The doctorate status does not allow submitting the admissibility.")
	ErrStatusNotSubmitted = dErrors.Define(dErrors.KindPrecondition, "RECEVABILITE-4",
		"Le statut du doctorat doit être 'Recevabilité soumise'.",
		"The doctorate status must be 'admissibility submitted'.")
	ErrMinutesMissing = dErrors.Define(dErrors.KindIncompleteData, "RECEVABILITE-5",
		"Le procès-verbal de la recevabilité doit être fourni.",
		"The admissibility minutes must be provided.")
	ErrDecisionDateMissing = dErrors.Define(dErrors.KindIncompleteData, "RECEVABILITE-6",
		"La date de décision de recevabilité doit être précisée.",
		"The admissibility decision date must be set.")
	ErrAdmissibilityArchived = dErrors.Define(dErrors.KindPrecondition, "RECEVABILITE-7",
		"Cette recevabilité n'est plus active.",
		"This admissibility is no longer active.")
)
