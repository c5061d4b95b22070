package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrConfirmationPaperNotFound = dErrors.Define(dErrors.KindNotFound, "EPREUVE-CONFIRMATION-1",
		"Épreuve de confirmation non trouvée.",
		"Confirmation paper not found.")
	ErrStatusNotSubmittable = dErrors.Define(dErrors.KindPrecondition, "EPREUVE-CONFIRMATION-2",
		"Le statut du doctorat doit être 'Admis' ou 'Confirmation à représenter'.",
		"The doctorate status must be 'admitted' or 'confirmation to retake'.")
	ErrConfirmationIncomplete = dErrors.Define(dErrors.KindIncompleteData, "EPREUVE-CONFIRMATION-3",
		"La date de l'épreuve et le rapport de recherche doivent être fournis.",
		"The exam date and the research report must be provided.")
	ErrExamDateInFuture = dErrors.Define(dErrors.KindInvalidValue, "EPREUVE-CONFIRMATION-4",
		"La date de l'épreuve de confirmation ne peut pas être dans le futur.",
		"The confirmation exam date cannot be in the future.")
	ErrExamDateAfterDeadline = dErrors.Define(dErrors.KindInvalidValue, "EPREUVE-CONFIRMATION-5",
		"La date de l'épreuve de confirmation doit être antérieure ou égale à la date limite.",
		"The confirmation exam date must not be after the deadline.")
	ErrStatusNotSubmitted = dErrors.Define(dErrors.KindPrecondition, "EPREUVE-CONFIRMATION-6",
		"Le statut du doctorat doit être 'Confirmation soumise'.",
		"The doctorate status must be 'confirmation submitted'.")
	ErrMinutesMissing = dErrors.Define(dErrors.KindIncompleteData, "EPREUVE-CONFIRMATION-7",
		"Le procès-verbal de l'épreuve de confirmation doit être fourni.",
		"The confirmation minutes must be provided.")
	ErrNewDeadlineMissing = dErrors.Define(dErrors.KindIncompleteData, "EPREUVE-CONFIRMATION-8",
		"La nouvelle échéance doit être précisée.",
		"The new deadline must be provided.")
	ErrExtensionIncomplete = dErrors.Define(dErrors.KindIncompleteData, "EPREUVE-CONFIRMATION-9",
		"La nouvelle échéance et la justification succincte doivent être fournies.",
		"The new deadline and the brief justification must be provided.")
	ErrExtensionDeadlineNotLater = dErrors.Define(dErrors.KindInvalidValue, "EPREUVE-CONFIRMATION-10",
		"La nouvelle échéance doit être postérieure à l'échéance actuelle.",
		"The new deadline must be later than the current deadline.")
	ErrExtensionNotRequested = dErrors.Define(dErrors.KindPrecondition, "EPREUVE-CONFIRMATION-11",
		"Aucune demande de prolongation n'a été introduite.",
		"No extension has been requested.")
	ErrCddOpinionMissing = dErrors.Define(dErrors.KindIncompleteData, "EPREUVE-CONFIRMATION-12",
		"L'avis de la CDD doit être fourni.",
		"The CDD opinion must be provided.")
	ErrStatusNotExtensible = dErrors.Define(dErrors.KindPrecondition, "EPREUVE-CONFIRMATION-13",
		"Une prolongation ne peut plus être demandée à ce stade.",
		"An extension can no longer be requested at this stage.")
	ErrConfirmationPaperArchived = dErrors.Define(dErrors.KindPrecondition, "EPREUVE-CONFIRMATION-14",
		"Cette épreuve de confirmation n'est plus active.",
		"This confirmation paper is no longer active.")
	ErrPromoterDataMissing = dErrors.Define(dErrors.KindIncompleteData, "EPREUVE-CONFIRMATION-15",
		"Le procès-verbal du comité d'accompagnement doit être fourni.",
		"The supervisory panel minutes must be provided.")
)
