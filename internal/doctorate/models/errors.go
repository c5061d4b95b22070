package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrDoctorateNotFound = dErrors.Define(dErrors.KindNotFound, "DOCTORAT-1",
		"Doctorat non trouvé.",
		"Doctorate not found.")
	ErrPropositionNotFound = dErrors.Define(dErrors.KindExternalNotFound, "DOCTORAT-2",
		"La proposition d'admission est introuvable.",
		"The admission proposition could not be found.")
	ErrPropositionNotEnrolled = dErrors.Define(dErrors.KindPrecondition, "DOCTORAT-3",
		"L'inscription n'est pas autorisée pour cette proposition.",
		"Enrolment is not authorised for this proposition.")
	ErrTransitionNotAllowed = dErrors.Define(dErrors.KindPrecondition, "DOCTORAT-4",
		"Ce changement de statut du doctorat n'est pas permis.",
		"This doctorate status change is not allowed.")
	ErrFormule2Required = dErrors.Define(dErrors.KindPrecondition, "DOCTORAT-5",
		"Cette étape n'est disponible que pour la formule 2.",
		"This step is only available for formule 2.")
	ErrThesisTitleMissing = dErrors.Define(dErrors.KindIncompleteData, "DOCTORAT-6",
		"Le titre de la thèse doit être précisé.",
		"The thesis title must be provided.")
)

// Public defence.
var (
	ErrPublicDefenseIncomplete = dErrors.Define(dErrors.KindIncompleteData, "SOUTENANCE-PUBLIQUE-1",
		"Les informations relatives à la soutenance publique ne sont pas complètes.",
		"The public defence information is incomplete.")
	ErrStatusNotPrivateDefenseSucceeded = dErrors.Define(dErrors.KindPrecondition, "SOUTENANCE-PUBLIQUE-2",
		"Le statut du doctorat doit être 'Défense privée réussie'.",
		"The doctorate status must be 'private defence succeeded'.")
	ErrStatusNotPublicDefenseSubmitted = dErrors.Define(dErrors.KindPrecondition, "SOUTENANCE-PUBLIQUE-3",
		"Le statut du doctorat doit être 'Soutenance publique soumise'.",
		"The doctorate status must be 'public defence submitted'.")
	ErrStatusNotPublicDefenseAuthorised = dErrors.Define(dErrors.KindPrecondition, "SOUTENANCE-PUBLIQUE-4",
		"Le statut du doctorat doit être 'Soutenance publique autorisée'.",
		"The doctorate status must be 'public defence authorised'.")
	ErrPublicDefenseMinutesMissing = dErrors.Define(dErrors.KindIncompleteData, "SOUTENANCE-PUBLIQUE-5",
		"Le procès-verbal de la soutenance publique doit être fourni.",
		"The public defence minutes must be provided.")
	ErrPublicDefenseDateMissing = dErrors.Define(dErrors.KindIncompleteData, "SOUTENANCE-PUBLIQUE-6",
		"La date de la soutenance publique doit être précisée.",
		"The public defence date must be set.")
	ErrStatusNotProclaimed = dErrors.Define(dErrors.KindPrecondition, "SOUTENANCE-PUBLIQUE-7",
		"Le doctorat doit être proclamé.",
		"The doctorate must be proclaimed.")
	ErrDiplomaCollectionDateMissing = dErrors.Define(dErrors.KindIncompleteData, "SOUTENANCE-PUBLIQUE-8",
		"La date de retrait du diplôme doit être précisée.",
		"The diploma collection date must be set.")
	ErrPublicDefenseMinutesStatus = dErrors.Define(dErrors.KindPrecondition, "SOUTENANCE-PUBLIQUE-9",
		"Le procès-verbal ne peut être déposé qu'après l'autorisation de la soutenance publique.",
		"Minutes can only be submitted once the public defence is authorised.")
)

// Combined private and public defences (formule 2).
var (
	ErrDefensesIncomplete = dErrors.Define(dErrors.KindIncompleteData, "DEFENSE-SOUTENANCE-1",
		"Les informations relatives à la défense privée et à la soutenance publique ne sont pas complètes.",
		"The private and public defence information is incomplete.")
	ErrStatusNotDefensesSubmittable = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-SOUTENANCE-2",
		"Le statut du doctorat ne permet pas de soumettre la défense privée et la soutenance publique.",
		"The doctorate status does not allow submitting the private and public defences.")
	ErrStatusNotDefensesSubmitted = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-SOUTENANCE-3",
		"Le statut du doctorat doit être 'Défense privée et soutenance publique soumises'.",
		"The doctorate status must be 'private and public defences submitted'.")
	ErrStatusNotDefensesAuthorised = dErrors.Define(dErrors.KindPrecondition, "DEFENSE-SOUTENANCE-4",
		"Le statut du doctorat doit être 'Défense privée et soutenance publique autorisées'.",
		"The doctorate status must be 'private and public defences authorised'.")
	ErrDefensesMinutesMissing = dErrors.Define(dErrors.KindIncompleteData, "DEFENSE-SOUTENANCE-5",
		"Le procès-verbal de la défense privée et de la soutenance publique doit être fourni.",
		"The minutes of the private and public defences must be provided.")
)
