package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrJuryNotFound = dErrors.Define(dErrors.KindNotFound, "JURY-1",
		"Jury non trouvé.",
		"Jury not found.")
	ErrJuryNotEditable = dErrors.Define(dErrors.KindPrecondition, "JURY-2",
		"La composition du jury ne peut plus être modifiée.",
		"The jury composition can no longer be modified.")
	ErrJuryIncomplete = dErrors.Define(dErrors.KindIncompleteData, "JURY-3",
		"Le titre de la thèse doit être précisé.",
		"The thesis title must be provided.")
	ErrInvalidDefenseMethod = dErrors.Define(dErrors.KindInvalidValue, "JURY-4",
		"La formule de défense choisie n'est pas valide.",
		"The chosen defence method is not valid.")
	ErrMemberIncomplete = dErrors.Define(dErrors.KindIncompleteData, "JURY-5",
		"Le membre doit être désigné par son matricule ou par ses coordonnées complètes.",
		"The member must be designated by matricule or by complete contact details.")
	ErrMemberInvalidEmail = dErrors.Define(dErrors.KindInvalidValue, "JURY-6",
		"L'adresse e-mail du membre du jury n'est pas valide.",
		"The jury member e-mail address is not valid.")
	ErrMemberAlreadyInJury = dErrors.Define(dErrors.KindConflict, "JURY-7",
		"Cette personne fait déjà partie du jury.",
		"This person is already a member of the jury.")
	ErrMemberNotFound = dErrors.Define(dErrors.KindNotFound, "JURY-8",
		"Membre du jury non trouvé.",
		"Jury member not found.")
	ErrCannotModifyPromoter = dErrors.Define(dErrors.KindPrecondition, "JURY-9",
		"L'identité d'un promoteur ne peut pas être modifiée depuis le jury.",
		"A promoter's identity cannot be changed from the jury.")
	ErrCannotRemoveReferencePromoter = dErrors.Define(dErrors.KindPrecondition, "JURY-10",
		"Le promoteur de référence ne peut pas être retiré du jury.",
		"The reference promoter cannot be removed from the jury.")
	ErrInvalidRole = dErrors.Define(dErrors.KindInvalidValue, "JURY-11",
		"Ce rôle n'est pas valide pour un membre du jury.",
		"This role is not valid for a jury member.")
	ErrTooFewMembers = dErrors.Define(dErrors.KindPrecondition, "JURY-12",
		"Le jury ne compte pas assez de membres.",
		"The jury does not have enough members.")
	ErrNoExternalMember = dErrors.Define(dErrors.KindPrecondition, "JURY-13",
		"Le jury doit compter au moins un membre extérieur.",
		"The jury must include at least one external member.")
	ErrDefenseMethodMissing = dErrors.Define(dErrors.KindIncompleteData, "JURY-14",
		"La formule de défense doit être choisie.",
		"The defence method must be chosen.")
	ErrStatusNotSubmitted = dErrors.Define(dErrors.KindPrecondition, "JURY-15",
		"Le statut du doctorat doit être 'Jury soumis'.",
		"The doctorate status must be 'jury submitted'.")
	ErrMemberAlreadyDecided = dErrors.Define(dErrors.KindPrecondition, "JURY-16",
		"Ce membre du jury a déjà rendu sa décision.",
		"This jury member has already decided.")
	ErrRefusalReasonMissing = dErrors.Define(dErrors.KindIncompleteData, "JURY-17",
		"Le motif du refus doit être précisé.",
		"The refusal reason must be provided.")
	ErrStatusNotApprovedByCA = dErrors.Define(dErrors.KindPrecondition, "JURY-18",
		"Le jury doit avoir été approuvé par le comité d'accompagnement.",
		"The jury must have been approved by the supervisory panel.")
	ErrStatusNotReadyForAdre = dErrors.Define(dErrors.KindPrecondition, "JURY-19",
		"Le jury doit avoir été approuvé avant la décision de l'ADRE.",
		"The jury must be approved before the ADRE decision.")
	ErrStatusNotRequestable = dErrors.Define(dErrors.KindPrecondition, "JURY-20",
		"Les signatures du jury ne peuvent pas être demandées à ce stade.",
		"Jury signatures cannot be requested at this stage.")
	ErrApprovalPdfMissing = dErrors.Define(dErrors.KindIncompleteData, "JURY-21",
		"Le document d'approbation doit être fourni.",
		"The approval document must be provided.")
	ErrMemberNotInvited = dErrors.Define(dErrors.KindPrecondition, "JURY-22",
		"Ce membre du jury n'a pas été invité à signer.",
		"This jury member has not been invited to sign.")
)
