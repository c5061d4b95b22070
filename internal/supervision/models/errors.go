package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrGroupNotFound = dErrors.Define(dErrors.KindNotFound, "GROUPE-SUPERVISION-1",
		"Groupe de supervision non trouvé.",
		"Supervision group not found.")
	ErrMemberIncomplete = dErrors.Define(dErrors.KindIncompleteData, "GROUPE-SUPERVISION-2",
		"Le membre doit être désigné par son matricule ou par ses coordonnées complètes.",
		"The member must be designated by matricule or by complete contact details.")
	ErrMemberInvalidEmail = dErrors.Define(dErrors.KindInvalidValue, "GROUPE-SUPERVISION-3",
		"L'adresse e-mail du membre n'est pas valide.",
		"The member e-mail address is not valid.")
	ErrMemberAlreadyInGroup = dErrors.Define(dErrors.KindConflict, "GROUPE-SUPERVISION-4",
		"Cette personne fait déjà partie du groupe de supervision.",
		"This person is already part of the supervision group.")
	ErrMemberNotFound = dErrors.Define(dErrors.KindNotFound, "GROUPE-SUPERVISION-5",
		"Membre du groupe de supervision non trouvé.",
		"Supervision group member not found.")
	ErrReferencePromoterRemoval = dErrors.Define(dErrors.KindPrecondition, "GROUPE-SUPERVISION-6",
		"Le promoteur de référence ne peut pas être retiré.",
		"The reference promoter cannot be removed.")
	ErrNotAPromoter = dErrors.Define(dErrors.KindInvalidValue, "GROUPE-SUPERVISION-7",
		"Seul un promoteur peut être désigné comme promoteur de référence.",
		"Only a promoter can be designated as reference promoter.")
)
