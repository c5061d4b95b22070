package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrAuthorizationNotFound = dErrors.Define(dErrors.KindNotFound, "AUTORISATION-DIFFUSION-THESE-1",
		"Autorisation de diffusion de la thèse non trouvée.",
		"Thesis distribution authorisation not found.")
	ErrDoctorateNotDefended = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-2",
		"L'autorisation de diffusion ne peut être encodée qu'après la réussite de la défense privée.",
		"The distribution authorisation can only be encoded once the private defence succeeded.")
	ErrNotEditable = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-3",
		"L'autorisation de diffusion ne peut plus être modifiée.",
		"The distribution authorisation can no longer be modified.")
	ErrIncomplete = dErrors.Define(dErrors.KindIncompleteData, "AUTORISATION-DIFFUSION-THESE-4",
		"Les informations de l'autorisation de diffusion ne sont pas complètes.",
		"The distribution authorisation information is incomplete.")
	ErrEmbargoDateMissing = dErrors.Define(dErrors.KindIncompleteData, "AUTORISATION-DIFFUSION-THESE-5",
		"La date de fin d'embargo doit être précisée.",
		"The embargo end date must be set.")
	ErrConditionsNotAccepted = dErrors.Define(dErrors.KindIncompleteData, "AUTORISATION-DIFFUSION-THESE-6",
		"Les conditions de diffusion doivent être acceptées.",
		"The distribution conditions must be accepted.")
	ErrInvalidDiffusionType = dErrors.Define(dErrors.KindInvalidValue, "AUTORISATION-DIFFUSION-THESE-7",
		"Le type de diffusion n'est pas valide.",
		"The diffusion type is not valid.")
	ErrStatusNotSubmitted = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-8",
		"L'autorisation de diffusion doit être soumise.",
		"The distribution authorisation must be submitted.")
	ErrStatusNotPendingPromoter = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-9",
		"L'autorisation de diffusion doit être en cours de validation par le promoteur.",
		"The distribution authorisation must be awaiting the promoter.")
	ErrStatusNotApprovedByPromoter = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-10",
		"L'autorisation de diffusion doit être approuvée par le promoteur de référence.",
		"The distribution authorisation must be approved by the reference promoter.")
	ErrStatusNotApprovedByAdre = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-11",
		"L'autorisation de diffusion doit être approuvée par l'ADRE.",
		"The distribution authorisation must be approved by ADRE.")
	ErrNotReferencePromoter = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-12",
		"Seul le promoteur de référence peut se prononcer sur l'autorisation de diffusion.",
		"Only the reference promoter can decide on the distribution authorisation.")
	ErrRefusalReasonMissing = dErrors.Define(dErrors.KindIncompleteData, "AUTORISATION-DIFFUSION-THESE-13",
		"Le motif du refus doit être précisé.",
		"The refusal reason must be provided.")
	ErrReferencePromoterMissing = dErrors.Define(dErrors.KindPrecondition, "AUTORISATION-DIFFUSION-THESE-14",
		"Aucun promoteur de référence n'est désigné.",
		"No reference promoter is designated.")
)
