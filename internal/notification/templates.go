package notification

// Mail template identifiers. They select pre-registered templates and are
// part of the external contract.
const (
	TemplateConfirmationSubmitStudent     = "osis-parcours-doctoral-confirmation-submit-student"
	TemplateConfirmationSubmitPromoter    = "osis-parcours-doctoral-confirmation-submit-promoter"
	TemplateConfirmationOnSuccessStudent  = "osis-parcours-doctoral-confirmation-on-success-student"
	TemplateConfirmationOnFailureStudent  = "osis-parcours-doctoral-confirmation-on-failure-student"
	TemplateConfirmationOnRetakeStudent   = "osis-parcours-doctoral-confirmation-on-retaking-student"
	TemplateConfirmationExtensionRequest  = "osis-parcours-doctoral-confirmation-extension-request-cdd"
	TemplateConfirmationExtensionApproved = "osis-parcours-doctoral-confirmation-extension-approved-student"

	TemplateJurySignatureRequestMember   = "osis-parcours-doctoral-jury-signature-request-member"
	TemplateJurySignatureRequestExternal = "osis-parcours-doctoral-jury-signature-request-external"
	TemplateJuryMemberRefused            = "osis-parcours-doctoral-jury-member-refusal-student"
	TemplateJuryApprovedCA               = "osis-parcours-doctoral-jury-approved-by-ca-cdd"
	TemplateJuryDecisionCdd              = "osis-parcours-doctoral-jury-cdd-decision-student"
	TemplateJuryDecisionAdre             = "osis-parcours-doctoral-jury-adre-decision-student"

	TemplatePrivateDefenseSubmitted     = "osis-parcours-doctoral-private-defense-submission-promoter"
	TemplatePrivateDefenseAuthorised    = "osis-parcours-doctoral-private-defense-authorisation-student"
	TemplatePrivateDefenseOnSuccess     = "osis-parcours-doctoral-private-defense-on-success-student"
	TemplatePrivateDefenseOnFailure     = "osis-parcours-doctoral-private-defense-on-failure-student"
	TemplatePrivateDefenseOnRetake      = "osis-parcours-doctoral-private-defense-on-retaking-student"
	TemplateAdmissibilitySubmitted      = "osis-parcours-doctoral-admissibility-submission-promoter"
	TemplateAdmissibilityOnSuccess      = "osis-parcours-doctoral-admissibility-on-success-student"
	TemplateAdmissibilityOnFailure      = "osis-parcours-doctoral-admissibility-on-failure-student"
	TemplateAdmissibilityOnRetake       = "osis-parcours-doctoral-admissibility-on-retaking-student"
	TemplatePublicDefenseSubmitted      = "osis-parcours-doctoral-public-defense-submission-promoter"
	TemplatePublicDefenseAuthorised     = "osis-parcours-doctoral-public-defense-authorisation-jury"
	TemplatePublicDefenseOnSuccess      = "osis-parcours-doctoral-public-defense-on-success-student"
	TemplateDefensesSubmitted           = "osis-parcours-doctoral-defenses-submission-promoter"
	TemplateDefensesAuthorised          = "osis-parcours-doctoral-defenses-authorisation-jury"
	TemplateDefensesOnSuccess           = "osis-parcours-doctoral-defenses-on-success-student"
	TemplateDefensesOnFailure           = "osis-parcours-doctoral-defenses-on-failure-student"
	TemplateDefensesOnRetake            = "osis-parcours-doctoral-defenses-on-retaking-student"
	TemplateDiplomaCollectionScheduled  = "osis-parcours-doctoral-diploma-collection-student"
	TemplateDistributionToPromoter      = "osis-parcours-doctoral-thesis-distribution-promoter"
	TemplateDistributionRefusedStudent  = "osis-parcours-doctoral-thesis-distribution-refusal-student"
	TemplateDistributionApprovedStudent = "osis-parcours-doctoral-thesis-distribution-approval-student"
)

// Canvas template identifiers rendered into SYSTEME documents.
const (
	CanvasConfirmationMinutes     = "parcours_doctoral/confirmation/minutes_canvas"
	CanvasConfirmationSuccess     = "parcours_doctoral/confirmation/success_certificate"
	CanvasConfirmationFailure     = "parcours_doctoral/confirmation/failure_certificate"
	CanvasPrivateDefenseMinutes   = "parcours_doctoral/private_defense/minutes_canvas"
	CanvasAdmissibilityMinutes    = "parcours_doctoral/admissibility/minutes_canvas"
	CanvasPublicDefenseMinutes    = "parcours_doctoral/public_defense/minutes_canvas"
	CanvasJuryApproval            = "parcours_doctoral/jury/approval"
	CanvasThesisDistributionTerms = "parcours_doctoral/thesis_distribution/terms"
)
