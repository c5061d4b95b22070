// Package commands declares every message the lifecycle bus accepts.
//
// Commands and queries are plain records of primitive fields and typed
// identifiers. Each one names itself through MessageName, which is the key the
// bus registers its handler under and the path segment of the HTTP endpoint.
package commands

import (
	"cloud.google.com/go/civil"

	distmodels "parcours/internal/distribution/models"
	dmodels "parcours/internal/doctorate/models"
	docmodels "parcours/internal/document/models"
	jmodels "parcours/internal/jury/models"
	"parcours/internal/signature"
	"parcours/pkg/domain"
)

// Message is implemented by every command and query.
type Message interface {
	MessageName() string
}

// Announcement is the free-text override an author may give to the e-mail
// sent after a decision. Empty fields keep the template text.
type Announcement struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

type InitializeDoctorate struct {
	PropositionID domain.PropositionID `json:"proposition_id"`
}

func (InitializeDoctorate) MessageName() string { return "InitializeDoctorate" }

// Confirmation paper.

type SubmitConfirmationPaper struct {
	DoctorateID                   domain.DoctorateID `json:"doctorate_id"`
	ExamDate                      *civil.Date        `json:"exam_date"`
	ResearchReport                []domain.FileID    `json:"research_report"`
	SupervisoryPanelMinutes       []domain.FileID    `json:"supervisory_panel_minutes"`
	ResearchMandateRenewalOpinion []domain.FileID    `json:"research_mandate_renewal_opinion"`
}

func (SubmitConfirmationPaper) MessageName() string { return "SubmitConfirmationPaper" }

type CompleteConfirmationPaperByPromoter struct {
	DoctorateID                   domain.DoctorateID `json:"doctorate_id"`
	SupervisoryPanelMinutes       []domain.FileID    `json:"supervisory_panel_minutes"`
	ResearchMandateRenewalOpinion []domain.FileID    `json:"research_mandate_renewal_opinion"`
}

func (CompleteConfirmationPaperByPromoter) MessageName() string {
	return "CompleteConfirmationPaperByPromoter"
}

type DecideConfirmationSuccess struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (DecideConfirmationSuccess) MessageName() string { return "DecideConfirmationSuccess" }

type DecideConfirmationFailure struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (DecideConfirmationFailure) MessageName() string { return "DecideConfirmationFailure" }

type DecideConfirmationRetake struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	NewDeadline *civil.Date        `json:"new_deadline"`
	Announcement
}

func (DecideConfirmationRetake) MessageName() string { return "DecideConfirmationRetake" }

type RequestConfirmationExtension struct {
	DoctorateID         domain.DoctorateID `json:"doctorate_id"`
	NewDeadline         *civil.Date        `json:"new_deadline"`
	BriefJustification  string             `json:"brief_justification"`
	JustificationLetter []domain.FileID    `json:"justification_letter"`
}

func (RequestConfirmationExtension) MessageName() string { return "RequestConfirmationExtension" }

type ApproveConfirmationExtension struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	CddOpinion  string             `json:"cdd_opinion"`
}

func (ApproveConfirmationExtension) MessageName() string { return "ApproveConfirmationExtension" }

// Supervision group.

type AddPromoter struct {
	DoctorateID domain.DoctorateID    `json:"doctorate_id"`
	Person      signature.PersonInput `json:"person"`
}

func (AddPromoter) MessageName() string { return "AddPromoter" }

type AddCaMember struct {
	DoctorateID domain.DoctorateID    `json:"doctorate_id"`
	Person      signature.PersonInput `json:"person"`
}

func (AddCaMember) MessageName() string { return "AddCaMember" }

type RemoveSupervisionMember struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	MemberID    domain.ActorID     `json:"member_id"`
}

func (RemoveSupervisionMember) MessageName() string { return "RemoveSupervisionMember" }

type DesignateReferencePromoter struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	MemberID    domain.ActorID     `json:"member_id"`
}

func (DesignateReferencePromoter) MessageName() string { return "DesignateReferencePromoter" }

// Jury.

type ModifyJury struct {
	DoctorateID     domain.DoctorateID    `json:"doctorate_id"`
	ThesisTitle     string                `json:"thesis_title"`
	DefenseMethod   dmodels.DefenseMethod `json:"defense_method"`
	IndicativeDate  string                `json:"indicative_date"`
	ThesisLanguage  string                `json:"thesis_language"`
	DefenseLanguage string                `json:"defense_language"`
	Comment         string                `json:"comment"`
}

func (ModifyJury) MessageName() string { return "ModifyJury" }

type AddJuryMember struct {
	DoctorateID domain.DoctorateID    `json:"doctorate_id"`
	Person      signature.PersonInput `json:"person"`
	Role        jmodels.Role          `json:"role"`
}

func (AddJuryMember) MessageName() string { return "AddJuryMember" }

type ModifyJuryMember struct {
	DoctorateID domain.DoctorateID    `json:"doctorate_id"`
	MemberID    domain.ActorID        `json:"member_id"`
	Person      signature.PersonInput `json:"person"`
	Role        jmodels.Role          `json:"role"`
}

func (ModifyJuryMember) MessageName() string { return "ModifyJuryMember" }

type RemoveJuryMember struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	MemberID    domain.ActorID     `json:"member_id"`
}

func (RemoveJuryMember) MessageName() string { return "RemoveJuryMember" }

type ModifyJuryMemberRole struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	MemberID    domain.ActorID     `json:"member_id"`
	Role        jmodels.Role       `json:"role"`
}

func (ModifyJuryMemberRole) MessageName() string { return "ModifyJuryMemberRole" }

type RequestJurySignatures struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (RequestJurySignatures) MessageName() string { return "RequestJurySignatures" }

type ApproveJuryMember struct {
	DoctorateID     domain.DoctorateID `json:"doctorate_id"`
	MemberID        domain.ActorID     `json:"member_id"`
	Comment         string             `json:"comment"`
	InternalComment string             `json:"internal_comment"`
	ApprovalPDF     []domain.FileID    `json:"approval_pdf"`
}

func (ApproveJuryMember) MessageName() string { return "ApproveJuryMember" }

type DeclineJuryMember struct {
	DoctorateID     domain.DoctorateID `json:"doctorate_id"`
	MemberID        domain.ActorID     `json:"member_id"`
	Reason          string             `json:"reason"`
	Comment         string             `json:"comment"`
	InternalComment string             `json:"internal_comment"`
}

func (DeclineJuryMember) MessageName() string { return "DeclineJuryMember" }

type ApproveJuryByPdf struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	ApprovalPDF []domain.FileID    `json:"approval_pdf"`
}

func (ApproveJuryByPdf) MessageName() string { return "ApproveJuryByPdf" }

// JuryVerdict is the payload shared by the CDD and ADRE jury decisions.
type JuryVerdict struct {
	DoctorateID     domain.DoctorateID `json:"doctorate_id"`
	Reason          string             `json:"reason,omitempty"`
	Comment         string             `json:"comment,omitempty"`
	InternalComment string             `json:"internal_comment,omitempty"`
}

type ApproveJuryByCdd struct{ JuryVerdict }

func (ApproveJuryByCdd) MessageName() string { return "ApproveJuryByCdd" }

type DeclineJuryByCdd struct{ JuryVerdict }

func (DeclineJuryByCdd) MessageName() string { return "DeclineJuryByCdd" }

type ApproveJuryByAdre struct{ JuryVerdict }

func (ApproveJuryByAdre) MessageName() string { return "ApproveJuryByAdre" }

type DeclineJuryByAdre struct{ JuryVerdict }

func (DeclineJuryByAdre) MessageName() string { return "DeclineJuryByAdre" }

// Admissibility (formule 2).

type SubmitAdmissibility struct {
	DoctorateID              domain.DoctorateID `json:"doctorate_id"`
	ThesisTitle              string             `json:"thesis_title"`
	DecisionDate             *civil.Date        `json:"decision_date"`
	ManuscriptSubmissionDate *civil.Date        `json:"manuscript_submission_date"`
}

func (SubmitAdmissibility) MessageName() string { return "SubmitAdmissibility" }

type SubmitAdmissibilityMinutes struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Minutes     []domain.FileID    `json:"minutes"`
	JuryOpinion []domain.FileID    `json:"jury_opinion"`
}

func (SubmitAdmissibilityMinutes) MessageName() string { return "SubmitAdmissibilityMinutes" }

type ConfirmAdmissibilitySuccess struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmAdmissibilitySuccess) MessageName() string { return "ConfirmAdmissibilitySuccess" }

type ConfirmAdmissibilityFailure struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmAdmissibilityFailure) MessageName() string { return "ConfirmAdmissibilityFailure" }

type ConfirmAdmissibilityRetake struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmAdmissibilityRetake) MessageName() string { return "ConfirmAdmissibilityRetake" }

// Private defence (formule 1).

type SubmitPrivateDefense struct {
	DoctorateID              domain.DoctorateID `json:"doctorate_id"`
	ThesisTitle              string             `json:"thesis_title"`
	DateTime                 *civil.DateTime    `json:"date_time"`
	Place                    string             `json:"place"`
	ManuscriptSubmissionDate *civil.Date        `json:"manuscript_submission_date"`
}

func (SubmitPrivateDefense) MessageName() string { return "SubmitPrivateDefense" }

type AuthorisePrivateDefense struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (AuthorisePrivateDefense) MessageName() string { return "AuthorisePrivateDefense" }

type SubmitPrivateDefenseMinutes struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Minutes     []domain.FileID    `json:"minutes"`
}

func (SubmitPrivateDefenseMinutes) MessageName() string { return "SubmitPrivateDefenseMinutes" }

type ConfirmPrivateDefenseSuccess struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPrivateDefenseSuccess) MessageName() string { return "ConfirmPrivateDefenseSuccess" }

type ConfirmPrivateDefenseFailure struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPrivateDefenseFailure) MessageName() string { return "ConfirmPrivateDefenseFailure" }

type ConfirmPrivateDefenseRetake struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPrivateDefenseRetake) MessageName() string { return "ConfirmPrivateDefenseRetake" }

// Public defence.

// PublicDefense groups the public defence fields shared by both formulae.
type PublicDefense struct {
	Language            string          `json:"language"`
	DateTime            *civil.DateTime `json:"date_time"`
	Place               string          `json:"place"`
	DeliberationRoom    string          `json:"deliberation_room"`
	AdditionalInfo      string          `json:"additional_info"`
	AnnouncementSummary string          `json:"announcement_summary"`
	AnnouncementPhoto   []domain.FileID `json:"announcement_photo"`
}

type SubmitPublicDefense struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	PublicDefense
}

func (SubmitPublicDefense) MessageName() string { return "SubmitPublicDefense" }

type AuthorisePublicDefense struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (AuthorisePublicDefense) MessageName() string { return "AuthorisePublicDefense" }

type SubmitPublicDefenseMinutes struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Minutes     []domain.FileID    `json:"minutes"`
}

func (SubmitPublicDefenseMinutes) MessageName() string { return "SubmitPublicDefenseMinutes" }

type ConfirmPublicDefenseSuccess struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPublicDefenseSuccess) MessageName() string { return "ConfirmPublicDefenseSuccess" }

type ScheduleDiplomaCollection struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Date        *civil.Date        `json:"date"`
}

func (ScheduleDiplomaCollection) MessageName() string { return "ScheduleDiplomaCollection" }

// Private and public defences together (formule 2).

type SubmitPrivateAndPublicDefenses struct {
	DoctorateID              domain.DoctorateID `json:"doctorate_id"`
	ThesisTitle              string             `json:"thesis_title"`
	PrivateDateTime          *civil.DateTime    `json:"private_date_time"`
	PrivatePlace             string             `json:"private_place"`
	ManuscriptSubmissionDate *civil.Date        `json:"manuscript_submission_date"`
	PublicDefense            PublicDefense      `json:"public_defense"`
}

func (SubmitPrivateAndPublicDefenses) MessageName() string { return "SubmitPrivateAndPublicDefenses" }

type AuthorisePrivateAndPublicDefenses struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (AuthorisePrivateAndPublicDefenses) MessageName() string {
	return "AuthorisePrivateAndPublicDefenses"
}

type SubmitPrivateAndPublicDefensesMinutes struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Minutes     []domain.FileID    `json:"minutes"`
}

func (SubmitPrivateAndPublicDefensesMinutes) MessageName() string {
	return "SubmitPrivateAndPublicDefensesMinutes"
}

type ConfirmPrivateAndPublicDefensesSuccess struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPrivateAndPublicDefensesSuccess) MessageName() string {
	return "ConfirmPrivateAndPublicDefensesSuccess"
}

type ConfirmPrivateAndPublicDefensesFailure struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPrivateAndPublicDefensesFailure) MessageName() string {
	return "ConfirmPrivateAndPublicDefensesFailure"
}

type ConfirmPrivateAndPublicDefensesRetake struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Announcement
}

func (ConfirmPrivateAndPublicDefensesRetake) MessageName() string {
	return "ConfirmPrivateAndPublicDefensesRetake"
}

// Thesis distribution authorisation.

type EncodeThesisDistribution struct {
	DoctorateID          domain.DoctorateID       `json:"doctorate_id"`
	FundingSources       string                   `json:"funding_sources"`
	SummaryEN            string                   `json:"summary_en"`
	SummaryOther         string                   `json:"summary_other"`
	SummaryOtherLanguage string                   `json:"summary_other_language"`
	Keywords             []string                 `json:"keywords"`
	DiffusionType        distmodels.DiffusionType `json:"diffusion_type"`
	EmbargoDate          *civil.Date              `json:"embargo_date"`
	AdditionalLimitation string                   `json:"additional_limitation"`
}

func (EncodeThesisDistribution) MessageName() string { return "EncodeThesisDistribution" }

type SubmitThesisDistribution struct {
	DoctorateID       domain.DoctorateID `json:"doctorate_id"`
	AcceptanceContent string             `json:"acceptance_content"`
}

func (SubmitThesisDistribution) MessageName() string { return "SubmitThesisDistribution" }

type SendThesisDistributionToReferencePromoter struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (SendThesisDistributionToReferencePromoter) MessageName() string {
	return "SendThesisDistributionToReferencePromoter"
}

// DistributionVerdict is the payload shared by every signatory decision.
type DistributionVerdict struct {
	DoctorateID     domain.DoctorateID `json:"doctorate_id"`
	Reason          string             `json:"reason,omitempty"`
	Comment         string             `json:"comment,omitempty"`
	InternalComment string             `json:"internal_comment,omitempty"`
}

type ApproveThesisDistributionByReferencePromoter struct{ DistributionVerdict }

func (ApproveThesisDistributionByReferencePromoter) MessageName() string {
	return "ApproveThesisDistributionByReferencePromoter"
}

type DeclineThesisDistributionByReferencePromoter struct{ DistributionVerdict }

func (DeclineThesisDistributionByReferencePromoter) MessageName() string {
	return "DeclineThesisDistributionByReferencePromoter"
}

type ApproveThesisDistributionByAdre struct{ DistributionVerdict }

func (ApproveThesisDistributionByAdre) MessageName() string {
	return "ApproveThesisDistributionByAdre"
}

type DeclineThesisDistributionByAdre struct{ DistributionVerdict }

func (DeclineThesisDistributionByAdre) MessageName() string {
	return "DeclineThesisDistributionByAdre"
}

type ApproveThesisDistributionBySceb struct{ DistributionVerdict }

func (ApproveThesisDistributionBySceb) MessageName() string {
	return "ApproveThesisDistributionBySceb"
}

type DeclineThesisDistributionBySceb struct{ DistributionVerdict }

func (DeclineThesisDistributionBySceb) MessageName() string {
	return "DeclineThesisDistributionBySceb"
}

// Documents.

type InitializeDocument struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	Type        docmodels.Type     `json:"type"`
	Label       string             `json:"label"`
	Files       []domain.FileID    `json:"files"`
}

func (InitializeDocument) MessageName() string { return "InitializeDocument" }

type ModifyDocument struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	DocumentID  domain.DocumentID  `json:"document_id"`
	Label       string             `json:"label"`
	Files       []domain.FileID    `json:"files"`
}

func (ModifyDocument) MessageName() string { return "ModifyDocument" }

type DeleteDocument struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
	DocumentID  domain.DocumentID  `json:"document_id"`
}

func (DeleteDocument) MessageName() string { return "DeleteDocument" }
