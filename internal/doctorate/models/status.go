package models

// Status is the lifecycle status of a doctorate. The identifier strings are
// persisted and appear in audit entries; they must never change.
type Status string

const (
	StatusAdmitted Status = "ADMIS"

	StatusConfirmationSubmitted Status = "CONFIRMATION_SOUMISE"
	StatusConfirmationSucceeded Status = "CONFIRMATION_REUSSIE"
	StatusConfirmationToRetake  Status = "CONFIRMATION_A_REPRESENTER"
	StatusNotAllowedToContinue  Status = "NON_AUTORISE_A_POURSUIVRE"

	StatusJurySubmitted    Status = "JURY_SOUMIS"
	StatusJuryApprovedCA   Status = "JURY_APPROUVE_CA"
	StatusJuryRefusedCA    Status = "JURY_REFUSE_CA"
	StatusJuryApprovedCDD  Status = "JURY_APPROUVE_CDD"
	StatusJuryRefusedCDD   Status = "JURY_REFUSE_CDD"
	StatusJuryApprovedADRE Status = "JURY_APPROUVE_ADRE"
	StatusJuryRefusedADRE  Status = "JURY_REFUSE_ADRE"

	StatusAdmissibilitySubmitted Status = "RECEVABILITE_SOUMISE"
	StatusAdmissibilityToRetake  Status = "RECEVABILITE_A_RECOMMENCER"
	StatusAdmissibilitySucceeded Status = "RECEVABILITE_REUSSIE"
	StatusAdmissibilityFailed    Status = "RECEVABILITE_EN_ECHEC"

	StatusPrivateDefenseSubmitted  Status = "DEFENSE_PRIVEE_SOUMISE"
	StatusPrivateDefenseAuthorised Status = "DEFENSE_PRIVEE_AUTORISEE"
	StatusPrivateDefenseToRetake   Status = "DEFENSE_PRIVEE_A_RECOMMENCER"
	StatusPrivateDefenseSucceeded  Status = "DEFENSE_PRIVEE_REUSSIE"
	StatusPrivateDefenseFailed     Status = "DEFENSE_PRIVEE_EN_ECHEC"

	StatusPublicDefenseSubmitted  Status = "SOUTENANCE_PUBLIQUE_SOUMISE"
	StatusPublicDefenseAuthorised Status = "SOUTENANCE_PUBLIQUE_AUTORISEE"

	StatusDefensesSubmitted  Status = "DEFENSE_ET_SOUTENANCE_SOUMISES"
	StatusDefensesAuthorised Status = "DEFENSE_ET_SOUTENANCE_AUTORISEES"

	StatusProclaimed Status = "PROCLAME"
)

// transitions is the complete automaton. Re-submissions are self loops.
var transitions = map[Status][]Status{
	StatusAdmitted: {StatusConfirmationSubmitted},

	StatusConfirmationSubmitted: {
		StatusConfirmationSubmitted,
		StatusConfirmationSucceeded,
		StatusConfirmationToRetake,
		StatusNotAllowedToContinue,
	},
	StatusConfirmationToRetake:  {StatusConfirmationSubmitted},
	StatusConfirmationSucceeded: {StatusJurySubmitted},

	StatusJurySubmitted: {
		StatusJurySubmitted,
		StatusJuryApprovedCA,
		StatusJuryRefusedCA,
	},
	StatusJuryRefusedCA:   {StatusJurySubmitted},
	StatusJuryRefusedCDD:  {StatusJurySubmitted},
	StatusJuryRefusedADRE: {StatusJurySubmitted},
	StatusJuryApprovedCA: {
		StatusJuryApprovedCDD,
		StatusJuryRefusedCDD,
		StatusJuryApprovedADRE,
		StatusJuryRefusedADRE,
	},
	StatusJuryApprovedCDD: {StatusJuryApprovedADRE, StatusJuryRefusedADRE},
	StatusJuryApprovedADRE: {
		StatusAdmissibilitySubmitted,
		StatusPrivateDefenseSubmitted,
		StatusDefensesSubmitted,
	},

	StatusAdmissibilitySubmitted: {
		StatusAdmissibilitySubmitted,
		StatusAdmissibilitySucceeded,
		StatusAdmissibilityToRetake,
		StatusAdmissibilityFailed,
	},
	StatusAdmissibilityToRetake:  {StatusAdmissibilitySubmitted},
	StatusAdmissibilitySucceeded: {StatusPrivateDefenseSubmitted, StatusDefensesSubmitted},

	StatusPrivateDefenseSubmitted: {StatusPrivateDefenseSubmitted, StatusPrivateDefenseAuthorised},
	StatusPrivateDefenseAuthorised: {
		StatusPrivateDefenseSucceeded,
		StatusPrivateDefenseToRetake,
		StatusPrivateDefenseFailed,
	},
	StatusPrivateDefenseToRetake:  {StatusPrivateDefenseSubmitted, StatusDefensesSubmitted},
	StatusPrivateDefenseSucceeded: {StatusPublicDefenseSubmitted},

	StatusPublicDefenseSubmitted:  {StatusPublicDefenseSubmitted, StatusPublicDefenseAuthorised},
	StatusPublicDefenseAuthorised: {StatusProclaimed},

	StatusDefensesSubmitted: {StatusDefensesSubmitted, StatusDefensesAuthorised},
	StatusDefensesAuthorised: {
		StatusProclaimed,
		StatusPrivateDefenseToRetake,
		StatusPrivateDefenseFailed,
	},
}

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []Status{
	StatusAdmitted,
	StatusConfirmationSubmitted,
	StatusConfirmationSucceeded,
	StatusConfirmationToRetake,
	StatusNotAllowedToContinue,
	StatusJurySubmitted,
	StatusJuryApprovedCA,
	StatusJuryRefusedCA,
	StatusJuryApprovedCDD,
	StatusJuryRefusedCDD,
	StatusJuryApprovedADRE,
	StatusJuryRefusedADRE,
	StatusAdmissibilitySubmitted,
	StatusAdmissibilityToRetake,
	StatusAdmissibilitySucceeded,
	StatusAdmissibilityFailed,
	StatusPrivateDefenseSubmitted,
	StatusPrivateDefenseAuthorised,
	StatusPrivateDefenseToRetake,
	StatusPrivateDefenseSucceeded,
	StatusPrivateDefenseFailed,
	StatusPublicDefenseSubmitted,
	StatusPublicDefenseAuthorised,
	StatusDefensesSubmitted,
	StatusDefensesAuthorised,
	StatusProclaimed,
}

func (s Status) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether (s, next) is an allowed transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// In reports whether s is one of statuses.
func (s Status) In(statuses ...Status) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// JuryEditableStatuses are the statuses in which the jury composition may change.
var JuryEditableStatuses = []Status{
	StatusAdmitted,
	StatusConfirmationSubmitted,
	StatusConfirmationToRetake,
	StatusConfirmationSucceeded,
	StatusJuryRefusedCA,
	StatusJuryRefusedCDD,
	StatusJuryRefusedADRE,
}

// JuryRequestableStatuses are the statuses from which jury signatures may be requested.
var JuryRequestableStatuses = []Status{
	StatusConfirmationSucceeded,
	StatusJuryRefusedCA,
	StatusJuryRefusedCDD,
	StatusJuryRefusedADRE,
}

// DefendedStatuses are the statuses reached once the private defence succeeded.
var DefendedStatuses = []Status{
	StatusPrivateDefenseSucceeded,
	StatusPublicDefenseSubmitted,
	StatusPublicDefenseAuthorised,
	StatusDefensesAuthorised,
	StatusProclaimed,
}

// DefenseMethod selects the defence pipeline.
type DefenseMethod string

const (
	DefenseMethodUndecided DefenseMethod = ""
	Formule1               DefenseMethod = "FORMULE_1"
	Formule2               DefenseMethod = "FORMULE_2"
)

func (m DefenseMethod) IsValid() bool {
	return m == DefenseMethodUndecided || m == Formule1 || m == Formule2
}

func (m DefenseMethod) IsSet() bool { return m == Formule1 || m == Formule2 }
