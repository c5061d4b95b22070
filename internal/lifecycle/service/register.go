package service

import "parcours/internal/lifecycle/bus"

// Register routes every command to s.
func Register(b *bus.Bus, s *Service) {
	bus.Register(b, s.AddCaMember)
	bus.Register(b, s.AddJuryMember)
	bus.Register(b, s.AddPromoter)
	bus.Register(b, s.ApproveConfirmationExtension)
	bus.Register(b, s.ApproveJuryByAdre)
	bus.Register(b, s.ApproveJuryByCdd)
	bus.Register(b, s.ApproveJuryByPdf)
	bus.Register(b, s.ApproveJuryMember)
	bus.Register(b, s.ApproveThesisDistributionByAdre)
	bus.Register(b, s.ApproveThesisDistributionByReferencePromoter)
	bus.Register(b, s.ApproveThesisDistributionBySceb)
	bus.Register(b, s.AuthorisePrivateAndPublicDefenses)
	bus.Register(b, s.AuthorisePrivateDefense)
	bus.Register(b, s.AuthorisePublicDefense)
	bus.Register(b, s.CompleteConfirmationPaperByPromoter)
	bus.Register(b, s.ConfirmAdmissibilityFailure)
	bus.Register(b, s.ConfirmAdmissibilityRetake)
	bus.Register(b, s.ConfirmAdmissibilitySuccess)
	bus.Register(b, s.ConfirmPrivateAndPublicDefensesFailure)
	bus.Register(b, s.ConfirmPrivateAndPublicDefensesRetake)
	bus.Register(b, s.ConfirmPrivateAndPublicDefensesSuccess)
	bus.Register(b, s.ConfirmPrivateDefenseFailure)
	bus.Register(b, s.ConfirmPrivateDefenseRetake)
	bus.Register(b, s.ConfirmPrivateDefenseSuccess)
	bus.Register(b, s.ConfirmPublicDefenseSuccess)
	bus.Register(b, s.DecideConfirmationFailure)
	bus.Register(b, s.DecideConfirmationRetake)
	bus.Register(b, s.DecideConfirmationSuccess)
	bus.Register(b, s.DeclineJuryByAdre)
	bus.Register(b, s.DeclineJuryByCdd)
	bus.Register(b, s.DeclineJuryMember)
	bus.Register(b, s.DeclineThesisDistributionByAdre)
	bus.Register(b, s.DeclineThesisDistributionByReferencePromoter)
	bus.Register(b, s.DeclineThesisDistributionBySceb)
	bus.Register(b, s.DeleteDocument)
	bus.Register(b, s.DesignateReferencePromoter)
	bus.Register(b, s.EncodeThesisDistribution)
	bus.Register(b, s.InitializeDoctorate)
	bus.Register(b, s.InitializeDocument)
	bus.Register(b, s.ModifyDocument)
	bus.Register(b, s.ModifyJury)
	bus.Register(b, s.ModifyJuryMember)
	bus.Register(b, s.ModifyJuryMemberRole)
	bus.Register(b, s.RemoveJuryMember)
	bus.Register(b, s.RemoveSupervisionMember)
	bus.Register(b, s.RequestConfirmationExtension)
	bus.Register(b, s.RequestJurySignatures)
	bus.Register(b, s.ScheduleDiplomaCollection)
	bus.Register(b, s.SendThesisDistributionToReferencePromoter)
	bus.Register(b, s.SubmitAdmissibility)
	bus.Register(b, s.SubmitAdmissibilityMinutes)
	bus.Register(b, s.SubmitConfirmationPaper)
	bus.Register(b, s.SubmitPrivateAndPublicDefenses)
	bus.Register(b, s.SubmitPrivateAndPublicDefensesMinutes)
	bus.Register(b, s.SubmitPrivateDefense)
	bus.Register(b, s.SubmitPrivateDefenseMinutes)
	bus.Register(b, s.SubmitPublicDefense)
	bus.Register(b, s.SubmitPublicDefenseMinutes)
	bus.Register(b, s.SubmitThesisDistribution)
}

// RegisterQueries routes every read model query to s.
func RegisterQueries(b *bus.Bus, s *Service) {
	bus.Register(b, s.GetDoctorate)
	bus.Register(b, s.GetDocument)
	bus.Register(b, s.GetJury)
	bus.Register(b, s.GetSupervisionGroup)
	bus.Register(b, s.GetThesisDistribution)
	bus.Register(b, s.ListAdmissibilities)
	bus.Register(b, s.ListConfirmationPapers)
	bus.Register(b, s.ListDocuments)
	bus.Register(b, s.ListHistory)
	bus.Register(b, s.ListPrivateDefenses)
}
