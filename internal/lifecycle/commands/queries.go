package commands

import "parcours/pkg/domain"

type GetDoctorate struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (GetDoctorate) MessageName() string { return "GetDoctorate" }

type ListConfirmationPapers struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (ListConfirmationPapers) MessageName() string { return "ListConfirmationPapers" }

type GetSupervisionGroup struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (GetSupervisionGroup) MessageName() string { return "GetSupervisionGroup" }

type GetJury struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (GetJury) MessageName() string { return "GetJury" }

type ListPrivateDefenses struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (ListPrivateDefenses) MessageName() string { return "ListPrivateDefenses" }

type ListAdmissibilities struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (ListAdmissibilities) MessageName() string { return "ListAdmissibilities" }

type GetThesisDistribution struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (GetThesisDistribution) MessageName() string { return "GetThesisDistribution" }

type ListDocuments struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (ListDocuments) MessageName() string { return "ListDocuments" }

type GetDocument struct {
	DocumentID domain.DocumentID `json:"document_id"`
}

func (GetDocument) MessageName() string { return "GetDocument" }

type ListHistory struct {
	DoctorateID domain.DoctorateID `json:"doctorate_id"`
}

func (ListHistory) MessageName() string { return "ListHistory" }
