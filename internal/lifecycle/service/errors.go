package service

import dErrors "parcours/pkg/domain-errors"

var (
	ErrPersonUnknown = dErrors.Define(dErrors.KindExternalNotFound, "PERSONNE-1",
		"La personne n'est pas connue.",
		"The person is not known.")
	ErrSignatureProcess = dErrors.Define(dErrors.KindInternal, "PROCESSUS-SIGNATURE-1",
		"Le processus de signature n'a pas pu être mis à jour.",
		"The signature process could not be updated.")
)
