package models

import dErrors "parcours/pkg/domain-errors"

var (
	ErrDocumentNotFound = dErrors.Define(dErrors.KindNotFound, "DOCUMENT-1",
		"Document non trouvé.",
		"Document not found.")
	ErrDocumentIncomplete = dErrors.Define(dErrors.KindIncompleteData, "DOCUMENT-2",
		"Le libellé et au moins un fichier doivent être fournis.",
		"A label and at least one file must be provided.")
	ErrInvalidType = dErrors.Define(dErrors.KindInvalidValue, "DOCUMENT-3",
		"Ce type de document ne peut pas être créé manuellement.",
		"This document type cannot be created manually.")
	ErrDocumentReadOnly = dErrors.Define(dErrors.KindPrecondition, "DOCUMENT-4",
		"Ce document est généré par le système et ne peut pas être modifié.",
		"This document is generated by the system and cannot be modified.")
	ErrDocumentNotDeletable = dErrors.Define(dErrors.KindPrecondition, "DOCUMENT-5",
		"Seuls les documents libres peuvent être supprimés.",
		"Only free documents can be deleted.")
	ErrLabelReadOnly = dErrors.Define(dErrors.KindPrecondition, "DOCUMENT-6",
		"Le libellé d'un document standard ne peut pas être modifié.",
		"The label of a standard document cannot be changed.")
	ErrAuthorMissing = dErrors.Define(dErrors.KindIncompleteData, "DOCUMENT-7",
		"L'auteur du document doit être connu.",
		"The document author must be known.")
)
