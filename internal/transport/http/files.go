package httptransport

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcours/internal/ports"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/platform/httputil"
	"parcours/pkg/platform/sentinel"
	"parcours/pkg/requestcontext"
)

const maxUploadBytes = 50 << 20

var (
	ErrUploadNotFound = dErrors.Define(dErrors.KindNotFound, "FICHIER-1",
		"Le fichier téléversé est introuvable.",
		"The uploaded file cannot be found.")
	ErrUploadNameMissing = dErrors.Define(dErrors.KindIncompleteData, "FICHIER-2",
		"Le nom du fichier est requis.",
		"The file name is required.")
	ErrUploadEmpty = dErrors.Define(dErrors.KindIncompleteData, "FICHIER-3",
		"Le fichier est vide ou trop volumineux.",
		"The file is empty or too large.")
)

type uploadBody struct {
	Token string `json:"token"`
}

type confirmBody struct {
	FileID string `json:"file_id"`
}

// FileHandler lets clients upload the files they then reference by ID in
// commands. Uploads are two-step: store, then confirm with the caller as
// author.
type FileHandler struct {
	files  ports.FileService
	logger *slog.Logger
}

func NewFileHandler(files ports.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{files: files, logger: logger}
}

func (h *FileHandler) Register(r chi.Router) {
	r.Post("/files", h.handleUpload)
	r.Post("/files/{token}/confirm", h.handleConfirm)
	r.Get("/files/{id}", h.handleMetadata)
}

func (h *FileHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := requestcontext.Language(ctx)
	name := r.URL.Query().Get("name")
	if name == "" {
		httputil.WriteError(w, ErrUploadNameMissing, lang)
		return
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil || len(data) == 0 {
		httputil.WriteError(w, ErrUploadEmpty.With(name), lang)
		return
	}

	// An empty type lets the store sniff the content.
	mimeType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}
	token, err := h.files.StoreRemote(ctx, data, name, mimeType)
	if err != nil {
		h.logger.ErrorContext(ctx, "file upload failed",
			"name", name,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.Internal(err, "store upload"), lang)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, uploadBody{Token: token})
}

func (h *FileHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")
	id, err := h.files.ConfirmUpload(ctx, token, requestcontext.Actor(ctx))
	if err != nil {
		httputil.WriteError(w, fileError(err, token), requestcontext.Language(ctx))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, confirmBody{FileID: id.String()})
}

func (h *FileHandler) handleMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := requestcontext.Language(ctx)
	raw := chi.URLParam(r, "id")
	id, err := domain.ParseFileID(raw)
	if err != nil {
		httputil.WriteError(w, err, lang)
		return
	}
	token, err := h.files.ReadToken(ctx, id)
	if err != nil {
		httputil.WriteError(w, fileError(err, raw), lang)
		return
	}
	meta, err := h.files.Metadata(ctx, token)
	if err != nil {
		httputil.WriteError(w, fileError(err, raw), lang)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, meta)
}

func fileError(err error, token string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return ErrUploadNotFound.With(token)
	}
	return dErrors.Internal(err, "file service")
}
