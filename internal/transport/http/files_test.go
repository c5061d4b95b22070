package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcours/internal/adapters/filestore"
	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
	"parcours/pkg/testutil"
)

func fileRouter(files ports.FileService) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, testutil.WithActor(req, "00000001"))
		})
	})
	NewFileHandler(files, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func TestFileUploadLifecycle(t *testing.T) {
	store := filestore.NewInMemoryStore()
	router := fileRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/files?name=thesis.pdf", bytes.NewBufferString("%PDF-1.7\n1 0 obj\n"))
	req.Header.Set("Content-Type", "application/octet-stream")
	w := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var uploaded uploadBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&uploaded))
	require.NotEmpty(t, uploaded.Token)

	w = testutil.DoRequest(router, httptest.NewRequest(http.MethodPost, "/files/"+uploaded.Token+"/confirm", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var confirmed confirmBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&confirmed))
	id, err := domain.ParseFileID(confirmed.FileID)
	require.NoError(t, err)

	w = testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/files/"+id.String(), nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var meta ports.FileMetadata
	require.NoError(t, json.NewDecoder(w.Body).Decode(&meta))
	assert.Equal(t, "thesis.pdf", meta.Name)
	assert.Equal(t, "application/pdf", meta.MimeType)
	assert.Equal(t, "00000001", meta.Author)

	t.Run("a token confirms once", func(t *testing.T) {
		w := testutil.DoRequest(router, httptest.NewRequest(http.MethodPost, "/files/"+uploaded.Token+"/confirm", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, []string{string(ErrUploadNotFound.Code)}, testutil.ErrorCodes(t, w))
	})
}

func TestFileUploadRejects(t *testing.T) {
	router := fileRouter(filestore.NewInMemoryStore())

	tests := []struct {
		name   string
		req    *http.Request
		status int
		code   string
	}{
		{
			name:   "missing name",
			req:    httptest.NewRequest(http.MethodPost, "/files", bytes.NewBufferString("data")),
			status: http.StatusBadRequest,
			code:   string(ErrUploadNameMissing.Code),
		},
		{
			name:   "empty body",
			req:    httptest.NewRequest(http.MethodPost, "/files?name=a.txt", nil),
			status: http.StatusBadRequest,
			code:   string(ErrUploadEmpty.Code),
		},
		{
			name:   "malformed file id",
			req:    httptest.NewRequest(http.MethodGet, "/files/not-a-uuid", nil),
			status: http.StatusBadRequest,
			code:   string(domain.ErrInvalidID.Code),
		},
		{
			name:   "unknown file",
			req:    httptest.NewRequest(http.MethodGet, "/files/"+domain.NewFileID().String(), nil),
			status: http.StatusNotFound,
			code:   string(ErrUploadNotFound.Code),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.DoRequest(router, tt.req)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, []string{tt.code}, testutil.ErrorCodes(t, w))
		})
	}
}

func TestFileUploadKeepsDeclaredType(t *testing.T) {
	store := filestore.NewInMemoryStore()
	req := httptest.NewRequest(http.MethodPost, "/files?name=notes.txt", bytes.NewBufferString("plain notes"))
	req.Header.Set("Content-Type", "text/markdown; charset=utf-8")
	req = req.WithContext(requestcontext.WithLanguage(req.Context(), "en"))

	router := fileRouter(store)
	w := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var uploaded uploadBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&uploaded))

	id, err := store.ConfirmUpload(req.Context(), uploaded.Token, "00000001")
	require.NoError(t, err)
	token, err := store.ReadToken(req.Context(), id)
	require.NoError(t, err)
	meta, err := store.Metadata(req.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, "text/markdown", meta.MimeType)
}
