package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcours/internal/lifecycle/bus"
	"parcours/pkg/platform/httputil"
	"parcours/pkg/requestcontext"
)

//go:generate mockgen -source=handlers.go -destination=mocks/dispatcher_mocks.go -package=mocks Dispatcher

// Dispatcher routes a named message with a JSON payload to its handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, payload []byte) (any, error)
	Names() []string
}

const maxPayloadBytes = 1 << 20

type resultBody struct {
	Result any `json:"result"`
}

type namesBody struct {
	Messages []string `json:"messages"`
}

// MessageHandler exposes one Dispatcher over HTTP.
type MessageHandler struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewMessageHandler(dispatcher Dispatcher, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{dispatcher: dispatcher, logger: logger}
}

func (h *MessageHandler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WarnContext(ctx, "payload too large",
				"message", name,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		httputil.WriteError(w, bus.ErrMalformedMessage.Wrap(err), requestcontext.Language(ctx))
		return
	}

	result, err := h.dispatcher.Dispatch(ctx, name, payload)
	if err != nil {
		httputil.WriteError(w, err, requestcontext.Language(ctx))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resultBody{Result: result})
}

func (h *MessageHandler) handleList(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, namesBody{Messages: h.dispatcher.Names()})
}
