package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parcours/internal/adapters/filestore"
	jwttoken "parcours/internal/jwt_token"
	"parcours/internal/lifecycle/bus"
	"parcours/internal/lifecycle/commands"
	"parcours/internal/platform/metrics"
	"parcours/internal/transport/http/mocks"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/platform/httputil"
	"parcours/pkg/requestcontext"
	"parcours/pkg/testutil"
)

var errTestStatus = dErrors.Define(dErrors.KindPrecondition, "HTTP-TEST-1",
	"Le statut ne permet pas cette action.", "The status does not allow this action.")

type seen struct {
	actor string
	now   time.Time
}

type RouterSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	commands *mocks.MockDispatcher
	queries  *bus.Bus
	tokens   *jwttoken.JWTService
	router   http.Handler
	fixed    time.Time
	last     seen
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.commands = mocks.NewMockDispatcher(s.ctrl)
	s.fixed = time.Date(2023, 3, 14, 10, 0, 0, 0, time.UTC)
	s.tokens = jwttoken.NewJWTService("router-test-signing-key", "parcours", "parcours-api")

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.queries = bus.New(bus.WithMetrics(m), bus.WithLogger(logger))
	bus.Register(s.queries, func(ctx context.Context, q commands.GetDoctorate) (map[string]string, error) {
		s.last = seen{actor: requestcontext.Actor(ctx), now: requestcontext.Now(ctx)}
		if q.DoctorateID.IsNil() {
			return nil, errTestStatus
		}
		return map[string]string{"id": q.DoctorateID.String()}, nil
	})

	s.router = NewRouter(RouterConfig{
		Commands:       s.commands,
		Queries:        s.queries,
		Validator:      jwttoken.NewJWTServiceAdapter(s.tokens),
		Logger:         logger,
		Metrics:        m,
		Gatherer:       reg,
		Files:          filestore.NewInMemoryStore(),
		RequestTimeout: 5 * time.Second,
		Clock:          func() time.Time { return s.fixed },
		HealthChecks: map[string]HealthCheck{
			"store": func(context.Context) error { return nil },
		},
	})
}

func (s *RouterSuite) token(matricule, lang string) string {
	tok, err := s.tokens.GenerateAccessToken(matricule, lang, time.Hour)
	s.Require().NoError(err)
	return tok
}

func (s *RouterSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, path, reader)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		testutil.WithBearer(r, token)
	}
	return testutil.DoRequest(s.router, r)
}

func (s *RouterSuite) errorBody(w *httptest.ResponseRecorder) httputil.ErrorResponse {
	return testutil.DecodeErrors(s.T(), w)
}

func (s *RouterSuite) TestCommandIsDispatchedByName() {
	payload := `{"proposition_id":"0b6d3c3e-7d1b-4f55-9d5e-2f7f3c1a1b11"}`
	s.commands.EXPECT().
		Dispatch(gomock.Any(), "InitializeDoctorate", []byte(payload)).
		DoAndReturn(func(ctx context.Context, _ string, _ []byte) (any, error) {
			s.Equal("00000001", requestcontext.Actor(ctx))
			s.NotEmpty(requestcontext.RequestID(ctx))
			return "3f0e8a4c-7bd0-4c2a-9a55-0c1e9b2f0d42", nil
		})

	w := s.do(http.MethodPost, "/api/v1/commands/InitializeDoctorate", payload, s.token("00000001", "fr-be"))

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"result":"3f0e8a4c-7bd0-4c2a-9a55-0c1e9b2f0d42"}`, w.Body.String())
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestCommandErrorsAreListedInTheCallerLanguage() {
	s.commands.EXPECT().
		Dispatch(gomock.Any(), "SubmitPublicDefense", gomock.Any()).
		Return(nil, dErrors.AsMultiple(errTestStatus.With("ADMIS")))

	w := s.do(http.MethodPost, "/api/v1/commands/SubmitPublicDefense", `{}`, s.token("00000001", "en"))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(httputil.ErrorResponse{Errors: []httputil.ErrorBody{
		{StatusCode: "HTTP-TEST-1", Message: "The status does not allow this action."},
	}}, s.errorBody(w))
}

func (s *RouterSuite) TestCommandInfrastructureFailureIsInternal() {
	s.commands.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("kafka down"))

	w := s.do(http.MethodPost, "/api/v1/commands/SubmitPublicDefense", `{}`, s.token("00000001", "en"))

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "kafka")
}

func (s *RouterSuite) TestQueryThroughTheBus() {
	id := domain.NewFileID().String()
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/v1/queries/GetDoctorate", map[string]string{"doctorate_id": id})
	w := testutil.DoRequest(s.router, testutil.WithBearer(req, s.token("P1", "fr-be")))

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var result map[string]string
	testutil.DecodeResult(s.T(), w, &result)
	s.Equal(map[string]string{"id": id}, result)
	s.Equal(seen{actor: "P1", now: s.fixed}, s.last)
}

func (s *RouterSuite) TestQueryBusinessError() {
	w := s.do(http.MethodPost, "/api/v1/queries/GetDoctorate", `{}`, s.token("P1", "fr-be"))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Le statut ne permet pas cette action.", s.errorBody(w).Errors[0].Message)
}

func (s *RouterSuite) TestUnknownQueryIsNotFound() {
	w := s.do(http.MethodPost, "/api/v1/queries/GetNothing", `{}`, s.token("P1", "en"))

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal([]string{string(bus.ErrUnknownMessage.Code)}, testutil.ErrorCodes(s.T(), w))
}

func (s *RouterSuite) TestMalformedPayload() {
	w := s.do(http.MethodPost, "/api/v1/queries/GetDoctorate", `{"doctorate_id":`, s.token("P1", "en"))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(string(bus.ErrMalformedMessage.Code), s.errorBody(w).Errors[0].StatusCode)
}

func (s *RouterSuite) TestOversizedPayload() {
	big := `{"doctorate_id":"` + strings.Repeat("x", maxPayloadBytes) + `"}`
	w := s.do(http.MethodPost, "/api/v1/queries/GetDoctorate", big, s.token("P1", "en"))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(string(bus.ErrMalformedMessage.Code), s.errorBody(w).Errors[0].StatusCode)
}

func (s *RouterSuite) TestListMessages() {
	s.commands.EXPECT().Names().Return([]string{"InitializeDoctorate", "SubmitConfirmationPaper"})

	w := s.do(http.MethodGet, "/api/v1/commands", "", s.token("P1", "en"))
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"messages":["InitializeDoctorate","SubmitConfirmationPaper"]}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/queries", "", s.token("P1", "en"))
	s.JSONEq(`{"messages":["GetDoctorate"]}`, w.Body.String())
}

func (s *RouterSuite) TestAPIRequiresAToken() {
	w := s.do(http.MethodPost, "/api/v1/commands/InitializeDoctorate", `{}`, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/commands/InitializeDoctorate", `{}`, "forged")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestWrongContentType() {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/commands/InitializeDoctorate", bytes.NewBufferString("x=1"))
	r.Header.Set("Content-Type", "text/plain")
	r.Header.Set("Authorization", "Bearer "+s.token("P1", "en"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)

	s.Equal(http.StatusUnsupportedMediaType, w.Code)
}

func (s *RouterSuite) TestMetricsAndHealth() {
	s.do(http.MethodPost, "/api/v1/queries/GetDoctorate", `{}`, s.token("P1", "en"))

	w := s.do(http.MethodGet, "/metrics", "", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "parcours_http_request_duration_seconds")
	s.Contains(w.Body.String(), `parcours_messages_total{message="GetDoctorate",outcome="precondition_violation"} 1`)

	w = s.do(http.MethodGet, "/healthz", "", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok","checks":{"store":"ok"}}`, w.Body.String())
}

func TestHealthDegraded(t *testing.T) {
	h := healthHandler(map[string]HealthCheck{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body healthBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "connection refused", body.Checks["redis"])
}

func (s *RouterSuite) TestFilesAreMountedBehindAuth() {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/files?name=cv.pdf", bytes.NewBufferString("%PDF-1.4"))
	r.Header.Set("Content-Type", "application/pdf")
	s.Equal(http.StatusUnauthorized, testutil.DoRequest(s.router, r).Code)

	r = httptest.NewRequest(http.MethodPost, "/api/v1/files?name=cv.pdf", bytes.NewBufferString("%PDF-1.4"))
	r.Header.Set("Content-Type", "application/pdf")
	s.Equal(http.StatusCreated, testutil.DoRequest(s.router, testutil.WithBearer(r, s.token("00000001", "fr-be"))).Code)
}
