package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcours/internal/lifecycle/commands"
	"parcours/internal/platform/metrics"
	"parcours/pkg/domain"
	dErrors "parcours/pkg/domain-errors"
)

var errTestPrecondition = dErrors.Define(dErrors.KindPrecondition, "BUS-TEST-1", "refusé", "refused")

func newTestBus(t *testing.T) (*Bus, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(WithMetrics(metrics.New(reg))), reg
}

func TestDispatch_DecodesAndRoutesByName(t *testing.T) {
	b, reg := newTestBus(t)
	var got commands.GetDoctorate
	Register(b, func(_ context.Context, q commands.GetDoctorate) (string, error) {
		got = q
		return "ok", nil
	})

	id := domain.NewFileID().String()
	result, err := b.Dispatch(context.Background(), "GetDoctorate", []byte(`{"doctorate_id":"`+id+`"}`))

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, id, got.DoctorateID.String())
	count, err := testutil.GatherAndCount(reg, "parcours_messages_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatch_UnknownMessage(t *testing.T) {
	b, _ := newTestBus(t)

	_, err := b.Dispatch(context.Background(), "Nope", nil)

	var m *dErrors.Multiple
	require.ErrorAs(t, err, &m)
	assert.Equal(t, []dErrors.Code{ErrUnknownMessage.Code}, m.Codes())
}

func TestDispatch_MalformedPayload(t *testing.T) {
	b, _ := newTestBus(t)
	Register(b, func(context.Context, commands.GetDoctorate) (string, error) { return "", nil })

	_, err := b.Dispatch(context.Background(), "GetDoctorate", []byte(`{"doctorate_id":"not-a-uuid"}`))

	assert.True(t, dErrors.HasCode(err, ErrMalformedMessage.Code))
}

func TestExecute_NormalizesErrors(t *testing.T) {
	b, _ := newTestBus(t)
	Register(b, func(context.Context, commands.GetDoctorate) (string, error) {
		return "", errTestPrecondition
	})
	Register(b, func(context.Context, commands.GetJury) (string, error) {
		return "", errors.New("connection reset")
	})

	_, err := b.Execute(context.Background(), commands.GetDoctorate{})
	var m *dErrors.Multiple
	require.ErrorAs(t, err, &m)
	assert.Equal(t, []dErrors.Code{errTestPrecondition.Code}, m.Codes())

	_, err = b.Execute(context.Background(), commands.GetJury{})
	assert.Equal(t, dErrors.KindInternal, dErrors.KindOf(err))
}

func TestRegister_TwicePanics(t *testing.T) {
	b, _ := newTestBus(t)
	h := func(context.Context, commands.GetJury) (string, error) { return "", nil }
	Register(b, h)

	assert.Panics(t, func() { Register(b, h) })
	assert.Equal(t, []string{"GetJury"}, b.Names())
}
