package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, Actor(ctx))
	assert.Empty(t, RequestID(ctx))
	assert.Equal(t, "fr-be", Language(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Minute)
}

func TestInjectedValues(t *testing.T) {
	fixed := time.Date(2023, 7, 14, 10, 0, 0, 0, time.UTC)
	ctx := WithActor(context.Background(), "00000001")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithLanguage(ctx, "en")
	ctx = WithTime(ctx, fixed)

	assert.Equal(t, "00000001", Actor(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "en", Language(ctx))
	assert.Equal(t, fixed, Now(ctx))
}

func TestEmptyLanguageFallsBack(t *testing.T) {
	assert.Equal(t, "fr-be", Language(WithLanguage(context.Background(), "")))
}
