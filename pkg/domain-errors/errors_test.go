package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTestMissing = Define(KindIncompleteData, "TEST-1", "Champ manquant.", "Missing field.")
	errTestDate    = Define(KindInvalidValue, "TEST-2", "Date invalide.", "Invalid date.")
)

func TestDefine_RejectsDuplicateCode(t *testing.T) {
	assert.Panics(t, func() {
		Define(KindConflict, "TEST-1", "x", "x")
	})
}

func TestError_IsMatchesCopies(t *testing.T) {
	withDetail := errTestMissing.With("titre")
	wrapped := fmt.Errorf("handler: %w", withDetail)

	assert.ErrorIs(t, wrapped, errTestMissing)
	assert.True(t, HasCode(wrapped, "TEST-1"))
	assert.False(t, HasCode(wrapped, "TEST-2"))
	assert.Equal(t, KindIncompleteData, KindOf(wrapped))
}

func TestError_Localized(t *testing.T) {
	assert.Equal(t, "Champ manquant.", errTestMissing.Localized("fr-be"))
	assert.Equal(t, "Missing field.", errTestMissing.Localized("en"))
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "save doctorate")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, err.Kind)
	assert.Contains(t, err.Detail, "save doctorate")
}

func TestJoin(t *testing.T) {
	t.Run("nil when nothing failed", func(t *testing.T) {
		assert.NoError(t, Join(nil, nil))
	})

	t.Run("flattens nested aggregates in order", func(t *testing.T) {
		inner := Join(errTestMissing, errTestDate)
		err := Join(inner, errTestMissing.With("again"))

		m := AsMultiple(err)
		require.NotNil(t, m)
		assert.Equal(t, []Code{"TEST-1", "TEST-2", "TEST-1"}, m.Codes())
		assert.ErrorIs(t, err, errTestDate)
	})

	t.Run("wraps infrastructure errors as internal", func(t *testing.T) {
		err := Join(errors.New("boom"))
		assert.Equal(t, []Code{ErrInternal.Code}, Codes(err))
	})
}

func TestRegistered_ListsCodesSorted(t *testing.T) {
	codes := map[Code]bool{}
	var prev Code
	for _, e := range Registered() {
		codes[e.Code] = true
		assert.LessOrEqual(t, string(prev), string(e.Code))
		prev = e.Code
	}
	assert.True(t, codes["TEST-1"])
	assert.True(t, codes[ErrInternal.Code])
}
