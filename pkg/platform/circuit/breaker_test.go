package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBreakerIsClosed(t *testing.T) {
	b := New("person-cache")
	assert.Equal(t, "person-cache", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.False(t, b.IsOpen())
}

func TestBreakerOpensOnConsecutiveFailures(t *testing.T) {
	b := New("person-cache", WithFailureThreshold(2))

	fallback, change := b.RecordFailure()
	assert.False(t, fallback)
	assert.False(t, change.Opened)

	fallback, change = b.RecordFailure()
	assert.True(t, fallback)
	assert.True(t, change.Opened)
	require.True(t, b.IsOpen())

	t.Run("further failures keep it open without a new transition", func(t *testing.T) {
		fallback, change := b.RecordFailure()
		assert.True(t, fallback)
		assert.Equal(t, StateChange{}, change)
	})
}

func TestBreakerSuccessClearsFailures(t *testing.T) {
	b := New("person-cache", WithFailureThreshold(2))
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	assert.False(t, b.IsOpen())
}

func TestBreakerRecovery(t *testing.T) {
	tests := []struct {
		name      string
		outcomes  []bool
		wantOpen  bool
		wantClose bool
	}{
		{name: "one success is not enough", outcomes: []bool{true}, wantOpen: true},
		{name: "consecutive successes close", outcomes: []bool{true, true}, wantClose: true},
		{name: "a failure restarts the count", outcomes: []bool{true, false, true}, wantOpen: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("person-cache", WithFailureThreshold(1), WithSuccessThreshold(2))
			b.RecordFailure()
			require.True(t, b.IsOpen())

			var last StateChange
			for _, ok := range tt.outcomes {
				if ok {
					_, last = b.RecordSuccess()
				} else {
					_, last = b.RecordFailure()
				}
			}
			assert.Equal(t, tt.wantOpen, b.IsOpen())
			assert.Equal(t, tt.wantClose, last.Closed)
		})
	}
}

func TestBreakerReset(t *testing.T) {
	b := New("person-cache", WithFailureThreshold(1))
	b.RecordFailure()
	b.Reset()
	assert.Equal(t, StateClosed, b.State())
}
