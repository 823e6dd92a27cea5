package guard_test

import (
	"errors"
	"testing"

	"lockerroom/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("locker not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a small value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type ticketStub struct {
		code  string
		guard guard.ConstructorGuard
	}

	errTicketNotConstructed := errors.New("ticketStub must be created via newTicketStub")

	newTicketStub := func(code string) (ticketStub, error) {
		if code == "" {
			return ticketStub{}, errors.New("code is required")
		}
		return ticketStub{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(ts ticketStub) error {
		return ts.guard.Validate(errTicketNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		ts, err := newTicketStub("A-7")

		require.NoError(t, err)
		require.NoError(t, validate(ts))
		assert.Equal(t, "A-7", ts.code)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var ts ticketStub

		assert.Equal(t, errTicketNotConstructed, validate(ts))
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		ts, err := newTicketStub("B-2")
		require.NoError(t, err)

		cp := ts

		require.NoError(t, validate(cp))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
