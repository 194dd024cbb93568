package service

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/require"
)

func TestToValidationError(t *testing.T) {
	t.Parallel()

	t.Run("nil gives empty", func(t *testing.T) {
		verr, err := toValidationError(nil)
		require.NoError(t, err)
		require.True(t, verr.Empty())
	})

	t.Run("fields are sorted", func(t *testing.T) {
		verr, err := toValidationError(validation.Errors{
			"zeta":  errors.New("z"),
			"alpha": errors.New("a"),
			"mid":   nil,
		})
		require.NoError(t, err)
		require.Equal(t, []FieldError{{Field: "alpha", Message: "a"}, {Field: "zeta", Message: "z"}}, verr.Fields)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := toValidationError(boom)
		require.ErrorIs(t, err, boom)
	})
}

func TestValidationErrorAddKeepsOrder(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: []FieldError{{Field: "firstName", Message: "x"}}}
	verr.Add("email", "Email already exists")
	require.Equal(t, "email", verr.Fields[0].Field)
	require.True(t, verr.Has("firstName"))
	require.False(t, verr.Has("password"))
	require.Contains(t, verr.Error(), "email: Email already exists")
}
