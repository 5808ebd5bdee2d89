package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "quantity", Message: "must be positive"})

		assert.Equal(t, "validation failed: email: is required; quantity: must be positive", errs.Error())
	})

	t.Run("matches sentinel", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "is required"}}
		wrapped := fmt.Errorf("checkout: %w", errs)

		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "invalid format"})
	errs.Add(validator.ValidationError{Field: "quantity", Message: "too small"})

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"is required", "invalid format"}, errs.Get("email"))
	assert.Empty(t, errs.Get("name"))
	assert.Equal(t, []string{"email", "quantity"}, errs.Fields())

	first, ok := errs.First()
	require.True(t, ok)
	assert.Equal(t, "is required", first.Message)

	_, ok = validator.ValidationErrors{}.First()
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Áo thun"),
			validator.ValidEmail("email", "khach@shop.vn"),
			validator.ValidQuantity("quantity", 2),
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidEmail("email", "khach@shop.vn"),
			validator.ValidQuantity("quantity", 0),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "name", verrs[0].Field)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "quantity", verrs[1].Field)
		assert.Equal(t, "validation.quantity", verrs[1].TranslationKey)
		assert.Equal(t, 0, verrs[1].TranslationValues["value"])
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("unwraps wrapped errors", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "is required"}}
		extracted := validator.ExtractValidationErrors(fmt.Errorf("form: %w", errs))

		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("email"))
		assert.True(t, validator.IsValidationError(errs))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("regular error")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
