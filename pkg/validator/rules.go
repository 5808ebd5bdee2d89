package validator

// Required fails when value is absent per IsRequired.
func Required(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsRequired(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail fails when value is not shaped like an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidQuantity fails unless value is a positive whole number.
func ValidQuantity[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return IsValidQuantity(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a positive whole number",
			TranslationKey: "validation.quantity",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
