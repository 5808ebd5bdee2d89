// Package validator provides the field checks used by storefront forms and
// the cart: email shape, required values and item quantities.
//
// Each check comes in two forms. The predicate (IsValidEmail, IsRequired,
// IsValidQuantity) returns a bool for ad hoc use in templates and handlers.
// The rule (ValidEmail, Required, ValidQuantity) wraps the same predicate in
// a Rule carrying a field name, an English message and a translation key, so
// several checks can be evaluated together with Apply:
//
//	err := validator.Apply(
//	    validator.Required("name", form.Name),
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidQuantity("quantity", form.Quantity),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	    // show first.Message or translate first.TranslationKey
//	}
//
// ValidationErrors implements error and matches ErrValidationFailed via
// errors.Is. The package holds no state and is safe for concurrent use.
package validator
