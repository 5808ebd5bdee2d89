// Package ui holds the presentation enums shared by storefront components
// and the loading state carried by async views.
package ui

// ComponentSize is the size scale accepted by buttons, badges and inputs.
type ComponentSize string

const (
	SizeSmall  ComponentSize = "small"
	SizeMedium ComponentSize = "medium"
	SizeLarge  ComponentSize = "large"
)

func (s ComponentSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ComponentVariant is the color scheme of a component.
type ComponentVariant string

const (
	VariantPrimary   ComponentVariant = "primary"
	VariantSecondary ComponentVariant = "secondary"
	VariantSuccess   ComponentVariant = "success"
	VariantWarning   ComponentVariant = "warning"
	VariantError     ComponentVariant = "error"
	VariantDark      ComponentVariant = "dark"
)

func (v ComponentVariant) Valid() bool {
	switch v {
	case VariantPrimary, VariantSecondary, VariantSuccess, VariantWarning, VariantError, VariantDark:
		return true
	}
	return false
}

// VariantForKind maps a notification kind name to its component variant.
// Info and unknown kinds use the primary scheme.
func VariantForKind(kind string) ComponentVariant {
	switch kind {
	case "success":
		return VariantSuccess
	case "warning":
		return VariantWarning
	case "error":
		return VariantError
	}
	return VariantPrimary
}
