package toastui

import (
	"context"

	"github.com/dmitrymomot/storekit/pkg/toast"
)

// DefaultBasePath is where the dismiss buttons send their requests unless
// WithBasePath says otherwise.
const DefaultBasePath = "/toasts"

type basePathKey struct{}

// WithBasePathContext stores the mount path used by rendered action URLs.
func WithBasePathContext(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, basePathKey{}, path)
}

func basePathFrom(ctx context.Context) string {
	if p, ok := ctx.Value(basePathKey{}).(string); ok && p != "" {
		return p
	}
	return DefaultBasePath
}

type closeLabelKey struct{}

// WithCloseLabelContext sets the accessible name of rendered dismiss buttons.
func WithCloseLabelContext(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, closeLabelKey{}, label)
}

func closeLabelFrom(ctx context.Context) string {
	if l, ok := ctx.Value(closeLabelKey{}).(string); ok && l != "" {
		return l
	}
	return toast.CloseLabel(toast.DefaultLanguage)
}
