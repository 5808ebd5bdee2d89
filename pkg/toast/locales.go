package toast

import (
	"context"
	"embed"
	"sync"

	"github.com/dmitrymomot/storekit/pkg/i18n"
)

// DefaultLanguage is the language of the built-in copy used when a Notifier
// is not told otherwise.
const DefaultLanguage = "vi"

//go:embed locales/*.yaml
var localeFiles embed.FS

// LoadTranslator builds a translator over the built-in toast copy
// (vi and en), defaulting to DefaultLanguage.
func LoadTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	opts = append([]i18n.Option{i18n.WithDefaultLanguage(DefaultLanguage)}, opts...)
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(localeFiles, "locales"), opts...)
}

var builtinTranslator = sync.OnceValue(func() *i18n.Translator {
	tr, err := LoadTranslator(context.Background())
	if err != nil {
		panic("toast: built-in locales: " + err.Error())
	}
	return tr
})

// CloseLabel returns the built-in dismiss button label for lang, falling
// back to DefaultLanguage.
func CloseLabel(lang string) string {
	return builtinTranslator().T(lang, keyCloseLabel)
}
