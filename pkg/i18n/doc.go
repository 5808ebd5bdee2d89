// Package i18n resolves localized display copy from YAML or JSON translation files.
//
// Translation files are keyed by language at the top level and may nest keys, which are
// addressed with dot notation. Placeholders use the %{name} form:
//
//	vi:
//	  toast:
//	    form_success: "Đã %{action} thành công"
//
// A Translator loads every file through a TranslationAdapter once at construction time
// and is then safe for concurrent use:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"),
//		i18n.WithDefaultLanguage("vi"),
//	)
//	msg := tr.T("vi", "toast.form_success", "action", "lưu")
//
// Requests for a language without translations fall back to the default language; missing
// keys fall back to the key itself unless WithFallbackToKey(false) is set.
package i18n
