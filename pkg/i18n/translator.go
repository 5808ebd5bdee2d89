package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads all translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" {
			return nil, errors.New("empty language code found")
		}
		if m == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted list of loaded languages.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key resolves to a value for lang itself,
// without default-language fallback.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args given
// as key, value pairs.
//
//	// "toast.form_success": "Đã %{action} thành công"
//	tr.T("vi", "toast.form_success", "action", "cập nhật") // "Đã cập nhật thành công"
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return format(s, args)
	}
	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// Td is T with an explicit default used when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return format(s, args)
	}
	return format(defaultValue, args)
}

// N translates a pluralized key, trying key.zero (n == 0), key.one (n == 1)
// and key.other, then key itself. The count placeholder is filled with n
// unless args already set it.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	var candidates []string
	switch n {
	case 0:
		candidates = []string{key + ".zero", key + ".other"}
	case 1:
		candidates = []string{key + ".one"}
	default:
		candidates = []string{key + ".other"}
	}
	candidates = append(candidates, key)

	if !hasParam(args, "count") {
		args = append(args[:len(args):len(args)], "count", strconv.Itoa(n))
	}

	for _, c := range candidates {
		if s, ok := t.resolve(lang, c); ok {
			return format(s, args)
		}
	}
	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// ExportJSON returns every translation of lang as a JSON document.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	b, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(b), nil
}

// resolve finds a string for key, falling back from lang to the default language.
func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := []string{lang}
	if lang != t.defaultLang {
		langs = append(langs, t.defaultLang)
	}

	for _, l := range langs {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := lookup(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// lookup walks dot-separated keys through nested maps.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format replaces %{name} placeholders. Unknown placeholders are kept verbatim.
func format(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func hasParam(args []string, name string) bool {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}
