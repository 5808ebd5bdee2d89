package toast

import (
	"context"
	"log/slog"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/storekit/pkg/i18n"
	"github.com/dmitrymomot/storekit/pkg/logger"
)

const (
	keyTitlePrefix       = "toast.title."
	keyTitleFormError    = "toast.title.form_error"
	keyMessageAPISuccess = "toast.message.api_success"
	keyMessageAPIError   = "toast.message.api_error"
	keyMessageFormOK     = "toast.message.form_success"
	keyMessageFormError  = "toast.message.form_error"
	keyDefaultAction     = "toast.action.default"
	keyCloseLabel        = "toast.action.close"
)

// Notifier is the convenience layer over a Store: kind shortcuts with
// localized titles and adapters for API and form outcomes.
type Notifier struct {
	store  *Store
	tr     *i18n.Translator
	lang   string
	logger *slog.Logger
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithTranslator replaces the built-in copy. The translator must provide the
// toast.title.*, toast.message.* and toast.action.default keys.
func WithTranslator(tr *i18n.Translator) NotifierOption {
	return func(n *Notifier) {
		if tr != nil {
			n.tr = tr
		}
	}
}

// WithLanguage selects the display language. Defaults to DefaultLanguage.
func WithLanguage(lang string) NotifierOption {
	return func(n *Notifier) {
		if lang != "" {
			n.lang = lang
		}
	}
}

// WithNotifierLogger sets the logger. Defaults to a discarding logger.
func WithNotifierLogger(l *slog.Logger) NotifierOption {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

func NewNotifier(store *Store, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		store:  store,
		lang:   DefaultLanguage,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.tr == nil {
		n.tr = builtinTranslator()
	}
	n.logger = n.logger.With(logger.Component("toast.notifier"))
	return n
}

// Success adds a success toast with the store's default duration unless d is given.
func (n *Notifier) Success(title, message string, d ...time.Duration) string {
	return n.add(KindSuccess, title, message, optionalDuration(d))
}

// Warning adds a warning toast with the store's default duration unless d is given.
func (n *Notifier) Warning(title, message string, d ...time.Duration) string {
	return n.add(KindWarning, title, message, optionalDuration(d))
}

// Info adds an info toast with the store's default duration unless d is given.
func (n *Notifier) Info(title, message string, d ...time.Duration) string {
	return n.add(KindInfo, title, message, optionalDuration(d))
}

// Error adds an error toast that stays until dismissed unless d is given.
func (n *Notifier) Error(title, message string, d ...time.Duration) string {
	dur := Duration(0)
	if len(d) > 0 {
		dur = Duration(d[0])
	}
	return n.add(KindError, title, message, dur)
}

func (n *Notifier) ShowSuccess(message string) string {
	return n.Success(n.title(KindSuccess), message)
}

// ShowError shows a persistent error toast.
func (n *Notifier) ShowError(message string) string {
	return n.Error(n.title(KindError), message, 0)
}

func (n *Notifier) ShowWarning(message string) string {
	return n.Warning(n.title(KindWarning), message)
}

func (n *Notifier) ShowInfo(message string) string {
	return n.Info(n.title(KindInfo), message)
}

// HandleAPISuccess shows a success toast with message, or the default
// "operation succeeded" copy.
func (n *Notifier) HandleAPISuccess(message ...string) string {
	msg := n.tr.T(n.lang, keyMessageAPISuccess)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return n.Success(n.title(KindSuccess), msg)
}

// HandleAPIError shows a persistent error toast for err. See ExtractMessage.
func (n *Notifier) HandleAPIError(err any) string {
	msg := n.messageFor(err, keyMessageAPIError)
	return n.Error(n.title(KindError), msg, 0)
}

// HandleFormSuccess shows "<action> succeeded" copy. The action defaults to
// the localized "save" verb.
func (n *Notifier) HandleFormSuccess(action ...string) string {
	verb := n.tr.T(n.lang, keyDefaultAction)
	if len(action) > 0 && action[0] != "" {
		verb = action[0]
	}
	return n.Success(n.title(KindSuccess), upperFirst(n.tr.T(n.lang, keyMessageFormOK, "action", verb)))
}

// HandleFormError shows a persistent form error toast for err. See ExtractMessage.
func (n *Notifier) HandleFormError(err any) string {
	msg := n.messageFor(err, keyMessageFormError)
	return n.Error(n.tr.T(n.lang, keyTitleFormError), msg, 0)
}

// CloseLabel is the accessible name of the dismiss button in the
// notifier's language.
func (n *Notifier) CloseLabel() string {
	return n.tr.Td(n.lang, keyCloseLabel, CloseLabel(n.lang))
}

func (n *Notifier) Remove(id string) {
	n.store.Remove(id)
}

func (n *Notifier) Clear() {
	n.store.Clear()
}

func (n *Notifier) add(kind Kind, title, message string, d *time.Duration) string {
	id, err := n.store.Add(Payload{Kind: kind, Title: title, Message: message, Duration: d})
	if err != nil {
		n.logger.LogAttrs(context.Background(), slog.LevelWarn, "toast not shown",
			logger.Kind(kind.String()),
			logger.Error(err),
		)
		return ""
	}
	return id
}

func (n *Notifier) title(k Kind) string {
	return n.tr.T(n.lang, keyTitlePrefix+k.String())
}

func (n *Notifier) messageFor(v any, fallbackKey string) string {
	if err, ok := v.(error); ok && err != nil {
		n.logger.LogAttrs(context.Background(), slog.LevelDebug, "reporting error to shopper", logger.Error(err))
	}
	if msg, ok := ExtractMessage(v); ok {
		return msg
	}
	return n.tr.T(n.lang, fallbackKey)
}

// upperFirst capitalizes copy that starts with the caller's verb.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func optionalDuration(d []time.Duration) *time.Duration {
	if len(d) == 0 {
		return nil
	}
	return Duration(d[0])
}
