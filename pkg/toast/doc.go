// Package toast manages transient storefront notifications ("toasts").
//
// A Store owns the ordered collection of visible notifications and the
// timers that expire them. A Notifier sits on top of a Store and turns
// caller intent ("report this API error", "the form was saved") into
// notifications with localized default copy.
//
// # Store
//
// Store.Add assigns an id, resolves the duration (DefaultDuration when the
// payload leaves it unset) and appends the entry. A positive duration
// schedules Store.Remove after that delay; zero or negative means the entry
// stays until removed. Remove is idempotent: removing an unknown id is a
// no-op, so a timer firing after a manual dismissal or Clear is harmless.
// Remove and Clear also cancel the pending timers of the entries they drop.
//
// Every mutation publishes a full snapshot of the collection. Subscribers
// receive the current snapshot first, then one snapshot per change:
//
//	sub := store.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//	    render(msg.Data)
//	}
//
// Timers go through a clock.Scheduler; tests use clock.Manual to advance
// time deterministically.
//
// # Notifier
//
//	n := toast.NewNotifier(store, toast.WithLanguage("vi"))
//	n.ShowSuccess("Đã thêm vào giỏ hàng")
//	n.HandleAPIError(err)     // persistent error toast, message from err
//	n.HandleFormSuccess()     // "Đã lưu thành công"
//
// Error toasts never auto-dismiss unless a duration is passed explicitly.
// HandleAPIError and HandleFormError accept any value and never panic; the
// message is taken from a nested response.data.message, then from the
// value's own message, then from a fixed fallback. See ExtractMessage.
package toast
