package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/ui"
)

// Toasts renders the queued notifications. site.js appends to the same
// region for JSON submissions.
func Toasts(toasts []ui.Toast) g.Node {
	return Div(
		ID("toasts"),
		Class("toasts"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Map(toasts, func(t ui.Toast) g.Node {
			return Div(Class("toast toast-"+string(t.Kind)), g.Text(t.Message))
		}),
	)
}
