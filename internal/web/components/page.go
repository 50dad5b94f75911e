package components

import (
	g "maragu.dev/gomponents"

	"quwastudio/internal/web/content"
	"quwastudio/internal/web/ui"
)

type PageData struct {
	CSRFToken string
	Navbar    NavbarState
	Particles []ui.Particle
	Modal     ui.ModalView
	Toasts    []ui.Toast
}

// LandingPage composes the sections in display order.
func LandingPage(data PageData) g.Node {
	return Layout(
		PageConfig{OGImage: "/static/images/og-image.svg"},
		Navbar(data.Navbar),
		Hero(data.Particles),
		About(),
		Works(content.Projects),
		CTA(data.Modal, data.CSRFToken),
		PageFooter(),
		Toasts(data.Toasts),
	)
}
