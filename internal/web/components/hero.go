package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/content"
	"quwastudio/internal/web/ui"
)

func Hero(particles []ui.Particle) g.Node {
	return Section(
		ID("home"),
		sectionTag("hero"),
		Class("hero"),

		ParticleBackground(particles),
		Div(Class("mouse-glow"), g.Attr("data-mouse-glow", ""), g.Attr("aria-hidden", "true")),

		Div(
			Class("container hero-grid"),
			Div(
				Class("hero-copy"),
				pill("Premium Web Design Agency"),
				H1(
					Class("hero-title"),
					Span(Class("text-gradient"), g.Text("We Build Websites")), Br(),
					Span(Class("text-gradient"), g.Text("That Convert")), Br(),
					Span(Class("text-gradient-orange"), g.Text("Visitors Into")), Br(),
					Span(Class("text-gradient-orange"), g.Text("Customers")),
				),
				P(Class("lead"), g.Text(content.Description)),
				Div(
					Class("hero-actions"),
					A(Href("/?book=1#booking"), Class("glass-button text-lg"), g.Attr("data-modal-open", ""), g.Text("Book a Free Strategy Call")),
					A(Href("#works"), Class("outline-button text-lg"), g.Text("View Our Work")),
				),
			),
			Div(
				Class("hero-visual"),
				g.Attr("aria-hidden", "true"),
				Div(
					Class("glass-card mockup"),
					Div(Class("mockup-dots"), Span(), Span(), Span()),
					Div(Class("mockup-line w-3/4")),
					Div(Class("mockup-line w-1/2")),
					Div(Class("mockup-block")),
				),
			),
		),
	)
}

// ParticleBackground renders the floating dots. Particle motion is CSS.
func ParticleBackground(particles []ui.Particle) g.Node {
	return Div(
		Class("particles"),
		g.Attr("aria-hidden", "true"),
		Div(Class("glow glow-left")),
		Div(Class("glow glow-right")),
		g.Map(particles, func(p ui.Particle) g.Node {
			return Div(
				Class("particle"),
				Style(fmt.Sprintf(
					"left:%.2f%%;width:%.2fpx;height:%.2fpx;animation-delay:%.2fs;animation-duration:%.2fs",
					p.X, p.Size, p.Size, p.Delay, p.Duration,
				)),
			)
		}),
		Div(Class("grid-overlay")),
	)
}
