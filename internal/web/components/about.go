package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/content"
)

func About() g.Node {
	return Section(
		ID("about"),
		sectionTag("about"),
		Class("section"),
		Div(Class("section-glow"), g.Attr("aria-hidden", "true")),

		Div(
			Class("container"),
			Div(
				Class("section-intro text-center"),
				pill("About Us"),
				H2(Class("section-title"), gradientHeading("We Design With", "Purpose.")),
				P(Class("lead"), g.Text(content.AboutText)),
			),
			Div(
				Class("pillars"),
				g.Map(content.Pillars, func(p content.Pillar) g.Node {
					return Div(
						Class("glass-card pillar"),
						Div(Class("pillar-icon"), Icon(p.Icon, "", "size-7")),
						H3(g.Text(p.Title)),
						P(g.Text(p.Description)),
					)
				}),
			),
		),
	)
}
