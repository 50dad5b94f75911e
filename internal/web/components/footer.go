package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/content"
)

func PageFooter() g.Node {
	return Footer(
		sectionTag("footer"),
		Class("footer"),
		Div(
			Class("container footer-grid"),

			Div(
				Class("footer-brand"),
				Logo("h-12 md:h-16"),
				P(g.Text(content.Tagline)),
				P(g.Text(content.Copyright)),
			),

			Nav(
				Class("footer-links"),
				g.Map(content.FooterLinks, func(l content.NavItem) g.Node {
					return A(Href(l.Href), Class("link-hover"), g.Text(l.Label))
				}),
			),

			Div(
				Class("footer-social"),
				g.Map(content.SocialLinks, func(s content.SocialLink) g.Node {
					return A(Href(s.Href), Class("social"), Icon(s.Icon, s.Label, "size-5"))
				}),
			),
		),
	)
}
