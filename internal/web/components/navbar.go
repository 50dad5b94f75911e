package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/content"
)

type NavbarState struct {
	Scrolled bool
	MenuOpen bool
}

func Navbar(state NavbarState) g.Node {
	return Header(
		ID("navbar"),
		sectionTag("navbar"),
		Class("navbar"),
		g.If(state.Scrolled, g.Attr("data-scrolled", "true")),

		Div(
			Class("container navbar-inner"),

			A(Href("#"), Class("navbar-logo"), Logo("h-12 md:h-16")),

			Nav(
				Class("navbar-links"),
				g.Map(content.NavItems, func(item content.NavItem) g.Node {
					return A(Href(item.Href), Class("link-hover"), g.Text(item.Label))
				}),
				A(Href("/?book=1#booking"), Class("glass-button btn-sm"), g.Attr("data-modal-open", ""), g.Text("Book a Call")),
			),

			// Without script the toggle is a plain link that flips ?menu.
			A(
				Href(menuToggleHref(state.MenuOpen)),
				Class("navbar-toggle"),
				g.Attr("data-menu-toggle", ""),
				g.Attr("aria-label", "Toggle menu"),
				g.Attr("aria-expanded", boolAttr(state.MenuOpen)),
				g.Attr("aria-controls", "mobile-menu"),
				g.If(state.MenuOpen, Icon("x", "", "size-6")),
				g.If(!state.MenuOpen, Icon("menu", "", "size-6")),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("mobile-menu glass-card"),
			g.If(!state.MenuOpen, g.Attr("hidden")),
			Nav(
				g.Map(content.NavItems, func(item content.NavItem) g.Node {
					return A(Href(item.Href), g.Attr("data-menu-close", ""), g.Text(item.Label))
				}),
				A(Href("/?book=1#booking"), Class("glass-button"), g.Attr("data-menu-close", ""), g.Attr("data-modal-open", ""), g.Text("Book a Call")),
			),
		),
	)
}

func menuToggleHref(open bool) string {
	if open {
		return "/"
	}
	return "/?menu=open"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
