package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/content"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, children ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = content.SiteName + " - Websites That Convert"
	}

	if config.Description == "" {
		config.Description = content.Description
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("dark"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-background text-foreground"),
				g.Group(children),

				Script(Src("/static/js/site.js"), g.Attr("defer")),
			),
		),
	})
}

// Icon renders a lucide icon through iconify.
func Icon(name, ariaLabel string, classes string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify inline-block "+classes),
			g.Attr("data-icon", "lucide:"+name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify inline-block "+classes),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

func Logo(classes string) g.Node {
	return Img(
		Src("/static/images/logo.svg"),
		Alt(content.SiteName),
		Class("w-auto object-contain "+classes),
	)
}

func sectionTag(name string) g.Node {
	return g.Attr("data-section", name)
}

func gradientHeading(plain, accent string) g.Node {
	return g.Group([]g.Node{
		Span(Class("text-gradient"), g.Text(plain)),
		g.Text(" "),
		Span(Class("text-gradient-orange"), g.Text(accent)),
	})
}

func pill(text string) g.Node {
	return Span(Class("pill glass-card"), g.Text(text))
}
