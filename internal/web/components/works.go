package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/web/content"
	"quwastudio/internal/web/ui"
)

func Works(projects []content.Project) g.Node {
	track := ui.MarqueeTrack(projects)

	return Section(
		ID("works"),
		sectionTag("works"),
		Class("section works"),

		Div(
			Class("container"),
			pill("Our Work"),
			H2(Class("section-title"), gradientHeading("Transformations", "We've Created")),
		),

		Div(
			Class("marquee"),
			g.Attr("data-marquee", ""),
			Div(Class("fade fade-left")),
			Div(Class("fade fade-right")),
			Div(
				Class("marquee-track"),
				Style(fmt.Sprintf("--marquee-distance:%dpx;--marquee-duration:%.0fs", ui.MarqueeDistance, ui.MarqueeDuration.Seconds())),
				g.Map(track, func(ti ui.TrackItem[content.Project]) g.Node {
					return projectCard(ti.Key, ti.Item)
				}),
			),
		),
	)
}

func projectCard(key string, p content.Project) g.Node {
	return Div(
		Class("project-card glass-card"),
		g.Attr("data-key", key),
		g.Attr("tabindex", "0"),
		Img(Class("before"), Src(p.BeforeImage), Alt(p.Name+" before"), g.Attr("loading", "lazy")),
		Img(Class("after"), Src(p.AfterImage), Alt(p.Name+" after"), g.Attr("loading", "lazy")),
		Div(Class("overlay")),
		Div(
			Class("project-meta"),
			Div(
				H3(g.Text(p.Name)),
				P(g.Text(p.Category)),
			),
			Span(Class("badge"), Span(Class("label-before"), g.Text("Before →")), Span(Class("label-after"), g.Text("After →"))),
		),
	)
}
