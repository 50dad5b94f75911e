package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"quwastudio/internal/domain"
	"quwastudio/internal/modules/booking"
	"quwastudio/internal/web/ui"
)

// CSRFFieldName is the form field gorilla/csrf reads by default.
const CSRFFieldName = "gorilla.csrf.Token"

func CTA(modal ui.ModalView, csrfToken string) g.Node {
	return g.Group([]g.Node{
		Section(
			ID("booking"),
			sectionTag("cta"),
			Class("section cta"),
			Div(Class("cta-glow"), g.Attr("aria-hidden", "true")),
			Div(
				Class("container"),
				Div(
					Class("glass-card cta-card text-center"),
					Span(Class("pill pill-primary"), g.Text("Let's Work Together")),
					H2(
						Class("section-title"),
						Span(Class("text-gradient"), g.Text("Ready to Upgrade")), Br(),
						Span(Class("text-gradient-orange"), g.Text("Your Online Presence?")),
					),
					P(Class("lead"), g.Text("Schedule a free strategy call and discover how we can transform your brand's digital experience.")),
					A(Href("/?book=1#booking"), Class("glass-button text-lg px-12"), g.Attr("data-modal-open", ""), g.Text("Book a Call")),
				),
			),
		),
		BookingModal(modal, csrfToken),
	})
}

func BookingModal(modal ui.ModalView, csrfToken string) g.Node {
	return Div(
		ID("booking-modal"),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "booking-modal-title"),
		g.Attr("data-state", modal.State.String()),
		g.If(!modal.Open(), g.Attr("hidden")),

		A(Href("/#booking"), Class("modal-backdrop"), g.Attr("data-modal-close", ""), g.Attr("aria-label", "Close")),
		Div(
			Class("modal-panel glass-card"),
			A(Href("/#booking"), Class("modal-close"), g.Attr("data-modal-close", ""), g.Attr("aria-label", "Close"), Icon("x", "", "size-5")),
			g.If(modal.State == ui.ModalSubmitted, bookingThanks()),
			g.If(modal.State != ui.ModalSubmitted, bookingForm(modal, csrfToken)),
		),
	)
}

func bookingThanks() g.Node {
	return Div(
		Class("modal-success text-center"),
		Div(Class("success-icon"), Icon("check", "", "size-10")),
		H3(ID("booking-modal-title"), Class("text-gradient"), g.Text("Thank You!")),
		P(g.Text("Thanks for reaching out! Our team will contact you shortly.")),
		A(Href("/#booking"), Class("glass-button"), g.Attr("data-modal-close", ""), g.Text("Close")),
	)
}

func bookingForm(modal ui.ModalView, csrfToken string) g.Node {
	f := modal.Fields
	busy := modal.State == ui.ModalSubmitting

	return Div(
		H3(ID("booking-modal-title"), Class("text-gradient"), g.Text("Book Your Strategy Call")),
		P(Class("muted"), g.Text("Let's discuss how we can transform your digital presence.")),

		Form(
			ID("booking-form"),
			Action("/booking"),
			Method("post"),
			g.Attr("data-api", "/api/v1/bookings"),
			g.Attr("novalidate"),

			Input(Type("hidden"), Name(CSRFFieldName), Value(csrfToken)),
			Input(Type("hidden"), Name("submission_key"), Value(f.SubmissionKey)),

			Div(
				Class("form-row"),
				textField("full_name", "Full Name *", "text", "John Doe", f.FullName, true, modal.Errors),
				textField("company_name", "Company Name", "text", "Your Company", f.CompanyName, false, modal.Errors),
			),
			Div(
				Class("form-row"),
				textField("email", "Email Address *", "email", "john@company.com", f.Email, true, modal.Errors),
				textField("whatsapp", "WhatsApp Number *", "tel", "+1 234 567 8900", f.WhatsApp, true, modal.Errors),
			),

			industryField(f, modal.Errors),

			Div(
				Class("field"),
				Label(For("message"), g.Text("Message")),
				Textarea(ID("message"), Name("message"), Rows("4"), Placeholder("Tell us about your project..."), g.Text(f.Message)),
				fieldError("message", modal.Errors),
			),

			Button(
				Type("submit"),
				Class("glass-button w-full text-lg"),
				g.If(busy, Disabled()),
				g.If(busy, g.Text("Submitting...")),
				g.If(!busy, g.Text("Submit Booking Request")),
			),
		),
	)
}

func textField(name, label, typ, placeholder, value string, required bool, errs map[string]string) g.Node {
	return Div(
		Class("field"),
		Label(For(name), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(typ),
			Value(value),
			Placeholder(placeholder),
			g.If(required, Required()),
			g.If(errs[name] != "", g.Attr("aria-invalid", "true")),
		),
		fieldError(name, errs),
	)
}

func industryField(f booking.SubmitBookingRequest, errs map[string]string) g.Node {
	selected, _ := domain.ParseIndustry(f.Industry)

	return Div(
		Class("field"),
		Label(For("industry"), g.Text("Industry *")),
		Select(
			ID("industry"),
			Name("industry"),
			Required(),
			g.Attr("data-industry-select", ""),
			Option(Value(""), g.If(selected == "", Selected()), g.Text("Select your industry")),
			g.Map(domain.Industries, func(opt domain.IndustryOption) g.Node {
				return Option(Value(string(opt.Value)), g.If(opt.Value == selected, Selected()), g.Text(opt.Label))
			}),
		),
		fieldError("industry", errs),
		Div(
			Class("field-other"),
			g.Attr("data-industry-other", ""),
			g.If(selected != domain.IndustryOther, g.Attr("hidden")),
			Input(
				ID("other_industry"),
				Name("other_industry"),
				Type("text"),
				Value(f.OtherIndustry),
				Placeholder("Please specify your industry"),
				g.Attr("aria-label", "Your industry"),
			),
			fieldError("other_industry", errs),
		),
	)
}

func fieldError(name string, errs map[string]string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(Class("field-error"), g.Attr("data-error-for", name), g.Text(msg))
}
