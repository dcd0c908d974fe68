package core

import (
	"errors"
	"net/http"

	"github.com/vivek888gaya/portfolio/internal/utils"
	"github.com/vivek888gaya/portfolio/pkg/content"
	"github.com/vivek888gaya/portfolio/pkg/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ContactSection(d pageData, owner content.Profile) g.Node {
	return Section(ID("contact"), Class("py-20 px-6 "+reveal(d.Visible, "contact")),
		Div(Class("max-w-4xl mx-auto"),
			sectionHeading(d, "Get In Touch"),
			Div(Class("grid md:grid-cols-2 gap-12"),
				Div(
					H3(Class("text-2xl font-semibold mb-6 "+d.Palette.TextPrimary), g.Text("Let's Connect")),
					P(Class("text-lg mb-8 leading-relaxed "+d.Palette.TextSecondary),
						g.Text("Open to Software Development Internships, AI/ML Research Opportunities, and Collaborations."),
					),
					Div(Class("space-y-4 "+d.Palette.TextSecondary),
						P(g.Text(owner.Email)),
						P(A(Href(owner.LinkedInURL), Target("_blank"), Rel("noopener noreferrer"),
							Class("hover:opacity-80 transition-colors underline"), g.Text("LinkedIn Profile"))),
						P(g.Text(owner.Location)),
					),
					A(Href("/resume"), g.Attr("download", ResumeFilename),
						Class("inline-block mt-8 px-6 py-3 rounded-md font-medium border "+d.Palette.Border+" "+d.Palette.TextPrimary+" hover:opacity-80 transition-colors"),
						g.Text("Download Resume"),
					),
				),
				ContactFormBox(d),
			),
		),
	)
}

// ContactFormBox renders the form card from the controller snapshot: field
// values survive failures, the submit control is disabled while a submission
// is pending, and the transient notice reflects the last outcome.
func ContactFormBox(d pageData) g.Node {
	form := d.Form
	submitting := form.Status == view.StatusSubmitting

	var notice g.Node
	if form.Notice != nil {
		classes := "mb-4 px-4 py-3 rounded-md border text-sm "
		if form.Notice.Kind == view.NoticeSuccess {
			classes += "border-emerald-700 text-emerald-400 bg-emerald-900/20"
		} else {
			classes += "border-red-700 text-red-400 bg-red-900/20"
		}
		notice = Div(Class(classes), g.Attr("data-notice", string(form.Notice.Kind)), g.Text(form.Notice.Message))
	}

	inputClasses := "w-full border rounded-md px-4 py-3 focus:outline-none transition-colors " + d.Palette.Input

	submitAttrs := []g.Node{
		Type("submit"),
		Class("w-full px-6 py-3 rounded-md font-medium border " + d.Palette.Border + " " + d.Palette.TextPrimary + " disabled:opacity-50 disabled:cursor-not-allowed hover:opacity-80 transition-colors"),
	}
	if submitting {
		submitAttrs = append(submitAttrs, Disabled())
	}

	return Div(ID("contact-form-box"), Class(d.Palette.Card+" border "+d.Palette.Border+" rounded-lg p-6"),
		notice,
		Form(
			g.Attr("hx-post", "/contact"),
			g.Attr("hx-target", "#contact-form-box"),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			Class("space-y-6"),
			Div(
				Label(Class("block mb-2 "+d.Palette.TextPrimary), g.Text("Name")),
				Input(Type("text"), Name("name"), Value(form.Name), Required(),
					Placeholder("Your name"), Class(inputClasses)),
			),
			Div(
				Label(Class("block mb-2 "+d.Palette.TextPrimary), g.Text("Email")),
				Input(Type("email"), Name("email"), Value(form.Email), Required(),
					Placeholder("your.email@example.com"), Class(inputClasses)),
			),
			Div(
				Label(Class("block mb-2 "+d.Palette.TextPrimary), g.Text("Message")),
				Textarea(Name("message"), Required(), g.Attr("rows", "4"),
					Placeholder("Your message..."), Class(inputClasses+" resize-none"), g.Text(form.Message)),
			),
			Button(append(submitAttrs,
				Span(Class("submit-label"), g.Text("Send Message")),
				Span(Class("submit-spinner items-center gap-2"), g.Text("Sending...")),
			)...),
		),
	)
}

// contactHandler applies the posted field values and runs one submission.
// Every failure path returns an editable form fragment; nothing propagates to
// the render layer.
func (s *Site) contactHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := s.stateFor(r)
	if !ok {
		expiredPageView(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	state.Form.SetName(r.PostFormValue("name"))
	state.Form.SetEmail(r.PostFormValue("email"))
	state.Form.SetMessage(r.PostFormValue("message"))

	err := state.Form.Submit(r.Context())

	d := snapshotPage(state)
	var validationErr *view.ValidationError
	switch {
	case err == nil:
		// Snapshot already carries the outcome notice.
	case errors.As(err, &validationErr):
		// Blocked before any network call; browser-side required checks
		// normally catch this first.
		d.Form.Notice = &view.Notice{Kind: view.NoticeError, Message: "Please fill in all required fields."}
	case errors.Is(err, view.ErrSubmissionInFlight):
		d.Form.Notice = &view.Notice{Kind: view.NoticeError, Message: "A submission is already in progress."}
	default:
		utils.Log.Warnf("Contact submission failed: %v", err)
	}

	ContactFormBox(d).Render(w)
}
