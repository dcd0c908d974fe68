package core

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/vivek888gaya/portfolio/pkg/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func sectionHeading(d pageData, label string) g.Node {
	return H2(Class("text-4xl font-bold mb-12 "+d.Palette.TextPrimary), g.Text(label))
}

func card(d pageData, extra string, children ...g.Node) g.Node {
	return Div(append([]g.Node{
		Class(d.Palette.Card + " border " + d.Palette.Border + " rounded-lg " + extra),
	}, children...)...)
}

func badge(d pageData, label string) g.Node {
	return Span(Class("inline-block rounded-md px-2.5 py-0.5 text-xs font-medium "+d.Palette.Card+" border "+d.Palette.Border+" "+d.Palette.TextSecondary), g.Text(label))
}

// HeroSection is always visible and not tracked for entrance animation.
func HeroSection(d pageData, owner content.Profile) g.Node {
	return Section(Class("pt-32 pb-20 px-6"),
		Div(Class("max-w-6xl mx-auto text-center"),
			H1(Class("text-6xl md:text-8xl font-bold mb-6 "+d.Palette.TextPrimary), g.Text(owner.Name)),
			H2(Class("text-2xl md:text-3xl mb-4 "+d.Palette.TextSecondary), g.Text(owner.Headline)),
			Div(Class("flex items-center justify-center gap-2 mb-6 "+d.Palette.TextSecondary),
				g.Text(owner.Location),
			),
			P(Class("text-xl mb-12 max-w-4xl mx-auto leading-relaxed "+d.Palette.TextSecondary), g.Text(owner.Tagline)),
			Div(Class("flex flex-col sm:flex-row gap-4 justify-center"),
				A(Href("#projects"),
					Class("px-8 py-3 text-lg font-medium rounded-md "+d.Palette.TextPrimary+" border "+d.Palette.Border+" hover:opacity-80 transition-colors"),
					g.Text("View My Work"),
				),
				A(Href("#contact"),
					Class("px-8 py-3 text-lg font-medium rounded-md "+d.Palette.TextSecondary+" border "+d.Palette.Border+" hover:opacity-80 transition-colors"),
					g.Text("Get In Touch"),
				),
			),
		),
	)
}

// AboutSection renders the markdown biography.
func AboutSection(d pageData, owner content.Profile) g.Node {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	htmlOutput := markdown.ToHTML([]byte(owner.AboutMD), p, nil)

	return Section(ID("about"), Class("py-20 px-6 "+reveal(d.Visible, "about")),
		Div(Class("max-w-4xl mx-auto"),
			sectionHeading(d, "About Me"),
			card(d, "p-8",
				Div(Class("prose max-w-none text-lg leading-relaxed "+d.Palette.TextSecondary),
					g.Raw(string(htmlOutput)),
				),
			),
		),
	)
}

func EducationSection(d pageData) g.Node {
	var entries []g.Node
	for _, e := range content.Education() {
		entries = append(entries, Div(Class("space-y-2"),
			H3(Class("text-2xl font-semibold "+d.Palette.TextPrimary), g.Text(e.Degree)),
			P(Class("text-xl "+d.Palette.TextSecondary), g.Text(e.Institution)),
			P(Class("text-lg "+d.Palette.TextSecondary), g.Text(e.University)),
			badge(d, e.Duration),
		))
	}

	return Section(ID("education"), Class("py-20 px-6 "+reveal(d.Visible, "education")),
		Div(Class("max-w-4xl mx-auto"),
			sectionHeading(d, "Education"),
			card(d, "p-8",
				Div(Class("space-y-6"), g.Group(entries)),
			),
		),
	)
}

func skillBadge(d pageData, s content.Skill) g.Node {
	icon := content.IconFor(s.IconKey)
	return Span(Class("inline-flex items-center gap-2 rounded-md px-2.5 py-1 text-sm "+d.Palette.Card+" border "+d.Palette.Border+" "+d.Palette.TextSecondary),
		Span(Class("rounded px-1 text-xs font-semibold "+icon.Classes), g.Text(icon.Label)),
		g.Text(s.Name),
		Span(Class("text-xs opacity-70"), g.Text(string(s.Proficiency))),
	)
}

func SkillsSection(d pageData) g.Node {
	var cards []g.Node
	for _, cat := range content.Skills() {
		var items []g.Node
		for _, s := range cat.Items {
			items = append(items, skillBadge(d, s))
		}
		cards = append(cards, card(d, "p-6",
			H3(Class("text-xl font-semibold mb-4 "+d.Palette.TextPrimary), g.Text(cat.CategoryName)),
			Div(Class("flex flex-wrap gap-2"), g.Group(items)),
		))
	}

	return Section(ID("skills"), Class("py-20 px-6 "+reveal(d.Visible, "skills")),
		Div(Class("max-w-4xl mx-auto"),
			sectionHeading(d, "Technical Skills"),
			Div(Class("grid md:grid-cols-2 gap-8"), g.Group(cards)),
		),
	)
}

func CertificationsSection(d pageData) g.Node {
	var cards []g.Node
	for _, c := range content.Certifications() {
		logo := content.IconFor(c.LogoKey)
		body := []g.Node{
			Div(Class("flex items-center gap-3 mb-3"),
				Span(Class("rounded px-1.5 py-0.5 text-xs font-semibold "+logo.Classes), g.Text(logo.Label)),
				H3(Class("text-lg font-semibold "+d.Palette.TextPrimary), g.Text(c.Name)),
			),
			P(Class(d.Palette.TextSecondary), g.Text(c.Issuer+" · "+c.Platform)),
			P(Class("text-sm mt-1 "+d.Palette.TextSecondary), g.Text(c.Date)),
		}
		if c.CredentialURL != "" {
			body = append(body,
				A(Href(c.CredentialURL), Target("_blank"), Rel("noopener noreferrer"),
					Class("inline-block mt-3 text-sm underline "+d.Palette.TextSecondary+" hover:opacity-80"),
					g.Text("View Credential"),
				),
			)
		}
		cards = append(cards, card(d, "p-6", body...))
	}

	return Section(ID("certifications"), Class("py-20 px-6 "+reveal(d.Visible, "certifications")),
		Div(Class("max-w-4xl mx-auto"),
			sectionHeading(d, "Certifications"),
			Div(Class("grid md:grid-cols-2 gap-8"), g.Group(cards)),
		),
	)
}

func ExperienceSection(d pageData) g.Node {
	var entries []g.Node
	for _, e := range content.Experience() {
		entries = append(entries, card(d, "p-6",
			Div(Class("flex flex-col sm:flex-row sm:items-center sm:justify-between gap-2 mb-2"),
				H3(Class("text-xl font-semibold "+d.Palette.TextPrimary), g.Text(e.Title)),
				badge(d, e.Duration),
			),
			P(Class("font-medium "+d.Palette.TextSecondary), g.Text(e.Organization)),
			P(Class("mt-2 leading-relaxed "+d.Palette.TextSecondary), g.Text(e.Description)),
		))
	}

	return Section(ID("experience"), Class("py-20 px-6 "+reveal(d.Visible, "experience")),
		Div(Class("max-w-4xl mx-auto"),
			sectionHeading(d, "Experience"),
			Div(Class("space-y-6"), g.Group(entries)),
		),
	)
}
