package core

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vivek888gaya/portfolio/pkg/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// summaryTechLimit caps the technology badges on a project card; longer lists
// get a "+N" remainder badge.
const summaryTechLimit = 3

func projectCard(d pageData, index int, p content.Project) g.Node {
	var techBadges []g.Node
	for i, tech := range p.Technologies {
		if i == summaryTechLimit {
			techBadges = append(techBadges, badge(d, fmt.Sprintf("+%d", len(p.Technologies)-summaryTechLimit)))
			break
		}
		techBadges = append(techBadges, badge(d, tech))
	}

	return card(d, "p-6 h-full cursor-pointer hover:opacity-90 transition-colors",
		g.Attr("hx-get", fmt.Sprintf("/project/%d", index)),
		g.Attr("hx-target", "#project-modal"),
		g.Attr("hx-swap", "innerHTML"),
		H3(Class("text-xl font-semibold mb-3 "+d.Palette.TextPrimary), g.Text(p.Title)),
		P(Class("mb-4 "+d.Palette.TextSecondary), g.Text(p.ShortDescription)),
		Div(Class("flex flex-wrap gap-2 mb-4"), g.Group(techBadges)),
		Div(Class("flex items-center justify-between"),
			badge(d, p.Status),
			Span(Class(d.Palette.TextSecondary+" text-sm"), g.Text("View Details")),
		),
	)
}

func ProjectsSection(d pageData) g.Node {
	var cards []g.Node
	for i, p := range content.Projects() {
		cards = append(cards, projectCard(d, i, p))
	}

	return Section(ID("projects"), Class("py-20 px-6 "+reveal(d.Visible, "projects")),
		Div(Class("max-w-6xl mx-auto"),
			sectionHeading(d, "Projects"),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}

// ProjectModal renders the detail overlay for the active selection, or
// nothing when no project is expanded. Clicking the backdrop clears the
// selection; clicks inside the content area do not bubble out.
func ProjectModal(d pageData) g.Node {
	p := d.Active
	if p == nil {
		return g.Text("")
	}

	var techBadges []g.Node
	for _, tech := range p.Technologies {
		techBadges = append(techBadges, badge(d, tech))
	}

	var featureItems []g.Node
	for _, f := range p.Features {
		featureItems = append(featureItems, Li(g.Text(f)))
	}

	detail := []g.Node{
		Div(Class("flex justify-between items-start mb-6"),
			H3(Class("text-2xl font-bold "+d.Palette.TextPrimary), g.Text(p.Title)),
			Button(
				Type("button"),
				g.Attr("hx-get", "/project/close"),
				g.Attr("hx-target", "#project-modal"),
				g.Attr("hx-swap", "innerHTML"),
				Class(d.Palette.TextSecondary+" hover:opacity-80 text-xl leading-none"),
				g.Text("×"),
			),
		),
		P(Class("text-lg leading-relaxed mb-6 "+d.Palette.TextSecondary), g.Text(p.LongDescription)),
		Div(Class("mb-6"),
			H4(Class("text-lg font-semibold mb-2 "+d.Palette.TextPrimary), g.Text("Technologies Used")),
			Div(Class("flex flex-wrap gap-2"), g.Group(techBadges)),
		),
		Div(Class("mb-6"),
			H4(Class("text-lg font-semibold mb-2 "+d.Palette.TextPrimary), g.Text("Key Features")),
			Ul(Class("list-disc list-inside space-y-1 "+d.Palette.TextSecondary), g.Group(featureItems)),
		),
		Div(Class("flex flex-wrap items-center gap-3 mb-2"),
			badge(d, p.Status),
			g.If(p.Role != "", badge(d, p.Role)),
		),
	}

	if p.Note != "" {
		detail = append(detail, P(Class("text-sm italic mt-2 "+d.Palette.TextSecondary), g.Text(p.Note)))
	}

	var actions []g.Node
	if p.LiveURL != "" {
		actions = append(actions, A(Href(p.LiveURL), Target("_blank"), Rel("noopener noreferrer"),
			Class("px-4 py-2 rounded-md border "+d.Palette.Border+" "+d.Palette.TextPrimary+" hover:opacity-80 transition-colors"),
			g.Text("Live Site"),
		))
	}
	if p.DemoURL != "" {
		actions = append(actions, A(Href(p.DemoURL), Target("_blank"), Rel("noopener noreferrer"),
			Class("px-4 py-2 rounded-md border "+d.Palette.Border+" "+d.Palette.TextSecondary+" hover:opacity-80 transition-colors"),
			g.Text("View Demo"),
		))
	}
	if len(actions) > 0 {
		detail = append(detail, Div(Class("flex gap-3 mt-4"), g.Group(actions)))
	}

	return Div(
		ID("project-overlay"),
		Class("fixed inset-0 bg-black/50 backdrop-blur-sm z-50 flex items-center justify-center p-6"),
		g.Attr("hx-get", "/project/close"),
		g.Attr("hx-target", "#project-modal"),
		g.Attr("hx-swap", "innerHTML"),
		Div(
			Class(d.Palette.Card+" border "+d.Palette.Border+" rounded-lg max-w-2xl w-full max-h-[80vh] overflow-y-auto p-6"),
			g.Attr("onclick", "event.stopPropagation()"),
			g.Group(detail),
		),
	)
}

// projectSelectHandler expands one project into the detail overlay.
func (s *Site) projectSelectHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := s.stateFor(r)
	if !ok {
		expiredPageView(w)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	projects := content.Projects()
	if err != nil || index < 0 || index >= len(projects) {
		http.NotFound(w, r)
		return
	}

	state.Selection.Select(&projects[index])
	ProjectModal(snapshotPage(state)).Render(w)
}

// projectCloseHandler clears the selection; also reached via backdrop click.
func (s *Site) projectCloseHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := s.stateFor(r)
	if !ok {
		expiredPageView(w)
		return
	}

	state.Selection.Clear()
	ProjectModal(snapshotPage(state)).Render(w)
}
