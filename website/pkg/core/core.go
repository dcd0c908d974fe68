// Package core renders the portfolio website. Every component is a pure
// function of the page state snapshot and the static content; the HTTP layer
// owns one view.PageState per page view and re-renders fragments via HTMX.
package core

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/vivek888gaya/portfolio/internal/utils"
	"github.com/vivek888gaya/portfolio/pkg/content"
	"github.com/vivek888gaya/portfolio/pkg/statusapi"
	"github.com/vivek888gaya/portfolio/pkg/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" // Using . import for convenience with html tags
)

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	DevMode    bool
	ListenAddr string
	Domain     string
	APIBaseURL string
	StaticDir  string
}

// ResumeFilename is the suggested filename for the resume download.
const ResumeFilename = "Vivek_Kumar_Resume.pdf"

// Page views idle past the TTL get evicted on the next page load; the cap
// bounds the registry against burst traffic that never comes back.
const (
	pageViewTTL  = 30 * time.Minute
	maxPageViews = 1000
)

// pageView pairs a page view's state with the time it last handled a request.
type pageView struct {
	state    *view.PageState
	lastSeen time.Time
}

// Site is the portfolio web application: one status-check API client plus a
// registry of live page views.
type Site struct {
	cfg ServerConfig
	api *statusapi.Client

	mu     sync.Mutex
	states map[string]*pageView
}

func NewSite(cfg ServerConfig) *Site {
	if cfg.StaticDir == "" {
		cfg.StaticDir = "website/static"
	}
	return &Site{
		cfg:    cfg,
		api:    statusapi.New(cfg.APIBaseURL),
		states: make(map[string]*pageView),
	}
}

// evictStaleLocked closes and removes page views idle past the TTL, then the
// least recently seen views until the registry fits under the cap. Abandoned
// views (closed tabs, crawlers) are reclaimed here since no request of theirs
// will ever come back. Caller holds s.mu.
func (s *Site) evictStaleLocked(now time.Time) {
	for id, pv := range s.states {
		if now.Sub(pv.lastSeen) > pageViewTTL {
			pv.state.Close()
			delete(s.states, id)
		}
	}
	for len(s.states) >= maxPageViews {
		oldestID := ""
		var oldest time.Time
		for id, pv := range s.states {
			if oldestID == "" || pv.lastSeen.Before(oldest) {
				oldestID = id
				oldest = pv.lastSeen
			}
		}
		s.states[oldestID].state.Close()
		delete(s.states, oldestID)
	}
}

// Handler builds the route table.
func (s *Site) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.homeHandler)
	mux.HandleFunc("POST /contact", s.contactHandler)
	mux.HandleFunc("GET /project/close", s.projectCloseHandler)
	mux.HandleFunc("GET /project/{index}", s.projectSelectHandler)
	mux.HandleFunc("GET /theme/toggle", s.themeToggleHandler)
	mux.HandleFunc("POST /events/visibility", s.visibilityEventsHandler)
	mux.HandleFunc("GET /resume", s.resumeHandler)
	mux.HandleFunc("GET /robots.txt", s.robotsTxtHandler)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))

	return mux
}

// Run starts the web server.
func Run(cfg ServerConfig) error {
	site := NewSite(cfg)

	listenAddr := cfg.ListenAddr
	if cfg.DevMode && listenAddr == ":8080" {
		listenAddr = "localhost:7000"
	}
	if cfg.DevMode {
		utils.Log.Infof("Starting server in development mode on http://%s", listenAddr)
	} else {
		utils.Log.Infof("Starting server on %s (domain: %s)", listenAddr, cfg.Domain)
	}

	return http.ListenAndServe(listenAddr, site.Handler())
}

// homeHandler serves the full page and starts a fresh page view. A reload
// replaces the previous page view bound to the same browser, which closes its
// visibility observation and discards any in-flight submission result.
func (s *Site) homeHandler(w http.ResponseWriter, r *http.Request) {
	state, err := view.NewPageState(s.api, content.SectionIDs())
	if err != nil {
		utils.Log.Errorf("Failed to create page state: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	s.mu.Lock()
	s.evictStaleLocked(now)
	if cookie, cerr := r.Cookie(pageViewCookie); cerr == nil {
		if old, ok := s.states[cookie.Value]; ok {
			old.state.Close()
			delete(s.states, cookie.Value)
		}
	}
	s.states[state.ID] = &pageView{state: state, lastSeen: now}
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     pageViewCookie,
		Value:    state.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	owner := content.Owner()
	PageLayout(
		fmt.Sprintf("%s - %s", owner.Name, owner.Headline),
		owner.Tagline,
		state.Theme.Current(),
		PageBody(snapshotPage(state)),
	).Render(w)
}

// themeToggleHandler flips the display mode and re-renders the page body for
// an HTMX body swap.
func (s *Site) themeToggleHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := s.stateFor(r)
	if !ok {
		expiredPageView(w)
		return
	}

	state.Theme.Toggle()
	PageBody(snapshotPage(state)).Render(w)
}

// resumeHandler offers the resume as a direct download with a fixed
// suggested filename. The file is checked first so a missing resume is a
// plain 404 rather than an attachment-labeled error body.
func (s *Site) resumeHandler(w http.ResponseWriter, r *http.Request) {
	path := s.cfg.StaticDir + "/resume.pdf"
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ResumeFilename))
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (s *Site) robotsTxtHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Allow: /")
}

// pageData is the full render input: palette and mode from the theme
// controller, the visibility map, the form snapshot and the active project
// selection.
type pageData struct {
	Mode    view.Mode
	Palette view.Palette
	Visible map[string]bool
	Form    view.FormSnapshot
	Active  *content.Project
}

func snapshotPage(state *view.PageState) pageData {
	mode := state.Theme.Current()
	return pageData{
		Mode:    mode,
		Palette: view.PaletteFor(mode),
		Visible: state.Visibility.Snapshot(),
		Form:    state.Form.Snapshot(),
		Active:  state.Selection.Active(),
	}
}

// reveal returns the entrance-animation classes for a section: shifted and
// transparent until the visibility tracker has seen it intersect the
// viewport.
func reveal(visible map[string]bool, sectionID string) string {
	base := "transition-all duration-700 ease-out "
	if visible[sectionID] {
		return base + "opacity-100 translate-y-0"
	}
	return base + "opacity-0 translate-y-6"
}

// Page layout component
func PageLayout(title, description string, mode view.Mode, body g.Node) g.Node {
	p := view.PaletteFor(mode)
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("description"), Content(description)),
				TitleEl(g.Text(title)),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), g.Attr("crossorigin", "")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap")),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4")),
				Script(g.Raw(`tailwind.config={theme:{extend:{fontFamily:{sans:['Inter','ui-sans-serif','system-ui','sans-serif']}}}}`)),

				StyleEl(g.Raw(`
					* { scroll-behavior: smooth; }
					::selection { background: #8B949E; color: #0D1117; }
					a:focus-visible, button:focus-visible, input:focus-visible, textarea:focus-visible {
						outline: 2px solid #8B949E;
						outline-offset: 2px;
					}
					.htmx-request .submit-label { display: none; }
					.htmx-request .submit-spinner { display: inline-flex; }
					.submit-spinner { display: none; }
				`)),
			),
			Body(Class(p.Background+" "+p.TextPrimary+" font-sans antialiased leading-normal tracking-tight min-h-screen"),
				body,
				// Report section visibility back to the server so fragment
				// re-renders keep the entrance animations in sync.
				Script(g.Raw(`
					const observer = new IntersectionObserver((entries) => {
						entries.forEach((entry) => {
							const body = new URLSearchParams();
							body.set('section', entry.target.id);
							body.set('ratio', String(entry.intersectionRatio));
							fetch('/events/visibility', { method: 'POST', body: body });
							if (entry.intersectionRatio >= 0.1) {
								entry.target.classList.remove('opacity-0', 'translate-y-6');
								entry.target.classList.add('opacity-100', 'translate-y-0');
							} else {
								entry.target.classList.remove('opacity-100', 'translate-y-0');
								entry.target.classList.add('opacity-0', 'translate-y-6');
							}
						});
					}, { threshold: 0.1 });
					document.querySelectorAll('section[id]').forEach((section) => observer.observe(section));
				`)),
			),
		),
	})
}

// PageBody composes the displayed page from the state snapshot. Pure function
// of its inputs.
func PageBody(d pageData) g.Node {
	owner := content.Owner()
	return Div(ID("page-body"),
		Navbar(d, owner),
		HeroSection(d, owner),
		AboutSection(d, owner),
		EducationSection(d),
		SkillsSection(d),
		ProjectsSection(d),
		CertificationsSection(d),
		ExperienceSection(d),
		ContactSection(d, owner),
		Div(ID("project-modal"), ProjectModal(d)),
		FooterEl(d, owner),
	)
}

// Navbar component
func Navbar(d pageData, owner content.Profile) g.Node {
	var links []g.Node
	for _, id := range content.SectionIDs() {
		links = append(links, A(
			Href("#"+id),
			Class(d.Palette.TextSecondary+" hover:opacity-80 transition-colors capitalize px-2 py-1 text-sm font-medium"),
			g.Text(id),
		))
	}

	themeLabel := "Light"
	if d.Mode == view.Light {
		themeLabel = "Dark"
	}

	return Nav(Class("fixed top-0 w-full "+d.Palette.Background+"/80 backdrop-blur-sm border-b "+d.Palette.Border+" z-50"),
		Div(Class("max-w-6xl mx-auto px-6 py-4 flex justify-between items-center"),
			A(Href("/"), Class("text-xl font-semibold"), g.Text(owner.Name)),
			Div(Class("hidden md:flex items-center space-x-4"),
				g.Group(links),
				Button(
					Type("button"),
					g.Attr("hx-get", "/theme/toggle"),
					g.Attr("hx-target", "#page-body"),
					g.Attr("hx-swap", "outerHTML"),
					Class("px-3 py-1 rounded-md border "+d.Palette.Border+" "+d.Palette.TextSecondary+" text-sm hover:opacity-80 transition-colors"),
					g.Text(themeLabel),
				),
			),
		),
	)
}

// FooterEl component (El suffix to avoid clashing with html.Footer)
func FooterEl(d pageData, owner content.Profile) g.Node {
	currentYear := time.Now().Year()
	return Footer(Class("border-t "+d.Palette.Border+" py-12 px-6"),
		Div(Class("max-w-6xl mx-auto text-center"),
			P(Class(d.Palette.TextSecondary+" mb-4"),
				g.Text(fmt.Sprintf("© %d %s. Built with Go and a passion for clean code.", currentYear, owner.Name)),
			),
			Div(Class("flex justify-center space-x-6"),
				A(Href("mailto:"+owner.Email), Class(d.Palette.TextSecondary+" hover:opacity-80 transition-colors"), g.Text("Email")),
				A(Href(owner.LinkedInURL), Target("_blank"), Rel("noopener noreferrer"),
					Class(d.Palette.TextSecondary+" hover:opacity-80 transition-colors"), g.Text("LinkedIn")),
				A(Href(owner.GitHubURL), Target("_blank"), Rel("noopener noreferrer"),
					Class(d.Palette.TextSecondary+" hover:opacity-80 transition-colors"), g.Text("GitHub")),
			),
		),
	)
}
