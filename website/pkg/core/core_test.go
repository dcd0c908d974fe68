package core

import (
	"bytes"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/vivek888gaya/portfolio/pkg/content"
	"github.com/vivek888gaya/portfolio/pkg/view"
	g "maragu.dev/gomponents"
)

// renderDoc renders a component and parses it for assertions.
func renderDoc(t *testing.T, node g.Node) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func emptyPageData() pageData {
	return pageData{
		Mode:    view.Dark,
		Palette: view.PaletteFor(view.Dark),
		Visible: map[string]bool{},
		Form:    view.FormSnapshot{Status: view.StatusIdle},
	}
}

// testClient wraps an httptest server with a cookie jar so fragment requests
// reach the page view created by GET /.
type testClient struct {
	srv    *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T, apiBaseURL string) *testClient {
	t.Helper()
	site := NewSite(ServerConfig{APIBaseURL: apiBaseURL, StaticDir: t.TempDir()})
	srv := httptest.NewServer(site.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &testClient{srv: srv, client: &http.Client{Jar: jar}}
}

func (tc *testClient) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := tc.client.Get(tc.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func (tc *testClient) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := tc.client.PostForm(tc.srv.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestHomeRendersAllSections(t *testing.T) {
	tc := newTestClient(t, "")
	resp, body := tc.get(t, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	for _, id := range content.SectionIDs() {
		if doc.Find("section#"+id).Length() != 1 {
			t.Fatalf("expected exactly one section #%s", id)
		}
	}
	if got := doc.Find("nav a[href^='#']").Length(); got != len(content.SectionIDs()) {
		t.Fatalf("expected %d navbar section links, got %d", len(content.SectionIDs()), got)
	}
}

func TestProjectCardTruncatesTechnologies(t *testing.T) {
	p := content.Project{
		Title:            "Sample",
		ShortDescription: "desc",
		Technologies:     []string{"TechOne", "TechTwo", "TechThree", "TechFour", "TechFive"},
		Features:         []string{"f"},
		Status:           "Completed",
	}

	doc := renderDoc(t, projectCard(emptyPageData(), 0, p))

	shown := doc.Find("span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.HasPrefix(strings.TrimSpace(s.Text()), "Tech")
	})
	if shown.Length() != 3 {
		t.Fatalf("expected 3 technology badges, got %d", shown.Length())
	}
	if !strings.Contains(doc.Text(), "+2") {
		t.Fatal("expected a +2 remainder badge")
	}
	if strings.Contains(doc.Text(), "TechFour") || strings.Contains(doc.Text(), "TechFive") {
		t.Fatal("expected technologies beyond the first 3 to be hidden")
	}
}

func TestProjectCardShortListHasNoRemainderBadge(t *testing.T) {
	p := content.Project{
		Title:            "Sample",
		ShortDescription: "desc",
		Technologies:     []string{"A", "B", "C"},
		Features:         []string{"f"},
		Status:           "Completed",
	}

	doc := renderDoc(t, projectCard(emptyPageData(), 0, p))
	if strings.Contains(doc.Text(), "+") {
		t.Fatal("expected no remainder badge for 3 technologies")
	}
}

func TestProjectModalOmitsMissingActions(t *testing.T) {
	d := emptyPageData()
	p := content.Project{
		Title:           "No Links",
		LongDescription: "long",
		Technologies:    []string{"Go"},
		Features:        []string{"works"},
		Status:          "Completed",
	}
	d.Active = &p

	doc := renderDoc(t, ProjectModal(d))
	if strings.Contains(doc.Text(), "Live Site") || strings.Contains(doc.Text(), "View Demo") {
		t.Fatal("expected no action links for a project without URLs")
	}

	p.LiveURL = "https://example.com"
	doc = renderDoc(t, ProjectModal(d))
	if !strings.Contains(doc.Text(), "Live Site") {
		t.Fatal("expected a Live Site action when LiveURL is set")
	}
}

func TestProjectSelectReplaceAndClose(t *testing.T) {
	tc := newTestClient(t, "")
	tc.get(t, "/") // establish a page view

	projects := content.Projects()

	_, body := tc.get(t, "/project/0")
	if !strings.Contains(body, projects[0].Title) {
		t.Fatalf("expected modal for %q", projects[0].Title)
	}

	_, body = tc.get(t, "/project/1")
	if !strings.Contains(body, projects[1].Title) || strings.Contains(body, projects[0].LongDescription) {
		t.Fatal("expected second selection to replace the first")
	}

	_, body = tc.get(t, "/project/close")
	if strings.Contains(body, projects[1].Title) {
		t.Fatal("expected an empty modal after close")
	}

	resp, _ := tc.get(t, "/project/99")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for an out-of-range project, got %d", resp.StatusCode)
	}
}

func TestThemeToggleSwapsPalette(t *testing.T) {
	tc := newTestClient(t, "")
	_, body := tc.get(t, "/")
	if !strings.Contains(body, "bg-[#0D1117]") {
		t.Fatal("expected the dark palette on first render")
	}

	_, body = tc.get(t, "/theme/toggle")
	if !strings.Contains(body, "bg-[#FFFFFF]") {
		t.Fatal("expected the light palette after one toggle")
	}

	_, body = tc.get(t, "/theme/toggle")
	if !strings.Contains(body, "bg-[#0D1117]") {
		t.Fatal("expected the dark palette after a second toggle")
	}
}

func TestVisibilityEventsDriveReveal(t *testing.T) {
	tc := newTestClient(t, "")
	tc.get(t, "/")

	resp, _ := tc.postForm(t, "/events/visibility", url.Values{
		"section": {"projects"},
		"ratio":   {"0.5"},
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	// The tracker consumes events asynchronously; poll the re-render.
	deadline := time.Now().Add(2 * time.Second)
	for {
		_, body := tc.get(t, "/theme/toggle")
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		class, _ := doc.Find("section#projects").Attr("class")
		if strings.Contains(class, "opacity-100") {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("projects section never revealed, class %q", class)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestVisibilityEventsRejectBadRatio(t *testing.T) {
	tc := newTestClient(t, "")
	tc.get(t, "/")

	resp, _ := tc.postForm(t, "/events/visibility", url.Values{
		"section": {"projects"},
		"ratio":   {"nope"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestFragmentWithoutPageViewAsksForRefresh(t *testing.T) {
	site := NewSite(ServerConfig{StaticDir: t.TempDir()})
	srv := httptest.NewServer(site.Handler())
	defer srv.Close()

	// No cookie jar: the fragment request carries no page view.
	resp, err := http.Get(srv.URL + "/project/0")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.Header.Get("HX-Refresh") != "true" {
		t.Fatal("expected an HX-Refresh response for an expired page view")
	}
}

func drainGet(t *testing.T, client *http.Client, url string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func TestReloadReplacesPageView(t *testing.T) {
	site := NewSite(ServerConfig{StaticDir: t.TempDir()})
	srv := httptest.NewServer(site.Handler())
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	drainGet(t, client, srv.URL+"/")

	site.mu.Lock()
	var first *view.PageState
	for _, pv := range site.states {
		first = pv.state
	}
	site.mu.Unlock()
	if first == nil {
		t.Fatal("expected a page view after the first load")
	}

	drainGet(t, client, srv.URL+"/")
	drainGet(t, client, srv.URL+"/")

	site.mu.Lock()
	live := len(site.states)
	site.mu.Unlock()
	if live != 1 {
		t.Fatalf("expected 1 live page view after reloads, got %d", live)
	}

	// The replaced view's tracker no longer accepts events.
	first.ReportVisibility("about", 0.9)
	time.Sleep(50 * time.Millisecond)
	if _, known := first.Visibility.Visible("about"); known {
		t.Fatal("expected the replaced page view's tracker to be closed")
	}
}

func TestIdlePageViewsEvictedOnNextPageLoad(t *testing.T) {
	site := NewSite(ServerConfig{StaticDir: t.TempDir()})
	srv := httptest.NewServer(site.Handler())
	defer srv.Close()

	// Cookie-less visitors never present their pv cookie again, so a reload
	// will never replace their page views.
	for i := 0; i < 5; i++ {
		drainGet(t, http.DefaultClient, srv.URL+"/")
	}

	site.mu.Lock()
	if len(site.states) != 5 {
		t.Fatalf("expected 5 page views, got %d", len(site.states))
	}
	var abandoned *view.PageState
	for _, pv := range site.states {
		pv.lastSeen = time.Now().Add(-2 * pageViewTTL)
		abandoned = pv.state
	}
	site.mu.Unlock()

	// The next page load sweeps every idle view out.
	drainGet(t, http.DefaultClient, srv.URL+"/")

	site.mu.Lock()
	live := len(site.states)
	site.mu.Unlock()
	if live != 1 {
		t.Fatalf("expected only the fresh page view to remain, got %d", live)
	}

	// Evicted views are closed, not just forgotten.
	abandoned.ReportVisibility("about", 0.9)
	time.Sleep(50 * time.Millisecond)
	if _, known := abandoned.Visibility.Visible("about"); known {
		t.Fatal("expected evicted page views to be closed")
	}
}

func TestRobotsTxt(t *testing.T) {
	tc := newTestClient(t, "")
	resp, body := tc.get(t, "/robots.txt")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "User-agent: *") {
		t.Fatalf("unexpected robots.txt response: %d %q", resp.StatusCode, body)
	}
}
