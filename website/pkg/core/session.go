package core

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vivek888gaya/portfolio/pkg/view"
)

// pageViewCookie binds a browser to its live page view state.
const pageViewCookie = "pv"

// stateFor resolves the page view for a fragment request and refreshes its
// idle clock.
func (s *Site) stateFor(r *http.Request) (*view.PageState, bool) {
	cookie, err := r.Cookie(pageViewCookie)
	if err != nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pv, ok := s.states[cookie.Value]
	if !ok {
		return nil, false
	}
	pv.lastSeen = time.Now()
	return pv.state, true
}

// expiredPageView tells HTMX to reload the page so a fresh page view gets
// created.
func expiredPageView(w http.ResponseWriter) {
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusNoContent)
}

// visibilityEventsHandler feeds one browser intersection report into the page
// view's observation stream. The tracker applies the visibility threshold;
// this endpoint never fails the page.
func (s *Site) visibilityEventsHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := s.stateFor(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	section := r.PostFormValue("section")
	ratio, err := strconv.ParseFloat(r.PostFormValue("ratio"), 64)
	if section == "" || err != nil || ratio < 0 || ratio > 1 {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	state.ReportVisibility(section, ratio)
	w.WriteHeader(http.StatusNoContent)
}
