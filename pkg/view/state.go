package view

import (
	"github.com/google/uuid"
)

// PageState aggregates the state holders for one page view. It is created on
// a full page render and closed when the page view is replaced or expires;
// closing releases the visibility observation and discards any in-flight
// form submission result.
type PageState struct {
	ID         string
	Theme      *ThemeController
	Form       *FormController
	Selection  *ProjectSelection
	Visibility *Tracker

	observer *ChannelObserver
}

// NewPageState builds the state for a fresh page view observing the given
// sections.
func NewPageState(submitter Submitter, sections []string) (*PageState, error) {
	observer := NewChannelObserver()
	tracker, err := NewTracker(observer, sections)
	if err != nil {
		return nil, err
	}

	return &PageState{
		ID:         uuid.NewString(),
		Theme:      NewThemeController(),
		Form:       NewFormController(submitter),
		Selection:  NewProjectSelection(),
		Visibility: tracker,
		observer:   observer,
	}, nil
}

// ReportVisibility feeds one intersection report from the browser into the
// tracker's event stream.
func (p *PageState) ReportVisibility(sectionID string, ratio float64) {
	p.observer.Publish(sectionID, ratio)
}

// Close tears the page view down. Safe to call more than once.
func (p *PageState) Close() {
	p.Form.Close()
	p.Visibility.Close()
}
