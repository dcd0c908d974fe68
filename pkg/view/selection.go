package view

import (
	"sync"

	"github.com/vivek888gaya/portfolio/pkg/content"
)

// ProjectSelection tracks which single project, if any, is expanded into the
// detail overlay. Selecting while another project is active replaces it; no
// stacking or history.
type ProjectSelection struct {
	mu     sync.Mutex
	active *content.Project
}

func NewProjectSelection() *ProjectSelection {
	return &ProjectSelection{}
}

// Select makes p the active selection, replacing any prior one.
func (s *ProjectSelection) Select(p *content.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = p
}

// Clear empties the selection. Clicking outside the overlay content area maps
// to this.
func (s *ProjectSelection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Active returns the currently expanded project, or nil.
func (s *ProjectSelection) Active() *content.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
