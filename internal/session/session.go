// Package session holds the single-session dashboard state: the joined
// portfolio table from the last analysis run, the keyword list it was run
// with, the last generated narrative, and the live progress of a run.
//
// Nothing here persists — state lives for the life of the process and is
// entirely overwritten by the next analysis run. The mutex exists only
// because net/http serves handlers on separate goroutines; the dashboard is
// a single-user, single-writer design.
package session

import (
	"sync"

	"github.com/rgale/folioscope/internal/models"
)

// Store is the process-wide session state container.
type Store struct {
	mu        sync.RWMutex
	result    *models.AnalysisResult
	narrative string
	hasReport bool
	progress  models.Progress
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// SetResult stores a completed analysis run, replacing the previous run's
// table and discarding any narrative generated against it.
func (s *Store) SetResult(result *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.narrative = ""
	s.hasReport = false
}

// Result returns the last stored analysis run, or false when none exists.
func (s *Store) Result() (*models.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}

// SetNarrative stores the last generated narrative report.
func (s *Store) SetNarrative(report string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.narrative = report
	s.hasReport = true
}

// Narrative returns the last generated narrative, or false when none has
// been generated for the current result.
func (s *Store) Narrative() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.narrative, s.hasReport
}

// SetProgress publishes the state of the in-flight analysis loop.
func (s *Store) SetProgress(p models.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = p
}

// Progress returns the most recently published loop progress.
func (s *Store) Progress() models.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}
