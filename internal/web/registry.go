package web

import (
	"sync"

	"resume-feedback/internal/submission"
)

// WorkflowFactory builds the workflow for a new session.
type WorkflowFactory func(sessionID string) *submission.Workflow

// Registry maps session ids to their workflow. Safe for concurrent use.
type Registry struct {
	factory WorkflowFactory

	mu        sync.Mutex
	bySession map[string]*submission.Workflow
}

// NewRegistry constructs a Registry.
func NewRegistry(factory WorkflowFactory) *Registry {
	return &Registry{factory: factory, bySession: make(map[string]*submission.Workflow)}
}

// Get returns the session's workflow, creating it on first use.
func (r *Registry) Get(sessionID string) *submission.Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.bySession[sessionID]
	if !ok {
		w = r.factory(sessionID)
		r.bySession[sessionID] = w
	}
	return w
}

// Len reports how many sessions have a workflow.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bySession)
}
