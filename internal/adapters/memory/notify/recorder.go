package notify

import (
	"slices"
	"sync"
)

// Recorder is an in-memory notify.Alerter and notify.Navigator that remembers what it
// was asked to show. It is safe for concurrent use.
type Recorder struct {
	mu          sync.Mutex
	alerts      []string
	navigations []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, message)
}

func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigations = append(r.navigations, path)
}

func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.alerts)
}

func (r *Recorder) Navigations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.navigations)
}
