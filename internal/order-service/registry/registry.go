// Package registry holds the in-memory store of registered orders and
// dispatches lifecycle notifications to attached observers.
package registry

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/jcmexdev/order-registry/internal/order-service/domain"
)

// Observer reacts to an entry being registered. Implementations are
// best-effort: a returned error is logged and never aborts the add or
// the remaining observers.
type Observer interface {
	Notify(e domain.Registrable) error
}

// Registry is an ordered in-memory collection of registrable entries
// with linear lookup and removal by id. Id uniqueness is the caller's
// responsibility; duplicates are stored and removed together.
//
// Instances are constructed explicitly and injected — there is no
// process-wide singleton. The mutex is there because the HTTP surface
// reaches the registry from concurrent requests.
type Registry struct {
	mu        sync.RWMutex
	entries   []domain.Registrable
	observers []Observer
}

func New() *Registry {
	return &Registry{}
}

// Attach registers an observer. Observers are notified in attachment
// order on every subsequent Add.
func (r *Registry) Attach(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Add stores the entry and then notifies every attached observer,
// synchronously and in attachment order. The entry is visible to Get
// before the first observer runs. An observer failure is logged and the
// remaining observers still run.
func (r *Registry) Add(e domain.Registrable) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	for _, o := range observers {
		if err := o.Notify(e); err != nil {
			slog.Error("observer notification failed", "order_id", e.ID(), "error", err)
		}
	}
}

// Remove deletes every entry with the given id and reports how many
// were removed. Zero means the id was not present.
func (r *Registry) Remove(id int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(e domain.Registrable) bool {
		return e.ID() == id
	})
	return before - len(r.entries)
}

// Get returns the first entry with the given id. The second result
// reports presence; an unknown id is not an error.
func (r *Registry) Get(id int) (domain.Registrable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns a copy of the stored entries in insertion order.
func (r *Registry) Entries() []domain.Registrable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}
