// Package pages implements the provider page registry the selection engine
// notifies when packages are removed.
package pages

import (
	"fmt"
	"sync"

	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry is an in-memory ports.PageRegistry. Registering something that is
// not a resource page is a programming error: it is logged and ignored
// rather than propagated.
type Registry struct {
	logger ports.Logger

	mu       sync.RWMutex
	pages    map[domain.Provider]ports.ResourcePage
	order    []domain.Provider
	selected domain.Provider
}

var _ ports.PageRegistry = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{
		logger: logger,
		pages:  make(map[domain.Provider]ports.ResourcePage),
	}
}

// Register adds a page, keyed by its provider. The first registered page
// becomes the selected one.
func (r *Registry) Register(page any) {
	rp, ok := page.(ports.ResourcePage)
	if !ok {
		r.logger.Error(zerr.With(domain.ErrInvalidPage, "page_type", fmt.Sprintf("%T", page)))
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	provider := rp.Provider()
	if _, exists := r.pages[provider]; !exists {
		r.order = append(r.order, provider)
	}
	r.pages[provider] = rp
	if r.selected == "" {
		r.selected = provider
	}
}

// Pages returns all registered pages in registration order.
func (r *Registry) Pages() []ports.ResourcePage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.ResourcePage, 0, len(r.order))
	for _, provider := range r.order {
		out = append(out, r.pages[provider])
	}
	return out
}

// Page returns the page registered for the given provider.
func (r *Registry) Page(provider domain.Provider) (ports.ResourcePage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[provider]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidPage, "provider", string(provider))
	}
	return page, nil
}

// Select switches the active page, carrying the previous page's search term
// over so switching providers behaves like one global search bar.
func (r *Registry) Select(provider domain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, ok := r.pages[provider]
	if !ok {
		err := zerr.With(domain.ErrInvalidPage, "provider", string(provider))
		r.logger.Error(err)
		return err
	}

	if prev, ok := r.pages[r.selected]; ok && r.selected != provider {
		next.SetSearchTerm(prev.SearchTerm())
	}
	r.selected = provider
	return nil
}
