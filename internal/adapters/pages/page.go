package pages

import (
	"sync"

	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
)

// CachedPage is a provider page holding a cache of browsed package names and
// the current search term. Provider search itself lives outside the engine;
// the page only has to honor removals and search-term handoff.
type CachedPage struct {
	provider domain.Provider

	mu     sync.Mutex
	names  map[string]bool
	search string
}

var _ ports.ResourcePage = (*CachedPage)(nil)

// NewCachedPage creates an empty page for the given provider.
func NewCachedPage(provider domain.Provider) *CachedPage {
	return &CachedPage{
		provider: provider,
		names:    make(map[string]bool),
	}
}

// Provider identifies which provider the page browses.
func (p *CachedPage) Provider() domain.Provider {
	return p.provider
}

// Put records a browsed package name in the page cache.
func (p *CachedPage) Put(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names[name] = true
}

// Has reports whether the page currently caches the named package.
func (p *CachedPage) Has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.names[name]
}

// RemoveResource drops the row for the named package, if present.
func (p *CachedPage) RemoveResource(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.names, name)
}

// SearchTerm returns the page's current search query.
func (p *CachedPage) SearchTerm() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.search
}

// SetSearchTerm replaces the page's search query.
func (p *CachedPage) SetSearchTerm(term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.search = term
}
