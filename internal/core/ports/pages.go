package ports

import "go.loadout.dev/loadout/internal/core/domain"

// ResourcePage is the capability set a provider search page must offer the
// engine: dropping a resource row and carrying the search term across page
// switches. Each provider implements its own variant.
//
//go:generate go run go.uber.org/mock/mockgen -source=pages.go -destination=mocks/mock_pages.go -package=mocks
type ResourcePage interface {
	// Provider identifies which provider the page browses.
	Provider() domain.Provider

	// RemoveResource drops the row for the named package from the page's
	// cached results, if present.
	RemoveResource(name string)

	// SearchTerm returns the page's current search query.
	SearchTerm() string

	// SetSearchTerm replaces the page's search query.
	SetSearchTerm(term string)
}

// PageRegistry tracks the provider pages the selection engine must notify
// when a package is removed.
type PageRegistry interface {
	// Pages returns all registered pages.
	Pages() []ResourcePage

	// Page returns the page for the given provider, or domain.ErrInvalidPage
	// when no such page is registered.
	Page(provider domain.Provider) (ResourcePage, error)
}
