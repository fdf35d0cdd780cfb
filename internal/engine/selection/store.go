// Package selection implements the selection store, the single mutable
// resource of the download planning engine.
package selection

import (
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Entry is one selected download, keyed by package display name. Entries are
// owned exclusively by the Store; plan building borrows them read-only.
type Entry struct {
	Pack         domain.Package
	Version      *domain.Version
	AutoResolved bool
	Task         ports.DownloadTask
}

// Store maps package display names to their selected download entry. It
// enforces one entry per package and keeps the version selected-flag in sync
// with entry presence: the flag is true iff the entry is in the store.
type Store struct {
	factory ports.DownloadTaskFactory
	dest    ports.Destination
	pages   ports.PageRegistry

	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewStore creates an empty Store. pages may be nil when no provider pages
// need removal notifications (e.g. in non-interactive runs).
func NewStore(factory ports.DownloadTaskFactory, dest ports.Destination, pages ports.PageRegistry) *Store {
	return &Store{
		factory: factory,
		dest:    dest,
		pages:   pages,
		entries: make(map[string]*Entry),
	}
}

// Add selects the given version of a package. The download task is created
// first; only once it exists is an existing entry for the same package name
// removed, so a failed replacement leaves the prior selection intact. On the
// replacement path the old version's selected-flag is cleared so it does not
// leak. Replacement is unconditional; the caller decides precedence.
func (s *Store) Add(pack domain.Package, version *domain.Version, autoResolved bool) error {
	task, err := s.factory.NewTask(pack, version, s.dest, autoResolved)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create download task"), "package", pack.Name)
	}

	s.Remove(pack, version)

	s.mu.Lock()
	version.CurrentlySelected = true
	s.entries[pack.Name] = &Entry{
		Pack:         pack,
		Version:      version,
		AutoResolved: autoResolved,
		Task:         task,
	}
	s.mu.Unlock()

	return nil
}

// Remove deselects the given version and drops the package's entry if
// present. Removing an absent package is a no-op, but the version's
// selected-flag is cleared either way since all versions of the package are
// gone from the store afterwards.
func (s *Store) Remove(pack domain.Package, version *domain.Version) {
	s.notifyPages(pack.Name)

	s.mu.Lock()
	version.CurrentlySelected = false
	if existing, ok := s.entries[pack.Name]; ok {
		existing.Version.CurrentlySelected = false
		delete(s.entries, pack.Name)
	}
	s.mu.Unlock()
}

// notifyPages tells every registered provider page to drop its cached row
// for the package. Pages are presentation caches; a missing page is fine.
func (s *Store) notifyPages(name string) {
	if s.pages == nil {
		return
	}
	for _, page := range s.pages.Pages() {
		page.RemoveResource(name)
	}
}

// IsEmpty reports whether no selections exist. UI collaborators derive the
// enabled-state of their confirm action from this.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries) == 0
}

// Len returns the number of selected packages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a snapshot of all entries sorted by package name,
// case-insensitive ascending. Mutating the store afterwards does not
// invalidate the returned slice.
func (s *Store) Entries() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedEntriesLocked()
}

func (s *Store) sortedEntriesLocked() []*Entry {
	entries := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Pack.Name) < strings.ToLower(entries[j].Pack.Name)
	})
	return entries
}

// Tasks returns the download task handles of all entries in name order.
func (s *Store) Tasks() []ports.DownloadTask {
	entries := s.Entries()
	tasks := make([]ports.DownloadTask, len(entries))
	for i, e := range entries {
		tasks[i] = e.Task
	}
	return tasks
}

// Selected returns the (package, version) pairs of all entries in name
// order, as the dependency resolver consumes them.
func (s *Store) Selected() []domain.PackDependency {
	entries := s.Entries()
	deps := make([]domain.PackDependency, len(entries))
	for i, e := range entries {
		deps[i] = domain.PackDependency{Pack: e.Pack, Version: e.Version}
	}
	return deps
}

// RequiredByNames maps the given addon ids to the display names of currently
// selected entries whose package id matches. Each id maps to at most one
// selection since the store holds one version per package.
func (s *Store) RequiredByNames(addonIDs []string) []string {
	entries := s.Entries()

	var names []string
	for _, id := range addonIDs {
		for _, e := range entries {
			if e.Pack.AddonID == id {
				names = append(names, e.Pack.Name)
				break
			}
		}
	}
	return names
}

// Lookup returns the entry for the given package name, or nil.
func (s *Store) Lookup(name string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[name]
}

// Fingerprint digests the ordered (name, provider, addon id, version id)
// tuples of the current selection set. Two stores with the same selections
// produce the same fingerprint, so a confirmation attempt can prove an
// aborted resolution left the store untouched.
func (s *Store) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hasher := xxhash.New()
	for _, e := range s.sortedEntriesLocked() {
		_, _ = hasher.WriteString(e.Pack.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(string(e.Pack.Provider))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(e.Pack.AddonID)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(e.Version.ID)
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}
