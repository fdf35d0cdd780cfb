package providers

import (
	"context"
	"errors"
	"fmt"

	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.trai.ch/zerr"
)

// remoteProject is display metadata for an addon as a provider reports it.
type remoteProject struct {
	ID   string
	Name string
}

// remoteVersion is the downloadable release a provider reports for an addon,
// with the addon ids it requires in turn.
type remoteVersion struct {
	ID       string
	FileName string
	URL      string
	Requires []string
}

// backend is one provider's API surface.
type backend interface {
	Project(ctx context.Context, baseURL, addonID string) (remoteProject, error)
	LatestVersion(ctx context.Context, baseURL, addonID string) (remoteVersion, error)
}

// Resolver implements ports.DependencyResolver by walking the requirement
// closure of the current selections across the provider APIs.
type Resolver struct {
	directory *domain.ProviderDirectory
	progress  ports.ProgressReporter
	backends  map[domain.Provider]backend
}

var (
	_ ports.DependencyResolver = (*Resolver)(nil)
	_ ports.PackageCatalog     = (*Resolver)(nil)
)

// NewResolver creates a Resolver sharing one HTTP client across backends.
func NewResolver(client *Client, directory *domain.ProviderDirectory, progress ports.ProgressReporter) *Resolver {
	return &Resolver{
		directory: directory,
		progress:  progress,
		backends: map[domain.Provider]backend{
			domain.ProviderModrinth: &modrinthBackend{client: client},
			domain.ProviderFlame:    &flameBackend{client: client},
		},
	}
}

// pending is one addon awaiting a provider lookup during the walk.
type pending struct {
	provider   domain.Provider
	typ        domain.ResourceType
	addonID    string
	requiredBy []string
}

// Resolve walks the transitive requirements of the selected versions and
// returns every addon not already selected. A user abort surfaces as a
// cancelled outcome; network failures surface as a failed outcome. Both
// contribute nothing.
func (r *Resolver) Resolve(ctx context.Context, selected []domain.PackDependency) domain.ResolutionOutcome {
	seen := make(map[string]bool, len(selected))
	queue := make([]pending, 0, len(selected))

	for _, sel := range selected {
		seen[sel.Pack.AddonID] = true
	}
	for _, sel := range selected {
		for _, req := range sel.Version.RequiredIDs {
			if seen[req] {
				continue
			}
			seen[req] = true
			queue = append(queue, pending{
				provider:   sel.Pack.Provider,
				typ:        sel.Pack.Type,
				addonID:    req,
				requiredBy: []string{sel.Pack.AddonID},
			})
		}
	}

	var (
		deps     []domain.PackDependency
		warnings []string
	)

	for len(queue) > 0 {
		if ctx.Err() != nil {
			return domain.Cancelled()
		}

		next := queue[0]
		queue = queue[1:]

		dep, requires, warning, err := r.lookup(ctx, next)
		if warning != "" {
			warnings = append(warnings, warning)
			continue
		}
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return domain.Cancelled()
			}
			return domain.Failed(err.Error())
		}

		deps = append(deps, dep)

		for _, req := range requires {
			if seen[req] {
				continue
			}
			seen[req] = true
			queue = append(queue, pending{
				provider:   next.provider,
				typ:        next.typ,
				addonID:    req,
				requiredBy: []string{next.addonID},
			})
		}
	}

	return domain.Succeeded(deps, warnings)
}

// Lookup fetches one addon directly, with its latest downloadable version.
// Unlike Resolve, a missing addon here is an error: the user asked for it by
// id, so there is nothing sensible to degrade to.
func (r *Resolver) Lookup(ctx context.Context, provider domain.Provider, typ domain.ResourceType, addonID string) (domain.PackDependency, error) {
	info, err := r.directory.Info(provider)
	if err != nil {
		return domain.PackDependency{}, err
	}
	if !info.Enabled {
		return domain.PackDependency{}, zerr.With(zerr.New("provider is disabled"), "provider", string(provider))
	}
	if !info.Supports(typ) {
		return domain.PackDependency{}, zerr.With(zerr.With(zerr.New("provider does not serve this resource type"),
			"provider", string(provider)), "resource_type", string(typ))
	}

	be, ok := r.backends[provider]
	if !ok {
		return domain.PackDependency{}, zerr.With(zerr.New("no backend for provider"), "provider", string(provider))
	}

	proj, err := be.Project(ctx, info.BaseURL, addonID)
	if err != nil {
		return domain.PackDependency{}, err
	}
	ver, err := be.LatestVersion(ctx, info.BaseURL, addonID)
	if err != nil {
		return domain.PackDependency{}, err
	}

	return domain.PackDependency{
		Pack: domain.Package{
			AddonID:  proj.ID,
			Name:     proj.Name,
			Provider: provider,
			Type:     typ,
		},
		Version: &domain.Version{
			ID:          ver.ID,
			FileName:    ver.FileName,
			DownloadURL: ver.URL,
			RequiredIDs: ver.Requires,
		},
	}, nil
}

// lookup fetches one pending addon from its provider. Missing addons and
// disabled providers degrade to warnings so one broken requirement does not
// sink the whole resolution pass.
func (r *Resolver) lookup(ctx context.Context, p pending) (domain.PackDependency, []string, string, error) {
	info, err := r.directory.Info(p.provider)
	if err != nil || !info.Enabled {
		return domain.PackDependency{}, nil,
			fmt.Sprintf("dependency %s skipped: provider %s is unavailable", p.addonID, p.provider), nil
	}

	be, ok := r.backends[p.provider]
	if !ok {
		return domain.PackDependency{}, nil,
			fmt.Sprintf("dependency %s skipped: no backend for provider %s", p.addonID, p.provider), nil
	}

	ctx, unit := r.progress.Begin(ctx, fmt.Sprintf("resolving %s", p.addonID))

	proj, err := be.Project(ctx, info.BaseURL, p.addonID)
	if err != nil {
		unit.Done(err)
		if errors.Is(err, ErrNotFound) {
			return domain.PackDependency{}, nil,
				fmt.Sprintf("required dependency %s was not found on %s", p.addonID, info.DisplayName), nil
		}
		return domain.PackDependency{}, nil, "", err
	}

	ver, err := be.LatestVersion(ctx, info.BaseURL, p.addonID)
	if err != nil {
		unit.Done(err)
		if errors.Is(err, ErrNotFound) {
			return domain.PackDependency{}, nil,
				fmt.Sprintf("no downloadable file for dependency %s on %s", proj.Name, info.DisplayName), nil
		}
		return domain.PackDependency{}, nil, "", err
	}
	unit.Done(nil)

	dep := domain.PackDependency{
		Pack: domain.Package{
			AddonID:  proj.ID,
			Name:     proj.Name,
			Provider: p.provider,
			Type:     p.typ,
		},
		Version: &domain.Version{
			ID:          ver.ID,
			FileName:    ver.FileName,
			DownloadURL: ver.URL,
			RequiredIDs: ver.Requires,
			RequiredBy:  p.requiredBy,
		},
	}
	return dep, ver.Requires, "", nil
}
