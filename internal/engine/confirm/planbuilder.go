package confirm

import (
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/engine/selection"
)

// PlanBuilder turns the selection store into a reviewable download plan.
// The provider directory is injected read-only configuration, used solely to
// annotate rows with display names.
type PlanBuilder struct {
	providers *domain.ProviderDirectory
}

// NewPlanBuilder creates a PlanBuilder backed by the given directory.
func NewPlanBuilder(providers *domain.ProviderDirectory) *PlanBuilder {
	return &PlanBuilder{providers: providers}
}

// Build snapshots the store into an ordered plan. Rows come out sorted by
// package name, case-insensitive ascending, each annotated with the names of
// the selections that require it.
func (b *PlanBuilder) Build(store *selection.Store) domain.DownloadPlan {
	entries := store.Entries()

	rows := make([]domain.PlanRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.PlanRow{
			Name:         e.Pack.Name,
			FileName:     e.Version.FileName,
			CustomPath:   e.Version.CustomPath,
			ProviderName: b.providers.DisplayName(e.Pack.Provider),
			RequiredBy:   store.RequiredByNames(e.Version.RequiredBy),
			AutoResolved: e.AutoResolved,
		})
	}

	return domain.DownloadPlan{
		Rows:        rows,
		Fingerprint: store.Fingerprint(),
	}
}
