package ports

import (
	"context"

	"go.loadout.dev/loadout/internal/core/domain"
)

// PlanReviewer presents a download plan for user confirmation.
//
//go:generate go run go.uber.org/mock/mockgen -source=reviewer.go -destination=mocks/mock_reviewer.go -package=mocks
type PlanReviewer interface {
	// Review blocks until the user accepts or cancels the plan. On
	// acceptance the decision carries the package names the user
	// deselected; those remain untouched in the plan itself.
	Review(ctx context.Context, plan domain.DownloadPlan) (domain.ReviewDecision, error)
}
