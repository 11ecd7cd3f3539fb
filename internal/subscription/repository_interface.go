package subscription

import (
	"context"

	"planhub/internal/plan"
)

// Repository is the subscription side of the catalog store plus the plan
// lookup /me needs. Absence is a false return, never an error.
type Repository interface {
	GetSubscription(ctx context.Context) (Subscription, bool)
	CreateSubscription(ctx context.Context, planID string) (Subscription, bool)
	UpdateProgress(ctx context.Context, moduleID string, completed bool) bool
	GetPlanByID(ctx context.Context, id string) (plan.Plan, bool)
}
