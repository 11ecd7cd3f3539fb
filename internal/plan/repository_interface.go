package plan

import "context"

// Repository is the plan side of the catalog store. Absence is reported
// with a false return, never an error; the service layer translates.
type Repository interface {
	ListPlans(ctx context.Context, query, tag string, includeInactive bool) []Plan
	GetPlanBySlug(ctx context.Context, slug string) (Plan, bool)
	GetPlanByID(ctx context.Context, id string) (Plan, bool)
	CreatePlan(ctx context.Context, p Plan) Plan
	UpdatePlan(ctx context.Context, id string, upd Update) (Plan, bool)
	DeletePlan(ctx context.Context, id string) bool
}
