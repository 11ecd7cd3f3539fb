// Package catalog holds the in-memory catalog state: the plan collection
// and the single current subscription. All reads and writes to that data
// go through Store, which is the only mutual-exclusion domain in the
// process. One lock covers both collections so interleaved handlers
// cannot produce lost updates.
package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"planhub/internal/plan"
	"planhub/internal/subscription"
)

// Store owns all catalog state for the lifetime of the process. There is
// no persistence; absence is reported with a false second return, never
// an error. Methods take a context to satisfy the domain repository
// interfaces, the in-memory implementation has no use for it.
type Store struct {
	mu           sync.RWMutex
	plans        []plan.Plan
	subscription *subscription.Subscription
}

func New() *Store {
	return &Store{}
}

// ListPlans applies conjunctive filters in insertion order: a
// case-insensitive substring match on title, an exact case-sensitive tag
// match, and the isActive gate unless includeInactive is set.
func (s *Store) ListPlans(_ context.Context, query, tag string, includeInactive bool) []plan.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowerQuery := strings.ToLower(query)
	result := []plan.Plan{}
	for _, p := range s.plans {
		if !includeInactive && !p.IsActive {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), lowerQuery) {
			continue
		}
		if tag != "" && !containsTag(p.Tags, tag) {
			continue
		}
		result = append(result, p.Clone())
	}
	return result
}

// GetPlanBySlug returns the first plan with the given slug. Slugs are not
// unique, duplicates resolve to whichever was inserted first.
func (s *Store) GetPlanBySlug(_ context.Context, slug string) (plan.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.Slug == slug {
			return p.Clone(), true
		}
	}
	return plan.Plan{}, false
}

func (s *Store) GetPlanByID(_ context.Context, id string) (plan.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return plan.Plan{}, false
}

// CreatePlan assigns a fresh id and creation time, then appends. Slug
// uniqueness is not checked.
func (s *Store) CreatePlan(_ context.Context, p plan.Plan) plan.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	s.plans = append(s.plans, p.Clone())
	return p
}

// UpdatePlan shallow-merges the present fields of upd into the stored
// plan. ID and CreatedAt are never overwritten.
func (s *Store) UpdatePlan(_ context.Context, id string, upd plan.Update) (plan.Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans[i].ApplyUpdate(upd)
			return s.plans[i].Clone(), true
		}
	}
	return plan.Plan{}, false
}

// DeletePlan removes the plan if present. It does not cascade to a
// subscription referencing the deleted plan; /me surfaces that orphan.
func (s *Store) DeletePlan(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) GetSubscription(_ context.Context) (subscription.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.subscription == nil {
		return subscription.Subscription{}, false
	}
	return s.subscription.Clone(), true
}

// CreateSubscription enrolls the single user in the given plan, building
// one progress entry per module in curriculum order. Any previous
// subscription is replaced unconditionally. Returns false when the plan
// does not exist.
func (s *Store) CreateSubscription(_ context.Context, planID string) (subscription.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *plan.Plan
	for i := range s.plans {
		if s.plans[i].ID == planID {
			target = &s.plans[i]
			break
		}
	}
	if target == nil {
		return subscription.Subscription{}, false
	}

	progress := make([]subscription.ProgressEntry, len(target.Modules))
	for i, m := range target.Modules {
		progress[i] = subscription.ProgressEntry{ModuleID: m.ID, Completed: false}
	}

	sub := subscription.Subscription{
		ID:           uuid.NewString(),
		PlanID:       target.ID,
		SubscribedAt: time.Now().UTC(),
		Progress:     progress,
	}
	s.subscription = &sub
	return sub.Clone(), true
}

// UpdateProgress flips the completed flag of exactly one progress entry.
// Returns false when there is no subscription or no entry matches.
func (s *Store) UpdateProgress(_ context.Context, moduleID string, completed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscription == nil {
		return false
	}
	for i := range s.subscription.Progress {
		if s.subscription.Progress[i].ModuleID == moduleID {
			s.subscription.Progress[i].Completed = completed
			return true
		}
	}
	return false
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
