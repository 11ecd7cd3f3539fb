package subscription

import (
	"context"
	"errors"

	"planhub/internal/plan"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	// ErrOrphanedSubscription means the subscription references a plan
	// that was deleted after subscribing. Deletion does not cascade, so
	// this state is reachable through the admin API.
	ErrOrphanedSubscription = errors.New("subscribed plan not found")
	ErrProgressNotFound     = errors.New("subscription or module not found")
)

type Service interface {
	Subscribe(ctx context.Context, planID string) (*Subscription, error)
	// GetMe returns the current subscription and its plan. Both nil with
	// a nil error means the user never subscribed.
	GetMe(ctx context.Context) (*Subscription, *plan.Plan, error)
	UpdateProgress(ctx context.Context, moduleID string, completed bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(ctx context.Context, planID string) (*Subscription, error) {
	sub, ok := s.repo.CreateSubscription(ctx, planID)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &sub, nil
}

func (s *service) GetMe(ctx context.Context) (*Subscription, *plan.Plan, error) {
	sub, ok := s.repo.GetSubscription(ctx)
	if !ok {
		return nil, nil, nil
	}

	p, ok := s.repo.GetPlanByID(ctx, sub.PlanID)
	if !ok {
		return nil, nil, ErrOrphanedSubscription
	}
	return &sub, &p, nil
}

func (s *service) UpdateProgress(ctx context.Context, moduleID string, completed bool) error {
	if !s.repo.UpdateProgress(ctx, moduleID, completed) {
		return ErrProgressNotFound
	}
	return nil
}
