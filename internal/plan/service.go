package plan

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("plan not found")

type Service interface {
	ListPublic(ctx context.Context, query, tag string) []Plan
	ListAll(ctx context.Context) []Plan
	GetBySlug(ctx context.Context, slug string) (*Plan, error)
	Create(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	Update(ctx context.Context, id string, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListPublic(ctx context.Context, query, tag string) []Plan {
	return s.repo.ListPlans(ctx, query, tag, false)
}

func (s *service) ListAll(ctx context.Context) []Plan {
	return s.repo.ListPlans(ctx, "", "", true)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Plan, error) {
	p, ok := s.repo.GetPlanBySlug(ctx, slug)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &p, nil
}

func (s *service) Create(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	created := s.repo.CreatePlan(ctx, Plan{
		Slug:          req.Slug,
		Title:         req.Title,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Price:         req.Price,
		Tags:          req.Tags,
		Modules:       ModulesFromInput(req.Modules),
		IsActive:      *req.IsActive,
	})
	return &created, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePlanRequest) (*Plan, error) {
	upd := Update{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Price:         req.Price,
		Tags:          req.Tags,
		IsActive:      req.IsActive,
		Modules:       ModulesFromInput(req.Modules),
	}
	updated, ok := s.repo.UpdatePlan(ctx, id, upd)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.repo.DeletePlan(ctx, id) {
		return ErrPlanNotFound
	}
	return nil
}
