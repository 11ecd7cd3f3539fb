package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPlans(ctx context.Context, query, tag string, includeInactive bool) []Plan {
	args := m.Called(ctx, query, tag, includeInactive)
	return args.Get(0).([]Plan)
}

func (m *MockRepository) GetPlanBySlug(ctx context.Context, slug string) (Plan, bool) {
	args := m.Called(ctx, slug)
	return args.Get(0).(Plan), args.Bool(1)
}

func (m *MockRepository) GetPlanByID(ctx context.Context, id string) (Plan, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(Plan), args.Bool(1)
}

func (m *MockRepository) CreatePlan(ctx context.Context, p Plan) Plan {
	args := m.Called(ctx, p)
	return args.Get(0).(Plan)
}

func (m *MockRepository) UpdatePlan(ctx context.Context, id string, upd Update) (Plan, bool) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(Plan), args.Bool(1)
}

func (m *MockRepository) DeletePlan(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func TestService_ListPublic(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("ListPlans", mock.Anything, "react", "Frontend", false).
		Return([]Plan{{ID: "1", Title: "React Fundamentals"}})

	plans := service.ListPublic(context.Background(), "react", "Frontend")

	assert.Len(t, plans, 1)
	mockRepo.AssertExpectations(t)
}

func TestService_ListAll(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("ListPlans", mock.Anything, "", "", true).
		Return([]Plan{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	plans := service.ListAll(context.Background())

	assert.Len(t, plans, 3)
	mockRepo.AssertExpectations(t)
}

func TestService_GetBySlug(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		setupMock func(*MockRepository)
		wantErr   error
	}{
		{
			name: "found",
			slug: "react-fundamentals",
			setupMock: func(m *MockRepository) {
				m.On("GetPlanBySlug", mock.Anything, "react-fundamentals").
					Return(Plan{ID: "1", Slug: "react-fundamentals"}, true)
			},
		},
		{
			name: "not found",
			slug: "missing",
			setupMock: func(m *MockRepository) {
				m.On("GetPlanBySlug", mock.Anything, "missing").Return(Plan{}, false)
			},
			wantErr: ErrPlanNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo)
			p, err := service.GetBySlug(context.Background(), tt.slug)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, tt.slug, p.Slug)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	active := true
	req := CreatePlanRequest{
		Title:         "Go Basics",
		Slug:          "go-basics",
		Description:   "An introduction to the Go language.",
		DurationWeeks: 4,
		Tags:          []string{"Go"},
		IsActive:      &active,
		Modules: []ModuleInput{
			{ID: "m1", Title: "Setup", Lessons: []string{"Install Go"}},
		},
	}

	mockRepo.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p Plan) bool {
		return p.Slug == "go-basics" && p.ID == "" && len(p.Modules) == 1 && p.IsActive
	})).Return(Plan{ID: "generated", Slug: "go-basics", Title: "Go Basics"})

	created, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "generated", created.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*MockRepository)
		wantErr   error
	}{
		{
			name: "found",
			id:   "1",
			setupMock: func(m *MockRepository) {
				m.On("UpdatePlan", mock.Anything, "1", mock.MatchedBy(func(u Update) bool {
					return u.Title != nil && *u.Title == "New"
				})).Return(Plan{ID: "1", Title: "New"}, true)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(m *MockRepository) {
				m.On("UpdatePlan", mock.Anything, "missing", mock.Anything).Return(Plan{}, false)
			},
			wantErr: ErrPlanNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo)
			title := "New"
			updated, err := service.Update(context.Background(), tt.id, UpdatePlanRequest{Title: &title})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "New", updated.Title)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("DeletePlan", mock.Anything, "1").Return(true)
	mockRepo.On("DeletePlan", mock.Anything, "missing").Return(false)

	assert.NoError(t, service.Delete(context.Background(), "1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "missing"), ErrPlanNotFound)
	mockRepo.AssertExpectations(t)
}
