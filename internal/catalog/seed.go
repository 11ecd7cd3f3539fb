package catalog

import (
	"time"

	"planhub/internal/plan"
)

// NewSeeded returns a store preloaded with the fixed starter catalog.
// Seed ids are stable ("1".."3") so they survive restarts predictably;
// only admin-created plans get generated ids.
func NewSeeded() *Store {
	s := New()
	now := time.Now().UTC()
	price := func(v float64) *float64 { return &v }

	s.plans = []plan.Plan{
		{
			ID:            "1",
			Slug:          "react-fundamentals",
			Title:         "React Fundamentals",
			Description:   "Learn the core concepts of React including components, state, props, and hooks. Perfect for beginners.",
			DurationWeeks: 8,
			Price:         price(299),
			Tags:          []string{"React", "JavaScript", "Frontend", "Beginner"},
			IsActive:      true,
			CreatedAt:     now,
			Modules: []plan.Module{
				{ID: "m1-1", Title: "Getting Started", Lessons: []string{"Intro to React", "Setup", "First Component"}},
				{ID: "m1-2", Title: "State and Props", Lessons: []string{"useState Hook", "Passing Props", "Event Handling"}},
				{ID: "m1-3", Title: "Advanced Hooks", Lessons: []string{"useEffect", "useContext", "Custom Hooks"}},
			},
		},
		{
			ID:            "2",
			Slug:          "nextjs-mastery",
			Title:         "Next.js Mastery",
			Description:   "Master Next.js from basics to advanced concepts including App Router, Server Components, and deployment.",
			DurationWeeks: 12,
			Price:         price(499),
			Tags:          []string{"Next.js", "React", "Full-Stack", "Advanced"},
			IsActive:      true,
			CreatedAt:     now,
			Modules: []plan.Module{
				{ID: "m2-1", Title: "App Router Basics", Lessons: []string{"File-based Routing", "Layouts and Pages"}},
				{ID: "m2-2", Title: "Server Components", Lessons: []string{"Data Fetching", "Server vs Client"}},
				{ID: "m2-3", Title: "API Route Handlers", Lessons: []string{"Creating Endpoints", "Dynamic Routes"}},
			},
		},
		{
			ID:            "3",
			Slug:          "typescript-essentials",
			Title:         "TypeScript Essentials",
			Description:   "Learn TypeScript from scratch and how to integrate it with React applications for a better dev experience.",
			DurationWeeks: 6,
			Price:         price(199),
			Tags:          []string{"TypeScript", "Types", "Beginner"},
			IsActive:      false,
			CreatedAt:     now,
			Modules: []plan.Module{
				{ID: "m3-1", Title: "TypeScript Basics", Lessons: []string{"Basic Types", "Interfaces", "Functions"}},
				{ID: "m3-2", Title: "Advanced Types", Lessons: []string{"Generics", "Utility Types"}},
			},
		},
	}
	return s
}
