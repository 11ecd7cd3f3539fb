package plan

import (
	"encoding/json"
	"time"
)

// Module is a named unit inside a plan. Lessons are titles only; there is
// no per-lesson state.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// Plan is a course offering. Slug uniqueness is not enforced anywhere;
// GetPlanBySlug returns the first match.
type Plan struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DurationWeeks int       `json:"durationWeeks"`
	Price         *float64  `json:"price"`
	Tags          []string  `json:"tags"`
	Modules       []Module  `json:"modules"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ModuleInput struct {
	ID      string   `json:"id" binding:"required,min=1"`
	Title   string   `json:"title" binding:"required,min=1"`
	Lessons []string `json:"lessons" binding:"required,min=1,dive,min=1"`
}

type CreatePlanRequest struct {
	Title         string        `json:"title" binding:"required,min=3"`
	Slug          string        `json:"slug" binding:"required,min=3,slug"`
	Description   string        `json:"description" binding:"required,min=10"`
	DurationWeeks int           `json:"durationWeeks" binding:"required,gt=0"`
	Price         *float64      `json:"price"`
	Tags          []string      `json:"tags" binding:"required,max=8,dive,min=1"`
	IsActive      *bool         `json:"isActive" binding:"required"`
	Modules       []ModuleInput `json:"modules" binding:"required,min=1,dive"`
}

// UpdatePlanRequest is a partial plan payload. Pointer fields distinguish
// "absent" from "present": absent fields keep their prior values. Only
// price is nullable in the schema, so only price needs OptionalPrice.
type UpdatePlanRequest struct {
	Title         *string       `json:"title" binding:"omitempty,min=3"`
	Slug          *string       `json:"slug" binding:"omitempty,min=3,slug"`
	Description   *string       `json:"description" binding:"omitempty,min=10"`
	DurationWeeks *int          `json:"durationWeeks" binding:"omitempty,gt=0"`
	Price         OptionalPrice `json:"price"`
	Tags          []string      `json:"tags" binding:"omitempty,max=8,dive,min=1"`
	IsActive      *bool         `json:"isActive"`
	Modules       []ModuleInput `json:"modules" binding:"omitempty,min=1,dive"`
}

// OptionalPrice distinguishes an absent price from an explicit null in a
// PATCH body: Set is true whenever the key was present, Value is nil for
// JSON null.
type OptionalPrice struct {
	Set   bool
	Value *float64
}

func (p *OptionalPrice) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	return json.Unmarshal(b, &p.Value)
}

func (p OptionalPrice) MarshalJSON() ([]byte, error) {
	if !p.Set || p.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*p.Value)
}

// Update is the store-level partial update derived from UpdatePlanRequest.
// ID and CreatedAt are deliberately not representable here.
type Update struct {
	Title         *string
	Slug          *string
	Description   *string
	DurationWeeks *int
	Price         OptionalPrice
	Tags          []string
	IsActive      *bool
	Modules       []Module
}

// ApplyUpdate merges a partial update into the plan: every present field
// overwrites, every absent field is retained. ID and CreatedAt are never
// touched.
func (p *Plan) ApplyUpdate(upd Update) {
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Slug != nil {
		p.Slug = *upd.Slug
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.DurationWeeks != nil {
		p.DurationWeeks = *upd.DurationWeeks
	}
	if upd.Price.Set {
		p.Price = upd.Price.Value
	}
	if upd.Tags != nil {
		p.Tags = upd.Tags
	}
	if upd.IsActive != nil {
		p.IsActive = *upd.IsActive
	}
	if upd.Modules != nil {
		p.Modules = upd.Modules
	}
}

// Clone returns a deep copy so store-owned state never leaks to callers.
func (p Plan) Clone() Plan {
	out := p
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	if p.Tags != nil {
		out.Tags = make([]string, len(p.Tags))
		copy(out.Tags, p.Tags)
	}
	if p.Modules != nil {
		out.Modules = make([]Module, len(p.Modules))
		for i, m := range p.Modules {
			out.Modules[i] = m
			if m.Lessons != nil {
				out.Modules[i].Lessons = make([]string, len(m.Lessons))
				copy(out.Modules[i].Lessons, m.Lessons)
			}
		}
	}
	return out
}

// ModulesFromInput converts request modules to domain modules.
func ModulesFromInput(in []ModuleInput) []Module {
	if in == nil {
		return nil
	}
	out := make([]Module, len(in))
	for i, m := range in {
		out[i] = Module{ID: m.ID, Title: m.Title, Lessons: m.Lessons}
	}
	return out
}
