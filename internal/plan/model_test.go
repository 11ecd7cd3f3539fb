package plan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *float64
		wantErr   bool
	}{
		{name: "absent", body: `{}`, wantSet: false},
		{name: "null", body: `{"price": null}`, wantSet: true, wantValue: nil},
		{name: "number", body: `{"price": 49.5}`, wantSet: true, wantValue: ptr(49.5)},
		{name: "not a number", body: `{"price": "cheap"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Price OptionalPrice `json:"price"`
			}
			err := json.Unmarshal([]byte(tt.body), &payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, payload.Price.Set)
			if tt.wantValue == nil {
				assert.Nil(t, payload.Price.Value)
			} else {
				require.NotNil(t, payload.Price.Value)
				assert.Equal(t, *tt.wantValue, *payload.Price.Value)
			}
		})
	}
}

func TestApplyUpdate(t *testing.T) {
	base := func() Plan {
		return Plan{
			ID:            "id-1",
			Slug:          "base",
			Title:         "Base",
			Description:   "Base description text.",
			DurationWeeks: 4,
			Price:         ptr(10.0),
			Tags:          []string{"A"},
			Modules:       []Module{{ID: "m1", Title: "One", Lessons: []string{"L"}}},
			IsActive:      true,
			CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("empty update retains everything", func(t *testing.T) {
		p := base()
		p.ApplyUpdate(Update{})
		assert.Equal(t, base(), p)
	})

	t.Run("present fields overwrite", func(t *testing.T) {
		p := base()
		active := false
		p.ApplyUpdate(Update{
			Title:    strPtr("New Title"),
			Tags:     []string{"B", "C"},
			IsActive: &active,
		})
		assert.Equal(t, "New Title", p.Title)
		assert.Equal(t, []string{"B", "C"}, p.Tags)
		assert.False(t, p.IsActive)
		// Untouched fields retained.
		assert.Equal(t, "base", p.Slug)
		assert.Equal(t, 4, p.DurationWeeks)
		assert.Equal(t, "id-1", p.ID)
		assert.Equal(t, base().CreatedAt, p.CreatedAt)
	})

	t.Run("price null clears, absent retains", func(t *testing.T) {
		p := base()
		p.ApplyUpdate(Update{Price: OptionalPrice{}})
		require.NotNil(t, p.Price)

		p.ApplyUpdate(Update{Price: OptionalPrice{Set: true, Value: nil}})
		assert.Nil(t, p.Price)

		p.ApplyUpdate(Update{Price: OptionalPrice{Set: true, Value: ptr(99.0)}})
		require.NotNil(t, p.Price)
		assert.Equal(t, 99.0, *p.Price)
	})

	t.Run("modules replace wholesale", func(t *testing.T) {
		p := base()
		p.ApplyUpdate(Update{Modules: []Module{
			{ID: "n1", Title: "New", Lessons: []string{"X"}},
			{ID: "n2", Title: "Newer", Lessons: []string{"Y"}},
		}})
		require.Len(t, p.Modules, 2)
		assert.Equal(t, "n1", p.Modules[0].ID)
	})
}

func TestClone_Independence(t *testing.T) {
	p := Plan{
		Slug:    "clone",
		Price:   ptr(1.0),
		Tags:    []string{"A"},
		Modules: []Module{{ID: "m1", Lessons: []string{"L"}}},
	}

	c := p.Clone()
	c.Tags[0] = "mutated"
	c.Modules[0].Lessons[0] = "mutated"
	*c.Price = 2.0

	assert.Equal(t, "A", p.Tags[0])
	assert.Equal(t, "L", p.Modules[0].Lessons[0])
	assert.Equal(t, 1.0, *p.Price)
}

func TestClone_PreservesEmptySlices(t *testing.T) {
	p := Plan{
		Tags:    []string{},
		Modules: []Module{{ID: "m1", Lessons: []string{}}},
	}

	c := p.Clone()

	// Empty must stay empty, not become nil: the wire format always
	// serializes arrays.
	require.NotNil(t, c.Tags)
	assert.Len(t, c.Tags, 0)
	require.NotNil(t, c.Modules[0].Lessons)
	assert.Len(t, c.Modules[0].Lessons, 0)
}

func ptr(v float64) *float64 { return &v }
func strPtr(s string) *string { return &s }
