package catalog_test

import (
	"testing"

	"github.com/mdjurovic/kratos/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	e, ok := catalog.Find("bench-press")
	require.True(t, ok)
	assert.Equal(t, "Barbell Bench Press", e.Name)
	assert.Equal(t, "Chest", e.MuscleGroup)
	assert.Equal(t, catalog.Push, e.Category)

	_, ok = catalog.Find("underwater-basket-weaving")
	assert.False(t, ok)
}

func TestAll_UniqueIDs(t *testing.T) {
	all := catalog.All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, e := range all {
		assert.False(t, seen[e.ID], "duplicate exercise id: %s", e.ID)
		seen[e.ID] = true
		assert.True(t, e.Category.Valid(), "exercise %s has invalid category", e.ID)
	}
}

func TestByCategory(t *testing.T) {
	push := catalog.ByCategory(catalog.Push)
	require.NotEmpty(t, push)
	for _, e := range push {
		assert.Contains(t, []catalog.DayType{catalog.Push, catalog.Other}, e.Category)
	}

	// Other-category exercises ride along with every category
	var foundPlank bool
	for _, e := range push {
		if e.ID == "plank" {
			foundPlank = true
		}
	}
	assert.True(t, foundPlank)
}

func TestByCategory_OtherReturnsFullCatalog(t *testing.T) {
	other := catalog.ByCategory(catalog.Other)
	assert.Equal(t, len(catalog.All()), len(other))
}

func TestDayTypeValid(t *testing.T) {
	assert.True(t, catalog.Push.Valid())
	assert.True(t, catalog.Other.Valid())
	assert.False(t, catalog.DayType("Cardio").Valid())
}
