package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolboard/poolboard-api/internal/models"
)

func TestFilterSetEmptyMatchesEverything(t *testing.T) {
	filters := NewFilterSet()

	assert.True(t, filters.Matches("lap"))
	assert.True(t, filters.Matches("anything"))
	assert.Empty(t, filters.Active())
	assert.Empty(t, filters.MatchingActivityIDs())
}

func TestFilterSetToggleActivityTwiceIsIdentity(t *testing.T) {
	store := NewScheduleService(testDocument())
	filters := NewFilterSet()

	filters.ToggleActivity(store, "lap")
	require.Len(t, filters.Active(), 1)
	assert.True(t, filters.Matches("lap"))
	assert.False(t, filters.Matches("lessons"))

	filters.ToggleActivity(store, "lap")
	assert.Empty(t, filters.Active())
	assert.True(t, filters.Matches("lessons"), "empty set matches everything again")
}

func TestFilterSetCategorySnapshot(t *testing.T) {
	doc := testDocument()
	store := NewScheduleService(doc)
	filters := NewFilterSet()

	filters.ToggleCategory(store, "open")
	require.Len(t, filters.Active(), 1)
	assert.Equal(t, models.FilterTypeCategory, filters.Active()[0].Type)
	assert.Equal(t, "Open Swim", filters.Active()[0].Name)
	assert.ElementsMatch(t, []string{"lap", "family"}, filters.Active()[0].ActivityIDs)

	assert.True(t, filters.Matches("lap"))
	assert.True(t, filters.Matches("family"))
	assert.False(t, filters.Matches("lessons"))
}

func TestFilterSetSelectionOrderPreserved(t *testing.T) {
	store := NewScheduleService(testDocument())
	filters := NewFilterSet()

	filters.ToggleActivity(store, "lessons")
	filters.ToggleCategory(store, "open")

	assert.Equal(t, []string{"lessons", "lap", "family"}, filters.MatchingActivityIDs())
}

func TestFilterSetMatchingIDsDeduped(t *testing.T) {
	store := NewScheduleService(testDocument())
	filters := NewFilterSet()

	filters.ToggleActivity(store, "lap")
	filters.ToggleCategory(store, "open") // also contains lap

	assert.Equal(t, []string{"lap", "family"}, filters.MatchingActivityIDs())
}

func TestFilterSetQuickMode(t *testing.T) {
	store := NewScheduleService(testDocument())
	filters := NewFilterSet()

	filters.ToggleActivity(store, "lessons")
	require.True(t, filters.EnableQuickMode(store))
	assert.True(t, filters.QuickMode())

	// The preset replaces prior selections.
	require.Len(t, filters.Active(), 1)
	assert.Equal(t, OpenSwimCategoryID, filters.Active()[0].ID)
	assert.False(t, filters.Matches("lessons"))

	// Any manual toggle leaves quick mode.
	filters.ToggleActivity(store, "lessons")
	assert.False(t, filters.QuickMode())
}

func TestFilterSetQuickModeWithoutOpenCategory(t *testing.T) {
	doc := testDocument()
	doc.ActivityCategories = []models.Category{{ID: "programs", Name: "Programs"}}
	store := NewScheduleService(doc)
	filters := NewFilterSet()

	filters.ToggleActivity(store, "lap")
	assert.False(t, filters.EnableQuickMode(store))
	assert.False(t, filters.QuickMode())
	require.Len(t, filters.Active(), 1, "failed preset leaves selections alone")
}

func TestFilterSetClear(t *testing.T) {
	store := NewScheduleService(testDocument())
	filters := NewFilterSet()

	filters.EnableQuickMode(store)
	filters.Clear()

	assert.Empty(t, filters.Active())
	assert.False(t, filters.QuickMode())
	assert.True(t, filters.Matches("lessons"))
}

func TestFilterSetUnknownActivityStillFilters(t *testing.T) {
	store := NewScheduleService(testDocument())
	filters := NewFilterSet()

	filters.ToggleActivity(store, "ghost")
	require.Len(t, filters.Active(), 1)
	assert.Equal(t, "ghost", filters.Active()[0].Name)
	assert.True(t, filters.Matches("ghost"))
	assert.False(t, filters.Matches("lap"))
}
