package service

import "github.com/poolboard/poolboard-api/internal/models"

// OpenSwimCategoryID is the category behind the quick-view preset.
const OpenSwimCategoryID = "open"

// FilterSet holds the active filter criteria in selection order with toggle
// semantics: selecting an already-selected id removes it. An empty set
// matches everything. Category criteria snapshot their member activity ids at
// toggle time and are not re-evaluated afterwards.
type FilterSet struct {
	criteria  []models.FilterCriterion
	quickMode bool
}

// NewFilterSet returns an empty filter set.
func NewFilterSet() *FilterSet {
	return &FilterSet{}
}

// ToggleActivity adds or removes a single-activity criterion. Manual
// selection always leaves quick mode.
func (f *FilterSet) ToggleActivity(store *ScheduleService, activityID string) {
	f.quickMode = false
	for i, criterion := range f.criteria {
		if criterion.Type == models.FilterTypeActivity && criterion.ID == activityID {
			f.criteria = append(f.criteria[:i], f.criteria[i+1:]...)
			return
		}
	}

	name := activityID
	if activity, ok := store.Activity(activityID); ok {
		name = activity.Name
	}
	f.criteria = append(f.criteria, models.FilterCriterion{
		Type: models.FilterTypeActivity,
		ID:   activityID,
		Name: name,
	})
}

// ToggleCategory adds or removes a whole-category criterion, snapshotting the
// category's activity ids as of now.
func (f *FilterSet) ToggleCategory(store *ScheduleService, categoryID string) {
	f.quickMode = false
	for i, criterion := range f.criteria {
		if criterion.Type == models.FilterTypeCategory && criterion.ID == categoryID {
			f.criteria = append(f.criteria[:i], f.criteria[i+1:]...)
			return
		}
	}
	f.criteria = append(f.criteria, f.categoryCriterion(store, categoryID))
}

// EnableQuickMode replaces the active criteria with the Open-Swim preset.
// It is a no-op when the document has no such category.
func (f *FilterSet) EnableQuickMode(store *ScheduleService) bool {
	for _, category := range store.Categories() {
		if category.ID != OpenSwimCategoryID {
			continue
		}
		f.criteria = []models.FilterCriterion{f.categoryCriterion(store, category.ID)}
		f.quickMode = true
		return true
	}
	return false
}

// QuickMode reports whether the Open-Swim preset is active.
func (f *FilterSet) QuickMode() bool {
	return f.quickMode
}

// Matches reports whether an activity passes the active criteria. An empty
// set matches everything.
func (f *FilterSet) Matches(activityID string) bool {
	if len(f.criteria) == 0 {
		return true
	}
	for _, criterion := range f.criteria {
		if criterion.Type == models.FilterTypeActivity && criterion.ID == activityID {
			return true
		}
		if criterion.Type == models.FilterTypeCategory {
			for _, id := range criterion.ActivityIDs {
				if id == activityID {
					return true
				}
			}
		}
	}
	return false
}

// MatchingActivityIDs flattens the criteria into a deduplicated list of
// matching activity ids in selection order.
func (f *FilterSet) MatchingActivityIDs() []string {
	seen := make(map[string]struct{})
	var result []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	for _, criterion := range f.criteria {
		switch criterion.Type {
		case models.FilterTypeActivity:
			add(criterion.ID)
		case models.FilterTypeCategory:
			for _, id := range criterion.ActivityIDs {
				add(id)
			}
		}
	}
	return result
}

// Active returns the criteria in selection order.
func (f *FilterSet) Active() []models.FilterCriterion {
	return f.criteria
}

// Clear empties the filter set and leaves quick mode.
func (f *FilterSet) Clear() {
	f.criteria = nil
	f.quickMode = false
}

func (f *FilterSet) categoryCriterion(store *ScheduleService, categoryID string) models.FilterCriterion {
	name := categoryID
	for _, category := range store.Categories() {
		if category.ID == categoryID {
			name = category.Name
			break
		}
	}

	activities := store.ActivitiesByCategory(categoryID)
	ids := make([]string, 0, len(activities))
	for _, activity := range activities {
		ids = append(ids, activity.ID)
	}

	return models.FilterCriterion{
		Type:        models.FilterTypeCategory,
		ID:          categoryID,
		Name:        name,
		ActivityIDs: ids,
	}
}
