package service

import (
	"sort"
	"time"

	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/pkg/timeutil"
)

// ScheduleService indexes one loaded schedule document and answers
// point-in-time and range queries. It is read-only after construction and
// safe for concurrent use. Lookup misses return nil/empty values, never
// errors: the caller decides the fallback.
type ScheduleService struct {
	doc        *models.ScheduleDocument
	activities map[string]models.Activity
	sections   map[string]models.Section
}

// NewScheduleService builds the lookup indexes for a document.
func NewScheduleService(doc *models.ScheduleDocument) *ScheduleService {
	if doc == nil {
		doc = &models.ScheduleDocument{Schedules: map[string][]models.ScheduleEntry{}}
	}
	s := &ScheduleService{
		doc:        doc,
		activities: make(map[string]models.Activity, len(doc.Activities)),
		sections:   make(map[string]models.Section, len(doc.PoolLayout.Sections)),
	}
	for _, activity := range doc.Activities {
		s.activities[activity.ID] = activity
	}
	for _, section := range doc.PoolLayout.Sections {
		s.sections[section.ID] = section
	}
	return s
}

// Document returns the underlying immutable document.
func (s *ScheduleService) Document() *models.ScheduleDocument {
	return s.doc
}

// Activities returns all activities in document order.
func (s *ScheduleService) Activities() []models.Activity {
	return s.doc.Activities
}

// Categories returns all activity categories.
func (s *ScheduleService) Categories() []models.Category {
	return s.doc.ActivityCategories
}

// ActivitiesByCategory filters activities belonging to one category.
func (s *ScheduleService) ActivitiesByCategory(categoryID string) []models.Activity {
	var result []models.Activity
	for _, activity := range s.doc.Activities {
		if activity.Category == categoryID {
			result = append(result, activity)
		}
	}
	return result
}

// Activity resolves an activity by id.
func (s *ScheduleService) Activity(id string) (models.Activity, bool) {
	activity, ok := s.activities[id]
	return activity, ok
}

// Section resolves a pool section by id.
func (s *ScheduleService) Section(id string) (models.Section, bool) {
	section, ok := s.sections[id]
	return section, ok
}

// PoolLayout returns the facility floorplan.
func (s *ScheduleService) PoolLayout() models.PoolLayout {
	return s.doc.PoolLayout
}

// ScheduleForDate returns the entries for a date, or an empty slice for
// unknown dates.
func (s *ScheduleService) ScheduleForDate(date string) []models.ScheduleEntry {
	return s.doc.Schedules[date]
}

// AvailableDates lists every date that has schedule entries, sorted.
func (s *ScheduleService) AvailableDates() []string {
	dates := make([]string, 0, len(s.doc.Schedules))
	for date := range s.doc.Schedules {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// LaneStatus finds the entry occupying a lane at the given minute. The first
// entry in scan order whose [start, end) interval contains the instant wins.
// When nothing contains it but an entry ends exactly at the queried minute,
// that entry is returned instead: the lane keeps showing the just-ended
// activity at the closing boundary rather than flipping to "closed".
func (s *ScheduleService) LaneStatus(date, sectionID string, lane models.Lane, timeMinutes int) *models.LaneStatus {
	var lastEnding *models.ScheduleEntry

	for _, entry := range s.ScheduleForDate(date) {
		if entry.Section != sectionID || !entry.HasLane(lane) {
			continue
		}

		startMinutes := timeutil.TimeToMinutes(entry.Start)
		endMinutes := timeutil.TimeToMinutes(entry.End)

		if timeMinutes >= startMinutes && timeMinutes < endMinutes {
			entry := entry
			return &models.LaneStatus{Activity: s.resolveActivity(entry.Activity), Entry: entry}
		}

		if endMinutes == timeMinutes {
			entry := entry
			lastEnding = &entry
		}
	}

	if lastEnding != nil {
		return &models.LaneStatus{Activity: s.resolveActivity(lastEnding.Activity), Entry: *lastEnding}
	}
	return nil
}

// LaneSchedule returns the full-day schedule for one lane, each entry paired
// with its resolved activity, sorted ascending by start time.
func (s *ScheduleService) LaneSchedule(date, sectionID string, lane models.Lane) []models.LaneStatus {
	var result []models.LaneStatus
	for _, entry := range s.ScheduleForDate(date) {
		if entry.Section != sectionID || !entry.HasLane(lane) {
			continue
		}
		result = append(result, models.LaneStatus{Activity: s.resolveActivity(entry.Activity), Entry: entry})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return timeutil.TimeToMinutes(result[i].Entry.Start) < timeutil.TimeToMinutes(result[j].Entry.Start)
	})
	return result
}

// ActivitiesAtTime returns every activity with an entry covering the given
// minute, deduplicated by id in encounter order, regardless of section.
func (s *ScheduleService) ActivitiesAtTime(date string, timeMinutes int) []models.Activity {
	seen := make(map[string]struct{})
	var result []models.Activity

	for _, entry := range s.ScheduleForDate(date) {
		startMinutes := timeutil.TimeToMinutes(entry.Start)
		endMinutes := timeutil.TimeToMinutes(entry.End)
		if timeMinutes < startMinutes || timeMinutes >= endMinutes {
			continue
		}
		if _, ok := seen[entry.Activity]; ok {
			continue
		}
		seen[entry.Activity] = struct{}{}
		result = append(result, *s.resolveActivity(entry.Activity))
	}
	return result
}

// FindActivitySlots returns all entries for one activity on a date in stored
// order.
func (s *ScheduleService) FindActivitySlots(date, activityID string) []models.ScheduleEntry {
	var result []models.ScheduleEntry
	for _, entry := range s.ScheduleForDate(date) {
		if entry.Activity == activityID {
			result = append(result, entry)
		}
	}
	return result
}

// PoolHours resolves open/close minutes for a date based on its day of week,
// or nil when the facility has no hours configured for that day type.
func (s *ScheduleService) PoolHours(date string) *models.PoolHours {
	hours := s.doc.FacilityInfo.Hours
	if hours == nil {
		return nil
	}

	parsed, err := time.Parse(timeutil.DateLayout, date)
	if err != nil {
		return nil
	}

	var spec *models.HoursSpec
	switch parsed.Weekday() {
	case time.Sunday:
		spec = hours.Sunday
	case time.Saturday:
		spec = hours.Saturday
	default:
		spec = hours.Weekday
	}
	if spec == nil {
		return nil
	}

	return &models.PoolHours{
		Open:  timeutil.TimeToMinutes(spec.Open),
		Close: timeutil.TimeToMinutes(spec.Close),
	}
}

// IsPoolOpen reports whether the pool is open at the given minute.
func (s *ScheduleService) IsPoolOpen(date string, timeMinutes int) bool {
	hours := s.PoolHours(date)
	if hours == nil {
		return false
	}
	return timeMinutes >= hours.Open && timeMinutes < hours.Close
}

// resolveActivity maps an id to its activity, degrading to a raw-id
// placeholder for unknown ids so callers always have something to display.
func (s *ScheduleService) resolveActivity(id string) *models.Activity {
	if activity, ok := s.activities[id]; ok {
		return &activity
	}
	return &models.Activity{ID: id, Name: id}
}
