package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolboard/poolboard-api/internal/models"
)

func testDocument() *models.ScheduleDocument {
	return &models.ScheduleDocument{
		FacilityInfo: models.FacilityInfo{
			Name: "Test Pool",
			Hours: &models.WeeklyHours{
				Weekday:  &models.HoursSpec{Open: "06:00", Close: "22:00"},
				Saturday: &models.HoursSpec{Open: "08:00", Close: "20:00"},
			},
		},
		Activities: []models.Activity{
			{ID: "lap", Name: "Lap Swim", Color: "#0000ff", Category: "open"},
			{ID: "family", Name: "Family Swim", Color: "#00ff00", Category: "open"},
			{ID: "lessons", Name: "Swim Lessons", Color: "#ff0000", Category: "programs"},
		},
		ActivityCategories: []models.Category{
			{ID: "open", Name: "Open Swim"},
			{ID: "programs", Name: "Programs"},
		},
		PoolLayout: models.PoolLayout{Sections: []models.Section{
			{ID: "main", Name: "Main Pool", Lanes: []models.Lane{"1", "2", "3", "4"}},
			{ID: "therapy", Name: "Therapy Pool", Lanes: []models.Lane{"A", "B"}},
		}},
		Schedules: map[string][]models.ScheduleEntry{
			// 2026-03-02 is a Monday.
			"2026-03-02": {
				{Section: "main", Lanes: []models.Lane{"1", "2"}, Start: "09:00", End: "10:00", Activity: "lap"},
				{Section: "main", Lanes: []models.Lane{"1"}, Start: "10:00", End: "11:00", Activity: "lessons"},
				{Section: "main", Lanes: []models.Lane{"3"}, Start: "09:30", End: "10:30", Activity: "family"},
				{Section: "therapy", Lanes: []models.Lane{"A"}, Start: "09:30", End: "10:30", Activity: "lap"},
			},
			"2026-03-01": {
				{Section: "main", Lanes: []models.Lane{"1"}, Start: "10:00", End: "12:00", Activity: "family"},
			},
		},
	}
}

func TestLaneStatusContainmentWinsOverEndingEntry(t *testing.T) {
	svc := NewScheduleService(testDocument())

	// 10:00 sits on the boundary: lap ends, lessons begins. The containing
	// entry wins.
	status := svc.LaneStatus("2026-03-02", "main", "1", 600)
	require.NotNil(t, status)
	assert.Equal(t, "lessons", status.Activity.ID)
	assert.Equal(t, "10:00", status.Entry.Start)
}

func TestLaneStatusKeepsJustEndedEntryAtBoundary(t *testing.T) {
	svc := NewScheduleService(testDocument())

	// Lane 2 has only the 09:00-10:00 entry. At its exact end the lane still
	// reports it instead of flipping to empty.
	status := svc.LaneStatus("2026-03-02", "main", "2", 600)
	require.NotNil(t, status)
	assert.Equal(t, "lap", status.Activity.ID)

	assert.Nil(t, svc.LaneStatus("2026-03-02", "main", "2", 601))
	assert.Nil(t, svc.LaneStatus("2026-03-02", "main", "2", 539))
}

func TestLaneStatusStartBoundaryInclusive(t *testing.T) {
	svc := NewScheduleService(testDocument())

	status := svc.LaneStatus("2026-03-02", "main", "2", 540)
	require.NotNil(t, status)
	assert.Equal(t, "lap", status.Activity.ID)
}

func TestLaneStatusNumericAndStringLanesMatch(t *testing.T) {
	svc := NewScheduleService(testDocument())

	// "01" and "1" identify the same lane.
	status := svc.LaneStatus("2026-03-02", "main", models.Lane("01"), 570)
	require.NotNil(t, status)
	assert.Equal(t, "lap", status.Activity.ID)
}

func TestLaneStatusUnknownDate(t *testing.T) {
	svc := NewScheduleService(testDocument())
	assert.Nil(t, svc.LaneStatus("2026-07-04", "main", "1", 600))
}

func TestLaneScheduleSortedByStart(t *testing.T) {
	svc := NewScheduleService(testDocument())

	schedule := svc.LaneSchedule("2026-03-02", "main", "1")
	require.Len(t, schedule, 2)
	assert.Equal(t, "09:00", schedule[0].Entry.Start)
	assert.Equal(t, "10:00", schedule[1].Entry.Start)
}

func TestActivitiesAtTimeDedupsAcrossSections(t *testing.T) {
	svc := NewScheduleService(testDocument())

	// At 09:45 lap runs in both main and therapy; it must appear once.
	activities := svc.ActivitiesAtTime("2026-03-02", 585)
	require.Len(t, activities, 2)
	assert.Equal(t, "lap", activities[0].ID)
	assert.Equal(t, "family", activities[1].ID)
}

func TestActivitiesAtTimeUnknownActivityPlaceholder(t *testing.T) {
	doc := testDocument()
	doc.Schedules["2026-03-02"] = append(doc.Schedules["2026-03-02"], models.ScheduleEntry{
		Section: "main", Lanes: []models.Lane{"4"}, Start: "09:00", End: "10:00", Activity: "mystery",
	})
	svc := NewScheduleService(doc)

	activities := svc.ActivitiesAtTime("2026-03-02", 570)
	var found *models.Activity
	for i := range activities {
		if activities[i].ID == "mystery" {
			found = &activities[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "mystery", found.Name)
}

func TestPoolHoursDayBuckets(t *testing.T) {
	svc := NewScheduleService(testDocument())

	monday := svc.PoolHours("2026-03-02")
	require.NotNil(t, monday)
	assert.Equal(t, 360, monday.Open)
	assert.Equal(t, 1320, monday.Close)

	saturday := svc.PoolHours("2026-03-07")
	require.NotNil(t, saturday)
	assert.Equal(t, 480, saturday.Open)

	// No Sunday hours configured.
	assert.Nil(t, svc.PoolHours("2026-03-01"))
	assert.Nil(t, svc.PoolHours("not-a-date"))
}

func TestIsPoolOpenBoundaries(t *testing.T) {
	svc := NewScheduleService(testDocument())

	assert.True(t, svc.IsPoolOpen("2026-03-02", 360))
	assert.True(t, svc.IsPoolOpen("2026-03-02", 1319))
	assert.False(t, svc.IsPoolOpen("2026-03-02", 1320))
	assert.False(t, svc.IsPoolOpen("2026-03-02", 359))
	assert.False(t, svc.IsPoolOpen("2026-03-01", 600))
}

func TestAvailableDatesSorted(t *testing.T) {
	svc := NewScheduleService(testDocument())
	assert.Equal(t, []string{"2026-03-01", "2026-03-02"}, svc.AvailableDates())
}

func TestActivitiesByCategory(t *testing.T) {
	svc := NewScheduleService(testDocument())

	open := svc.ActivitiesByCategory("open")
	require.Len(t, open, 2)
	assert.Equal(t, "lap", open[0].ID)
	assert.Empty(t, svc.ActivitiesByCategory("missing"))
}

func TestNewScheduleServiceNilDocument(t *testing.T) {
	svc := NewScheduleService(nil)
	assert.Empty(t, svc.ScheduleForDate("2026-03-02"))
	assert.Nil(t, svc.LaneStatus("2026-03-02", "main", "1", 600))
}
