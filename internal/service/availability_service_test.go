package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/pkg/timeutil"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// 2026-03-02 10:30 local time.
func availabilityClock() Clock {
	return fixedClock{now: time.Date(2026, 3, 2, 10, 30, 0, 0, time.Local)}
}

func availabilityDocument() *models.ScheduleDocument {
	doc := testDocument()
	doc.Schedules = map[string][]models.ScheduleEntry{
		"2026-03-02": {
			{Section: "main", Lanes: []models.Lane{"1"}, Start: "08:00", End: "09:00", Activity: "lap"},
			{Section: "main", Lanes: []models.Lane{"1"}, Start: "10:00", End: "11:00", Activity: "lap"},
			{Section: "main", Lanes: []models.Lane{"2"}, Start: "13:00", End: "14:00", Activity: "lap"},
		},
		"2026-03-03": {
			{Section: "therapy", Lanes: []models.Lane{"A"}, Start: "09:00", End: "10:00", Activity: "lap"},
		},
	}
	return doc
}

func TestCollectUpcomingSlotsSkipsFinishedToday(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(availabilityDocument())

	slots := svc.CollectUpcomingSlots(store, "lap", 7)
	require.Len(t, slots, 3)

	// The 08:00-09:00 slot already ended and is gone.
	assert.Equal(t, "10:00", slots[0].Entry.Start)
	assert.True(t, slots[0].IsCurrent)
	assert.False(t, slots[0].IsUpcoming)

	assert.Equal(t, "13:00", slots[1].Entry.Start)
	assert.False(t, slots[1].IsCurrent)
	assert.True(t, slots[1].IsUpcoming)

	// Tomorrow's slot carries no today-relative flags.
	assert.Equal(t, "2026-03-03", slots[2].Date)
	assert.False(t, slots[2].IsCurrent)
	assert.False(t, slots[2].IsUpcoming)
}

func TestCollectUpcomingSlotsNextNotSetWhenLive(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(availabilityDocument())

	// The earliest relevant slot is already running, so nothing is "next".
	for _, slot := range svc.CollectUpcomingSlots(store, "lap", 7) {
		assert.False(t, slot.IsNext)
	}
}

func TestCollectUpcomingSlotsExactlyOneNext(t *testing.T) {
	doc := availabilityDocument()
	doc.Schedules["2026-03-02"] = doc.Schedules["2026-03-02"][:1] // only the finished slot remains today
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(doc)

	slots := svc.CollectUpcomingSlots(store, "lap", 7)
	require.Len(t, slots, 1)
	assert.Equal(t, "2026-03-03", slots[0].Date)
	assert.False(t, slots[0].IsNext, "future-day slots are outside the next marker")
}

func TestCollectUpcomingSlotsNextOnUpcomingToday(t *testing.T) {
	doc := availabilityDocument()
	doc.Schedules["2026-03-02"] = doc.Schedules["2026-03-02"][2:] // only the 13:00 slot remains today
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(doc)

	slots := svc.CollectUpcomingSlots(store, "lap", 7)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsNext)
	assert.False(t, slots[1].IsNext)
}

func TestMergeWindowsOverlapAndTouch(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)

	slots := []models.ActivitySlot{
		slot("main", "09:00", "10:00"),
		slot("therapy", "09:30", "10:30"), // overlaps
		slot("main", "10:30", "11:00"),    // touches
		slot("main", "12:00", "13:00"),    // gap
	}

	windows := svc.MergeWindows(slots)
	require.Len(t, windows, 2)

	first := windows[0]
	assert.Equal(t, "09:00", first.Start)
	assert.Equal(t, "11:00", first.End)
	assert.Equal(t, 3, first.SlotCount)
	assert.Equal(t, 2, first.PoolCount)
	assert.True(t, first.IsGrouped)

	second := windows[1]
	assert.Equal(t, "12:00", second.Start)
	assert.Equal(t, 1, second.SlotCount)
	assert.Equal(t, 1, second.PoolCount)
	assert.False(t, second.IsGrouped)
}

func TestMergeWindowsEmpty(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)
	assert.Empty(t, svc.MergeWindows(nil))
}

func TestMergeWindowsUnsortedInput(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)

	windows := svc.MergeWindows([]models.ActivitySlot{
		slot("main", "12:00", "13:00"),
		slot("main", "09:00", "10:00"),
	})
	require.Len(t, windows, 2)
	assert.Equal(t, "09:00", windows[0].Start)
}

func TestSectionTimesGroupsBySection(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)

	window := svc.MergeWindows([]models.ActivitySlot{
		slot("main", "09:00", "10:00"),
		slot("therapy", "09:30", "10:30"),
		slot("main", "09:15", "09:45"),
	})[0]

	sections := svc.SectionTimes(window)
	require.Len(t, sections, 2)
	assert.Equal(t, "main", sections[0].Section)
	require.Len(t, sections[0].Ranges, 2)
	assert.Equal(t, "09:00", sections[0].Ranges[0].Start)
	assert.Equal(t, "09:15", sections[0].Ranges[1].Start)
	assert.Equal(t, "therapy", sections[1].Section)
}

func TestUpcomingCountdowns(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(availabilityDocument())

	days, next := svc.Upcoming(store, "lap", 7)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-02", days[0].Date)
	require.Len(t, days[0].Windows, 2)
	require.Len(t, days[1].Windows, 1)

	// 10:00-11:00 is live at 10:30, countdown runs to its end.
	require.NotNil(t, next)
	assert.True(t, next.Slot.IsCurrent)
	assert.Equal(t, 30, next.CountdownMinutes)
}

func TestUpcomingCountdownToStart(t *testing.T) {
	doc := availabilityDocument()
	doc.Schedules["2026-03-02"] = doc.Schedules["2026-03-02"][2:]
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(doc)

	_, next := svc.Upcoming(store, "lap", 7)
	require.NotNil(t, next)
	assert.True(t, next.Slot.IsUpcoming)
	assert.Equal(t, 150, next.CountdownMinutes)
}

func TestUpcomingNoSlots(t *testing.T) {
	svc := NewAvailabilityService(availabilityClock(), nil)
	store := NewScheduleService(availabilityDocument())

	days, next := svc.Upcoming(store, "lessons", 7)
	assert.Empty(t, days)
	assert.Nil(t, next)
}

func slot(section, start, end string) models.ActivitySlot {
	return models.ActivitySlot{
		Entry:        models.ScheduleEntry{Section: section, Start: start, End: end, Activity: "lap"},
		StartMinutes: timeutil.TimeToMinutes(start),
		EndMinutes:   timeutil.TimeToMinutes(end),
	}
}
