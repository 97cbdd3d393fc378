package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneUnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	var entry ScheduleEntry
	raw := []byte(`{"section":"main","lanes":[1,"2","deep-end"],"start":"09:00","end":"10:00","activity":"lap"}`)
	require.NoError(t, json.Unmarshal(raw, &entry))

	assert.Equal(t, []Lane{"1", "2", "deep-end"}, entry.Lanes)
}

func TestLaneUnmarshalRejectsObjects(t *testing.T) {
	var lane Lane
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &lane))
}

func TestLaneMarshalKeepsNumericEncoding(t *testing.T) {
	raw, err := json.Marshal([]Lane{"1", "deep-end", "007"})
	require.NoError(t, err)

	// Canonical numerics go back out as numbers; "007" is not canonical and
	// stays a string.
	assert.JSONEq(t, `[1,"deep-end","007"]`, string(raw))
}

func TestLaneEqualNumericFallback(t *testing.T) {
	assert.True(t, Lane("1").Equal("1"))
	assert.True(t, Lane("01").Equal("1"))
	assert.False(t, Lane("1").Equal("2"))
	assert.False(t, Lane("deep-end").Equal("1"))
	assert.True(t, Lane("deep-end").Equal("deep-end"))
}

func TestSectionHasLane(t *testing.T) {
	section := Section{ID: "main", Lanes: []Lane{"1", "2", "3"}}
	assert.True(t, section.HasLane("2"))
	assert.True(t, section.HasLane("02"))
	assert.False(t, section.HasLane("9"))
}

func TestScheduleDocumentCloneIsDeep(t *testing.T) {
	doc := &ScheduleDocument{
		FacilityInfo: FacilityInfo{
			Name:  "Pool",
			Hours: &WeeklyHours{Weekday: &HoursSpec{Open: "06:00", Close: "22:00"}},
		},
		Activities: []Activity{{ID: "lap", Name: "Lap Swim"}},
		PoolLayout: PoolLayout{Sections: []Section{{ID: "main", Lanes: []Lane{"1"}}}},
		Schedules: map[string][]ScheduleEntry{
			"2026-03-02": {{Section: "main", Lanes: []Lane{"1"}, Start: "09:00", End: "10:00", Activity: "lap"}},
		},
	}

	clone := doc.Clone()
	clone.FacilityInfo.Hours.Weekday.Open = "07:00"
	clone.Activities[0].Name = "changed"
	clone.PoolLayout.Sections[0].Lanes[0] = "9"
	clone.Schedules["2026-03-02"][0].Start = "11:00"
	clone.Schedules["2026-03-02"][0].Lanes[0] = "9"

	assert.Equal(t, "06:00", doc.FacilityInfo.Hours.Weekday.Open)
	assert.Equal(t, "Lap Swim", doc.Activities[0].Name)
	assert.Equal(t, Lane("1"), doc.PoolLayout.Sections[0].Lanes[0])
	assert.Equal(t, "09:00", doc.Schedules["2026-03-02"][0].Start)
	assert.Equal(t, Lane("1"), doc.Schedules["2026-03-02"][0].Lanes[0])
}

func TestCloneSchedulesNilInput(t *testing.T) {
	clone := CloneSchedules(nil)
	require.NotNil(t, clone)
	assert.Empty(t, clone)
}
