package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Lane identifies one addressable unit inside a pool section. Source documents
// encode lanes either as JSON numbers or strings; the identifier is normalised
// to its string form at parse time.
type Lane string

// UnmarshalJSON accepts both string and numeric lane encodings.
func (l *Lane) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Lane(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("lane must be a string or number: %s", string(data))
	}
	*l = Lane(n.String())
	return nil
}

// MarshalJSON re-emits canonical numeric lanes as numbers so a saved document
// keeps the encoding the viewer produced it with.
func (l Lane) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(l)); err == nil && strconv.Itoa(n) == string(l) {
		return []byte(l), nil
	}
	return json.Marshal(string(l))
}

// Equal reports whether two lane identifiers refer to the same lane,
// falling back to numeric comparison when both sides parse as integers.
func (l Lane) Equal(other Lane) bool {
	if l == other {
		return true
	}
	a, errA := strconv.Atoi(string(l))
	b, errB := strconv.Atoi(string(other))
	return errA == nil && errB == nil && a == b
}

// Activity is a named, colored category of pool use.
type Activity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	Color     string `json:"color"`
	Category  string `json:"category"`
}

// Category groups activities for coarse-grained filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Section is a named pool area containing an ordered list of lanes.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Lanes []Lane `json:"lanes"`
}

// HasLane reports whether the section contains the given lane identifier.
func (s Section) HasLane(lane Lane) bool {
	for _, l := range s.Lanes {
		if l.Equal(lane) {
			return true
		}
	}
	return false
}

// PoolLayout holds the facility floorplan sections.
type PoolLayout struct {
	Sections []Section `json:"sections"`
}

// ScheduleEntry is a scheduled occupation of one or more lanes within a
// section for a time interval, tagged with one activity.
type ScheduleEntry struct {
	Section  string `json:"section"`
	Lanes    []Lane `json:"lanes"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Activity string `json:"activity"`
}

// HasLane reports whether the entry covers the given lane.
func (e ScheduleEntry) HasLane(lane Lane) bool {
	for _, l := range e.Lanes {
		if l.Equal(lane) {
			return true
		}
	}
	return false
}

// HoursSpec is an open/close pair in "HH:MM" form.
type HoursSpec struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeeklyHours buckets facility hours by day type.
type WeeklyHours struct {
	Weekday  *HoursSpec `json:"weekday,omitempty"`
	Saturday *HoursSpec `json:"saturday,omitempty"`
	Sunday   *HoursSpec `json:"sunday,omitempty"`
}

// FacilityInfo carries facility metadata.
type FacilityInfo struct {
	Name  string       `json:"name,omitempty"`
	Hours *WeeklyHours `json:"hours,omitempty"`
}

// ScheduleDocument is the full facility document: activities, categories,
// floorplan and the per-date schedule entries. Loaded once and treated as
// immutable; the editor works on a Clone.
type ScheduleDocument struct {
	FacilityInfo       FacilityInfo               `json:"facilityInfo"`
	Activities         []Activity                 `json:"activities"`
	ActivityCategories []Category                 `json:"activityCategories"`
	PoolLayout         PoolLayout                 `json:"poolLayout"`
	Schedules          map[string][]ScheduleEntry `json:"schedules"`
}

// Clone returns a deep copy of the document. The editor mutates the copy and
// commits it back wholesale.
func (d *ScheduleDocument) Clone() *ScheduleDocument {
	if d == nil {
		return nil
	}
	clone := &ScheduleDocument{
		FacilityInfo:       d.FacilityInfo,
		Activities:         append([]Activity(nil), d.Activities...),
		ActivityCategories: append([]Category(nil), d.ActivityCategories...),
		Schedules:          CloneSchedules(d.Schedules),
	}
	if d.FacilityInfo.Hours != nil {
		hours := *d.FacilityInfo.Hours
		if hours.Weekday != nil {
			w := *hours.Weekday
			hours.Weekday = &w
		}
		if hours.Saturday != nil {
			s := *hours.Saturday
			hours.Saturday = &s
		}
		if hours.Sunday != nil {
			s := *hours.Sunday
			hours.Sunday = &s
		}
		clone.FacilityInfo.Hours = &hours
	}
	clone.PoolLayout.Sections = make([]Section, len(d.PoolLayout.Sections))
	for i, section := range d.PoolLayout.Sections {
		section.Lanes = append([]Lane(nil), section.Lanes...)
		clone.PoolLayout.Sections[i] = section
	}
	return clone
}

// CloneSchedules deep-copies a per-date schedule map.
func CloneSchedules(schedules map[string][]ScheduleEntry) map[string][]ScheduleEntry {
	if schedules == nil {
		return map[string][]ScheduleEntry{}
	}
	clone := make(map[string][]ScheduleEntry, len(schedules))
	for date, entries := range schedules {
		copied := make([]ScheduleEntry, len(entries))
		for i, entry := range entries {
			entry.Lanes = append([]Lane(nil), entry.Lanes...)
			copied[i] = entry
		}
		clone[date] = copied
	}
	return clone
}

// FacilitySummary is one row of the facility listing.
type FacilitySummary struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}
