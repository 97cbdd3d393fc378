package models

// LaneStatus is the result of a point-in-time lane lookup. A nil status means
// the lane is closed or unscheduled at that instant.
type LaneStatus struct {
	Activity *Activity     `json:"activity"`
	Entry    ScheduleEntry `json:"entry"`
}

// PoolHours is a resolved open/close pair in minutes since midnight.
type PoolHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// ActivitySlot is one occurrence of an activity on a specific day, annotated
// relative to "now". DayIndex 0 is today.
type ActivitySlot struct {
	Date         string        `json:"date"`
	DayIndex     int           `json:"dayIndex"`
	Entry        ScheduleEntry `json:"slot"`
	Section      *Section      `json:"section,omitempty"`
	StartMinutes int           `json:"startMinutes"`
	EndMinutes   int           `json:"endMinutes"`
	IsCurrent    bool          `json:"isCurrent"`
	IsUpcoming   bool          `json:"isUpcoming"`
	IsNext       bool          `json:"isNext"`
}

// AvailabilityWindow is a coalesced time range during which one or more pools
// offer an activity. IsGrouped windows fold multiple slots together and render
// as an expandable "N pools" summary.
type AvailabilityWindow struct {
	Start        string         `json:"start"`
	End          string         `json:"end"`
	StartMinutes int            `json:"startMinutes"`
	EndMinutes   int            `json:"endMinutes"`
	PoolCount    int            `json:"poolCount"`
	SlotCount    int            `json:"slotCount"`
	IsGrouped    bool           `json:"isGrouped"`
	Slots        []ActivitySlot `json:"slots"`
}

// SectionTimes lists one pool's own sub-ranges inside a grouped window.
type SectionTimes struct {
	Section string      `json:"section"`
	Ranges  []TimeRange `json:"ranges"`
}

// TimeRange is a start/end pair in "HH:MM" form with minute bounds.
type TimeRange struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}

// DayAvailability groups merged windows for one date.
type DayAvailability struct {
	Date    string               `json:"date"`
	Windows []AvailabilityWindow `json:"windows"`
}

// NextSlot is the "what's next" summary: the earliest current-or-upcoming
// slot with a countdown in minutes (time left when current, time until start
// when upcoming today).
type NextSlot struct {
	Slot             ActivitySlot `json:"slot"`
	CountdownMinutes int          `json:"countdownMinutes"`
}

// Filter criterion kinds.
const (
	FilterTypeActivity = "activity"
	FilterTypeCategory = "category"
)

// FilterCriterion is one active filter selection: either a single activity or
// a whole category with its member activity ids snapshotted at toggle time.
type FilterCriterion struct {
	Type        string   `json:"type"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ActivityIDs []string `json:"activityIds,omitempty"`
}
