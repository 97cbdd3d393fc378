package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/pkg/timeutil"
)

// AvailabilityService enumerates upcoming activity slots across days and
// coalesces them into availability windows for list views.
type AvailabilityService struct {
	clock  Clock
	logger *zap.Logger
}

// NewAvailabilityService constructs the service. A nil clock falls back to
// the system clock.
func NewAvailabilityService(clock Clock, logger *zap.Logger) *AvailabilityService {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{clock: clock, logger: logger}
}

// CollectUpcomingSlots walks numDays days forward from today and returns every
// slot for the activity, annotated relative to the live clock and sorted by
// (date, start). Slots that already finished today are skipped; future days
// are included regardless of time-of-day. Exactly zero or one slot carries
// IsNext: the earliest current-or-upcoming one, and only when it is not
// already live.
func (s *AvailabilityService) CollectUpcomingSlots(store *ScheduleService, activityID string, numDays int) []models.ActivitySlot {
	now := s.clock.Now()
	currentMinutes := now.Hour()*60 + now.Minute()

	var slots []models.ActivitySlot
	for i := 0; i < numDays; i++ {
		date := now.AddDate(0, 0, i).Format(timeutil.DateLayout)

		for _, entry := range store.FindActivitySlots(date, activityID) {
			startMinutes := timeutil.TimeToMinutes(entry.Start)
			endMinutes := timeutil.TimeToMinutes(entry.End)

			if i == 0 && endMinutes <= currentMinutes {
				continue
			}

			slot := models.ActivitySlot{
				Date:         date,
				DayIndex:     i,
				Entry:        entry,
				StartMinutes: startMinutes,
				EndMinutes:   endMinutes,
			}
			if i == 0 {
				slot.IsCurrent = startMinutes <= currentMinutes && currentMinutes < endMinutes
				slot.IsUpcoming = startMinutes > currentMinutes && !slot.IsCurrent
			}
			if section, ok := store.Section(entry.Section); ok {
				slot.Section = &section
			}
			slots = append(slots, slot)
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartMinutes < slots[j].StartMinutes
	})

	for i := range slots {
		if slots[i].IsCurrent || slots[i].IsUpcoming {
			slots[i].IsNext = !slots[i].IsCurrent
			break
		}
	}

	return slots
}

// MergeWindows coalesces start-sorted slots for one activity on one day into
// availability windows. Overlapping or exactly touching intervals fold into a
// single window; a gap closes the current window and opens a new one.
func (s *AvailabilityService) MergeWindows(slots []models.ActivitySlot) []models.AvailabilityWindow {
	if len(slots) == 0 {
		return nil
	}

	sorted := append([]models.ActivitySlot(nil), slots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinutes < sorted[j].StartMinutes
	})

	var windows []models.AvailabilityWindow
	var current *models.AvailabilityWindow
	pools := make(map[string]struct{})

	flush := func() {
		if current == nil {
			return
		}
		current.PoolCount = len(pools)
		current.SlotCount = len(current.Slots)
		current.IsGrouped = current.SlotCount > 1
		windows = append(windows, *current)
		current = nil
		pools = make(map[string]struct{})
	}

	for _, slot := range sorted {
		if current != nil && slot.StartMinutes <= current.EndMinutes {
			if slot.EndMinutes > current.EndMinutes {
				current.EndMinutes = slot.EndMinutes
				current.End = slot.Entry.End
			}
			pools[slot.Entry.Section] = struct{}{}
			current.Slots = append(current.Slots, slot)
			continue
		}

		flush()
		current = &models.AvailabilityWindow{
			Start:        slot.Entry.Start,
			End:          slot.Entry.End,
			StartMinutes: slot.StartMinutes,
			EndMinutes:   slot.EndMinutes,
			Slots:        []models.ActivitySlot{slot},
		}
		pools[slot.Entry.Section] = struct{}{}
	}
	flush()

	return windows
}

// SectionTimes expands a grouped window into per-pool sub-ranges for the
// detail view: one row per contributing section, its own ranges sorted
// ascending. Aggregation is by section, independent of how many lanes in that
// section contributed slots.
func (s *AvailabilityService) SectionTimes(window models.AvailabilityWindow) []models.SectionTimes {
	bySection := make(map[string][]models.TimeRange)
	var order []string

	for _, slot := range window.Slots {
		name := slot.Entry.Section
		if slot.Section != nil {
			name = slot.Section.Name
		}
		if _, ok := bySection[name]; !ok {
			order = append(order, name)
		}
		bySection[name] = append(bySection[name], models.TimeRange{
			Start:        slot.Entry.Start,
			End:          slot.Entry.End,
			StartMinutes: slot.StartMinutes,
			EndMinutes:   slot.EndMinutes,
		})
	}

	result := make([]models.SectionTimes, 0, len(order))
	for _, name := range order {
		ranges := bySection[name]
		sort.SliceStable(ranges, func(i, j int) bool {
			return ranges[i].StartMinutes < ranges[j].StartMinutes
		})
		result = append(result, models.SectionTimes{Section: name, Ranges: ranges})
	}
	return result
}

// Upcoming combines collection and merging: windows grouped per date plus the
// "what's next" summary with its countdown.
func (s *AvailabilityService) Upcoming(store *ScheduleService, activityID string, numDays int) ([]models.DayAvailability, *models.NextSlot) {
	slots := s.CollectUpcomingSlots(store, activityID, numDays)

	var days []models.DayAvailability
	var currentDate string
	var pending []models.ActivitySlot

	flush := func() {
		if len(pending) == 0 {
			return
		}
		days = append(days, models.DayAvailability{Date: currentDate, Windows: s.MergeWindows(pending)})
		pending = nil
	}

	for _, slot := range slots {
		if slot.Date != currentDate {
			flush()
			currentDate = slot.Date
		}
		pending = append(pending, slot)
	}
	flush()

	return days, s.nextSlot(slots)
}

func (s *AvailabilityService) nextSlot(slots []models.ActivitySlot) *models.NextSlot {
	now := s.clock.Now()
	currentMinutes := now.Hour()*60 + now.Minute()

	for _, slot := range slots {
		if !slot.IsCurrent && !slot.IsUpcoming {
			continue
		}
		countdown := slot.StartMinutes - currentMinutes
		if slot.IsCurrent {
			countdown = slot.EndMinutes - currentMinutes
		}
		return &models.NextSlot{Slot: slot, CountdownMinutes: countdown}
	}
	return nil
}
