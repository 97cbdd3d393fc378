package service

import (
	"encoding/json"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/poolboard/poolboard-api/internal/models"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/timeutil"
)

// EntryRequest describes the payload for creating or updating a schedule
// entry.
type EntryRequest struct {
	Date     string        `json:"date" validate:"required"`
	Section  string        `json:"section" validate:"required"`
	Lanes    []models.Lane `json:"lanes" validate:"required,min=1"`
	Start    string        `json:"start" validate:"required"`
	End      string        `json:"end" validate:"required"`
	Activity string        `json:"activity" validate:"required"`
}

// EditorService owns the per-facility pending working copy: a deep clone of
// the persisted schedules, mutated locally and only written back on an
// explicit save. Validation happens at entry creation; lane overlap is
// deliberately not enforced, matching the permissive first-match-wins query
// behavior.
//
// The pending copy itself is single-writer state; the mutex only guards the
// map against concurrent HTTP handlers.
type EditorService struct {
	facilities *FacilityService
	validator  *validator.Validate
	logger     *zap.Logger

	mu      sync.Mutex
	pending map[string]map[string][]models.ScheduleEntry
}

// NewEditorService wires the editor service.
func NewEditorService(facilities *FacilityService, validate *validator.Validate, logger *zap.Logger) *EditorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EditorService{
		facilities: facilities,
		validator:  validate,
		logger:     logger,
		pending:    make(map[string]map[string][]models.ScheduleEntry),
	}
}

// Pending returns a copy of the facility's pending schedules, cloning them
// from the persisted document on first touch.
func (s *EditorService) Pending(slug string) (map[string][]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := s.pendingLocked(slug)
	if err != nil {
		return nil, err
	}
	return models.CloneSchedules(schedules), nil
}

// AddEntry validates and appends a new entry to the pending schedule.
func (s *EditorService) AddEntry(slug string, req EntryRequest) (*models.ScheduleEntry, error) {
	entry, err := s.buildEntry(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := s.pendingLocked(slug)
	if err != nil {
		return nil, err
	}
	schedules[req.Date] = append(schedules[req.Date], *entry)
	return entry, nil
}

// UpdateEntry replaces the entry at (date, index). When the date changed, the
// entry moves to its new day.
func (s *EditorService) UpdateEntry(slug, date string, index int, req EntryRequest) (*models.ScheduleEntry, error) {
	entry, err := s.buildEntry(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := s.pendingLocked(slug)
	if err != nil {
		return nil, err
	}

	entries, ok := schedules[date]
	if !ok || index < 0 || index >= len(entries) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
	}

	if req.Date == date {
		entries[index] = *entry
		return entry, nil
	}

	schedules[date] = append(entries[:index], entries[index+1:]...)
	if len(schedules[date]) == 0 {
		delete(schedules, date)
	}
	schedules[req.Date] = append(schedules[req.Date], *entry)
	return entry, nil
}

// DeleteEntry removes the entry at (date, index), dropping the date when it
// becomes empty.
func (s *EditorService) DeleteEntry(slug, date string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := s.pendingLocked(slug)
	if err != nil {
		return err
	}

	entries, ok := schedules[date]
	if !ok || index < 0 || index >= len(entries) {
		return appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
	}

	schedules[date] = append(entries[:index], entries[index+1:]...)
	if len(schedules[date]) == 0 {
		delete(schedules, date)
	}
	return nil
}

// ClearDay removes all entries for a date.
func (s *EditorService) ClearDay(slug, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := s.pendingLocked(slug)
	if err != nil {
		return err
	}

	if len(schedules[date]) == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "no entries to clear")
	}
	delete(schedules, date)
	return nil
}

// Import wholesale-replaces the pending schedules from an uploaded document.
// The payload must parse as JSON and carry a top-level "schedules" key;
// otherwise the import aborts and the pending copy is left untouched.
func (s *EditorService) Import(slug string, raw []byte) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return appErrors.Wrap(err, appErrors.ErrImportInvalid.Code, appErrors.ErrImportInvalid.Status, "import file is not valid JSON")
	}
	rawSchedules, ok := envelope["schedules"]
	if !ok {
		return appErrors.Clone(appErrors.ErrImportInvalid, "import file has no schedules")
	}
	schedules := map[string][]models.ScheduleEntry{}
	if err := json.Unmarshal(rawSchedules, &schedules); err != nil {
		return appErrors.Wrap(err, appErrors.ErrImportInvalid.Code, appErrors.ErrImportInvalid.Status, "import schedules are malformed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[slug] = schedules
	s.logger.Info("schedule imported", zap.String("facility", slug), zap.Int("dates", len(schedules)))
	return nil
}

// ExportDocument merges the original document fields with the pending
// schedules.
func (s *EditorService) ExportDocument(slug string) (*models.ScheduleDocument, error) {
	doc, err := s.facilities.Document(slug)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	schedules, err := s.pendingLocked(slug)
	if err != nil {
		return nil, err
	}

	merged := doc.Clone()
	merged.Schedules = models.CloneSchedules(schedules)
	return merged, nil
}

// Save commits the pending schedules to the facility store. The pending copy
// survives a failed save so a retry needs no re-entry.
func (s *EditorService) Save(slug string) error {
	doc, err := s.ExportDocument(slug)
	if err != nil {
		return err
	}
	return s.facilities.Save(slug, doc)
}

// Discard drops the pending copy; the next edit re-clones persisted state.
func (s *EditorService) Discard(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, slug)
}

func (s *EditorService) pendingLocked(slug string) (map[string][]models.ScheduleEntry, error) {
	if schedules, ok := s.pending[slug]; ok {
		return schedules, nil
	}
	doc, err := s.facilities.Document(slug)
	if err != nil {
		return nil, err
	}
	schedules := models.CloneSchedules(doc.Schedules)
	s.pending[slug] = schedules
	return schedules, nil
}

func (s *EditorService) buildEntry(req EntryRequest) (*models.ScheduleEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule entry payload")
	}
	if timeutil.TimeToMinutes(req.Start) >= timeutil.TimeToMinutes(req.End) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end time must be after start time")
	}

	return &models.ScheduleEntry{
		Section:  req.Section,
		Lanes:    append([]models.Lane(nil), req.Lanes...),
		Start:    req.Start,
		End:      req.End,
		Activity: req.Activity,
	}, nil
}
