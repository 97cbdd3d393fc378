package service

import (
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/internal/repository"
	"github.com/poolboard/poolboard-api/pkg/cache"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
)

type facilityStore interface {
	Load(slug string) (*models.ScheduleDocument, error)
	LoadDefault() (*models.ScheduleDocument, error)
	Save(slug string, doc *models.ScheduleDocument) error
	List() ([]models.FacilitySummary, error)
}

// FacilityService resolves facility slugs to indexed schedule stores. An
// unknown slug falls back to the default document; built indexes are memoised
// in the TTL cache and invalidated on save.
type FacilityService struct {
	repo    facilityStore
	cache   *cache.Store
	metrics *MetricsService
	logger  *zap.Logger
}

// NewFacilityService wires the facility service.
func NewFacilityService(repo facilityStore, cacheStore *cache.Store, metrics *MetricsService, logger *zap.Logger) *FacilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacilityService{repo: repo, cache: cacheStore, metrics: metrics, logger: logger}
}

// Store returns the indexed schedule store for a facility, falling back to
// the default document when the slug has none of its own.
func (s *FacilityService) Store(slug string) (*ScheduleService, error) {
	key := "facility:" + slug

	if s.cache != nil {
		lookupStart := time.Now()
		cached, hit := s.cache.Get(key)
		s.metrics.RecordCacheOperation(hit, time.Since(lookupStart))
		if hit {
			if store, ok := cached.(*ScheduleService); ok {
				return store, nil
			}
		}
	}

	loadStart := time.Now()
	doc, err := s.repo.Load(slug)
	if errors.Is(err, repository.ErrFacilityNotFound) {
		s.logger.Warn("facility not found, falling back to default", zap.String("slug", slug))
		doc, err = s.repo.LoadDefault()
	}
	if err != nil {
		if errors.Is(err, repository.ErrFacilityNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "facility not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrLoadFailed.Code, appErrors.ErrLoadFailed.Status, "failed to load schedule document")
	}
	s.metrics.ObserveDocumentLoad(slug, time.Since(loadStart))

	store := NewScheduleService(doc)
	if s.cache != nil {
		s.cache.Set(key, store)
	}
	return store, nil
}

// Document returns the raw schedule document for a facility.
func (s *FacilityService) Document(slug string) (*models.ScheduleDocument, error) {
	store, err := s.Store(slug)
	if err != nil {
		return nil, err
	}
	return store.Document(), nil
}

// Save persists a facility document and drops the cached index.
func (s *FacilityService) Save(slug string, doc *models.ScheduleDocument) error {
	if err := s.repo.Save(slug, doc); err != nil {
		return appErrors.Wrap(err, appErrors.ErrSaveFailed.Code, appErrors.ErrSaveFailed.Status, "failed to save schedule document")
	}
	s.Invalidate(slug)
	return nil
}

// SaveRaw persists a document supplied as raw JSON. Per the save contract the
// only check applied is that the body parses; schedule semantics are the
// editing client's responsibility.
func (s *FacilityService) SaveRaw(slug string, raw []byte) error {
	doc := &models.ScheduleDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "request body is not a valid schedule document")
	}
	return s.Save(slug, doc)
}

// List enumerates available facilities.
func (s *FacilityService) List() ([]models.FacilitySummary, error) {
	facilities, err := s.repo.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list facilities")
	}
	return facilities, nil
}

// Invalidate drops the cached index for a facility.
func (s *FacilityService) Invalidate(slug string) {
	if s.cache != nil {
		s.cache.Delete("facility:" + slug)
	}
}
