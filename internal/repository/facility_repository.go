package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/poolboard/poolboard-api/internal/models"
)

// ErrFacilityNotFound signals that no document exists for the requested slug.
var ErrFacilityNotFound = errors.New("facility not found")

const (
	defaultFileName = "schedule.json"
	facilitiesDir   = "facilities"
	backupMarker    = "-backup-"
)

// FacilityRepository persists schedule documents as JSON files under a data
// directory: data/schedule.json for the default document and
// data/facilities/<slug>.json per facility. Saves rotate timestamped backups.
type FacilityRepository struct {
	dataDir    string
	backupKeep int
	logger     *zap.Logger
}

// NewFacilityRepository ensures the data layout exists and returns a handle.
func NewFacilityRepository(dataDir string, backupKeep int, logger *zap.Logger) (*FacilityRepository, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if backupKeep <= 0 {
		backupKeep = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Join(dataDir, facilitiesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create facilities directory: %w", err)
	}
	return &FacilityRepository{dataDir: dataDir, backupKeep: backupKeep, logger: logger}, nil
}

// Load reads one facility document by slug.
func (r *FacilityRepository) Load(slug string) (*models.ScheduleDocument, error) {
	return r.read(r.facilityPath(slug))
}

// LoadDefault reads the fallback document.
func (r *FacilityRepository) LoadDefault() (*models.ScheduleDocument, error) {
	return r.read(filepath.Join(r.dataDir, defaultFileName))
}

// Save writes a facility document, rotating a timestamped backup of the
// previous version first.
func (r *FacilityRepository) Save(slug string, doc *models.ScheduleDocument) error {
	return r.write(r.facilityPath(slug), doc)
}

// SaveDefault writes the fallback document.
func (r *FacilityRepository) SaveDefault(doc *models.ScheduleDocument) error {
	return r.write(filepath.Join(r.dataDir, defaultFileName), doc)
}

// List enumerates available facilities with their display names.
func (r *FacilityRepository) List() ([]models.FacilitySummary, error) {
	dir := filepath.Join(r.dataDir, facilitiesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.FacilitySummary{}, nil
		}
		return nil, fmt.Errorf("read facilities directory: %w", err)
	}

	facilities := make([]models.FacilitySummary, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.Contains(name, backupMarker) {
			continue
		}
		slug := strings.TrimSuffix(name, ".json")
		doc, err := r.read(filepath.Join(dir, name))
		if err != nil {
			r.logger.Warn("skipping unreadable facility file", zap.String("file", name), zap.Error(err))
			continue
		}
		display := doc.FacilityInfo.Name
		if display == "" {
			display = slug
		}
		facilities = append(facilities, models.FacilitySummary{Slug: slug, Name: display})
	}
	sort.Slice(facilities, func(i, j int) bool { return facilities[i].Slug < facilities[j].Slug })
	return facilities, nil
}

func (r *FacilityRepository) facilityPath(slug string) string {
	return filepath.Join(r.dataDir, facilitiesDir, slug+".json")
}

func (r *FacilityRepository) read(path string) (*models.ScheduleDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("read schedule document: %w", err)
	}
	doc := &models.ScheduleDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("parse schedule document: %w", err)
	}
	if doc.Schedules == nil {
		doc.Schedules = map[string][]models.ScheduleEntry{}
	}
	return doc, nil
}

func (r *FacilityRepository) write(path string, doc *models.ScheduleDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule document: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := r.backup(path); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write schedule document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace schedule document: %w", err)
	}
	r.logger.Info("schedule document saved", zap.String("path", path))
	return nil
}

func (r *FacilityRepository) backup(path string) error {
	backupPath := strings.TrimSuffix(path, ".json") +
		fmt.Sprintf("%s%d.json", backupMarker, time.Now().UnixMilli())
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document for backup: %w", err)
	}
	if err := os.WriteFile(backupPath, raw, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	r.logger.Info("backup created", zap.String("path", backupPath))
	return r.pruneBackups(path)
}

// pruneBackups keeps only the most recent backupKeep backups for a document.
func (r *FacilityRepository) pruneBackups(path string) error {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), ".json")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan backups: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, base+backupMarker) && strings.HasSuffix(name, ".json") {
			backups = append(backups, name)
		}
	}
	// Timestamped names sort chronologically; newest last.
	sort.Strings(backups)
	for len(backups) > r.backupKeep {
		victim := backups[0]
		backups = backups[1:]
		if err := os.Remove(filepath.Join(dir, victim)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove old backup: %w", err)
		}
		r.logger.Info("old backup removed", zap.String("file", victim))
	}
	return nil
}
