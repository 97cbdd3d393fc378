package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
	"github.com/poolboard/poolboard-api/pkg/export"
	"github.com/poolboard/poolboard-api/pkg/timeutil"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders one day of a facility schedule as a printable table.
type ExportService struct {
	facilities *FacilityService
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(facilities *FacilityService, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{facilities: facilities, csv: csv, pdf: pdf, logger: logger}
}

// DaySchedule renders the schedule for one date. Returned values are the
// payload, its content type and a suggested filename.
func (s *ExportService) DaySchedule(slug, date, format string) ([]byte, string, string, error) {
	store, err := s.facilities.Store(slug)
	if err != nil {
		return nil, "", "", err
	}

	dataset := s.buildDataset(store, date)
	title := fmt.Sprintf("Pool Schedule %s", date)
	if name := store.Document().FacilityInfo.Name; name != "" {
		title = fmt.Sprintf("%s - %s", name, date)
	}

	switch strings.ToLower(format) {
	case ExportFormatCSV, "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return payload, "text/csv", fmt.Sprintf("schedule-%s.csv", date), nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return payload, "application/pdf", fmt.Sprintf("schedule-%s.pdf", date), nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func (s *ExportService) buildDataset(store *ScheduleService, date string) export.Dataset {
	headers := []string{"Section", "Lanes", "Start", "End", "Activity"}
	entries := store.ScheduleForDate(date)

	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		lanes := make([]string, len(entry.Lanes))
		for i, lane := range entry.Lanes {
			lanes[i] = string(lane)
		}

		sectionName := entry.Section
		if section, ok := store.Section(entry.Section); ok {
			sectionName = section.Name
		}
		activityName := entry.Activity
		if activity, ok := store.Activity(entry.Activity); ok {
			activityName = activity.Name
		}

		rows = append(rows, map[string]string{
			"Section":  sectionName,
			"Lanes":    strings.Join(lanes, ", "),
			"Start":    timeutil.MinutesToTimeString(timeutil.TimeToMinutes(entry.Start), true),
			"End":      timeutil.MinutesToTimeString(timeutil.TimeToMinutes(entry.End), true),
			"Activity": activityName,
		})
	}

	return export.Dataset{Headers: headers, Rows: rows}
}
