package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
)

func exportFixture() *ExportService {
	repo := &stubFacilityRepo{doc: testDocument()}
	facilities := NewFacilityService(repo, nil, nil, nil)
	return NewExportService(facilities, nil, nil, nil)
}

func TestExportDayScheduleCSV(t *testing.T) {
	svc := exportFixture()

	payload, contentType, filename, err := svc.DaySchedule("epic", "2026-03-02", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "schedule-2026-03-02.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Section,Lanes,Start,End,Activity", lines[0])
	assert.Contains(t, lines[1], "Main Pool")
	assert.Contains(t, lines[1], "9:00 AM")
	assert.Contains(t, lines[1], "Lap Swim")
}

func TestExportDayScheduleDefaultsToCSV(t *testing.T) {
	svc := exportFixture()

	_, contentType, _, err := svc.DaySchedule("epic", "2026-03-02", "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
}

func TestExportDaySchedulePDF(t *testing.T) {
	svc := exportFixture()

	payload, contentType, filename, err := svc.DaySchedule("epic", "2026-03-02", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "schedule-2026-03-02.pdf", filename)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestExportDayScheduleUnknownFormat(t *testing.T) {
	svc := exportFixture()

	_, _, _, err := svc.DaySchedule("epic", "2026-03-02", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportDayScheduleEmptyDate(t *testing.T) {
	svc := exportFixture()

	payload, _, _, err := svc.DaySchedule("epic", "2026-12-25", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	assert.Len(t, lines, 1, "header only for a date with no entries")
}
