package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolboard/poolboard-api/internal/models"
	"github.com/poolboard/poolboard-api/internal/repository"
	appErrors "github.com/poolboard/poolboard-api/pkg/errors"
)

type stubFacilityRepo struct {
	doc     *models.ScheduleDocument
	saved   *models.ScheduleDocument
	saveErr error
	listErr error
}

func (s *stubFacilityRepo) Load(string) (*models.ScheduleDocument, error) {
	if s.doc == nil {
		return nil, repository.ErrFacilityNotFound
	}
	return s.doc.Clone(), nil
}

func (s *stubFacilityRepo) LoadDefault() (*models.ScheduleDocument, error) {
	return s.Load("")
}

func (s *stubFacilityRepo) Save(_ string, doc *models.ScheduleDocument) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = doc
	return nil
}

func (s *stubFacilityRepo) List() ([]models.FacilitySummary, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []models.FacilitySummary{{Slug: "epic", Name: "Test Pool"}}, nil
}

func editorFixture(t *testing.T) (*EditorService, *stubFacilityRepo) {
	t.Helper()
	repo := &stubFacilityRepo{doc: testDocument()}
	facilities := NewFacilityService(repo, nil, nil, nil)
	return NewEditorService(facilities, nil, nil), repo
}

func validEntry(date string) EntryRequest {
	return EntryRequest{
		Date:     date,
		Section:  "main",
		Lanes:    []models.Lane{"1", "2"},
		Start:    "14:00",
		End:      "15:00",
		Activity: "lap",
	}
}

func TestEditorAddEntry(t *testing.T) {
	editor, _ := editorFixture(t)

	entry, err := editor.AddEntry("epic", validEntry("2026-03-02"))
	require.NoError(t, err)
	assert.Equal(t, "14:00", entry.Start)

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.Len(t, pending["2026-03-02"], 5)
}

func TestEditorAddEntryValidation(t *testing.T) {
	editor, _ := editorFixture(t)

	cases := map[string]EntryRequest{
		"missing activity": {Date: "2026-03-02", Section: "main", Lanes: []models.Lane{"1"}, Start: "14:00", End: "15:00"},
		"no lanes":         {Date: "2026-03-02", Section: "main", Lanes: []models.Lane{}, Start: "14:00", End: "15:00", Activity: "lap"},
		"end before start": {Date: "2026-03-02", Section: "main", Lanes: []models.Lane{"1"}, Start: "15:00", End: "14:00", Activity: "lap"},
		"zero length":      {Date: "2026-03-02", Section: "main", Lanes: []models.Lane{"1"}, Start: "14:00", End: "14:00", Activity: "lap"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := editor.AddEntry("epic", req)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
		})
	}

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.Len(t, pending["2026-03-02"], 4, "rejected entries must not mutate pending state")
}

func TestEditorUpdateEntrySameDate(t *testing.T) {
	editor, _ := editorFixture(t)

	req := validEntry("2026-03-02")
	updated, err := editor.UpdateEntry("epic", "2026-03-02", 0, req)
	require.NoError(t, err)
	assert.Equal(t, "14:00", updated.Start)

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.Equal(t, "14:00", pending["2026-03-02"][0].Start)
	assert.Len(t, pending["2026-03-02"], 4)
}

func TestEditorUpdateEntryMovesDate(t *testing.T) {
	editor, _ := editorFixture(t)

	_, err := editor.UpdateEntry("epic", "2026-03-01", 0, validEntry("2026-03-05"))
	require.NoError(t, err)

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.NotContains(t, pending, "2026-03-01", "emptied source date is dropped")
	require.Len(t, pending["2026-03-05"], 1)
	assert.Equal(t, "14:00", pending["2026-03-05"][0].Start)
}

func TestEditorUpdateEntryOutOfRange(t *testing.T) {
	editor, _ := editorFixture(t)

	_, err := editor.UpdateEntry("epic", "2026-03-02", 99, validEntry("2026-03-02"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEditorDeleteEntryDropsEmptyDate(t *testing.T) {
	editor, _ := editorFixture(t)

	require.NoError(t, editor.DeleteEntry("epic", "2026-03-01", 0))

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.NotContains(t, pending, "2026-03-01")

	err = editor.DeleteEntry("epic", "2026-03-01", 0)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEditorClearDay(t *testing.T) {
	editor, _ := editorFixture(t)

	require.NoError(t, editor.ClearDay("epic", "2026-03-02"))

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.NotContains(t, pending, "2026-03-02")

	err = editor.ClearDay("epic", "2026-03-02")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEditorImportReplacesPending(t *testing.T) {
	editor, _ := editorFixture(t)

	payload := []byte(`{"schedules":{"2026-04-01":[{"section":"main","lanes":[1],"start":"09:00","end":"10:00","activity":"lap"}]}}`)
	require.NoError(t, editor.Import("epic", payload))

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.NotContains(t, pending, "2026-03-02")
	require.Len(t, pending["2026-04-01"], 1)
	assert.Equal(t, models.Lane("1"), pending["2026-04-01"][0].Lanes[0])
}

func TestEditorImportRejectsInvalidPayloads(t *testing.T) {
	editor, _ := editorFixture(t)

	// Seed the pending copy first.
	_, err := editor.AddEntry("epic", validEntry("2026-03-02"))
	require.NoError(t, err)

	for name, payload := range map[string][]byte{
		"not json":         []byte(`{broken`),
		"no schedules key": []byte(`{"activities":[]}`),
		"wrong shape":      []byte(`{"schedules":[1,2,3]}`),
	} {
		t.Run(name, func(t *testing.T) {
			err := editor.Import("epic", payload)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrImportInvalid.Code, appErrors.FromError(err).Code)
		})
	}

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.Len(t, pending["2026-03-02"], 5, "failed imports leave the pending copy untouched")
}

func TestEditorExportDocumentMergesPending(t *testing.T) {
	editor, _ := editorFixture(t)

	_, err := editor.AddEntry("epic", validEntry("2026-04-01"))
	require.NoError(t, err)

	doc, err := editor.ExportDocument("epic")
	require.NoError(t, err)
	assert.Equal(t, "Test Pool", doc.FacilityInfo.Name)
	assert.Len(t, doc.Activities, 3)
	require.Len(t, doc.Schedules["2026-04-01"], 1)
}

func TestEditorSaveCommitsPending(t *testing.T) {
	editor, repo := editorFixture(t)

	_, err := editor.AddEntry("epic", validEntry("2026-04-01"))
	require.NoError(t, err)

	require.NoError(t, editor.Save("epic"))
	require.NotNil(t, repo.saved)
	assert.Len(t, repo.saved.Schedules["2026-04-01"], 1)
}

func TestEditorSaveFailureKeepsPending(t *testing.T) {
	editor, repo := editorFixture(t)
	repo.saveErr = errors.New("disk full")

	_, err := editor.AddEntry("epic", validEntry("2026-04-01"))
	require.NoError(t, err)

	err = editor.Save("epic")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSaveFailed.Code, appErrors.FromError(err).Code)

	// Retry succeeds without re-entering the change.
	repo.saveErr = nil
	require.NoError(t, editor.Save("epic"))
	assert.Len(t, repo.saved.Schedules["2026-04-01"], 1)
}

func TestEditorDiscardRevertsToPersisted(t *testing.T) {
	editor, _ := editorFixture(t)

	_, err := editor.AddEntry("epic", validEntry("2026-04-01"))
	require.NoError(t, err)

	editor.Discard("epic")

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.NotContains(t, pending, "2026-04-01")
	assert.Len(t, pending["2026-03-02"], 4)
}

func TestEditorPendingReturnsCopy(t *testing.T) {
	editor, _ := editorFixture(t)

	pending, err := editor.Pending("epic")
	require.NoError(t, err)
	pending["2026-03-02"][0].Start = "00:00"

	fresh, err := editor.Pending("epic")
	require.NoError(t, err)
	assert.Equal(t, "09:00", fresh["2026-03-02"][0].Start)
}
