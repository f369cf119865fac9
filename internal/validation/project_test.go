package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

func validProjectDraft() dto.ProjectPayload {
	return dto.ProjectPayload{
		Title:          "  Portal   de  clientes ",
		Description:    " Migración del portal ",
		AssignmentDate: "15/10/2026",
		Deadline:       "30/11/2026",
		WorkerIDs:      []uint64{3, 1, 3},
	}
}

func projectWithWorkers(id uint64, title string, workerIDs ...uint64) models.Project {
	workers := make([]models.Worker, len(workerIDs))
	for i, wid := range workerIDs {
		workers[i] = models.Worker{ID: wid}
	}
	return models.Project{ID: id, Title: title, Workers: workers}
}

func TestProject_NormalizesAndAccepts(t *testing.T) {
	v := New(fixedClock)

	got, err := v.Project(validProjectDraft(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "Portal de clientes", got.Title)
	assert.Equal(t, "Migración del portal", got.Description)
	assert.Equal(t, []uint64{3, 1}, got.WorkerIDs)
}

func TestProject_OrderedRejections(t *testing.T) {
	v := New(fixedClock)

	tests := []struct {
		name   string
		mutate func(d *dto.ProjectPayload)
		want   error
	}{
		{"blank title", func(d *dto.ProjectPayload) { d.Title = "   " }, ErrTitleRequired},
		{"blank description", func(d *dto.ProjectPayload) { d.Description = "\n" }, ErrDescriptionRequired},
		{"missing assignment date", func(d *dto.ProjectPayload) { d.AssignmentDate = "" }, ErrAssignmentDateRequired},
		{"missing deadline", func(d *dto.ProjectPayload) { d.Deadline = "" }, ErrDeadlineRequired},
		{"bad assignment date", func(d *dto.ProjectPayload) { d.AssignmentDate = "32/1/2026" }, ErrAssignmentDateInvalid},
		{"assignment in the past", func(d *dto.ProjectPayload) { d.AssignmentDate = "1/10/2026" }, ErrAssignmentDateInPast},
		{"bad deadline", func(d *dto.ProjectPayload) { d.Deadline = "30-11-2026" }, ErrDeadlineInvalid},
		{"deadline before assignment", func(d *dto.ProjectPayload) { d.Deadline = "14/10/2026"; d.AssignmentDate = "15/10/2026" }, ErrDeadlineBeforeAssignment},
		{"no workers", func(d *dto.ProjectPayload) { d.WorkerIDs = nil }, ErrWorkersRequired},
		{"four workers", func(d *dto.ProjectPayload) { d.WorkerIDs = []uint64{1, 2, 3, 4} }, ErrTooManyWorkers},
		{"unknown status", func(d *dto.ProjectPayload) { d.Status = "ARCHIVADO" }, ErrProjectStatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validProjectDraft()
			tt.mutate(&draft)
			_, err := v.Project(draft, nil, 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProject_SameDayDeadlineAllowed(t *testing.T) {
	v := New(fixedClock)

	draft := validProjectDraft()
	draft.Deadline = draft.AssignmentDate
	_, err := v.Project(draft, nil, 0)
	assert.NoError(t, err)
}

func TestProject_PastAssignmentAllowedWhenEditing(t *testing.T) {
	v := New(fixedClock)

	draft := validProjectDraft()
	draft.AssignmentDate = "1/1/2025"
	_, err := v.Project(draft, nil, 12)
	assert.NoError(t, err)
}

func TestProject_Duplicates(t *testing.T) {
	v := New(fixedClock)

	sameSet := projectWithWorkers(5, "PORTAL DE CLIENTES", 1, 3)
	otherSet := projectWithWorkers(6, "Portal de clientes", 1, 2)

	_, err := v.Project(validProjectDraft(), []models.Project{sameSet}, 0)
	assert.ErrorIs(t, err, ErrDuplicateProject)

	_, err = v.Project(validProjectDraft(), []models.Project{otherSet}, 0)
	assert.NoError(t, err)

	_, err = v.Project(validProjectDraft(), []models.Project{sameSet}, 5)
	assert.NoError(t, err, "a project is not a duplicate of itself")
}

func TestIsDuplicateProject_SingleEmbeddedWorker(t *testing.T) {
	existing := models.Project{ID: 2, Title: "Intranet", Worker: &models.Worker{ID: 7}}

	assert.True(t, IsDuplicateProject("intranet", []uint64{7}, []models.Project{existing}, 0))
	assert.False(t, IsDuplicateProject("intranet", []uint64{7, 8}, []models.Project{existing}, 0))
}

func TestParseDMY(t *testing.T) {
	got, err := ParseDMY("5/3/2026")
	require.NoError(t, err)
	assert.Equal(t, "5/3/2026", FormatDMY(got))

	got, err = ParseDMY("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, "5/3/2026", FormatDMY(got))

	for _, bad := range []string{"", "31/2/2026", "a/b/c", "1/1", "0/1/2026"} {
		_, err := ParseDMY(bad)
		assert.Error(t, err, bad)
	}
}
