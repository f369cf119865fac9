package validation

import (
	"slices"
	"strings"

	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

// Project normalizes draft and validates it against the business rules, checking
// for duplicates among existing. editingID is the id of the project being edited,
// or zero when creating.
func (v *Validator) Project(draft dto.ProjectPayload, existing []models.Project, editingID uint64) (dto.ProjectPayload, error) {
	p := draft
	p.Title = NormalizeTitle(draft.Title)
	p.Description = strings.TrimSpace(draft.Description)
	p.WorkerIDs = uniqueIDs(draft.WorkerIDs)

	if p.Title == "" {
		return p, ErrTitleRequired
	}
	if p.Description == "" {
		return p, ErrDescriptionRequired
	}
	if strings.TrimSpace(p.AssignmentDate) == "" {
		return p, ErrAssignmentDateRequired
	}
	if strings.TrimSpace(p.Deadline) == "" {
		return p, ErrDeadlineRequired
	}

	assigned, err := ParseDMY(p.AssignmentDate)
	if err != nil {
		return p, ErrAssignmentDateInvalid
	}
	if editingID == 0 && assigned.Before(v.Today()) {
		return p, ErrAssignmentDateInPast
	}

	deadline, err := ParseDMY(p.Deadline)
	if err != nil {
		return p, ErrDeadlineInvalid
	}
	if deadline.Before(assigned) {
		return p, ErrDeadlineBeforeAssignment
	}

	if len(p.WorkerIDs) == 0 {
		return p, ErrWorkersRequired
	}
	if len(p.WorkerIDs) > constants.MaxWorkersPerProject {
		return p, ErrTooManyWorkers
	}

	if IsDuplicateProject(p.Title, p.WorkerIDs, existing, editingID) {
		return p, ErrDuplicateProject
	}

	if p.Status != "" && !p.Status.Valid() {
		return p, ErrProjectStatusInvalid
	}

	return p, nil
}

// IsDuplicateProject reports whether a project other than editingID has the same
// case-insensitive title and exactly the same set of worker ids.
func IsDuplicateProject(title string, workerIDs []uint64, existing []models.Project, editingID uint64) bool {
	wanted := sortedIDs(workerIDs)
	lowered := strings.ToLower(title)

	for _, other := range existing {
		if editingID != 0 && other.ID == editingID {
			continue
		}
		if strings.ToLower(other.Title) != lowered {
			continue
		}
		if slices.Equal(sortedIDs(other.WorkerIDs()), wanted) {
			return true
		}
	}
	return false
}

func sortedIDs(ids []uint64) []uint64 {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return sorted
}

// uniqueIDs removes duplicate ids keeping the first occurrence order.
func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	result := make([]uint64, 0, len(ids))

	for _, id := range ids {
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
