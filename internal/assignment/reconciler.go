package assignment

import (
	"errors"
	"slices"
	"strings"

	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

var (
	ErrWorkerAtCapacity    = errors.New("El trabajador ya tiene 3 proyectos activos (máximo permitido).")
	ErrProjectAtCapacity   = errors.New("Este proyecto ya tiene 3 trabajadores asignados (máximo permitido).")
	ErrMaxWorkers          = errors.New("Máximo 3 trabajadores por proyecto.")
	ErrNoWorkersSelected   = errors.New("Selecciona al menos un trabajador.")
	ErrProjectNotAvailable = errors.New("Proyecto inválido.")
)

// Reconciler keeps project membership within the capacity limits of both sides.
type Reconciler struct {
	// Strict makes the project-side operations also enforce the per-worker cap.
	Strict bool
}

// NewReconciler creates a Reconciler.
func NewReconciler(strict bool) *Reconciler {
	return &Reconciler{Strict: strict}
}

// Assign adds worker to the project targetProjectID. workerProjects are the
// projects the worker currently belongs to and allProjects is the catalogue the
// target is chosen from. The returned payload is the full project update.
func (r *Reconciler) Assign(worker models.Worker, targetProjectID uint64, workerProjects, allProjects []models.Project) (dto.ProjectPayload, error) {
	if CountActive(workerProjects) >= constants.MaxProjectsPerWorker {
		return dto.ProjectPayload{}, ErrWorkerAtCapacity
	}

	target, ok := findAvailable(allProjects, targetProjectID)
	if !ok {
		return dto.ProjectPayload{}, ErrProjectNotAvailable
	}

	current := target.WorkerIDs()
	if !slices.Contains(current, worker.ID) && len(current) >= constants.MaxWorkersPerProject {
		return dto.ProjectPayload{}, ErrProjectAtCapacity
	}

	return dto.ToProjectPayload(target, union(current, worker.ID)), nil
}

// ToggleMember removes workerID from project when it is a member and adds it
// otherwise. allProjects is only consulted in strict mode.
func (r *Reconciler) ToggleMember(project models.Project, workerID uint64, allProjects []models.Project) (dto.ProjectPayload, error) {
	current := project.WorkerIDs()

	if slices.Contains(current, workerID) {
		remaining := make([]uint64, 0, len(current))
		for _, id := range current {
			if id != workerID {
				remaining = append(remaining, id)
			}
		}
		return dto.ToProjectPayload(project, remaining), nil
	}

	if len(current) >= constants.MaxWorkersPerProject {
		return dto.ProjectPayload{}, ErrMaxWorkers
	}
	if r.Strict && r.workerFull(workerID, project.ID, allProjects) {
		return dto.ProjectPayload{}, ErrWorkerAtCapacity
	}

	return dto.ToProjectPayload(project, union(current, workerID)), nil
}

// SetMembers replaces the members of project with workerIDs.
func (r *Reconciler) SetMembers(project models.Project, workerIDs []uint64, allProjects []models.Project) (dto.ProjectPayload, error) {
	ids := union(workerIDs)
	if len(ids) == 0 {
		return dto.ProjectPayload{}, ErrNoWorkersSelected
	}
	if len(ids) > constants.MaxWorkersPerProject {
		return dto.ProjectPayload{}, ErrMaxWorkers
	}

	if r.Strict {
		for _, id := range ids {
			if project.HasWorker(id) {
				continue
			}
			if r.workerFull(id, project.ID, allProjects) {
				return dto.ProjectPayload{}, ErrWorkerAtCapacity
			}
		}
	}

	return dto.ToProjectPayload(project, ids), nil
}

// workerFull reports whether workerID already belongs to the maximum number of
// active projects, not counting skipProjectID.
func (r *Reconciler) workerFull(workerID, skipProjectID uint64, allProjects []models.Project) bool {
	count := 0
	for _, p := range allProjects {
		if p.ID != skipProjectID && p.IsActive() && p.HasWorker(workerID) {
			count++
		}
	}
	return count >= constants.MaxProjectsPerWorker
}

// AvailableProjects returns the projects a worker may be assigned to, sorted by
// title, and the id of the first one the worker already belongs to, if any.
func AvailableProjects(allProjects, workerProjects []models.Project) ([]models.Project, *uint64) {
	available := make([]models.Project, 0, len(allProjects))
	for _, p := range allProjects {
		if isAvailable(p) {
			available = append(available, p)
		}
	}
	slices.SortStableFunc(available, func(a, b models.Project) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

	current := make(map[uint64]struct{}, len(workerProjects))
	for _, p := range workerProjects {
		current[p.ID] = struct{}{}
	}
	for _, p := range available {
		if _, ok := current[p.ID]; ok {
			id := p.ID
			return available, &id
		}
	}
	return available, nil
}

// CountActive counts the projects whose registration status is ACTIVO.
func CountActive(projects []models.Project) int {
	count := 0
	for _, p := range projects {
		if p.IsActive() {
			count++
		}
	}
	return count
}

func isAvailable(p models.Project) bool {
	return p.RegistrationStatus == "" || p.IsActive()
}

func findAvailable(projects []models.Project, id uint64) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id && isAvailable(p) {
			return p, true
		}
	}
	return models.Project{}, false
}

// union returns ids followed by extra without duplicates, keeping first occurrences.
func union(ids []uint64, extra ...uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids)+len(extra))
	result := make([]uint64, 0, len(ids)+len(extra))
	for _, id := range append(slices.Clone(ids), extra...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
