package dto

import "github.com/yukikurage/hr-dashboard/internal/models"

// ProjectPayload is the body sent upstream when creating or updating a project.
type ProjectPayload struct {
	Title          string               `json:"titulo"`
	Description    string               `json:"descripcion"`
	AssignmentDate string               `json:"fechaAsignacion"`
	Deadline       string               `json:"fechaLimite"`
	WorkerIDs      []uint64             `json:"trabajadorIds"`
	Status         models.ProjectStatus `json:"estado,omitempty"`
}

// ToProjectPayload converts a Project into a full update payload carrying workerIDs.
func ToProjectPayload(p models.Project, workerIDs []uint64) ProjectPayload {
	return ProjectPayload{
		Title:          p.Title,
		Description:    p.Description,
		AssignmentDate: p.AssignmentDate,
		Deadline:       p.Deadline,
		WorkerIDs:      workerIDs,
		Status:         p.Status,
	}
}

// ProjectStatusPayload is the body of PATCH /proyectos/{id}/estado-proyecto.
type ProjectStatusPayload struct {
	Status models.ProjectStatus `json:"estado"`
}

// ProjectCounters summarises a project list by registration status.
type ProjectCounters struct {
	Total    int `json:"total"`
	Active   int `json:"activos"`
	Inactive int `json:"inactivos"`
}

// ProjectListResponse represents a filtered, paginated list of projects
type ProjectListResponse struct {
	Projects     []models.Project   `json:"proyectos"`
	Counters     ProjectCounters    `json:"contadores"`
	WorkerLabels []string           `json:"trabajadoresUnicos"`
	Pagination   PaginationResponse `json:"pagination"`
}

// SetMembersRequest replaces the workers of a project.
type SetMembersRequest struct {
	WorkerIDs []uint64 `json:"trabajadorIds"`
}
