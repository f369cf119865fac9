package dto

import "github.com/yukikurage/hr-dashboard/internal/models"

// WorkerPayload is the body sent upstream when creating or updating a worker.
type WorkerPayload struct {
	FirstName      string              `json:"nombre"`
	LastName       string              `json:"apellido"`
	Email          string              `json:"email"`
	Phone          string              `json:"telefono"`
	HireDate       string              `json:"fechaIngreso"`
	Role           models.Role         `json:"cargo"`
	DocumentType   models.DocumentType `json:"tipoDocumento"`
	DocumentNumber string              `json:"numeroDocumento"`
}

// ToWorkerPayload converts a Worker into its editable payload.
func ToWorkerPayload(w models.Worker) WorkerPayload {
	return WorkerPayload{
		FirstName:      w.FirstName,
		LastName:       w.LastName,
		Email:          w.Email,
		Phone:          w.Phone,
		HireDate:       w.HireDate,
		Role:           w.Role,
		DocumentType:   w.DocumentType,
		DocumentNumber: w.DocumentNumber,
	}
}

// WorkerCounters summarises a worker list by registration status.
type WorkerCounters struct {
	Total    int `json:"total"`
	Active   int `json:"activos"`
	Inactive int `json:"inactivos"`
}

// WorkerListResponse represents a filtered, paginated list of workers
type WorkerListResponse struct {
	Workers    []models.Worker    `json:"trabajadores"`
	Counters   WorkerCounters     `json:"contadores"`
	Pagination PaginationResponse `json:"pagination"`
}

// AssignmentOptionsResponse lists the projects a worker can be assigned to.
type AssignmentOptionsResponse struct {
	WorkerID        uint64           `json:"trabajadorId"`
	AtCapacity      bool             `json:"limiteAlcanzado"`
	Message         string           `json:"mensaje,omitempty"`
	Available       []models.Project `json:"proyectosDisponibles"`
	PreselectedID   *uint64          `json:"proyectoPreseleccionadoId,omitempty"`
	CurrentProjects []models.Project `json:"proyectosActuales"`
}

// AssignProjectRequest selects the project a worker is assigned to.
type AssignProjectRequest struct {
	ProjectID uint64 `json:"proyectoId" binding:"required"`
}

// ToggleStatusRequest optionally carries the registration status the client saw.
type ToggleStatusRequest struct {
	Current models.RegistrationStatus `json:"estadoActual"`
}
