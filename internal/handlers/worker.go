package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	apierrors "github.com/yukikurage/hr-dashboard/internal/errors"
	"github.com/yukikurage/hr-dashboard/internal/services"
	"github.com/yukikurage/hr-dashboard/internal/utils"
)

// WorkerHandler handles worker-related HTTP requests
type WorkerHandler struct {
	workerService *services.WorkerService
}

// NewWorkerHandler creates a new WorkerHandler
func NewWorkerHandler(workerService *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// ListWorkers handles GET /api/trabajadores
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	registration, err := services.ParseRegistrationFilter(c.Query("registro"))
	if err != nil {
		respondError(c, err)
		return
	}

	filter := services.WorkerFilter{
		Registration: registration,
		Name:         c.Query("nombre"),
		HireDate:     c.Query("fecha"),
	}

	resp, err := h.workerService.List(c.Request.Context(), filter, utils.GetPaginationParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorker handles GET /api/trabajadores/:id
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// CreateWorker handles POST /api/trabajadores
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req dto.WorkerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// UpdateWorker handles PUT /api/trabajadores/:id
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.WorkerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ToggleStatus handles PATCH /api/trabajadores/:id/estado
func (h *WorkerHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ToggleStatusRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	worker, err := h.workerService.ToggleStatus(c.Request.Context(), id, req.Current)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ListProjects handles GET /api/trabajadores/:id/proyectos
func (h *WorkerHandler) ListProjects(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	projects, err := h.workerService.Projects(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// AssignmentOptions handles GET /api/trabajadores/:id/asignacion
func (h *WorkerHandler) AssignmentOptions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.workerService.AssignmentOptions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssignProject handles POST /api/trabajadores/:id/asignacion
func (h *WorkerHandler) AssignProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.AssignProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Selecciona un proyecto disponible.")
		return
	}

	project, err := h.workerService.AssignProject(c.Request.Context(), id, req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Proyecto asignado correctamente.",
		"proyecto": project,
	})
}
