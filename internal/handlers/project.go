package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	apierrors "github.com/yukikurage/hr-dashboard/internal/errors"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"github.com/yukikurage/hr-dashboard/internal/services"
	"github.com/yukikurage/hr-dashboard/internal/utils"
	"github.com/yukikurage/hr-dashboard/internal/validation"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects handles GET /api/proyectos
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	registration, err := services.ParseRegistrationFilter(c.Query("registro"))
	if err != nil {
		respondError(c, err)
		return
	}

	status := models.ProjectStatus(strings.ToUpper(c.Query("estado")))
	if status != "" && !status.Valid() {
		respondError(c, validation.ErrProjectStatusInvalid)
		return
	}

	filter := services.ProjectFilter{
		Registration:   registration,
		Status:         status,
		Title:          c.Query("titulo"),
		WorkerLabel:    c.Query("trabajador"),
		AssignmentDate: c.Query("fecha"),
	}

	resp, err := h.projectService.List(c.Request.Context(), filter, utils.GetPaginationParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProject handles GET /api/proyectos/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/proyectos
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /api/proyectos/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ProjectPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateStatus handles PATCH /api/proyectos/:id/estado-proyecto
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ProjectStatusPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ToggleStatus handles PATCH /api/proyectos/:id/estado
func (h *ProjectHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ToggleStatusRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	project, err := h.projectService.ToggleStatus(c.Request.Context(), id, req.Current)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListByWorker handles GET /api/proyectos/trabajador/:workerId
func (h *ProjectHandler) ListByWorker(c *gin.Context) {
	workerID, ok := parseID(c, "workerId")
	if !ok {
		return
	}

	projects, err := h.projectService.ByWorker(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListByStatus handles GET /api/proyectos/estado/:estado
func (h *ProjectHandler) ListByStatus(c *gin.Context) {
	status := models.ProjectStatus(strings.ToUpper(c.Param("estado")))

	projects, err := h.projectService.ByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// SetMembers handles PUT /api/proyectos/:id/trabajadores
func (h *ProjectHandler) SetMembers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.SetMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.SetMembers(c.Request.Context(), id, req.WorkerIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Trabajador asignado correctamente.",
		"proyecto": project,
	})
}

// ToggleMember handles POST /api/proyectos/:id/trabajadores/:workerId
func (h *ProjectHandler) ToggleMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	workerID, ok := parseID(c, "workerId")
	if !ok {
		return
	}

	project, err := h.projectService.ToggleMember(c.Request.Context(), id, workerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
