package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"golang.org/x/sync/errgroup"
)

const projectsPath = "/proyectos"

// ProjectGateway wraps the upstream project endpoints.
type ProjectGateway struct {
	client  *Client
	workers *WorkerGateway
}

// NewProjectGateway creates a new ProjectGateway. workers is used to resolve
// project associations in ListAll.
func NewProjectGateway(client *Client, workers *WorkerGateway) *ProjectGateway {
	return &ProjectGateway{client: client, workers: workers}
}

// ListRaw returns the projects exactly as the upstream lists them.
func (g *ProjectGateway) ListRaw(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := g.client.do(ctx, http.MethodGet, projectsPath, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAll returns every project with its worker associations resolved against
// the worker list. Projects and workers are fetched concurrently.
func (g *ProjectGateway) ListAll(ctx context.Context) ([]models.Project, error) {
	var (
		raw     []json.RawMessage
		workers []models.Worker
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return g.client.do(egCtx, http.MethodGet, projectsPath, nil, &raw)
	})
	eg.Go(func() error {
		var err error
		workers, err = g.workers.List(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(raw))
	for _, item := range raw {
		project, err := joinWorkers(item, workers)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// Get returns a single project.
func (g *ProjectGateway) Get(ctx context.Context, id uint64) (*models.Project, error) {
	var project models.Project
	if err := g.client.do(ctx, http.MethodGet, projectPath(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Create submits a new project.
func (g *ProjectGateway) Create(ctx context.Context, payload dto.ProjectPayload) (*models.Project, error) {
	var project models.Project
	if err := g.client.do(ctx, http.MethodPost, projectsPath, payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update replaces an existing project, including its worker ids.
func (g *ProjectGateway) Update(ctx context.Context, id uint64, payload dto.ProjectPayload) (*models.Project, error) {
	var project models.Project
	if err := g.client.do(ctx, http.MethodPut, projectPath(id), payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateStatus changes the workflow status of a project.
func (g *ProjectGateway) UpdateStatus(ctx context.Context, id uint64, status models.ProjectStatus) (*models.Project, error) {
	var project models.Project
	body := dto.ProjectStatusPayload{Status: status}
	if err := g.client.do(ctx, http.MethodPatch, projectPath(id)+"/estado-proyecto", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

type projectToggleResponse struct {
	Message string          `json:"message"`
	Project *models.Project `json:"proyecto"`
}

// ToggleStatus deactivates the project when current is ACTIVO and reactivates
// it otherwise, returning the project's new state.
func (g *ProjectGateway) ToggleStatus(ctx context.Context, id uint64, current models.RegistrationStatus) (*models.Project, error) {
	var resp projectToggleResponse
	if err := g.client.do(ctx, http.MethodPatch, togglePath(projectPath(id), current), struct{}{}, &resp); err != nil {
		return nil, err
	}
	if resp.Project != nil {
		return resp.Project, nil
	}
	return g.Get(ctx, id)
}

// ByWorker returns the projects the upstream associates with workerID.
func (g *ProjectGateway) ByWorker(ctx context.Context, workerID uint64) ([]models.Project, error) {
	projects := []models.Project{}
	path := fmt.Sprintf("%s/trabajador/%d", projectsPath, workerID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ByStatus returns the projects in the given workflow status.
func (g *ProjectGateway) ByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	projects := []models.Project{}
	path := projectsPath + "/estado/" + url.PathEscape(string(status))
	if err := g.client.do(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func projectPath(id uint64) string {
	return fmt.Sprintf("%s/%d", projectsPath, id)
}

// idExtractor reads worker ids from one historical shape of the project payload.
type idExtractor func(fields map[string]json.RawMessage) ([]uint64, bool)

// workerIDExtractors are tried in order after the "trabajadores" array.
var workerIDExtractors = []idExtractor{
	idList("trabajadorIds"),
	idList("trabajadoresIds"),
	singleID("trabajador_id"),
	singleID("trabajadorId"),
}

func idList(field string) idExtractor {
	return func(fields map[string]json.RawMessage) ([]uint64, bool) {
		raw, ok := fields[field]
		if !ok || !isJSONArray(raw) {
			return nil, false
		}
		var ids []uint64
		if err := json.Unmarshal(raw, &ids); err != nil {
			return []uint64{}, true
		}
		return ids, true
	}
}

func singleID(field string) idExtractor {
	return func(fields map[string]json.RawMessage) ([]uint64, bool) {
		raw, ok := fields[field]
		if !ok {
			return nil, false
		}
		var id uint64
		if err := json.Unmarshal(raw, &id); err != nil || id == 0 {
			return nil, false
		}
		return []uint64{id}, true
	}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// extractWorkerIDs runs the extractors in order; no match means no workers.
func extractWorkerIDs(fields map[string]json.RawMessage) []uint64 {
	for _, extract := range workerIDExtractors {
		if ids, ok := extract(fields); ok {
			return ids
		}
	}
	return []uint64{}
}

func joinWorkers(raw json.RawMessage, workers []models.Worker) (models.Project, error) {
	var project models.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return models.Project{}, fmt.Errorf("failed to decode project: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Project{}, fmt.Errorf("failed to decode project fields: %w", err)
	}
	if isJSONArray(fields["trabajadores"]) {
		return project, nil
	}

	wanted := make(map[uint64]struct{})
	for _, id := range extractWorkerIDs(fields) {
		wanted[id] = struct{}{}
	}

	assigned := make([]models.Worker, 0, len(wanted))
	for _, w := range workers {
		if _, ok := wanted[w.ID]; ok {
			assigned = append(assigned, w)
		}
	}

	project.Workers = assigned
	project.Worker = nil
	if len(assigned) > 0 {
		first := assigned[0]
		project.Worker = &first
	}
	return project, nil
}
