package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

const workersPath = "/trabajadores"

// WorkerGateway wraps the upstream worker endpoints.
type WorkerGateway struct {
	client *Client
}

// NewWorkerGateway creates a new WorkerGateway
func NewWorkerGateway(client *Client) *WorkerGateway {
	return &WorkerGateway{client: client}
}

// List returns every worker the upstream lists.
func (g *WorkerGateway) List(ctx context.Context) ([]models.Worker, error) {
	workers := []models.Worker{}
	if err := g.client.do(ctx, http.MethodGet, workersPath, nil, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// Get returns a single worker.
func (g *WorkerGateway) Get(ctx context.Context, id uint64) (*models.Worker, error) {
	var worker models.Worker
	if err := g.client.do(ctx, http.MethodGet, workerPath(id), nil, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

// Create submits a new worker.
func (g *WorkerGateway) Create(ctx context.Context, payload dto.WorkerPayload) (*models.Worker, error) {
	var worker models.Worker
	if err := g.client.do(ctx, http.MethodPost, workersPath, payload, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

// Update replaces an existing worker.
func (g *WorkerGateway) Update(ctx context.Context, id uint64, payload dto.WorkerPayload) (*models.Worker, error) {
	var worker models.Worker
	if err := g.client.do(ctx, http.MethodPut, workerPath(id), payload, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

type workerToggleResponse struct {
	Message string         `json:"message"`
	Worker  *models.Worker `json:"trabajador"`
}

// ToggleStatus deactivates the worker when current is ACTIVO and reactivates
// it otherwise, returning the worker's new state.
func (g *WorkerGateway) ToggleStatus(ctx context.Context, id uint64, current models.RegistrationStatus) (*models.Worker, error) {
	var resp workerToggleResponse
	if err := g.client.do(ctx, http.MethodPatch, togglePath(workerPath(id), current), struct{}{}, &resp); err != nil {
		return nil, err
	}
	if resp.Worker != nil {
		return resp.Worker, nil
	}
	return g.Get(ctx, id)
}

func workerPath(id uint64) string {
	return fmt.Sprintf("%s/%d", workersPath, id)
}

func togglePath(base string, current models.RegistrationStatus) string {
	if current == models.RegistrationActive {
		return base + "/desactivar"
	}
	return base + "/reactivar"
}
