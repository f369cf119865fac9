package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/hr-dashboard/internal/assignment"
	"github.com/yukikurage/hr-dashboard/internal/cache"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"github.com/yukikurage/hr-dashboard/internal/sequence"
	"github.com/yukikurage/hr-dashboard/internal/utils"
	"github.com/yukikurage/hr-dashboard/internal/validation"
	"go.uber.org/zap"
)

const workersResource = "trabajadores"

const noProjectsAvailableMessage = "No hay proyectos disponibles para asignar."

// WorkerService handles worker business logic
type WorkerService struct {
	workers    WorkerGateway
	projects   ProjectGateway
	cache      *cache.SoftDeleteCache[models.Worker]
	validator  *validation.Validator
	reconciler *assignment.Reconciler
	tracker    *sequence.Tracker
	logger     *zap.Logger
}

// NewWorkerService creates a new WorkerService
func NewWorkerService(
	workers WorkerGateway,
	projects ProjectGateway,
	inactive *cache.SoftDeleteCache[models.Worker],
	validator *validation.Validator,
	reconciler *assignment.Reconciler,
	tracker *sequence.Tracker,
	logger *zap.Logger,
) *WorkerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkerService{
		workers:    workers,
		projects:   projects,
		cache:      inactive,
		validator:  validator,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     logger,
	}
}

// All returns the upstream workers merged with the cached inactive ones.
func (s *WorkerService) All(ctx context.Context) ([]models.Worker, error) {
	token := s.tracker.Issue(workersResource)

	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, err
	}

	if !s.tracker.IsLatest(token) {
		s.logger.Debug("superseded worker list, not persisting cache")
		return s.cache.View(ctx, workers), nil
	}
	return s.cache.Merge(ctx, workers), nil
}

// List returns the filtered and paginated workers together with the counters.
func (s *WorkerService) List(ctx context.Context, filter WorkerFilter, page utils.PaginationParams) (*dto.WorkerListResponse, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterWorkers(all, filter)
	items, pagination := utils.Paginate(filtered, page)

	return &dto.WorkerListResponse{
		Workers:    items,
		Counters:   CountWorkers(all),
		Pagination: pagination,
	}, nil
}

// Get returns a single worker
func (s *WorkerService) Get(ctx context.Context, id uint64) (*models.Worker, error) {
	return s.workers.Get(ctx, id)
}

// Create validates draft against the known workers and submits it
func (s *WorkerService) Create(ctx context.Context, draft dto.WorkerPayload) (*models.Worker, error) {
	payload, err := s.validator.Worker(draft, s.existing(ctx), 0)
	if err != nil {
		return nil, err
	}
	return s.workers.Create(ctx, payload)
}

// Update validates draft and replaces the worker identified by id
func (s *WorkerService) Update(ctx context.Context, id uint64, draft dto.WorkerPayload) (*models.Worker, error) {
	payload, err := s.validator.Worker(draft, s.existing(ctx), id)
	if err != nil {
		return nil, err
	}
	return s.workers.Update(ctx, id, payload)
}

// existing loads the workers used for duplicate detection. A failed load
// leaves the check to the upstream.
func (s *WorkerService) existing(ctx context.Context) []models.Worker {
	workers, err := s.workers.List(ctx)
	if err != nil {
		s.logger.Warn("failed to load workers for duplicate check", zap.Error(err))
		return nil
	}
	return s.cache.View(ctx, workers)
}

// ToggleStatus flips the registration status of a worker and records the
// result in the soft-delete cache. An empty current status is looked up first.
func (s *WorkerService) ToggleStatus(ctx context.Context, id uint64, current models.RegistrationStatus) (*models.Worker, error) {
	if current == "" {
		worker, err := s.workers.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		current = worker.RegistrationStatus
	}

	token := s.tracker.Issue(fmt.Sprintf("%s/%d", workersResource, id))
	worker, err := s.workers.ToggleStatus(ctx, id, current)
	if err != nil {
		return nil, err
	}

	if s.tracker.IsLatest(token) {
		s.cache.Sync(ctx, *worker)
	}
	return worker, nil
}

// Projects returns the projects the worker belongs to
func (s *WorkerService) Projects(ctx context.Context, id uint64) ([]models.Project, error) {
	return s.projects.ByWorker(ctx, id)
}

// AssignmentOptions lists the projects the worker can be assigned to
func (s *WorkerService) AssignmentOptions(ctx context.Context, id uint64) (*dto.AssignmentOptionsResponse, error) {
	current, err := s.projects.ByWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.AssignmentOptionsResponse{
		WorkerID:        id,
		Available:       []models.Project{},
		CurrentProjects: current,
	}

	if assignment.CountActive(current) >= constants.MaxProjectsPerWorker {
		resp.AtCapacity = true
		resp.Message = assignment.ErrWorkerAtCapacity.Error()
		return resp, nil
	}

	all, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp.Available, resp.PreselectedID = assignment.AvailableProjects(all, current)
	if len(resp.Available) == 0 {
		resp.Message = noProjectsAvailableMessage
	}
	return resp, nil
}

// AssignProject adds the worker to projectID, respecting both capacity limits
func (s *WorkerService) AssignProject(ctx context.Context, id, projectID uint64) (*models.Project, error) {
	worker, err := s.workers.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := s.projects.ByWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := s.reconciler.Assign(*worker, projectID, current, all)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.Update(ctx, projectID, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("worker assigned to project", zap.Uint64("worker_id", id), zap.Uint64("project_id", projectID))
	return project, nil
}
