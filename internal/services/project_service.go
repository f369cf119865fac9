package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/hr-dashboard/internal/assignment"
	"github.com/yukikurage/hr-dashboard/internal/cache"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"github.com/yukikurage/hr-dashboard/internal/sequence"
	"github.com/yukikurage/hr-dashboard/internal/utils"
	"github.com/yukikurage/hr-dashboard/internal/validation"
	"go.uber.org/zap"
)

const projectsResource = "proyectos"

// ProjectService handles project business logic
type ProjectService struct {
	projects   ProjectGateway
	cache      *cache.SoftDeleteCache[models.Project]
	validator  *validation.Validator
	reconciler *assignment.Reconciler
	tracker    *sequence.Tracker
	logger     *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projects ProjectGateway,
	inactive *cache.SoftDeleteCache[models.Project],
	validator *validation.Validator,
	reconciler *assignment.Reconciler,
	tracker *sequence.Tracker,
	logger *zap.Logger,
) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		projects:   projects,
		cache:      inactive,
		validator:  validator,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     logger,
	}
}

// All returns the joined upstream projects merged with the cached inactive ones.
func (s *ProjectService) All(ctx context.Context) ([]models.Project, error) {
	token := s.tracker.Issue(projectsResource)

	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if !s.tracker.IsLatest(token) {
		s.logger.Debug("superseded project list, not persisting cache")
		return s.cache.View(ctx, projects), nil
	}
	return s.cache.Merge(ctx, projects), nil
}

// List returns the filtered and paginated projects with counters and the
// labels of every assigned worker.
func (s *ProjectService) List(ctx context.Context, filter ProjectFilter, page utils.PaginationParams) (*dto.ProjectListResponse, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterProjects(all, filter)
	items, pagination := utils.Paginate(filtered, page)

	return &dto.ProjectListResponse{
		Projects:     items,
		Counters:     CountProjects(all, filter.Status),
		WorkerLabels: WorkerLabels(all),
		Pagination:   pagination,
	}, nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, id uint64) (*models.Project, error) {
	return s.projects.Get(ctx, id)
}

// Create validates draft against the existing projects and submits it
func (s *ProjectService) Create(ctx context.Context, draft dto.ProjectPayload) (*models.Project, error) {
	payload, err := s.validator.Project(draft, s.existing(ctx), 0)
	if err != nil {
		return nil, err
	}
	return s.projects.Create(ctx, payload)
}

// Update validates draft and replaces the project identified by id
func (s *ProjectService) Update(ctx context.Context, id uint64, draft dto.ProjectPayload) (*models.Project, error) {
	payload, err := s.validator.Project(draft, s.existing(ctx), id)
	if err != nil {
		return nil, err
	}
	return s.projects.Update(ctx, id, payload)
}

func (s *ProjectService) existing(ctx context.Context) []models.Project {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		s.logger.Warn("failed to load projects for duplicate check", zap.Error(err))
		return nil
	}
	return s.cache.View(ctx, projects)
}

// UpdateStatus changes the workflow status of a project
func (s *ProjectService) UpdateStatus(ctx context.Context, id uint64, status models.ProjectStatus) (*models.Project, error) {
	if !status.Valid() {
		return nil, validation.ErrProjectStatusInvalid
	}
	return s.projects.UpdateStatus(ctx, id, status)
}

// ToggleStatus flips the registration status of a project and records the
// result in the soft-delete cache. An empty current status is looked up first.
func (s *ProjectService) ToggleStatus(ctx context.Context, id uint64, current models.RegistrationStatus) (*models.Project, error) {
	if current == "" {
		project, err := s.projects.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		current = project.RegistrationStatus
	}

	token := s.tracker.Issue(fmt.Sprintf("%s/%d", projectsResource, id))
	project, err := s.projects.ToggleStatus(ctx, id, current)
	if err != nil {
		return nil, err
	}

	if s.tracker.IsLatest(token) {
		s.cache.Sync(ctx, *project)
	}
	return project, nil
}

// ByWorker returns the projects a worker belongs to
func (s *ProjectService) ByWorker(ctx context.Context, workerID uint64) ([]models.Project, error) {
	return s.projects.ByWorker(ctx, workerID)
}

// ByStatus returns the projects in a workflow status
func (s *ProjectService) ByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	if !status.Valid() {
		return nil, validation.ErrProjectStatusInvalid
	}
	return s.projects.ByStatus(ctx, status)
}

// ToggleMember adds or removes workerID from the project's members
func (s *ProjectService) ToggleMember(ctx context.Context, id, workerID uint64) (*models.Project, error) {
	project, all, err := s.withCatalogue(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := s.reconciler.ToggleMember(project, workerID, all)
	if err != nil {
		return nil, err
	}
	return s.projects.Update(ctx, id, payload)
}

// SetMembers replaces the project's members with workerIDs
func (s *ProjectService) SetMembers(ctx context.Context, id uint64, workerIDs []uint64) (*models.Project, error) {
	project, all, err := s.withCatalogue(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := s.reconciler.SetMembers(project, workerIDs, all)
	if err != nil {
		return nil, err
	}
	return s.projects.Update(ctx, id, payload)
}

// withCatalogue returns the project identified by id with its associations
// resolved, together with every project.
func (s *ProjectService) withCatalogue(ctx context.Context, id uint64) (models.Project, []models.Project, error) {
	all, err := s.projects.ListAll(ctx)
	if err != nil {
		return models.Project{}, nil, err
	}

	for _, p := range all {
		if p.ID == id {
			return p, all, nil
		}
	}

	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return models.Project{}, nil, err
	}
	return *project, all, nil
}
