package services

import (
	"context"

	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

// AuthGateway exchanges credentials for an upstream token
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
}

// WorkerGateway is the upstream worker API
type WorkerGateway interface {
	List(ctx context.Context) ([]models.Worker, error)
	Get(ctx context.Context, id uint64) (*models.Worker, error)
	Create(ctx context.Context, payload dto.WorkerPayload) (*models.Worker, error)
	Update(ctx context.Context, id uint64, payload dto.WorkerPayload) (*models.Worker, error)
	ToggleStatus(ctx context.Context, id uint64, current models.RegistrationStatus) (*models.Worker, error)
}

// ProjectGateway is the upstream project API
type ProjectGateway interface {
	ListRaw(ctx context.Context) ([]models.Project, error)
	ListAll(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id uint64) (*models.Project, error)
	Create(ctx context.Context, payload dto.ProjectPayload) (*models.Project, error)
	Update(ctx context.Context, id uint64, payload dto.ProjectPayload) (*models.Project, error)
	UpdateStatus(ctx context.Context, id uint64, status models.ProjectStatus) (*models.Project, error)
	ToggleStatus(ctx context.Context, id uint64, current models.RegistrationStatus) (*models.Project, error)
	ByWorker(ctx context.Context, workerID uint64) ([]models.Project, error)
	ByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error)
}
