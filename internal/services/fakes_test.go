package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

type fakeWorkerGateway struct {
	mu      sync.Mutex
	workers []models.Worker
	created []dto.WorkerPayload
	updated map[uint64]dto.WorkerPayload
	listErr error
	// listInactive makes List include INACTIVE workers, which the upstream normally omits.
	listInactive bool
	// beforeReturn runs after List has read its data, before it returns.
	beforeReturn func()
}

func (f *fakeWorkerGateway) List(context.Context) ([]models.Worker, error) {
	f.mu.Lock()
	if f.listErr != nil {
		f.mu.Unlock()
		return nil, f.listErr
	}
	var result []models.Worker
	for _, w := range f.workers {
		if f.listInactive || !w.IsInactive() {
			result = append(result, w)
		}
	}
	hook := f.beforeReturn
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return result, nil
}

func (f *fakeWorkerGateway) Get(_ context.Context, id uint64) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workers {
		if w.ID == id {
			found := w
			return &found, nil
		}
	}
	return nil, &gateway.StatusError{Status: http.StatusNotFound}
}

func (f *fakeWorkerGateway) Create(_ context.Context, payload dto.WorkerPayload) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, payload)
	w := models.Worker{
		ID:                 uint64(len(f.workers) + 100),
		FirstName:          payload.FirstName,
		LastName:           payload.LastName,
		Email:              payload.Email,
		RegistrationStatus: models.RegistrationActive,
	}
	f.workers = append(f.workers, w)
	return &w, nil
}

func (f *fakeWorkerGateway) Update(_ context.Context, id uint64, payload dto.WorkerPayload) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = make(map[uint64]dto.WorkerPayload)
	}
	f.updated[id] = payload
	return &models.Worker{ID: id, FirstName: payload.FirstName}, nil
}

func (f *fakeWorkerGateway) ToggleStatus(_ context.Context, id uint64, current models.RegistrationStatus) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.workers {
		if f.workers[i].ID != id {
			continue
		}
		if current == models.RegistrationActive {
			f.workers[i].RegistrationStatus = models.RegistrationInactive
		} else {
			f.workers[i].RegistrationStatus = models.RegistrationActive
		}
		found := f.workers[i]
		return &found, nil
	}
	return nil, &gateway.StatusError{Status: http.StatusNotFound}
}

type fakeProjectGateway struct {
	mu       sync.Mutex
	projects []models.Project
	byWorker map[uint64][]models.Project
	updates  map[uint64]dto.ProjectPayload
	created  []dto.ProjectPayload
	statuses map[uint64]models.ProjectStatus
}

func (f *fakeProjectGateway) ListRaw(ctx context.Context) ([]models.Project, error) {
	return f.ListAll(ctx)
}

func (f *fakeProjectGateway) ListAll(context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Project
	for _, p := range f.projects {
		if !p.IsInactive() {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProjectGateway) Get(_ context.Context, id uint64) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, &gateway.StatusError{Status: http.StatusNotFound}
}

func (f *fakeProjectGateway) Create(_ context.Context, payload dto.ProjectPayload) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, payload)
	return &models.Project{ID: 500, Title: payload.Title}, nil
}

func (f *fakeProjectGateway) Update(_ context.Context, id uint64, payload dto.ProjectPayload) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updates == nil {
		f.updates = make(map[uint64]dto.ProjectPayload)
	}
	f.updates[id] = payload
	return &models.Project{ID: id, Title: payload.Title}, nil
}

func (f *fakeProjectGateway) UpdateStatus(_ context.Context, id uint64, status models.ProjectStatus) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statuses == nil {
		f.statuses = make(map[uint64]models.ProjectStatus)
	}
	f.statuses[id] = status
	return &models.Project{ID: id, Status: status}, nil
}

func (f *fakeProjectGateway) ToggleStatus(_ context.Context, id uint64, current models.RegistrationStatus) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.projects {
		if f.projects[i].ID != id {
			continue
		}
		if current == models.RegistrationActive {
			f.projects[i].RegistrationStatus = models.RegistrationInactive
		} else {
			f.projects[i].RegistrationStatus = models.RegistrationActive
		}
		found := f.projects[i]
		return &found, nil
	}
	return nil, &gateway.StatusError{Status: http.StatusNotFound}
}

func (f *fakeProjectGateway) ByWorker(_ context.Context, workerID uint64) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byWorker[workerID], nil
}

func (f *fakeProjectGateway) ByStatus(_ context.Context, status models.ProjectStatus) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Project
	for _, p := range f.projects {
		if p.Status == status {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeAuthGateway struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthGateway) Login(context.Context, string, string) (*dto.LoginResponse, error) {
	return f.resp, f.err
}
