package services

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"golang.org/x/sync/errgroup"
)

// StatsService computes the dashboard statistics
type StatsService struct {
	workers  WorkerGateway
	projects ProjectGateway
}

// NewStatsService creates a new StatsService
func NewStatsService(workers WorkerGateway, projects ProjectGateway) *StatsService {
	return &StatsService{workers: workers, projects: projects}
}

// Dashboard fetches workers and projects concurrently and summarises them
func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	var (
		workers  []models.Worker
		projects []models.Project
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		workers, err = s.workers.List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		projects, err = s.projects.ListRaw(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return ComputeStats(workers, projects), nil
}

// ComputeStats summarises workers and projects
func ComputeStats(workers []models.Worker, projects []models.Project) *dto.DashboardStats {
	stats := &dto.DashboardStats{
		TotalWorkers:  len(workers),
		TotalProjects: len(projects),
	}

	for _, w := range workers {
		if w.IsActive() {
			stats.ActiveWorkers++
		}
	}

	byStatus := make(map[models.ProjectStatus]int, len(models.ProjectStatuses))
	for _, p := range projects {
		byStatus[p.Status]++
	}
	stats.PendingProjects = byStatus[models.ProjectPending]
	stats.InProgressProjects = byStatus[models.ProjectInProgress]
	stats.CompletedProjects = byStatus[models.ProjectCompleted]

	stats.ProjectsByStatus = make([]dto.CountStat, 0, len(models.ProjectStatuses))
	for _, status := range models.ProjectStatuses {
		stats.ProjectsByStatus = append(stats.ProjectsByStatus, dto.CountStat{Name: string(status), Count: byStatus[status]})
	}

	byRole := make(map[models.Role]int, len(models.Roles))
	for _, w := range workers {
		byRole[w.Role]++
	}
	stats.WorkersByRole = make([]dto.CountStat, 0, len(models.Roles))
	for _, role := range models.Roles {
		stats.WorkersByRole = append(stats.WorkersByRole, dto.CountStat{Name: string(role), Count: byRole[role]})
	}
	slices.SortStableFunc(stats.WorkersByRole, func(a, b dto.CountStat) int {
		return b.Count - a.Count
	})

	if stats.TotalProjects > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedProjects) / float64(stats.TotalProjects) * 100))
	}

	stats.ProjectsPerWorker = "0"
	if stats.ActiveWorkers > 0 {
		stats.ProjectsPerWorker = fmt.Sprintf("%.1f", float64(stats.TotalProjects)/float64(stats.ActiveWorkers))
	}

	return stats
}
