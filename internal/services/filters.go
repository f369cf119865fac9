package services

import (
	"errors"
	"slices"
	"strings"

	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

// RegistrationAll disables the registration status filter.
const RegistrationAll = "TODOS"

var ErrInvalidRegistrationFilter = errors.New("registration filter must be TODOS, ACTIVO or INACTIVO")

// ParseRegistrationFilter validates a registration filter. Empty means ACTIVO.
func ParseRegistrationFilter(value string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "":
		return string(models.RegistrationActive), nil
	case RegistrationAll:
		return RegistrationAll, nil
	case string(models.RegistrationActive):
		return string(models.RegistrationActive), nil
	case string(models.RegistrationInactive):
		return string(models.RegistrationInactive), nil
	default:
		return "", ErrInvalidRegistrationFilter
	}
}

// WorkerFilter holds filtering options for listing workers
type WorkerFilter struct {
	Registration string
	Name         string
	HireDate     string
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	Registration   string
	Status         models.ProjectStatus
	Title          string
	WorkerLabel    string
	AssignmentDate string
}

func matchesRegistration(filter string, status models.RegistrationStatus) bool {
	return filter == "" || filter == RegistrationAll || string(status) == filter
}

// FilterWorkers applies the registration, name and hire-date filters in that order.
func FilterWorkers(workers []models.Worker, f WorkerFilter) []models.Worker {
	name := strings.ToLower(f.Name)
	result := make([]models.Worker, 0, len(workers))

	for _, w := range workers {
		if !matchesRegistration(f.Registration, w.RegistrationStatus) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(w.FullName()), name) {
			continue
		}
		if f.HireDate != "" && !strings.Contains(w.HireDate, f.HireDate) {
			continue
		}
		result = append(result, w)
	}

	return result
}

// CountWorkers counts workers by registration status.
func CountWorkers(workers []models.Worker) dto.WorkerCounters {
	counters := dto.WorkerCounters{Total: len(workers)}
	for _, w := range workers {
		switch w.RegistrationStatus {
		case models.RegistrationActive:
			counters.Active++
		case models.RegistrationInactive:
			counters.Inactive++
		}
	}
	return counters
}

// FilterProjects applies the registration, status, title, worker and
// assignment-date filters in that order.
func FilterProjects(projects []models.Project, f ProjectFilter) []models.Project {
	title := strings.ToLower(f.Title)
	result := make([]models.Project, 0, len(projects))

	for _, p := range projects {
		if !matchesRegistration(f.Registration, p.RegistrationStatus) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(p.Title), title) {
			continue
		}
		if f.WorkerLabel != "" && !hasWorkerLabel(p, f.WorkerLabel) {
			continue
		}
		if f.AssignmentDate != "" && !strings.Contains(p.AssignmentDate, f.AssignmentDate) {
			continue
		}
		result = append(result, p)
	}

	return result
}

func hasWorkerLabel(p models.Project, label string) bool {
	for _, w := range p.AssignedWorkers() {
		if w.Label() == label {
			return true
		}
	}
	return false
}

// CountProjects counts projects by registration status, restricted to status when set.
func CountProjects(projects []models.Project, status models.ProjectStatus) dto.ProjectCounters {
	var counters dto.ProjectCounters
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		counters.Total++
		switch p.RegistrationStatus {
		case models.RegistrationActive:
			counters.Active++
		case models.RegistrationInactive:
			counters.Inactive++
		}
	}
	return counters
}

// WorkerLabels returns the sorted distinct labels of every worker assigned to a project.
func WorkerLabels(projects []models.Project) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)

	for _, p := range projects {
		for _, w := range p.AssignedWorkers() {
			label := w.Label()
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	slices.Sort(labels)
	return labels
}
