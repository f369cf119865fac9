package models

// Project is a unit of work with up to three assigned workers.
type Project struct {
	ID                 uint64             `json:"id"`
	Title              string             `json:"titulo"`
	Description        string             `json:"descripcion"`
	AssignmentDate     string             `json:"fechaAsignacion"`
	Deadline           string             `json:"fechaLimite"`
	Status             ProjectStatus      `json:"estado"`
	RegistrationStatus RegistrationStatus `json:"estadoRegistro"`

	// Relations
	Worker  *Worker  `json:"trabajador,omitempty"`
	Workers []Worker `json:"trabajadores,omitempty"`
}

// EntityID returns the upstream identifier.
func (p Project) EntityID() uint64 {
	return p.ID
}

// IsInactive reports whether the project has been soft-deleted.
func (p Project) IsInactive() bool {
	return p.RegistrationStatus == RegistrationInactive
}

// IsActive reports whether the project is active.
func (p Project) IsActive() bool {
	return p.RegistrationStatus == RegistrationActive
}

// AssignedWorkers returns the workers associated with the project, falling back
// to the single embedded worker when the array is absent.
func (p Project) AssignedWorkers() []Worker {
	if p.Workers != nil {
		return p.Workers
	}
	if p.Worker != nil {
		return []Worker{*p.Worker}
	}
	return []Worker{}
}

// WorkerIDs returns the ids of the associated workers.
func (p Project) WorkerIDs() []uint64 {
	workers := p.AssignedWorkers()
	ids := make([]uint64, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}
	return ids
}

// HasWorker reports whether workerID is associated with the project.
func (p Project) HasWorker(workerID uint64) bool {
	for _, id := range p.WorkerIDs() {
		if id == workerID {
			return true
		}
	}
	return false
}
