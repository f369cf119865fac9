package dto

// CountStat is a named counter.
type CountStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats are the summary statistics rendered on the home screen.
type DashboardStats struct {
	TotalWorkers       int         `json:"totalTrabajadores"`
	ActiveWorkers      int         `json:"trabajadoresActivos"`
	TotalProjects      int         `json:"totalProyectos"`
	PendingProjects    int         `json:"proyectosPendientes"`
	InProgressProjects int         `json:"proyectosEnProgreso"`
	CompletedProjects  int         `json:"proyectosCompletados"`
	ProjectsByStatus   []CountStat `json:"proyectosPorEstado"`
	WorkersByRole      []CountStat `json:"cargos"`
	CompletionRate     int         `json:"tasaCompletado"`
	ProjectsPerWorker  string      `json:"proyectosPorTrabajador"`
}
