package models

// Worker is an employee record as returned by the upstream API.
type Worker struct {
	ID                 uint64             `json:"id"`
	FirstName          string             `json:"nombre"`
	LastName           string             `json:"apellido"`
	Email              string             `json:"email"`
	Phone              string             `json:"telefono"`
	HireDate           string             `json:"fechaIngreso"`
	Role               Role               `json:"cargo"`
	RegistrationStatus RegistrationStatus `json:"estadoRegistro"`
	DocumentType       DocumentType       `json:"tipoDocumento"`
	DocumentNumber     string             `json:"numeroDocumento"`
}

// EntityID returns the upstream identifier.
func (w Worker) EntityID() uint64 {
	return w.ID
}

// IsInactive reports whether the worker has been soft-deleted.
func (w Worker) IsInactive() bool {
	return w.RegistrationStatus == RegistrationInactive
}

// IsActive reports whether the worker is active.
func (w Worker) IsActive() bool {
	return w.RegistrationStatus == RegistrationActive
}

// FullName returns "nombre apellido".
func (w Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}

// Label returns the "nombre apellido - cargo" label used to search projects by worker.
func (w Worker) Label() string {
	return w.FullName() + " - " + string(w.Role)
}
