package models

// RegistrationStatus is the soft-delete flag shared by workers and projects.
type RegistrationStatus string

const (
	RegistrationActive   RegistrationStatus = "ACTIVO"
	RegistrationInactive RegistrationStatus = "INACTIVO"
)

// ProjectStatus is the workflow state of a project.
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "PENDIENTE"
	ProjectInProgress ProjectStatus = "EN_PROGRESO"
	ProjectCompleted  ProjectStatus = "COMPLETADO"
	ProjectCancelled  ProjectStatus = "CANCELADO"
)

// ProjectStatuses lists every project status in display order.
var ProjectStatuses = []ProjectStatus{
	ProjectPending,
	ProjectInProgress,
	ProjectCompleted,
	ProjectCancelled,
}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DocumentType identifies the kind of identity document a worker holds.
type DocumentType string

const (
	DocumentDNI               DocumentType = "DNI"
	DocumentCarnetExtranjeria DocumentType = "CARNET_EXTRANJERIA"
	DocumentRUC               DocumentType = "RUC"
	DocumentRIF               DocumentType = "RIF"
)

// DocumentTypes lists every supported document type.
var DocumentTypes = []DocumentType{
	DocumentDNI,
	DocumentCarnetExtranjeria,
	DocumentRUC,
	DocumentRIF,
}

// Role is a worker's job title.
type Role string

const (
	RoleProgrammer     Role = "PROGRAMADOR"
	RoleAnalyst        Role = "ANALISTA"
	RoleDesigner       Role = "DISENADOR"
	RoleTester         Role = "TESTER"
	RoleProjectManager Role = "GERENTE_PROYECTO"
	RoleAdministrator  Role = "ADMINISTRADOR"
	RoleSupport        Role = "SOPORTE"
)

// Roles lists every job title in display order.
var Roles = []Role{
	RoleProgrammer,
	RoleAnalyst,
	RoleDesigner,
	RoleTester,
	RoleProjectManager,
	RoleAdministrator,
	RoleSupport,
}
