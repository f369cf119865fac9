package constants

// Session and context keys
const (
	SessionCookieName     = "hr_session"
	SessionKeyToken       = "token"
	SessionKeyUsername    = "username"
	SessionKeyRole        = "role"
	ContextKeyToken       = "token"
	ContextKeyUsername    = "username"
	ContextKeyRole        = "role"
	ContextKeyRequestID   = "request_id"
	HeaderRequestID       = "X-Request-ID"
	AdminRole             = "ROLE_ADMIN"
	LoginRedirectLocation = "/login"
)

// Assignment limits
const (
	MaxWorkersPerProject = 3
	MaxProjectsPerWorker = 3
)

// Validation limits
const (
	MinNameLength = 2
)

// Soft-delete cache namespaces
const (
	WorkerCacheKey  = "trabajadores_inactivos_cache"
	ProjectCacheKey = "proyectos_inactivos_cache"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)
