package validation

// Error is a field-level rejection produced by the validation engine.
// Every rejection is one of the sentinels below so callers can match with errors.Is.
type Error struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

func newError(field, code, message string) *Error {
	return &Error{Field: field, Code: code, Message: message}
}

// Worker rejections
var (
	ErrEmailHasSpaces         = newError("email", "EMAIL_HAS_SPACES", "El email no puede contener espacios")
	ErrPhoneNotNumeric        = newError("telefono", "PHONE_NOT_NUMERIC", "El teléfono solo puede contener números")
	ErrFirstNameTooShort      = newError("nombre", "FIRST_NAME_TOO_SHORT", "El nombre debe tener al menos 2 caracteres")
	ErrFirstNameNotLetters    = newError("nombre", "FIRST_NAME_NOT_LETTERS", "El nombre solo puede contener letras")
	ErrLastNameTooShort       = newError("apellido", "LAST_NAME_TOO_SHORT", "El apellido debe tener al menos 2 caracteres")
	ErrLastNameNotLetters     = newError("apellido", "LAST_NAME_NOT_LETTERS", "El apellido solo puede contener letras")
	ErrEmailRequired          = newError("email", "EMAIL_REQUIRED", "El email es obligatorio")
	ErrEmailInvalid           = newError("email", "EMAIL_INVALID", "Ingrese un email válido (ejemplo: usuario@empresa.com)")
	ErrPhoneRequired          = newError("telefono", "PHONE_REQUIRED", "El teléfono es obligatorio")
	ErrPhoneFormat            = newError("telefono", "PHONE_FORMAT", "El teléfono debe ser un número válido peruano (9 dígitos empezando con 9)")
	ErrDocumentTypeRequired   = newError("tipoDocumento", "DOCUMENT_TYPE_REQUIRED", "Debe seleccionar el tipo de documento")
	ErrDocumentNumberRequired = newError("numeroDocumento", "DOCUMENT_NUMBER_REQUIRED", "El número de documento es obligatorio")
	ErrDocumentNumberFormat   = newError("numeroDocumento", "DOCUMENT_NUMBER_FORMAT", "El número de documento no tiene el formato válido")
	ErrDuplicateWorker        = newError("trabajador", "DUPLICATE_WORKER", "Ya existe un trabajador con el mismo email, teléfono o documento")
	ErrHireDateRequired       = newError("fechaIngreso", "HIRE_DATE_REQUIRED", "La fecha de ingreso es obligatoria")
	ErrHireDateInvalid        = newError("fechaIngreso", "HIRE_DATE_INVALID", "La fecha de ingreso debe tener el formato D/M/AAAA")
	ErrHireDateInPast         = newError("fechaIngreso", "HIRE_DATE_IN_PAST", "La fecha de ingreso no puede ser anterior a la fecha actual")
	ErrRoleRequired           = newError("cargo", "ROLE_REQUIRED", "Debe seleccionar un cargo")
	ErrRoleInvalid            = newError("cargo", "ROLE_INVALID", "El cargo seleccionado no es válido")
)

// Project rejections
var (
	ErrTitleRequired            = newError("titulo", "TITLE_REQUIRED", "El título es obligatorio")
	ErrDescriptionRequired      = newError("descripcion", "DESCRIPTION_REQUIRED", "La descripción es obligatoria")
	ErrAssignmentDateRequired   = newError("fechaAsignacion", "ASSIGNMENT_DATE_REQUIRED", "La fecha de asignación es obligatoria")
	ErrDeadlineRequired         = newError("fechaLimite", "DEADLINE_REQUIRED", "La fecha límite es obligatoria")
	ErrAssignmentDateInvalid    = newError("fechaAsignacion", "ASSIGNMENT_DATE_INVALID", "La fecha de asignación debe tener el formato D/M/AAAA")
	ErrDeadlineInvalid          = newError("fechaLimite", "DEADLINE_INVALID", "La fecha límite debe tener el formato D/M/AAAA")
	ErrAssignmentDateInPast     = newError("fechaAsignacion", "ASSIGNMENT_DATE_IN_PAST", "La fecha de asignación no puede ser anterior a la fecha actual")
	ErrDeadlineBeforeAssignment = newError("fechaLimite", "DEADLINE_BEFORE_ASSIGNMENT", "La fecha límite no puede ser anterior a la fecha de asignación")
	ErrWorkersRequired          = newError("trabajadorIds", "WORKERS_REQUIRED", "Debe seleccionar al menos un trabajador")
	ErrTooManyWorkers           = newError("trabajadorIds", "TOO_MANY_WORKERS", "Solo puedes seleccionar hasta 3 trabajadores")
	ErrDuplicateProject         = newError("titulo", "DUPLICATE_PROJECT", "Ya existe un proyecto con el mismo título y trabajador")
	ErrProjectStatusInvalid     = newError("estado", "PROJECT_STATUS_INVALID", "El estado del proyecto no es válido")
)
