package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

var (
	nameDisallowed  = regexp.MustCompile(`[^a-zA-ZáéíóúÁÉÍÓÚñÑ\s]`)
	namePattern     = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	whitespace      = regexp.MustCompile(`\s`)
	nonDigit        = regexp.MustCompile(`[^0-9]`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^9\d{8}$`)
	dniPattern      = regexp.MustCompile(`^\d{8}$`)
	carnetPattern   = regexp.MustCompile(`^[A-Z0-9]{9,12}$`)
	rucPattern      = regexp.MustCompile(`^\d{11}$`)
	rifPattern      = regexp.MustCompile(`^(?:[VEJG]\d{9}|\d{11})$`)
	documentPattern = map[models.DocumentType]*regexp.Regexp{
		models.DocumentDNI:               dniPattern,
		models.DocumentCarnetExtranjeria: carnetPattern,
		models.DocumentRUC:               rucPattern,
		models.DocumentRIF:               rifPattern,
	}
)

// documentTags maps each document type to the validator tag checking its number.
var documentTags = map[models.DocumentType]string{
	models.DocumentDNI:               "dni",
	models.DocumentCarnetExtranjeria: "carnet",
	models.DocumentRUC:               "ruc",
	models.DocumentRIF:               "rif",
}

// Validator normalizes and validates worker and project drafts.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
	roleTag  string
}

// New creates a Validator. now supplies the current time; nil means time.Now.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}

	validate := validator.New()
	registerPattern(validate, "personname", namePattern)
	registerPattern(validate, "simpleemail", emailPattern)
	registerPattern(validate, "peruphone", phonePattern)
	for docType, tag := range documentTags {
		registerPattern(validate, tag, documentPattern[docType])
	}

	roles := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		roles[i] = string(r)
	}

	return &Validator{
		validate: validate,
		now:      now,
		roleTag:  "oneof=" + strings.Join(roles, " "),
	}
}

func registerPattern(validate *validator.Validate, tag string, pattern *regexp.Regexp) {
	_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
}

// check evaluates a single validator tag against value.
func (v *Validator) check(value string, tag string) bool {
	return v.validate.Var(value, tag) == nil
}

// Today returns the current calendar date.
func (v *Validator) Today() time.Time {
	return DateOf(v.now())
}

// IsValidDocument reports whether number matches the format required by docType.
func IsValidDocument(docType models.DocumentType, number string) bool {
	pattern, ok := documentPattern[docType]
	if !ok {
		return false
	}
	return pattern.MatchString(number)
}

// NormalizeName strips characters outside the accepted alphabet, collapses
// whitespace runs to a single space and trims.
func NormalizeName(value string) string {
	value = nameDisallowed.ReplaceAllString(value, "")
	value = whitespaceRun.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// NormalizeTitle collapses whitespace runs to a single space and trims.
func NormalizeTitle(value string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeDocumentNumber trims and uppercases a document number.
func NormalizeDocumentNumber(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
