package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

// Worker normalizes draft and validates it against the business rules, checking
// uniqueness against existing. editingID is the id of the worker being edited, or
// zero when creating. Checks run in order and stop at the first failure.
func (v *Validator) Worker(draft dto.WorkerPayload, existing []models.Worker, editingID uint64) (dto.WorkerPayload, error) {
	if whitespace.MatchString(strings.TrimSpace(draft.Email)) {
		return draft, ErrEmailHasSpaces
	}
	if nonDigit.MatchString(draft.Phone) {
		return draft, ErrPhoneNotNumeric
	}

	w := draft
	w.FirstName = NormalizeName(draft.FirstName)
	w.LastName = NormalizeName(draft.LastName)
	w.Email = NormalizeEmail(draft.Email)
	w.Phone = strings.TrimSpace(draft.Phone)
	w.DocumentNumber = NormalizeDocumentNumber(draft.DocumentNumber)

	if utf8.RuneCountInString(w.FirstName) < constants.MinNameLength {
		return w, ErrFirstNameTooShort
	}
	if !v.check(w.FirstName, "personname") {
		return w, ErrFirstNameNotLetters
	}

	if utf8.RuneCountInString(w.LastName) < constants.MinNameLength {
		return w, ErrLastNameTooShort
	}
	if !v.check(w.LastName, "personname") {
		return w, ErrLastNameNotLetters
	}

	if !v.check(w.Email, "required") {
		return w, ErrEmailRequired
	}
	if !v.check(w.Email, "simpleemail") {
		return w, ErrEmailInvalid
	}

	if !v.check(w.Phone, "required") {
		return w, ErrPhoneRequired
	}
	if !v.check(w.Phone, "peruphone") {
		return w, ErrPhoneFormat
	}

	if !v.check(string(w.DocumentType), "required") {
		return w, ErrDocumentTypeRequired
	}
	if !v.check(w.DocumentNumber, "required") {
		return w, ErrDocumentNumberRequired
	}
	tag, known := documentTags[w.DocumentType]
	if !known || !v.check(w.DocumentNumber, tag) {
		return w, ErrDocumentNumberFormat
	}

	if isDuplicateWorker(w, existing, editingID) {
		return w, ErrDuplicateWorker
	}

	if !v.check(w.HireDate, "required") {
		return w, ErrHireDateRequired
	}
	if editingID == 0 {
		hired, err := ParseDMY(w.HireDate)
		if err != nil {
			return w, ErrHireDateInvalid
		}
		if hired.Before(v.Today()) {
			return w, ErrHireDateInPast
		}
	}

	if !v.check(string(w.Role), "required") {
		return w, ErrRoleRequired
	}
	if !v.check(string(w.Role), v.roleTag) {
		return w, ErrRoleInvalid
	}

	return w, nil
}

// isDuplicateWorker reports whether another known worker shares the email, the
// phone or the (document type, document number) pair.
func isDuplicateWorker(w dto.WorkerPayload, existing []models.Worker, editingID uint64) bool {
	for _, other := range existing {
		if editingID != 0 && other.ID == editingID {
			continue
		}
		if strings.ToLower(other.Email) == w.Email {
			return true
		}
		if other.Phone == w.Phone {
			return true
		}
		if other.DocumentType == w.DocumentType && strings.ToUpper(other.DocumentNumber) == w.DocumentNumber {
			return true
		}
	}
	return false
}
