package usecase

import (
	"errors"
	"fmt"

	"kaamwala/internal/pkg/validate"
	"kaamwala/internal/session"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidImage     = errors.New("invalid image")
	ErrSubmitInProgress = session.ErrSubmitInProgress
)

// Warning reports a step that failed after the main action succeeded.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarningImageUpload = "image_upload_failed"
	WarningSkills      = "skills_failed"
	WarningMissingID   = "missing_user_id"
)

// invalid wraps validation failures so that both ErrInvalidInput and the
// field list can be recovered with errors.Is / errors.As.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func invalidField(field, rule, param string) error {
	return invalid(validate.Errors{{Field: field, Rule: rule, Param: param}})
}
