package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-dashboard-go/constant"
)

// EntityNotFoundError records an error indicating an entity was not found in any case that caused it.
// You can use it to representing a Database not found, cache not found or any other repository.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil && strings.TrimSpace(e.Message) == "" {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// ValidationError records an error indicating an entity was not found in any case that caused it.
// You can use it to representing a Database not found, cache not found or any other repository.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// EntityConflictError records an error indicating an entity already exists in some repository
// You can use it to representing a Database conflict, cache or any other repository.
type EntityConflictError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityConflictError) Error() string {
	if e.Err != nil && strings.TrimSpace(e.Message) == "" {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityConflictError) Unwrap() error {
	return e.Err
}

// ForbiddenError indicates an operation that couldn't be performant because the authenticated user has no sufficient privileges.
type ForbiddenError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e ForbiddenError) Error() string {
	return e.Message
}

// FailedPreconditionError indicates a precondition failed during an operation.
type FailedPreconditionError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e FailedPreconditionError) Error() string {
	return e.Message
}

// InternalServerError indicates a precondition failed during an operation.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// ValidationKnownFieldsError records an error that occurred during a validation of known fields.
type ValidationKnownFieldsError struct {
	EntityType string           `json:"entityType,omitempty"`
	Title      string           `json:"title,omitempty"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Fields     FieldValidations `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationKnownFieldsError.
//
// No parameters.
// Returns a string.
func (r ValidationKnownFieldsError) Error() string {
	return r.Message
}

// FieldValidations is a map of known fields and their validation errors.
type FieldValidations map[string]string

// Methods to create errors for different scenarios:

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
//
// Parameters:
// - err: The error to be validated.
// - entityType: The type of the entity associated with the error.
//
// Returns:
// - An InternalServerError with the appropriate code, title, message.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
// error: The appropriate business error with code, title, and message.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrCustomizationLoadFailed: FailedPreconditionError{
			EntityType: entityType,
			Code:       constant.ErrCustomizationLoadFailed.Error(),
			Title:      "Customization could not be loaded",
			Message:    fmt.Sprintf("The dashboard customization could not be loaded from %s. The previous customization remains active.", args...),
		},
		constant.ErrUnknownTab: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrUnknownTab.Error(),
			Title:      "Tab not found",
			Message:    fmt.Sprintf("No component is registered for tab '%s'. Please verify the tab identifier.", args...),
		},
		constant.ErrInvalidCustomization: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidCustomization.Error(),
			Title:      "Invalid customization",
			Message:    "The dashboard customization failed structural validation. Please check the reported fields.",
		},
		constant.ErrUnknownFeature: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrUnknownFeature.Error(),
			Title:      "Feature flag not found",
			Message:    fmt.Sprintf("The feature flag '%s' is not declared by this dashboard.", args...),
		},
		constant.ErrFeatureDisabled: ForbiddenError{
			EntityType: entityType,
			Code:       constant.ErrFeatureDisabled.Error(),
			Title:      "Feature disabled",
			Message:    fmt.Sprintf("The feature '%s' is disabled for this dashboard.", args...),
		},
		constant.ErrUnknownChart: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrUnknownChart.Error(),
			Title:      "Chart not found",
			Message:    fmt.Sprintf("No chart named '%s' exists in section '%s'.", args...),
		},
		constant.ErrUnknownSection: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrUnknownSection.Error(),
			Title:      "Section not found",
			Message:    fmt.Sprintf("The section '%s' does not exist. Use 'dashboard' or 'analytics'.", args...),
		},
		constant.ErrUnknownDataList: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrUnknownDataList.Error(),
			Title:      "Data list not found",
			Message:    fmt.Sprintf("No auxiliary data list named '%s' exists.", args...),
		},
		constant.ErrUnsupportedFormat: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrUnsupportedFormat.Error(),
			Title:      "Unsupported format",
			Message:    fmt.Sprintf("The format '%s' is not supported.", args...),
		},
		constant.ErrDuplicateComponent: EntityConflictError{
			EntityType: entityType,
			Code:       constant.ErrDuplicateComponent.Error(),
			Title:      "Component already registered",
			Message:    fmt.Sprintf("A component is already registered for tab '%s'.", args...),
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	for sentinel, mappedError := range errorMap {
		if errors.Is(err, sentinel) {
			return mappedError
		}
	}

	return err
}
