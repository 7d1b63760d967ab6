// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used when an internal call reports no error.
	CategoryNoError Category = iota
	// CategoryDataError The client sends some invalid data in the request,
	// for example, missing or incorrect content in the payload or parameters.
	CategoryDataError
	// CategoryUnauthorized The client could not prove ownership of the data it submitted
	CategoryUnauthorized
	// CategoryForbidden The client is not allowed to access the requested resource
	CategoryForbidden
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryDataConflict The client send some data that conflicts with existing data
	CategoryDataConflict
	// CategoryDependencyFailure A dependent service or storage backend is throwing errors
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
//
// Type is an optional machine-readable tag surfaced to clients next to the
// message (e.g. "avail", "evm", "signature", "eligibility").
type ServiceError struct {
	Category Category
	Type     string
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// TypeOf returns the rejection tag carried by err, or "" if there is none.
func TypeOf(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type
	}
	return ""
}

// IsInternalError checks that provided error is a Internal system error
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure) {
		return false
	}
	return true
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
// the error message provided is returned to the user
// the err object provided is logged in logger
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found:" + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns  an error with category DataError
// the error message provided is returned to the user
// the error object provided is logged in logger
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request:" + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// RejectionError returns an error with category DataError tagged with typ.
// Used for business-rule rejections the UI routes to a specific wallet panel.
func RejectionError(err error, typ, message string) error {
	if err == nil {
		err = errors.New("rejected:" + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Type:     typ,
		Message:  message,
		Err:      err,
	}
}

// ForbiddenError returns a an error with category CategoryForbidden
// the error message provided is returned to the user
// the error object provided is logged in logger
func ForbiddenError(err error, message string) error {
	if err == nil {
		err = errors.New("request forbidden")
	}
	return &ServiceError{
		Category: CategoryForbidden,
		Message:  message,
		Err:      err,
	}
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
// the error message provided is returned to the user
// the error object provided is logged in logger
func UnAuthorizedError(err error, typ, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Type:     typ,
		Message:  message,
		Err:      err,
	}
}

// ConflictError returns an error with category CategoryDataConflict
// the error message provided is returned to the user
// the error object provided is logged in logger
func ConflictError(err error, typ, message string) error {
	if err == nil {
		err = errors.New("conflict")
	}
	return &ServiceError{
		Category: CategoryDataConflict,
		Type:     typ,
		Message:  message,
		Err:      err,
	}
}

// DependencyError returns an error with category CategoryDependencyFailure.
// The client only sees message; err is kept for logging.
func DependencyError(err error, message string) error {
	if err == nil {
		err = errors.New("dependency failure")
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
