package services

import "net/http"

// ServiceResult is the uniform envelope returned by every service
// operation: either a success carrying Data and an HTTP-style status, or
// a failure carrying one or more human-readable error messages.
type ServiceResult[T any] struct {
	Data          T
	ErrorMessages []string
	Status        int
	// Location holds the reference of a newly created resource when
	// Status is 201.
	Location string
}

// IsFailure reports whether the result carries error messages.
func (r ServiceResult[T]) IsFailure() bool {
	return len(r.ErrorMessages) > 0
}

// Success wraps data in a 200 result.
func Success[T any](data T) ServiceResult[T] {
	return ServiceResult[T]{Data: data, Status: http.StatusOK}
}

// SuccessAsCreated wraps data in a 201 result carrying the location of
// the new resource.
func SuccessAsCreated[T any](data T, location string) ServiceResult[T] {
	return ServiceResult[T]{Data: data, Status: http.StatusCreated, Location: location}
}

// NoContent returns an empty 204 success.
func NoContent() ServiceResult[any] {
	return ServiceResult[any]{Status: http.StatusNoContent}
}

// Failure returns a failed result with the given status and messages.
func Failure[T any](status int, messages ...string) ServiceResult[T] {
	return ServiceResult[T]{ErrorMessages: messages, Status: status}
}
