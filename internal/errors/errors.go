// Package errors defines domain error values shared across services.
package errors

// DomainError is an error with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }
