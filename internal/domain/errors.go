// Package domain defines the error taxonomy shared by all services.
// Handlers map these to HTTP status codes via errors.As; services never
// return raw gorm errors to the transport layer.
package domain

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ValidationError: caller input fails a precondition (empty selection,
// missing required field, over-scheduling). Never retried.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// NotFoundError: a referenced pedido/solicitud/cotización/orden/proveedor
// does not exist.
type NotFoundError struct {
	Entity string
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

func NotFound(entity, format string, args ...interface{}) error {
	return &NotFoundError{Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// IntegrityError: a cascading update could not find the rows it expected,
// e.g. an award referencing a supplier that never quoted.
type IntegrityError struct {
	Detail string
}

func (e *IntegrityError) Error() string { return e.Detail }

func Integrity(format string, args ...interface{}) error {
	return &IntegrityError{Detail: fmt.Sprintf(format, args...)}
}

// StorageError wraps an underlying persistence failure. The whole
// operation has been rolled back when one of these surfaces.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// FromGorm converts a repository read error: gorm.ErrRecordNotFound
// becomes a NotFoundError for the given entity, anything else a StorageError.
func FromGorm(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(entity, "%s no encontrado", entity)
	}
	return Storage("consultar "+entity, err)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
