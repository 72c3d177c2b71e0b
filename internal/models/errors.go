package models

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches any *SchemaError.
	ErrSchema = errors.New("undeclared field")
	// ErrNotConfigured matches any *NotConfiguredError.
	ErrNotConfigured = errors.New("entity not configured")
)

// SchemaError is returned when a field outside an entity's schema is read.
// It always indicates a programming mistake in the caller.
type SchemaError struct {
	Entity string
	Field  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Entity, e.Field)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NotConfiguredError is returned when an action needs something the
// entity was never given: a client, or a server-assigned identity.
type NotConfiguredError struct {
	Entity  string
	Missing string
}

const (
	MissingClient   = "client"
	MissingIdentity = "identity"
)

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s has no %s configured", e.Entity, e.Missing)
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrNotConfigured
}
