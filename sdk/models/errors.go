package models

import internal "github.com/thand-io/gitlab-client/internal/models"

// SchemaError is returned when a field outside an entity's schema is read.
type SchemaError = internal.SchemaError

// NotConfiguredError is returned when an action runs without a client
// or without an identity.
type NotConfiguredError = internal.NotConfiguredError

var (
	ErrSchema        = internal.ErrSchema
	ErrNotConfigured = internal.ErrNotConfigured
)
