package models

import internal "github.com/thand-io/gitlab-client/internal/models"

// Key is an SSH public key registered to a user.
type Key = internal.Key

var KeySchema = internal.KeySchema

var (
	NewKey     = internal.NewKey
	KeyFromMap = internal.KeyFromMap
)
