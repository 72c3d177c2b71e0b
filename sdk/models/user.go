package models

import internal "github.com/thand-io/gitlab-client/internal/models"

// User is a GitLab user account. Read its fields with Get or the typed
// accessors; act on it with Show, Update, Block and the other actions.
type User = internal.User

// UserSchema lists the attributes a User exposes.
var UserSchema = internal.UserSchema

var (
	// NewUser returns a User with the given identity bound to a client.
	NewUser = internal.NewUser
	// UserFromMap builds a hydrated User from an API payload.
	UserFromMap = internal.UserFromMap
	// CreateUser creates a user on the server.
	CreateUser = internal.CreateUser
)

// NewUserWithoutID returns a User not yet created on the server.
var NewUserWithoutID = internal.NewUserWithoutID
