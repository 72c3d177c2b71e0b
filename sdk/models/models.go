// Package models provides the public GitLab entity types.
// These types are re-exported from the internal models package to provide
// a stable public API for external consumers.
package models

import internal "github.com/thand-io/gitlab-client/internal/models"

// Client is the transport capability surface every entity delegates to.
// See sdk/client for the GitLab implementation.
type Client = internal.Client

// UsersAPI covers the user and SSH key endpoints of a Client.
type UsersAPI = internal.UsersAPI

// GroupsAPI covers the group membership endpoints of a Client.
type GroupsAPI = internal.GroupsAPI

// Entity is the whitelisted attribute bag embedded by every model.
type Entity = internal.Entity

// Schema is the fixed, ordered set of field names an entity type exposes.
type Schema = internal.Schema

// Value is a single attribute value: unset, null, string, number, bool
// or a nested object kept verbatim.
type Value = internal.Value

// Kind identifies the variant held by a Value.
type Kind = internal.Kind

const (
	KindUnset  = internal.KindUnset
	KindNull   = internal.KindNull
	KindString = internal.KindString
	KindNumber = internal.KindNumber
	KindBool   = internal.KindBool
	KindOther  = internal.KindOther
)

// ValueOf classifies a decoded JSON value.
var ValueOf = internal.ValueOf

// NewSchema declares the fields of an entity type.
var NewSchema = internal.NewSchema
