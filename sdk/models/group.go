package models

import internal "github.com/thand-io/gitlab-client/internal/models"

// Group is a GitLab group, used to manage user membership.
type Group = internal.Group

var GroupSchema = internal.GroupSchema

var (
	NewGroup     = internal.NewGroup
	GroupFromMap = internal.GroupFromMap
)

// Membership access levels accepted by AddToGroup and AddMember.
const (
	AccessLevelGuest      = internal.AccessLevelGuest
	AccessLevelReporter   = internal.AccessLevelReporter
	AccessLevelDeveloper  = internal.AccessLevelDeveloper
	AccessLevelMaintainer = internal.AccessLevelMaintainer
	AccessLevelOwner      = internal.AccessLevelOwner
)
