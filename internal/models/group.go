package models

import "context"

// GitLab membership access levels.
const (
	AccessLevelGuest      = 10
	AccessLevelReporter   = 20
	AccessLevelDeveloper  = 30
	AccessLevelMaintainer = 40
	AccessLevelOwner      = 50
)

const (
	GroupFieldID                   = FieldID
	GroupFieldName                 = "name"
	GroupFieldPath                 = "path"
	GroupFieldDescription          = "description"
	GroupFieldVisibility           = "visibility"
	GroupFieldLFSEnabled           = "lfs_enabled"
	GroupFieldAvatarURL            = "avatar_url"
	GroupFieldWebURL               = "web_url"
	GroupFieldRequestAccessEnabled = "request_access_enabled"
	GroupFieldFullName             = "full_name"
	GroupFieldFullPath             = "full_path"
	GroupFieldParentID             = "parent_id"
)

var GroupSchema = NewSchema("group",
	GroupFieldID,
	GroupFieldName,
	GroupFieldPath,
	GroupFieldDescription,
	GroupFieldVisibility,
	GroupFieldLFSEnabled,
	GroupFieldAvatarURL,
	GroupFieldWebURL,
	GroupFieldRequestAccessEnabled,
	GroupFieldFullName,
	GroupFieldFullPath,
	GroupFieldParentID,
)

// Group is a GitLab group. Users build one on demand to manage their
// own membership.
type Group struct {
	Entity
}

func NewGroup(client Client, id int) *Group {
	g := &Group{Entity: newEntity(GroupSchema, client)}
	g.setData(FieldID, id)
	return g
}

func GroupFromMap(client Client, data map[string]any) *Group {
	id := 0
	if raw, ok := data[FieldID]; ok {
		if parsed, ok := ValueOf(raw).AsInt(); ok {
			id = parsed
		}
	}
	return NewGroup(client, id).Hydrate(data)
}

func (g *Group) Hydrate(data map[string]any) *Group {
	g.hydrate(data)
	return g
}

func (g *Group) Show(ctx context.Context) (*Group, error) {
	client, id, err := g.remote()
	if err != nil {
		return nil, err
	}

	data, err := client.Groups().Show(ctx, id)
	if err != nil {
		return nil, err
	}

	return GroupFromMap(client, data), nil
}

// AddMember adds userID to the group and returns the member as a User.
func (g *Group) AddMember(ctx context.Context, userID, accessLevel int) (*User, error) {
	client, id, err := g.remote()
	if err != nil {
		return nil, err
	}

	data, err := client.Groups().AddMember(ctx, id, userID, accessLevel)
	if err != nil {
		return nil, err
	}

	return UserFromMap(client, data), nil
}

func (g *Group) RemoveMember(ctx context.Context, userID int) (bool, error) {
	client, id, err := g.remote()
	if err != nil {
		return false, err
	}

	if err := client.Groups().RemoveMember(ctx, id, userID); err != nil {
		return false, err
	}

	return true, nil
}
