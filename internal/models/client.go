package models

import "context"

// Client is the transport capability surface entities delegate to.
// Implementations own connection handling, authentication and retries;
// entities never inspect or recover from the errors they return.
type Client interface {
	Users() UsersAPI
	Groups() GroupsAPI
}

// UsersAPI covers the user and SSH key endpoints.
type UsersAPI interface {
	Show(ctx context.Context, id int) (map[string]any, error)
	Create(ctx context.Context, email, password string, params map[string]any) (map[string]any, error)
	Update(ctx context.Context, id int, params map[string]any) (map[string]any, error)
	Remove(ctx context.Context, id int) error
	Block(ctx context.Context, id int) error
	Unblock(ctx context.Context, id int) error
	Keys(ctx context.Context) ([]map[string]any, error)
	CreateKey(ctx context.Context, title, key string) (map[string]any, error)
	CreateKeyForUser(ctx context.Context, userID int, title, key string) (map[string]any, error)
	RemoveKey(ctx context.Context, id int) error
}

// GroupsAPI covers the group and group membership endpoints.
type GroupsAPI interface {
	Show(ctx context.Context, id int) (map[string]any, error)
	AddMember(ctx context.Context, groupID, userID, accessLevel int) (map[string]any, error)
	RemoveMember(ctx context.Context, groupID, userID int) error
}
