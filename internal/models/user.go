package models

import (
	"context"
)

const (
	UserFieldID               = FieldID
	UserFieldEmail            = "email"
	UserFieldPassword         = "password"
	UserFieldUsername         = "username"
	UserFieldName             = "name"
	UserFieldBio              = "bio"
	UserFieldSkype            = "skype"
	UserFieldLinkedin         = "linkedin"
	UserFieldTwitter          = "twitter"
	UserFieldDarkScheme       = "dark_scheme"
	UserFieldThemeID          = "theme_id"
	UserFieldColorSchemeID    = "color_scheme_id"
	UserFieldBlocked          = "blocked"
	UserFieldProjectsLimit    = "projects_limit"
	UserFieldAccessLevel      = "access_level"
	UserFieldCreatedAt        = "created_at"
	UserFieldExternUID        = "extern_uid"
	UserFieldProvider         = "provider"
	UserFieldState            = "state"
	UserFieldIsAdmin          = "is_admin"
	UserFieldCanCreateGroup   = "can_create_group"
	UserFieldCanCreateProject = "can_create_project"
	UserFieldAvatarURL        = "avatar_url"
	UserFieldCurrentSignInAt  = "current_sign_in_at"
	UserFieldTwoFactorEnabled = "two_factor_enabled"
)

// UserSchema lists the attributes a User exposes. GitLab returns the
// project quota as projects_limit.
var UserSchema = NewSchema("user",
	UserFieldID,
	UserFieldEmail,
	UserFieldPassword,
	UserFieldUsername,
	UserFieldName,
	UserFieldBio,
	UserFieldSkype,
	UserFieldLinkedin,
	UserFieldTwitter,
	UserFieldDarkScheme,
	UserFieldThemeID,
	UserFieldColorSchemeID,
	UserFieldBlocked,
	UserFieldProjectsLimit,
	UserFieldAccessLevel,
	UserFieldCreatedAt,
	UserFieldExternUID,
	UserFieldProvider,
	UserFieldState,
	UserFieldIsAdmin,
	UserFieldCanCreateGroup,
	UserFieldCanCreateProject,
	UserFieldAvatarURL,
	UserFieldCurrentSignInAt,
	UserFieldTwoFactorEnabled,
)

// User is a GitLab user account.
type User struct {
	Entity
}

// NewUser returns a User with the given identity bound to client.
// client may be nil for a pure data holder.
func NewUser(client Client, id int) *User {
	u := &User{Entity: newEntity(UserSchema, client)}
	u.setData(FieldID, id)
	return u
}

// NewUserWithoutID returns a User that does not exist on the server yet.
// It reads as empty, serves the token-owner key actions and adopts the
// id of the first payload hydrated into it. Actions that address the
// user by id fail with a NotConfiguredError until then.
func NewUserWithoutID(client Client) *User {
	return &User{Entity: newEntity(UserSchema, client)}
}

// UserFromMap builds a fully hydrated User from a payload. A payload
// without an id yields identity 0.
func UserFromMap(client Client, data map[string]any) *User {
	id := 0
	if raw, ok := data[FieldID]; ok {
		if parsed, ok := ValueOf(raw).AsInt(); ok {
			id = parsed
		}
	}
	return NewUser(client, id).Hydrate(data)
}

// CreateUser creates a user on the server and returns it as returned by
// the API. Validation is left entirely to the server.
func CreateUser(ctx context.Context, client Client, email, password string, params map[string]any) (*User, error) {
	if client == nil {
		return nil, &NotConfiguredError{Entity: UserSchema.Entity(), Missing: MissingClient}
	}

	data, err := client.Users().Create(ctx, email, password, params)
	if err != nil {
		return nil, err
	}

	return UserFromMap(client, data), nil
}

// Hydrate fills the user from payload in place and returns it.
func (u *User) Hydrate(data map[string]any) *User {
	u.hydrate(data)
	return u
}

func (u *User) Email() string {
	return u.stringField(UserFieldEmail)
}

func (u *User) Username() string {
	return u.stringField(UserFieldUsername)
}

func (u *User) Name() string {
	return u.stringField(UserFieldName)
}

func (u *User) State() string {
	return u.stringField(UserFieldState)
}

func (u *User) IsAdmin() bool {
	return u.boolField(UserFieldIsAdmin)
}

func (u *User) Blocked() bool {
	return u.boolField(UserFieldBlocked)
}

// ProjectsLimit returns the project quota; ok is false when the server
// did not send one or sent null.
func (u *User) ProjectsLimit() (int, bool) {
	value, _ := u.Get(UserFieldProjectsLimit)
	return value.AsInt()
}

func (u *User) stringField(name string) string {
	value, _ := u.Get(name)
	s, _ := value.AsString()
	return s
}

func (u *User) boolField(name string) bool {
	value, _ := u.Get(name)
	b, _ := value.AsBool()
	return b
}

// Show fetches the current server state as a new User.
func (u *User) Show(ctx context.Context) (*User, error) {
	client, id, err := u.remote()
	if err != nil {
		return nil, err
	}

	data, err := client.Users().Show(ctx, id)
	if err != nil {
		return nil, err
	}

	return UserFromMap(client, data), nil
}

// Update applies params on the server and returns the resulting User.
// The receiver is left untouched.
func (u *User) Update(ctx context.Context, params map[string]any) (*User, error) {
	client, id, err := u.remote()
	if err != nil {
		return nil, err
	}

	data, err := client.Users().Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	return UserFromMap(client, data), nil
}

func (u *User) Remove(ctx context.Context) (bool, error) {
	client, id, err := u.remote()
	if err != nil {
		return false, err
	}

	if err := client.Users().Remove(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

// Block blocks the user on the server. Local fields are not updated;
// call Show to observe the new state.
func (u *User) Block(ctx context.Context) (bool, error) {
	client, id, err := u.remote()
	if err != nil {
		return false, err
	}

	if err := client.Users().Block(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

func (u *User) Unblock(ctx context.Context) (bool, error) {
	client, id, err := u.remote()
	if err != nil {
		return false, err
	}

	if err := client.Users().Unblock(ctx, id); err != nil {
		return false, err
	}

	return true, nil
}

// Keys lists the SSH keys of the authenticated user, in response order.
func (u *User) Keys(ctx context.Context) ([]*Key, error) {
	client, err := u.Client()
	if err != nil {
		return nil, err
	}

	data, err := client.Users().Keys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]*Key, 0, len(data))
	for _, item := range data {
		keys = append(keys, KeyFromMap(client, item))
	}

	return keys, nil
}

// CreateKey adds an SSH key to the authenticated user.
func (u *User) CreateKey(ctx context.Context, title, key string) (*Key, error) {
	client, err := u.Client()
	if err != nil {
		return nil, err
	}

	data, err := client.Users().CreateKey(ctx, title, key)
	if err != nil {
		return nil, err
	}

	return KeyFromMap(client, data), nil
}

// CreateKeyForUser adds an SSH key to the user with the given id, which
// need not be the receiver.
func (u *User) CreateKeyForUser(ctx context.Context, userID int, title, key string) (*Key, error) {
	client, err := u.Client()
	if err != nil {
		return nil, err
	}

	data, err := client.Users().CreateKeyForUser(ctx, userID, title, key)
	if err != nil {
		return nil, err
	}

	return KeyFromMap(client, data), nil
}

func (u *User) RemoveKey(ctx context.Context, keyID int) (bool, error) {
	client, err := u.Client()
	if err != nil {
		return false, err
	}

	if err := client.Users().RemoveKey(ctx, keyID); err != nil {
		return false, err
	}

	return true, nil
}

// AddToGroup makes the user a member of groupID with accessLevel.
func (u *User) AddToGroup(ctx context.Context, groupID, accessLevel int) (*User, error) {
	client, id, err := u.remote()
	if err != nil {
		return nil, err
	}

	return NewGroup(client, groupID).AddMember(ctx, id, accessLevel)
}

func (u *User) RemoveFromGroup(ctx context.Context, groupID int) (bool, error) {
	client, id, err := u.remote()
	if err != nil {
		return false, err
	}

	return NewGroup(client, groupID).RemoveMember(ctx, id)
}
