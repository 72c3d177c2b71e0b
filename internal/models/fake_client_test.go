package models

import "context"

type call struct {
	method string
	args   []any
}

// fakeClient records every transport call and replays canned payloads.
type fakeClient struct {
	calls []call

	payload  map[string]any
	payloads []map[string]any
	err      error
}

func (f *fakeClient) Users() UsersAPI   { return &fakeUsers{f} }
func (f *fakeClient) Groups() GroupsAPI { return &fakeGroups{f} }

func (f *fakeClient) record(method string, args ...any) {
	f.calls = append(f.calls, call{method: method, args: args})
}

func (f *fakeClient) last() call {
	if len(f.calls) == 0 {
		panic("no calls recorded")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeClient) respond() (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type fakeUsers struct{ *fakeClient }

func (u *fakeUsers) Show(_ context.Context, id int) (map[string]any, error) {
	u.record("users.show", id)
	return u.respond()
}

func (u *fakeUsers) Create(_ context.Context, email, password string, params map[string]any) (map[string]any, error) {
	u.record("users.create", email, password, params)
	return u.respond()
}

func (u *fakeUsers) Update(_ context.Context, id int, params map[string]any) (map[string]any, error) {
	u.record("users.update", id, params)
	return u.respond()
}

func (u *fakeUsers) Remove(_ context.Context, id int) error {
	u.record("users.remove", id)
	return u.err
}

func (u *fakeUsers) Block(_ context.Context, id int) error {
	u.record("users.block", id)
	return u.err
}

func (u *fakeUsers) Unblock(_ context.Context, id int) error {
	u.record("users.unblock", id)
	return u.err
}

func (u *fakeUsers) Keys(_ context.Context) ([]map[string]any, error) {
	u.record("users.keys")
	if u.err != nil {
		return nil, u.err
	}
	return u.payloads, nil
}

func (u *fakeUsers) CreateKey(_ context.Context, title, key string) (map[string]any, error) {
	u.record("users.createKey", title, key)
	return u.respond()
}

func (u *fakeUsers) CreateKeyForUser(_ context.Context, userID int, title, key string) (map[string]any, error) {
	u.record("users.createKeyForUser", userID, title, key)
	return u.respond()
}

func (u *fakeUsers) RemoveKey(_ context.Context, id int) error {
	u.record("users.removeKey", id)
	return u.err
}

type fakeGroups struct{ *fakeClient }

func (g *fakeGroups) Show(_ context.Context, id int) (map[string]any, error) {
	g.record("groups.show", id)
	return g.respond()
}

func (g *fakeGroups) AddMember(_ context.Context, groupID, userID, accessLevel int) (map[string]any, error) {
	g.record("groups.addMember", groupID, userID, accessLevel)
	return g.respond()
}

func (g *fakeGroups) RemoveMember(_ context.Context, groupID, userID int) error {
	g.record("groups.removeMember", groupID, userID)
	return g.err
}
