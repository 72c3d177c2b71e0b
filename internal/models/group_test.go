package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_Show(t *testing.T) {
	client := &fakeClient{payload: map[string]any{
		"id":         float64(5),
		"name":       "Platform",
		"full_path":  "acme/platform",
		"projects":   []any{},
		"visibility": "private",
	}}

	group, err := NewGroup(client, 5).Show(context.Background())
	require.NoError(t, err)

	name, _ := group.Get(GroupFieldName)
	assert.Equal(t, "Platform", name.Interface())
	assert.NotContains(t, group.Fields(), "projects")
	assert.Equal(t, call{method: "groups.show", args: []any{5}}, client.last())
}

func TestGroup_AddMember(t *testing.T) {
	client := &fakeClient{payload: map[string]any{"id": float64(9), "username": "frank"}}

	member, err := NewGroup(client, 5).AddMember(context.Background(), 9, AccessLevelMaintainer)
	require.NoError(t, err)
	assert.Equal(t, "frank", member.Username())
	assert.Equal(t, call{method: "groups.addMember", args: []any{5, 9, 40}}, client.last())
}

func TestGroup_RemoveMember(t *testing.T) {
	transportErr := errors.New("404 not found")
	client := &fakeClient{err: transportErr}

	ok, err := NewGroup(client, 5).RemoveMember(context.Background(), 9)
	assert.False(t, ok)
	assert.Same(t, transportErr, err)
}

func TestGroupFromMap(t *testing.T) {
	group := GroupFromMap(nil, map[string]any{"path": "ops"})

	id, ok := group.ID()
	assert.True(t, ok)
	assert.Equal(t, 0, id)
	assert.Equal(t, []string{"path"}, group.Fields())
}
