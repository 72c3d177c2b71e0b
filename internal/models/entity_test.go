package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := NewSchema("thing", "id", "name", "id", "title")

	assert.Equal(t, "thing", s.Entity())
	assert.Equal(t, []string{"id", "name", "title"}, s.Fields())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("name"))
	assert.False(t, s.Has("Name"))

	// Fields hands out a copy
	fields := s.Fields()
	fields[0] = "mutated"
	assert.Equal(t, "id", s.Fields()[0])
}

func TestUserSchema_DeclaresProjectsLimit(t *testing.T) {
	assert.Equal(t, 25, UserSchema.Len())
	assert.True(t, UserSchema.Has("projects_limit"))
	assert.False(t, UserSchema.Has("project_limit"))
}

func TestHydrate_RoundTrip(t *testing.T) {
	payload := map[string]any{
		"id":                 float64(3),
		"email":              "a@b.com",
		"username":           "alice",
		"blocked":            false,
		"projects_limit":     float64(10),
		"bio":                nil,
		"two_factor_enabled": true,
	}

	user := NewUser(nil, 3).Hydrate(payload)

	for key, want := range payload {
		t.Run(key, func(t *testing.T) {
			got, err := user.Get(key)
			require.NoError(t, err)
			assert.True(t, got.Equal(ValueOf(want)), "field %s: got %v want %v", key, got, want)
		})
	}
}

func TestHydrate_DropsUndeclaredFields(t *testing.T) {
	user := UserFromMap(nil, map[string]any{
		"id":            float64(1),
		"username":      "bob",
		"web_url":       "https://gitlab.example.com/bob",
		"project_limit": float64(5),
	})

	assert.Equal(t, []string{"id", "username"}, user.Fields())
	assert.NotContains(t, user.AsMap(), "web_url")

	for _, name := range []string{"web_url", "project_limit"} {
		_, err := user.Get(name)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchema))

		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "user", schemaErr.Entity)
		assert.Equal(t, name, schemaErr.Field)
	}
}

func TestGet_DeclaredButNotHydrated(t *testing.T) {
	user := NewUser(nil, 9)

	value, err := user.Get(UserFieldEmail)
	require.NoError(t, err)
	assert.False(t, value.IsSet())
	assert.Equal(t, KindUnset, value.Kind())
	assert.Nil(t, value.Interface())
}

func TestHydrate_Idempotent(t *testing.T) {
	payload := map[string]any{
		"id":       float64(4),
		"name":     "Carol",
		"state":    "active",
		"is_admin": true,
	}

	once := UserFromMap(nil, payload)
	twice := UserFromMap(nil, payload).Hydrate(payload)

	assert.Equal(t, once.Fields(), twice.Fields())
	assert.Equal(t, once.AsMap(), twice.AsMap())
}

func TestHydrate_IdentityIsImmutable(t *testing.T) {
	user := NewUser(nil, 42)
	user.Hydrate(map[string]any{"id": float64(43), "username": "mallory"})

	id, ok := user.ID()
	require.True(t, ok)
	assert.Equal(t, 42, id)

	value, err := user.Get("id")
	require.NoError(t, err)
	got, _ := value.AsInt()
	assert.Equal(t, 42, got)
	assert.Equal(t, "mallory", user.Username())
}

func TestHydrate_AdoptsIdentityWhenUnset(t *testing.T) {
	key := &Key{Entity: newEntity(KeySchema, nil)}
	_, ok := key.ID()
	require.False(t, ok)

	key.Hydrate(map[string]any{"id": json.Number("17"), "title": "laptop"})

	id, ok := key.ID()
	require.True(t, ok)
	assert.Equal(t, 17, id)
}

func TestClient_NotConfigured(t *testing.T) {
	user := NewUser(nil, 1)

	_, err := user.Client()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))

	var notConfigured *NotConfiguredError
	require.True(t, errors.As(err, &notConfigured))
	assert.Equal(t, MissingClient, notConfigured.Missing)

	client := &fakeClient{}
	user.SetClient(client)
	got, err := user.Client()
	require.NoError(t, err)
	assert.Same(t, client, got)
}

func TestEntity_MarshalJSON(t *testing.T) {
	user := UserFromMap(nil, map[string]any{
		"id":       float64(5),
		"username": "dave",
		"bio":      nil,
	})

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"username":"dave","bio":null}`, string(data))
}

func TestHydrate_LargeIdentity(t *testing.T) {
	user := UserFromMap(nil, map[string]any{"id": json.Number("9007199254740993")})

	id, ok := user.ID()
	require.True(t, ok)
	assert.Equal(t, 9007199254740993, id)

	value, err := user.Get("id")
	require.NoError(t, err)
	assert.Equal(t, 9007199254740993, value.Interface())

	// a payload one below the identity must not be taken as the same id
	user.Hydrate(map[string]any{"id": json.Number("9007199254740992"), "username": "zed"})
	value, _ = user.Get("id")
	assert.Equal(t, 9007199254740993, value.Interface())
	assert.Equal(t, "zed", user.Username())
}

func TestHydrate_OutOfRangeIdentity(t *testing.T) {
	user := UserFromMap(nil, map[string]any{"id": 1e20})

	id, ok := user.ID()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	draft := NewUserWithoutID(nil).Hydrate(map[string]any{"id": json.Number("1e300")})
	_, ok = draft.ID()
	assert.False(t, ok)
}

func TestHydrate_IdentityMatchesAcrossRepresentations(t *testing.T) {
	user := NewUser(nil, 42)
	user.Hydrate(map[string]any{"id": float64(42), "state": "active"})

	assert.Equal(t, []string{"id", "state"}, user.Fields())
}
