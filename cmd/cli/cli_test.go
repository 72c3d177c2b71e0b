package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hit struct {
	method string
	path   string
	body   map[string]any
}

func newGitLab(t *testing.T, routes map[string]string) (*httptest.Server, *[]hit) {
	t.Helper()

	var hits []hit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := hit{method: r.Method, path: r.URL.Path}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &h.body)
		}
		hits = append(hits, h)

		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"404 Not found"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost && body != "" {
			w.WriteHeader(http.StatusCreated)
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--endpoint", srv.URL, "--token", "glpat-test"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestUsersShow_JSON(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"GET /api/v4/users/42": `{"id": 42, "username": "alice", "state": "active", "unknown": true}`,
	})

	out, err := execute(t, srv, "users", "show", "42")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "alice", got["username"])
	assert.Equal(t, float64(42), got["id"])
	assert.NotContains(t, got, "unknown")
	assert.Len(t, *hits, 1)
}

func TestUsersShow_JQ(t *testing.T) {
	srv, _ := newGitLab(t, map[string]string{
		"GET /api/v4/users/42": `{"id": 42, "username": "alice"}`,
	})

	out, err := execute(t, srv, "users", "show", "42", "--jq", ".username")
	require.NoError(t, err)
	assert.Equal(t, "\"alice\"\n", out)
}

func TestUsersShow_Text(t *testing.T) {
	srv, _ := newGitLab(t, map[string]string{
		"GET /api/v4/users/42": `{"id": 42, "username": "alice"}`,
	})

	out, err := execute(t, srv, "users", "show", "42", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "username")
	assert.Contains(t, out, "alice")
}

func TestUsersShow_YAML(t *testing.T) {
	srv, _ := newGitLab(t, map[string]string{
		"GET /api/v4/users/42": `{"id": 42, "username": "alice"}`,
	})

	out, err := execute(t, srv, "users", "show", "42", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "username: alice")
	assert.Contains(t, out, "id: 42")
}

func TestUsersShow_NotFound(t *testing.T) {
	srv, _ := newGitLab(t, map[string]string{})

	_, err := execute(t, srv, "users", "show", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestUsersShow_InvalidID(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{})

	_, err := execute(t, srv, "users", "show", "abc")
	assert.Error(t, err)
	assert.Empty(t, *hits)
}

func TestUsersCreate(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"POST /api/v4/users": `{"id": 7, "email": "jo@example.com", "username": "jo"}`,
	})

	out, err := execute(t, srv, "users", "create",
		"--email", "jo@example.com", "--password", "s3cret",
		"--param", "username=jo", "--param", "projects_limit=5")
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "jo"`)

	require.Len(t, *hits, 1)
	body := (*hits)[0].body
	assert.Equal(t, "jo@example.com", body["email"])
	assert.Equal(t, "s3cret", body["password"])
	assert.Equal(t, "jo", body["username"])
	assert.Equal(t, float64(5), body["projects_limit"])
}

func TestUsersUpdate_RequiresParams(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{})

	_, err := execute(t, srv, "users", "update", "42")
	assert.Error(t, err)
	assert.Empty(t, *hits)
}

func TestUsersBlock(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"POST /api/v4/users/42/block":   "true",
		"POST /api/v4/users/42/unblock": "true",
	})

	out, err := execute(t, srv, "users", "block", "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, out)

	out, err = execute(t, srv, "users", "unblock", "42", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "User 42 unblocked")

	require.Len(t, *hits, 2)
	assert.Equal(t, "/api/v4/users/42/unblock", (*hits)[1].path)
}

func TestUsersRemove_Yes(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"DELETE /api/v4/users/42": "",
	})

	_, err := execute(t, srv, "users", "remove", "42", "--yes")
	require.NoError(t, err)
	require.Len(t, *hits, 1)
	assert.Equal(t, http.MethodDelete, (*hits)[0].method)
}

func TestUsersKeys(t *testing.T) {
	srv, _ := newGitLab(t, map[string]string{
		"GET /api/v4/user/keys": `[{"id": 1, "title": "laptop", "key": "ssh-ed25519 AAAA"}]`,
	})

	out, err := execute(t, srv, "users", "keys", "--jq", ".[].title")
	require.NoError(t, err)
	assert.Equal(t, "\"laptop\"\n", out)
}

func TestUsersCreateKey_ForUser(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"POST /api/v4/users/9/keys": `{"id": 3, "title": "ci", "key": "ssh-ed25519 BBBB"}`,
	})

	_, err := execute(t, srv, "users", "create-key", "--title", "ci", "--key", "ssh-ed25519 BBBB", "--user", "9")
	require.NoError(t, err)

	require.Len(t, *hits, 1)
	assert.Equal(t, "ci", (*hits)[0].body["title"])
	assert.Equal(t, "ssh-ed25519 BBBB", (*hits)[0].body["key"])
}

func TestUsersAddToGroup(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"POST /api/v4/groups/5/members": `{"id": 21, "username": "alice", "access_level": 30}`,
	})

	out, err := execute(t, srv, "users", "add-to-group", "21", "--group", "5", "--access-level", "30")
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "alice"`)

	require.Len(t, *hits, 1)
	assert.Equal(t, float64(21), (*hits)[0].body["user_id"])
	assert.Equal(t, float64(30), (*hits)[0].body["access_level"])
}

func TestUsersRemoveFromGroup(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{
		"DELETE /api/v4/groups/5/members/21": "",
	})

	_, err := execute(t, srv, "users", "remove-from-group", "21", "--group", "5")
	require.NoError(t, err)
	require.Len(t, *hits, 1)
}

func TestGroupsShow(t *testing.T) {
	srv, _ := newGitLab(t, map[string]string{
		"GET /api/v4/groups/5": `{"id": 5, "name": "Platform", "full_path": "acme/platform"}`,
	})

	out, err := execute(t, srv, "groups", "show", "5", "--jq", ".full_path")
	require.NoError(t, err)
	assert.Equal(t, "\"acme/platform\"\n", out)
}

func TestInvalidOutputFormat(t *testing.T) {
	srv, hits := newGitLab(t, map[string]string{})

	_, err := execute(t, srv, "users", "show", "1", "-o", "xml")
	assert.Error(t, err)
	assert.Empty(t, *hits)
}

func TestVersion(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--endpoint", "not-a-url"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gitlab-client")
}
