package gitlab

import (
	"context"
	"net/http"
	"strconv"
)

// UsersService implements the user and SSH key endpoints.
type UsersService struct {
	client *Client
}

func idParam(id int) map[string]string {
	return map[string]string{"id": strconv.Itoa(id)}
}

func (s *UsersService) Show(ctx context.Context, id int) (map[string]any, error) {
	return s.client.object(ctx, request{
		method:     http.MethodGet,
		path:       "/users/{id}",
		pathParams: idParam(id),
	})
}

// Create sends email and password alongside params; explicit arguments
// win over the same keys in params.
func (s *UsersService) Create(ctx context.Context, email, password string, params map[string]any) (map[string]any, error) {
	body := make(map[string]any, len(params)+2)
	for k, v := range params {
		body[k] = v
	}
	body["email"] = email
	body["password"] = password

	return s.client.object(ctx, request{
		method: http.MethodPost,
		path:   "/users",
		body:   body,
	})
}

func (s *UsersService) Update(ctx context.Context, id int, params map[string]any) (map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}
	return s.client.object(ctx, request{
		method:     http.MethodPut,
		path:       "/users/{id}",
		pathParams: idParam(id),
		body:       params,
	})
}

func (s *UsersService) Remove(ctx context.Context, id int) error {
	return s.client.exec(ctx, request{
		method:     http.MethodDelete,
		path:       "/users/{id}",
		pathParams: idParam(id),
	})
}

func (s *UsersService) Block(ctx context.Context, id int) error {
	return s.client.exec(ctx, request{
		method:     http.MethodPost,
		path:       "/users/{id}/block",
		pathParams: idParam(id),
	})
}

func (s *UsersService) Unblock(ctx context.Context, id int) error {
	return s.client.exec(ctx, request{
		method:     http.MethodPost,
		path:       "/users/{id}/unblock",
		pathParams: idParam(id),
	})
}

// Keys lists the SSH keys of the user owning the token.
func (s *UsersService) Keys(ctx context.Context) ([]map[string]any, error) {
	return s.client.list(ctx, request{
		method: http.MethodGet,
		path:   "/user/keys",
	})
}

func (s *UsersService) CreateKey(ctx context.Context, title, key string) (map[string]any, error) {
	return s.client.object(ctx, request{
		method: http.MethodPost,
		path:   "/user/keys",
		body:   map[string]any{"title": title, "key": key},
	})
}

func (s *UsersService) CreateKeyForUser(ctx context.Context, userID int, title, key string) (map[string]any, error) {
	return s.client.object(ctx, request{
		method:     http.MethodPost,
		path:       "/users/{id}/keys",
		pathParams: idParam(userID),
		body:       map[string]any{"title": title, "key": key},
	})
}

func (s *UsersService) RemoveKey(ctx context.Context, id int) error {
	return s.client.exec(ctx, request{
		method:     http.MethodDelete,
		path:       "/user/keys/{id}",
		pathParams: idParam(id),
	})
}
