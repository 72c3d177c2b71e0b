package gitlab

import (
	"context"
	"net/http"
	"strconv"
)

// GroupsService implements the group and membership endpoints.
type GroupsService struct {
	client *Client
}

func (s *GroupsService) Show(ctx context.Context, id int) (map[string]any, error) {
	return s.client.object(ctx, request{
		method:     http.MethodGet,
		path:       "/groups/{id}",
		pathParams: idParam(id),
	})
}

func (s *GroupsService) AddMember(ctx context.Context, groupID, userID, accessLevel int) (map[string]any, error) {
	return s.client.object(ctx, request{
		method:     http.MethodPost,
		path:       "/groups/{id}/members",
		pathParams: idParam(groupID),
		body: map[string]any{
			"user_id":      userID,
			"access_level": accessLevel,
		},
	})
}

func (s *GroupsService) RemoveMember(ctx context.Context, groupID, userID int) error {
	return s.client.exec(ctx, request{
		method: http.MethodDelete,
		path:   "/groups/{id}/members/{user_id}",
		pathParams: map[string]string{
			"id":      strconv.Itoa(groupID),
			"user_id": strconv.Itoa(userID),
		},
	})
}
