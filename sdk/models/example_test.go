package models_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/thand-io/gitlab-client/sdk/models"
)

func ExampleUserFromMap() {
	user := models.UserFromMap(nil, map[string]any{
		"id":       42,
		"username": "alice",
		"plan":     "ultimate",
	})

	id, _ := user.ID()
	fmt.Println(id, user.Username(), user.Fields())

	_, err := user.Get("plan")
	fmt.Println(errors.Is(err, models.ErrSchema))
	// Output:
	// 42 alice [id username]
	// true
}

func ExampleUser_Block() {
	user := models.NewUser(nil, 7)

	_, err := user.Block(context.Background())
	fmt.Println(errors.Is(err, models.ErrNotConfigured))
	// Output: true
}
