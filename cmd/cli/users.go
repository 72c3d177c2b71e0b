package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/models"
)

func newUsersCmd(s *state) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage GitLab users",
		Long: `Show, create, update, block and remove GitLab users, manage SSH keys
and group membership.

Example:
  gitlab-client users show 42
  gitlab-client users block 42`,
	}

	usersCmd.AddCommand(
		newUsersShowCmd(s),
		newUsersCreateCmd(s),
		newUsersUpdateCmd(s),
		newUsersRemoveCmd(s),
		newUsersBlockCmd(s, true),
		newUsersBlockCmd(s, false),
		newUsersKeysCmd(s),
		newUsersCreateKeyCmd(s),
		newUsersRemoveKeyCmd(s),
		newUsersAddToGroupCmd(s),
		newUsersRemoveFromGroupCmd(s),
	)

	return usersCmd
}

// userFromArgs binds the user named by the first positional argument to
// a fresh client.
func (s *state) userFromArgs(args []string) (*models.User, error) {
	id, err := common.ParseID(args[0])
	if err != nil {
		return nil, err
	}

	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return models.NewUser(client, id), nil
}

func newUsersShowCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := s.userFromArgs(args)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context) error {
				fresh, err := user.Show(ctx)
				if err != nil {
					return err
				}
				return s.printResult(cmd, fresh)
			})
		},
	}
}

func newUsersCreateCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long: `Create a user. Additional attributes are passed with --param.

Example:
  gitlab-client users create --email jo@example.com --password s3cret \
    --param username=jo --param name="Jo Doe"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			pairs, _ := cmd.Flags().GetStringArray("param")

			params, err := common.ParseParams(pairs)
			if err != nil {
				return err
			}

			client, err := s.client()
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context) error {
				user, err := models.CreateUser(ctx, client, email, password, params)
				if err != nil {
					return err
				}
				return s.printResult(cmd, user)
			})
		},
	}

	cmd.Flags().String("email", "", "Email address of the new user")
	cmd.Flags().String("password", "", "Password of the new user")
	cmd.Flags().StringArray("param", nil, "Additional attribute as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersUpdateCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a user's attributes",
		Long: `Update a user. Attributes are passed with --param.

Example:
  gitlab-client users update 42 --param bio="Platform team" --param projects_limit=20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("param")
			if len(pairs) == 0 {
				return fmt.Errorf("at least one --param is required")
			}

			params, err := common.ParseParams(pairs)
			if err != nil {
				return err
			}

			user, err := s.userFromArgs(args)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context) error {
				updated, err := user.Update(ctx, params)
				if err != nil {
					return err
				}
				return s.printResult(cmd, updated)
			})
		},
	}

	cmd.Flags().StringArray("param", nil, "Attribute as key=value (repeatable)")

	return cmd
}

func newUsersRemoveCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := s.userFromArgs(args)
			if err != nil {
				return err
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				confirmed, err := confirm(fmt.Sprintf("Delete user %s?", args[0]))
				if err != nil {
					return err
				}
				if !confirmed {
					return fmt.Errorf("deletion of user %s cancelled", args[0])
				}
			}

			return run(cmd, func(ctx context.Context) error {
				ok, err := user.Remove(ctx)
				if err != nil {
					return err
				}
				return s.printSuccess(cmd, ok, fmt.Sprintf("User %s deleted", args[0]))
			})
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newUsersBlockCmd(s *state, block bool) *cobra.Command {
	use, short, done := "block ID", "Block a user", "blocked"
	if !block {
		use, short, done = "unblock ID", "Unblock a user", "unblocked"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := s.userFromArgs(args)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context) error {
				var ok bool
				if block {
					ok, err = user.Block(ctx)
				} else {
					ok, err = user.Unblock(ctx)
				}
				if err != nil {
					return err
				}
				return s.printSuccess(cmd, ok, fmt.Sprintf("User %s %s", args[0], done))
			})
		},
	}
}

func newUsersKeysCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the SSH keys of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := s.client()
			if err != nil {
				return err
			}

			user := models.NewUserWithoutID(client)

			return run(cmd, func(ctx context.Context) error {
				keys, err := user.Keys(ctx)
				if err != nil {
					return err
				}
				return s.printResult(cmd, keys)
			})
		},
	}
}

func newUsersCreateKeyCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-key",
		Short: "Add an SSH key",
		Long: `Add an SSH key to the authenticated user, or to another user with --user.

Example:
  gitlab-client users create-key --title laptop --key "$(cat ~/.ssh/id_ed25519.pub)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			key, _ := cmd.Flags().GetString("key")
			userID, _ := cmd.Flags().GetInt("user")

			client, err := s.client()
			if err != nil {
				return err
			}

			user := models.NewUserWithoutID(client)

			return run(cmd, func(ctx context.Context) error {
				var created *models.Key
				if userID > 0 {
					created, err = user.CreateKeyForUser(ctx, userID, title, key)
				} else {
					created, err = user.CreateKey(ctx, title, key)
				}
				if err != nil {
					return err
				}
				return s.printResult(cmd, created)
			})
		},
	}

	cmd.Flags().String("title", "", "Title of the key")
	cmd.Flags().String("key", "", "Public key contents")
	cmd.Flags().Int("user", 0, "Add the key to this user id instead of the authenticated user")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newUsersRemoveKeyCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-key KEY_ID",
		Short: "Delete an SSH key of the authenticated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID, err := common.ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := s.client()
			if err != nil {
				return err
			}

			user := models.NewUserWithoutID(client)

			return run(cmd, func(ctx context.Context) error {
				ok, err := user.RemoveKey(ctx, keyID)
				if err != nil {
					return err
				}
				return s.printSuccess(cmd, ok, fmt.Sprintf("Key %d deleted", keyID))
			})
		},
	}
}

func newUsersAddToGroupCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-to-group ID",
		Short: "Add a user to a group",
		Long: `Add a user to a group with the given access level
(10 guest, 20 reporter, 30 developer, 40 maintainer, 50 owner).

Example:
  gitlab-client users add-to-group 42 --group 5 --access-level 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, _ := cmd.Flags().GetInt("group")
			accessLevel, _ := cmd.Flags().GetInt("access-level")

			user, err := s.userFromArgs(args)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context) error {
				member, err := user.AddToGroup(ctx, groupID, accessLevel)
				if err != nil {
					return err
				}
				return s.printResult(cmd, member)
			})
		},
	}

	cmd.Flags().Int("group", 0, "Group id")
	cmd.Flags().Int("access-level", models.AccessLevelDeveloper, "Access level")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}

func newUsersRemoveFromGroupCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-from-group ID",
		Short: "Remove a user from a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, _ := cmd.Flags().GetInt("group")

			user, err := s.userFromArgs(args)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context) error {
				ok, err := user.RemoveFromGroup(ctx, groupID)
				if err != nil {
					return err
				}
				return s.printSuccess(cmd, ok, fmt.Sprintf("User %s removed from group %d", args[0], groupID))
			})
		},
	}

	cmd.Flags().Int("group", 0, "Group id")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}

func (s *state) printResult(cmd *cobra.Command, v any) error {
	p, err := newPrinter(cmd, s)
	if err != nil {
		return err
	}
	return p.print(v)
}

func (s *state) printSuccess(cmd *cobra.Command, ok bool, message string) error {
	p, err := newPrinter(cmd, s)
	if err != nil {
		return err
	}
	return p.success(ok, message)
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Description("This cannot be undone").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt cancelled: %w", err)
	}

	return confirmed, nil
}
