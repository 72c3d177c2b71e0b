package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/models"
)

func newGroupsCmd(s *state) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "Inspect GitLab groups",
	}

	groupsCmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := common.ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := s.client()
			if err != nil {
				return err
			}

			group := models.NewGroup(client, id)

			return run(cmd, func(ctx context.Context) error {
				fresh, err := group.Show(ctx)
				if err != nil {
					return err
				}
				return s.printResult(cmd, fresh)
			})
		},
	})

	return groupsCmd
}
