package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/gitlab"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// version must work without a usable configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			if _, _, ok := common.GetModuleBuildInfo(); !ok {
				fmt.Fprintln(out, "Failed to get version information")
				return
			}

			fmt.Fprintln(out, headerStyle.Render("gitlab-client"), common.GetVersion())
			fmt.Fprintln(out, mutedStyle.Render("GitLab API "+gitlab.APIVersion))
		},
	}
}
