package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/config"
	"github.com/thand-io/gitlab-client/internal/gitlab"
)

// state is shared by every command of one command tree.
type state struct {
	cfg *config.Config
}

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func (s *state) preRunConfigE(cmd *cobra.Command, _ []string) error {
	var err error
	s.cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if endpoint, err := cmd.Flags().GetString("endpoint"); err == nil && len(endpoint) > 0 {
		s.cfg.GitLab.Endpoint = endpoint
	}

	if token, err := cmd.Flags().GetString("token"); err == nil && len(token) > 0 {
		s.cfg.GitLab.Token = token
	}

	if output, err := cmd.Flags().GetString("output"); err == nil && len(output) > 0 {
		s.cfg.Output.Format = output
	}

	return s.cfg.Validate()
}

func (s *state) client() (*gitlab.Client, error) {
	if s.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return s.cfg.NewClient()
}

// run executes fn with a context cancelled on Ctrl-C.
func run(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	ctx, cleanup := common.WithInterrupt(parent)
	defer cleanup()

	return fn(ctx)
}

func newRootCmd() *cobra.Command {
	s := &state{}

	rootCmd := &cobra.Command{
		Use:   "gitlab-client",
		Short: "Manage GitLab users, SSH keys and group membership",
		Long: `gitlab-client drives the GitLab REST API v4 from the command line.

If no config file is specified, configuration is read from config.yaml in
the following locations:
  - ./config.yaml
  - ./config/config.yaml
  - /etc/gitlab-client/config.yaml
  - ~/.config/gitlab-client/config.yaml

Every setting can be overridden with GITLAB_CLIENT_* environment variables,
for example GITLAB_CLIENT_GITLAB_TOKEN.`,
		PersistentPreRunE: s.preRunConfigE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("endpoint", "", "GitLab base URL (e.g., https://gitlab.example.com)")
	rootCmd.PersistentFlags().String("token", "", "GitLab access token")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: json, yaml or text")
	rootCmd.PersistentFlags().String("jq", "", "Filter the output with a jq expression")

	rootCmd.AddCommand(
		newUsersCmd(s),
		newGroupsCmd(s),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and reports any error.
func Execute() error {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), errorStyle.Render(fmt.Sprintf("Error: %s", err.Error())))
		return err
	}

	return nil
}
