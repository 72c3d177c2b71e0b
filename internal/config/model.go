package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/gitlab"
)

// Config represents the application configuration structure
type Config struct {
	GitLab  GitLabConfig  `mapstructure:"gitlab"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// GitLabConfig describes the GitLab instance and how to authenticate to it.
type GitLabConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Token     string        `mapstructure:"token"`
	TokenType string        `mapstructure:"token_type"` // private or oauth
	Timeout   time.Duration `mapstructure:"timeout"`
	Retries   int           `mapstructure:"retries"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // json, yaml or text
}

const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
	OutputFormatText = "text"
)

// Validate checks the settings needed to talk to GitLab.
func (c *Config) Validate() error {
	if !common.IsValidEndpoint(c.GitLab.Endpoint) {
		return fmt.Errorf("invalid gitlab endpoint %q", c.GitLab.Endpoint)
	}

	switch gitlab.TokenType(strings.ToLower(c.GitLab.TokenType)) {
	case gitlab.TokenTypePrivate, gitlab.TokenTypeOAuth:
	default:
		return fmt.Errorf("invalid gitlab token type %q, expected private or oauth", c.GitLab.TokenType)
	}

	if c.GitLab.Retries < 0 {
		return fmt.Errorf("gitlab retries must not be negative")
	}

	switch strings.ToLower(c.Output.Format) {
	case OutputFormatJSON, OutputFormatYAML, OutputFormatText:
	default:
		return fmt.Errorf("invalid output format %q, expected json, yaml or text", c.Output.Format)
	}

	return nil
}

// NewClient builds the GitLab transport shared by every entity.
func (c *Config) NewClient() (*gitlab.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return gitlab.New(
		c.GitLab.Endpoint,
		c.GitLab.Token,
		gitlab.WithTokenType(gitlab.TokenType(strings.ToLower(c.GitLab.TokenType))),
		gitlab.WithTimeout(c.GitLab.Timeout),
		gitlab.WithRetries(c.GitLab.Retries),
	), nil
}
