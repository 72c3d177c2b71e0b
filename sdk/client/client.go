// Package client provides the GitLab REST transport for the sdk models.
// These symbols are re-exported from the internal gitlab package.
package client

import internal "github.com/thand-io/gitlab-client/internal/gitlab"

// Client talks to the GitLab REST API v4 and satisfies models.Client.
type Client = internal.Client

// Option customises a Client.
type Option = internal.Option

// TokenType selects how the access token is sent.
type TokenType = internal.TokenType

// TransportError is returned for non-2xx responses and undecodable bodies.
type TransportError = internal.TransportError

const (
	TokenTypePrivate = internal.TokenTypePrivate
	TokenTypeOAuth   = internal.TokenTypeOAuth
)

var (
	// New returns a client for the GitLab instance at endpoint.
	New = internal.New

	WithTokenType  = internal.WithTokenType
	WithTimeout    = internal.WithTimeout
	WithRetries    = internal.WithRetries
	WithHTTPClient = internal.WithHTTPClient
	WithUserAgent  = internal.WithUserAgent

	IsNotFound = internal.IsNotFound
	HasStatus  = internal.HasStatus
)
