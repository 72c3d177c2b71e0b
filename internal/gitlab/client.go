package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/models"
)

const (
	// APIVersion is the GitLab REST API version the client speaks.
	APIVersion = "v4"

	apiPath = "/api/" + APIVersion

	headerPrivateToken = "PRIVATE-TOKEN"
	headerRequestID    = "X-Request-Id"
)

// TokenType selects how the access token is presented to GitLab.
type TokenType string

const (
	TokenTypePrivate TokenType = "private"
	TokenTypeOAuth   TokenType = "oauth"
)

type options struct {
	tokenType  TokenType
	timeout    time.Duration
	retries    int
	httpClient *http.Client
	userAgent  string
}

type Option func(*options)

func WithTokenType(tokenType TokenType) Option {
	return func(o *options) {
		o.tokenType = tokenType
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithRetries sets how many times a failed request is retried. Only
// idempotent methods are retried, on network errors, 429 and 5xx, so a
// create is never sent twice. The default is no retries.
func WithRetries(retries int) Option {
	return func(o *options) {
		o.retries = retries
	}
}

// WithHTTPClient sets the underlying HTTP client. It is ignored for
// OAuth tokens, which wrap their own client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// Client talks to the GitLab REST API v4. It is safe to share between
// entities; it holds no per-call state.
type Client struct {
	endpoint string
	http     *resty.Client

	users  *UsersService
	groups *GroupsService
}

var _ models.Client = (*Client)(nil)

// New returns a client for the GitLab instance at endpoint, for example
// https://gitlab.com.
func New(endpoint, token string, opts ...Option) *Client {
	o := options{
		tokenType: TokenTypePrivate,
		timeout:   30 * time.Second,
		userAgent: fmt.Sprintf("gitlab-client/%s", common.GetBuildIdentifier()),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client

	switch {
	case o.tokenType == TokenTypeOAuth && len(token) > 0:
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		rc = resty.NewWithClient(oauth2.NewClient(context.Background(), ts))
	case o.httpClient != nil:
		rc = resty.NewWithClient(o.httpClient)
	default:
		rc = resty.New()
	}

	endpoint = strings.TrimRight(endpoint, "/")

	rc.SetBaseURL(endpoint+apiPath).
		SetTimeout(o.timeout).
		SetRetryCount(o.retries).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", o.userAgent)

	if o.tokenType != TokenTypeOAuth && len(token) > 0 {
		rc.SetHeader(headerPrivateToken, token)
	}

	rc.AddRetryCondition(retryable)

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if len(r.Header.Get(headerRequestID)) == 0 {
			r.SetHeader(headerRequestID, uuid.NewString())
		}
		return nil
	})

	c := &Client{
		endpoint: endpoint,
		http:     rc,
	}
	c.users = &UsersService{client: c}
	c.groups = &GroupsService{client: c}

	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Users() models.UsersAPI {
	return c.users
}

func (c *Client) Groups() models.GroupsAPI {
	return c.groups
}

// retryable replaces resty's retry-on-any-error default.
func retryable(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}

	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
	default:
		return false
	}

	if err != nil {
		return true
	}

	return resp.StatusCode() == http.StatusTooManyRequests ||
		resp.StatusCode() >= http.StatusInternalServerError
}

type request struct {
	method     string
	path       string
	pathParams map[string]string
	body       any
}

// do performs a single round trip and turns non-2xx responses into a
// *TransportError.
func (c *Client) do(ctx context.Context, r request) (*resty.Response, error) {
	builder := c.http.R().SetContext(ctx)

	if len(r.pathParams) > 0 {
		builder.SetPathParams(r.pathParams)
	}

	if r.body != nil {
		builder.SetBody(r.body).
			SetHeader("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := builder.Execute(r.method, r.path)

	fields := logrus.Fields{
		"method":     r.method,
		"path":       r.path,
		"params":     r.pathParams,
		"request_id": builder.Header.Get(headerRequestID),
		"duration":   time.Since(start),
	}

	if err != nil {
		logrus.WithFields(fields).WithError(err).Debugln("GitLab request failed")
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}

	fields["status"] = resp.StatusCode()
	logrus.WithFields(fields).Debugln("GitLab request completed")

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, newTransportError(r, resp)
	}

	return resp, nil
}

// object performs a request whose response is a single JSON object.
func (c *Client) object(ctx context.Context, r request) (map[string]any, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := decode(resp.Body(), &out); err != nil {
		return nil, malformed(r, resp, err)
	}
	if out == nil {
		return nil, malformed(r, resp, fmt.Errorf("expected a JSON object"))
	}

	return out, nil
}

// list performs a request whose response is a JSON array of objects.
func (c *Client) list(ctx context.Context, r request) ([]map[string]any, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	if err := decode(resp.Body(), &out); err != nil {
		return nil, malformed(r, resp, err)
	}
	if out == nil {
		out = []map[string]any{}
	}

	return out, nil
}

// exec performs a request whose response body carries nothing useful.
func (c *Client) exec(ctx context.Context, r request) error {
	_, err := c.do(ctx, r)
	return err
}

// decode keeps numbers as json.Number so large ids survive intact.
func decode(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
