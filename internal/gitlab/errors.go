package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// TransportError describes a response GitLab answered but did not
// fulfil: a non-2xx status or a body that could not be decoded.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	RequestID  string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("gitlab: %s %s: %d", e.Method, e.Path, e.StatusCode)
	if len(e.Message) > 0 {
		msg += " " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from GitLab.
func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}

// HasStatus reports whether err is a *TransportError with the given status.
func HasStatus(err error, status int) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode == status
}

func newTransportError(r request, resp *resty.Response) *TransportError {
	return &TransportError{
		Method:     r.method,
		Path:       expandPath(r),
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.Body()),
		RequestID:  resp.Request.Header.Get(headerRequestID),
	}
}

func malformed(r request, resp *resty.Response, err error) *TransportError {
	return &TransportError{
		Method:     r.method,
		Path:       expandPath(r),
		StatusCode: resp.StatusCode(),
		Message:    "malformed response",
		RequestID:  resp.Request.Header.Get(headerRequestID),
		Err:        err,
	}
}

func expandPath(r request) string {
	path := r.path
	for k, v := range r.pathParams {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}
	return path
}

// errorMessage extracts GitLab's error text. GitLab answers with either
// {"message": ...} or {"error": ...}; message may be a string or a map
// of field names to validation messages.
func errorMessage(body []byte) string {
	var payload struct {
		Message any    `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}

	switch m := payload.Message.(type) {
	case string:
		return m
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s %v", k, flatten(m[k])))
		}
		return strings.Join(parts, "; ")
	case nil:
		return payload.Error
	default:
		return fmt.Sprintf("%v", m)
	}
}

func flatten(v any) string {
	items, ok := v.([]any)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, ", ")
}
