package common

import (
	"fmt"
	"net/url"
	"strconv"
)

// IsAllDigits checks if a string contains only digits (0-9)
func IsAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// IsValidEndpoint reports whether rawurl is an absolute http(s) URL.
func IsValidEndpoint(rawurl string) bool {
	u, err := url.ParseRequestURI(rawurl)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && len(u.Host) > 0
}

// ParseID parses a positive GitLab resource id.
func ParseID(s string) (int, error) {
	if !IsAllDigits(s) {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	id, err := strconv.Atoi(s)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
