package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseParams turns key=value pairs into an API parameter map. Values
// that look like integers, booleans or null are sent as such; anything
// else stays a string. Quote a value ("'true'") to force a string.
func ParseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || len(key) == 0 {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = parseParamValue(value)
	}

	return params, nil
}

func parseParamValue(value string) any {
	if len(value) >= 2 {
		if (value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"') {
			return value[1 : len(value)-1]
		}
	}

	switch value {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	if IsAllDigits(strings.TrimPrefix(value, "-")) {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}

	return value
}
