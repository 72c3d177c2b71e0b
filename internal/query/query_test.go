package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thand-io/gitlab-client/internal/models"
)

func TestFilter_Run(t *testing.T) {
	user := models.UserFromMap(nil, map[string]any{
		"id":       float64(7),
		"username": "alice",
		"state":    "active",
	})

	tests := []struct {
		name       string
		expression string
		input      any
		expected   []any
	}{
		{name: "identity field", expression: ".username", input: user, expected: []any{"alice"}},
		{name: "number", expression: ".id", input: user, expected: []any{float64(7)}},
		{name: "object", expression: "{u: .username}", input: user, expected: []any{map[string]any{"u": "alice"}}},
		{name: "stream", expression: ".[] | .title", input: []map[string]any{{"title": "a"}, {"title": "b"}}, expected: []any{"a", "b"}},
		{name: "empty", expression: "empty", input: user, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expression, filter.String())

			results, err := filter.Run(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, results)
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(".[")
	assert.Error(t, err)

	_, err = Compile("$undefined")
	assert.Error(t, err)
}

func TestFilter_RuntimeError(t *testing.T) {
	filter, err := Compile(".username | tonumber")
	require.NoError(t, err)

	_, err = filter.Run(map[string]any{"username": "alice"})
	assert.Error(t, err)
}
