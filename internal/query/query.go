package query

import (
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/sirupsen/logrus"

	"github.com/thand-io/gitlab-client/internal/common"
)

// Filter is a compiled jq expression applied to command output.
type Filter struct {
	expression string
	code       *gojq.Code
}

// Compile parses and compiles a jq expression.
func Compile(expression string) (*Filter, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq expression: %s, error: %w", expression, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %s, error: %w", expression, err)
	}

	return &Filter{expression: expression, code: code}, nil
}

// Run evaluates the filter against input and returns every result the
// expression emits. input is first normalised to plain JSON values,
// which is all gojq accepts.
func (f *Filter) Run(input any) ([]any, error) {
	plain, err := common.ConvertInterfaceToPlain(input)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare jq input: %w", err)
	}

	var results []any

	iter := f.code.Run(plain)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}

		if errVal, isErr := result.(error); isErr {
			logrus.WithFields(logrus.Fields{
				"expression": f.expression,
			}).WithError(errVal).Debug("jq evaluation failed")
			return nil, fmt.Errorf("jq evaluation error: %w", errVal)
		}

		results = append(results, result)
	}

	return results, nil
}

func (f *Filter) String() string {
	return f.expression
}
