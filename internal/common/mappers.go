package common

import (
	"encoding/json"
)

// ConvertInterfaceToInterface round-trips from through JSON into to.
// It is used to turn entities into plain maps and slices.
func ConvertInterfaceToInterface(from any, to any) error {

	if from == nil {
		return nil
	}

	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, to)
}

// ConvertInterfaceToPlain returns from as the generic values encoding/json
// produces: map[string]any, []any, float64, string, bool and nil.
func ConvertInterfaceToPlain(from any) (any, error) {
	var out any
	if err := ConvertInterfaceToInterface(from, &out); err != nil {
		return nil, err
	}
	return out, nil
}
