package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/layout"
)

// MarshalLayout serializes a solved layout for caching.
func MarshalLayout(res layout.Result) ([]byte, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}

// UnmarshalLayout restores a layout written by [MarshalLayout].
func UnmarshalLayout(data []byte) (layout.Result, error) {
	var res layout.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return layout.Result{}, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal layout")
	}
	return res, nil
}
