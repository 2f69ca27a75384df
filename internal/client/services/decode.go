package services

import (
	"encoding/json"
	"fmt"

	"github.com/feedlink/feedlink-go/internal/client/api"
)

// decodeList extracts a slice from a response that is either a bare JSON
// array or an object wrapping the array under key, e.g.
// {"donations":[...]}.
func decodeList[T any](res *api.Result, key string) ([]T, error) {
	var items []T
	if err := res.Decode(&items); err == nil {
		return items, nil
	}
	var wrapper map[string]json.RawMessage
	if err := res.Decode(&wrapper); err != nil {
		return nil, err
	}
	raw, ok := wrapper[key]
	if !ok {
		return nil, fmt.Errorf("response has no %q field", key)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// decodeObject extracts a single object that may arrive bare or wrapped
// under key, e.g. {"donation":{...}}.
func decodeObject[T any](res *api.Result, key string) (*T, error) {
	var wrapper map[string]json.RawMessage
	if err := res.Decode(&wrapper); err != nil {
		return nil, err
	}
	raw, ok := wrapper[key]
	if !ok {
		// bare object: decode the whole payload
		var item T
		if err := res.Decode(&item); err != nil {
			return nil, err
		}
		return &item, nil
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &item, nil
}
