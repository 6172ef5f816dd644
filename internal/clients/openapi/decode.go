// Package openapi holds decoding helpers shared by the data.go.kr API
// clients. The services serialize the same logical response in several
// shapes, so every client funnels its "items" payload through here.
package openapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// DecodeItems handles the shapes the services return for "items": a plain
// list, or an object whose "item" key is itself a list or a single record.
// Absent, null or empty-string items decode to an empty list. An object
// without an "item" key is also empty; the services use that shape for
// "no results".
func DecodeItems[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return nil, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	if len(wrapper.Item) == 0 || bytes.Equal(wrapper.Item, []byte("null")) {
		return nil, nil
	}

	if err := json.Unmarshal(wrapper.Item, &list); err == nil {
		return list, nil
	}

	var single T
	if err := json.Unmarshal(wrapper.Item, &single); err != nil {
		return nil, err
	}
	return []T{single}, nil
}

// FlexInt64 decodes integers the services serialize inconsistently as
// numbers or quoted strings. Empty or unparsable values decode to 0.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	// Some records carry decimal points on nominally integer amounts.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt64(v)
	return nil
}
