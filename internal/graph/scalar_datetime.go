// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime is the DateTime scalar. It is serialized as an RFC 3339 string
// in UTC.
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (t *DateTime) UnmarshalGraphQL(input any) error {
	switch v := input.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("invalid DateTime %q: %w", v, err)
		}
		t.Time = parsed
		return nil
	case time.Time:
		t.Time = v
		return nil
	default:
		return fmt.Errorf("wrong type for DateTime: %T", input)
	}
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
