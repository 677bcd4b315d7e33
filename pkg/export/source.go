/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	devicesSection     = "devices"
	devicesKey         = "all_devices"
	connectionsSection = "connections"
	connectionsKey     = "all_connections"
)

// Source holds the parts of a scan document that the export carries over.
type Source struct {
	Devices     []json.RawMessage
	Connections []json.RawMessage
}

// LoadSource reads and parses the scan document at path.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file '%s': %w", ErrInput, path, err)
	}

	src, err := ParseSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file '%s')", err, path)
	}

	return src, nil
}

// ParseSource parses a scan document. Invalid JSON is an error; missing or
// wrongly-shaped devices/connections sections are read as empty.
func ParseSource(data []byte) (*Source, error) {
	var top map[string]json.RawMessage

	if err := json.Unmarshal(data, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: failed to unmarshal JSON: %w", ErrInput, err)
		}

		// valid JSON, but not an object
		top = nil
	}

	return &Source{
		Devices:     sectionList(top, devicesSection, devicesKey),
		Connections: sectionList(top, connectionsSection, connectionsKey),
	}, nil
}

// sectionList returns top[section][key] when it is a list, or an empty slice.
func sectionList(top map[string]json.RawMessage, section, key string) []json.RawMessage {
	raw, ok := top[section]
	if !ok {
		return []json.RawMessage{}
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(raw, &inner); err != nil {
		return []json.RawMessage{}
	}

	listRaw, ok := inner[key]
	if !ok {
		return []json.RawMessage{}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(listRaw, &list); err != nil || list == nil {
		return []json.RawMessage{}
	}

	return list
}
