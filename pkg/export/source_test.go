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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wantDevices     int
		wantConnections int
	}{
		{
			name:            "devices and connections",
			input:           `{"devices": {"all_devices": [{"vendor": "Hikvision"}, {}]}, "connections": {"all_connections": [{"id": 1}]}}`,
			wantDevices:     2,
			wantConnections: 1,
		},
		{name: "empty object", input: `{}`},
		{name: "other sections ignored", input: `{"neighbors": {"all_neighbors": [{}]}, "scan_metadata": [{}]}`},
		{name: "devices not an object", input: `{"devices": [1, 2, 3]}`},
		{name: "all_devices not a list", input: `{"devices": {"all_devices": {"id": 1}}}`},
		{name: "all_devices null", input: `{"devices": {"all_devices": null}}`},
		{name: "connections section missing key", input: `{"connections": {"summary": {}}}`},
		{name: "top level array", input: `[{"devices": {"all_devices": [{}]}}]`},
		{name: "top level null", input: `null`},
		{name: "top level string", input: `"devices"`},
		{name: "top level number", input: `42`},
		{
			name:            "only connections",
			input:           `{"connections": {"all_connections": [{"id": 1}, {"id": 2}, "opaque"]}}`,
			wantConnections: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseSource([]byte(tt.input))
			require.NoError(t, err)

			assert.NotNil(t, src.Devices)
			assert.NotNil(t, src.Connections)
			assert.Len(t, src.Devices, tt.wantDevices)
			assert.Len(t, src.Connections, tt.wantConnections)
		})
	}
}

func TestParseSourceInvalidJSON(t *testing.T) {
	for _, input := range []string{``, `{"devices": `, `{devices: []}`, `{"a": 1} trailing`} {
		_, err := ParseSource([]byte(input))
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInput)

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr, "input %q", input)
	}
}

func TestParseSourceKeepsConnectionsVerbatim(t *testing.T) {
	conn := `{"id": 3,  "port_name": "ge-0/0/1", "mac_address": "aa:bb:cc:dd:ee:ff"}`

	src, err := ParseSource([]byte(`{"connections": {"all_connections": [` + conn + `]}}`))
	require.NoError(t, err)
	require.Len(t, src.Connections, 1)
	assert.Equal(t, conn, string(src.Connections[0]))
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw_data_complete.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"devices": {"all_devices": [{"name": "sw1"}]}}`), 0o600))

	src, err := LoadSource(path)
	require.NoError(t, err)
	assert.Len(t, src.Devices, 1)
	assert.Empty(t, src.Connections)
}

func TestLoadSourceErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.jsonl")
	_, err := LoadSource(missing)
	require.ErrorIs(t, err, ErrInput)
	assert.Contains(t, err.Error(), missing)

	malformed := filepath.Join(dir, "malformed.jsonl")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"devices": {"all_devices": [`), 0o600))

	_, err = LoadSource(malformed)
	require.ErrorIs(t, err, ErrInput)
	assert.Contains(t, err.Error(), malformed)

	_, err = LoadSource(dir)
	assert.ErrorIs(t, err, ErrInput, "a directory is not a readable document")
}
