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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value string
		want  string
	}{
		{
			name:  "replaces in place",
			raw:   `{"a": 1, "type": "Generic", "z": {"k": [1, 2]}}`,
			value: `"Switch"`,
			want:  `{"a":1,"type":"Switch","z":{"k": [1, 2]}}`,
		},
		{
			name:  "appends when absent",
			raw:   `{"vendor": "Mist"}`,
			value: `"Access Point"`,
			want:  `{"vendor":"Mist","type":"Access Point"}`,
		},
		{
			name:  "empty object",
			raw:   ` { } `,
			value: `"Firewall"`,
			want:  `{"type":"Firewall"}`,
		},
		{
			name:  "duplicate members all replaced",
			raw:   `{"type": "", "name": "x", "type": "Generic"}`,
			value: `"Switch"`,
			want:  `{"type":"Switch","name":"x","type":"Switch"}`,
		},
		{
			name:  "large numbers and unicode kept",
			raw:   `{"id": 1e400, "note": "café & <bar>", "type": null}`,
			value: `"IP Camera"`,
			want:  `{"id":1e400,"note":"café & <bar>","type":"IP Camera"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := setField(json.RawMessage(tt.raw), "type", json.RawMessage(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSetFieldRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`[1, 2]`, `"device"`, `null`, `{"a": `} {
		_, err := setField(json.RawMessage(raw), "type", json.RawMessage(`"Switch"`))
		assert.Error(t, err, "input %q", raw)
	}
}
