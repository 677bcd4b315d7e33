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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotObject = errors.New("record is not a JSON object")

// setField returns raw with every member named key set to value. Other members keep
// their position and their value bytes; key is appended when raw has no such member.
func setField(raw json.RawMessage, key string, value json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	found := false
	first := true

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", errNotObject, tok)
		}

		var member json.RawMessage
		if err := dec.Decode(&member); err != nil {
			return nil, err
		}

		if name == key {
			member = value
			found = true
		}

		if err := writeMember(&buf, name, member, first); err != nil {
			return nil, err
		}

		first = false
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if !found {
		if err := writeMember(&buf, key, value, first); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, name string, value json.RawMessage, first bool) error {
	encodedName, err := marshalJSON(name)
	if err != nil {
		return err
	}

	if !first {
		buf.WriteByte(',')
	}

	buf.Write(encodedName)
	buf.WriteByte(':')
	buf.Write(value)

	return nil
}
