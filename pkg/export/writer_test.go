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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return Assemble(&Source{
		Devices: []json.RawMessage{
			json.RawMessage(`{"name":"A&B <lab>","type":"Switch"}`),
		},
		Connections: []json.RawMessage{},
	}, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestEncodeDocumentIndentation(t *testing.T) {
	data, err := EncodeDocument(sampleDocument())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \"export_timestamp\": \"2025-01-02T03:04:05Z\",\n"))
	assert.Contains(t, text, "\n  \"data\": {\n    \"devices\": {\n      \"count\": 1,")
	assert.Contains(t, text, `"name": "A&B <lab>"`)
	assert.True(t, strings.HasSuffix(text, "}\n"))
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw_data_complete.jsonl")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))
	require.NoError(t, WriteDocument(path, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Data.Devices.Count)
	assert.Equal(t, ExportType, doc.ExportType)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(defaultFilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestWriteDocumentMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "public", "raw_data_complete.jsonl")

	err := WriteDocument(path, sampleDocument())
	require.ErrorIs(t, err, ErrOutput)

	_, statErr := os.Stat(filepath.Join(dir, "public"))
	assert.True(t, os.IsNotExist(statErr), "the writer must not create directories")
}
