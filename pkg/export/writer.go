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
	"fmt"
	"os"
	"path/filepath"
)

const (
	indent          = "  "
	defaultFilePerm = 0o644
)

// EncodeDocument renders doc as indented JSON followed by a newline.
func EncodeDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: failed to encode export document: %w", ErrOutput, err)
	}

	return buf.Bytes(), nil
}

// WriteDocument writes doc to path, replacing any existing file. The parent
// directory must already exist. Data goes to a temporary file in the same
// directory first, so path is either fully replaced or left untouched.
func WriteDocument(path string, doc *Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create '%s': %w", ErrOutput, path, err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: failed to write '%s': %w", ErrOutput, path, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: failed to write '%s': %w", ErrOutput, path, err)
	}

	if err := os.Chmod(tmpName, defaultFilePerm); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: failed to set permissions on '%s': %w", ErrOutput, path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: failed to replace '%s': %w", ErrOutput, path, err)
	}

	return nil
}
