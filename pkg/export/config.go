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
	"path/filepath"

	"github.com/carverauto/radarexport/pkg/logger"
)

const (
	// DefaultInputPath is the scan dump produced by the fetch scripts.
	DefaultInputPath = "raw_data_complete.jsonl"
	// DefaultOutputPath is where the dashboard loads its data from.
	DefaultOutputPath = "public/raw_data_complete.jsonl"
)

// Config controls a single export run.
type Config struct {
	InputPath  string         `json:"input_path"`
	OutputPath string         `json:"output_path"`
	Logging    *logger.Config `json:"logging,omitempty"`
}

// DefaultConfig returns the fixed paths the dashboard expects.
func DefaultConfig() *Config {
	return &Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrInputPathRequired
	}

	if c.OutputPath == "" {
		return ErrOutputPathRequired
	}

	if filepath.Clean(c.InputPath) == filepath.Clean(c.OutputPath) {
		return ErrSamePath
	}

	return nil
}
