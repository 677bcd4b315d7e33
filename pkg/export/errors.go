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

import "errors"

var (
	// ErrInput occurs when the scan document is missing, unreadable, or not valid JSON.
	ErrInput = errors.New("input error")
	// ErrOutput occurs when the export document cannot be encoded or written.
	ErrOutput = errors.New("output error")

	ErrConfigNil          = errors.New("config cannot be nil")
	ErrInputPathRequired  = errors.New("input path is required")
	ErrOutputPathRequired = errors.New("output path is required")
	ErrSamePath           = errors.New("input and output paths must differ")
)
