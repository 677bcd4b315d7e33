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

// Package export turns a raw scan dump into the dashboard export document.
package export

import (
	"github.com/carverauto/radarexport/pkg/logger"
	"github.com/google/uuid"
)

// Transformer runs one load, classify, assemble and write pass.
type Transformer struct {
	config *Config
	logger logger.Logger
	clock  Clock
}

// Result describes a completed run.
type Result struct {
	RunID          string
	InputPath      string
	OutputPath     string
	Devices        int
	Connections    int
	Classification *ClassificationSummary
}

// NewTransformer validates cfg and returns a Transformer. A nil log discards
// output and a nil clock uses the system time.
func NewTransformer(cfg *Config, log logger.Logger, clock Clock) (*Transformer, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	if clock == nil {
		clock = realClock{}
	}

	return &Transformer{
		config: cfg,
		logger: log,
		clock:  clock,
	}, nil
}

// Run performs the export. Any error aborts the run; nothing is written when
// loading fails.
func (t *Transformer) Run() (*Result, error) {
	runID := uuid.NewString()
	log := t.logger.With().Str("run_id", runID).Logger()

	log.Debug().
		Str("input", t.config.InputPath).
		Str("output", t.config.OutputPath).
		Msg("Starting export")

	src, err := LoadSource(t.config.InputPath)
	if err != nil {
		return nil, err
	}

	devices, summary := ClassifyRecords(src.Devices)
	src.Devices = devices

	log.Info().Int("count", len(src.Devices)).Msgf("Found %d devices", len(src.Devices))
	log.Info().Int("count", len(src.Connections)).Msgf("Found %d connections", len(src.Connections))

	if summary.Skipped > 0 {
		log.Warn().Int("skipped", summary.Skipped).Msg("Device records that are not objects were copied without classification")
	}

	for rule, count := range summary.ByRule {
		log.Debug().Str("rule", rule.String()).Int("count", count).Msg("Classification rule applied")
	}

	doc := Assemble(src, t.clock.Now())

	if err := WriteDocument(t.config.OutputPath, doc); err != nil {
		return nil, err
	}

	log.Info().
		Str("output", t.config.OutputPath).
		Int("devices", doc.Data.Devices.Count).
		Int("connections", doc.Data.Connections.Count).
		Int("reclassified", summary.Reclassified).
		Msg("Transformed data written")

	return &Result{
		RunID:          runID,
		InputPath:      t.config.InputPath,
		OutputPath:     t.config.OutputPath,
		Devices:        doc.Data.Devices.Count,
		Connections:    doc.Data.Connections.Count,
		Classification: summary,
	}, nil
}
