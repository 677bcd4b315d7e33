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
	"time"
)

const (
	// ExportType labels every document produced by this exporter.
	ExportType = "COMPLETE_RAW_SCAN_DATA"
	// DatabaseSource names the scanner database the records originate from.
	DatabaseSource = "network_scanner.db"
	// TimestampFormat is the layout of Document.ExportTimestamp.
	TimestampFormat = time.RFC3339Nano
)

// Document is the dashboard export.
type Document struct {
	ExportTimestamp string       `json:"export_timestamp"`
	ExportType      string       `json:"export_type"`
	DatabaseSource  string       `json:"database_source"`
	Data            DocumentData `json:"data"`
}

// RecordSet is a counted list of records.
type RecordSet struct {
	Count   int               `json:"count"`
	Records []json.RawMessage `json:"records"`
}

// DocumentData is the fixed set of sections in an export. Neighbors, scan state,
// scan metadata and the breakdown maps are reserved and always written empty.
type DocumentData struct {
	Devices                RecordSet                  `json:"devices"`
	Connections            RecordSet                  `json:"connections"`
	Neighbors              RecordSet                  `json:"neighbors"`
	ScanMetadata           []json.RawMessage          `json:"scan_metadata"`
	ScanState              RecordSet                  `json:"scan_state"`
	DeviceTypeBreakdown    map[string]int             `json:"device_type_breakdown"`
	VendorBreakdown        map[string]int             `json:"vendor_breakdown"`
	NameResolutionSources  map[string]int             `json:"name_resolution_sources"`
	ConfidenceDistribution map[string]int             `json:"confidence_distribution"`
	PortAnalysis           map[string]json.RawMessage `json:"port_analysis"`
}

func newRecordSet(records []json.RawMessage) RecordSet {
	if records == nil {
		records = []json.RawMessage{}
	}

	return RecordSet{
		Count:   len(records),
		Records: records,
	}
}

// NewDocument returns an export with every section present and empty.
func NewDocument(exportedAt time.Time) *Document {
	return &Document{
		ExportTimestamp: exportedAt.Format(TimestampFormat),
		ExportType:      ExportType,
		DatabaseSource:  DatabaseSource,
		Data: DocumentData{
			Devices:                newRecordSet(nil),
			Connections:            newRecordSet(nil),
			Neighbors:              newRecordSet(nil),
			ScanMetadata:           []json.RawMessage{},
			ScanState:              newRecordSet(nil),
			DeviceTypeBreakdown:    map[string]int{},
			VendorBreakdown:        map[string]int{},
			NameResolutionSources:  map[string]int{},
			ConfidenceDistribution: map[string]int{},
			PortAnalysis:           map[string]json.RawMessage{},
		},
	}
}

// Assemble builds the export for src. Device and connection records are copied
// as they are in src; callers classify devices first.
func Assemble(src *Source, exportedAt time.Time) *Document {
	doc := NewDocument(exportedAt)

	if src == nil {
		return doc
	}

	doc.Data.Devices = newRecordSet(src.Devices)
	doc.Data.Connections = newRecordSet(src.Connections)

	return doc
}
