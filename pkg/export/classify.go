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
	"strings"
)

// Device type labels written by the classifier.
const (
	TypeSwitch             = "Switch"
	TypeIPCamera           = "IP Camera"
	TypeAccessPoint        = "Access Point"
	TypeFirewall           = "Firewall"
	TypeSmartphoneIOS      = "Smartphone (iOS)"
	TypeSmartphoneAndroid  = "Smartphone (Android)"
	TypeAndroidDevice      = "Android Device"
	switchModelName        = "x460g2-48p-g4"
	switchModelNameContain = "x460g2"
)

// Placeholder types the scanner emits before a device has been identified.
const (
	SentinelL2Only  = "L2_ONLY"
	SentinelUnknown = "UNKNOWN"
	SentinelGeneric = "Generic"
)

// Rule identifies which classification rule decided a device's type.
type Rule int

const (
	RuleSwitchName Rule = iota + 1
	RuleCameraVendor
	RuleAccessPoint
	RuleFirewall
	RuleAppleSmartphone
	RuleSamsungSmartphone
	RuleGoogleDevice
	RuleKeepDefined
	RuleUnclassified
)

var ruleNames = map[Rule]string{
	RuleSwitchName:        "switch_name",
	RuleCameraVendor:      "camera_vendor",
	RuleAccessPoint:       "access_point",
	RuleFirewall:          "firewall",
	RuleAppleSmartphone:   "apple_smartphone",
	RuleSamsungSmartphone: "samsung_smartphone",
	RuleGoogleDevice:      "google_device",
	RuleKeepDefined:       "keep_defined",
	RuleUnclassified:      "unclassified",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}

	return "unknown"
}

// Rewrites reports whether the rule assigns a new type label.
func (r Rule) Rewrites() bool {
	return r >= RuleSwitchName && r < RuleKeepDefined
}

// IsSentinelType reports whether typ is one of the scanner's "not yet classified" values.
// The comparison is exact.
func IsSentinelType(typ string) bool {
	switch typ {
	case SentinelL2Only, SentinelUnknown, SentinelGeneric:
		return true
	default:
		return false
	}
}

// Classify decides the type label for a device from its vendor, name and current type.
// Rules are evaluated in order and the first match wins. When the returned rule does
// not rewrite, the returned label is typ unchanged.
func Classify(vendor, name, typ string) (string, Rule) {
	v := strings.ToLower(vendor)
	n := strings.ToLower(name)
	t := strings.ToLower(typ)

	switch {
	case strings.Contains(n, switchModelNameContain) || n == switchModelName:
		return TypeSwitch, RuleSwitchName
	case strings.Contains(v, "hikvision") || strings.Contains(v, "dahua"):
		return TypeIPCamera, RuleCameraVendor
	case strings.Contains(v, "mist") || strings.Contains(t, "access point"):
		return TypeAccessPoint, RuleAccessPoint
	case strings.Contains(v, "sophos") || strings.Contains(t, "firewall"):
		return TypeFirewall, RuleFirewall
	case strings.Contains(v, "apple") && !strings.Contains(t, "iphone"):
		return TypeSmartphoneIOS, RuleAppleSmartphone
	case strings.Contains(v, "samsung") && !strings.Contains(t, "phone"):
		return TypeSmartphoneAndroid, RuleSamsungSmartphone
	case strings.Contains(v, "google"):
		return TypeAndroidDevice, RuleGoogleDevice
	case typ != "" && !IsSentinelType(typ):
		return typ, RuleKeepDefined
	default:
		// TODO: assign a fallback label once the dashboard defines one for empty and sentinel types.
		return typ, RuleUnclassified
	}
}

// Device is a single scanned device record. Values are kept as raw JSON so that
// fields the classifier does not touch are written back exactly as read.
type Device map[string]json.RawMessage

// Vendor returns the device vendor, or "" when absent or not a string.
func (d Device) Vendor() string { return d.stringField("vendor") }

// Name returns the device name, or "" when absent or not a string.
func (d Device) Name() string { return d.stringField("name") }

// Type returns the device type, or "" when absent or not a string.
func (d Device) Type() string { return d.stringField("type") }

func (d Device) stringField(key string) string {
	raw, ok := d[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}

// ClassifyDevice applies Classify to d and overwrites its type in place when a
// rewriting rule fires. No other field is touched.
func ClassifyDevice(d Device) (Device, Rule) {
	label, rule := Classify(d.Vendor(), d.Name(), d.Type())
	if !rule.Rewrites() {
		return d, rule
	}

	encoded, err := marshalJSON(label)
	if err != nil {
		// a plain string always encodes
		return d, rule
	}

	d["type"] = encoded

	return d, rule
}

// ClassificationSummary tallies the rules that fired over a device list.
type ClassificationSummary struct {
	ByRule       map[Rule]int
	ByLabel      map[string]int
	Reclassified int
	Skipped      int
}

func newClassificationSummary() *ClassificationSummary {
	return &ClassificationSummary{
		ByRule:  make(map[Rule]int),
		ByLabel: make(map[string]int),
	}
}

// ClassifyRecords classifies every device record in records. Each record is judged
// only by its own original fields. Records whose type is not rewritten, and elements
// that are not JSON objects, are returned byte-for-byte; rewritten records keep their
// member order and every value other than type.
func ClassifyRecords(records []json.RawMessage) ([]json.RawMessage, *ClassificationSummary) {
	summary := newClassificationSummary()
	out := make([]json.RawMessage, 0, len(records))

	for _, raw := range records {
		var device Device
		if err := json.Unmarshal(raw, &device); err != nil || device == nil {
			summary.Skipped++
			out = append(out, raw)

			continue
		}

		classified, rule := ClassifyDevice(device)
		summary.ByRule[rule]++

		if !rule.Rewrites() {
			out = append(out, raw)
			continue
		}

		encoded, err := setField(raw, "type", classified["type"])
		if err != nil {
			summary.Skipped++
			out = append(out, raw)

			continue
		}

		summary.Reclassified++
		summary.ByLabel[classified.Type()]++
		out = append(out, encoded)
	}

	return out, summary
}

// marshalJSON encodes v without HTML escaping and without a trailing newline.
func marshalJSON(v interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
