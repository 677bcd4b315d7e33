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
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Dracula theme colors.
const (
	draculaCyan  = "#8BE9FD"
	draculaGreen = "#50FA7B"
	draculaRed   = "#FF5555"
)

type reportStyles struct {
	info, success, error lipgloss.Style
}

func newReportStyles() reportStyles {
	return reportStyles{
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
	}
}

// PrintSummary writes the human-readable report for a finished run.
func PrintSummary(w io.Writer, res *Result) error {
	styles := newReportStyles()

	lines := []string{
		"",
		styles.success.Render("[SUCCESS] Transformed data written to " + res.OutputPath),
		fmt.Sprintf("  - %d devices", res.Devices),
		fmt.Sprintf("  - %d connections", res.Connections),
	}

	if res.Classification != nil && res.Classification.Reclassified > 0 {
		lines = append(lines, styles.info.Render(
			fmt.Sprintf("[INFO] Reclassified %d devices", res.Classification.Reclassified)))

		labels := make([]string, 0, len(res.Classification.ByLabel))
		for label := range res.Classification.ByLabel {
			labels = append(labels, label)
		}

		sort.Strings(labels)

		for _, label := range labels {
			lines = append(lines, fmt.Sprintf("  - %s: %d", label, res.Classification.ByLabel[label]))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// PrintError writes a failed run's error in the report style.
func PrintError(w io.Writer, err error) {
	styles := newReportStyles()

	_, _ = fmt.Fprintln(w, styles.error.Render("[ERROR] "+err.Error()))
}
