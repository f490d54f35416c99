package model

import (
	"strings"

	"github.com/nao1215/locatereport/internal/format"
)

// hydrovacReason is a standard reason for recommending hydrovac exposure.
type hydrovacReason struct {
	key  string
	text string
}

// hydrovacReasons lists the standard reasons in report order.
var hydrovacReasons = []hydrovacReason{
	{"obstructions", "Obstructions in scan area"},
	{"unlocated", "Unlocated utilities in area"},
	{"deep_utilities", "Possible utilities in area deeper than the scan capabilities due to geophysical subsurface conditions"},
	{"no_documentation", "No BC One Call/Site Plans/As-Builts for the area"},
}

// HydrovacRecommendation records whether hydrovac exposure is recommended.
type HydrovacRecommendation struct {
	Recommended bool            `yaml:"recommended" json:"recommended"`
	Reasons     map[string]bool `yaml:"reasons" json:"reasons,omitempty"`
	CustomNotes string          `yaml:"custom_notes" json:"custom_notes,omitempty"`
}

// SelectedReasons returns the selected standard reasons, lower-cased so they
// read as part of a sentence.
func (h HydrovacRecommendation) SelectedReasons() []string {
	selected := make([]string, 0, len(hydrovacReasons))
	for _, reason := range hydrovacReasons {
		if h.Reasons[reason.key] {
			selected = append(selected, strings.ToLower(reason.text))
		}
	}
	return selected
}

// FormatSection formats the HYDROVAC RECOMMENDED block, or "" when not
// recommended.
func (h HydrovacRecommendation) FormatSection() string {
	if !h.Recommended {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("HYDROVAC RECOMMENDED:\n")
	if selected := h.SelectedReasons(); len(selected) > 0 {
		sb.WriteString("Hydrovac exposure is recommended due to: ")
		sb.WriteString(format.OxfordJoin(selected))
		sb.WriteString(".")
	} else {
		sb.WriteString("Hydrovac exposure is recommended.")
	}
	if h.CustomNotes != "" {
		sb.WriteString("\n")
		sb.WriteString(h.CustomNotes)
	}
	return sb.String()
}
