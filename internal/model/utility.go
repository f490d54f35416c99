package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locate methods.
const (
	MethodEM         = "em"
	MethodGPR        = "gpr"
	MethodVisual     = "visual"
	MethodNotLocated = "not_located"
	MethodNotInArea  = "not_in_area"
)

// allMethods is the method list shared by most utility types.
var allMethods = []string{MethodEM, MethodGPR, MethodVisual, MethodNotLocated, MethodNotInArea}

var methodLabels = map[string]string{
	MethodEM:         "Located with EM",
	MethodGPR:        "Located with GPR",
	MethodVisual:     "Located visually",
	MethodNotLocated: "Not located",
	MethodNotInArea:  "Not in proposed work area",
}

// UtilityType describes one row of the utility matrix.
type UtilityType struct {
	Key              string
	DisplayName      string
	AvailableMethods []string
}

// UtilityTypes is the fixed utility matrix, in report order.
// Ditch can only be confirmed visually.
var UtilityTypes = []UtilityType{
	{Key: "electrical", DisplayName: "Electrical", AvailableMethods: allMethods},
	{Key: "communications", DisplayName: "Communications", AvailableMethods: allMethods},
	{Key: "gas", DisplayName: "Gas / Pipeline", AvailableMethods: allMethods},
	{Key: "water", DisplayName: "Water", AvailableMethods: allMethods},
	{Key: "storm", DisplayName: "Storm", AvailableMethods: allMethods},
	{Key: "sanitary", DisplayName: "Sanitary", AvailableMethods: allMethods},
	{Key: "ditch", DisplayName: "Ditch", AvailableMethods: []string{MethodVisual, MethodNotLocated}},
	{Key: "unknown", DisplayName: "Unknown / Other", AvailableMethods: allMethods},
}

// UtilityFinding is what the technician recorded for one utility type.
type UtilityFinding struct {
	Methods map[string]bool `yaml:"methods" json:"methods,omitempty"`
	Summary string          `yaml:"summary" json:"summary,omitempty"`
}

// UtilityMatrix maps utility type keys to findings. Keys that are not in
// UtilityTypes are ignored.
type UtilityMatrix map[string]UtilityFinding

// Utility pairs a utility type with its finding.
type Utility struct {
	Type    UtilityType
	Finding UtilityFinding
}

// Utility returns the utility for a key from UtilityTypes.
func (m UtilityMatrix) Utility(t UtilityType) Utility {
	return Utility{Type: t, Finding: m[t.Key]}
}

// ActiveUtilities returns the utilities that should appear in the report,
// in UtilityTypes order.
func (m UtilityMatrix) ActiveUtilities() []Utility {
	active := make([]Utility, 0, len(UtilityTypes))
	for _, t := range UtilityTypes {
		u := m.Utility(t)
		if u.ShouldDisplay() {
			active = append(active, u)
		}
	}
	return active
}

// HasAnyMethod reports whether any available method is selected.
// Methods that the type does not offer are ignored.
func (u Utility) HasAnyMethod() bool {
	for _, method := range u.Type.AvailableMethods {
		if u.Finding.Methods[method] {
			return true
		}
	}
	return false
}

// ShouldDisplay reports whether the utility has a method or a summary.
func (u Utility) ShouldDisplay() bool {
	return u.HasAnyMethod() || u.Finding.Summary != ""
}

// MethodLabels returns labels of the selected methods in available order.
func (u Utility) MethodLabels() []string {
	labels := make([]string, 0, len(u.Type.AvailableMethods))
	for _, method := range u.Type.AvailableMethods {
		if !u.Finding.Methods[method] {
			continue
		}
		if label, ok := methodLabels[method]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, method)
		}
	}
	return labels
}

// FormatHeader formats "ELECTRICAL (Located with EM, Located with GPR)".
// A Caser is stateful, so one is created per call.
func (u Utility) FormatHeader() string {
	header := cases.Upper(language.English).String(u.Type.DisplayName)
	if labels := u.MethodLabels(); len(labels) > 0 {
		header += " (" + strings.Join(labels, ", ") + ")"
	}
	return header
}

// FormatSection formats the header and summary, or "" when the utility
// should not be displayed.
func (u Utility) FormatSection() string {
	if !u.ShouldDisplay() {
		return ""
	}
	header := u.FormatHeader()
	if u.Finding.Summary == "" {
		return header + ":"
	}
	return header + ":\n" + u.Finding.Summary
}
