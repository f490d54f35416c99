package model

import (
	"strings"

	"github.com/nao1215/locatereport/internal/format"
)

// BC 1 Call providers.
const (
	BC1ProviderNone   = "None"
	BC1ProviderClient = "Client"
	BC1ProviderQuadra = "Quadra"
)

// Property types.
const (
	PropertyPrivate = "Private"
	PropertyPublic  = "Public"
	PropertyBoth    = "Both"
)

// MissingDocCategory is one row of the missing-documentation checklist.
type MissingDocCategory struct {
	Key   string
	Label string
}

// MissingDocCategories is the fixed checklist, in report order.
var MissingDocCategories = []MissingDocCategory{
	{Key: "hydro", Label: "BC Hydro"},
	{Key: "comm", Label: "Communications"},
	{Key: "gas", Label: "Fortis"},
	{Key: "municipal", Label: "Municipal"},
	{Key: "pipeline", Label: "Pipeline"},
	{Key: "asbuilts", Label: "As-builts"},
}

// chargeItem is a labelled billing line item.
type chargeItem struct {
	key   string
	label string
}

// supplementalItems are the supplemental charges, in billing order.
var supplementalItems = []chargeItem{
	{"parking", "Parking"},
	{"traffic_control", "Traffic control"},
	{"permits", "Permitting"},
	{"desktop", "Desktop review"},
	{"cad", "AutoCAD"},
	{"coring", "Coring"},
	{"vapour_probes", "Vapour probes"},
	{"camera", "Camera inspection"},
	{"data_processing", "Data processing"},
	{"orientation", "Orientation Time"},
	{"sketch", "Report Drafting"},
	{"kms", "Kilometres"},
	{"loa", "LOA"},
}

// materialItems are the consumable materials, in billing order.
var materialItems = []chargeItem{
	{"pin_flags", "Pin flags"},
	{"lathe_24", `Lathe 24"`},
	{"lathe_48", `Lathe 48"`},
}

// Report is a complete Site Locate Report record.
//
// The identifying fields and Job are required; everything else is optional
// and absent values simply leave their section out of the document.
type Report struct {
	// === Identifying fields (required) ===

	ClientCompany  string `yaml:"client_company" json:"client_company"`
	JobNumber      string `yaml:"job_number" json:"job_number"`
	TechnicianName string `yaml:"technician_name" json:"technician_name"`
	SiteVisitDate  string `yaml:"site_visit_date" json:"site_visit_date"`
	SiteAddress    string `yaml:"site_address" json:"site_address"`

	// Job is required and carries the multi-day flag and work days.
	Job *Job `yaml:"job" json:"job"`

	// === Header extras ===

	RevisionNumber int    `yaml:"revision_number" json:"revision_number"`
	BC1Provider    string `yaml:"bc1_provider" json:"bc1_provider,omitempty"`
	BC1Number      string `yaml:"bc1_number" json:"bc1_number,omitempty"`

	// Weather is used by single-day reports only.
	Weather Optional[string] `yaml:"weather,omitempty" json:"weather"`

	// === Client fields ===

	ClientPONumber  Optional[string] `yaml:"client_po_number,omitempty" json:"client_po_number"`
	ClientJobNumber Optional[string] `yaml:"client_job_number,omitempty" json:"client_job_number"`
	ClientRepName   Optional[string] `yaml:"client_rep_name,omitempty" json:"client_rep_name"`
	ClientSignature Optional[string] `yaml:"client_signature,omitempty" json:"client_signature"`

	// === Findings ===

	TravelNotes     string                 `yaml:"travel_notes" json:"travel_notes,omitempty"`
	SiteConditions  string                 `yaml:"site_conditions" json:"site_conditions,omitempty"`
	Utilities       UtilityMatrix          `yaml:"utilities" json:"utilities,omitempty"`
	Hydrovac        HydrovacRecommendation `yaml:"hydrovac" json:"hydrovac"`
	Recommendations string                 `yaml:"recommendations" json:"recommendations,omitempty"`

	// MissingDocs maps MissingDocCategories keys to "missing on site".
	MissingDocs map[string]bool `yaml:"missing_docs" json:"missing_docs,omitempty"`

	// === Billing ===

	Supplemental map[string]string `yaml:"supplemental" json:"supplemental,omitempty"`
	Materials    map[string]string `yaml:"materials" json:"materials,omitempty"`
	PropertyType string            `yaml:"property_type" json:"property_type,omitempty"`

	// === Media ===

	PhotoPages    []PhotoPage `yaml:"photo_pages" json:"photo_pages,omitempty"`
	NumPhotoPages int         `yaml:"num_photo_pages" json:"num_photo_pages"`
	Drawings      []Drawing   `yaml:"drawings" json:"drawings,omitempty"`
	NumDrawings   int         `yaml:"num_drawings" json:"num_drawings"`
}

// NewReport returns a Report with the same defaults the intake interview
// uses: an empty single-day job and one photo page and one drawing expected.
func NewReport() *Report {
	return &Report{
		Job:           &Job{},
		NumPhotoPages: 1,
		NumDrawings:   1,
	}
}

// CheckRequired returns a *MissingRequiredFieldError naming the first
// mandatory field that is absent, or nil.
func (r *Report) CheckRequired() error {
	if r == nil {
		return &MissingRequiredFieldError{Field: "report"}
	}
	required := []struct {
		field string
		value string
	}{
		{"client_company", r.ClientCompany},
		{"job_number", r.JobNumber},
		{"technician_name", r.TechnicianName},
		{"site_visit_date", r.SiteVisitDate},
		{"site_address", r.SiteAddress},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingRequiredFieldError{Field: f.field}
		}
	}
	if r.Job == nil {
		return &MissingRequiredFieldError{Field: "job"}
	}
	return nil
}

// IsDocMissing reports whether the documentation category is flagged as
// missing on site. Unknown and unset keys report false.
func (r *Report) IsDocMissing(key string) bool {
	return r.MissingDocs[key]
}

// FormatBC1Display formats the BC 1 Call number with its provider.
func (r *Report) FormatBC1Display() string {
	var suffix string
	switch r.BC1Provider {
	case BC1ProviderNone:
		return "No BC 1 Call completed"
	case BC1ProviderClient:
		suffix = " (Provided by Client)"
	case BC1ProviderQuadra:
		suffix = " (Provided by Quadra)"
	}

	switch {
	case r.BC1Number == "" && suffix == "":
		return ""
	case r.BC1Number == "":
		return strings.Trim(suffix, " ()")
	default:
		return r.BC1Number + suffix
	}
}

// FormatMissingDocsSentence returns the warning sentence for documentation
// missing on site, or "" when nothing is missing.
func (r *Report) FormatMissingDocsSentence() string {
	missing := make([]string, 0, len(MissingDocCategories))
	for _, c := range MissingDocCategories {
		if r.IsDocMissing(c.Key) {
			missing = append(missing, c.Label)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return format.OxfordJoin(missing) + " documentation missing on site. It is the responsibility " +
		"of the Ground Disturber, prior to ground disturbance, to obtain and " +
		"review said documentation."
}

// FormatRecommendations formats the RECOMMENDATIONS block with the missing
// documentation sentence appended.
func (r *Report) FormatRecommendations() string {
	reco := r.Recommendations
	if sentence := r.FormatMissingDocsSentence(); sentence != "" {
		if reco != "" {
			reco += "\n\n" + sentence
		} else {
			reco = sentence
		}
	}
	if reco == "" {
		return ""
	}
	return "RECOMMENDATIONS:\n" + reco
}

// FormatSupplemental formats supplemental charges as "Parking = 2; LOA = 1".
func (r *Report) FormatSupplemental() string {
	items := make([]string, 0, len(supplementalItems))
	for _, item := range supplementalItems {
		if v := r.Supplemental[item.key]; v != "" {
			items = append(items, item.label+" = "+v)
		}
	}
	return strings.Join(items, "; ")
}

// FormatMaterials formats materials as "Pin flags x20; Lathe 24\" x4".
func (r *Report) FormatMaterials() string {
	items := make([]string, 0, len(materialItems))
	for _, item := range materialItems {
		if v := r.Materials[item.key]; v != "" {
			items = append(items, item.label+" x"+v)
		}
	}
	return strings.Join(items, "; ")
}

// FormatPropertyType returns the property type description.
func (r *Report) FormatPropertyType() string {
	switch r.PropertyType {
	case PropertyPrivate:
		return "Private property"
	case PropertyPublic:
		return "Public property"
	case PropertyBoth:
		return "Public and private property"
	default:
		return ""
	}
}

// FormatBillingDetails formats the billing block: time on site, type/time,
// supplemental charges, materials and property type, one aligned line each.
// An error is returned when a work day date cannot be formatted.
func (r *Report) FormatBillingDetails(dates format.DateFormatter) (string, error) {
	lines := make([]string, 0)

	if r.Job != nil {
		timeOnSite, err := r.Job.FormatTimeOnSite(dates)
		if err != nil {
			return "", err
		}
		if timeOnSite != "" {
			// Multi-day time ranges continue under the header column.
			parts := strings.Split(timeOnSite, "\n")
			lines = append(lines, format.MakeLine("TIME ON SITE", parts[0]))
			for _, extra := range parts[1:] {
				lines = append(lines, format.MakeContinuationLine(extra))
			}
		}

		typeTime, err := r.Job.FormatTypeTime(dates)
		if err != nil {
			return "", err
		}
		if typeTime != "" {
			parts := strings.Split(typeTime, "\n")
			lines = append(lines, format.MakeLine("TYPE/TIME", parts[0]))
			for _, extra := range parts[1:] {
				lines = append(lines, format.MakeContinuationLine(extra))
			}
		}
	}

	if supp := r.FormatSupplemental(); supp != "" {
		lines = append(lines, format.MakeLine("SUPPLEMENTAL", supp))
	}
	if mat := r.FormatMaterials(); mat != "" {
		lines = append(lines, format.MakeLine("MATERIALS", mat))
	}
	if prop := r.FormatPropertyType(); prop != "" {
		lines = append(lines, format.MakeLine("PROPERTY TYPE", prop))
	}

	return strings.Join(lines, "\n"), nil
}

// FormatCombinedReport formats the work summary: travel notes, site
// conditions, each active utility, hydrovac and recommendations, separated
// by blank lines.
func (r *Report) FormatCombinedReport() string {
	sections := make([]string, 0)

	if r.TravelNotes != "" {
		sections = append(sections, "TRAVEL NOTES:\n"+r.TravelNotes)
	}
	if r.SiteConditions != "" {
		sections = append(sections,
			"SITE CONDITIONS (Obstructions, inaccessible areas, changes to scope etc.):\n"+r.SiteConditions)
	}
	for _, u := range r.Utilities.ActiveUtilities() {
		if s := u.FormatSection(); s != "" {
			sections = append(sections, s)
		}
	}
	if s := r.Hydrovac.FormatSection(); s != "" {
		sections = append(sections, s)
	}
	if s := r.FormatRecommendations(); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, "\n\n")
}
