package report

// Static text printed on every report. None of it depends on report data.

// drawingNotice follows every rendered drawing.
const drawingNotice = "This drawing is valid for 30 days from the site visit date and only " +
	"for the work area shown. It is not to scale and is not a legal survey. " +
	"Locate marks are the primary reference; where the drawing and the marks " +
	"disagree, the marks govern. Quadra Utility Locating Ltd. accepts no " +
	"liability for ground disturbance outside the work area shown or after " +
	"the validity period has expired."

// largeFormatMarker is printed under drawings flagged for 11x17 printing.
const largeFormatMarker = "LARGE FORMAT: print this drawing on 11x17 (tabloid) paper."

// legendHeader and legendRows describe the line work used on drawings.
var (
	legendHeader = []string{"Symbol", "Meaning"}
	legendRows   = [][]string{
		{"Solid line", "Utility located with EM"},
		{"Dashed line", "Utility located with GPR (approximate)"},
		{"Dotted line", "Utility located visually or from records"},
		{"X", "End of locate / utility not traced further"},
		{"Hatched area", "Area not scanned (obstructed or inaccessible)"},
		{"Dash-dot line", "Proposed work area boundary"},
	}
)

// colourCodeHeader and colourCodeRows are the uniform colour code for
// temporary utility marks.
var (
	colourCodeHeader = []string{"Colour", "Utility"}
	colourCodeRows   = [][]string{
		{"Red", "Electric power lines, cables, conduit"},
		{"Yellow", "Gas, oil, steam, petroleum"},
		{"Orange", "Communications, alarm or signal lines, cables, conduit"},
		{"Blue", "Potable water"},
		{"Green", "Sewers and drain lines"},
		{"Purple", "Reclaimed water, irrigation and slurry lines"},
		{"Pink", "Temporary survey markings"},
		{"White", "Proposed excavation"},
	}
)

// disclaimerParagraphs close every report.
var disclaimerParagraphs = []string{
	"LIMITATIONS: Electromagnetic (EM) and ground penetrating radar (GPR) " +
		"locating are non-destructive methods with known limits. Non-conductive " +
		"utilities, utilities without a tracer wire, deep utilities, and utilities " +
		"under reinforced concrete, saturated clay or fill may not be detected. " +
		"Depths, where given, are estimates only.",
	"This report records the conditions observed on the site visit date " +
		"within the work area shown. It does not replace the BC 1 Call locate " +
		"request or owner locates required before ground disturbance, and it " +
		"does not relieve the Ground Disturber of any obligation under applicable " +
		"regulations.",
	"HAND EXPOSURE: All located utilities within 1 metre of the proposed " +
		"excavation must be exposed by hand digging or hydrovac before mechanical " +
		"excavation. Treat every unlocated or unknown utility as live.",
	"SAFETY: Stop work and call the utility owner immediately if an unmarked " +
		"utility is found or any utility is contacted or damaged. In an emergency, " +
		"call 911. Do not attempt to repair a damaged utility.",
	"Locate marks fade and can be disturbed. Do not rely on marks that are " +
		"faded, disturbed or older than 30 days; request a re-locate instead.",
}
