package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/locatereport/internal/format"
	"github.com/nao1215/locatereport/internal/model"
)

// Defaults used by NewRenderer.
const (
	// DefaultFormVersion is printed in the header stamp.
	DefaultFormVersion = "QUL-SLR v1.0"

	// DefaultCompanyName is printed above the report title.
	DefaultCompanyName = "Quadra Utility Locating Ltd."
)

// BillingFormatter produces the billing details text for a report.
// The renderer places the text in the document without interpreting it.
type BillingFormatter interface {
	FormatBillingDetails(r *model.Report) (string, error)
}

// BillingFormatterFunc adapts a function to BillingFormatter.
type BillingFormatterFunc func(r *model.Report) (string, error)

// FormatBillingDetails calls f(r).
func (f BillingFormatterFunc) FormatBillingDetails(r *model.Report) (string, error) {
	return f(r)
}

// SummaryFormatter produces the work summary ("combined report") text.
type SummaryFormatter interface {
	FormatCombinedReport(r *model.Report) (string, error)
}

// SummaryFormatterFunc adapts a function to SummaryFormatter.
type SummaryFormatterFunc func(r *model.Report) (string, error)

// FormatCombinedReport calls f(r).
func (f SummaryFormatterFunc) FormatCombinedReport(r *model.Report) (string, error) {
	return f(r)
}

// ReportBillingFormatter delegates to the report's own FormatBillingDetails.
func ReportBillingFormatter(dates format.DateFormatter) BillingFormatter {
	return BillingFormatterFunc(func(r *model.Report) (string, error) {
		return r.FormatBillingDetails(dates)
	})
}

// ReportSummaryFormatter delegates to the report's own FormatCombinedReport.
func ReportSummaryFormatter() SummaryFormatter {
	return SummaryFormatterFunc(func(r *model.Report) (string, error) {
		return r.FormatCombinedReport(), nil
	})
}

// Renderer turns reports into documents.
type Renderer struct {
	dates       format.DateFormatter
	billing     BillingFormatter
	summary     SummaryFormatter
	clock       func() time.Time
	formVersion string
	companyName string
	logger      *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDateFormatter sets the date formatter used for every date in the document.
func WithDateFormatter(f format.DateFormatter) Option {
	return func(r *Renderer) {
		r.dates = f
	}
}

// WithBillingFormatter replaces the billing details formatter.
func WithBillingFormatter(f BillingFormatter) Option {
	return func(r *Renderer) {
		r.billing = f
	}
}

// WithSummaryFormatter replaces the work summary formatter.
func WithSummaryFormatter(f SummaryFormatter) Option {
	return func(r *Renderer) {
		r.summary = f
	}
}

// WithClock sets the clock used for the issue date stamp.
func WithClock(clock func() time.Time) Option {
	return func(r *Renderer) {
		r.clock = clock
	}
}

// WithFormVersion sets the form version printed in the header stamp.
func WithFormVersion(version string) Option {
	return func(r *Renderer) {
		if version != "" {
			r.formVersion = version
		}
	}
}

// WithCompanyName sets the company name printed above the title.
func WithCompanyName(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.companyName = name
		}
	}
}

// WithLogger sets the logger used to report section warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a Renderer. Formatters that are not supplied default
// to the report's own formatting methods.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		clock:       time.Now,
		formVersion: DefaultFormVersion,
		companyName: DefaultCompanyName,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.dates == nil {
		r.dates = format.NewDateFormatter()
	}
	if r.billing == nil {
		r.billing = ReportBillingFormatter(r.dates)
	}
	if r.summary == nil {
		r.summary = ReportSummaryFormatter()
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// sectionRule builds one section. It returns nil when the section is omitted.
type sectionRule struct {
	kind  SectionKind
	build func(c *renderContext) *Section
}

// sectionRules is the fixed document order.
var sectionRules = []sectionRule{
	{SectionHeader, (*renderContext).header},
	{SectionWeather, (*renderContext).weather},
	{SectionBilling, (*renderContext).billingDetails},
	{SectionWorkSummary, (*renderContext).workSummary},
	{SectionClient, (*renderContext).clientFields},
	{SectionMissingDocs, (*renderContext).missingDocs},
	{SectionPhotos, (*renderContext).photos},
	{SectionDrawings, (*renderContext).drawings},
	{SectionLegend, (*renderContext).legend},
	{SectionDisclaimer, (*renderContext).disclaimer},
}

// renderContext carries the state of a single Render call.
type renderContext struct {
	*Renderer
	report  *model.Report
	doc     *Document
	current SectionKind
}

// warn records a warning against the section being built.
func (c *renderContext) warn(format string, args ...any) {
	w := SectionRenderWarning{Section: c.current, Message: fmt.Sprintf(format, args...)}
	c.doc.Warnings = append(c.doc.Warnings, w)
	c.logger.Warn("section render warning",
		"job_number", c.report.JobNumber,
		"section", string(w.Section),
		"message", w.Message,
	)
}

// Render builds the document for report.
//
// A nil report or a missing identifying field fails with a
// *model.MissingRequiredFieldError and no document. Every other problem is
// recorded as a SectionRenderWarning and rendering continues.
func (r *Renderer) Render(report *model.Report) (*Document, error) {
	if err := report.CheckRequired(); err != nil {
		return nil, err
	}

	now := r.clock()
	doc := &Document{
		FormVersion:    r.formVersion,
		IssuedOn:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		JobNumber:      report.JobNumber,
		RevisionNumber: report.RevisionNumber,
		Sections:       make([]Section, 0, len(sectionRules)),
	}

	c := &renderContext{Renderer: r, report: report, doc: doc}
	for _, rule := range sectionRules {
		c.current = rule.kind
		if section := c.runRule(rule); section != nil {
			doc.Sections = append(doc.Sections, *section)
		}
	}

	r.logger.Debug("rendered report",
		"job_number", report.JobNumber,
		"sections", len(doc.Sections),
		"warnings", len(doc.Warnings),
	)

	return doc, nil
}

// runRule builds one section. A panic in an injected formatter is turned
// into a warning and the section is omitted.
func (c *renderContext) runRule(rule sectionRule) (section *Section) {
	defer func() {
		if p := recover(); p != nil {
			c.warn("section omitted: %v", p)
			section = nil
		}
	}()
	return rule.build(c)
}

// formatDate formats a date, falling back to the raw value with a warning.
func (c *renderContext) formatDate(field, date string, style format.DateStyle) string {
	s, err := c.dates.Format(date, style)
	if err != nil {
		c.warn("%s: %v", field, err)
		return date
	}
	return s
}
