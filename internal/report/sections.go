package report

import (
	"strconv"
	"strings"

	"github.com/nao1215/locatereport/internal/format"
	"github.com/nao1215/locatereport/internal/model"
)

// Section titles.
const (
	titleReport      = "SITE LOCATE REPORT"
	titleWeather     = "WEATHER"
	titleBilling     = "BILLING DETAILS"
	titleWorkSummary = "WORK SUMMARY"
	titleClient      = "CLIENT"
	titleMissingDocs = "MISSING DOCUMENTATION"
	titlePhotos      = "PHOTOS"
	titleDrawings    = "DRAWINGS"
	titleLegend      = "DRAWING LEGEND"
	titleDisclaimer  = "DISCLAIMER AND SAFETY"
)

// isoDate is the layout used to hand the issue date to the date formatter.
const isoDate = "2006-01-02"

func (c *renderContext) header() *Section {
	r := c.report
	s := &Section{Kind: SectionHeader, Title: titleReport}

	s.add(
		Heading(c.companyName),
		Field("Client", r.ClientCompany),
		Field("Job Number", r.JobNumber),
		Field("Technician", r.TechnicianName),
		Field("Site Visit Date", c.formatDate("site_visit_date", r.SiteVisitDate, format.DateLong)),
		Field("Site Address", r.SiteAddress),
	)
	if bc1 := r.FormatBC1Display(); bc1 != "" {
		s.add(Field("BC 1 Call #", bc1))
	}
	if r.RevisionNumber > 0 {
		s.add(Field("Revision", strconv.Itoa(r.RevisionNumber)))
	}

	issued := c.formatDate("issued_on", c.doc.IssuedOn.Format(isoDate), format.DateLong)
	s.add(Field("Form", c.formVersion), Field("Issued", issued))
	return s
}

func (c *renderContext) weather() *Section {
	r := c.report

	if !r.Job.IsMultiDay {
		// Defined is the only gate: an explicitly empty value still prints.
		if !r.Weather.Defined() {
			return nil
		}
		return &Section{
			Kind:   SectionWeather,
			Title:  titleWeather,
			Blocks: []Block{Field("Weather", r.Weather.Value())},
		}
	}

	entries := make([]string, 0, len(r.Job.WorkDays))
	for _, day := range r.Job.WorkDays {
		if day.Weather == "" {
			continue
		}
		date := c.formatDate("work_day.date", day.Date, format.DateShort)
		entries = append(entries, date+": "+day.Weather)
	}
	if len(entries) == 0 {
		return nil
	}
	return &Section{
		Kind:   SectionWeather,
		Title:  titleWeather,
		Blocks: []Block{Field("Weather", strings.Join(entries, "; "))},
	}
}

func (c *renderContext) billingDetails() *Section {
	s := &Section{Kind: SectionBilling, Title: titleBilling}

	text, err := c.billing.FormatBillingDetails(c.report)
	if err != nil {
		c.warn("billing details: %v", err)
		return s
	}
	if text != "" {
		s.add(Preformatted(text))
	}
	return s
}

func (c *renderContext) workSummary() *Section {
	s := &Section{Kind: SectionWorkSummary, Title: titleWorkSummary}

	text, err := c.summary.FormatCombinedReport(c.report)
	if err != nil {
		c.warn("work summary: %v", err)
		return s
	}
	for _, paragraph := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(paragraph) != "" {
			s.add(Text(paragraph))
		}
	}
	return s
}

func (c *renderContext) clientFields() *Section {
	r := c.report
	s := &Section{Kind: SectionClient, Title: titleClient}

	fields := []struct {
		label string
		value model.Optional[string]
	}{
		{"Client PO #", r.ClientPONumber},
		{"Client Job #", r.ClientJobNumber},
		{"Client Representative", r.ClientRepName},
	}
	for _, f := range fields {
		if f.value.Defined() && f.value.Truthy() {
			s.add(Field(f.label, f.value.Value()))
		}
	}
	if r.ClientSignature.Truthy() {
		s.add(Image("Client Signature", r.ClientSignature.Value(), ""))
	}

	if len(s.Blocks) == 0 {
		return nil
	}
	return s
}

func (c *renderContext) missingDocs() *Section {
	s := &Section{Kind: SectionMissingDocs, Title: titleMissingDocs}
	for _, category := range model.MissingDocCategories {
		s.add(Checkbox(category.Label, c.report.IsDocMissing(category.Key)))
	}
	return s
}

func (c *renderContext) photos() *Section {
	r := c.report
	s := &Section{Kind: SectionPhotos, Title: titlePhotos}

	if len(r.PhotoPages) == 0 || r.NumPhotoPages <= 0 {
		return s
	}

	for _, page := range r.PhotoPages {
		if !page.HasContent() {
			continue
		}
		s.add(Heading("Photo Page " + strconv.Itoa(page.PageNumber)))
		for i, photo := range page.Photos {
			label := "Photo " + strconv.Itoa(page.PageNumber) + "." + strconv.Itoa(i+1)
			s.add(Image(label, photo.File, photoCaption(photo)))
		}
		if page.Comments != "" {
			s.add(Field("Comments", page.Comments))
		}
		s.add(Separator())
	}
	return s
}

// photoCaption joins the caption and capture time, either of which may be empty.
func photoCaption(p model.Photo) string {
	switch {
	case p.Caption != "" && p.TakenAt != "":
		return p.Caption + " (taken " + p.TakenAt + ")"
	case p.TakenAt != "":
		return "Taken " + p.TakenAt
	default:
		return p.Caption
	}
}

func (c *renderContext) drawings() *Section {
	s := &Section{Kind: SectionDrawings, Title: titleDrawings}

	for _, d := range c.report.Drawings {
		if !d.HasFile() {
			continue
		}
		title := d.DisplayTitle()
		s.add(Heading(title), Image(title, d.File, ""))
		if d.IsLargeFormat() {
			s.add(Text(largeFormatMarker))
		}
		s.add(Notice(drawingNotice), Separator())
	}
	return s
}

func (c *renderContext) legend() *Section {
	return &Section{
		Kind:  SectionLegend,
		Title: titleLegend,
		Blocks: []Block{
			Table(legendHeader, legendRows),
			Heading("Colour Code"),
			Table(colourCodeHeader, colourCodeRows),
		},
	}
}

func (c *renderContext) disclaimer() *Section {
	s := &Section{Kind: SectionDisclaimer, Title: titleDisclaimer}
	for _, p := range disclaimerParagraphs {
		s.add(Text(p))
	}
	return s
}
