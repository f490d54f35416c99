package report

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// defaultStylesheet lays the document out for letter-size printing.
const defaultStylesheet = `body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; margin: 0.5in; }
h1 { font-size: 16pt; text-align: center; }
h2 { font-size: 12pt; border-bottom: 1px solid #000; margin-top: 18pt; }
pre { font-family: "Courier New", monospace; font-size: 9pt; }
figure { margin: 6pt 0; page-break-inside: avoid; }
figure img { max-width: 100%; }
table { border-collapse: collapse; margin: 6pt 0; }
th, td { border: 1px solid #000; padding: 2pt 6pt; text-align: left; }
.notice { font-size: 8pt; font-style: italic; }
.warning { color: #a00; }
section.photos, section.drawings { page-break-before: always; }`

// HTMLWriter outputs a print-ready HTML page. Each section becomes a
// <section> element whose data-section attribute carries the section kind.
// The page is built as a golang.org/x/net/html node tree; html.Render
// escapes all report text.
type HTMLWriter struct {
	baseWriter

	stylesheet   string
	showWarnings bool
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithStylesheet replaces the embedded print stylesheet.
func WithStylesheet(css string) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.stylesheet = css
	}
}

// WithHTMLWarnings appends a warnings list to the page.
func WithHTMLWarnings(show bool) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.showWarnings = show
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		stylesheet: defaultStylesheet,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document as an HTML page.
func (w *HTMLWriter) Write(doc *Document) (int, error) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element("html", "lang", "en")
	root.AppendChild(page)

	head := element("head")
	head.AppendChild(element("meta", "charset", "utf-8"))
	head.AppendChild(withText(element("title"), titleReport+" "+doc.JobNumber))
	if w.stylesheet != "" {
		head.AppendChild(withText(element("style"), w.stylesheet))
	}
	page.AppendChild(head)

	body := element("body")
	for _, section := range doc.Sections {
		body.AppendChild(w.section(section))
	}
	if w.showWarnings && doc.HasWarnings() {
		list := element("ul", "class", "warning")
		for _, warning := range doc.Warnings {
			list.AppendChild(withText(element("li"), warning.String()))
		}
		body.AppendChild(list)
	}
	page.AppendChild(body)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return 0, err
	}
	buf.WriteByte('\n')

	return w.output.Write(buf.Bytes())
}

func (w *HTMLWriter) section(section Section) *html.Node {
	node := element("section", "class", strings.ReplaceAll(string(section.Kind), "_", "-"),
		"data-section", string(section.Kind))
	if section.Kind == SectionHeader {
		node.AppendChild(withText(element("h1"), section.Title))
	} else {
		node.AppendChild(withText(element("h2"), section.Title))
	}

	for _, b := range section.Blocks {
		node.AppendChild(w.block(b))
	}
	return node
}

func (w *HTMLWriter) block(b Block) *html.Node {
	switch b.Kind {
	case BlockHeading:
		return withText(element("h3"), b.Text)
	case BlockField:
		p := element("p", "class", "field")
		p.AppendChild(withText(element("strong"), b.Label+":"))
		p.AppendChild(textNode(" "))
		appendLines(p, b.Text)
		return p
	case BlockText:
		p := element("p")
		appendLines(p, b.Text)
		return p
	case BlockPreformatted:
		return withText(element("pre"), b.Text)
	case BlockCheckbox:
		div := element("div", "class", "checkbox")
		box := element("input", "type", "checkbox", "disabled", "")
		if b.Checked {
			box.Attr = append(box.Attr, html.Attribute{Key: "checked", Val: ""})
		}
		div.AppendChild(box)
		div.AppendChild(textNode(" " + b.Label))
		return div
	case BlockImage:
		fig := element("figure")
		fig.AppendChild(element("img", "src", b.Ref, "alt", b.Label))
		if b.Text != "" {
			fig.AppendChild(withText(element("figcaption"), b.Text))
		}
		return fig
	case BlockTable:
		return table(b.Header, b.Rows)
	case BlockNotice:
		p := element("p", "class", "notice")
		appendLines(p, b.Text)
		return p
	default:
		return element("hr")
	}
}

// table builds a <table> with a header row.
func table(header []string, rows [][]string) *html.Node {
	t := element("table")

	thead := element("thead")
	tr := element("tr")
	for _, h := range header {
		tr.AppendChild(withText(element("th"), h))
	}
	thead.AppendChild(tr)
	t.AppendChild(thead)

	tbody := element("tbody")
	for _, row := range rows {
		tr := element("tr")
		for _, cell := range row {
			tr.AppendChild(withText(element("td"), cell))
		}
		tbody.AppendChild(tr)
	}
	t.AppendChild(tbody)

	return t
}

// element creates an element node. attrs are key/value pairs.
func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(textNode(s))
	return n
}

// appendLines appends s to n with a <br> for every line break.
func appendLines(n *html.Node, s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			n.AppendChild(element("br"))
		}
		n.AppendChild(textNode(line))
	}
}
