// Package report renders Site Locate Reports and writes them out.
//
// Rendering and writing are separate steps:
//   - Renderer turns a model.Report into a format-agnostic Document by
//     evaluating a fixed sequence of section rules
//   - Writers turn a Document into text, Markdown, HTML or JSON
//
// A Document is an ordered list of sections made of a small set of block
// kinds. Every writer walks the same blocks, so all formats show the same
// sections in the same order.
//
// Rendering is a pure function of the report and the renderer's clock.
// Renderers hold no per-render state and may be shared between goroutines.
package report
