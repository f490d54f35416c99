// Package format provides the small text formatting helpers shared by the
// report model and the renderer.
//
// This package contains:
//   - DateFormatter: the date formatting collaborator used by the renderer
//   - Line helpers: MakeLine and MakeContinuationLine for the aligned
//     "HEADER:           content" layout used in billing details
//   - Value helpers: OxfordJoin, FormatNumber, FormatTime12Hour
package format
