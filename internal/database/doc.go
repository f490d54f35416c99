// Package database provides the SQLite-backed issue register.
//
// Every time a report is rendered with history recording enabled, one row is
// added to the register: job number, revision, issue date, output format and
// path, warning count and the document fingerprint. The history command uses
// the register to show when a job's report was re-issued and whether its
// content changed.
//
// The register is a single SQLite file (modernc.org/sqlite, no CGO) in the
// XDG data directory. The renderer itself never touches it.
package database
