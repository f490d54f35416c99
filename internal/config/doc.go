// Package config provides configuration structures and utilities for
// locatereport. It defines the options for rendering reports, choosing
// output formats and recording issued reports, plus the per-client profiles
// read from the .locatereport file.
package config
