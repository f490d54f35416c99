package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
// Match them with errors.Is.
var (
	// ErrNoInput is returned when no report file is given to render.
	ErrNoInput = errors.New("no input specified: provide at least one report file")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no report is ever rendered.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidOutputFormat is returned for a format with no writer.
	ErrInvalidOutputFormat = errors.New("invalid output format: must be one of text, markdown, html, json")

	// ErrInvalidPreviewWidth is returned when the preview width is negative.
	// Use 0 for the default width.
	ErrInvalidPreviewWidth = errors.New("invalid preview width: must be non-negative")

	// ErrEmptyCompanyName is returned when the company name is blank.
	// Every report prints the company name above the title.
	ErrEmptyCompanyName = errors.New("invalid company name: must not be empty")

	// ErrPreviewWithOutput is returned when --preview is combined with an
	// output directory. The preview only goes to the terminal.
	ErrPreviewWithOutput = errors.New("conflicting options: --preview cannot be used with --output")
)
