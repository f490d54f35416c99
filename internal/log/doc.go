// Package log provides logging with automatic redaction of client and
// credential data, built on top of the standard slog package.
//
// Locate reports carry client details that must not end up in shared log
// files: signatures, purchase order numbers, representative contact details.
// The SecureHandler masks those attributes before they reach the output
// handler, in every log level including verbose mode.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Info("rendered report",
//	    "job_number", "Q-1042",
//	    "client_po_number", "PO-77", // logged as ***REDACTED***
//	)
//	slog.SetDefault(logger)
package log
