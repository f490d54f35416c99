// Package main provides the entry point for the locatereport CLI.
//
// locatereport renders Site Locate Reports from YAML or JSON report records
// into text, Markdown, HTML or JSON documents, keeps a register of issued
// documents, and exports technician hours for payroll.
//
// Usage:
//
//	locatereport render q-1042.yaml
//	locatereport render --output out --format html jobs/
//	locatereport history Q-1042
//
// See --help for all available options.
package main

// main is the entry point for locatereport.
func main() {
	Execute()
}
