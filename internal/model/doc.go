// Package model defines the Site Locate Report data structures.
//
// This package contains the following main types:
//   - Report: the complete report record handed to the renderer
//   - Job, WorkDay, Technician: time on site and hours per technician
//   - UtilityMatrix: locate methods and summaries per utility type
//   - HydrovacRecommendation: hydrovac exposure recommendation
//   - PhotoPage, Drawing: attached media, rendered in caller order
//   - Optional: a present/absent wrapper for fields whose presence matters
//
// A Report is built once by the job-management backend (or decoded from a
// YAML/JSON file) and is never mutated by the renderer.
//
// The report formats its own billing details and work summary
// (FormatBillingDetails, FormatCombinedReport). The renderer places that
// text in the document without interpreting it.
package model
