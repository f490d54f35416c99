// Package export writes technician hours from report records to an Excel
// workbook for payroll and invoicing.
package export
