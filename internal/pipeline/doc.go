// Package pipeline turns report files into issued documents.
//
// Each report file goes through a fixed sequence of steps: load the record,
// fill photo capture times, render the document, write it in every format
// the client wants, and optionally record the issue in the register. Each
// stage is a Step that receives the Run for one file and adds to it.
//
// BatchProcessor renders several files concurrently with errgroup while
// keeping results in input order.
package pipeline
