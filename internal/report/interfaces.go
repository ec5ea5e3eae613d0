package report

import "stackdrift/internal/analyzer"

// IPrinter is the interface for generating reports
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintReport(analyzed []analyzer.AnalyzedDrift, format OutputFormatType) error
}
