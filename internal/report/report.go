package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"stackdrift/internal/analyzer"
	"stackdrift/internal/models"
)

// OutputFormatType defines the format types for the drift report.
type OutputFormatType string

const (
	// OutputFormatTypeTABLE represents human-friendly table output
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
	// OutputFormatTypeJSON represents JSON output
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeMARKDOWN represents Markdown output, suitable for PR comments
	OutputFormatTypeMARKDOWN OutputFormatType = "MARKDOWN"
)

// noDriftMessage is emitted when there is nothing to report.
const noDriftMessage = "No drift detected."

// ParseOutputFormat converts a user-supplied format name to an OutputFormatType.
func ParseOutputFormat(format string) (OutputFormatType, error) {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "TABLE", "":
		return OutputFormatTypeTABLE, nil
	case "JSON":
		return OutputFormatTypeJSON, nil
	case "MARKDOWN":
		return OutputFormatTypeMARKDOWN, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// DefaultPrinter writes formatted reports to a writer (stdout by default).
type DefaultPrinter struct {
	out io.Writer
}

// NewDefaultPrinter creates a printer writing to stdout
func NewDefaultPrinter() *DefaultPrinter {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a printer writing to the given writer
func NewPrinterWithWriter(w io.Writer) *DefaultPrinter {
	return &DefaultPrinter{out: w}
}

// PrintReport renders the analyzed results in the requested format.
func (p *DefaultPrinter) PrintReport(analyzed []analyzer.AnalyzedDrift, format OutputFormatType) error {
	output, err := Format(analyzed, format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(p.out, output)
	return err
}

// Format renders the analyzed results as a string in the requested format.
func Format(analyzed []analyzer.AnalyzedDrift, format OutputFormatType) (string, error) {
	switch format {
	case OutputFormatTypeTABLE:
		return FormatTable(analyzed), nil
	case OutputFormatTypeJSON:
		return FormatJSON(analyzed)
	case OutputFormatTypeMARKDOWN:
		return FormatMarkdown(analyzed), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// jsonReport mirrors the report schema consumed by downstream tooling.
type jsonReport struct {
	Summary jsonSummary `json:"summary"`
	Stacks  []jsonStack `json:"stacks"`
}

type jsonSummary struct {
	TotalStacks   int `json:"total_stacks"`
	DriftedStacks int `json:"drifted_stacks"`
}

type jsonStack struct {
	StackName            string         `json:"stack_name"`
	StackID              string         `json:"stack_id"`
	Status               string         `json:"status"`
	Severity             *string        `json:"severity"`
	DriftedResourceCount int            `json:"drifted_resource_count"`
	Resources            []jsonResource `json:"resources"`
}

type jsonResource struct {
	LogicalID     string             `json:"logical_id"`
	PhysicalID    string             `json:"physical_id"`
	ResourceType  string             `json:"resource_type"`
	Status        string             `json:"status"`
	Severity      string             `json:"severity"`
	PropertyDiffs []jsonPropertyDiff `json:"property_diffs"`
}

type jsonPropertyDiff struct {
	PropertyPath  string `json:"property_path"`
	ExpectedValue string `json:"expected_value"`
	ActualValue   string `json:"actual_value"`
}

// FormatJSON renders the results as indented JSON.
func FormatJSON(analyzed []analyzer.AnalyzedDrift) (string, error) {
	driftedCount := 0
	stacks := make([]jsonStack, 0, len(analyzed))

	for _, a := range analyzed {
		if a.Result.HasDrift() {
			driftedCount++
		}

		resources := make([]jsonResource, 0, len(a.Result.ResourceDrifts))
		for _, rd := range a.Result.ResourceDrifts {
			if rd.Status == models.ResourceStatusInSync {
				continue
			}

			diffs := make([]jsonPropertyDiff, 0, len(rd.PropertyDiffs))
			for _, pd := range rd.PropertyDiffs {
				diffs = append(diffs, jsonPropertyDiff{
					PropertyPath:  pd.PropertyPath,
					ExpectedValue: pd.ExpectedValue,
					ActualValue:   pd.ActualValue,
				})
			}

			resources = append(resources, jsonResource{
				LogicalID:     rd.LogicalID,
				PhysicalID:    rd.PhysicalID,
				ResourceType:  rd.ResourceType,
				Status:        string(rd.Status),
				Severity:      resourceSeverity(a, rd.LogicalID).String(),
				PropertyDiffs: diffs,
			})
		}

		var severity *string
		if a.StackSeverity != analyzer.SeverityNone {
			name := a.StackSeverity.String()
			severity = &name
		}

		stacks = append(stacks, jsonStack{
			StackName:            a.Result.StackName,
			StackID:              a.Result.StackID,
			Status:               string(a.Result.StackStatus),
			Severity:             severity,
			DriftedResourceCount: a.Result.DriftedResourceCount,
			Resources:            resources,
		})
	}

	data, err := json.MarshalIndent(jsonReport{
		Summary: jsonSummary{
			TotalStacks:   len(analyzed),
			DriftedStacks: driftedCount,
		},
		Stacks: stacks,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling report to JSON: %w", err)
	}

	return string(data), nil
}

// FormatTable renders the results as aligned text tables.
func FormatTable(analyzed []analyzer.AnalyzedDrift) string {
	if len(analyzed) == 0 {
		return noDriftMessage
	}

	var buf strings.Builder
	writer := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(writer, "STACK\tSTATUS\tSEVERITY\tDRIFTED RESOURCES")
	fmt.Fprintln(writer, "-----\t------\t--------\t-----------------")
	for _, a := range analyzed {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n",
			a.Result.StackName,
			a.Result.StackStatus,
			stackSeverityLabel(a),
			a.Result.DriftedResourceCount,
		)
	}
	writer.Flush()

	// Per-stack detail sections for stacks with drifted resources.
	for _, a := range analyzed {
		rows := driftedResources(a.Result)
		if len(rows) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "\nSTACK: %s\n", a.Result.StackName)
		detail := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(detail, "RESOURCE\tTYPE\tSTATUS\tSEVERITY\tPROPERTY\tEXPECTED\tACTUAL")
		for _, rd := range rows {
			severity := resourceSeverity(a, rd.LogicalID).String()
			if len(rd.PropertyDiffs) == 0 {
				fmt.Fprintf(detail, "%s\t%s\t%s\t%s\t-\t-\t-\n",
					rd.LogicalID, rd.ResourceType, rd.Status, severity)
				continue
			}
			for _, pd := range rd.PropertyDiffs {
				fmt.Fprintf(detail, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					rd.LogicalID, rd.ResourceType, rd.Status, severity,
					pd.PropertyPath, pd.ExpectedValue, pd.ActualValue)
			}
		}
		detail.Flush()
	}

	return strings.TrimRight(buf.String(), "\n")
}

// FormatMarkdown renders the drifted stacks as Markdown, suitable for posting
// to Slack or a GitHub pull request.
func FormatMarkdown(analyzed []analyzer.AnalyzedDrift) string {
	if len(analyzed) == 0 {
		return noDriftMessage
	}

	drifted := make([]analyzer.AnalyzedDrift, 0, len(analyzed))
	for _, a := range analyzed {
		if a.Result.HasDrift() {
			drifted = append(drifted, a)
		}
	}
	if len(drifted) == 0 {
		return noDriftMessage
	}

	lines := []string{
		fmt.Sprintf("## Drift Report — %d/%d stacks drifted", len(drifted), len(analyzed)),
		"",
	}

	for _, a := range drifted {
		severityLabel := ""
		if a.StackSeverity != analyzer.SeverityNone {
			severityLabel = fmt.Sprintf(" [%s]", a.StackSeverity)
		}
		lines = append(lines,
			fmt.Sprintf("### %s — DRIFTED%s", a.Result.StackName, severityLabel),
			"",
			"| Resource | Type | Status | Severity | Property | Expected | Actual |",
			"|----------|------|--------|----------|----------|----------|--------|",
		)

		for _, rd := range driftedResources(a.Result) {
			severity := resourceSeverity(a, rd.LogicalID).String()
			if len(rd.PropertyDiffs) == 0 {
				lines = append(lines, fmt.Sprintf(
					"| %s | %s | %s | %s | — | — | — |",
					rd.LogicalID, rd.ResourceType, rd.Status, severity))
				continue
			}
			for _, pd := range rd.PropertyDiffs {
				lines = append(lines, fmt.Sprintf(
					"| %s | %s | %s | %s | `%s` | `%s` | `%s` |",
					rd.LogicalID, rd.ResourceType, rd.Status, severity,
					pd.PropertyPath, pd.ExpectedValue, pd.ActualValue))
			}
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// driftedResources returns the resources worth reporting (everything not in sync).
func driftedResources(result models.StackDriftResult) []models.ResourceDrift {
	out := make([]models.ResourceDrift, 0, len(result.ResourceDrifts))
	for _, rd := range result.ResourceDrifts {
		if rd.Status != models.ResourceStatusInSync {
			out = append(out, rd)
		}
	}
	return out
}

func resourceSeverity(a analyzer.AnalyzedDrift, logicalID string) analyzer.Severity {
	if severity, ok := a.ResourceSeverities[logicalID]; ok {
		return severity
	}
	return analyzer.SeverityLow
}

func stackSeverityLabel(a analyzer.AnalyzedDrift) string {
	if a.StackSeverity == analyzer.SeverityNone {
		return "-"
	}
	return a.StackSeverity.String()
}
