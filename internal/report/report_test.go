package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdrift/internal/analyzer"
	"stackdrift/internal/models"
	"stackdrift/internal/report"
)

var _ report.IPrinter = (*report.DefaultPrinter)(nil)

func sampleAnalyzed() []analyzer.AnalyzedDrift {
	drifted := models.StackDriftResult{
		StackID:     "arn-1",
		StackName:   "prod-api",
		StackStatus: models.StackStatusDrifted,
		ResourceDrifts: []models.ResourceDrift{
			{
				LogicalID:    "Role",
				PhysicalID:   "prod-api-role",
				ResourceType: "AWS::IAM::Role",
				Status:       models.ResourceStatusModified,
				PropertyDiffs: []models.PropertyDiff{
					{
						PropertyPath:  "/AssumeRolePolicyDocument",
						ExpectedValue: "old-policy",
						ActualValue:   "new-policy",
						DiffType:      models.DiffTypeNotEqual,
					},
				},
			},
			{
				LogicalID:    "Logs",
				ResourceType: "AWS::Logs::LogGroup",
				Status:       models.ResourceStatusInSync,
			},
		},
		DetectionID:          "det-1",
		Timestamp:            time.Now().UTC(),
		DriftedResourceCount: 1,
	}
	clean := models.StackDriftResult{
		StackID:     "arn-2",
		StackName:   "prod-web",
		StackStatus: models.StackStatusInSync,
	}

	return analyzer.New().Analyze([]models.StackDriftResult{drifted, clean})
}

func TestFormatJSON(t *testing.T) {
	output, err := report.FormatJSON(sampleAnalyzed())
	require.NoError(t, err)

	var decoded struct {
		Summary struct {
			TotalStacks   int `json:"total_stacks"`
			DriftedStacks int `json:"drifted_stacks"`
		} `json:"summary"`
		Stacks []struct {
			StackName string  `json:"stack_name"`
			Status    string  `json:"status"`
			Severity  *string `json:"severity"`
			Resources []struct {
				LogicalID     string `json:"logical_id"`
				Severity      string `json:"severity"`
				PropertyDiffs []struct {
					PropertyPath string `json:"property_path"`
				} `json:"property_diffs"`
			} `json:"resources"`
		} `json:"stacks"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))

	assert.Equal(t, 2, decoded.Summary.TotalStacks)
	assert.Equal(t, 1, decoded.Summary.DriftedStacks)
	require.Len(t, decoded.Stacks, 2)

	drifted := decoded.Stacks[0]
	assert.Equal(t, "prod-api", drifted.StackName)
	assert.Equal(t, "DRIFTED", drifted.Status)
	require.NotNil(t, drifted.Severity)
	assert.Equal(t, "CRITICAL", *drifted.Severity)
	require.Len(t, drifted.Resources, 1, "in-sync resources are omitted")
	assert.Equal(t, "Role", drifted.Resources[0].LogicalID)
	require.Len(t, drifted.Resources[0].PropertyDiffs, 1)

	clean := decoded.Stacks[1]
	assert.Nil(t, clean.Severity, "a clean stack has no severity")
	assert.Empty(t, clean.Resources)
}

func TestFormatTable(t *testing.T) {
	output := report.FormatTable(sampleAnalyzed())

	assert.Contains(t, output, "prod-api")
	assert.Contains(t, output, "prod-web")
	assert.Contains(t, output, "DRIFTED")
	assert.Contains(t, output, "CRITICAL")
	assert.Contains(t, output, "/AssumeRolePolicyDocument")
	assert.NotContains(t, output, "AWS::Logs::LogGroup", "in-sync resources are omitted")
}

func TestFormatTable_Empty(t *testing.T) {
	assert.Equal(t, "No drift detected.", report.FormatTable(nil))
}

func TestFormatMarkdown(t *testing.T) {
	output := report.FormatMarkdown(sampleAnalyzed())

	assert.Contains(t, output, "## Drift Report — 1/2 stacks drifted")
	assert.Contains(t, output, "### prod-api — DRIFTED [CRITICAL]")
	assert.Contains(t, output, "| Resource | Type | Status | Severity | Property | Expected | Actual |")
	assert.Contains(t, output, "`/AssumeRolePolicyDocument`")
	assert.NotContains(t, output, "prod-web", "clean stacks are omitted from markdown")
}

func TestFormatMarkdown_NothingDrifted(t *testing.T) {
	clean := analyzer.New().Analyze([]models.StackDriftResult{
		{StackName: "prod-web", StackStatus: models.StackStatusInSync},
	})

	assert.Equal(t, "No drift detected.", report.FormatMarkdown(clean))
	assert.Equal(t, "No drift detected.", report.FormatMarkdown(nil))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printer := report.NewPrinterWithWriter(&buf)

	err := printer.PrintReport(sampleAnalyzed(), report.OutputFormatTypeTABLE)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "prod-api")
}

func TestPrintReport_UnsupportedFormat(t *testing.T) {
	printer := report.NewPrinterWithWriter(&bytes.Buffer{})

	err := printer.PrintReport(sampleAnalyzed(), report.OutputFormatType("XML"))

	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected report.OutputFormatType
		wantErr  bool
	}{
		{input: "table", expected: report.OutputFormatTypeTABLE},
		{input: "JSON", expected: report.OutputFormatTypeJSON},
		{input: "markdown", expected: report.OutputFormatTypeMARKDOWN},
		{input: "", expected: report.OutputFormatTypeTABLE},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := report.ParseOutputFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
