package analyzer

import (
	"fmt"
	"strings"

	"stackdrift/internal/models"
)

// Severity is the drift severity level. Higher value = more severe.
type Severity int

const (
	// SeverityNone is the zero value for stacks with no drifted resources.
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "NONE"
	}
}

// ParseSeverity converts a severity name to a Severity
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LOW":
		return SeverityLow, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "HIGH":
		return SeverityHigh, nil
	case "CRITICAL":
		return SeverityCritical, nil
	default:
		return SeverityNone, fmt.Errorf("unknown severity %q", name)
	}
}

// defaultSeverityMap classifies resource types by how dangerous their drift is.
// Anything not listed defaults to LOW; that is a deliberate policy default.
var defaultSeverityMap = map[string]Severity{
	// Critical — security boundaries
	"AWS::EC2::SecurityGroup":   SeverityCritical,
	"AWS::IAM::Role":            SeverityCritical,
	"AWS::IAM::Policy":          SeverityCritical,
	"AWS::IAM::ManagedPolicy":   SeverityCritical,
	"AWS::IAM::User":            SeverityCritical,
	"AWS::IAM::Group":           SeverityCritical,
	"AWS::KMS::Key":             SeverityCritical,
	"AWS::EC2::NetworkAcl":      SeverityCritical,
	"AWS::EC2::NetworkAclEntry": SeverityCritical,
	"AWS::WAFv2::WebACL":        SeverityCritical,
	// High — compute and data processing
	"AWS::Lambda::Function":                    SeverityHigh,
	"AWS::RDS::DBInstance":                     SeverityHigh,
	"AWS::RDS::DBCluster":                      SeverityHigh,
	"AWS::ECS::TaskDefinition":                 SeverityHigh,
	"AWS::ECS::Service":                        SeverityHigh,
	"AWS::EC2::Instance":                       SeverityHigh,
	"AWS::ElasticLoadBalancingV2::Listener":    SeverityHigh,
	"AWS::ElasticLoadBalancingV2::TargetGroup": SeverityHigh,
	// Medium — storage and messaging
	"AWS::SQS::Queue":                    SeverityMedium,
	"AWS::SNS::Topic":                    SeverityMedium,
	"AWS::S3::Bucket":                    SeverityMedium,
	"AWS::DynamoDB::Table":               SeverityMedium,
	"AWS::ElastiCache::ReplicationGroup": SeverityMedium,
	// Low is the default for anything not listed
}

// AnalyzedDrift is a StackDriftResult annotated with severity classifications.
type AnalyzedDrift struct {
	Result models.StackDriftResult

	// ResourceSeverities maps drifted resource logical IDs to their severity.
	ResourceSeverities map[string]Severity

	// StackSeverity is the highest resource severity, or SeverityNone when
	// no resource drifted.
	StackSeverity Severity
}

// Analyzer classifies drift results by severity.
type Analyzer struct {
	severityMap map[string]Severity
}

// New creates an analyzer with the default severity table
func New() *Analyzer {
	return NewWithOverrides(nil)
}

// NewWithOverrides creates an analyzer whose severity table is the default one
// with the given per-resource-type overrides applied on top.
func NewWithOverrides(overrides map[string]Severity) *Analyzer {
	table := make(map[string]Severity, len(defaultSeverityMap)+len(overrides))
	for resourceType, severity := range defaultSeverityMap {
		table[resourceType] = severity
	}
	for resourceType, severity := range overrides {
		table[resourceType] = severity
	}

	return &Analyzer{severityMap: table}
}

// Analyze classifies each drifted resource in each result by severity.
// Resources still in sync are skipped.
func (a *Analyzer) Analyze(results []models.StackDriftResult) []AnalyzedDrift {
	analyzed := make([]AnalyzedDrift, 0, len(results))

	for _, result := range results {
		resourceSeverities := make(map[string]Severity)
		stackSeverity := SeverityNone

		for _, rd := range result.ResourceDrifts {
			if rd.Status == models.ResourceStatusInSync {
				continue
			}

			severity, ok := a.severityMap[rd.ResourceType]
			if !ok {
				severity = SeverityLow
			}
			resourceSeverities[rd.LogicalID] = severity

			if severity > stackSeverity {
				stackSeverity = severity
			}
		}

		analyzed = append(analyzed, AnalyzedDrift{
			Result:             result,
			ResourceSeverities: resourceSeverities,
			StackSeverity:      stackSeverity,
		})
	}

	return analyzed
}
