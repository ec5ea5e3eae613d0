package models

import "time"

// DetectionStatus is the state of an in-flight drift detection operation.
type DetectionStatus string

const (
	DetectionStatusInProgress DetectionStatus = "DETECTION_IN_PROGRESS"
	DetectionStatusComplete   DetectionStatus = "DETECTION_COMPLETE"
	DetectionStatusFailed     DetectionStatus = "DETECTION_FAILED"
)

// StackStatus is the overall drift verdict for a stack.
type StackStatus string

const (
	StackStatusDrifted    StackStatus = "DRIFTED"
	StackStatusInSync     StackStatus = "IN_SYNC"
	StackStatusNotChecked StackStatus = "NOT_CHECKED"
	StackStatusUnknown    StackStatus = "UNKNOWN"
)

// ResourceStatus is the drift verdict for a single resource within a stack.
type ResourceStatus string

const (
	ResourceStatusInSync      ResourceStatus = "IN_SYNC"
	ResourceStatusModified    ResourceStatus = "MODIFIED"
	ResourceStatusDeleted     ResourceStatus = "DELETED"
	ResourceStatusNotChecked  ResourceStatus = "NOT_CHECKED"
	ResourceStatusUnknown     ResourceStatus = "UNKNOWN"
	ResourceStatusUnsupported ResourceStatus = "UNSUPPORTED"
)

// DiffType is the kind of difference found for a property.
type DiffType string

const (
	DiffTypeNotEqual DiffType = "NOT_EQUAL"
)

// StackRef identifies one stack selected for drift detection.
type StackRef struct {
	Name string `json:"stack_name"`
	ID   string `json:"stack_id"`
}

// StackFilter selects stacks to check. Filters are ANDed when combined;
// the tag filter requires an exact match on every specified key.
type StackFilter struct {
	Names  []string
	Prefix string
	Tags   map[string]string
}

// Empty reports whether the filter matches all stacks.
func (f StackFilter) Empty() bool {
	return len(f.Names) == 0 && f.Prefix == "" && len(f.Tags) == 0
}

// DetectionRun is a snapshot of one in-flight drift detection operation.
// Each poll produces a new value; prior snapshots are never mutated.
type DetectionRun struct {
	DetectionID string
	StackID     string
	StackName   string
	Status      DetectionStatus
	StartedAt   time.Time

	// Populated only once Status is DETECTION_COMPLETE.
	StackStatus          StackStatus
	DriftedResourceCount int

	// Populated only once Status is DETECTION_FAILED.
	StatusReason string
}

// PropertyDiff is a single property-level difference between the declared
// and the actual configuration of a resource.
type PropertyDiff struct {
	PropertyPath  string   `json:"property_path"`
	ExpectedValue string   `json:"expected_value"`
	ActualValue   string   `json:"actual_value"`
	DiffType      DiffType `json:"diff_type"`
}

// ResourceDrift holds the drift information for a single stack resource.
type ResourceDrift struct {
	LogicalID     string         `json:"logical_id"`
	PhysicalID    string         `json:"physical_id"`
	ResourceType  string         `json:"resource_type"`
	Status        ResourceStatus `json:"status"`
	PropertyDiffs []PropertyDiff `json:"property_diffs"`
	Timestamp     time.Time      `json:"timestamp"`
}

// StackDriftResult is the terminal record for one successfully checked stack.
type StackDriftResult struct {
	StackID              string          `json:"stack_id"`
	StackName            string          `json:"stack_name"`
	StackStatus          StackStatus     `json:"stack_status"`
	ResourceDrifts       []ResourceDrift `json:"resource_drifts"`
	DetectionID          string          `json:"detection_id"`
	Timestamp            time.Time       `json:"timestamp"`
	DriftedResourceCount int             `json:"drifted_resource_count"`
}

// HasDrift reports whether the stack's live state diverged from its template.
func (r StackDriftResult) HasDrift() bool {
	return r.StackStatus == StackStatusDrifted
}

// BatchResult is the final output of a detection batch. Every input stack
// appears in exactly one of the two lists once the batch finishes.
type BatchResult struct {
	Results      []StackDriftResult `json:"results"`
	FailedStacks []string           `json:"failed_stacks"`
}
