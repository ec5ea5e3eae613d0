package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"stackdrift/internal/models"
)

// healthyStackStatuses are the stack states eligible for drift detection.
// Stacks mid-operation or in a failed state are skipped by the listing step.
var healthyStackStatuses = []types.StackStatus{
	types.StackStatusCreateComplete,
	types.StackStatusUpdateComplete,
	types.StackStatusUpdateRollbackComplete,
	types.StackStatusImportComplete,
	types.StackStatusImportRollbackComplete,
}

// resourceDriftStatusFilters selects which resource drift states to fetch.
var resourceDriftStatusFilters = []types.StackResourceDriftStatus{
	types.StackResourceDriftStatusModified,
	types.StackResourceDriftStatusDeleted,
	types.StackResourceDriftStatusNotChecked,
	types.StackResourceDriftStatusInSync,
}

// StackGateway handles interactions with the CloudFormation drift detection API.
type StackGateway struct {
	client CloudFormationAPI
}

// NewStackGatewayWithDefaultConfig creates a StackGateway using the default AWS SDK
// configuration chain. An empty region defers to the SDK's own resolution.
func NewStackGatewayWithDefaultConfig(ctx context.Context, region string) (*StackGateway, error) {
	var optFns []func(*config.LoadOptions) error
	if region != "" {
		optFns = append(optFns, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewStackGatewayWithClient(cloudformation.NewFromConfig(cfg)), nil
}

// NewStackGatewayWithClient creates a StackGateway with a provided client
func NewStackGatewayWithClient(client CloudFormationAPI) *StackGateway {
	return &StackGateway{
		client: client,
	}
}

// ListStacks returns the stacks in a healthy terminal status that match the filter.
func (g *StackGateway) ListStacks(ctx context.Context, filter models.StackFilter) ([]models.StackRef, error) {
	var candidates []types.Stack

	paginator := cloudformation.NewDescribeStacksPaginator(g.client, &cloudformation.DescribeStacksInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyCloudFormationError(err, "Stack", "")
		}
		for _, stack := range page.Stacks {
			if isHealthyStatus(stack.StackStatus) {
				candidates = append(candidates, stack)
			}
		}
	}

	refs := make([]models.StackRef, 0, len(candidates))
	for _, stack := range candidates {
		name := aws.ToString(stack.StackName)

		if len(filter.Names) > 0 && !containsName(filter.Names, name) {
			continue
		}
		if filter.Prefix != "" && !strings.HasPrefix(name, filter.Prefix) {
			continue
		}
		if len(filter.Tags) > 0 && !matchesTags(stack.Tags, filter.Tags) {
			continue
		}

		refs = append(refs, models.StackRef{
			Name: name,
			ID:   aws.ToString(stack.StackId),
		})
	}

	return refs, nil
}

// StartDetection triggers drift detection for a stack and returns the initial
// DetectionRun snapshot for polling.
func (g *StackGateway) StartDetection(ctx context.Context, stackName string) (models.DetectionRun, error) {
	resp, err := g.client.DetectStackDrift(ctx, &cloudformation.DetectStackDriftInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return models.DetectionRun{}, ClassifyCloudFormationError(err, "Stack", stackName)
	}

	desc, err := g.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return models.DetectionRun{}, ClassifyCloudFormationError(err, "Stack", stackName)
	}
	if len(desc.Stacks) == 0 {
		return models.DetectionRun{}, NewCloudFormationError(ErrResourceNotFound, "Stack", stackName,
			"stack not found", nil)
	}

	return models.DetectionRun{
		DetectionID: aws.ToString(resp.StackDriftDetectionId),
		StackID:     aws.ToString(desc.Stacks[0].StackId),
		StackName:   stackName,
		Status:      models.DetectionStatusInProgress,
		StartedAt:   time.Now().UTC(),
	}, nil
}

// PollDetection fetches the current status of a drift detection operation and
// returns a fresh DetectionRun snapshot.
func (g *StackGateway) PollDetection(ctx context.Context, detectionID, stackName string) (models.DetectionRun, error) {
	resp, err := g.client.DescribeStackDriftDetectionStatus(ctx, &cloudformation.DescribeStackDriftDetectionStatusInput{
		StackDriftDetectionId: aws.String(detectionID),
	})
	if err != nil {
		return models.DetectionRun{}, ClassifyCloudFormationError(err, "StackDriftDetection", detectionID)
	}

	run := models.DetectionRun{
		DetectionID: detectionID,
		StackID:     aws.ToString(resp.StackId),
		StackName:   stackName,
		Status:      models.DetectionStatus(resp.DetectionStatus),
		StartedAt:   aws.ToTime(resp.Timestamp),
	}

	switch run.Status {
	case models.DetectionStatusComplete:
		run.StackStatus = models.StackStatus(resp.StackDriftStatus)
		run.DriftedResourceCount = int(aws.ToInt32(resp.DriftedStackResourceCount))
	case models.DetectionStatusFailed:
		run.StatusReason = aws.ToString(resp.DetectionStatusReason)
	}

	return run, nil
}

// GetResourceDrifts fetches resource-level drift details for a stack, following
// NextToken pagination until exhausted.
func (g *StackGateway) GetResourceDrifts(ctx context.Context, stackName string) ([]models.ResourceDrift, error) {
	var drifts []models.ResourceDrift
	var nextToken *string

	for {
		resp, err := g.client.DescribeStackResourceDrifts(ctx, &cloudformation.DescribeStackResourceDriftsInput{
			StackName:                       aws.String(stackName),
			StackResourceDriftStatusFilters: resourceDriftStatusFilters,
			NextToken:                       nextToken,
		})
		if err != nil {
			return nil, ClassifyCloudFormationError(err, "Stack", stackName)
		}

		for _, resource := range resp.StackResourceDrifts {
			drifts = append(drifts, convertResourceDrift(resource))
		}

		nextToken = resp.NextToken
		if nextToken == nil {
			break
		}
	}

	return drifts, nil
}

// convertResourceDrift maps an SDK resource drift to the domain model.
func convertResourceDrift(resource types.StackResourceDrift) models.ResourceDrift {
	diffs := make([]models.PropertyDiff, 0, len(resource.PropertyDifferences))
	for _, pd := range resource.PropertyDifferences {
		diffs = append(diffs, models.PropertyDiff{
			PropertyPath:  aws.ToString(pd.PropertyPath),
			ExpectedValue: aws.ToString(pd.ExpectedValue),
			ActualValue:   aws.ToString(pd.ActualValue),
			DiffType:      models.DiffType(pd.DifferenceType),
		})
	}

	return models.ResourceDrift{
		LogicalID:     aws.ToString(resource.LogicalResourceId),
		PhysicalID:    aws.ToString(resource.PhysicalResourceId),
		ResourceType:  aws.ToString(resource.ResourceType),
		Status:        models.ResourceStatus(resource.StackResourceDriftStatus),
		PropertyDiffs: diffs,
		Timestamp:     aws.ToTime(resource.Timestamp),
	}
}

func isHealthyStatus(status types.StackStatus) bool {
	for _, s := range healthyStackStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// matchesTags reports whether the stack carries every requested tag with an exact value.
func matchesTags(stackTags []types.Tag, want map[string]string) bool {
	tags := make(map[string]string, len(stackTags))
	for _, tag := range stackTags {
		if tag.Key != nil && tag.Value != nil {
			tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
	}

	for key, value := range want {
		if tags[key] != value {
			return false
		}
	}
	return true
}
