package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"stackdrift/internal/models"
)

// CloudFormationAPI defines the interface for CloudFormation operations we need to mock
//
//go:generate mockery --name=CloudFormationAPI --output=./mocks
type CloudFormationAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DetectStackDrift(ctx context.Context, params *cloudformation.DetectStackDriftInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DetectStackDriftOutput, error)
	DescribeStackDriftDetectionStatus(ctx context.Context, params *cloudformation.DescribeStackDriftDetectionStatusInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackDriftDetectionStatusOutput, error)
	DescribeStackResourceDrifts(ctx context.Context, params *cloudformation.DescribeStackResourceDriftsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourceDriftsOutput, error)
}

// StackGatewayAPI defines the interface for the stack drift operations consumed
// by the detector: list matching stacks, start a detection, poll it, fetch diffs.
//
//go:generate mockery --name=StackGatewayAPI --output=./mocks
type StackGatewayAPI interface {
	ListStacks(ctx context.Context, filter models.StackFilter) ([]models.StackRef, error)
	StartDetection(ctx context.Context, stackName string) (models.DetectionRun, error)
	PollDetection(ctx context.Context, detectionID, stackName string) (models.DetectionRun, error)
	GetResourceDrifts(ctx context.Context, stackName string) ([]models.ResourceDrift, error)
}
