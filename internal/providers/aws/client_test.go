package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stackdrift/internal/models"
	"stackdrift/internal/providers/aws/mocks"
)

func testStack(name, id string, status types.StackStatus, tags map[string]string) types.Stack {
	stack := types.Stack{
		StackName:   aws.String(name),
		StackId:     aws.String(id),
		StackStatus: status,
	}
	for key, value := range tags {
		stack.Tags = append(stack.Tags, types.Tag{Key: aws.String(key), Value: aws.String(value)})
	}
	return stack
}

func TestListStacks_Filtering(t *testing.T) {
	page := &cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{
			testStack("prod-api", "arn-1", types.StackStatusCreateComplete, map[string]string{"env": "prod", "team": "core"}),
			testStack("prod-web", "arn-2", types.StackStatusUpdateComplete, map[string]string{"env": "prod"}),
			testStack("dev-api", "arn-3", types.StackStatusCreateComplete, map[string]string{"env": "dev"}),
			// Mid-operation stacks are never candidates.
			testStack("prod-worker", "arn-4", types.StackStatusUpdateInProgress, map[string]string{"env": "prod"}),
			testStack("broken", "arn-5", types.StackStatusRollbackComplete, nil),
		},
	}

	tests := []struct {
		name      string
		filter    models.StackFilter
		wantNames []string
	}{
		{
			name:      "No filter returns all healthy stacks",
			filter:    models.StackFilter{},
			wantNames: []string{"prod-api", "prod-web", "dev-api"},
		},
		{
			name:      "Explicit name list",
			filter:    models.StackFilter{Names: []string{"prod-api", "dev-api"}},
			wantNames: []string{"prod-api", "dev-api"},
		},
		{
			name:      "Prefix filter",
			filter:    models.StackFilter{Prefix: "prod-"},
			wantNames: []string{"prod-api", "prod-web"},
		},
		{
			name:      "Tag filter requires exact match on every key",
			filter:    models.StackFilter{Tags: map[string]string{"env": "prod", "team": "core"}},
			wantNames: []string{"prod-api"},
		},
		{
			name:      "Filters are ANDed",
			filter:    models.StackFilter{Prefix: "prod-", Tags: map[string]string{"env": "dev"}},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientMock := mocks.NewCloudFormationAPI(t)
			// The paginator appends an option function to every call.
			clientMock.On("DescribeStacks", mock.Anything, mock.Anything, mock.Anything).Return(page, nil)

			gateway := NewStackGatewayWithClient(clientMock)
			refs, err := gateway.ListStacks(context.Background(), tt.filter)

			require.NoError(t, err)
			names := make([]string, 0, len(refs))
			for _, ref := range refs {
				names = append(names, ref.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

func TestListStacks_Pagination(t *testing.T) {
	firstPage := &cloudformation.DescribeStacksOutput{
		Stacks:    []types.Stack{testStack("stack-1", "arn-1", types.StackStatusCreateComplete, nil)},
		NextToken: aws.String("page-2"),
	}
	secondPage := &cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{testStack("stack-2", "arn-2", types.StackStatusCreateComplete, nil)},
	}

	clientMock := mocks.NewCloudFormationAPI(t)
	clientMock.On("DescribeStacks", mock.Anything, mock.Anything, mock.Anything).Return(firstPage, nil).Once()
	clientMock.On("DescribeStacks", mock.Anything, mock.Anything, mock.Anything).Return(secondPage, nil).Once()

	gateway := NewStackGatewayWithClient(clientMock)
	refs, err := gateway.ListStacks(context.Background(), models.StackFilter{})

	require.NoError(t, err)
	assert.Len(t, refs, 2)
	clientMock.AssertNumberOfCalls(t, "DescribeStacks", 2)
}

func TestStartDetection(t *testing.T) {
	clientMock := mocks.NewCloudFormationAPI(t)
	clientMock.On("DetectStackDrift", mock.Anything, mock.MatchedBy(func(input *cloudformation.DetectStackDriftInput) bool {
		return aws.ToString(input.StackName) == "my-stack"
	})).Return(&cloudformation.DetectStackDriftOutput{
		StackDriftDetectionId: aws.String("det-123"),
	}, nil)
	clientMock.On("DescribeStacks", mock.Anything, mock.Anything).Return(&cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{testStack("my-stack", "arn-1", types.StackStatusCreateComplete, nil)},
	}, nil)

	gateway := NewStackGatewayWithClient(clientMock)
	run, err := gateway.StartDetection(context.Background(), "my-stack")

	require.NoError(t, err)
	assert.Equal(t, "det-123", run.DetectionID)
	assert.Equal(t, "arn-1", run.StackID)
	assert.Equal(t, "my-stack", run.StackName)
	assert.Equal(t, models.DetectionStatusInProgress, run.Status)
	assert.False(t, run.StartedAt.IsZero())
}

func TestStartDetection_Error(t *testing.T) {
	clientMock := mocks.NewCloudFormationAPI(t)
	clientMock.On("DetectStackDrift", mock.Anything, mock.Anything).
		Return(nil, errors.New("ValidationError: Stack with id my-stack does not exist"))

	gateway := NewStackGatewayWithClient(clientMock)
	_, err := gateway.StartDetection(context.Background(), "my-stack")

	require.Error(t, err)
	assert.True(t, IsErrorCategory(err, ErrResourceNotFound))
}

func TestPollDetection_Complete(t *testing.T) {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	clientMock := mocks.NewCloudFormationAPI(t)
	clientMock.On("DescribeStackDriftDetectionStatus", mock.Anything, mock.MatchedBy(func(input *cloudformation.DescribeStackDriftDetectionStatusInput) bool {
		return aws.ToString(input.StackDriftDetectionId) == "det-123"
	})).Return(&cloudformation.DescribeStackDriftDetectionStatusOutput{
		StackId:                   aws.String("arn-1"),
		DetectionStatus:           types.StackDriftDetectionStatusDetectionComplete,
		StackDriftStatus:          types.StackDriftStatusDrifted,
		DriftedStackResourceCount: aws.Int32(3),
		Timestamp:                 aws.Time(started),
	}, nil)

	gateway := NewStackGatewayWithClient(clientMock)
	run, err := gateway.PollDetection(context.Background(), "det-123", "my-stack")

	require.NoError(t, err)
	assert.Equal(t, models.DetectionStatusComplete, run.Status)
	assert.Equal(t, models.StackStatusDrifted, run.StackStatus)
	assert.Equal(t, 3, run.DriftedResourceCount)
	assert.Equal(t, "my-stack", run.StackName)
	assert.Equal(t, started, run.StartedAt)
}

func TestPollDetection_Failed(t *testing.T) {
	clientMock := mocks.NewCloudFormationAPI(t)
	clientMock.On("DescribeStackDriftDetectionStatus", mock.Anything, mock.Anything).
		Return(&cloudformation.DescribeStackDriftDetectionStatusOutput{
			StackId:               aws.String("arn-1"),
			DetectionStatus:       types.StackDriftDetectionStatusDetectionFailed,
			DetectionStatusReason: aws.String("resource deleted out of band"),
		}, nil)

	gateway := NewStackGatewayWithClient(clientMock)
	run, err := gateway.PollDetection(context.Background(), "det-123", "my-stack")

	require.NoError(t, err)
	assert.Equal(t, models.DetectionStatusFailed, run.Status)
	assert.Equal(t, "resource deleted out of band", run.StatusReason)
	assert.Zero(t, run.DriftedResourceCount)
}

func TestGetResourceDrifts_MapsAndPaginates(t *testing.T) {
	now := time.Now().UTC()
	firstPage := &cloudformation.DescribeStackResourceDriftsOutput{
		StackResourceDrifts: []types.StackResourceDrift{
			{
				LogicalResourceId:        aws.String("Bucket"),
				PhysicalResourceId:       aws.String("my-bucket"),
				ResourceType:             aws.String("AWS::S3::Bucket"),
				StackResourceDriftStatus: types.StackResourceDriftStatusModified,
				Timestamp:                aws.Time(now),
				PropertyDifferences: []types.PropertyDifference{
					{
						PropertyPath:   aws.String("/VersioningConfiguration/Status"),
						ExpectedValue:  aws.String("Enabled"),
						ActualValue:    aws.String("Suspended"),
						DifferenceType: types.DifferenceTypeNotEqual,
					},
				},
			},
		},
		NextToken: aws.String("page-2"),
	}
	secondPage := &cloudformation.DescribeStackResourceDriftsOutput{
		StackResourceDrifts: []types.StackResourceDrift{
			{
				LogicalResourceId:        aws.String("Queue"),
				PhysicalResourceId:       aws.String("my-queue"),
				ResourceType:             aws.String("AWS::SQS::Queue"),
				StackResourceDriftStatus: types.StackResourceDriftStatusDeleted,
				Timestamp:                aws.Time(now),
			},
		},
	}

	clientMock := mocks.NewCloudFormationAPI(t)
	clientMock.On("DescribeStackResourceDrifts", mock.Anything, mock.Anything).Return(firstPage, nil).Once()
	clientMock.On("DescribeStackResourceDrifts", mock.Anything, mock.Anything).Return(secondPage, nil).Once()

	gateway := NewStackGatewayWithClient(clientMock)
	drifts, err := gateway.GetResourceDrifts(context.Background(), "my-stack")

	require.NoError(t, err)
	require.Len(t, drifts, 2)

	assert.Equal(t, "Bucket", drifts[0].LogicalID)
	assert.Equal(t, "my-bucket", drifts[0].PhysicalID)
	assert.Equal(t, "AWS::S3::Bucket", drifts[0].ResourceType)
	assert.Equal(t, models.ResourceStatusModified, drifts[0].Status)
	require.Len(t, drifts[0].PropertyDiffs, 1)
	assert.Equal(t, "/VersioningConfiguration/Status", drifts[0].PropertyDiffs[0].PropertyPath)
	assert.Equal(t, "Enabled", drifts[0].PropertyDiffs[0].ExpectedValue)
	assert.Equal(t, "Suspended", drifts[0].PropertyDiffs[0].ActualValue)
	assert.Equal(t, models.DiffTypeNotEqual, drifts[0].PropertyDiffs[0].DiffType)

	assert.Equal(t, "Queue", drifts[1].LogicalID)
	assert.Equal(t, models.ResourceStatusDeleted, drifts[1].Status)
	assert.Empty(t, drifts[1].PropertyDiffs)
}
