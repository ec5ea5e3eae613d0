package detector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"stackdrift/internal/models"
	aws "stackdrift/internal/providers/aws"
	"stackdrift/pkg/logging"
)

// Config contains all the parameters for a detection batch.
type Config struct {
	// MaxConcurrent is the number of per-stack workflows allowed to run at once.
	// Out-of-range values are rejected at construction, never clamped.
	MaxConcurrent int `validate:"min=1,max=64"`

	// PollInterval is the fixed delay between status polls of one detection.
	PollInterval time.Duration `validate:"min=0"`

	// MaxPollAttempts bounds how many times one detection is polled before the
	// stack is treated as timed out.
	MaxPollAttempts int `validate:"min=1,max=1000"`
}

// DefaultConfig returns the configuration used when the caller specifies nothing.
func DefaultConfig() Config {
	return Config{
		MaxConcurrent:   5,
		PollInterval:    5 * time.Second,
		MaxPollAttempts: 60,
	}
}

var validate = validator.New()

// Service runs drift detection workflows across many stacks concurrently.
type Service struct {
	config  Config
	gateway aws.StackGatewayAPI
	logger  logging.Logger
}

// NewService creates a detector service with the given configuration. The
// configuration is validated up front so misconfiguration is visible rather
// than silently adjusted.
func NewService(config Config, gateway aws.StackGatewayAPI, logger logging.Logger) (*Service, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid detector config: %w", err)
	}
	if gateway == nil {
		return nil, errors.New("a stack gateway is required")
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Service{
		config:  config,
		gateway: gateway,
		logger:  logger,
	}, nil
}

// NewDefaultService creates a detector backed by the real CloudFormation gateway.
func NewDefaultService(ctx context.Context, config Config, region string, logger logging.Logger) (*Service, error) {
	gateway, err := aws.NewStackGatewayWithDefaultConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize CloudFormation gateway: %w", err)
	}

	return NewService(config, gateway, logger)
}

// stackOutcome carries one finished workflow's result to the aggregator.
type stackOutcome struct {
	ref    models.StackRef
	result *models.StackDriftResult // nil when the workflow failed
	err    error
}

// Detect lists the stacks matching the filter and runs one detection workflow
// per stack under the concurrency cap. Every matched stack ends up in exactly
// one of the two BatchResult lists; a single workflow's failure never aborts
// the batch or its siblings. Only a failure of the listing step itself is
// returned as an error.
func (s *Service) Detect(ctx context.Context, filter models.StackFilter) (models.BatchResult, error) {
	if filter.Empty() {
		s.logger.Debug("no stack filter set, checking every healthy stack")
	}

	stacks, err := s.gateway.ListStacks(ctx, filter)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("error listing stacks: %w", err)
	}

	batch := models.BatchResult{
		Results:      make([]models.StackDriftResult, 0, len(stacks)),
		FailedStacks: make([]string, 0),
	}
	if len(stacks) == 0 {
		return batch, nil
	}

	s.logger.Info("starting drift detection for %d stack(s), concurrency %d", len(stacks), s.config.MaxConcurrent)

	g := new(errgroup.Group)
	g.SetLimit(s.config.MaxConcurrent)

	// Buffered so a finishing workflow never blocks on the aggregator.
	outcomes := make(chan stackOutcome, len(stacks))

	for _, ref := range stacks {
		ref := ref
		g.Go(func() error {
			// Workflows are independent: always report through the channel and
			// return nil so no stack's failure cancels a sibling's slot.
			outcomes <- s.runWorkflow(ctx, ref)
			return nil
		})
	}

	// Close the channel once every dispatched workflow has resolved.
	go func() {
		_ = g.Wait()
		close(outcomes)
	}()

	// Collect in completion order; no ordering guarantee beyond completeness.
	for outcome := range outcomes {
		if outcome.err != nil {
			s.logger.Error("drift detection failed for stack %s: %s", outcome.ref.Name, outcome.err)
			batch.FailedStacks = append(batch.FailedStacks, outcome.ref.Name)
			continue
		}
		batch.Results = append(batch.Results, *outcome.result)
	}

	return batch, nil
}

// runWorkflow is the error boundary for one stack: whatever goes wrong inside,
// including a panic, is converted into a failure outcome for that stack only.
func (s *Service) runWorkflow(ctx context.Context, ref models.StackRef) (outcome stackOutcome) {
	outcome.ref = ref
	defer func() {
		if r := recover(); r != nil {
			outcome.result = nil
			outcome.err = NewStackError(ErrInternal, ref.Name, fmt.Sprintf("workflow panic: %v", r), nil)
		}
	}()

	result, err := s.detectStack(ctx, ref.Name)
	if err != nil {
		outcome.err = err
		return outcome
	}

	outcome.result = result
	return outcome
}

// detectStack runs the full workflow for one stack: start the detection, poll
// it to a terminal status, then fetch the resource-level drifts.
func (s *Service) detectStack(ctx context.Context, stackName string) (*models.StackDriftResult, error) {
	run, err := s.gateway.StartDetection(ctx, stackName)
	if err != nil {
		return nil, NewStackError(ErrStartFailed, stackName, "could not start drift detection", err)
	}
	s.logger.Debug("started drift detection %s for stack %s", run.DetectionID, stackName)

	final, err := s.awaitDetection(ctx, run)
	if err != nil {
		return nil, err
	}

	drifts, err := s.gateway.GetResourceDrifts(ctx, stackName)
	if err != nil {
		return nil, NewStackError(ErrInternal, stackName, "could not fetch resource drifts", err)
	}

	return &models.StackDriftResult{
		StackID:              final.StackID,
		StackName:            stackName,
		StackStatus:          final.StackStatus,
		ResourceDrifts:       drifts,
		DetectionID:          final.DetectionID,
		Timestamp:            time.Now().UTC(),
		DriftedResourceCount: final.DriftedResourceCount,
	}, nil
}

// errStillInProgress marks a poll that consumed an attempt without reaching a
// terminal status.
var errStillInProgress = errors.New("drift detection still in progress")

// awaitDetection polls the detection until it reaches a terminal status, with
// a fixed delay between attempts and a bounded attempt budget. A FAILED status
// stops immediately; exhausting the budget while still in progress is a
// timeout. The latest snapshot is returned alongside any error.
func (s *Service) awaitDetection(ctx context.Context, run models.DetectionRun) (models.DetectionRun, error) {
	latest := run

	operation := func() error {
		snapshot, err := s.gateway.PollDetection(ctx, run.DetectionID, run.StackName)
		if err != nil {
			return backoff.Permanent(NewStackError(ErrInternal, run.StackName, "error polling drift detection", err))
		}
		latest = snapshot

		switch snapshot.Status {
		case models.DetectionStatusComplete:
			return nil
		case models.DetectionStatusFailed:
			return backoff.Permanent(NewStackError(ErrDetectionFailed, run.StackName, snapshot.StatusReason, nil))
		default:
			return errStillInProgress
		}
	}

	// The first attempt fires immediately, so the retry budget is one less
	// than the total number of polls allowed.
	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(s.config.PollInterval),
			uint64(s.config.MaxPollAttempts-1),
		),
		ctx,
	)

	err := backoff.Retry(operation, policy)
	switch {
	case err == nil:
		return latest, nil
	case errors.Is(err, errStillInProgress):
		return latest, NewStackError(ErrPollTimeout, run.StackName,
			fmt.Sprintf("detection still in progress after %d polls", s.config.MaxPollAttempts), nil)
	default:
		return latest, err
	}
}
