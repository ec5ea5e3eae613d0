package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stackdrift/internal/analyzer"
	"stackdrift/internal/detector"
	"stackdrift/internal/integrations"
	"stackdrift/internal/models"
	"stackdrift/internal/report"
	"stackdrift/pkg/logging"
)

// Exit codes reported to calling automation.
const (
	exitClean        = 0
	exitDriftFound   = 1
	exitError        = 2
	exitStacksFailed = 3
)

func main() {
	var (
		stackNames      []string
		prefix          string
		tag             string
		driftedOnly     bool
		outputFormat    string
		concurrency     int
		pollInterval    time.Duration
		maxPollAttempts int
		region          string
		severityConfig  string
		postSlack       bool
		postGitHubPR    int
		logLevel        string
	)

	defaults := detector.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "stackdrift",
		Short: "Detect CloudFormation stack drift across many stacks concurrently",
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewConsoleLogger()
			logger.SetLevel(logging.StringToLogLevel(logLevel))

			filter := models.StackFilter{
				Names:  stackNames,
				Prefix: prefix,
			}
			if tag != "" {
				key, value, err := parseTag(tag)
				if err != nil {
					logger.Error("%s", err)
					os.Exit(exitError)
				}
				filter.Tags = map[string]string{key: value}
			}

			format, err := report.ParseOutputFormat(outputFormat)
			if err != nil {
				logger.Error("%s", err)
				os.Exit(exitError)
			}

			var overrides map[string]analyzer.Severity
			if severityConfig != "" {
				overrides, err = analyzer.LoadOverrides(severityConfig)
				if err != nil {
					logger.Error("%s", err)
					os.Exit(exitError)
				}
			}

			config := detector.Config{
				MaxConcurrent:   concurrency,
				PollInterval:    pollInterval,
				MaxPollAttempts: maxPollAttempts,
			}

			ctx := context.Background()
			service, err := detector.NewDefaultService(ctx, config, region, logger)
			if err != nil {
				logger.Error("failed to initialize the detector: %s", err)
				os.Exit(exitError)
			}

			batch, err := service.Detect(ctx, filter)
			if err != nil {
				logger.Error("%s", err)
				os.Exit(exitError)
			}

			results := batch.Results
			if driftedOnly {
				results = filterDrifted(results)
			}

			analyzed := analyzer.NewWithOverrides(overrides).Analyze(results)

			var printer report.IPrinter = report.NewDefaultPrinter()
			if err := printer.PrintReport(analyzed, format); err != nil {
				logger.Error("error generating report: %s", err)
				os.Exit(exitError)
			}

			for _, name := range batch.FailedStacks {
				fmt.Fprintf(os.Stderr, "Stack %s: drift detection failed\n", name)
			}

			if postSlack {
				webhookURL := os.Getenv("STACKDRIFT_SLACK_WEBHOOK")
				if webhookURL == "" {
					logger.Error("STACKDRIFT_SLACK_WEBHOOK env var not set")
					os.Exit(exitError)
				}
				if err := integrations.PostToSlack(ctx, report.FormatMarkdown(analyzed), webhookURL); err != nil {
					logger.Error("failed to post to Slack: %s", err)
					os.Exit(exitError)
				}
			}

			if postGitHubPR > 0 {
				token := os.Getenv("GITHUB_TOKEN")
				repo := os.Getenv("GITHUB_REPO")
				if token == "" || repo == "" {
					logger.Error("GITHUB_TOKEN and GITHUB_REPO env vars required")
					os.Exit(exitError)
				}
				if err := integrations.PostToGitHubPR(ctx, report.FormatMarkdown(analyzed), repo, postGitHubPR, token); err != nil {
					logger.Error("failed to post to GitHub: %s", err)
					os.Exit(exitError)
				}
			}

			if hasDrift(batch.Results) {
				os.Exit(exitDriftFound)
			}
			if len(batch.FailedStacks) > 0 {
				os.Exit(exitStacksFailed)
			}
			os.Exit(exitClean)
		},
	}

	// Define flags
	rootCmd.Flags().StringArrayVar(&stackNames, "stack", nil, "Specific stack name(s) to check (repeatable)")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "Filter stacks by name prefix")
	rootCmd.Flags().StringVar(&tag, "tag", "", "Filter stacks by tag (KEY=VALUE)")
	rootCmd.Flags().BoolVar(&driftedOnly, "drifted-only", false, "Show only drifted stacks")
	rootCmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table, json or markdown")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", defaults.MaxConcurrent, "Maximum number of concurrent drift detections")
	rootCmd.Flags().DurationVar(&pollInterval, "poll-interval", defaults.PollInterval, "Delay between detection status polls")
	rootCmd.Flags().IntVar(&maxPollAttempts, "max-poll-attempts", defaults.MaxPollAttempts, "Polls per detection before treating it as timed out")
	rootCmd.Flags().StringVar(&region, "region", "", "AWS region (defaults to the SDK config chain)")
	rootCmd.Flags().StringVar(&severityConfig, "severity-config", "", "Path to a YAML or HCL severity override file")
	rootCmd.Flags().BoolVar(&postSlack, "post-slack", false, "Post report to the Slack webhook in STACKDRIFT_SLACK_WEBHOOK")
	rootCmd.Flags().IntVar(&postGitHubPR, "post-github-pr", 0, "Post report as a comment on this GitHub PR number")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitError)
	}
}

// parseTag splits a KEY=VALUE tag filter argument.
func parseTag(tag string) (string, string, error) {
	key, value, found := strings.Cut(tag, "=")
	if !found || key == "" {
		return "", "", fmt.Errorf("invalid tag filter %q (expected KEY=VALUE)", tag)
	}
	return key, value, nil
}

func filterDrifted(results []models.StackDriftResult) []models.StackDriftResult {
	drifted := make([]models.StackDriftResult, 0, len(results))
	for _, r := range results {
		if r.HasDrift() {
			drifted = append(drifted, r)
		}
	}
	return drifted
}

func hasDrift(results []models.StackDriftResult) bool {
	for _, r := range results {
		if r.HasDrift() {
			return true
		}
	}
	return false
}
