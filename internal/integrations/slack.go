package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// allowedSlackHosts are the only hosts a webhook may point at. Anything else
// is rejected before a single byte of the report leaves the process.
var allowedSlackHosts = map[string]bool{
	"hooks.slack.com":     true,
	"hooks.slack-gov.com": true,
}

const defaultTimeout = 30 * time.Second

var httpClient = &http.Client{Timeout: defaultTimeout}

// PostToSlack posts a drift report to a Slack incoming webhook.
func PostToSlack(ctx context.Context, report, webhookURL string) error {
	parsed, err := url.Parse(webhookURL)
	if err != nil {
		return fmt.Errorf("invalid Slack webhook URL: %w", err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("slack webhook URL must use HTTPS")
	}
	if !allowedSlackHosts[parsed.Hostname()] {
		return fmt.Errorf("invalid Slack webhook host %q: must be one of hooks.slack.com, hooks.slack-gov.com", parsed.Hostname())
	}

	payload := map[string]string{"text": report}
	return postJSON(ctx, webhookURL, payload, nil)
}

// postJSON sends a JSON body via POST and treats any non-2xx response as an error.
func postJSON(ctx context.Context, targetURL string, payload any, headers map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request to %s returned status %d", req.URL.Hostname(), resp.StatusCode)
	}

	return nil
}
