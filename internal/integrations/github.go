package integrations

import (
	"context"
	"fmt"
	"regexp"
)

var repoPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+/[a-zA-Z0-9._-]+$`)

// githubAPIBaseURL is a variable so tests can point the client at a local server.
var githubAPIBaseURL = "https://api.github.com"

// PostToGitHubPR posts a drift report as a comment on a GitHub pull request.
func PostToGitHubPR(ctx context.Context, body, repo string, prNumber int, token string) error {
	if !repoPattern.MatchString(repo) {
		return fmt.Errorf("invalid GitHub repo format: %q (expected 'owner/repo')", repo)
	}
	if token == "" {
		return fmt.Errorf("a GitHub token is required")
	}

	// PR comments go through the issues comments endpoint.
	commentURL := fmt.Sprintf("%s/repos/%s/issues/%d/comments", githubAPIBaseURL, repo, prNumber)
	payload := map[string]string{"body": body}
	headers := map[string]string{
		"Authorization": "token " + token,
		"Accept":        "application/vnd.github.v3+json",
	}

	return postJSON(ctx, commentURL, payload, headers)
}
