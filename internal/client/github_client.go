package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskboard-api/internal/metrics"
)

// Branch is one repository branch with its tip commit.
type Branch struct {
	Name          string `json:"name"`
	LastCommitSha string `json:"lastCommitSha"`
}

// Pull is one open pull request.
type Pull struct {
	Title      string `json:"title"`
	PullNumber int    `json:"pullNumber"`
}

// Issue is one open issue. Pull requests surfaced through the issues
// API are filtered out.
type Issue struct {
	Title       string `json:"title"`
	IssueNumber int    `json:"issueNumber"`
}

// Commit is one commit on the default branch.
type Commit struct {
	Sha     string `json:"sha"`
	Message string `json:"message"`
}

// RepoInfo aggregates the repository data shown alongside a task.
type RepoInfo struct {
	Branches []Branch `json:"branches"`
	Pulls    []Pull   `json:"pulls"`
	Issues   []Issue  `json:"issues"`
	Commits  []Commit `json:"commits"`
}

// GithubUser is the authenticated user's public profile.
type GithubUser struct {
	ID     int64  `json:"id"`
	Login  string `json:"login"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar_url"`
}

// GithubClient defines the interface for GitHub API communication.
type GithubClient interface {
	// GetRepositoryInfo fetches branches, open pulls, open issues and
	// recent commits for one repository.
	GetRepositoryInfo(ctx context.Context, owner, repo string) (*RepoInfo, error)
	// ExchangeOAuthCode trades an OAuth authorization code for an
	// access token.
	ExchangeOAuthCode(ctx context.Context, code string) (string, error)
	// FetchUser resolves the profile behind an access token.
	FetchUser(ctx context.Context, accessToken string) (*GithubUser, error)
}

type githubClient struct {
	apiBaseURL   string
	oauthBaseURL string
	token        string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewGithubClient creates a new GitHub API client. token is an optional
// server token used for repository reads; without it requests run
// unauthenticated against the public rate limit.
func NewGithubClient(apiBaseURL, oauthBaseURL, token, clientID, clientSecret string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) GithubClient {
	return &githubClient{
		apiBaseURL:   strings.TrimRight(apiBaseURL, "/"),
		oauthBaseURL: strings.TrimRight(oauthBaseURL, "/"),
		token:        token,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

func (c *githubClient) GetRepositoryInfo(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	base := fmt.Sprintf("%s/repos/%s/%s", c.apiBaseURL, url.PathEscape(owner), url.PathEscape(repo))

	var rawBranches []struct {
		Name   string `json:"name"`
		Commit struct {
			Sha string `json:"sha"`
		} `json:"commit"`
	}
	if err := c.getJSON(ctx, base+"/branches", &rawBranches); err != nil {
		return nil, fmt.Errorf("fetch branches: %w", err)
	}

	var rawPulls []struct {
		Title  string `json:"title"`
		Number int    `json:"number"`
	}
	if err := c.getJSON(ctx, base+"/pulls", &rawPulls); err != nil {
		return nil, fmt.Errorf("fetch pulls: %w", err)
	}

	var rawIssues []struct {
		Title       string           `json:"title"`
		Number      int              `json:"number"`
		PullRequest *json.RawMessage `json:"pull_request"`
	}
	if err := c.getJSON(ctx, base+"/issues", &rawIssues); err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}

	var rawCommits []struct {
		Sha    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
		} `json:"commit"`
	}
	if err := c.getJSON(ctx, base+"/commits", &rawCommits); err != nil {
		return nil, fmt.Errorf("fetch commits: %w", err)
	}

	info := &RepoInfo{
		Branches: make([]Branch, 0, len(rawBranches)),
		Pulls:    make([]Pull, 0, len(rawPulls)),
		Issues:   make([]Issue, 0, len(rawIssues)),
		Commits:  make([]Commit, 0, len(rawCommits)),
	}
	for _, b := range rawBranches {
		info.Branches = append(info.Branches, Branch{Name: b.Name, LastCommitSha: b.Commit.Sha})
	}
	for _, p := range rawPulls {
		info.Pulls = append(info.Pulls, Pull{Title: p.Title, PullNumber: p.Number})
	}
	for _, i := range rawIssues {
		// the issues API also returns pull requests, skip them
		if i.PullRequest != nil {
			continue
		}
		info.Issues = append(info.Issues, Issue{Title: i.Title, IssueNumber: i.Number})
	}
	for _, cm := range rawCommits {
		info.Commits = append(info.Commits, Commit{Sha: cm.Sha, Message: cm.Commit.Message})
	}
	return info, nil
}

func (c *githubClient) ExchangeOAuthCode(ctx context.Context, code string) (string, error) {
	endpoint := c.oauthBaseURL + "/login/oauth/access_token"
	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build oauth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, "github-oauth")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken      string `json:"access_token"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode oauth response: %w", err)
	}
	if body.Error != "" {
		return "", fmt.Errorf("oauth exchange rejected: %s", body.ErrorDescription)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("oauth exchange returned no token")
	}
	return body.AccessToken, nil
}

func (c *githubClient) FetchUser(ctx context.Context, accessToken string) (*GithubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.do(req, "github-api")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github user request failed with status %d", resp.StatusCode)
	}

	var user GithubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	return &user, nil
}

func (c *githubClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.do(req, "github-api")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("github request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("github responded with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *githubClient) do(req *http.Request, target string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(target, req.Method, status, err)
	}
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", req.URL.Host, err)
	}
	return resp, nil
}
