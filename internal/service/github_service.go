package service

import (
	"context"

	"taskboard-api/internal/client"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

// GithubService aggregates repository metadata for the task detail view.
type GithubService interface {
	GetRepositoryInfo(ctx context.Context, owner, repo string) (*dto.GithubInfoResponse, error)
}

type githubServiceImpl struct {
	github client.GithubClient
}

// NewGithubService creates a new instance of GithubService
func NewGithubService(github client.GithubClient) GithubService {
	return &githubServiceImpl{github: github}
}

func (s *githubServiceImpl) GetRepositoryInfo(ctx context.Context, owner, repo string) (*dto.GithubInfoResponse, error) {
	info, err := s.github.GetRepositoryInfo(ctx, owner, repo)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Failed to fetch repository info", err.Error())
	}

	resp := &dto.GithubInfoResponse{
		RepositoryID: owner + "/" + repo,
		Branches:     make([]dto.GithubBranch, 0, len(info.Branches)),
		Pulls:        make([]dto.GithubPull, 0, len(info.Pulls)),
		Issues:       make([]dto.GithubIssue, 0, len(info.Issues)),
		Commits:      make([]dto.GithubCommit, 0, len(info.Commits)),
	}
	for _, b := range info.Branches {
		resp.Branches = append(resp.Branches, dto.GithubBranch{Name: b.Name, LastCommitSha: b.LastCommitSha})
	}
	for _, p := range info.Pulls {
		resp.Pulls = append(resp.Pulls, dto.GithubPull{Title: p.Title, PullNumber: p.PullNumber})
	}
	for _, i := range info.Issues {
		resp.Issues = append(resp.Issues, dto.GithubIssue{Title: i.Title, IssueNumber: i.IssueNumber})
	}
	for _, c := range info.Commits {
		resp.Commits = append(resp.Commits, dto.GithubCommit{Sha: c.Sha, Message: c.Message})
	}
	return resp, nil
}
