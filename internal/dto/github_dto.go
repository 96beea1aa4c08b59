package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// AttachGithubRequest attaches a GitHub object reference to a task
type AttachGithubRequest struct {
	Type   domain.AttachmentType `json:"type" binding:"required"`
	Number string                `json:"number" binding:"required"`
}

// GithubAttachmentResponse represents the attachment wire format
type GithubAttachmentResponse struct {
	AttachmentID uuid.UUID             `json:"attachmentId"`
	TaskID       uuid.UUID             `json:"taskId"`
	Type         domain.AttachmentType `json:"type"`
	Number       string                `json:"number"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ToGithubAttachmentResponse converts a domain attachment to its wire format
func ToGithubAttachmentResponse(a *domain.GithubAttachment) *GithubAttachmentResponse {
	return &GithubAttachmentResponse{
		AttachmentID: a.ID,
		TaskID:       a.TaskID,
		Type:         a.Type,
		Number:       a.Number,
		CreatedAt:    a.CreatedAt,
	}
}

// GithubBranch summarizes a repository branch
type GithubBranch struct {
	Name          string `json:"name"`
	LastCommitSha string `json:"lastCommitSha"`
}

// GithubPull summarizes an open pull request
type GithubPull struct {
	Title      string `json:"title"`
	PullNumber int    `json:"pullNumber"`
}

// GithubIssue summarizes an open issue (pull requests excluded)
type GithubIssue struct {
	Title       string `json:"title"`
	IssueNumber int    `json:"issueNumber"`
}

// GithubCommit summarizes a commit
type GithubCommit struct {
	Sha     string `json:"sha"`
	Message string `json:"message"`
}

// GithubInfoResponse aggregates repository metadata
type GithubInfoResponse struct {
	RepositoryID string         `json:"repositoryId"`
	Branches     []GithubBranch `json:"branches"`
	Pulls        []GithubPull   `json:"pulls"`
	Issues       []GithubIssue  `json:"issues"`
	Commits      []GithubCommit `json:"commits"`
}

// GithubUserResponse is the profile returned after the OAuth callback
type GithubUserResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
