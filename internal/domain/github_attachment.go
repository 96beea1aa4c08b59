package domain

import "github.com/google/uuid"

// AttachmentType identifies the kind of GitHub object a task references.
type AttachmentType string

const (
	AttachmentPullRequest AttachmentType = "pull_request"
	AttachmentCommit      AttachmentType = "commit"
	AttachmentIssue       AttachmentType = "issue"
)

// Valid reports whether t is one of the accepted attachment types.
func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentPullRequest, AttachmentCommit, AttachmentIssue:
		return true
	}
	return false
}

// GithubAttachment is descriptive metadata on a task. It is not verified
// against the GitHub API at attach time.
type GithubAttachment struct {
	BaseModel
	TaskID uuid.UUID      `gorm:"type:uuid;not null;index:idx_github_attachments_task_id" json:"taskId"`
	Type   AttachmentType `gorm:"type:varchar(20);not null" json:"type"`
	Number string         `gorm:"type:varchar(64);not null" json:"number"`
}

// TableName specifies the table name for GithubAttachment
func (GithubAttachment) TableName() string {
	return "github_attachments"
}
