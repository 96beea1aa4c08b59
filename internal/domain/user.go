package domain

import "time"

// User is keyed by email. The verification code doubles as the signin
// credential and stays valid until the next signup overwrites it.
type User struct {
	Email            string    `gorm:"type:varchar(255);primaryKey" json:"email"`
	VerificationCode string    `gorm:"type:varchar(10);not null" json:"-"`
	Name             string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	AvatarURL        string    `gorm:"type:text" json:"avatar,omitempty"`
	GithubLogin      string    `gorm:"type:varchar(255)" json:"githubLogin,omitempty"`
	CreatedAt        time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
