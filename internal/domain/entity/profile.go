package entity

import "github.com/google/uuid"

// Profile represents the public display profile of a user.
// The primary key equals the owning user's id, one profile per user.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone     *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}
