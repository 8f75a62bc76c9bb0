package types

import (
  "time"
  "github.com/google/uuid"
)

// Profile mirrors the identity provider's user: ID is the identity subject,
// not generated locally.
type Profile struct {
  ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
  Email       string        `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Username    string        `gorm:"uniqueIndex;not null;column:username" json:"username"`
  CreatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
  UpdatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Profile) TableName() string {
  return "profile"
}
