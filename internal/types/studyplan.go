package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// StudyPlan stores the generated Plan Document verbatim in Content. Topics
// keeps the list the caller supplied, not one re-derived from the document.
type StudyPlan struct {
  ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Title       string          `gorm:"column:title;not null" json:"title"`
  Topics      datatypes.JSON  `gorm:"column:topics;type:jsonb" json:"topics"`
  Content     datatypes.JSON  `gorm:"column:content;type:jsonb" json:"content"`
  ProfileID   uuid.UUID       `gorm:"type:uuid;not null;index;column:profile_id" json:"profileId"`
  Profile     *Profile        `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"-"`
  CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (StudyPlan) TableName() string {
  return "study_plan"
}
