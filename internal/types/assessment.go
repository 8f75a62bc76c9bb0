package types

import (
  "time"
  "github.com/google/uuid"
)

type Assessment struct {
  ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
  Score         int           `gorm:"column:score;not null" json:"score"`
  ProfileID     uuid.UUID     `gorm:"type:uuid;not null;index;column:profile_id" json:"profileId"`
  Profile       *Profile      `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"-"`
  StudyPlanID   uuid.UUID     `gorm:"type:uuid;not null;index;column:study_plan_id" json:"studyPlanId"`
  StudyPlan     *StudyPlan    `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudyPlanID;references:ID" json:"studyPlan,omitempty"`
  CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Assessment) TableName() string {
  return "assessment"
}
