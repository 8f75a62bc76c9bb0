package types

import (
  "time"
  "github.com/google/uuid"
)

type Task struct {
  ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
  ScheduleID    uuid.UUID     `gorm:"type:uuid;not null;index;column:schedule_id" json:"scheduleId"`
  Schedule      *Schedule     `gorm:"constraint:OnDelete:CASCADE;foreignKey:ScheduleID;references:ID" json:"-"`
  Title         string        `gorm:"column:title;not null" json:"title"`
  IsCompleted   bool          `gorm:"column:is_completed;not null;default:false" json:"isCompleted"`
  CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Task) TableName() string {
  return "task"
}
