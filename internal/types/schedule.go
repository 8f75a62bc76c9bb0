package types

import (
  "time"
  "github.com/google/uuid"
)

// Schedule is a per-profile, per-calendar-day container of tasks. Date is
// always midnight UTC; the unique index makes get-or-create race-safe.
type Schedule struct {
  ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
  ProfileID   uuid.UUID     `gorm:"type:uuid;not null;column:profile_id;uniqueIndex:idx_schedule_profile_date" json:"profileId"`
  Profile     *Profile      `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"-"`
  Date        time.Time     `gorm:"not null;column:date;uniqueIndex:idx_schedule_profile_date" json:"date"`
  Tasks       []*Task       `gorm:"foreignKey:ScheduleID;references:ID" json:"tasks"`
  CreatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Schedule) TableName() string {
  return "schedule"
}
