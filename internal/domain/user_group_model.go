package domain

import "time"

type UserGroup struct {
	UserID    uint      `gorm:"primaryKey"`
	GroupID   uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserGroup) TableName() string {
	return "user_groups"
}
