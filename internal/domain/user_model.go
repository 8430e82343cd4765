package domain

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"uniqueIndex;not null;size:255"`
	Password string `gorm:"not null;size:100;check:length(password) >= 8" json:"-"`

	// Relations
	Groups []Group `gorm:"many2many:user_groups;"`
	Hosts  []Host  `gorm:"foreignKey:OwnerID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
