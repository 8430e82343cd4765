package domain

import "time"

// Group is a flat named membership set. Policy decisions only ever ask
// "does user X hold group G", never anything hierarchical.
type Group struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex;not null;size:150"`

	Users []User `gorm:"many2many:user_groups;"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
