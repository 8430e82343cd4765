package database

import (
	"fwadmin/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupNamesForUser returns the names of every group the user belongs to.
// This is the membership lookup behind every policy decision.
func GroupNamesForUser(userID uint) ([]string, error) {
	var names []string
	err := DB.Table("user_groups").
		Select("groups.name").
		Joins("JOIN groups ON user_groups.group_id = groups.id").
		Where("user_groups.user_id = ?", userID).
		Order("groups.name ASC").
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func AddUserToGroup(userID uint, groupName string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		group := domain.Group{Name: groupName}
		if err := tx.Where("name = ?", groupName).FirstOrCreate(&group).Error; err != nil {
			return err
		}

		membership := domain.UserGroup{UserID: userID, GroupID: group.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error
	})
}

func RemoveUserFromGroup(userID uint, groupName string) error {
	return DB.
		Where("user_id = ? AND group_id IN (SELECT id FROM groups WHERE name = ?)", userID, groupName).
		Delete(&domain.UserGroup{}).Error
}
